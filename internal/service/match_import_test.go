package service

import (
	"testing"

	"valo-platform-backend/internal/database/models"
	apperrors "valo-platform-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSectorForKill_Internal tests the round clock bucketing
func TestSectorForKill_Internal(t *testing.T) {
	tests := []struct {
		name      string
		elapsedMs int64
		plantMs   int64
		expected  models.TimeSector
	}{
		{name: "RoundStart", elapsedMs: 0, plantMs: 0, expected: models.TimeSectorFirst},
		{name: "FirstSectorBoundary", elapsedMs: 20000, plantMs: 0, expected: models.TimeSectorFirst},
		{name: "JustPastFirstSector", elapsedMs: 20001, plantMs: 0, expected: models.TimeSectorPrepare},
		{name: "PrepareSectorBoundary", elapsedMs: 40000, plantMs: 0, expected: models.TimeSectorPrepare},
		{name: "SecondSector", elapsedMs: 45000, plantMs: 0, expected: models.TimeSectorSecond},
		{name: "SecondSectorBoundary", elapsedMs: 60000, plantMs: 0, expected: models.TimeSectorSecond},
		{name: "LateSector", elapsedMs: 61000, plantMs: 0, expected: models.TimeSectorLate},
		{name: "ClockRunOut", elapsedMs: 99000, plantMs: 0, expected: models.TimeSectorLate},
		{name: "AfterPlant", elapsedMs: 60000, plantMs: 45000, expected: models.TimeSectorPostplant},
		{name: "ExactPlantTimeStaysOnClock", elapsedMs: 45000, plantMs: 45000, expected: models.TimeSectorSecond},
		{name: "EarlyKillBeforePlant", elapsedMs: 10000, plantMs: 45000, expected: models.TimeSectorFirst},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sectorForKill(tt.elapsedMs, tt.plantMs))
		})
	}
}

// TestMapNameFor_Internal tests resolving internal map codes
func TestMapNameFor_Internal(t *testing.T) {
	tests := []struct {
		name     string
		mapID    string
		expected string
	}{
		{name: "HavenPath", mapID: "/Game/Maps/Triad/Triad", expected: "Haven"},
		{name: "AscentPath", mapID: "/Game/Maps/Ascent/Ascent", expected: "Ascent"},
		{name: "BindPath", mapID: "/Game/Maps/Duality/Duality", expected: "Bind"},
		{name: "TeamDeathmatchMap", mapID: "/Game/Maps/HURM/HURM_Alley", expected: "District"},
		{name: "BareCode", mapID: "Bonsai", expected: "Split"},
		{name: "UnknownCodeFallsThrough", mapID: "/Game/Maps/Brand/BrandNew", expected: "BrandNew"},
		{name: "Empty", mapID: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mapNameFor(tt.mapID))
		})
	}
}

// TestAgentNameFor_Internal tests resolving agent character IDs
func TestAgentNameFor_Internal(t *testing.T) {
	assert.Equal(t, "Jett", agentNameFor("add6443a-41bd-e414-f6ad-e58d267f4e95"))
	assert.Equal(t, "Sova", agentNameFor("ded3520f-4264-bfed-162d-b080e2abccf9"))
	// Harbor ships under two IDs across game versions
	assert.Equal(t, "Harbor", agentNameFor("efba5359-4016-a1e5-7626-b1ae76895940"))
	assert.Equal(t, "Harbor", agentNameFor("95b78ed7-4637-86d9-7e41-71ba8c293152"))
	assert.Empty(t, agentNameFor("00000000-0000-0000-0000-000000000000"))
}

// TestParseRawMatch_NoPlayers tests rejecting empty payloads
func TestParseRawMatch_NoPlayers(t *testing.T) {
	parsed, err := ParseRawMatch(nil, map[string]uuid.UUID{})
	require.Error(t, err)
	assert.Nil(t, parsed)
	assert.Equal(t, apperrors.ErrMatchHasNoPlayers, err)

	parsed, err = ParseRawMatch(&RawMatch{}, map[string]uuid.UUID{})
	require.Error(t, err)
	assert.Nil(t, parsed)
	assert.Equal(t, apperrors.ErrMatchHasNoPlayers, err)
}

// TestParseRawMatch_RosterNotInMatch tests payloads without any roster player
func TestParseRawMatch_RosterNotInMatch(t *testing.T) {
	raw := &RawMatch{
		Players: []RawPlayer{
			{Subject: "stranger-1", TeamID: "Blue"},
			{Subject: "stranger-2", TeamID: "Red"},
		},
	}

	parsed, err := ParseRawMatch(raw, map[string]uuid.UUID{"roster-puuid": uuid.New()})

	require.Error(t, err)
	assert.Nil(t, parsed)
	assert.Equal(t, apperrors.ErrRosterNotInMatch, err)
}

// TestParseRawMatch_Result tests deriving the result from the ally side
func TestParseRawMatch_Result(t *testing.T) {
	tests := []struct {
		name           string
		allyTeam       RawTeam
		enemyTeam      RawTeam
		expectedResult models.MatchResult
		expectedWon    int
		expectedLost   int
	}{
		{
			name:           "AllySideWon",
			allyTeam:       RawTeam{TeamID: "Blue", Won: true, RoundsWon: 13},
			enemyTeam:      RawTeam{TeamID: "Red", Won: false, RoundsWon: 7},
			expectedResult: models.MatchResultWin,
			expectedWon:    13,
			expectedLost:   7,
		},
		{
			name:           "EnemySideWon",
			allyTeam:       RawTeam{TeamID: "Blue", Won: false, RoundsWon: 9},
			enemyTeam:      RawTeam{TeamID: "Red", Won: true, RoundsWon: 13},
			expectedResult: models.MatchResultLoss,
			expectedWon:    9,
			expectedLost:   13,
		},
		{
			name:           "NoWinnerEqualRounds",
			allyTeam:       RawTeam{TeamID: "Blue", Won: false, RoundsWon: 10},
			enemyTeam:      RawTeam{TeamID: "Red", Won: false, RoundsWon: 10},
			expectedResult: models.MatchResultDraw,
			expectedWon:    10,
			expectedLost:   10,
		},
		{
			name:           "NoWinnerFewerRounds",
			allyTeam:       RawTeam{TeamID: "Blue", Won: false, RoundsWon: 7},
			enemyTeam:      RawTeam{TeamID: "Red", Won: false, RoundsWon: 9},
			expectedResult: models.MatchResultLoss,
			expectedWon:    7,
			expectedLost:   9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allyPUUID := uuid.NewString()
			raw := &RawMatch{
				Players: []RawPlayer{
					{Subject: allyPUUID, TeamID: "Blue"},
					{Subject: "enemy", TeamID: "Red"},
				},
				Teams: []RawTeam{tt.allyTeam, tt.enemyTeam},
			}

			parsed, err := ParseRawMatch(raw, map[string]uuid.UUID{allyPUUID: uuid.New()})

			require.NoError(t, err)
			assert.Equal(t, tt.expectedResult, parsed.Result)
			assert.Equal(t, tt.expectedWon, parsed.RoundsWon)
			assert.Equal(t, tt.expectedLost, parsed.RoundsLost)
		})
	}
}

// TestParseRawMatch_ScoreboardDerivation walks a three round payload and checks
// every derived statistic
func TestParseRawMatch_ScoreboardDerivation(t *testing.T) {
	rosterID := uuid.New()
	const (
		allyOne  = "ally-1"
		allyTwo  = "ally-2"
		enemyOne = "enemy-1"
		enemyTwo = "enemy-2"
	)

	raw := &RawMatch{
		MatchInfo: RawMatchInfo{
			MatchID:         "val-3a71",
			MapID:           "/Game/Maps/Triad/Triad",
			GameStartMillis: 1711929600000,
		},
		Players: []RawPlayer{
			{Subject: allyOne, GameName: "JettMain", TagLine: "EUW", TeamID: "Blue", CharacterID: "add6443a-41bd-e414-f6ad-e58d267f4e95", Stats: RawPlayerStats{Kills: 4, Deaths: 1, Assists: 0, Score: 1200, RoundsPlayed: 3}},
			{Subject: allyTwo, GameName: "SovaScout", TagLine: "EUW", TeamID: "Blue", CharacterID: "ded3520f-4264-bfed-162d-b080e2abccf9", Stats: RawPlayerStats{Kills: 0, Deaths: 1, Assists: 0, Score: 300}},
			{Subject: enemyOne, GameName: "enemy one", TeamID: "Red", CharacterID: "00000000-0000-0000-0000-000000000000", Stats: RawPlayerStats{Kills: 1, Deaths: 2, Assists: 1, Score: 600, RoundsPlayed: 3}},
			{Subject: enemyTwo, GameName: "enemy two", TeamID: "Red", Stats: RawPlayerStats{Kills: 1, Deaths: 2, Assists: 0, Score: 450, RoundsPlayed: 3}},
		},
		Teams: []RawTeam{
			{TeamID: "Blue", Won: true, RoundsWon: 2, RoundsPlayed: 3},
			{TeamID: "Red", Won: false, RoundsWon: 1, RoundsPlayed: 3},
		},
		RoundResults: []RawRoundResult{
			{
				// Red takes round one off the opening pick
				RoundNum:    1,
				WinningTeam: "Red",
				PlayerStats: []RawRoundPlayer{
					{
						Subject: enemyTwo,
						Kills:   []RawKill{{Victim: allyTwo, RoundTimeMillis: 30000, Assistants: []RawAssistant{{AssistantPUUID: enemyOne}}}},
						Damage:  []RawDamage{{Receiver: allyTwo, Damage: 140, Headshots: 1, Bodyshots: 3}},
					},
					{
						Subject: allyOne,
						Kills: []RawKill{
							{Victim: enemyTwo, RoundTimeMillis: 32000},
							{Victim: enemyOne, RoundTimeMillis: 40000},
						},
						Damage: []RawDamage{
							{Receiver: enemyTwo, Damage: 156, Headshots: 2, Bodyshots: 3},
							{Receiver: enemyOne, Damage: 140, Headshots: 1, Bodyshots: 4, Legshots: 1},
						},
					},
				},
			},
			{
				RoundNum:       2,
				WinningTeam:    "Blue",
				PlantRoundTime: 52000,
				BombPlanter:    allyOne,
				PlayerStats: []RawRoundPlayer{
					{
						Subject: allyOne,
						Kills: []RawKill{
							{Victim: enemyTwo, RoundTimeMillis: 20000},
							{Victim: enemyOne, RoundTimeMillis: 60000},
						},
					},
				},
			},
			{
				RoundNum:       3,
				WinningTeam:    "Blue",
				PlantRoundTime: 40000,
				BombPlanter:    enemyOne,
				BombDefuser:    allyTwo,
				PlayerStats: []RawRoundPlayer{
					{
						Subject: enemyOne,
						Kills:   []RawKill{{Victim: allyOne, RoundTimeMillis: 97000}},
					},
				},
			},
		},
	}

	parsed, err := ParseRawMatch(raw, map[string]uuid.UUID{allyOne: rosterID})
	require.NoError(t, err)

	assert.Equal(t, "val-3a71", parsed.MatchRef)
	assert.Equal(t, "/Game/Maps/Triad/Triad", parsed.MapID)
	assert.Equal(t, "Haven", parsed.MapName)
	assert.Equal(t, int64(1711929600000), parsed.PlayedAt.UnixMilli())
	assert.Equal(t, models.MatchResultWin, parsed.Result)
	assert.Equal(t, 2, parsed.RoundsWon)
	assert.Equal(t, 1, parsed.RoundsLost)

	// Rows keep payload order
	require.Len(t, parsed.Rows, 4)
	jett := parsed.Rows[0]
	sova := parsed.Rows[1]
	red1 := parsed.Rows[2]
	red2 := parsed.Rows[3]
	assert.Equal(t, "JettMain", jett.GameName)
	assert.Equal(t, "SovaScout", sova.GameName)

	// Side detection and roster linking
	assert.True(t, jett.IsAlly)
	assert.True(t, sova.IsAlly)
	assert.False(t, red1.IsAlly)
	assert.False(t, red2.IsAlly)
	require.NotNil(t, jett.PlayerID)
	assert.Equal(t, rosterID, *jett.PlayerID)
	assert.Nil(t, sova.PlayerID)

	// Agent resolution, unknown IDs stay blank
	assert.Equal(t, "Jett", jett.AgentName)
	assert.Equal(t, "Sova", sova.AgentName)
	assert.Empty(t, red1.AgentName)

	// Scoreboard totals come from the payload stats
	assert.Equal(t, 4, jett.Kills)
	assert.Equal(t, 1, jett.Deaths)
	assert.Equal(t, 1200, jett.Score)
	assert.Equal(t, 3, jett.RoundsPlayed)
	// A zero roundsPlayed falls back to the round count
	assert.Equal(t, 3, sova.RoundsPlayed)

	// First kills and first deaths, one per round
	assert.Equal(t, 1, jett.FirstKills)
	assert.Equal(t, 1, jett.TrueFirstKills)
	assert.Equal(t, 1, jett.FirstDeaths)
	assert.Equal(t, 1, red2.FirstKills)
	assert.Equal(t, 1, red2.TrueFirstKills)
	assert.Equal(t, 1, red2.FirstDeaths)
	// Round three opener came from the losing side
	assert.Equal(t, 1, red1.FirstKills)
	assert.Equal(t, 0, red1.TrueFirstKills)
	assert.Equal(t, 1, sova.FirstDeaths)

	// KAST: kill, assist, survival or traded death
	assert.Equal(t, 2, jett.KastRounds)
	assert.Equal(t, 3, sova.KastRounds)
	assert.Equal(t, 2, red1.KastRounds)
	assert.Equal(t, 2, red2.KastRounds)

	// Two kills in rounds one and two
	assert.Equal(t, 2, jett.DoubleKills)
	assert.Equal(t, 0, jett.TripleKills)
	assert.Equal(t, 0, sova.DoubleKills)

	// Spike plants and defuses
	assert.Equal(t, 1, jett.Plants)
	assert.Equal(t, 1, red1.Plants)
	assert.Equal(t, 1, sova.Defuses)

	// Damage aggregates across rounds
	assert.Equal(t, 296, jett.DamageDealt)
	assert.Equal(t, 3, jett.Headshots)
	assert.Equal(t, 7, jett.Bodyshots)
	assert.Equal(t, 1, jett.Legshots)
	assert.Equal(t, 140, sova.DamageReceived)
	assert.Equal(t, 156, red2.DamageReceived)
	assert.Equal(t, 140, red1.DamageReceived)

	// Timing sectors: round one kills land in prepare, the round two opener in
	// first, everything after a plant in postplant
	assert.Equal(t, models.SectorKD{Kills: 2}, jett.TimingKD[models.TimeSectorPrepare])
	assert.Equal(t, models.SectorKD{Kills: 1}, jett.TimingKD[models.TimeSectorFirst])
	assert.Equal(t, models.SectorKD{Kills: 1, Deaths: 1}, jett.TimingKD[models.TimeSectorPostplant])
	assert.Equal(t, models.SectorKD{Deaths: 1}, sova.TimingKD[models.TimeSectorPrepare])
	assert.Equal(t, models.SectorKD{Kills: 1, Deaths: 1}, red1.TimingKD[models.TimeSectorPostplant])
	assert.Equal(t, models.SectorKD{Kills: 1, Deaths: 1}, red2.TimingKD[models.TimeSectorPrepare])
	assert.Equal(t, models.SectorKD{Deaths: 1}, red2.TimingKD[models.TimeSectorFirst])
}

// TestParseRawMatch_TradeWindow tests the KAST trade window boundary
func TestParseRawMatch_TradeWindow(t *testing.T) {
	tests := []struct {
		name         string
		refragTimeMs int64
		expectKast   bool
	}{
		{name: "RefragInsideWindow", refragTimeMs: 32000, expectKast: true},
		{name: "RefragOnWindowBoundary", refragTimeMs: 33000, expectKast: true},
		{name: "RefragTooLate", refragTimeMs: 33001, expectKast: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allyPUUID := uuid.NewString()
			raw := &RawMatch{
				Players: []RawPlayer{
					{Subject: allyPUUID, TeamID: "Blue"},
					{Subject: "ally-anchor", TeamID: "Blue"},
					{Subject: "enemy-entry", TeamID: "Red"},
				},
				Teams: []RawTeam{
					{TeamID: "Blue", Won: true, RoundsWon: 1},
					{TeamID: "Red", RoundsWon: 0},
				},
				RoundResults: []RawRoundResult{
					{
						RoundNum:    1,
						WinningTeam: "Blue",
						PlayerStats: []RawRoundPlayer{
							{
								Subject: "enemy-entry",
								Kills:   []RawKill{{Victim: allyPUUID, RoundTimeMillis: 30000}},
							},
							{
								Subject: "ally-anchor",
								Kills:   []RawKill{{Victim: "enemy-entry", RoundTimeMillis: tt.refragTimeMs}},
							},
						},
					},
				},
			}

			parsed, err := ParseRawMatch(raw, map[string]uuid.UUID{allyPUUID: uuid.New()})
			require.NoError(t, err)

			var victim *models.MatchPlayer
			for i := range parsed.Rows {
				if parsed.Rows[i].PUUID == allyPUUID {
					victim = &parsed.Rows[i]
				}
			}
			require.NotNil(t, victim)
			if tt.expectKast {
				assert.Equal(t, 1, victim.KastRounds)
			} else {
				assert.Equal(t, 0, victim.KastRounds)
			}
		})
	}
}

// TestParseRawMatch_MultikillBuckets tests the per round multikill counters
func TestParseRawMatch_MultikillBuckets(t *testing.T) {
	allyPUUID := uuid.NewString()
	victims := []string{"red-1", "red-2", "red-3", "red-4", "red-5"}

	players := []RawPlayer{{Subject: allyPUUID, TeamID: "Blue", Stats: RawPlayerStats{Kills: 9}}}
	for _, v := range victims {
		players = append(players, RawPlayer{Subject: v, TeamID: "Red"})
	}

	// Round one is an ace, round two a 4k, round three a 2k
	roundKills := func(count int, baseMs int64) []RawKill {
		kills := make([]RawKill, 0, count)
		for i := 0; i < count; i++ {
			kills = append(kills, RawKill{Victim: victims[i], RoundTimeMillis: baseMs + int64(i)*2000})
		}
		return kills
	}
	raw := &RawMatch{
		Players: players,
		Teams: []RawTeam{
			{TeamID: "Blue", Won: true, RoundsWon: 3},
			{TeamID: "Red", RoundsWon: 0},
		},
		RoundResults: []RawRoundResult{
			{RoundNum: 1, WinningTeam: "Blue", PlayerStats: []RawRoundPlayer{{Subject: allyPUUID, Kills: roundKills(5, 30000)}}},
			{RoundNum: 2, WinningTeam: "Blue", PlayerStats: []RawRoundPlayer{{Subject: allyPUUID, Kills: roundKills(4, 30000)}}},
			{RoundNum: 3, WinningTeam: "Blue", PlayerStats: []RawRoundPlayer{{Subject: allyPUUID, Kills: roundKills(2, 30000)}}},
		},
	}

	parsed, err := ParseRawMatch(raw, map[string]uuid.UUID{allyPUUID: uuid.New()})
	require.NoError(t, err)

	row := parsed.Rows[0]
	assert.Equal(t, allyPUUID, row.PUUID)
	assert.Equal(t, 1, row.PentaKills)
	assert.Equal(t, 1, row.QuadraKills)
	assert.Equal(t, 0, row.TripleKills)
	assert.Equal(t, 1, row.DoubleKills)
	assert.Equal(t, 3, row.FirstKills)
}
