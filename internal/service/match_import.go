package service

import (
	"sort"
	"time"

	"valo-platform-backend/internal/database/models"
	apperrors "valo-platform-backend/internal/errors"

	"github.com/google/uuid"
)

// roundDurationMillis is the standard round clock.
const roundDurationMillis = 100000

// tradeWindowMillis is how long after a death the killer must die for that
// death to count as traded in KAST.
const tradeWindowMillis = 3000

// RawMatch is the match-details payload as produced by the game client API.
type RawMatch struct {
	MatchInfo    RawMatchInfo     `json:"matchInfo"`
	Players      []RawPlayer      `json:"players"`
	Teams        []RawTeam        `json:"teams"`
	RoundResults []RawRoundResult `json:"roundResults"`
}

// RawMatchInfo carries match level metadata
type RawMatchInfo struct {
	MatchID          string `json:"matchId"`
	MapID            string `json:"mapId"`
	GameLengthMillis int64  `json:"gameLengthMillis"`
	GameStartMillis  int64  `json:"gameStartMillis"`
}

// RawPlayer is one participant with their final scoreboard totals
type RawPlayer struct {
	Subject     string         `json:"subject"`
	GameName    string         `json:"gameName"`
	TagLine     string         `json:"tagLine"`
	TeamID      string         `json:"teamId"`
	CharacterID string         `json:"characterId"`
	Stats       RawPlayerStats `json:"stats"`
}

// RawPlayerStats are the participant's match totals
type RawPlayerStats struct {
	Kills        int `json:"kills"`
	Deaths       int `json:"deaths"`
	Assists      int `json:"assists"`
	Score        int `json:"score"`
	RoundsPlayed int `json:"roundsPlayed"`
}

// RawTeam is one side's final score
type RawTeam struct {
	TeamID       string `json:"teamId"`
	Won          bool   `json:"won"`
	RoundsWon    int    `json:"roundsWon"`
	RoundsPlayed int    `json:"roundsPlayed"`
}

// RawRoundResult is one round with its per player combat events
type RawRoundResult struct {
	RoundNum       int              `json:"roundNum"`
	WinningTeam    string           `json:"winningTeam"`
	PlantRoundTime int64            `json:"plantRoundTime"`
	BombPlanter    string           `json:"bombPlanter"`
	BombDefuser    string           `json:"bombDefuser"`
	PlayerStats    []RawRoundPlayer `json:"playerStats"`
}

// RawRoundPlayer is one player's events inside a round. Kills list the player
// as the killer; the victim sits on each kill entry.
type RawRoundPlayer struct {
	Subject string      `json:"subject"`
	Kills   []RawKill   `json:"kills"`
	Damage  []RawDamage `json:"damage"`
	Score   int         `json:"score"`
}

// RawKill is one kill event inside a round
type RawKill struct {
	Victim          string         `json:"victim"`
	RoundTimeMillis int64          `json:"roundTimeMillis"`
	Assistants      []RawAssistant `json:"assistants"`
}

// RawAssistant credits one assist on a kill
type RawAssistant struct {
	AssistantPUUID string `json:"assistantPuuid"`
}

// RawDamage is damage dealt by the round player to one receiver
type RawDamage struct {
	Receiver  string `json:"receiver"`
	Damage    int    `json:"damage"`
	Headshots int    `json:"headshots"`
	Bodyshots int    `json:"bodyshots"`
	Legshots  int    `json:"legshots"`
}

// ParsedMatch is everything derived from one raw match payload.
type ParsedMatch struct {
	MatchRef   string
	MapID      string
	MapName    string
	PlayedAt   time.Time
	Result     models.MatchResult
	RoundsWon  int
	RoundsLost int
	Rows       []models.MatchPlayer
}

// killEvent flattens one kill for round analysis
type killEvent struct {
	killer string
	victim string
	timeMs int64
}

// ParseRawMatch turns a raw match payload into scoreboard rows with derived
// statistics. The ally side is the side containing a roster PUUID; roster maps
// PUUID to the roster player ID and is used to link rows to players.
func ParseRawMatch(raw *RawMatch, roster map[string]uuid.UUID) (*ParsedMatch, error) {
	if raw == nil || len(raw.Players) == 0 {
		return nil, apperrors.ErrMatchHasNoPlayers
	}

	sideOf := make(map[string]string, len(raw.Players))
	allySide := ""
	for _, p := range raw.Players {
		sideOf[p.Subject] = p.TeamID
		if _, ok := roster[p.Subject]; ok && allySide == "" {
			allySide = p.TeamID
		}
	}
	if allySide == "" {
		return nil, apperrors.ErrRosterNotInMatch
	}

	rows := make(map[string]*models.MatchPlayer, len(raw.Players))
	order := make([]string, 0, len(raw.Players))
	for _, p := range raw.Players {
		row := &models.MatchPlayer{
			PUUID:        p.Subject,
			GameName:     p.GameName,
			TagLine:      p.TagLine,
			AgentID:      p.CharacterID,
			AgentName:    agentNameFor(p.CharacterID),
			TeamSide:     p.TeamID,
			IsAlly:       p.TeamID == allySide,
			Kills:        p.Stats.Kills,
			Deaths:       p.Stats.Deaths,
			Assists:      p.Stats.Assists,
			Score:        p.Stats.Score,
			RoundsPlayed: p.Stats.RoundsPlayed,
			TimingKD:     models.TimingKDMap{},
		}
		if row.RoundsPlayed == 0 {
			row.RoundsPlayed = len(raw.RoundResults)
		}
		if playerID, ok := roster[p.Subject]; ok {
			id := playerID
			row.PlayerID = &id
		}
		rows[p.Subject] = row
		order = append(order, p.Subject)
	}

	for i := range raw.RoundResults {
		parseRound(&raw.RoundResults[i], rows, sideOf)
	}

	roundsWon, roundsLost := 0, 0
	allyWonMatch := false
	for _, team := range raw.Teams {
		if team.TeamID == allySide {
			roundsWon = team.RoundsWon
			allyWonMatch = team.Won
		} else {
			roundsLost += team.RoundsWon
		}
	}
	result := models.MatchResultLoss
	if allyWonMatch {
		result = models.MatchResultWin
	} else if roundsWon == roundsLost {
		result = models.MatchResultDraw
	}

	playedAt := time.Now()
	if raw.MatchInfo.GameStartMillis > 0 {
		playedAt = time.UnixMilli(raw.MatchInfo.GameStartMillis)
	}

	parsed := &ParsedMatch{
		MatchRef:   raw.MatchInfo.MatchID,
		MapID:      raw.MatchInfo.MapID,
		MapName:    mapNameFor(raw.MatchInfo.MapID),
		PlayedAt:   playedAt,
		Result:     result,
		RoundsWon:  roundsWon,
		RoundsLost: roundsLost,
		Rows:       make([]models.MatchPlayer, 0, len(order)),
	}
	for _, puuid := range order {
		parsed.Rows = append(parsed.Rows, *rows[puuid])
	}
	return parsed, nil
}

// parseRound folds one round's events into the scoreboard rows.
func parseRound(round *RawRoundResult, rows map[string]*models.MatchPlayer, sideOf map[string]string) {
	kills := make([]killEvent, 0, 16)
	killsBy := make(map[string]int, len(round.PlayerStats))
	assisted := make(map[string]bool)
	died := make(map[string]bool)

	for _, ps := range round.PlayerStats {
		row := rows[ps.Subject]
		for _, dmg := range ps.Damage {
			if row != nil {
				row.DamageDealt += dmg.Damage
				row.Headshots += dmg.Headshots
				row.Bodyshots += dmg.Bodyshots
				row.Legshots += dmg.Legshots
			}
			if receiver := rows[dmg.Receiver]; receiver != nil {
				receiver.DamageReceived += dmg.Damage
			}
		}

		killsBy[ps.Subject] = len(ps.Kills)
		for _, kill := range ps.Kills {
			kills = append(kills, killEvent{killer: ps.Subject, victim: kill.Victim, timeMs: kill.RoundTimeMillis})
			died[kill.Victim] = true
			for _, assist := range kill.Assistants {
				assisted[assist.AssistantPUUID] = true
			}
		}
	}

	// Ties on the clock keep payload order.
	sort.SliceStable(kills, func(i, j int) bool { return kills[i].timeMs < kills[j].timeMs })

	for _, kill := range kills {
		sector := sectorForKill(kill.timeMs, round.PlantRoundTime)
		if row := rows[kill.killer]; row != nil {
			kd := row.TimingKD[sector]
			kd.Kills++
			row.TimingKD[sector] = kd
		}
		if row := rows[kill.victim]; row != nil {
			kd := row.TimingKD[sector]
			kd.Deaths++
			row.TimingKD[sector] = kd
		}
	}

	if len(kills) > 0 {
		first := kills[0]
		if row := rows[first.killer]; row != nil {
			row.FirstKills++
			if sideOf[first.killer] == round.WinningTeam {
				row.TrueFirstKills++
			}
		}
		if row := rows[first.victim]; row != nil {
			row.FirstDeaths++
		}
	}

	// A death is traded when its killer dies inside the trade window.
	traded := make(map[string]bool)
	for i, death := range kills {
		for j := i + 1; j < len(kills); j++ {
			if kills[j].timeMs-death.timeMs > tradeWindowMillis {
				break
			}
			if kills[j].victim == death.killer {
				traded[death.victim] = true
				break
			}
		}
	}

	if row := rows[round.BombPlanter]; row != nil {
		row.Plants++
	}
	if row := rows[round.BombDefuser]; row != nil {
		row.Defuses++
	}

	for puuid, row := range rows {
		killCount := killsBy[puuid]
		if killCount > 0 || assisted[puuid] || !died[puuid] || traded[puuid] {
			row.KastRounds++
		}
		switch {
		case killCount >= 5:
			row.PentaKills++
		case killCount == 4:
			row.QuadraKills++
		case killCount == 3:
			row.TripleKills++
		case killCount == 2:
			row.DoubleKills++
		}
	}
}

// sectorForKill buckets a kill by how much of the round clock was left. Kills
// after the plant land in the postplant sector regardless of the clock.
func sectorForKill(elapsedMs, plantMs int64) models.TimeSector {
	if plantMs > 0 && elapsedMs > plantMs {
		return models.TimeSectorPostplant
	}
	remaining := float64(roundDurationMillis-elapsedMs) / 1000
	switch {
	case remaining >= 80:
		return models.TimeSectorFirst
	case remaining >= 60:
		return models.TimeSectorPrepare
	case remaining >= 40:
		return models.TimeSectorSecond
	default:
		return models.TimeSectorLate
	}
}
