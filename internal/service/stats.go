package service

import (
	"errors"
	"fmt"
	"sort"

	"valo-platform-backend/internal/database/models"
	apperrors "valo-platform-backend/internal/errors"
	"valo-platform-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatsService aggregates statistics on read from stored scoreboard rows.
// Nothing is denormalized; every answer is computed from match_players.
type StatsService struct {
	matchRepo       repository.MatchRepositoryInterface
	matchPlayerRepo repository.MatchPlayerRepositoryInterface
	playerRepo      repository.PlayerRepositoryInterface
	memberRepo      repository.TeamMemberRepositoryInterface
}

// NewStatsService creates a new stats service
func NewStatsService(matchRepo repository.MatchRepositoryInterface, matchPlayerRepo repository.MatchPlayerRepositoryInterface, playerRepo repository.PlayerRepositoryInterface, memberRepo repository.TeamMemberRepositoryInterface) *StatsService {
	return &StatsService{
		matchRepo:       matchRepo,
		matchPlayerRepo: matchPlayerRepo,
		playerRepo:      playerRepo,
		memberRepo:      memberRepo,
	}
}

// PlayerOverallStats summarizes a player's whole stored history
type PlayerOverallStats struct {
	PlayerID          uuid.UUID `json:"player_id"`
	GamesPlayed       int       `json:"games_played"`
	RoundsPlayed      int       `json:"rounds_played"`
	Kills             int       `json:"kills"`
	Deaths            int       `json:"deaths"`
	Assists           int       `json:"assists"`
	AvgKills          float64   `json:"avg_kills"`
	AvgDeaths         float64   `json:"avg_deaths"`
	AvgAssists        float64   `json:"avg_assists"`
	KD                float64   `json:"kd"`
	KDA               float64   `json:"kda"`
	ACS               float64   `json:"acs"`
	ADR               float64   `json:"adr"`
	HeadshotRate      float64   `json:"headshot_rate"`
	KastRate          float64   `json:"kast_rate"`
	FirstKillsPerGame float64   `json:"first_kills_per_game"`
	FirstKills        int       `json:"first_kills"`
	FirstDeaths       int       `json:"first_deaths"`
	TrueFirstKills    int       `json:"true_first_kills"`
	DoubleKills       int       `json:"double_kills"`
	TripleKills       int       `json:"triple_kills"`
	QuadraKills       int       `json:"quadra_kills"`
	PentaKills        int       `json:"penta_kills"`
}

// PlayerMapStats summarizes a player's history on one map
type PlayerMapStats struct {
	MapName   string  `json:"map_name"`
	Games     int     `json:"games"`
	Wins      int     `json:"wins"`
	WinRate   float64 `json:"win_rate"`
	Kills     int     `json:"kills"`
	Deaths    int     `json:"deaths"`
	KD        float64 `json:"kd"`
	AvgDamage float64 `json:"avg_damage"`
}

// PlayerAgentStats summarizes a player's history on one agent
type PlayerAgentStats struct {
	AgentID   string  `json:"agent_id,omitempty"`
	AgentName string  `json:"agent_name"`
	Games     int     `json:"games"`
	Wins      int     `json:"wins"`
	WinRate   float64 `json:"win_rate"`
	Kills     int     `json:"kills"`
	Deaths    int     `json:"deaths"`
	Assists   int     `json:"assists"`
	KD        float64 `json:"kd"`
}

// SectorStats holds a player's kill/death tally inside one round-clock sector
type SectorStats struct {
	Sector models.TimeSector `json:"sector"`
	Kills  int               `json:"kills"`
	Deaths int               `json:"deaths"`
	KD     float64           `json:"kd"`
}

// PlayerMatchEntry is one match in a player's history with their line on it
type PlayerMatchEntry struct {
	MatchID    uuid.UUID            `json:"match_id"`
	MapName    string               `json:"map_name,omitempty"`
	Category   models.MatchCategory `json:"category"`
	Result     models.MatchResult   `json:"result,omitempty"`
	RoundsWon  int                  `json:"rounds_won"`
	RoundsLost int                  `json:"rounds_lost"`
	PlayedAt   string               `json:"played_at"`
	Stats      MatchPlayerResponse  `json:"stats"`
}

// PlayerMatchListResponse represents a paginated match history
type PlayerMatchListResponse struct {
	Items    []PlayerMatchEntry `json:"items"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

// GetPlayerOverall aggregates a player's full history into one line
func (s *StatsService) GetPlayerOverall(actorID, playerID uuid.UUID) (*PlayerOverallStats, error) {
	if _, err := s.visiblePlayer(actorID, playerID); err != nil {
		return nil, err
	}

	rows, err := s.matchPlayerRepo.GetAllByPlayerID(playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load scoreboard rows: %w", err)
	}

	stats := &PlayerOverallStats{PlayerID: playerID, GamesPlayed: len(rows)}
	if len(rows) == 0 {
		return stats, nil
	}

	totalScore, totalDamage := 0, 0
	headshots, bodyshots, legshots := 0, 0, 0
	kastRounds := 0
	for i := range rows {
		row := &rows[i]
		stats.RoundsPlayed += row.RoundsPlayed
		stats.Kills += row.Kills
		stats.Deaths += row.Deaths
		stats.Assists += row.Assists
		stats.FirstKills += row.FirstKills
		stats.FirstDeaths += row.FirstDeaths
		stats.TrueFirstKills += row.TrueFirstKills
		stats.DoubleKills += row.DoubleKills
		stats.TripleKills += row.TripleKills
		stats.QuadraKills += row.QuadraKills
		stats.PentaKills += row.PentaKills
		totalScore += row.Score
		totalDamage += row.DamageDealt
		headshots += row.Headshots
		bodyshots += row.Bodyshots
		legshots += row.Legshots
		kastRounds += row.KastRounds
	}

	games := stats.GamesPlayed
	stats.AvgKills = ratio(stats.Kills, games)
	stats.AvgDeaths = ratio(stats.Deaths, games)
	stats.AvgAssists = ratio(stats.Assists, games)
	stats.KD = ratio(stats.Kills, stats.Deaths)
	stats.KDA = ratio(stats.Kills+stats.Assists, stats.Deaths)
	stats.ACS = ratio(totalScore, stats.RoundsPlayed)
	stats.ADR = ratio(totalDamage, stats.RoundsPlayed)
	stats.KastRate = ratio(kastRounds, stats.RoundsPlayed)
	stats.FirstKillsPerGame = ratio(stats.FirstKills, games)
	if shots := headshots + bodyshots + legshots; shots > 0 {
		stats.HeadshotRate = float64(headshots) / float64(shots)
	}

	return stats, nil
}

// GetPlayerMapStats aggregates a player's history per map
func (s *StatsService) GetPlayerMapStats(actorID, playerID uuid.UUID) ([]PlayerMapStats, error) {
	if _, err := s.visiblePlayer(actorID, playerID); err != nil {
		return nil, err
	}

	rows, err := s.matchPlayerRepo.GetAllByPlayerID(playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load scoreboard rows: %w", err)
	}

	byMap := make(map[string]*PlayerMapStats)
	order := make([]string, 0)
	for i := range rows {
		row := &rows[i]
		name := row.Match.MapName
		if name == "" {
			name = "Unknown"
		}
		entry, ok := byMap[name]
		if !ok {
			entry = &PlayerMapStats{MapName: name}
			byMap[name] = entry
			order = append(order, name)
		}
		entry.Games++
		if row.IsAlly && row.Match.Result == models.MatchResultWin {
			entry.Wins++
		}
		entry.Kills += row.Kills
		entry.Deaths += row.Deaths
		entry.AvgDamage += float64(row.DamageDealt)
	}

	result := make([]PlayerMapStats, 0, len(order))
	for _, name := range order {
		entry := byMap[name]
		entry.WinRate = ratio(entry.Wins, entry.Games)
		entry.KD = ratio(entry.Kills, entry.Deaths)
		entry.AvgDamage = entry.AvgDamage / float64(entry.Games)
		result = append(result, *entry)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Games > result[j].Games })
	return result, nil
}

// GetPlayerAgentStats aggregates a player's history per agent
func (s *StatsService) GetPlayerAgentStats(actorID, playerID uuid.UUID) ([]PlayerAgentStats, error) {
	if _, err := s.visiblePlayer(actorID, playerID); err != nil {
		return nil, err
	}

	rows, err := s.matchPlayerRepo.GetAllByPlayerID(playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load scoreboard rows: %w", err)
	}

	byAgent := make(map[string]*PlayerAgentStats)
	order := make([]string, 0)
	for i := range rows {
		row := &rows[i]
		name := row.AgentName
		if name == "" {
			name = "Unknown"
		}
		entry, ok := byAgent[name]
		if !ok {
			entry = &PlayerAgentStats{AgentID: row.AgentID, AgentName: name}
			byAgent[name] = entry
			order = append(order, name)
		}
		entry.Games++
		if row.IsAlly && row.Match.Result == models.MatchResultWin {
			entry.Wins++
		}
		entry.Kills += row.Kills
		entry.Deaths += row.Deaths
		entry.Assists += row.Assists
	}

	result := make([]PlayerAgentStats, 0, len(order))
	for _, name := range order {
		entry := byAgent[name]
		entry.WinRate = ratio(entry.Wins, entry.Games)
		entry.KD = ratio(entry.Kills, entry.Deaths)
		result = append(result, *entry)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Games > result[j].Games })
	return result, nil
}

// GetPlayerTimingStats aggregates a player's kills and deaths per round-clock
// sector, in display order
func (s *StatsService) GetPlayerTimingStats(actorID, playerID uuid.UUID) ([]SectorStats, error) {
	if _, err := s.visiblePlayer(actorID, playerID); err != nil {
		return nil, err
	}

	rows, err := s.matchPlayerRepo.GetAllByPlayerID(playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load scoreboard rows: %w", err)
	}

	tally := make(map[models.TimeSector]models.SectorKD, len(models.TimeSectors))
	for i := range rows {
		for sector, kd := range rows[i].TimingKD {
			entry := tally[sector]
			entry.Kills += kd.Kills
			entry.Deaths += kd.Deaths
			tally[sector] = entry
		}
	}

	result := make([]SectorStats, 0, len(models.TimeSectors))
	for _, sector := range models.TimeSectors {
		kd := tally[sector]
		result = append(result, SectorStats{
			Sector: sector,
			Kills:  kd.Kills,
			Deaths: kd.Deaths,
			KD:     kd.KD(),
		})
	}
	return result, nil
}

// GetPlayerMatches lists a player's match history, newest first
func (s *StatsService) GetPlayerMatches(actorID, playerID uuid.UUID, page, pageSize int) (*PlayerMatchListResponse, error) {
	if _, err := s.visiblePlayer(actorID, playerID); err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	rows, total, err := s.matchPlayerRepo.GetByPlayerID(playerID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to load match history: %w", err)
	}

	items := make([]PlayerMatchEntry, len(rows))
	for i := range rows {
		row := &rows[i]
		items[i] = PlayerMatchEntry{
			MatchID:    row.MatchID,
			MapName:    row.Match.MapName,
			Category:   row.Match.Category,
			Result:     row.Match.Result,
			RoundsWon:  row.Match.RoundsWon,
			RoundsLost: row.Match.RoundsLost,
			PlayedAt:   row.Match.PlayedAt.Format("2006-01-02T15:04:05Z07:00"),
			Stats:      toMatchPlayerResponse(row),
		}
	}

	return &PlayerMatchListResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetMatchScoreboard returns a match's rows with derived fields, ACS descending
func (s *StatsService) GetMatchScoreboard(actorID, matchID uuid.UUID) ([]MatchPlayerResponse, error) {
	match, err := s.matchRepo.GetByID(matchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	if _, err := requireMember(s.memberRepo, match.TeamID, actorID); err != nil {
		return nil, err
	}

	rows, err := s.matchPlayerRepo.GetByMatchID(matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to load scoreboard: %w", err)
	}

	responses := make([]MatchPlayerResponse, len(rows))
	for i := range rows {
		responses[i] = toMatchPlayerResponse(&rows[i])
	}
	sort.Slice(responses, func(i, j int) bool { return responses[i].ACS > responses[j].ACS })
	return responses, nil
}

// ratio divides two tallies with the denominator clamped to 1.
func ratio(num, den int) float64 {
	if den < 1 {
		den = 1
	}
	return float64(num) / float64(den)
}

// visiblePlayer loads a player the caller is allowed to see.
func (s *StatsService) visiblePlayer(actorID, playerID uuid.UUID) (*models.Player, error) {
	player, err := s.playerRepo.GetByID(playerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	if player.TeamID != nil {
		if _, err := requireMember(s.memberRepo, *player.TeamID, actorID); err != nil {
			return nil, err
		}
	}
	return player, nil
}
