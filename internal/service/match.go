package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"valo-platform-backend/internal/database/models"
	apperrors "valo-platform-backend/internal/errors"
	"valo-platform-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=match.go -destination=../mocks/storage_mocks.go -package=mocks

// ScreenshotStore is the slice of object storage the match flows need.
type ScreenshotStore interface {
	UploadScreenshot(ctx context.Context, teamID uuid.UUID, data []byte, contentType string) (string, error)
	PresignScreenshot(ctx context.Context, key string) (string, error)
}

// MatchService handles business logic for matches and their scoreboards
type MatchService struct {
	repo            repository.MatchRepositoryInterface
	matchPlayerRepo repository.MatchPlayerRepositoryInterface
	playerRepo      repository.PlayerRepositoryInterface
	memberRepo      repository.TeamMemberRepositoryInterface
	dispatcher      NotificationDispatcher
	storage         ScreenshotStore
	validator       *validator.Validate
}

// NewMatchService creates a new match service
func NewMatchService(repo repository.MatchRepositoryInterface, matchPlayerRepo repository.MatchPlayerRepositoryInterface, playerRepo repository.PlayerRepositoryInterface, memberRepo repository.TeamMemberRepositoryInterface, dispatcher NotificationDispatcher, storage ScreenshotStore, validator *validator.Validate) *MatchService {
	return &MatchService{
		repo:            repo,
		matchPlayerRepo: matchPlayerRepo,
		playerRepo:      playerRepo,
		memberRepo:      memberRepo,
		dispatcher:      dispatcher,
		storage:         storage,
		validator:       validator,
	}
}

// CreateMatchPlayerRequest is one manually entered scoreboard row
type CreateMatchPlayerRequest struct {
	PUUID        string `json:"puuid" validate:"omitempty,max=36"`
	GameName     string `json:"game_name" validate:"required,max=50"`
	TagLine      string `json:"tag_line" validate:"max=10"`
	AgentName    string `json:"agent_name" validate:"max=30"`
	IsAlly       bool   `json:"is_ally"`
	Kills        int    `json:"kills" validate:"min=0"`
	Deaths       int    `json:"deaths" validate:"min=0"`
	Assists      int    `json:"assists" validate:"min=0"`
	Score        int    `json:"score" validate:"min=0"`
	RoundsPlayed int    `json:"rounds_played" validate:"min=0"`
}

// CreateMatchRequest represents the request to record a match manually
type CreateMatchRequest struct {
	TeamID     uuid.UUID                  `json:"team_id" validate:"required"`
	Category   models.MatchCategory       `json:"category" validate:"omitempty"`
	MapName    string                     `json:"map_name" validate:"max=40"`
	Opponent   string                     `json:"opponent" validate:"max=100"`
	Result     models.MatchResult         `json:"result" validate:"omitempty"`
	RoundsWon  int                        `json:"rounds_won" validate:"min=0,max=50"`
	RoundsLost int                        `json:"rounds_lost" validate:"min=0,max=50"`
	Source     models.MatchSource         `json:"source" validate:"omitempty"`
	PlayedAt   *time.Time                 `json:"played_at,omitempty"`
	VodURL     string                     `json:"vod_url" validate:"omitempty,url,max=255"`
	Notes      string                     `json:"notes" validate:"max=2000"`
	Players    []CreateMatchPlayerRequest `json:"players" validate:"dive"`
}

// UpdateMatchRequest represents the request to update a match
type UpdateMatchRequest struct {
	Category   *models.MatchCategory `json:"category,omitempty"`
	MapName    *string               `json:"map_name,omitempty" validate:"omitempty,max=40"`
	Opponent   *string               `json:"opponent,omitempty" validate:"omitempty,max=100"`
	Result     *models.MatchResult   `json:"result,omitempty"`
	RoundsWon  *int                  `json:"rounds_won,omitempty" validate:"omitempty,min=0,max=50"`
	RoundsLost *int                  `json:"rounds_lost,omitempty" validate:"omitempty,min=0,max=50"`
	PlayedAt   *time.Time            `json:"played_at,omitempty"`
	VodURL     *string               `json:"vod_url,omitempty" validate:"omitempty,url,max=255"`
	Notes      *string               `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// ImportMatchRequest represents the request to ingest a raw match payload
type ImportMatchRequest struct {
	TeamID   uuid.UUID            `json:"team_id" validate:"required"`
	Category models.MatchCategory `json:"category" validate:"omitempty"`
	Opponent string               `json:"opponent" validate:"max=100"`
	Match    RawMatch             `json:"match" validate:"required"`
}

// MatchResponse represents the response for match operations
type MatchResponse struct {
	ID            uuid.UUID            `json:"id"`
	TeamID        uuid.UUID            `json:"team_id"`
	MatchRef      string               `json:"match_ref,omitempty"`
	Category      models.MatchCategory `json:"category"`
	MapID         string               `json:"map_id,omitempty"`
	MapName       string               `json:"map_name,omitempty"`
	Opponent      string               `json:"opponent,omitempty"`
	Result        models.MatchResult   `json:"result,omitempty"`
	RoundsWon     int                  `json:"rounds_won"`
	RoundsLost    int                  `json:"rounds_lost"`
	Source        models.MatchSource   `json:"source"`
	PlayedAt      string               `json:"played_at"`
	VodURL        string               `json:"vod_url,omitempty"`
	ScreenshotURL string               `json:"screenshot_url,omitempty"`
	Notes         string               `json:"notes,omitempty"`
	CreatedAt     string               `json:"created_at"`
	UpdatedAt     string               `json:"updated_at"`
}

// MatchDetailResponse is a match with its scoreboard rows
type MatchDetailResponse struct {
	MatchResponse
	Players []MatchPlayerResponse `json:"players"`
}

// MatchListResponse represents a paginated list of matches
type MatchListResponse struct {
	Items    []MatchResponse `json:"items"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// MatchPlayerResponse is one scoreboard row with its derived statistics
type MatchPlayerResponse struct {
	ID             uuid.UUID          `json:"id"`
	PlayerID       *uuid.UUID         `json:"player_id,omitempty"`
	PUUID          string             `json:"puuid,omitempty"`
	GameName       string             `json:"game_name"`
	TagLine        string             `json:"tag_line,omitempty"`
	AgentID        string             `json:"agent_id,omitempty"`
	AgentName      string             `json:"agent_name,omitempty"`
	TeamSide       string             `json:"team_side,omitempty"`
	IsAlly         bool               `json:"is_ally"`
	Kills          int                `json:"kills"`
	Deaths         int                `json:"deaths"`
	Assists        int                `json:"assists"`
	Score          int                `json:"score"`
	RoundsPlayed   int                `json:"rounds_played"`
	DamageDealt    int                `json:"damage_dealt"`
	DamageReceived int                `json:"damage_received"`
	Headshots      int                `json:"headshots"`
	Bodyshots      int                `json:"bodyshots"`
	Legshots       int                `json:"legshots"`
	FirstKills     int                `json:"first_kills"`
	FirstDeaths    int                `json:"first_deaths"`
	TrueFirstKills int                `json:"true_first_kills"`
	Plants         int                `json:"plants"`
	Defuses        int                `json:"defuses"`
	KastRounds     int                `json:"kast_rounds"`
	DoubleKills    int                `json:"double_kills"`
	TripleKills    int                `json:"triple_kills"`
	QuadraKills    int                `json:"quadra_kills"`
	PentaKills     int                `json:"penta_kills"`
	KD             float64            `json:"kd"`
	KDA            float64            `json:"kda"`
	ACS            float64            `json:"acs"`
	ADR            float64            `json:"adr"`
	HeadshotRate   float64            `json:"headshot_rate"`
	KastRate       float64            `json:"kast_rate"`
	TimingKD       models.TimingKDMap `json:"timing_kd,omitempty"`
}

// Create records a match manually, optionally with scoreboard rows
func (s *MatchService) Create(actorID uuid.UUID, req *CreateMatchRequest) (*MatchDetailResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	category := req.Category
	if category == "" {
		category = models.MatchCategoryScrim
	}
	if !category.IsValid() {
		return nil, errors.New("invalid match category")
	}
	if req.Result != "" && !req.Result.IsValid() {
		return nil, errors.New("invalid match result")
	}
	source := req.Source
	if source == "" {
		source = models.MatchSourceManual
	}
	if !source.IsValid() || source == models.MatchSourceImport {
		return nil, errors.New("invalid match source")
	}

	if _, err := requireMember(s.memberRepo, req.TeamID, actorID); err != nil {
		return nil, err
	}

	playedAt := time.Now()
	if req.PlayedAt != nil {
		playedAt = *req.PlayedAt
	}

	match := &models.Match{
		TeamID:     req.TeamID,
		Category:   category,
		MapName:    req.MapName,
		Opponent:   req.Opponent,
		Result:     req.Result,
		RoundsWon:  req.RoundsWon,
		RoundsLost: req.RoundsLost,
		Source:     source,
		PlayedAt:   playedAt,
		VodURL:     req.VodURL,
		Notes:      req.Notes,
	}

	rows := make([]models.MatchPlayer, len(req.Players))
	for i, player := range req.Players {
		rows[i] = models.MatchPlayer{
			PUUID:        player.PUUID,
			GameName:     player.GameName,
			TagLine:      player.TagLine,
			AgentName:    player.AgentName,
			IsAlly:       player.IsAlly,
			Kills:        player.Kills,
			Deaths:       player.Deaths,
			Assists:      player.Assists,
			Score:        player.Score,
			RoundsPlayed: player.RoundsPlayed,
		}
		if player.PUUID != "" {
			if roster, err := s.playerRepo.GetByPUUID(player.PUUID); err == nil {
				rows[i].PlayerID = &roster.ID
			}
		}
	}

	if err := s.repo.CreateWithPlayers(match, rows); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	return s.toDetailResponse(match, rows), nil
}

// Import ingests a raw match payload, derives the scoreboard and stores it
func (s *MatchService) Import(actorID uuid.UUID, req *ImportMatchRequest) (*MatchDetailResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	category := req.Category
	if category == "" {
		category = models.MatchCategoryScrim
	}
	if !category.IsValid() {
		return nil, errors.New("invalid match category")
	}

	if _, err := requireMember(s.memberRepo, req.TeamID, actorID); err != nil {
		return nil, err
	}

	if req.Match.MatchInfo.MatchID != "" {
		exists, err := s.repo.CheckMatchRefExists(req.TeamID, req.Match.MatchInfo.MatchID)
		if err != nil {
			return nil, fmt.Errorf("failed to check match reference: %w", err)
		}
		if exists {
			return nil, apperrors.ErrMatchExists
		}
	}

	rosterPlayers, err := s.playerRepo.GetActiveByTeamID(req.TeamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}
	roster := make(map[string]uuid.UUID, len(rosterPlayers))
	for _, player := range rosterPlayers {
		if player.PUUID != "" {
			roster[player.PUUID] = player.ID
		}
	}

	parsed, err := ParseRawMatch(&req.Match, roster)
	if err != nil {
		return nil, err
	}

	match := &models.Match{
		TeamID:     req.TeamID,
		MatchRef:   parsed.MatchRef,
		Category:   category,
		MapID:      parsed.MapID,
		MapName:    parsed.MapName,
		Opponent:   req.Opponent,
		Result:     parsed.Result,
		RoundsWon:  parsed.RoundsWon,
		RoundsLost: parsed.RoundsLost,
		Source:     models.MatchSourceImport,
		PlayedAt:   parsed.PlayedAt,
	}

	if err := s.repo.CreateWithPlayers(match, parsed.Rows); err != nil {
		return nil, fmt.Errorf("failed to store match: %w", err)
	}

	if s.dispatcher != nil {
		s.dispatcher.Dispatch(&req.TeamID, nil, models.NotificationTypeMatchImported,
			importTitle(match), importBody(match, parsed.Rows),
			map[string]interface{}{"match_id": match.ID, "map_name": match.MapName, "result": match.Result})
	}

	return s.toDetailResponse(match, parsed.Rows), nil
}

// GetByID retrieves a match; the caller must be a member of its team
func (s *MatchService) GetByID(actorID, matchID uuid.UUID) (*MatchResponse, error) {
	match, err := s.getVisible(actorID, matchID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(match), nil
}

// GetPlayers retrieves a match's scoreboard rows in stored order
func (s *MatchService) GetPlayers(actorID, matchID uuid.UUID) ([]MatchPlayerResponse, error) {
	if _, err := s.getVisible(actorID, matchID); err != nil {
		return nil, err
	}

	rows, err := s.matchPlayerRepo.GetByMatchID(matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get scoreboard: %w", err)
	}

	responses := make([]MatchPlayerResponse, len(rows))
	for i := range rows {
		responses[i] = toMatchPlayerResponse(&rows[i])
	}
	return responses, nil
}

// GetByTeamID lists a team's matches, newest first, optionally by category
func (s *MatchService) GetByTeamID(actorID, teamID uuid.UUID, category models.MatchCategory, page, pageSize int) (*MatchListResponse, error) {
	if _, err := requireMember(s.memberRepo, teamID, actorID); err != nil {
		return nil, err
	}
	if category != "" && !category.IsValid() {
		return nil, errors.New("invalid match category")
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	var matches []models.Match
	var total int64
	var err error
	if category != "" {
		matches, total, err = s.repo.GetByCategory(teamID, category, pageSize, offset)
	} else {
		matches, total, err = s.repo.GetByTeamID(teamID, pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get matches: %w", err)
	}

	items := make([]MatchResponse, len(matches))
	for i := range matches {
		items[i] = *s.toResponse(&matches[i])
	}

	return &MatchListResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates match metadata; the caller must be a member
func (s *MatchService) Update(actorID, matchID uuid.UUID, req *UpdateMatchRequest) (*MatchResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	match, err := s.getVisible(actorID, matchID)
	if err != nil {
		return nil, err
	}

	if req.Category != nil {
		if !req.Category.IsValid() {
			return nil, errors.New("invalid match category")
		}
		match.Category = *req.Category
	}
	if req.MapName != nil {
		match.MapName = *req.MapName
	}
	if req.Opponent != nil {
		match.Opponent = *req.Opponent
	}
	if req.Result != nil {
		if *req.Result != "" && !req.Result.IsValid() {
			return nil, errors.New("invalid match result")
		}
		match.Result = *req.Result
	}
	if req.RoundsWon != nil {
		match.RoundsWon = *req.RoundsWon
	}
	if req.RoundsLost != nil {
		match.RoundsLost = *req.RoundsLost
	}
	if req.PlayedAt != nil {
		match.PlayedAt = *req.PlayedAt
	}
	if req.VodURL != nil {
		match.VodURL = *req.VodURL
	}
	if req.Notes != nil {
		match.Notes = *req.Notes
	}

	if err := s.repo.Update(match); err != nil {
		return nil, fmt.Errorf("failed to update match: %w", err)
	}

	return s.toResponse(match), nil
}

// Delete deletes a match and its scoreboard; owner or coach only
func (s *MatchService) Delete(actorID, matchID uuid.UUID) error {
	match, err := s.repo.GetByID(matchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMatchNotFound
		}
		return fmt.Errorf("failed to get match: %w", err)
	}

	if _, err := requireManager(s.memberRepo, match.TeamID, actorID); err != nil {
		return err
	}

	if err := s.repo.Delete(matchID); err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}
	return nil
}

// AttachScreenshot stores a scoreboard screenshot for the match and returns
// a presigned URL for it
func (s *MatchService) AttachScreenshot(ctx context.Context, actorID, matchID uuid.UUID, data []byte, contentType string) (string, error) {
	match, err := s.getVisible(actorID, matchID)
	if err != nil {
		return "", err
	}
	if s.storage == nil {
		return "", apperrors.ErrStorageConfigMissing
	}

	key, err := s.storage.UploadScreenshot(ctx, match.TeamID, data, contentType)
	if err != nil {
		return "", err
	}

	match.ScreenshotURL = key
	if err := s.repo.Update(match); err != nil {
		return "", fmt.Errorf("failed to update match: %w", err)
	}

	url, err := s.storage.PresignScreenshot(ctx, key)
	if err != nil {
		return "", err
	}
	return url, nil
}

// getVisible loads a match the caller is allowed to see.
func (s *MatchService) getVisible(actorID, matchID uuid.UUID) (*models.Match, error) {
	match, err := s.repo.GetByID(matchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	if _, err := requireMember(s.memberRepo, match.TeamID, actorID); err != nil {
		return nil, err
	}
	return match, nil
}

// toResponse converts a match model to response
func (s *MatchService) toResponse(match *models.Match) *MatchResponse {
	return &MatchResponse{
		ID:            match.ID,
		TeamID:        match.TeamID,
		MatchRef:      match.MatchRef,
		Category:      match.Category,
		MapID:         match.MapID,
		MapName:       match.MapName,
		Opponent:      match.Opponent,
		Result:        match.Result,
		RoundsWon:     match.RoundsWon,
		RoundsLost:    match.RoundsLost,
		Source:        match.Source,
		PlayedAt:      match.PlayedAt.Format("2006-01-02T15:04:05Z07:00"),
		VodURL:        match.VodURL,
		ScreenshotURL: s.screenshotURL(match.ScreenshotURL),
		Notes:         match.Notes,
		CreatedAt:     match.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:     match.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func (s *MatchService) toDetailResponse(match *models.Match, rows []models.MatchPlayer) *MatchDetailResponse {
	response := &MatchDetailResponse{
		MatchResponse: *s.toResponse(match),
		Players:       make([]MatchPlayerResponse, len(rows)),
	}
	for i := range rows {
		response.Players[i] = toMatchPlayerResponse(&rows[i])
	}
	return response
}

// screenshotURL presigns the stored object key, best effort.
func (s *MatchService) screenshotURL(key string) string {
	if key == "" || s.storage == nil {
		return ""
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	url, err := s.storage.PresignScreenshot(ctx, key)
	if err != nil {
		return ""
	}
	return url
}

func toMatchPlayerResponse(row *models.MatchPlayer) MatchPlayerResponse {
	return MatchPlayerResponse{
		ID:             row.ID,
		PlayerID:       row.PlayerID,
		PUUID:          row.PUUID,
		GameName:       row.GameName,
		TagLine:        row.TagLine,
		AgentID:        row.AgentID,
		AgentName:      row.AgentName,
		TeamSide:       row.TeamSide,
		IsAlly:         row.IsAlly,
		Kills:          row.Kills,
		Deaths:         row.Deaths,
		Assists:        row.Assists,
		Score:          row.Score,
		RoundsPlayed:   row.RoundsPlayed,
		DamageDealt:    row.DamageDealt,
		DamageReceived: row.DamageReceived,
		Headshots:      row.Headshots,
		Bodyshots:      row.Bodyshots,
		Legshots:       row.Legshots,
		FirstKills:     row.FirstKills,
		FirstDeaths:    row.FirstDeaths,
		TrueFirstKills: row.TrueFirstKills,
		Plants:         row.Plants,
		Defuses:        row.Defuses,
		KastRounds:     row.KastRounds,
		DoubleKills:    row.DoubleKills,
		TripleKills:    row.TripleKills,
		QuadraKills:    row.QuadraKills,
		PentaKills:     row.PentaKills,
		KD:             row.KD(),
		KDA:            row.KDA(),
		ACS:            row.ACS(),
		ADR:            row.ADR(),
		HeadshotRate:   row.HeadshotRate(),
		KastRate:       row.KastRate(),
		TimingKD:       row.TimingKD,
	}
}

// importTitle builds the webhook headline for an imported match.
func importTitle(match *models.Match) string {
	title := fmt.Sprintf("Match imported: %s %d-%d", match.MapName, match.RoundsWon, match.RoundsLost)
	if match.Result != "" {
		title = fmt.Sprintf("%s (%s)", title, match.Result)
	}
	return title
}

// importBody lists the top ally scoreboard line.
func importBody(match *models.Match, rows []models.MatchPlayer) string {
	var top *models.MatchPlayer
	for i := range rows {
		if !rows[i].IsAlly {
			continue
		}
		if top == nil || rows[i].ACS() > top.ACS() {
			top = &rows[i]
		}
	}
	if top == nil {
		return ""
	}
	body := fmt.Sprintf("Top: %s %d/%d/%d (%.0f ACS)", top.GameName, top.Kills, top.Deaths, top.Assists, top.ACS())
	if match.Opponent != "" {
		body = fmt.Sprintf("%s vs %s", body, match.Opponent)
	}
	return body
}
