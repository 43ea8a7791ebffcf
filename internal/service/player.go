package service

import (
	"errors"
	"fmt"

	"valo-platform-backend/internal/database/models"
	apperrors "valo-platform-backend/internal/errors"
	"valo-platform-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlayerService handles business logic for roster players
type PlayerService struct {
	repo            repository.PlayerRepositoryInterface
	memberRepo      repository.TeamMemberRepositoryInterface
	matchPlayerRepo repository.MatchPlayerRepositoryInterface
	validator       *validator.Validate
}

// NewPlayerService creates a new player service
func NewPlayerService(repo repository.PlayerRepositoryInterface, memberRepo repository.TeamMemberRepositoryInterface, matchPlayerRepo repository.MatchPlayerRepositoryInterface, validator *validator.Validate) *PlayerService {
	return &PlayerService{
		repo:            repo,
		memberRepo:      memberRepo,
		matchPlayerRepo: matchPlayerRepo,
		validator:       validator,
	}
}

// CreatePlayerRequest represents the request to create a player
type CreatePlayerRequest struct {
	TeamID      uuid.UUID         `json:"team_id" validate:"required"`
	UserID      *uuid.UUID        `json:"user_id,omitempty"`
	PUUID       string            `json:"puuid" validate:"omitempty,max=36"`
	GameName    string            `json:"game_name" validate:"required,min=1,max=50"`
	TagLine     string            `json:"tag_line" validate:"max=10"`
	Region      string            `json:"region" validate:"max=20"`
	Role        models.PlayerRole `json:"role" validate:"omitempty"`
	CurrentRank string            `json:"current_rank" validate:"max=30"`
}

// UpdatePlayerRequest represents the request to update a player
type UpdatePlayerRequest struct {
	PUUID       *string            `json:"puuid,omitempty" validate:"omitempty,max=36"`
	GameName    *string            `json:"game_name,omitempty" validate:"omitempty,min=1,max=50"`
	TagLine     *string            `json:"tag_line,omitempty" validate:"omitempty,max=10"`
	Region      *string            `json:"region,omitempty" validate:"omitempty,max=20"`
	Role        *models.PlayerRole `json:"role,omitempty"`
	CurrentRank *string            `json:"current_rank,omitempty" validate:"omitempty,max=30"`
	IsActive    *bool              `json:"is_active,omitempty"`
}

// PlayerResponse represents the response for player operations
type PlayerResponse struct {
	ID          uuid.UUID         `json:"id"`
	TeamID      *uuid.UUID        `json:"team_id,omitempty"`
	UserID      *uuid.UUID        `json:"user_id,omitempty"`
	PUUID       string            `json:"puuid,omitempty"`
	GameName    string            `json:"game_name"`
	TagLine     string            `json:"tag_line,omitempty"`
	Region      string            `json:"region,omitempty"`
	Role        models.PlayerRole `json:"role"`
	CurrentRank string            `json:"current_rank,omitempty"`
	IsActive    bool              `json:"is_active"`
	CreatedAt   string            `json:"created_at"`
	UpdatedAt   string            `json:"updated_at"`
}

// PlayerListResponse represents a paginated list of players
type PlayerListResponse struct {
	Items    []PlayerResponse `json:"items"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// Create adds a player to a roster; the caller must manage the team. When the
// player arrives with a PUUID, historical scoreboard rows are linked to it.
func (s *PlayerService) Create(actorID uuid.UUID, req *CreatePlayerRequest) (*PlayerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	role := req.Role
	if role == "" {
		role = models.PlayerRoleFlex
	}
	if !role.IsValid() {
		return nil, errors.New("invalid player role")
	}

	if _, err := requireManager(s.memberRepo, req.TeamID, actorID); err != nil {
		return nil, err
	}

	if req.PUUID != "" {
		exists, err := s.repo.CheckPUUIDExists(req.PUUID, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to check puuid: %w", err)
		}
		if exists {
			return nil, apperrors.ErrPlayerExists
		}
	}

	player := &models.Player{
		TeamID:      &req.TeamID,
		UserID:      req.UserID,
		PUUID:       req.PUUID,
		GameName:    req.GameName,
		TagLine:     req.TagLine,
		Region:      req.Region,
		Role:        role,
		CurrentRank: req.CurrentRank,
		IsActive:    true,
	}

	if err := s.repo.Create(player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	if player.PUUID != "" {
		if err := s.matchPlayerRepo.LinkRosterPlayer(player.PUUID, player.ID); err != nil {
			return nil, fmt.Errorf("failed to link scoreboard rows: %w", err)
		}
	}

	return s.toResponse(player), nil
}

// GetByID retrieves a player. Team scoped players require membership.
func (s *PlayerService) GetByID(actorID, playerID uuid.UUID) (*PlayerResponse, error) {
	player, err := s.getVisible(actorID, playerID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(player), nil
}

// GetByTeamID lists a team's players; the caller must be a member
func (s *PlayerService) GetByTeamID(actorID, teamID uuid.UUID, page, pageSize int) (*PlayerListResponse, error) {
	if _, err := requireMember(s.memberRepo, teamID, actorID); err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	players, total, err := s.repo.GetByTeamID(teamID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	items := make([]PlayerResponse, len(players))
	for i, player := range players {
		items[i] = *s.toResponse(&player)
	}

	return &PlayerListResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a player; the caller must manage the team
func (s *PlayerService) Update(actorID, playerID uuid.UUID, req *UpdatePlayerRequest) (*PlayerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	player, err := s.getManaged(actorID, playerID)
	if err != nil {
		return nil, err
	}

	if req.PUUID != nil && *req.PUUID != player.PUUID {
		if *req.PUUID != "" {
			exists, err := s.repo.CheckPUUIDExists(*req.PUUID, &player.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to check puuid: %w", err)
			}
			if exists {
				return nil, apperrors.ErrPlayerExists
			}
		}
		player.PUUID = *req.PUUID
	}
	if req.GameName != nil {
		player.GameName = *req.GameName
	}
	if req.TagLine != nil {
		player.TagLine = *req.TagLine
	}
	if req.Region != nil {
		player.Region = *req.Region
	}
	if req.Role != nil {
		if !req.Role.IsValid() {
			return nil, errors.New("invalid player role")
		}
		player.Role = *req.Role
	}
	if req.CurrentRank != nil {
		player.CurrentRank = *req.CurrentRank
	}
	if req.IsActive != nil {
		player.IsActive = *req.IsActive
	}

	if err := s.repo.Update(player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	if player.PUUID != "" {
		if err := s.matchPlayerRepo.LinkRosterPlayer(player.PUUID, player.ID); err != nil {
			return nil, fmt.Errorf("failed to link scoreboard rows: %w", err)
		}
	}

	return s.toResponse(player), nil
}

// Delete deletes a player; the caller must manage the team
func (s *PlayerService) Delete(actorID, playerID uuid.UUID) error {
	if _, err := s.getManaged(actorID, playerID); err != nil {
		return err
	}

	if err := s.repo.Delete(playerID); err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	return nil
}

// getVisible loads a player the caller is allowed to see.
func (s *PlayerService) getVisible(actorID, playerID uuid.UUID) (*models.Player, error) {
	player, err := s.repo.GetByID(playerID)
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

// getManaged loads a player the caller is allowed to modify.
func (s *PlayerService) getManaged(actorID, playerID uuid.UUID) (*models.Player, error) {
	player, err := s.repo.GetByID(playerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	if player.TeamID == nil {
		return nil, apperrors.ErrNotTeamManager
	}
	if _, err := requireManager(s.memberRepo, *player.TeamID, actorID); err != nil {
		return nil, err
	}
	return player, nil
}

// toResponse converts a player model to response
func (s *PlayerService) toResponse(player *models.Player) *PlayerResponse {
	return &PlayerResponse{
		ID:          player.ID,
		TeamID:      player.TeamID,
		UserID:      player.UserID,
		PUUID:       player.PUUID,
		GameName:    player.GameName,
		TagLine:     player.TagLine,
		Region:      player.Region,
		Role:        player.Role,
		CurrentRank: player.CurrentRank,
		IsActive:    player.IsActive,
		CreatedAt:   player.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   player.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
