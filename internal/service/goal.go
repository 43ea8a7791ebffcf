package service

import (
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

// GoalService handles business logic for team and player goals
type GoalService struct {
	repo       repository.GoalRepositoryInterface
	memberRepo repository.TeamMemberRepositoryInterface
	playerRepo repository.PlayerRepositoryInterface
	dispatcher NotificationDispatcher
	validator  *validator.Validate
}

// NewGoalService creates a new goal service
func NewGoalService(repo repository.GoalRepositoryInterface, memberRepo repository.TeamMemberRepositoryInterface, playerRepo repository.PlayerRepositoryInterface, dispatcher NotificationDispatcher, validator *validator.Validate) *GoalService {
	return &GoalService{
		repo:       repo,
		memberRepo: memberRepo,
		playerRepo: playerRepo,
		dispatcher: dispatcher,
		validator:  validator,
	}
}

// CreateGoalRequest represents the request to create a goal
type CreateGoalRequest struct {
	TeamID      uuid.UUID  `json:"team_id" validate:"required"`
	PlayerID    *uuid.UUID `json:"player_id,omitempty"`
	Title       string     `json:"title" validate:"required,min=1,max=100"`
	Description string     `json:"description" validate:"max=500"`
	TargetDate  string     `json:"target_date,omitempty" validate:"omitempty"`
}

// UpdateGoalRequest represents the request to update a goal
type UpdateGoalRequest struct {
	Title       *string            `json:"title,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string            `json:"description,omitempty" validate:"omitempty,max=500"`
	Status      *models.GoalStatus `json:"status,omitempty"`
	Progress    *int               `json:"progress,omitempty" validate:"omitempty,min=0,max=100"`
	TargetDate  *string            `json:"target_date,omitempty"`
}

// UpdateGoalProgressRequest represents the request to move a goal's progress
type UpdateGoalProgressRequest struct {
	Progress int `json:"progress" validate:"min=0,max=100"`
}

// GoalResponse represents the response for goal operations
type GoalResponse struct {
	ID          uuid.UUID         `json:"id"`
	TeamID      uuid.UUID         `json:"team_id"`
	PlayerID    *uuid.UUID        `json:"player_id,omitempty"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Status      models.GoalStatus `json:"status"`
	Progress    int               `json:"progress"`
	TargetDate  *string           `json:"target_date,omitempty"`
	CreatedAt   string            `json:"created_at"`
	UpdatedAt   string            `json:"updated_at"`
}

// GoalListResponse represents a paginated list of goals
type GoalListResponse struct {
	Items    []GoalResponse `json:"items"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create creates a goal for a team or one of its players
func (s *GoalService) Create(actorID uuid.UUID, req *CreateGoalRequest) (*GoalResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := requireMember(s.memberRepo, req.TeamID, actorID); err != nil {
		return nil, err
	}

	goal := &models.Goal{
		TeamID:      req.TeamID,
		PlayerID:    req.PlayerID,
		Title:       req.Title,
		Description: req.Description,
		Status:      models.GoalStatusActive,
	}

	if req.PlayerID != nil {
		player, err := s.playerRepo.GetByID(*req.PlayerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrPlayerNotFound
			}
			return nil, fmt.Errorf("failed to verify player: %w", err)
		}
		if player.TeamID == nil || *player.TeamID != req.TeamID {
			return nil, apperrors.ErrPlayerNotFound
		}
	}

	if req.TargetDate != "" {
		targetDate, err := time.Parse("2006-01-02", req.TargetDate)
		if err != nil {
			return nil, fmt.Errorf("invalid target_date format, expected YYYY-MM-DD: %w", err)
		}
		if targetDate.Before(time.Now().Truncate(24 * time.Hour)) {
			return nil, apperrors.ErrTargetDateInPast
		}
		goal.TargetDate = &targetDate
	}

	if err := s.repo.Create(goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return s.toResponse(goal), nil
}

// GetByID retrieves a goal; the caller must be a member of its team
func (s *GoalService) GetByID(actorID, goalID uuid.UUID) (*GoalResponse, error) {
	goal, err := s.getVisible(actorID, goalID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(goal), nil
}

// GetByTeamID lists a team's goals, optionally only active ones or only those
// assigned to one player
func (s *GoalService) GetByTeamID(actorID, teamID uuid.UUID, playerID *uuid.UUID, activeOnly bool, page, pageSize int) (*GoalListResponse, error) {
	if _, err := requireMember(s.memberRepo, teamID, actorID); err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var goals []models.Goal
	var total int64
	var err error

	switch {
	case playerID != nil:
		goals, err = s.repo.GetByPlayerID(*playerID)
		if err == nil {
			goals = filterGoalsByTeam(goals, teamID)
			total = int64(len(goals))
		}
	case activeOnly:
		goals, err = s.repo.GetActiveByTeamID(teamID)
		total = int64(len(goals))
	default:
		offset := (page - 1) * pageSize
		goals, total, err = s.repo.GetByTeamID(teamID, pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get goals: %w", err)
	}

	items := make([]GoalResponse, len(goals))
	for i := range goals {
		items[i] = *s.toResponse(&goals[i])
	}

	return &GoalListResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a goal. Reaching 100 progress completes it.
func (s *GoalService) Update(actorID, goalID uuid.UUID, req *UpdateGoalRequest) (*GoalResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	goal, err := s.getVisible(actorID, goalID)
	if err != nil {
		return nil, err
	}
	wasCompleted := goal.Status == models.GoalStatusCompleted

	if req.Title != nil {
		goal.Title = *req.Title
	}
	if req.Description != nil {
		goal.Description = *req.Description
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		goal.Status = *req.Status
	}
	if req.Progress != nil {
		goal.Progress = *req.Progress
	}
	if req.TargetDate != nil {
		if *req.TargetDate == "" {
			goal.TargetDate = nil
		} else {
			targetDate, err := time.Parse("2006-01-02", *req.TargetDate)
			if err != nil {
				return nil, fmt.Errorf("invalid target_date format, expected YYYY-MM-DD: %w", err)
			}
			goal.TargetDate = &targetDate
		}
	}
	if goal.Progress >= 100 && goal.Status == models.GoalStatusActive {
		goal.Status = models.GoalStatusCompleted
	}

	if err := s.repo.Update(goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	if !wasCompleted && goal.Status == models.GoalStatusCompleted {
		s.notifyCompleted(goal)
	}

	return s.toResponse(goal), nil
}

// UpdateProgress moves a goal's progress. Reaching 100 completes it.
func (s *GoalService) UpdateProgress(actorID, goalID uuid.UUID, req *UpdateGoalProgressRequest) (*GoalResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	goal, err := s.getVisible(actorID, goalID)
	if err != nil {
		return nil, err
	}
	wasCompleted := goal.Status == models.GoalStatusCompleted

	goal.Progress = req.Progress
	if goal.Progress >= 100 && goal.Status == models.GoalStatusActive {
		goal.Status = models.GoalStatusCompleted
	}

	if err := s.repo.Update(goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	if !wasCompleted && goal.Status == models.GoalStatusCompleted {
		s.notifyCompleted(goal)
	}

	return s.toResponse(goal), nil
}

// Delete deletes a goal; the caller must be a member of its team
func (s *GoalService) Delete(actorID, goalID uuid.UUID) error {
	if _, err := s.getVisible(actorID, goalID); err != nil {
		return err
	}

	if err := s.repo.Delete(goalID); err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	return nil
}

func (s *GoalService) notifyCompleted(goal *models.Goal) {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.Dispatch(&goal.TeamID, nil, models.NotificationTypeGoalCompleted,
		fmt.Sprintf("Goal completed: %s", goal.Title), goal.Description,
		map[string]interface{}{"goal_id": goal.ID})
}

// getVisible loads a goal the caller is allowed to see.
func (s *GoalService) getVisible(actorID, goalID uuid.UUID) (*models.Goal, error) {
	goal, err := s.repo.GetByID(goalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	if _, err := requireMember(s.memberRepo, goal.TeamID, actorID); err != nil {
		return nil, err
	}
	return goal, nil
}

// toResponse converts a goal model to response
func (s *GoalService) toResponse(goal *models.Goal) *GoalResponse {
	response := &GoalResponse{
		ID:          goal.ID,
		TeamID:      goal.TeamID,
		PlayerID:    goal.PlayerID,
		Title:       goal.Title,
		Description: goal.Description,
		Status:      goal.Status,
		Progress:    goal.Progress,
		CreatedAt:   goal.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   goal.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if goal.TargetDate != nil {
		targetDate := goal.TargetDate.Format("2006-01-02")
		response.TargetDate = &targetDate
	}
	return response
}

func filterGoalsByTeam(goals []models.Goal, teamID uuid.UUID) []models.Goal {
	filtered := goals[:0]
	for _, goal := range goals {
		if goal.TeamID == teamID {
			filtered = append(filtered, goal)
		}
	}
	return filtered
}
