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

// ObjectiveService handles business logic for scrim objectives
type ObjectiveService struct {
	repo         repository.ScrimObjectiveRepositoryInterface
	matchRepo    repository.MatchRepositoryInterface
	scheduleRepo repository.ScheduleRepositoryInterface
	memberRepo   repository.TeamMemberRepositoryInterface
	validator    *validator.Validate
}

// NewObjectiveService creates a new objective service
func NewObjectiveService(repo repository.ScrimObjectiveRepositoryInterface, matchRepo repository.MatchRepositoryInterface, scheduleRepo repository.ScheduleRepositoryInterface, memberRepo repository.TeamMemberRepositoryInterface, validator *validator.Validate) *ObjectiveService {
	return &ObjectiveService{
		repo:         repo,
		matchRepo:    matchRepo,
		scheduleRepo: scheduleRepo,
		memberRepo:   memberRepo,
		validator:    validator,
	}
}

// CreateObjectiveRequest represents the request to create a scrim objective
type CreateObjectiveRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=100"`
	Description string `json:"description,omitempty" validate:"max=300"`
	SortOrder   int    `json:"sort_order,omitempty"`
}

// UpdateObjectiveRequest represents the request to update a scrim objective
type UpdateObjectiveRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=300"`
	Achieved    *bool   `json:"achieved,omitempty"`
	Notes       *string `json:"notes,omitempty" validate:"omitempty,max=300"`
	SortOrder   *int    `json:"sort_order,omitempty"`
}

// ObjectiveResponse represents the response for objective operations
type ObjectiveResponse struct {
	ID          uuid.UUID  `json:"id"`
	TeamID      uuid.UUID  `json:"team_id"`
	MatchID     *uuid.UUID `json:"match_id,omitempty"`
	ScheduleID  *uuid.UUID `json:"schedule_id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Achieved    *bool      `json:"achieved,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	SortOrder   int        `json:"sort_order"`
	CreatedAt   string     `json:"created_at"`
	UpdatedAt   string     `json:"updated_at"`
}

// ObjectiveListResponse represents a paginated list of objectives
type ObjectiveListResponse struct {
	Items    []ObjectiveResponse `json:"items"`
	Total    int64               `json:"total"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"page_size"`
}

// CreateForMatch attaches a new objective to a match
func (s *ObjectiveService) CreateForMatch(actorID, matchID uuid.UUID, req *CreateObjectiveRequest) (*ObjectiveResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

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

	objective := &models.ScrimObjective{
		TeamID:      match.TeamID,
		MatchID:     &matchID,
		Title:       req.Title,
		Description: req.Description,
		SortOrder:   req.SortOrder,
	}
	if err := s.repo.Create(objective); err != nil {
		return nil, fmt.Errorf("failed to create objective: %w", err)
	}

	return s.toResponse(objective), nil
}

// CreateForSchedule attaches a new objective to a scheduled event
func (s *ObjectiveService) CreateForSchedule(actorID, scheduleID uuid.UUID, req *CreateObjectiveRequest) (*ObjectiveResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	schedule, err := s.scheduleRepo.GetByID(scheduleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}
	if _, err := requireMember(s.memberRepo, schedule.TeamID, actorID); err != nil {
		return nil, err
	}

	objective := &models.ScrimObjective{
		TeamID:      schedule.TeamID,
		ScheduleID:  &scheduleID,
		Title:       req.Title,
		Description: req.Description,
		SortOrder:   req.SortOrder,
	}
	if err := s.repo.Create(objective); err != nil {
		return nil, fmt.Errorf("failed to create objective: %w", err)
	}

	return s.toResponse(objective), nil
}

// GetByMatchID retrieves the objectives attached to a match in display order
func (s *ObjectiveService) GetByMatchID(actorID, matchID uuid.UUID) ([]ObjectiveResponse, error) {
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

	objectives, err := s.repo.GetByMatchID(matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list objectives: %w", err)
	}
	return s.toResponses(objectives), nil
}

// GetByScheduleID retrieves the objectives attached to a scheduled event in display order
func (s *ObjectiveService) GetByScheduleID(actorID, scheduleID uuid.UUID) ([]ObjectiveResponse, error) {
	schedule, err := s.scheduleRepo.GetByID(scheduleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}
	if _, err := requireMember(s.memberRepo, schedule.TeamID, actorID); err != nil {
		return nil, err
	}

	objectives, err := s.repo.GetByScheduleID(scheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list objectives: %w", err)
	}
	return s.toResponses(objectives), nil
}

// GetByTeamID retrieves a team's objectives with pagination, newest first
func (s *ObjectiveService) GetByTeamID(actorID, teamID uuid.UUID, page, pageSize int) (*ObjectiveListResponse, error) {
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

	objectives, total, err := s.repo.GetByTeamID(teamID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list objectives: %w", err)
	}

	return &ObjectiveListResponse{
		Items:    s.toResponses(objectives),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates an objective, including the achieved verdict after review
func (s *ObjectiveService) Update(actorID, objectiveID uuid.UUID, req *UpdateObjectiveRequest) (*ObjectiveResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	objective, err := s.getVisible(actorID, objectiveID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		objective.Title = *req.Title
	}
	if req.Description != nil {
		objective.Description = *req.Description
	}
	if req.Achieved != nil {
		objective.Achieved = req.Achieved
	}
	if req.Notes != nil {
		objective.Notes = *req.Notes
	}
	if req.SortOrder != nil {
		objective.SortOrder = *req.SortOrder
	}

	if err := s.repo.Update(objective); err != nil {
		return nil, fmt.Errorf("failed to update objective: %w", err)
	}

	return s.toResponse(objective), nil
}

// Delete deletes an objective
func (s *ObjectiveService) Delete(actorID, objectiveID uuid.UUID) error {
	if _, err := s.getVisible(actorID, objectiveID); err != nil {
		return err
	}
	if err := s.repo.Delete(objectiveID); err != nil {
		return fmt.Errorf("failed to delete objective: %w", err)
	}
	return nil
}

func (s *ObjectiveService) getVisible(actorID, objectiveID uuid.UUID) (*models.ScrimObjective, error) {
	objective, err := s.repo.GetByID(objectiveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrScrimObjectiveNotFound
		}
		return nil, fmt.Errorf("failed to get objective: %w", err)
	}
	if _, err := requireMember(s.memberRepo, objective.TeamID, actorID); err != nil {
		return nil, err
	}
	return objective, nil
}

func (s *ObjectiveService) toResponses(objectives []models.ScrimObjective) []ObjectiveResponse {
	items := make([]ObjectiveResponse, len(objectives))
	for i := range objectives {
		items[i] = *s.toResponse(&objectives[i])
	}
	return items
}

func (s *ObjectiveService) toResponse(objective *models.ScrimObjective) *ObjectiveResponse {
	return &ObjectiveResponse{
		ID:          objective.ID,
		TeamID:      objective.TeamID,
		MatchID:     objective.MatchID,
		ScheduleID:  objective.ScheduleID,
		Title:       objective.Title,
		Description: objective.Description,
		Achieved:    objective.Achieved,
		Notes:       objective.Notes,
		SortOrder:   objective.SortOrder,
		CreatedAt:   objective.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   objective.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
