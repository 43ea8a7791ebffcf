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

// ConditionService handles business logic for daily wellness check-ins
type ConditionService struct {
	repo       repository.ConditionRepositoryInterface
	memberRepo repository.TeamMemberRepositoryInterface
	validator  *validator.Validate
}

// NewConditionService creates a new condition service
func NewConditionService(repo repository.ConditionRepositoryInterface, memberRepo repository.TeamMemberRepositoryInterface, validator *validator.Validate) *ConditionService {
	return &ConditionService{
		repo:       repo,
		memberRepo: memberRepo,
		validator:  validator,
	}
}

// UpsertConditionRequest represents the request to record today's check-in
type UpsertConditionRequest struct {
	TeamID        *uuid.UUID `json:"team_id,omitempty"`
	PhysicalScore int        `json:"physical_score" validate:"required,min=1,max=5"`
	MentalScore   int        `json:"mental_score" validate:"required,min=1,max=5"`
	SleepHours    float64    `json:"sleep_hours" validate:"min=0,max=24"`
	Note          string     `json:"note,omitempty" validate:"max=200"`
}

// ConditionResponse represents the response for check-in operations
type ConditionResponse struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	TeamID        *uuid.UUID `json:"team_id,omitempty"`
	Username      string     `json:"username,omitempty"`
	RecordedOn    string     `json:"recorded_on"`
	PhysicalScore int        `json:"physical_score"`
	MentalScore   int        `json:"mental_score"`
	SleepHours    float64    `json:"sleep_hours"`
	Note          string     `json:"note,omitempty"`
	UpdatedAt     string     `json:"updated_at"`
}

// UpsertToday records the actor's check-in for the current day. Submitting
// twice on the same day overwrites the earlier scores.
func (s *ConditionService) UpsertToday(actorID uuid.UUID, req *UpsertConditionRequest) (*ConditionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.TeamID != nil {
		if _, err := requireMember(s.memberRepo, *req.TeamID, actorID); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	condition, err := s.repo.GetByUserAndDate(actorID, today)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to get check-in: %w", err)
		}
		condition = &models.Condition{
			UserID:        actorID,
			TeamID:        req.TeamID,
			RecordedOn:    today,
			PhysicalScore: req.PhysicalScore,
			MentalScore:   req.MentalScore,
			SleepHours:    req.SleepHours,
			Note:          req.Note,
		}
		if err := s.repo.Create(condition); err != nil {
			return nil, fmt.Errorf("failed to create check-in: %w", err)
		}
		return s.toResponse(condition), nil
	}

	condition.PhysicalScore = req.PhysicalScore
	condition.MentalScore = req.MentalScore
	condition.SleepHours = req.SleepHours
	condition.Note = req.Note
	if req.TeamID != nil {
		condition.TeamID = req.TeamID
	}

	if err := s.repo.Update(condition); err != nil {
		return nil, fmt.Errorf("failed to update check-in: %w", err)
	}

	return s.toResponse(condition), nil
}

// GetMine retrieves the actor's check-ins inside a date range, oldest first.
// An empty range defaults to the last two weeks.
func (s *ConditionService) GetMine(actorID uuid.UUID, fromStr, toStr string) ([]ConditionResponse, error) {
	now := time.Now().UTC()
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	from := to.AddDate(0, 0, -13)

	var err error
	if toStr != "" {
		to, err = time.Parse("2006-01-02", toStr)
		if err != nil {
			return nil, &apperrors.ValidationError{Field: "to", Message: "must be a date in YYYY-MM-DD format"}
		}
	}
	if fromStr != "" {
		from, err = time.Parse("2006-01-02", fromStr)
		if err != nil {
			return nil, &apperrors.ValidationError{Field: "from", Message: "must be a date in YYYY-MM-DD format"}
		}
	}
	if from.After(to) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	conditions, err := s.repo.GetByUserRange(actorID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}

	items := make([]ConditionResponse, len(conditions))
	for i := range conditions {
		items[i] = *s.toResponse(&conditions[i])
	}
	return items, nil
}

// GetByTeamAndDate retrieves a team's check-ins for one day. The date defaults
// to today so a coach can glance at the current state before practice.
func (s *ConditionService) GetByTeamAndDate(actorID, teamID uuid.UUID, dateStr string) ([]ConditionResponse, error) {
	if _, err := requireMember(s.memberRepo, teamID, actorID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if dateStr != "" {
		var err error
		day, err = time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, &apperrors.ValidationError{Field: "date", Message: "must be a date in YYYY-MM-DD format"}
		}
	}

	conditions, err := s.repo.GetByTeamAndDate(teamID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}

	items := make([]ConditionResponse, len(conditions))
	for i := range conditions {
		items[i] = *s.toResponse(&conditions[i])
	}
	return items, nil
}

func (s *ConditionService) toResponse(condition *models.Condition) *ConditionResponse {
	return &ConditionResponse{
		ID:            condition.ID,
		UserID:        condition.UserID,
		TeamID:        condition.TeamID,
		Username:      condition.User.Username,
		RecordedOn:    condition.RecordedOn.Format("2006-01-02"),
		PhysicalScore: condition.PhysicalScore,
		MentalScore:   condition.MentalScore,
		SleepHours:    condition.SleepHours,
		Note:          condition.Note,
		UpdatedAt:     condition.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
