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

// ScheduleService handles business logic for calendar events and RSVPs
type ScheduleService struct {
	repo           repository.ScheduleRepositoryInterface
	attendanceRepo repository.AttendanceRepositoryInterface
	memberRepo     repository.TeamMemberRepositoryInterface
	validator      *validator.Validate
}

// NewScheduleService creates a new schedule service
func NewScheduleService(repo repository.ScheduleRepositoryInterface, attendanceRepo repository.AttendanceRepositoryInterface, memberRepo repository.TeamMemberRepositoryInterface, validator *validator.Validate) *ScheduleService {
	return &ScheduleService{
		repo:           repo,
		attendanceRepo: attendanceRepo,
		memberRepo:     memberRepo,
		validator:      validator,
	}
}

// CreateScheduleRequest represents the request to create a calendar event
type CreateScheduleRequest struct {
	TeamID              uuid.UUID           `json:"team_id" validate:"required"`
	Title               string              `json:"title" validate:"required,min=1,max=100"`
	EventType           models.ScheduleType `json:"event_type" validate:"omitempty"`
	Opponent            string              `json:"opponent" validate:"max=100"`
	StartsAt            time.Time           `json:"starts_at" validate:"required"`
	EndsAt              time.Time           `json:"ends_at" validate:"required"`
	Location            string              `json:"location" validate:"max=200"`
	RemindBeforeMinutes *int                `json:"remind_before_minutes,omitempty" validate:"omitempty,min=0,max=1440"`
	Notes               string              `json:"notes"`
}

// UpdateScheduleRequest represents the request to update a calendar event
type UpdateScheduleRequest struct {
	Title               *string                `json:"title,omitempty" validate:"omitempty,min=1,max=100"`
	EventType           *models.ScheduleType   `json:"event_type,omitempty"`
	Opponent            *string                `json:"opponent,omitempty" validate:"omitempty,max=100"`
	StartsAt            *time.Time             `json:"starts_at,omitempty"`
	EndsAt              *time.Time             `json:"ends_at,omitempty"`
	Location            *string                `json:"location,omitempty" validate:"omitempty,max=200"`
	Status              *models.ScheduleStatus `json:"status,omitempty"`
	RemindBeforeMinutes *int                   `json:"remind_before_minutes,omitempty" validate:"omitempty,min=0,max=1440"`
	Notes               *string                `json:"notes,omitempty"`
}

// UpsertAttendanceRequest represents the caller's RSVP for an event
type UpsertAttendanceRequest struct {
	Status models.AttendanceStatus `json:"status" validate:"required"`
	Note   string                  `json:"note" validate:"max=200"`
}

// ScheduleResponse represents the response for schedule operations
type ScheduleResponse struct {
	ID                  uuid.UUID             `json:"id"`
	TeamID              uuid.UUID             `json:"team_id"`
	Title               string                `json:"title"`
	EventType           models.ScheduleType   `json:"event_type"`
	Opponent            string                `json:"opponent,omitempty"`
	StartsAt            string                `json:"starts_at"`
	EndsAt              string                `json:"ends_at"`
	Location            string                `json:"location,omitempty"`
	Status              models.ScheduleStatus `json:"status"`
	RemindBeforeMinutes int                   `json:"remind_before_minutes"`
	ReminderSentAt      *string               `json:"reminder_sent_at,omitempty"`
	Notes               string                `json:"notes,omitempty"`
	CreatedAt           string                `json:"created_at"`
	UpdatedAt           string                `json:"updated_at"`
}

// ScheduleListResponse represents a paginated list of schedules
type ScheduleListResponse struct {
	Items    []ScheduleResponse `json:"items"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

// AttendanceResponse represents one member's RSVP
type AttendanceResponse struct {
	ID          uuid.UUID               `json:"id"`
	ScheduleID  uuid.UUID               `json:"schedule_id"`
	UserID      uuid.UUID               `json:"user_id"`
	Username    string                  `json:"username,omitempty"`
	DisplayName string                  `json:"display_name,omitempty"`
	Status      models.AttendanceStatus `json:"status"`
	Note        string                  `json:"note,omitempty"`
	RespondedAt string                  `json:"responded_at"`
}

// AttendanceSummary is the full RSVP state of one event
type AttendanceSummary struct {
	Items  []AttendanceResponse             `json:"items"`
	Counts map[models.AttendanceStatus]int64 `json:"counts"`
}

// Create creates a calendar event; the caller must be a team member
func (s *ScheduleService) Create(actorID uuid.UUID, req *CreateScheduleRequest) (*ScheduleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	eventType := req.EventType
	if eventType == "" {
		eventType = models.ScheduleTypePractice
	}
	if !eventType.IsValid() {
		return nil, errors.New("invalid event type")
	}
	if !req.EndsAt.After(req.StartsAt) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	if _, err := requireMember(s.memberRepo, req.TeamID, actorID); err != nil {
		return nil, err
	}

	conflict, err := s.repo.CheckConflict(req.TeamID, req.StartsAt, req.EndsAt, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check schedule conflicts: %w", err)
	}
	if conflict {
		return nil, apperrors.ErrScheduleConflict
	}

	schedule := &models.Schedule{
		TeamID:              req.TeamID,
		Title:               req.Title,
		EventType:           eventType,
		Opponent:            req.Opponent,
		StartsAt:            req.StartsAt,
		EndsAt:              req.EndsAt,
		Location:            req.Location,
		Status:              models.ScheduleStatusScheduled,
		RemindBeforeMinutes: 60,
		Notes:               req.Notes,
	}
	if req.RemindBeforeMinutes != nil {
		schedule.RemindBeforeMinutes = *req.RemindBeforeMinutes
	}

	if err := s.repo.Create(schedule); err != nil {
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}

	return s.toResponse(schedule), nil
}

// GetByID retrieves a calendar event; the caller must be a team member
func (s *ScheduleService) GetByID(actorID, scheduleID uuid.UUID) (*ScheduleResponse, error) {
	schedule, err := s.getVisible(actorID, scheduleID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(schedule), nil
}

// GetByTeamID lists a team's calendar events, earliest first
func (s *ScheduleService) GetByTeamID(actorID, teamID uuid.UUID, page, pageSize int) (*ScheduleListResponse, error) {
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

	schedules, total, err := s.repo.GetByTeamID(teamID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedules: %w", err)
	}

	return s.toListResponse(schedules, total, page, pageSize), nil
}

// GetUpcoming lists a team's events inside the next days window
func (s *ScheduleService) GetUpcoming(actorID, teamID uuid.UUID, days, page, pageSize int) (*ScheduleListResponse, error) {
	if _, err := requireMember(s.memberRepo, teamID, actorID); err != nil {
		return nil, err
	}
	if days < 1 || days > 90 {
		days = 7
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	schedules, total, err := s.repo.GetUpcoming(teamID, days, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get upcoming schedules: %w", err)
	}

	return s.toListResponse(schedules, total, page, pageSize), nil
}

// Update updates a calendar event; the caller must be a team member
func (s *ScheduleService) Update(actorID, scheduleID uuid.UUID, req *UpdateScheduleRequest) (*ScheduleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	schedule, err := s.getVisible(actorID, scheduleID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		schedule.Title = *req.Title
	}
	if req.EventType != nil {
		if !req.EventType.IsValid() {
			return nil, errors.New("invalid event type")
		}
		schedule.EventType = *req.EventType
	}
	if req.Opponent != nil {
		schedule.Opponent = *req.Opponent
	}
	timesMoved := false
	if req.StartsAt != nil {
		schedule.StartsAt = *req.StartsAt
		timesMoved = true
	}
	if req.EndsAt != nil {
		schedule.EndsAt = *req.EndsAt
		timesMoved = true
	}
	if req.Location != nil {
		schedule.Location = *req.Location
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		schedule.Status = *req.Status
	}
	if req.RemindBeforeMinutes != nil {
		schedule.RemindBeforeMinutes = *req.RemindBeforeMinutes
	}
	if req.Notes != nil {
		schedule.Notes = *req.Notes
	}

	if !schedule.EndsAt.After(schedule.StartsAt) {
		return nil, apperrors.ErrInvalidTimeRange
	}
	if timesMoved {
		conflict, err := s.repo.CheckConflict(schedule.TeamID, schedule.StartsAt, schedule.EndsAt, &schedule.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check schedule conflicts: %w", err)
		}
		if conflict {
			return nil, apperrors.ErrScheduleConflict
		}
		// Moved events get their reminder again.
		schedule.ReminderSentAt = nil
	}

	if err := s.repo.Update(schedule); err != nil {
		return nil, fmt.Errorf("failed to update schedule: %w", err)
	}

	return s.toResponse(schedule), nil
}

// Delete deletes a calendar event; owner or coach only
func (s *ScheduleService) Delete(actorID, scheduleID uuid.UUID) error {
	schedule, err := s.repo.GetByID(scheduleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrScheduleNotFound
		}
		return fmt.Errorf("failed to get schedule: %w", err)
	}

	if _, err := requireManager(s.memberRepo, schedule.TeamID, actorID); err != nil {
		return err
	}

	if err := s.repo.Delete(scheduleID); err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	return nil
}

// GetAttendance returns every RSVP for an event plus counts per status
func (s *ScheduleService) GetAttendance(actorID, scheduleID uuid.UUID) (*AttendanceSummary, error) {
	if _, err := s.getVisible(actorID, scheduleID); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.GetByScheduleID(scheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}
	counts, err := s.attendanceRepo.CountByStatus(scheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to count attendance: %w", err)
	}

	items := make([]AttendanceResponse, len(records))
	for i := range records {
		items[i] = toAttendanceResponse(&records[i])
	}
	return &AttendanceSummary{Items: items, Counts: counts}, nil
}

// UpsertAttendance stores or replaces the caller's RSVP for an event
func (s *ScheduleService) UpsertAttendance(actorID, scheduleID uuid.UUID, req *UpsertAttendanceRequest) (*AttendanceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Status.IsValid() {
		return nil, errors.New("invalid attendance status")
	}

	if _, err := s.getVisible(actorID, scheduleID); err != nil {
		return nil, err
	}

	attendance, err := s.attendanceRepo.GetByScheduleAndUser(scheduleID, actorID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to get attendance: %w", err)
		}
		attendance = &models.Attendance{
			ScheduleID:  scheduleID,
			UserID:      actorID,
			Status:      req.Status,
			Note:        req.Note,
			RespondedAt: time.Now(),
		}
		if err := s.attendanceRepo.Create(attendance); err != nil {
			return nil, fmt.Errorf("failed to create attendance: %w", err)
		}
		response := toAttendanceResponse(attendance)
		return &response, nil
	}

	attendance.Status = req.Status
	attendance.Note = req.Note
	attendance.RespondedAt = time.Now()
	if err := s.attendanceRepo.Update(attendance); err != nil {
		return nil, fmt.Errorf("failed to update attendance: %w", err)
	}
	response := toAttendanceResponse(attendance)
	return &response, nil
}

// getVisible loads a schedule the caller is allowed to see.
func (s *ScheduleService) getVisible(actorID, scheduleID uuid.UUID) (*models.Schedule, error) {
	schedule, err := s.repo.GetByID(scheduleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}
	if _, err := requireMember(s.memberRepo, schedule.TeamID, actorID); err != nil {
		return nil, err
	}
	return schedule, nil
}

func (s *ScheduleService) toListResponse(schedules []models.Schedule, total int64, page, pageSize int) *ScheduleListResponse {
	items := make([]ScheduleResponse, len(schedules))
	for i := range schedules {
		items[i] = *s.toResponse(&schedules[i])
	}
	return &ScheduleListResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}

// toResponse converts a schedule model to response
func (s *ScheduleService) toResponse(schedule *models.Schedule) *ScheduleResponse {
	response := &ScheduleResponse{
		ID:                  schedule.ID,
		TeamID:              schedule.TeamID,
		Title:               schedule.Title,
		EventType:           schedule.EventType,
		Opponent:            schedule.Opponent,
		StartsAt:            schedule.StartsAt.Format("2006-01-02T15:04:05Z07:00"),
		EndsAt:              schedule.EndsAt.Format("2006-01-02T15:04:05Z07:00"),
		Location:            schedule.Location,
		Status:              schedule.Status,
		RemindBeforeMinutes: schedule.RemindBeforeMinutes,
		Notes:               schedule.Notes,
		CreatedAt:           schedule.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:           schedule.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if schedule.ReminderSentAt != nil {
		sentAt := schedule.ReminderSentAt.Format("2006-01-02T15:04:05Z07:00")
		response.ReminderSentAt = &sentAt
	}
	return response
}

func toAttendanceResponse(attendance *models.Attendance) AttendanceResponse {
	response := AttendanceResponse{
		ID:          attendance.ID,
		ScheduleID:  attendance.ScheduleID,
		UserID:      attendance.UserID,
		Status:      attendance.Status,
		Note:        attendance.Note,
		RespondedAt: attendance.RespondedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if attendance.User.ID != uuid.Nil {
		response.Username = attendance.User.Username
		response.DisplayName = attendance.User.DisplayName
	}
	return response
}
