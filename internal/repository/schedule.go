package repository

import (
	"time"

	"valo-platform-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleRepository handles database operations for calendar events
type ScheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository creates a new schedule repository
func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// Create creates a new schedule
func (r *ScheduleRepository) Create(schedule *models.Schedule) error {
	return r.db.Create(schedule).Error
}

// GetByID retrieves a schedule by ID
func (r *ScheduleRepository) GetByID(id uuid.UUID) (*models.Schedule, error) {
	var schedule models.Schedule
	err := r.db.First(&schedule, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

// GetByTeamID retrieves all schedules of a team with pagination, soonest first
func (r *ScheduleRepository) GetByTeamID(teamID uuid.UUID, limit, offset int) ([]models.Schedule, int64, error) {
	var schedules []models.Schedule
	var total int64

	if err := r.db.Model(&models.Schedule{}).Where("team_id = ?", teamID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("team_id = ?", teamID).Order("starts_at ASC").Limit(limit).Offset(offset).Find(&schedules).Error
	return schedules, total, err
}

// GetUpcoming retrieves a team's scheduled events within the next days
func (r *ScheduleRepository) GetUpcoming(teamID uuid.UUID, days int, limit, offset int) ([]models.Schedule, int64, error) {
	var schedules []models.Schedule
	var total int64

	now := time.Now()
	until := now.AddDate(0, 0, days)
	query := r.db.Model(&models.Schedule{}).
		Where("team_id = ? AND status = ? AND starts_at >= ? AND starts_at <= ?", teamID, models.ScheduleStatusScheduled, now, until)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("starts_at ASC").Limit(limit).Offset(offset).Find(&schedules).Error
	return schedules, total, err
}

// GetDueForReminder retrieves scheduled events whose reminder window has opened
// and that have not been reminded yet.
func (r *ScheduleRepository) GetDueForReminder(now time.Time) ([]models.Schedule, error) {
	var schedules []models.Schedule
	err := r.db.
		Where("status = ? AND reminder_sent_at IS NULL AND starts_at > ?", models.ScheduleStatusScheduled, now).
		Where("starts_at - (remind_before_minutes * interval '1 minute') <= ?", now).
		Find(&schedules).Error
	return schedules, err
}

// MarkReminderSent stamps the reminder time on a schedule
func (r *ScheduleRepository) MarkReminderSent(id uuid.UUID, at time.Time) error {
	return r.db.Model(&models.Schedule{}).Where("id = ?", id).Update("reminder_sent_at", at).Error
}

// Update updates a schedule
func (r *ScheduleRepository) Update(schedule *models.Schedule) error {
	return r.db.Save(schedule).Error
}

// Delete deletes a schedule
func (r *ScheduleRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Schedule{}, "id = ?", id).Error
}

// CheckConflict checks for overlapping events of the same team
func (r *ScheduleRepository) CheckConflict(teamID uuid.UUID, startsAt, endsAt time.Time, excludeID *uuid.UUID) (bool, error) {
	query := r.db.Model(&models.Schedule{}).Where(
		"team_id = ? AND status = ? AND starts_at < ? AND ends_at > ?",
		teamID, models.ScheduleStatusScheduled, endsAt, startsAt,
	)

	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}
