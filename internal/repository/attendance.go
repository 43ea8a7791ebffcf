package repository

import (
	"valo-platform-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendanceRepository handles database operations for event RSVPs
type AttendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// Create creates a new RSVP
func (r *AttendanceRepository) Create(attendance *models.Attendance) error {
	return r.db.Create(attendance).Error
}

// GetByID retrieves an RSVP by ID
func (r *AttendanceRepository) GetByID(id uuid.UUID) (*models.Attendance, error) {
	var attendance models.Attendance
	err := r.db.First(&attendance, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &attendance, nil
}

// GetByScheduleID retrieves all RSVPs of an event with the accounts loaded
func (r *AttendanceRepository) GetByScheduleID(scheduleID uuid.UUID) ([]models.Attendance, error) {
	var attendance []models.Attendance
	err := r.db.Preload("User").Where("schedule_id = ?", scheduleID).Order("responded_at ASC").Find(&attendance).Error
	return attendance, err
}

// GetByScheduleAndUser retrieves a user's RSVP for an event
func (r *AttendanceRepository) GetByScheduleAndUser(scheduleID, userID uuid.UUID) (*models.Attendance, error) {
	var attendance models.Attendance
	err := r.db.First(&attendance, "schedule_id = ? AND user_id = ?", scheduleID, userID).Error
	if err != nil {
		return nil, err
	}
	return &attendance, nil
}

// CountByStatus tallies an event's RSVPs per status
func (r *AttendanceRepository) CountByStatus(scheduleID uuid.UUID) (map[models.AttendanceStatus]int64, error) {
	type row struct {
		Status models.AttendanceStatus
		Count  int64
	}
	var rows []row
	err := r.db.Model(&models.Attendance{}).
		Select("status, count(*) as count").
		Where("schedule_id = ?", scheduleID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.AttendanceStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}

// Update updates an RSVP
func (r *AttendanceRepository) Update(attendance *models.Attendance) error {
	return r.db.Save(attendance).Error
}

// Delete deletes an RSVP
func (r *AttendanceRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Attendance{}, "id = ?", id).Error
}
