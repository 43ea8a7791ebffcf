package models

import (
	"time"

	"github.com/google/uuid"
)

// Attendance represents a member's RSVP for one calendar event
type Attendance struct {
	BaseModel
	ScheduleID  uuid.UUID        `json:"schedule_id" gorm:"type:uuid;not null;uniqueIndex:idx_attendance_schedule_user" validate:"required"`
	UserID      uuid.UUID        `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_attendance_schedule_user" validate:"required"`
	Status      AttendanceStatus `json:"status" gorm:"type:varchar(20);not null;default:'tentative'" validate:"required"`
	Note        string           `json:"note" gorm:"size:200" validate:"max=200"`
	RespondedAt time.Time        `json:"responded_at" gorm:"not null"`

	// Relationships
	Schedule Schedule `json:"schedule,omitempty" gorm:"foreignKey:ScheduleID;constraint:OnDelete:CASCADE"`
	User     User     `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Attendance
func (Attendance) TableName() string {
	return "attendance"
}
