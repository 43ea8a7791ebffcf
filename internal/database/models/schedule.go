package models

import (
	"time"

	"github.com/google/uuid"
)

// Schedule represents a calendar event for a team
type Schedule struct {
	BaseModel
	TeamID              uuid.UUID      `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title               string         `json:"title" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	EventType           ScheduleType   `json:"event_type" gorm:"type:varchar(20);not null;default:'practice'" validate:"required"`
	Opponent            string         `json:"opponent" gorm:"size:100" validate:"max=100"`
	StartsAt            time.Time      `json:"starts_at" gorm:"not null;index" validate:"required"`
	EndsAt              time.Time      `json:"ends_at" gorm:"not null" validate:"required"`
	Location            string         `json:"location" gorm:"size:200" validate:"max=200"` // server, voice channel, venue
	Status              ScheduleStatus `json:"status" gorm:"type:varchar(20);not null;default:'scheduled'"`
	RemindBeforeMinutes int            `json:"remind_before_minutes" gorm:"default:60" validate:"min=0,max=1440"`
	ReminderSentAt      *time.Time     `json:"reminder_sent_at,omitempty"`
	Notes               string         `json:"notes" gorm:"type:text"`

	// Relationships
	Team       Team         `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Attendance []Attendance `json:"attendance,omitempty" gorm:"foreignKey:ScheduleID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Schedule
func (Schedule) TableName() string {
	return "schedules"
}
