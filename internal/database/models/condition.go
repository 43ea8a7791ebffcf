package models

import (
	"time"

	"github.com/google/uuid"
)

// Condition represents a player's daily wellness check-in, one row per user per day
type Condition struct {
	BaseModel
	UserID        uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_conditions_user_day" validate:"required"`
	TeamID        *uuid.UUID `json:"team_id,omitempty" gorm:"type:uuid;index"`
	RecordedOn    time.Time  `json:"recorded_on" gorm:"type:date;not null;uniqueIndex:idx_conditions_user_day" validate:"required"`
	PhysicalScore int        `json:"physical_score" gorm:"not null" validate:"required,min=1,max=5"`
	MentalScore   int        `json:"mental_score" gorm:"not null" validate:"required,min=1,max=5"`
	SleepHours    float64    `json:"sleep_hours" validate:"min=0,max=24"`
	Note          string     `json:"note" gorm:"size:200" validate:"max=200"`

	// Relationships
	User User  `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Condition
func (Condition) TableName() string {
	return "conditions"
}
