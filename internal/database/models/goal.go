package models

import (
	"time"

	"github.com/google/uuid"
)

// GoalStatus represents the lifecycle of a goal
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusAbandoned GoalStatus = "abandoned"
)

// IsValid checks if the GoalStatus is valid
func (s GoalStatus) IsValid() bool {
	switch s {
	case GoalStatusActive, GoalStatusCompleted, GoalStatusAbandoned:
		return true
	}
	return false
}

// Goal represents a team-wide or per-player objective tracked over time
type Goal struct {
	BaseModel
	TeamID      uuid.UUID  `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	PlayerID    *uuid.UUID `json:"player_id,omitempty" gorm:"type:uuid;index"` // nil = whole team
	Title       string     `json:"title" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Description string     `json:"description" gorm:"size:500" validate:"max=500"`
	Status      GoalStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'"`
	Progress    int        `json:"progress" gorm:"default:0" validate:"min=0,max=100"`
	TargetDate  *time.Time `json:"target_date,omitempty" gorm:"type:date"`

	// Relationships
	Team   Team    `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Player *Player `json:"player,omitempty" gorm:"foreignKey:PlayerID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Goal
func (Goal) TableName() string {
	return "goals"
}
