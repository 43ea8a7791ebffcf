package models

import (
	"github.com/google/uuid"
)

// ScrimObjective represents a focus item for a scrim block, reviewed afterwards
// with an achieved/missed verdict. Objectives can hang off a match, a scheduled
// event, or just the team.
type ScrimObjective struct {
	BaseModel
	TeamID      uuid.UUID  `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	MatchID     *uuid.UUID `json:"match_id,omitempty" gorm:"type:uuid;index"`
	ScheduleID  *uuid.UUID `json:"schedule_id,omitempty" gorm:"type:uuid;index"`
	Title       string     `json:"title" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Description string     `json:"description" gorm:"size:300" validate:"max=300"`
	Achieved    *bool      `json:"achieved,omitempty"` // nil until reviewed
	Notes       string     `json:"notes" gorm:"size:300" validate:"max=300"`
	SortOrder   int        `json:"sort_order" gorm:"default:0"`

	// Relationships
	Team     Team      `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Match    *Match    `json:"match,omitempty" gorm:"foreignKey:MatchID;constraint:OnDelete:SET NULL"`
	Schedule *Schedule `json:"schedule,omitempty" gorm:"foreignKey:ScheduleID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for ScrimObjective
func (ScrimObjective) TableName() string {
	return "scrim_objectives"
}
