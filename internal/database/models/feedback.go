package models

import (
	"github.com/google/uuid"
)

// FeedbackCategory represents what aspect of play a note is about
type FeedbackCategory string

const (
	FeedbackCategoryGameplay      FeedbackCategory = "gameplay"
	FeedbackCategoryCommunication FeedbackCategory = "communication"
	FeedbackCategoryStrategy      FeedbackCategory = "strategy"
	FeedbackCategoryMental        FeedbackCategory = "mental"
	FeedbackCategoryGeneral       FeedbackCategory = "general"
)

// IsValid checks if the FeedbackCategory is valid
func (c FeedbackCategory) IsValid() bool {
	switch c {
	case FeedbackCategoryGameplay, FeedbackCategoryCommunication, FeedbackCategoryStrategy, FeedbackCategoryMental, FeedbackCategoryGeneral:
		return true
	}
	return false
}

// Feedback represents a coach or peer note, optionally tied to a match and a recipient.
// A nil RecipientID addresses the whole team.
type Feedback struct {
	BaseModel
	TeamID      uuid.UUID        `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	MatchID     *uuid.UUID       `json:"match_id,omitempty" gorm:"type:uuid;index"`
	AuthorID    uuid.UUID        `json:"author_id" gorm:"type:uuid;not null;index" validate:"required"`
	RecipientID *uuid.UUID       `json:"recipient_id,omitempty" gorm:"type:uuid;index"`
	Category    FeedbackCategory `json:"category" gorm:"type:varchar(20);not null;default:'general'" validate:"required"`
	Content     string           `json:"content" gorm:"type:text;not null" validate:"required,min=1"`
	Rating      *int             `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`

	// Relationships
	Team      Team   `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Match     *Match `json:"match,omitempty" gorm:"foreignKey:MatchID;constraint:OnDelete:SET NULL"`
	Author    User   `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Recipient *User  `json:"recipient,omitempty" gorm:"foreignKey:RecipientID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Feedback
func (Feedback) TableName() string {
	return "feedback"
}
