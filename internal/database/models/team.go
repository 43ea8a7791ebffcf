package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// TeamLink is one entry of the Links jsonb column (useful URLs pinned by the team)
type TeamLink struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// Team represents a competitive roster and its workspace
type Team struct {
	BaseModel
	Name        string          `json:"name" gorm:"not null;size:40;uniqueIndex:idx_teams_name" validate:"required,min=2,max=40"`
	Tag         string          `json:"tag" gorm:"size:10" validate:"max=10"`
	Region      string          `json:"region" gorm:"size:20" validate:"max=20"`
	Description string          `json:"description" gorm:"size:200" validate:"max=200"`
	LogoURL     string          `json:"logo_url" gorm:"size:200" validate:"omitempty,url,max=200"`
	OwnerID     uuid.UUID       `json:"owner_id" gorm:"type:uuid;not null;index" validate:"required"`
	InviteCode  string          `json:"invite_code" gorm:"size:20;uniqueIndex:idx_teams_invite_code"`
	WebhookURL  string          `json:"webhook_url" gorm:"size:255" validate:"omitempty,url,max=255"` // Discord webhook for the team channel
	Links       json.RawMessage `json:"links" gorm:"type:jsonb"`                                      // []TeamLink

	// Relationships
	Owner     User         `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Members   []TeamMember `json:"members,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Players   []Player     `json:"players,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
	Matches   []Match      `json:"matches,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Schedules []Schedule   `json:"schedules,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Goals     []Goal       `json:"goals,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
