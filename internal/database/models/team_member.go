package models

import (
	"time"

	"github.com/google/uuid"
)

// TeamMemberRole represents what a user does inside a team
type TeamMemberRole string

const (
	TeamMemberRoleOwner      TeamMemberRole = "owner"
	TeamMemberRoleCoach      TeamMemberRole = "coach"
	TeamMemberRoleCaptain    TeamMemberRole = "captain"
	TeamMemberRolePlayer     TeamMemberRole = "player"
	TeamMemberRoleSubstitute TeamMemberRole = "substitute"
	TeamMemberRoleAnalyst    TeamMemberRole = "analyst"
)

// IsValid checks if the TeamMemberRole is valid
func (r TeamMemberRole) IsValid() bool {
	switch r {
	case TeamMemberRoleOwner, TeamMemberRoleCoach, TeamMemberRoleCaptain, TeamMemberRolePlayer, TeamMemberRoleSubstitute, TeamMemberRoleAnalyst:
		return true
	}
	return false
}

// CanManageTeam reports whether the role may change team settings, roster and members.
func (r TeamMemberRole) CanManageTeam() bool {
	return r == TeamMemberRoleOwner || r == TeamMemberRoleCoach
}

// TeamMember links a user to a team with a role
type TeamMember struct {
	BaseModel
	TeamID   uuid.UUID      `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_members_team_user" validate:"required"`
	UserID   uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_members_team_user" validate:"required"`
	Role     TeamMemberRole `json:"role" gorm:"type:varchar(20);not null;default:'player'" validate:"required"`
	JoinedAt time.Time      `json:"joined_at" gorm:"not null"`
	IsActive bool           `json:"is_active" gorm:"default:true"`

	// Relationships
	Team Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}
