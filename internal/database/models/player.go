package models

import (
	"github.com/google/uuid"
)

// PlayerRole represents the in-game role a player mains
type PlayerRole string

const (
	PlayerRoleDuelist    PlayerRole = "duelist"
	PlayerRoleInitiator  PlayerRole = "initiator"
	PlayerRoleController PlayerRole = "controller"
	PlayerRoleSentinel   PlayerRole = "sentinel"
	PlayerRoleFlex       PlayerRole = "flex"
)

// IsValid checks if the PlayerRole is valid
func (r PlayerRole) IsValid() bool {
	switch r {
	case PlayerRoleDuelist, PlayerRoleInitiator, PlayerRoleController, PlayerRoleSentinel, PlayerRoleFlex:
		return true
	}
	return false
}

// Player represents a competitive identity on a roster. A player may be linked
// to a platform account via UserID; scrim opponents tracked for scouting are not.
type Player struct {
	BaseModel
	TeamID      *uuid.UUID `json:"team_id,omitempty" gorm:"type:uuid;index"`
	UserID      *uuid.UUID `json:"user_id,omitempty" gorm:"type:uuid;index"`
	PUUID       string     `json:"puuid" gorm:"size:36;uniqueIndex:idx_players_puuid,where:puuid <> ''" validate:"omitempty,max=36"`
	GameName    string     `json:"game_name" gorm:"not null;size:50" validate:"required,min=1,max=50"`
	TagLine     string     `json:"tag_line" gorm:"size:10" validate:"max=10"`
	Region      string     `json:"region" gorm:"size:20" validate:"max=20"`
	Role        PlayerRole `json:"role" gorm:"type:varchar(20);not null;default:'flex'"`
	CurrentRank string     `json:"current_rank" gorm:"size:30" validate:"max=30"`
	IsActive    bool       `json:"is_active" gorm:"default:true"`

	// Relationships
	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Player
func (Player) TableName() string {
	return "players"
}
