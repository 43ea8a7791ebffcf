package models

import (
	"time"

	"github.com/google/uuid"
)

// MatchCategory represents the kind of game a match was
type MatchCategory string

const (
	MatchCategoryScrim      MatchCategory = "scrim"
	MatchCategoryRanked     MatchCategory = "ranked"
	MatchCategoryTournament MatchCategory = "tournament"
	MatchCategoryCustom     MatchCategory = "custom"
	MatchCategoryPractice   MatchCategory = "practice"
)

// MatchResult represents the outcome from the team's perspective
type MatchResult string

const (
	MatchResultWin  MatchResult = "win"
	MatchResultLoss MatchResult = "loss"
	MatchResultDraw MatchResult = "draw"
)

// MatchSource represents how the match record entered the system
type MatchSource string

const (
	MatchSourceManual MatchSource = "manual"
	MatchSourceImport MatchSource = "import"
	MatchSourceOCR    MatchSource = "ocr"
)

// IsValid checks if the MatchCategory is valid
func (c MatchCategory) IsValid() bool {
	switch c {
	case MatchCategoryScrim, MatchCategoryRanked, MatchCategoryTournament, MatchCategoryCustom, MatchCategoryPractice:
		return true
	}
	return false
}

// IsValid checks if the MatchResult is valid
func (r MatchResult) IsValid() bool {
	switch r {
	case MatchResultWin, MatchResultLoss, MatchResultDraw:
		return true
	}
	return false
}

// IsValid checks if the MatchSource is valid
func (s MatchSource) IsValid() bool {
	switch s {
	case MatchSourceManual, MatchSourceImport, MatchSourceOCR:
		return true
	}
	return false
}

// Match represents one played game for a team
type Match struct {
	BaseModel
	TeamID        uuid.UUID     `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	MatchRef      string        `json:"match_ref" gorm:"size:64;uniqueIndex:idx_matches_match_ref,where:match_ref <> ''"` // external match id, set on imports
	Category      MatchCategory `json:"category" gorm:"type:varchar(20);not null;default:'scrim'" validate:"required"`
	MapID         string        `json:"map_id" gorm:"size:100"`
	MapName       string        `json:"map_name" gorm:"size:40" validate:"max=40"`
	Opponent      string        `json:"opponent" gorm:"size:100" validate:"max=100"`
	Result        MatchResult   `json:"result" gorm:"type:varchar(10)"`
	RoundsWon     int           `json:"rounds_won" gorm:"default:0" validate:"min=0,max=50"`
	RoundsLost    int           `json:"rounds_lost" gorm:"default:0" validate:"min=0,max=50"`
	Source        MatchSource   `json:"source" gorm:"type:varchar(10);not null;default:'manual'"`
	PlayedAt      time.Time     `json:"played_at" gorm:"not null;index"`
	VodURL        string        `json:"vod_url" gorm:"size:255" validate:"omitempty,url,max=255"`
	ScreenshotURL string        `json:"screenshot_url" gorm:"size:500"`
	Notes         string        `json:"notes" gorm:"type:text"`

	// Relationships
	Team       Team             `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Players    []MatchPlayer    `json:"players,omitempty" gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE"`
	Objectives []ScrimObjective `json:"objectives,omitempty" gorm:"foreignKey:MatchID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Match
func (Match) TableName() string {
	return "matches"
}
