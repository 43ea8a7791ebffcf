package models

import (
	"github.com/google/uuid"
)

// SectorKD holds kills and deaths inside one time sector of the round clock.
// Stored per player as the TimingKD jsonb column keyed by TimeSector.
type SectorKD struct {
	Kills  int `json:"kills"`
	Deaths int `json:"deaths"`
}

// KD returns the sector kill/death ratio with the denominator clamped to 1.
func (s SectorKD) KD() float64 {
	d := s.Deaths
	if d < 1 {
		d = 1
	}
	return float64(s.Kills) / float64(d)
}

// MatchPlayer is one scoreboard row of a match. Rows are stored for both sides;
// IsAlly marks the tracked team's players.
type MatchPlayer struct {
	BaseModel
	MatchID   uuid.UUID  `json:"match_id" gorm:"type:uuid;not null;uniqueIndex:idx_match_players_match_puuid" validate:"required"`
	PlayerID  *uuid.UUID `json:"player_id,omitempty" gorm:"type:uuid;index"` // set when the PUUID matches a roster player
	PUUID     string     `json:"puuid" gorm:"size:36;uniqueIndex:idx_match_players_match_puuid,where:puuid <> ''" validate:"omitempty,max=36"` // empty on manually entered rows
	GameName  string     `json:"game_name" gorm:"size:50" validate:"max=50"`
	TagLine   string     `json:"tag_line" gorm:"size:10" validate:"max=10"`
	AgentID   string     `json:"agent_id" gorm:"size:36"`
	AgentName string     `json:"agent_name" gorm:"size:30" validate:"max=30"`
	TeamSide  string     `json:"team_side" gorm:"size:10"` // Blue/Red
	IsAlly    bool       `json:"is_ally" gorm:"default:false;index"`

	Kills          int `json:"kills" gorm:"default:0" validate:"min=0"`
	Deaths         int `json:"deaths" gorm:"default:0" validate:"min=0"`
	Assists        int `json:"assists" gorm:"default:0" validate:"min=0"`
	Score          int `json:"score" gorm:"default:0" validate:"min=0"`
	RoundsPlayed   int `json:"rounds_played" gorm:"default:0" validate:"min=0"`
	DamageDealt    int `json:"damage_dealt" gorm:"default:0" validate:"min=0"`
	DamageReceived int `json:"damage_received" gorm:"default:0" validate:"min=0"`
	Headshots      int `json:"headshots" gorm:"default:0" validate:"min=0"`
	Bodyshots      int `json:"bodyshots" gorm:"default:0" validate:"min=0"`
	Legshots       int `json:"legshots" gorm:"default:0" validate:"min=0"`
	FirstKills     int `json:"first_kills" gorm:"default:0" validate:"min=0"`
	FirstDeaths    int `json:"first_deaths" gorm:"default:0" validate:"min=0"`
	TrueFirstKills int `json:"true_first_kills" gorm:"default:0" validate:"min=0"` // first kills in rounds the killer's side won
	Plants         int `json:"plants" gorm:"default:0" validate:"min=0"`
	Defuses        int `json:"defuses" gorm:"default:0" validate:"min=0"`
	KastRounds     int `json:"kast_rounds" gorm:"default:0" validate:"min=0"`
	DoubleKills    int `json:"double_kills" gorm:"default:0" validate:"min=0"`
	TripleKills    int `json:"triple_kills" gorm:"default:0" validate:"min=0"`
	QuadraKills    int `json:"quadra_kills" gorm:"default:0" validate:"min=0"`
	PentaKills     int `json:"penta_kills" gorm:"default:0" validate:"min=0"`

	TimingKD TimingKDMap `json:"timing_kd" gorm:"type:jsonb;serializer:json"`

	// Relationships
	Match  Match   `json:"match,omitempty" gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE"`
	Player *Player `json:"player,omitempty" gorm:"foreignKey:PlayerID;constraint:OnDelete:SET NULL"`
}

// TimingKDMap maps a TimeSector to its kill/death tallies.
type TimingKDMap map[TimeSector]SectorKD

// TableName returns the table name for MatchPlayer
func (MatchPlayer) TableName() string {
	return "match_players"
}

// KD returns kills/deaths with the denominator clamped to 1.
func (mp *MatchPlayer) KD() float64 {
	return ratio(mp.Kills, mp.Deaths)
}

// KDA returns (kills+assists)/deaths with the denominator clamped to 1.
func (mp *MatchPlayer) KDA() float64 {
	return ratio(mp.Kills+mp.Assists, mp.Deaths)
}

// ACS returns average combat score per round.
func (mp *MatchPlayer) ACS() float64 {
	return ratio(mp.Score, mp.RoundsPlayed)
}

// ADR returns average damage dealt per round.
func (mp *MatchPlayer) ADR() float64 {
	return ratio(mp.DamageDealt, mp.RoundsPlayed)
}

// HeadshotRate returns headshots over all landed shots, 0 when no shots landed.
func (mp *MatchPlayer) HeadshotRate() float64 {
	shots := mp.Headshots + mp.Bodyshots + mp.Legshots
	if shots == 0 {
		return 0
	}
	return float64(mp.Headshots) / float64(shots)
}

// KastRate returns the share of rounds with a kill, assist, survival or trade.
func (mp *MatchPlayer) KastRate() float64 {
	return ratio(mp.KastRounds, mp.RoundsPlayed)
}

func ratio(num, den int) float64 {
	if den < 1 {
		den = 1
	}
	return float64(num) / float64(den)
}
