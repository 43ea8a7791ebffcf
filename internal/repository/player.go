package repository

import (
	"valo-platform-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlayerRepository handles database operations for players
type PlayerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Create creates a new player
func (r *PlayerRepository) Create(player *models.Player) error {
	return r.db.Create(player).Error
}

// GetByID retrieves a player by ID
func (r *PlayerRepository) GetByID(id uuid.UUID) (*models.Player, error) {
	var player models.Player
	err := r.db.First(&player, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// GetByPUUID retrieves a player by Riot PUUID
func (r *PlayerRepository) GetByPUUID(puuid string) (*models.Player, error) {
	var player models.Player
	err := r.db.First(&player, "puuid = ?", puuid).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// GetByTeamID retrieves all players of a team with pagination
func (r *PlayerRepository) GetByTeamID(teamID uuid.UUID, limit, offset int) ([]models.Player, int64, error) {
	var players []models.Player
	var total int64

	if err := r.db.Model(&models.Player{}).Where("team_id = ?", teamID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("team_id = ?", teamID).Order("game_name ASC").Limit(limit).Offset(offset).Find(&players).Error
	return players, total, err
}

// GetActiveByTeamID retrieves the active roster of a team
func (r *PlayerRepository) GetActiveByTeamID(teamID uuid.UUID) ([]models.Player, error) {
	var players []models.Player
	err := r.db.Where("team_id = ? AND is_active = ?", teamID, true).Order("game_name ASC").Find(&players).Error
	return players, err
}

// GetPUUIDsByTeamID returns the non-empty PUUIDs of a team's roster.
// Used to pick the ally side when ingesting raw match data.
func (r *PlayerRepository) GetPUUIDsByTeamID(teamID uuid.UUID) ([]string, error) {
	var puuids []string
	err := r.db.Model(&models.Player{}).Where("team_id = ? AND puuid <> ''", teamID).Pluck("puuid", &puuids).Error
	return puuids, err
}

// Update updates a player
func (r *PlayerRepository) Update(player *models.Player) error {
	return r.db.Save(player).Error
}

// Delete deletes a player
func (r *PlayerRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Player{}, "id = ?", id).Error
}

// CheckPUUIDExists checks if a PUUID is already registered
func (r *PlayerRepository) CheckPUUIDExists(puuid string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.Model(&models.Player{}).Where("puuid = ? AND puuid <> ''", puuid)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}
