package repository

import (
	"valo-platform-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MatchPlayerRepository handles database operations for match scoreboard rows
type MatchPlayerRepository struct {
	db *gorm.DB
}

// NewMatchPlayerRepository creates a new match player repository
func NewMatchPlayerRepository(db *gorm.DB) *MatchPlayerRepository {
	return &MatchPlayerRepository{db: db}
}

// Create creates a single scoreboard row
func (r *MatchPlayerRepository) Create(row *models.MatchPlayer) error {
	return r.db.Create(row).Error
}

// CreateBatch creates many scoreboard rows at once
func (r *MatchPlayerRepository) CreateBatch(rows []models.MatchPlayer) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.Create(&rows).Error
}

// GetByID retrieves a scoreboard row by ID
func (r *MatchPlayerRepository) GetByID(id uuid.UUID) (*models.MatchPlayer, error) {
	var row models.MatchPlayer
	err := r.db.First(&row, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// GetByMatchID retrieves all scoreboard rows of a match
func (r *MatchPlayerRepository) GetByMatchID(matchID uuid.UUID) ([]models.MatchPlayer, error) {
	var rows []models.MatchPlayer
	err := r.db.Where("match_id = ?", matchID).Find(&rows).Error
	return rows, err
}

// GetByPlayerID retrieves a roster player's rows with the match loaded, newest first
func (r *MatchPlayerRepository) GetByPlayerID(playerID uuid.UUID, limit, offset int) ([]models.MatchPlayer, int64, error) {
	var rows []models.MatchPlayer
	var total int64

	if err := r.db.Model(&models.MatchPlayer{}).Where("player_id = ?", playerID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Match").
		Joins("JOIN matches ON matches.id = match_players.match_id").
		Where("match_players.player_id = ?", playerID).
		Order("matches.played_at DESC").
		Limit(limit).Offset(offset).
		Find(&rows).Error
	return rows, total, err
}

// GetAllByPlayerID retrieves every row of a roster player with the match loaded.
// Aggregated stats are computed from this set.
func (r *MatchPlayerRepository) GetAllByPlayerID(playerID uuid.UUID) ([]models.MatchPlayer, error) {
	var rows []models.MatchPlayer
	err := r.db.Preload("Match").Where("player_id = ?", playerID).Find(&rows).Error
	return rows, err
}

// Update updates a scoreboard row
func (r *MatchPlayerRepository) Update(row *models.MatchPlayer) error {
	return r.db.Save(row).Error
}

// Delete deletes a scoreboard row
func (r *MatchPlayerRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.MatchPlayer{}, "id = ?", id).Error
}

// DeleteByMatchID deletes all rows of a match
func (r *MatchPlayerRepository) DeleteByMatchID(matchID uuid.UUID) error {
	return r.db.Delete(&models.MatchPlayer{}, "match_id = ?", matchID).Error
}

// LinkRosterPlayer sets the player reference on every stored row with this PUUID
func (r *MatchPlayerRepository) LinkRosterPlayer(puuid string, playerID uuid.UUID) error {
	return r.db.Model(&models.MatchPlayer{}).Where("puuid = ?", puuid).Update("player_id", playerID).Error
}
