package repository

import (
	"valo-platform-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MatchRepository handles database operations for matches
type MatchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(db *gorm.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// Create creates a new match
func (r *MatchRepository) Create(match *models.Match) error {
	return r.db.Create(match).Error
}

// CreateWithPlayers creates a match and its scoreboard rows in one transaction
func (r *MatchRepository) CreateWithPlayers(match *models.Match, players []models.MatchPlayer) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(match).Error; err != nil {
			return err
		}
		for i := range players {
			players[i].MatchID = match.ID
		}
		if len(players) > 0 {
			if err := tx.Create(&players).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID retrieves a match by ID
func (r *MatchRepository) GetByID(id uuid.UUID) (*models.Match, error) {
	var match models.Match
	err := r.db.First(&match, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &match, nil
}

// GetWithPlayers retrieves a match with its scoreboard rows
func (r *MatchRepository) GetWithPlayers(id uuid.UUID) (*models.Match, error) {
	var match models.Match
	err := r.db.Preload("Players").First(&match, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &match, nil
}

// GetByTeamID retrieves all matches of a team with pagination, newest first
func (r *MatchRepository) GetByTeamID(teamID uuid.UUID, limit, offset int) ([]models.Match, int64, error) {
	var matches []models.Match
	var total int64

	if err := r.db.Model(&models.Match{}).Where("team_id = ?", teamID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("team_id = ?", teamID).Order("played_at DESC").Limit(limit).Offset(offset).Find(&matches).Error
	return matches, total, err
}

// GetByCategory retrieves a team's matches of one category with pagination
func (r *MatchRepository) GetByCategory(teamID uuid.UUID, category models.MatchCategory, limit, offset int) ([]models.Match, int64, error) {
	var matches []models.Match
	var total int64

	query := r.db.Model(&models.Match{}).Where("team_id = ? AND category = ?", teamID, category)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("played_at DESC").Limit(limit).Offset(offset).Find(&matches).Error
	return matches, total, err
}

// Update updates a match
func (r *MatchRepository) Update(match *models.Match) error {
	return r.db.Save(match).Error
}

// Delete deletes a match
func (r *MatchRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Match{}, "id = ?", id).Error
}

// CheckMatchRefExists checks if a team already has a match with this external reference
func (r *MatchRepository) CheckMatchRefExists(teamID uuid.UUID, matchRef string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Match{}).Where("team_id = ? AND match_ref = ? AND match_ref <> ''", teamID, matchRef).Count(&count).Error
	return count > 0, err
}
