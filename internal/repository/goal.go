package repository

import (
	"valo-platform-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GoalRepository handles database operations for goals
type GoalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository
func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

// Create creates a new goal
func (r *GoalRepository) Create(goal *models.Goal) error {
	return r.db.Create(goal).Error
}

// GetByID retrieves a goal by ID
func (r *GoalRepository) GetByID(id uuid.UUID) (*models.Goal, error) {
	var goal models.Goal
	err := r.db.First(&goal, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// GetByTeamID retrieves all goals of a team with pagination
func (r *GoalRepository) GetByTeamID(teamID uuid.UUID, limit, offset int) ([]models.Goal, int64, error) {
	var goals []models.Goal
	var total int64

	if err := r.db.Model(&models.Goal{}).Where("team_id = ?", teamID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("team_id = ?", teamID).Order("created_at DESC").Limit(limit).Offset(offset).Find(&goals).Error
	return goals, total, err
}

// GetByPlayerID retrieves all goals assigned to a player
func (r *GoalRepository) GetByPlayerID(playerID uuid.UUID) ([]models.Goal, error) {
	var goals []models.Goal
	err := r.db.Where("player_id = ?", playerID).Order("created_at DESC").Find(&goals).Error
	return goals, err
}

// GetActiveByTeamID retrieves a team's active goals
func (r *GoalRepository) GetActiveByTeamID(teamID uuid.UUID) ([]models.Goal, error) {
	var goals []models.Goal
	err := r.db.Where("team_id = ? AND status = ?", teamID, models.GoalStatusActive).Order("target_date ASC NULLS LAST").Find(&goals).Error
	return goals, err
}

// Update updates a goal
func (r *GoalRepository) Update(goal *models.Goal) error {
	return r.db.Save(goal).Error
}

// Delete deletes a goal
func (r *GoalRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Goal{}, "id = ?", id).Error
}
