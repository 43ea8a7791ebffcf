package repository

import (
	"valo-platform-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScrimObjectiveRepository handles database operations for scrim objectives
type ScrimObjectiveRepository struct {
	db *gorm.DB
}

// NewScrimObjectiveRepository creates a new scrim objective repository
func NewScrimObjectiveRepository(db *gorm.DB) *ScrimObjectiveRepository {
	return &ScrimObjectiveRepository{db: db}
}

// Create creates a new objective
func (r *ScrimObjectiveRepository) Create(objective *models.ScrimObjective) error {
	return r.db.Create(objective).Error
}

// GetByID retrieves an objective by ID
func (r *ScrimObjectiveRepository) GetByID(id uuid.UUID) (*models.ScrimObjective, error) {
	var objective models.ScrimObjective
	err := r.db.First(&objective, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &objective, nil
}

// GetByMatchID retrieves the objectives attached to a match in display order
func (r *ScrimObjectiveRepository) GetByMatchID(matchID uuid.UUID) ([]models.ScrimObjective, error) {
	var objectives []models.ScrimObjective
	err := r.db.Where("match_id = ?", matchID).Order("sort_order ASC, created_at ASC").Find(&objectives).Error
	return objectives, err
}

// GetByScheduleID retrieves the objectives attached to a scheduled event in display order
func (r *ScrimObjectiveRepository) GetByScheduleID(scheduleID uuid.UUID) ([]models.ScrimObjective, error) {
	var objectives []models.ScrimObjective
	err := r.db.Where("schedule_id = ?", scheduleID).Order("sort_order ASC, created_at ASC").Find(&objectives).Error
	return objectives, err
}

// GetByTeamID retrieves a team's objectives with pagination, newest first
func (r *ScrimObjectiveRepository) GetByTeamID(teamID uuid.UUID, limit, offset int) ([]models.ScrimObjective, int64, error) {
	var objectives []models.ScrimObjective
	var total int64

	if err := r.db.Model(&models.ScrimObjective{}).Where("team_id = ?", teamID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("team_id = ?", teamID).Order("created_at DESC").Limit(limit).Offset(offset).Find(&objectives).Error
	return objectives, total, err
}

// Update updates an objective
func (r *ScrimObjectiveRepository) Update(objective *models.ScrimObjective) error {
	return r.db.Save(objective).Error
}

// Delete deletes an objective
func (r *ScrimObjectiveRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ScrimObjective{}, "id = ?", id).Error
}
