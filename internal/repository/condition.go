package repository

import (
	"time"

	"valo-platform-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConditionRepository handles database operations for wellness check-ins
type ConditionRepository struct {
	db *gorm.DB
}

// NewConditionRepository creates a new condition repository
func NewConditionRepository(db *gorm.DB) *ConditionRepository {
	return &ConditionRepository{db: db}
}

// Create creates a new check-in
func (r *ConditionRepository) Create(condition *models.Condition) error {
	return r.db.Create(condition).Error
}

// GetByID retrieves a check-in by ID
func (r *ConditionRepository) GetByID(id uuid.UUID) (*models.Condition, error) {
	var condition models.Condition
	err := r.db.First(&condition, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &condition, nil
}

// GetByUserAndDate retrieves a user's check-in for one day
func (r *ConditionRepository) GetByUserAndDate(userID uuid.UUID, day time.Time) (*models.Condition, error) {
	var condition models.Condition
	err := r.db.First(&condition, "user_id = ? AND recorded_on = ?", userID, day.Format("2006-01-02")).Error
	if err != nil {
		return nil, err
	}
	return &condition, nil
}

// GetByUserRange retrieves a user's check-ins inside a date range, oldest first
func (r *ConditionRepository) GetByUserRange(userID uuid.UUID, from, to time.Time) ([]models.Condition, error) {
	var conditions []models.Condition
	err := r.db.
		Where("user_id = ? AND recorded_on >= ? AND recorded_on <= ?", userID, from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("recorded_on ASC").
		Find(&conditions).Error
	return conditions, err
}

// GetByTeamAndDate retrieves a team's check-ins for one day with the accounts loaded
func (r *ConditionRepository) GetByTeamAndDate(teamID uuid.UUID, day time.Time) ([]models.Condition, error) {
	var conditions []models.Condition
	err := r.db.Preload("User").
		Where("team_id = ? AND recorded_on = ?", teamID, day.Format("2006-01-02")).
		Find(&conditions).Error
	return conditions, err
}

// Update updates a check-in
func (r *ConditionRepository) Update(condition *models.Condition) error {
	return r.db.Save(condition).Error
}

// Delete deletes a check-in
func (r *ConditionRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Condition{}, "id = ?", id).Error
}
