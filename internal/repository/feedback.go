package repository

import (
	"valo-platform-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeedbackFilter narrows feedback listings. Nil fields are ignored.
type FeedbackFilter struct {
	TeamID      *uuid.UUID
	MatchID     *uuid.UUID
	RecipientID *uuid.UUID
	AuthorID    *uuid.UUID
}

// FeedbackRepository handles database operations for feedback notes
type FeedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// Create creates a new feedback note
func (r *FeedbackRepository) Create(feedback *models.Feedback) error {
	return r.db.Create(feedback).Error
}

// GetByID retrieves a feedback note by ID
func (r *FeedbackRepository) GetByID(id uuid.UUID) (*models.Feedback, error) {
	var feedback models.Feedback
	err := r.db.First(&feedback, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &feedback, nil
}

// List retrieves feedback notes matching the filter with pagination, newest first
func (r *FeedbackRepository) List(filter FeedbackFilter, limit, offset int) ([]models.Feedback, int64, error) {
	var feedback []models.Feedback
	var total int64

	query := r.db.Model(&models.Feedback{})
	if filter.TeamID != nil {
		query = query.Where("team_id = ?", *filter.TeamID)
	}
	if filter.MatchID != nil {
		query = query.Where("match_id = ?", *filter.MatchID)
	}
	if filter.RecipientID != nil {
		query = query.Where("recipient_id = ?", *filter.RecipientID)
	}
	if filter.AuthorID != nil {
		query = query.Where("author_id = ?", *filter.AuthorID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&feedback).Error
	return feedback, total, err
}

// Update updates a feedback note
func (r *FeedbackRepository) Update(feedback *models.Feedback) error {
	return r.db.Save(feedback).Error
}

// Delete deletes a feedback note
func (r *FeedbackRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Feedback{}, "id = ?", id).Error
}
