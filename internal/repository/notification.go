package repository

import (
	"time"

	"valo-platform-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationRepository handles database operations for notifications
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create creates a new notification
func (r *NotificationRepository) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

// GetByID retrieves a notification by ID
func (r *NotificationRepository) GetByID(id uuid.UUID) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.First(&notification, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

// GetByUserID retrieves a user's notifications with pagination, newest first.
// When unreadOnly is set, read notifications are filtered out.
func (r *NotificationRepository) GetByUserID(userID uuid.UUID, unreadOnly bool, limit, offset int) ([]models.Notification, int64, error) {
	var notifications []models.Notification
	var total int64

	query := r.db.Model(&models.Notification{}).Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("read_at IS NULL")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&notifications).Error
	return notifications, total, err
}

// MarkRead stamps the read time on a notification
func (r *NotificationRepository) MarkRead(id uuid.UUID, at time.Time) error {
	return r.db.Model(&models.Notification{}).Where("id = ? AND read_at IS NULL", id).Update("read_at", at).Error
}

// MarkAllRead stamps the read time on all of a user's unread notifications
func (r *NotificationRepository) MarkAllRead(userID uuid.UUID, at time.Time) error {
	return r.db.Model(&models.Notification{}).Where("user_id = ? AND read_at IS NULL", userID).Update("read_at", at).Error
}

// RecordDelivery stores the webhook delivery outcome on a notification
func (r *NotificationRepository) RecordDelivery(id uuid.UUID, status int, deliveryErr string, at time.Time) error {
	updates := map[string]interface{}{
		"delivery_status": status,
		"delivery_error":  deliveryErr,
		"delivered_at":    at,
	}
	return r.db.Model(&models.Notification{}).Where("id = ?", id).Updates(updates).Error
}

// Delete deletes a notification
func (r *NotificationRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Notification{}, "id = ?", id).Error
}
