package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"valo-platform-backend/internal/database/models"
	apperrors "valo-platform-backend/internal/errors"
	"valo-platform-backend/internal/logger"
	"valo-platform-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationDispatcher lets other services emit notifications without
// depending on the full notification API.
type NotificationDispatcher interface {
	Dispatch(teamID *uuid.UUID, userID *uuid.UUID, notificationType models.NotificationType, title, body string, payload interface{})
}

// NotificationService handles business logic for notifications and their
// Discord webhook delivery
type NotificationService struct {
	repo     repository.NotificationRepositoryInterface
	teamRepo repository.TeamRepositoryInterface
	notifier *DiscordNotifier
	log      *logger.Logger
}

// NewNotificationService creates a new notification service
func NewNotificationService(repo repository.NotificationRepositoryInterface, teamRepo repository.TeamRepositoryInterface, notifier *DiscordNotifier) *NotificationService {
	return &NotificationService{
		repo:     repo,
		teamRepo: teamRepo,
		notifier: notifier,
		log:      logger.New(),
	}
}

// NotificationResponse represents the response for notification operations
type NotificationResponse struct {
	ID        uuid.UUID               `json:"id"`
	TeamID    *uuid.UUID              `json:"team_id,omitempty"`
	Type      models.NotificationType `json:"type"`
	Title     string                  `json:"title"`
	Body      string                  `json:"body,omitempty"`
	Payload   json.RawMessage         `json:"payload,omitempty"`
	Read      bool                    `json:"read"`
	ReadAt    *string                 `json:"read_at,omitempty"`
	CreatedAt string                  `json:"created_at"`
}

// NotificationListResponse represents a paginated list of notifications
type NotificationListResponse struct {
	Items    []NotificationResponse `json:"items"`
	Total    int64                  `json:"total"`
	Page     int                    `json:"page"`
	PageSize int                    `json:"page_size"`
}

// Dispatch persists a notification and, for team scoped ones, posts it to the
// team's Discord webhook in the background. Failures are logged, never
// surfaced to the caller.
func (s *NotificationService) Dispatch(teamID *uuid.UUID, userID *uuid.UUID, notificationType models.NotificationType, title, body string, payload interface{}) {
	notification := &models.Notification{
		TeamID: teamID,
		UserID: userID,
		Type:   notificationType,
		Title:  title,
		Body:   body,
	}
	if payload != nil {
		if raw, err := json.Marshal(payload); err == nil {
			notification.Payload = raw
		}
	}

	if err := s.repo.Create(notification); err != nil {
		s.log.WithField("type", string(notificationType)).Errorf("failed to store notification: %v", err)
		return
	}

	if teamID == nil || s.notifier == nil {
		return
	}

	team, err := s.teamRepo.GetByID(*teamID)
	if err != nil || team.WebhookURL == "" {
		return
	}

	embed := DiscordEmbed{
		Title:       title,
		Description: body,
		Color:       embedColorFor(notificationType),
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}

	go s.deliver(notification.ID, team.WebhookURL, embed)
}

// deliver posts the embed and records the outcome on the notification row.
func (s *NotificationService) deliver(notificationID uuid.UUID, webhookURL string, embed DiscordEmbed) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	status, err := s.notifier.Send(ctx, webhookURL, "", []DiscordEmbed{embed})
	deliveryErr := ""
	if err != nil {
		deliveryErr = err.Error()
		if len(deliveryErr) > 255 {
			deliveryErr = deliveryErr[:255]
		}
		s.log.WithField("notification_id", notificationID.String()).Warnf("webhook delivery failed: %v", err)
	}

	if dbErr := s.repo.RecordDelivery(notificationID, status, deliveryErr, time.Now()); dbErr != nil {
		s.log.WithField("notification_id", notificationID.String()).Errorf("failed to record webhook delivery: %v", dbErr)
	}
}

// GetMine retrieves the caller's notifications, newest first
func (s *NotificationService) GetMine(userID uuid.UUID, unreadOnly bool, page, pageSize int) (*NotificationListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	notifications, total, err := s.repo.GetByUserID(userID, unreadOnly, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}

	items := make([]NotificationResponse, len(notifications))
	for i, notification := range notifications {
		items[i] = *s.toResponse(&notification)
	}

	return &NotificationListResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// MarkRead marks one of the caller's notifications as read
func (s *NotificationService) MarkRead(userID, notificationID uuid.UUID) error {
	notification, err := s.repo.GetByID(notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotificationNotFound
		}
		return fmt.Errorf("failed to get notification: %w", err)
	}

	if notification.UserID == nil || *notification.UserID != userID {
		return apperrors.ErrNotificationOwner
	}

	if err := s.repo.MarkRead(notificationID, time.Now()); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

// MarkAllRead marks all of the caller's notifications as read
func (s *NotificationService) MarkAllRead(userID uuid.UUID) error {
	if err := s.repo.MarkAllRead(userID, time.Now()); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}

// toResponse converts a notification model to response
func (s *NotificationService) toResponse(notification *models.Notification) *NotificationResponse {
	response := &NotificationResponse{
		ID:        notification.ID,
		TeamID:    notification.TeamID,
		Type:      notification.Type,
		Title:     notification.Title,
		Body:      notification.Body,
		Payload:   notification.Payload,
		Read:      notification.ReadAt != nil,
		CreatedAt: notification.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if notification.ReadAt != nil {
		readAt := notification.ReadAt.Format("2006-01-02T15:04:05Z07:00")
		response.ReadAt = &readAt
	}
	return response
}

func embedColorFor(notificationType models.NotificationType) int {
	switch notificationType {
	case models.NotificationTypeScheduleReminder:
		return embedColorBlue
	case models.NotificationTypeMatchImported, models.NotificationTypeGoalCompleted:
		return embedColorGreen
	case models.NotificationTypeMemberJoined:
		return embedColorBlue
	case models.NotificationTypeFeedbackReceived:
		return embedColorGrey
	default:
		return embedColorGrey
	}
}
