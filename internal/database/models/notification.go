package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// NotificationType represents what triggered a notification
type NotificationType string

const (
	NotificationTypeScheduleReminder NotificationType = "schedule_reminder"
	NotificationTypeMatchImported    NotificationType = "match_imported"
	NotificationTypeFeedbackReceived NotificationType = "feedback_received"
	NotificationTypeGoalCompleted    NotificationType = "goal_completed"
	NotificationTypeMemberJoined     NotificationType = "member_joined"
	NotificationTypeSystem           NotificationType = "system"
)

// IsValid checks if the NotificationType is valid
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeScheduleReminder, NotificationTypeMatchImported, NotificationTypeFeedbackReceived,
		NotificationTypeGoalCompleted, NotificationTypeMemberJoined, NotificationTypeSystem:
		return true
	}
	return false
}

// Notification is a persisted in-app notification. When the team has a webhook
// configured the row doubles as the delivery record for the Discord post.
type Notification struct {
	BaseModel
	TeamID         *uuid.UUID       `json:"team_id,omitempty" gorm:"type:uuid;index"`
	UserID         *uuid.UUID       `json:"user_id,omitempty" gorm:"type:uuid;index"`
	Type           NotificationType `json:"type" gorm:"type:varchar(30);not null" validate:"required"`
	Title          string           `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Body           string           `json:"body" gorm:"type:text"`
	Payload        json.RawMessage  `json:"payload,omitempty" gorm:"type:jsonb"`
	ReadAt         *time.Time       `json:"read_at,omitempty"`
	DeliveredAt    *time.Time       `json:"delivered_at,omitempty"`
	DeliveryStatus int              `json:"delivery_status,omitempty"` // HTTP status of the webhook POST, 0 = not sent
	DeliveryError  string           `json:"delivery_error,omitempty" gorm:"size:255"`

	// Relationships
	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
