package service_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"valo-platform-backend/internal/database/models"
	apperrors "valo-platform-backend/internal/errors"
	"valo-platform-backend/internal/mocks"
	"valo-platform-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// NotificationServiceTestSuite defines the test suite for NotificationService
type NotificationServiceTestSuite struct {
	suite.Suite
	ctrl                 *gomock.Controller
	mockNotificationRepo *mocks.MockNotificationRepositoryInterface
	mockTeamRepo         *mocks.MockTeamRepositoryInterface
	notificationService  *service.NotificationService
}

// SetupTest runs before each test
func (suite *NotificationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockNotificationRepo = mocks.NewMockNotificationRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)

	// Create service with mock repositories and no webhook notifier
	suite.notificationService = service.NewNotificationService(
		suite.mockNotificationRepo,
		suite.mockTeamRepo,
		nil,
	)
}

// TearDownTest runs after each test
func (suite *NotificationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// inboxNotification builds a stored notification row
func inboxNotification(userID uuid.UUID) *models.Notification {
	return &models.Notification{
		BaseModel: models.BaseModel{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:    &userID,
		Type:      models.NotificationTypeFeedbackReceived,
		Title:     "New gameplay feedback",
		Body:      "coach_cat left you a note",
	}
}

// TestDispatchPersonal tests that a personal notification is stored for the
// recipient
func (suite *NotificationServiceTestSuite) TestDispatchPersonal() {
	userID := uuid.New()
	feedbackID := uuid.New()

	suite.mockNotificationRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(notification *models.Notification) error {
			notification.ID = uuid.New()
			assert.Nil(suite.T(), notification.TeamID)
			assert.Equal(suite.T(), userID, *notification.UserID)
			assert.Equal(suite.T(), models.NotificationTypeFeedbackReceived, notification.Type)
			assert.Equal(suite.T(), "New gameplay feedback", notification.Title)
			assert.Contains(suite.T(), string(notification.Payload), feedbackID.String())
			return nil
		}).
		Times(1)

	suite.notificationService.Dispatch(nil, &userID, models.NotificationTypeFeedbackReceived,
		"New gameplay feedback", "coach_cat left you a note",
		map[string]interface{}{"feedback_id": feedbackID})
}

// TestDispatchSkipsWebhookWithoutNotifier tests that a team notification is
// stored but not posted when no notifier is configured
func (suite *NotificationServiceTestSuite) TestDispatchSkipsWebhookWithoutNotifier() {
	teamID := uuid.New()

	suite.mockNotificationRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(notification *models.Notification) error {
			assert.Equal(suite.T(), teamID, *notification.TeamID)
			assert.Nil(suite.T(), notification.Payload)
			return nil
		}).
		Times(1)

	suite.notificationService.Dispatch(&teamID, nil, models.NotificationTypeGoalCompleted,
		"Goal completed: Hit Immortal by playoffs", "", nil)
}

// TestDispatchStoresWithoutWebhook tests a team that never configured a webhook
func (suite *NotificationServiceTestSuite) TestDispatchStoresWithoutWebhook() {
	teamID := uuid.New()
	notifier := service.NewDiscordNotifier(time.Second)
	svc := service.NewNotificationService(suite.mockNotificationRepo, suite.mockTeamRepo, notifier)

	suite.mockNotificationRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	suite.mockTeamRepo.EXPECT().
		GetByID(teamID).
		Return(&models.Team{BaseModel: models.BaseModel{ID: teamID}, Name: "Night Owls"}, nil).
		Times(1)

	svc.Dispatch(&teamID, nil, models.NotificationTypeMemberJoined,
		"sova_scout joined the team", "", nil)
}

/*************** Webhook delivery ***************/

// TestDispatchDeliversToWebhook tests the full path from dispatch to the
// Discord webhook POST and the stored delivery record
func (suite *NotificationServiceTestSuite) TestDispatchDeliversToWebhook() {
	teamID := uuid.New()
	storedID := uuid.New()
	received := make(chan []byte, 1)
	done := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received <- body
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	notifier := service.NewDiscordNotifier(2 * time.Second)
	svc := service.NewNotificationService(suite.mockNotificationRepo, suite.mockTeamRepo, notifier)

	suite.mockNotificationRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(notification *models.Notification) error {
			notification.ID = storedID
			return nil
		}).
		Times(1)

	suite.mockTeamRepo.EXPECT().
		GetByID(teamID).
		Return(&models.Team{BaseModel: models.BaseModel{ID: teamID}, Name: "Night Owls", WebhookURL: server.URL}, nil).
		Times(1)

	suite.mockNotificationRepo.EXPECT().
		RecordDelivery(storedID, http.StatusNoContent, "", gomock.Any()).
		DoAndReturn(func(id uuid.UUID, status int, deliveryErr string, at time.Time) error {
			close(done)
			return nil
		}).
		Times(1)

	svc.Dispatch(&teamID, nil, models.NotificationTypeScheduleReminder,
		"Upcoming scrim: Evening block", "Starts in 60 minutes", nil)

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		suite.T().Fatal("timed out waiting for webhook delivery")
	}

	var payload struct {
		Username string                 `json:"username"`
		Embeds   []service.DiscordEmbed `json:"embeds"`
	}
	assert.NoError(suite.T(), json.Unmarshal(<-received, &payload))
	assert.Equal(suite.T(), "valo-platform", payload.Username)
	assert.Len(suite.T(), payload.Embeds, 1)
	assert.Equal(suite.T(), "Upcoming scrim: Evening block", payload.Embeds[0].Title)
	assert.Equal(suite.T(), "Starts in 60 minutes", payload.Embeds[0].Description)
	assert.Equal(suite.T(), 0x3498DB, payload.Embeds[0].Color)
}

// TestDispatchRecordsFailedDelivery tests that a webhook failure lands on the
// notification row instead of the caller
func (suite *NotificationServiceTestSuite) TestDispatchRecordsFailedDelivery() {
	teamID := uuid.New()
	storedID := uuid.New()
	done := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte("rate limited"))
	}))
	defer server.Close()

	notifier := service.NewDiscordNotifier(2 * time.Second)
	svc := service.NewNotificationService(suite.mockNotificationRepo, suite.mockTeamRepo, notifier)

	suite.mockNotificationRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(notification *models.Notification) error {
			notification.ID = storedID
			return nil
		}).
		Times(1)

	suite.mockTeamRepo.EXPECT().
		GetByID(teamID).
		Return(&models.Team{BaseModel: models.BaseModel{ID: teamID}, Name: "Night Owls", WebhookURL: server.URL}, nil).
		Times(1)

	suite.mockNotificationRepo.EXPECT().
		RecordDelivery(storedID, http.StatusTooManyRequests, gomock.Any(), gomock.Any()).
		DoAndReturn(func(id uuid.UUID, status int, deliveryErr string, at time.Time) error {
			assert.Contains(suite.T(), deliveryErr, "429")
			assert.Contains(suite.T(), deliveryErr, "rate limited")
			close(done)
			return nil
		}).
		Times(1)

	svc.Dispatch(&teamID, nil, models.NotificationTypeMatchImported,
		"Match imported: Haven 13-7 (win)", "", nil)

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		suite.T().Fatal("timed out waiting for webhook delivery")
	}
}

/*************** Inbox ***************/

// TestGetMine tests listing the caller's notifications
func (suite *NotificationServiceTestSuite) TestGetMine() {
	userID := uuid.New()
	readAt := time.Now().Add(-time.Hour)
	read := *inboxNotification(userID)
	read.ReadAt = &readAt
	unread := *inboxNotification(userID)

	suite.mockNotificationRepo.EXPECT().
		GetByUserID(userID, false, 20, 0).
		Return([]models.Notification{unread, read}, int64(2), nil).
		Times(1)

	response, err := suite.notificationService.GetMine(userID, false, 1, 20)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Items, 2)
	assert.False(suite.T(), response.Items[0].Read)
	assert.Nil(suite.T(), response.Items[0].ReadAt)
	assert.True(suite.T(), response.Items[1].Read)
	assert.NotNil(suite.T(), response.Items[1].ReadAt)
	assert.Equal(suite.T(), int64(2), response.Total)
}

// TestGetMineUnreadOnly tests listing only unread notifications
func (suite *NotificationServiceTestSuite) TestGetMineUnreadOnly() {
	userID := uuid.New()

	suite.mockNotificationRepo.EXPECT().
		GetByUserID(userID, true, 20, 0).
		Return([]models.Notification{*inboxNotification(userID)}, int64(1), nil).
		Times(1)

	response, err := suite.notificationService.GetMine(userID, true, 1, 20)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Items, 1)
}

// TestGetMineNormalizesPaging tests that out of range paging falls back to
// defaults
func (suite *NotificationServiceTestSuite) TestGetMineNormalizesPaging() {
	userID := uuid.New()

	suite.mockNotificationRepo.EXPECT().
		GetByUserID(userID, false, 20, 0).
		Return([]models.Notification{}, int64(0), nil).
		Times(1)

	response, err := suite.notificationService.GetMine(userID, false, 0, 500)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, response.Page)
	assert.Equal(suite.T(), 20, response.PageSize)
}

// TestMarkRead tests marking a notification as read
func (suite *NotificationServiceTestSuite) TestMarkRead() {
	userID := uuid.New()
	notification := inboxNotification(userID)

	suite.mockNotificationRepo.EXPECT().
		GetByID(notification.ID).
		Return(notification, nil).
		Times(1)

	suite.mockNotificationRepo.EXPECT().
		MarkRead(notification.ID, gomock.Any()).
		Return(nil).
		Times(1)

	err := suite.notificationService.MarkRead(userID, notification.ID)

	assert.NoError(suite.T(), err)
}

// TestMarkReadNotFound tests marking a missing notification
func (suite *NotificationServiceTestSuite) TestMarkReadNotFound() {
	userID := uuid.New()
	notificationID := uuid.New()

	suite.mockNotificationRepo.EXPECT().
		GetByID(notificationID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	err := suite.notificationService.MarkRead(userID, notificationID)

	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), apperrors.ErrNotificationNotFound, err)
}

// TestMarkReadNotOwner tests marking someone else's notification
func (suite *NotificationServiceTestSuite) TestMarkReadNotOwner() {
	userID := uuid.New()
	notification := inboxNotification(uuid.New())

	suite.mockNotificationRepo.EXPECT().
		GetByID(notification.ID).
		Return(notification, nil).
		Times(1)

	err := suite.notificationService.MarkRead(userID, notification.ID)

	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), apperrors.ErrNotificationOwner, err)
}

// TestMarkReadTeamBroadcast tests that team wide rows have no single owner
func (suite *NotificationServiceTestSuite) TestMarkReadTeamBroadcast() {
	userID := uuid.New()
	teamID := uuid.New()
	notification := &models.Notification{
		BaseModel: models.BaseModel{ID: uuid.New(), CreatedAt: time.Now()},
		TeamID:    &teamID,
		Type:      models.NotificationTypeMatchImported,
		Title:     "Match imported: Haven 13-7 (win)",
	}

	suite.mockNotificationRepo.EXPECT().
		GetByID(notification.ID).
		Return(notification, nil).
		Times(1)

	err := suite.notificationService.MarkRead(userID, notification.ID)

	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), apperrors.ErrNotificationOwner, err)
}

// TestMarkAllRead tests marking the whole inbox as read
func (suite *NotificationServiceTestSuite) TestMarkAllRead() {
	userID := uuid.New()

	suite.mockNotificationRepo.EXPECT().
		MarkAllRead(userID, gomock.Any()).
		Return(nil).
		Times(1)

	err := suite.notificationService.MarkAllRead(userID)

	assert.NoError(suite.T(), err)
}

// TestDiscordNotifierSend tests the webhook POST body and success status
func TestDiscordNotifierSend(t *testing.T) {
	var received []byte
	var contentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received, _ = io.ReadAll(r.Body)
		contentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	notifier := service.NewDiscordNotifier(time.Second)
	status, err := notifier.Send(context.Background(), server.URL, "scrim starts soon", []service.DiscordEmbed{
		{Title: "Upcoming scrim: Evening block", Color: 0x3498DB},
	})

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, status)
	assert.Equal(t, "application/json", contentType)

	var payload struct {
		Username string                 `json:"username"`
		Content  string                 `json:"content"`
		Embeds   []service.DiscordEmbed `json:"embeds"`
	}
	assert.NoError(t, json.Unmarshal(received, &payload))
	assert.Equal(t, "valo-platform", payload.Username)
	assert.Equal(t, "scrim starts soon", payload.Content)
	assert.Len(t, payload.Embeds, 1)
}

// TestDiscordNotifierSendFailure tests that non-2xx answers surface as errors
func TestDiscordNotifierSendFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("invalid webhook token"))
	}))
	defer server.Close()

	notifier := service.NewDiscordNotifier(time.Second)
	status, err := notifier.Send(context.Background(), server.URL, "", nil)

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, err.Error(), "status 400")
	assert.Contains(t, err.Error(), "invalid webhook token")
}

// TestNotificationServiceTestSuite runs the test suite
func TestNotificationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}
