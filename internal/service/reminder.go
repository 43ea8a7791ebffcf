package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"valo-platform-backend/internal/database/models"
	"valo-platform-backend/internal/logger"
	"valo-platform-backend/internal/repository"

	"github.com/google/uuid"
)

// ReminderService posts schedule reminders for events whose reminder window
// has opened. It runs from the cron scheduler, outside any request.
type ReminderService struct {
	scheduleRepo     repository.ScheduleRepositoryInterface
	attendanceRepo   repository.AttendanceRepositoryInterface
	teamRepo         repository.TeamRepositoryInterface
	notificationRepo repository.NotificationRepositoryInterface
	notifier         *DiscordNotifier
	log              *logger.Logger
}

// NewReminderService creates a new reminder service
func NewReminderService(scheduleRepo repository.ScheduleRepositoryInterface, attendanceRepo repository.AttendanceRepositoryInterface, teamRepo repository.TeamRepositoryInterface, notificationRepo repository.NotificationRepositoryInterface, notifier *DiscordNotifier) *ReminderService {
	return &ReminderService{
		scheduleRepo:     scheduleRepo,
		attendanceRepo:   attendanceRepo,
		teamRepo:         teamRepo,
		notificationRepo: notificationRepo,
		notifier:         notifier,
		log:              logger.New(),
	}
}

// RunOnce processes all schedules currently due for a reminder. Failures on a
// single schedule are logged and do not stop the rest of the batch.
func (s *ReminderService) RunOnce(ctx context.Context) error {
	now := time.Now().UTC()

	due, err := s.scheduleRepo.GetDueForReminder(now)
	if err != nil {
		return fmt.Errorf("failed to query due schedules: %w", err)
	}

	for i := range due {
		s.remind(ctx, &due[i], now)
	}
	return nil
}

func (s *ReminderService) remind(ctx context.Context, schedule *models.Schedule, now time.Time) {
	log := s.log.WithField("schedule_id", schedule.ID.String())

	// Stamped before posting: a reminder goes out at most once, even when
	// delivery fails.
	if err := s.scheduleRepo.MarkReminderSent(schedule.ID, now); err != nil {
		log.Errorf("failed to mark reminder sent: %v", err)
		return
	}

	title := fmt.Sprintf("Upcoming %s: %s", schedule.EventType, schedule.Title)
	body := fmt.Sprintf("Starts at %s UTC. RSVPs: %s",
		schedule.StartsAt.UTC().Format("2006-01-02 15:04"),
		s.attendanceSummary(schedule.ID))
	if schedule.Location != "" {
		body += fmt.Sprintf(" (%s)", schedule.Location)
	}

	notification := &models.Notification{
		TeamID: &schedule.TeamID,
		Type:   models.NotificationTypeScheduleReminder,
		Title:  title,
		Body:   body,
	}
	if raw, err := json.Marshal(map[string]interface{}{
		"schedule_id": schedule.ID,
		"starts_at":   schedule.StartsAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}); err == nil {
		notification.Payload = raw
	}

	if err := s.notificationRepo.Create(notification); err != nil {
		log.Errorf("failed to store reminder notification: %v", err)
		return
	}

	if s.notifier == nil {
		return
	}
	team, err := s.teamRepo.GetByID(schedule.TeamID)
	if err != nil {
		log.Errorf("failed to load team for reminder: %v", err)
		return
	}
	if team.WebhookURL == "" {
		return
	}

	embed := DiscordEmbed{
		Title:       title,
		Description: body,
		Color:       embedColorBlue,
		Timestamp:   schedule.StartsAt.UTC().Format(time.RFC3339),
	}

	status, err := s.notifier.Send(ctx, team.WebhookURL, "", []DiscordEmbed{embed})
	deliveryErr := ""
	if err != nil {
		deliveryErr = err.Error()
		if len(deliveryErr) > 255 {
			deliveryErr = deliveryErr[:255]
		}
		log.Warnf("reminder webhook delivery failed: %v", err)
	}
	if dbErr := s.notificationRepo.RecordDelivery(notification.ID, status, deliveryErr, time.Now()); dbErr != nil {
		log.Errorf("failed to record reminder delivery: %v", dbErr)
	}
}

// attendanceSummary renders the RSVP counts for the reminder embed
func (s *ReminderService) attendanceSummary(scheduleID uuid.UUID) string {
	counts, err := s.attendanceRepo.CountByStatus(scheduleID)
	if err != nil || len(counts) == 0 {
		return "none yet"
	}

	parts := make([]string, 0, 4)
	for _, status := range []models.AttendanceStatus{
		models.AttendanceStatusAttending,
		models.AttendanceStatusTentative,
		models.AttendanceStatusLate,
		models.AttendanceStatusAbsent,
	} {
		if counts[status] > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", counts[status], status))
		}
	}
	if len(parts) == 0 {
		return "none yet"
	}
	return strings.Join(parts, ", ")
}
