package repository

import (
	"time"

	"valo-platform-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByDiscordID(discordID string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByName(name string) (*models.Team, error)
	GetByInviteCode(code string) (*models.Team, error)
	GetByUserID(userID uuid.UUID) ([]models.Team, error)
	GetWithMembers(id uuid.UUID) (*models.Team, error)
	GetWithPlayers(id uuid.UUID) (*models.Team, error)
	Update(team *models.Team) error
	Delete(id uuid.UUID) error
	CheckTeamNameExists(name string, excludeID *uuid.UUID) (bool, error)
	GetMemberCount(teamID uuid.UUID) (int64, error)
}

// TeamMemberRepositoryInterface defines the interface for team membership repository operations
type TeamMemberRepositoryInterface interface {
	Create(member *models.TeamMember) error
	GetByID(id uuid.UUID) (*models.TeamMember, error)
	GetByTeamID(teamID uuid.UUID) ([]models.TeamMember, error)
	GetByUserID(userID uuid.UUID) ([]models.TeamMember, error)
	GetByTeamAndUser(teamID, userID uuid.UUID) (*models.TeamMember, error)
	Update(member *models.TeamMember) error
	Delete(id uuid.UUID) error
	CheckMembershipExists(teamID, userID uuid.UUID) (bool, error)
}

// PlayerRepositoryInterface defines the interface for player repository operations
type PlayerRepositoryInterface interface {
	Create(player *models.Player) error
	GetByID(id uuid.UUID) (*models.Player, error)
	GetByPUUID(puuid string) (*models.Player, error)
	GetByTeamID(teamID uuid.UUID, limit, offset int) ([]models.Player, int64, error)
	GetActiveByTeamID(teamID uuid.UUID) ([]models.Player, error)
	GetPUUIDsByTeamID(teamID uuid.UUID) ([]string, error)
	Update(player *models.Player) error
	Delete(id uuid.UUID) error
	CheckPUUIDExists(puuid string, excludeID *uuid.UUID) (bool, error)
}

// MatchRepositoryInterface defines the interface for match repository operations
type MatchRepositoryInterface interface {
	Create(match *models.Match) error
	CreateWithPlayers(match *models.Match, players []models.MatchPlayer) error
	GetByID(id uuid.UUID) (*models.Match, error)
	GetWithPlayers(id uuid.UUID) (*models.Match, error)
	GetByTeamID(teamID uuid.UUID, limit, offset int) ([]models.Match, int64, error)
	GetByCategory(teamID uuid.UUID, category models.MatchCategory, limit, offset int) ([]models.Match, int64, error)
	Update(match *models.Match) error
	Delete(id uuid.UUID) error
	CheckMatchRefExists(teamID uuid.UUID, matchRef string) (bool, error)
}

// MatchPlayerRepositoryInterface defines the interface for scoreboard row repository operations
type MatchPlayerRepositoryInterface interface {
	Create(row *models.MatchPlayer) error
	CreateBatch(rows []models.MatchPlayer) error
	GetByID(id uuid.UUID) (*models.MatchPlayer, error)
	GetByMatchID(matchID uuid.UUID) ([]models.MatchPlayer, error)
	GetByPlayerID(playerID uuid.UUID, limit, offset int) ([]models.MatchPlayer, int64, error)
	GetAllByPlayerID(playerID uuid.UUID) ([]models.MatchPlayer, error)
	Update(row *models.MatchPlayer) error
	Delete(id uuid.UUID) error
	DeleteByMatchID(matchID uuid.UUID) error
	LinkRosterPlayer(puuid string, playerID uuid.UUID) error
}

// GoalRepositoryInterface defines the interface for goal repository operations
type GoalRepositoryInterface interface {
	Create(goal *models.Goal) error
	GetByID(id uuid.UUID) (*models.Goal, error)
	GetByTeamID(teamID uuid.UUID, limit, offset int) ([]models.Goal, int64, error)
	GetByPlayerID(playerID uuid.UUID) ([]models.Goal, error)
	GetActiveByTeamID(teamID uuid.UUID) ([]models.Goal, error)
	Update(goal *models.Goal) error
	Delete(id uuid.UUID) error
}

// ScheduleRepositoryInterface defines the interface for schedule repository operations
type ScheduleRepositoryInterface interface {
	Create(schedule *models.Schedule) error
	GetByID(id uuid.UUID) (*models.Schedule, error)
	GetByTeamID(teamID uuid.UUID, limit, offset int) ([]models.Schedule, int64, error)
	GetUpcoming(teamID uuid.UUID, days int, limit, offset int) ([]models.Schedule, int64, error)
	GetDueForReminder(now time.Time) ([]models.Schedule, error)
	MarkReminderSent(id uuid.UUID, at time.Time) error
	Update(schedule *models.Schedule) error
	Delete(id uuid.UUID) error
	CheckConflict(teamID uuid.UUID, startsAt, endsAt time.Time, excludeID *uuid.UUID) (bool, error)
}

// AttendanceRepositoryInterface defines the interface for RSVP repository operations
type AttendanceRepositoryInterface interface {
	Create(attendance *models.Attendance) error
	GetByID(id uuid.UUID) (*models.Attendance, error)
	GetByScheduleID(scheduleID uuid.UUID) ([]models.Attendance, error)
	GetByScheduleAndUser(scheduleID, userID uuid.UUID) (*models.Attendance, error)
	CountByStatus(scheduleID uuid.UUID) (map[models.AttendanceStatus]int64, error)
	Update(attendance *models.Attendance) error
	Delete(id uuid.UUID) error
}

// FeedbackRepositoryInterface defines the interface for feedback repository operations
type FeedbackRepositoryInterface interface {
	Create(feedback *models.Feedback) error
	GetByID(id uuid.UUID) (*models.Feedback, error)
	List(filter FeedbackFilter, limit, offset int) ([]models.Feedback, int64, error)
	Update(feedback *models.Feedback) error
	Delete(id uuid.UUID) error
}

// ConditionRepositoryInterface defines the interface for wellness check-in repository operations
type ConditionRepositoryInterface interface {
	Create(condition *models.Condition) error
	GetByID(id uuid.UUID) (*models.Condition, error)
	GetByUserAndDate(userID uuid.UUID, day time.Time) (*models.Condition, error)
	GetByUserRange(userID uuid.UUID, from, to time.Time) ([]models.Condition, error)
	GetByTeamAndDate(teamID uuid.UUID, day time.Time) ([]models.Condition, error)
	Update(condition *models.Condition) error
	Delete(id uuid.UUID) error
}

// NotificationRepositoryInterface defines the interface for notification repository operations
type NotificationRepositoryInterface interface {
	Create(notification *models.Notification) error
	GetByID(id uuid.UUID) (*models.Notification, error)
	GetByUserID(userID uuid.UUID, unreadOnly bool, limit, offset int) ([]models.Notification, int64, error)
	MarkRead(id uuid.UUID, at time.Time) error
	MarkAllRead(userID uuid.UUID, at time.Time) error
	RecordDelivery(id uuid.UUID, status int, deliveryErr string, at time.Time) error
	Delete(id uuid.UUID) error
}

// ScrimObjectiveRepositoryInterface defines the interface for scrim objective repository operations
type ScrimObjectiveRepositoryInterface interface {
	Create(objective *models.ScrimObjective) error
	GetByID(id uuid.UUID) (*models.ScrimObjective, error)
	GetByMatchID(matchID uuid.UUID) ([]models.ScrimObjective, error)
	GetByScheduleID(scheduleID uuid.UUID) ([]models.ScrimObjective, error)
	GetByTeamID(teamID uuid.UUID, limit, offset int) ([]models.ScrimObjective, int64, error)
	Update(objective *models.ScrimObjective) error
	Delete(id uuid.UUID) error
}
