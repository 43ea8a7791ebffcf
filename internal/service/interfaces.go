package service

import (
	"context"

	"valo-platform-backend/internal/database/models"
	"valo-platform-backend/internal/repository"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	GetByID(id uuid.UUID) (*UserResponse, error)
	UpdateProfile(userID uuid.UUID, req *UpdateUserRequest) (*UserResponse, error)
	ProvisionOAuthUser(provider models.AuthProvider, providerID, username, displayName, email, avatarURL string) (*models.User, error)
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	Create(actorID uuid.UUID, req *CreateTeamRequest) (*TeamResponse, error)
	GetByID(actorID, teamID uuid.UUID) (*TeamResponse, error)
	GetMine(actorID uuid.UUID) ([]TeamResponse, error)
	Update(actorID, teamID uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error)
	Delete(actorID, teamID uuid.UUID) error
	RotateInviteCode(actorID, teamID uuid.UUID) (*TeamResponse, error)
	Join(actorID uuid.UUID, req *JoinTeamRequest) (*TeamResponse, error)
	GetMembers(actorID, teamID uuid.UUID) ([]TeamMemberResponse, error)
	AddMember(actorID, teamID uuid.UUID, req *AddMemberRequest) (*TeamMemberResponse, error)
	UpdateMemberRole(actorID, teamID, memberID uuid.UUID, req *UpdateMemberRoleRequest) (*TeamMemberResponse, error)
	RemoveMember(actorID, teamID, memberID uuid.UUID) error
	AddLink(actorID, teamID uuid.UUID, req *AddLinkRequest) (*TeamResponse, error)
	RemoveLink(actorID, teamID uuid.UUID, url string) (*TeamResponse, error)
	UpdateLinks(actorID, teamID uuid.UUID, req *UpdateLinksRequest) (*TeamResponse, error)
}

// PlayerServiceInterface defines the interface for player service
type PlayerServiceInterface interface {
	Create(actorID uuid.UUID, req *CreatePlayerRequest) (*PlayerResponse, error)
	GetByID(actorID, playerID uuid.UUID) (*PlayerResponse, error)
	GetByTeamID(actorID, teamID uuid.UUID, page, pageSize int) (*PlayerListResponse, error)
	Update(actorID, playerID uuid.UUID, req *UpdatePlayerRequest) (*PlayerResponse, error)
	Delete(actorID, playerID uuid.UUID) error
}

// MatchServiceInterface defines the interface for match service
type MatchServiceInterface interface {
	Create(actorID uuid.UUID, req *CreateMatchRequest) (*MatchDetailResponse, error)
	Import(actorID uuid.UUID, req *ImportMatchRequest) (*MatchDetailResponse, error)
	GetByID(actorID, matchID uuid.UUID) (*MatchResponse, error)
	GetPlayers(actorID, matchID uuid.UUID) ([]MatchPlayerResponse, error)
	GetByTeamID(actorID, teamID uuid.UUID, category models.MatchCategory, page, pageSize int) (*MatchListResponse, error)
	Update(actorID, matchID uuid.UUID, req *UpdateMatchRequest) (*MatchResponse, error)
	Delete(actorID, matchID uuid.UUID) error
	AttachScreenshot(ctx context.Context, actorID, matchID uuid.UUID, data []byte, contentType string) (string, error)
}

// StatsServiceInterface defines the interface for stats service
type StatsServiceInterface interface {
	GetPlayerOverall(actorID, playerID uuid.UUID) (*PlayerOverallStats, error)
	GetPlayerMapStats(actorID, playerID uuid.UUID) ([]PlayerMapStats, error)
	GetPlayerAgentStats(actorID, playerID uuid.UUID) ([]PlayerAgentStats, error)
	GetPlayerTimingStats(actorID, playerID uuid.UUID) ([]SectorStats, error)
	GetPlayerMatches(actorID, playerID uuid.UUID, page, pageSize int) (*PlayerMatchListResponse, error)
	GetMatchScoreboard(actorID, matchID uuid.UUID) ([]MatchPlayerResponse, error)
}

// GoalServiceInterface defines the interface for goal service
type GoalServiceInterface interface {
	Create(actorID uuid.UUID, req *CreateGoalRequest) (*GoalResponse, error)
	GetByID(actorID, goalID uuid.UUID) (*GoalResponse, error)
	GetByTeamID(actorID, teamID uuid.UUID, playerID *uuid.UUID, activeOnly bool, page, pageSize int) (*GoalListResponse, error)
	Update(actorID, goalID uuid.UUID, req *UpdateGoalRequest) (*GoalResponse, error)
	UpdateProgress(actorID, goalID uuid.UUID, req *UpdateGoalProgressRequest) (*GoalResponse, error)
	Delete(actorID, goalID uuid.UUID) error
}

// ScheduleServiceInterface defines the interface for schedule service
type ScheduleServiceInterface interface {
	Create(actorID uuid.UUID, req *CreateScheduleRequest) (*ScheduleResponse, error)
	GetByID(actorID, scheduleID uuid.UUID) (*ScheduleResponse, error)
	GetByTeamID(actorID, teamID uuid.UUID, page, pageSize int) (*ScheduleListResponse, error)
	GetUpcoming(actorID, teamID uuid.UUID, days, page, pageSize int) (*ScheduleListResponse, error)
	Update(actorID, scheduleID uuid.UUID, req *UpdateScheduleRequest) (*ScheduleResponse, error)
	Delete(actorID, scheduleID uuid.UUID) error
	GetAttendance(actorID, scheduleID uuid.UUID) (*AttendanceSummary, error)
	UpsertAttendance(actorID, scheduleID uuid.UUID, req *UpsertAttendanceRequest) (*AttendanceResponse, error)
}

// FeedbackServiceInterface defines the interface for feedback service
type FeedbackServiceInterface interface {
	Create(actorID uuid.UUID, req *CreateFeedbackRequest) (*FeedbackResponse, error)
	GetByID(actorID, feedbackID uuid.UUID) (*FeedbackResponse, error)
	List(actorID uuid.UUID, filter repository.FeedbackFilter, page, pageSize int) (*FeedbackListResponse, error)
	Update(actorID, feedbackID uuid.UUID, req *UpdateFeedbackRequest) (*FeedbackResponse, error)
	Delete(actorID, feedbackID uuid.UUID) error
}

// ConditionServiceInterface defines the interface for condition service
type ConditionServiceInterface interface {
	UpsertToday(actorID uuid.UUID, req *UpsertConditionRequest) (*ConditionResponse, error)
	GetMine(actorID uuid.UUID, fromStr, toStr string) ([]ConditionResponse, error)
	GetByTeamAndDate(actorID, teamID uuid.UUID, dateStr string) ([]ConditionResponse, error)
}

// ObjectiveServiceInterface defines the interface for objective service
type ObjectiveServiceInterface interface {
	CreateForMatch(actorID, matchID uuid.UUID, req *CreateObjectiveRequest) (*ObjectiveResponse, error)
	CreateForSchedule(actorID, scheduleID uuid.UUID, req *CreateObjectiveRequest) (*ObjectiveResponse, error)
	GetByMatchID(actorID, matchID uuid.UUID) ([]ObjectiveResponse, error)
	GetByScheduleID(actorID, scheduleID uuid.UUID) ([]ObjectiveResponse, error)
	GetByTeamID(actorID, teamID uuid.UUID, page, pageSize int) (*ObjectiveListResponse, error)
	Update(actorID, objectiveID uuid.UUID, req *UpdateObjectiveRequest) (*ObjectiveResponse, error)
	Delete(actorID, objectiveID uuid.UUID) error
}

// NotificationServiceInterface defines the interface for notification service
type NotificationServiceInterface interface {
	Dispatch(teamID *uuid.UUID, userID *uuid.UUID, notificationType models.NotificationType, title, body string, payload interface{})
	GetMine(userID uuid.UUID, unreadOnly bool, page, pageSize int) (*NotificationListResponse, error)
	MarkRead(userID, notificationID uuid.UUID) error
	MarkAllRead(userID uuid.UUID) error
}

// VisionServiceInterface defines the interface for the scoreboard OCR client
type VisionServiceInterface interface {
	ParseScoreboard(ctx context.Context, image []byte) *ScoreboardParseResult
}
