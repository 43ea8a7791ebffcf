package testutils

import (
	"time"

	"valo-platform-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	// Generate a unique Discord snowflake-ish ID from the UUID to avoid conflicts
	discordID := "9" + id.String()[:8]

	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		DiscordID:   discordID,
		Username:    "testuser_" + id.String()[:6],
		DisplayName: "Test User",
		Email:       "user_" + id.String()[:6] + "@test.com",
		AvatarURL:   "https://cdn.discordapp.com/avatars/test.png",
		RiotID:      "TestUser#EUW",
		Timezone:    "Europe/Berlin",
		Provider:    models.AuthProviderDiscord,
		IsActive:    true,
	}
}

// WithUsername sets a custom username for the user
func (f *UserFactory) WithUsername(username string) *models.User {
	user := f.Create()
	user.Username = username
	return user
}

// WithDiscordID sets a custom Discord ID for the user
func (f *UserFactory) WithDiscordID(discordID string) *models.User {
	user := f.Create()
	user.DiscordID = discordID
	return user
}

// WithRiotID sets a custom Riot ID for the user
func (f *UserFactory) WithRiotID(riotID string) *models.User {
	user := f.Create()
	user.RiotID = riotID
	return user
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	id := uuid.New()
	// Name and invite code carry unique indexes, derive both from the UUID
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Test Team " + id.String()[:6],
		Tag:         "TST",
		Region:      "EU",
		Description: "A test team for testing purposes",
		OwnerID:     uuid.New(),
		InviteCode:  "INV-" + id.String()[:8],
		WebhookURL:  "",
		Links:       nil,
	}
}

// WithOwner sets the owner ID for the team
func (f *TeamFactory) WithOwner(ownerID uuid.UUID) *models.Team {
	team := f.Create()
	team.OwnerID = ownerID
	return team
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// WithWebhook sets a Discord webhook URL for the team
func (f *TeamFactory) WithWebhook(url string) *models.Team {
	team := f.Create()
	team.WebhookURL = url
	return team
}

// TeamMemberFactory provides methods to create test TeamMember data
type TeamMemberFactory struct{}

// NewTeamMemberFactory creates a new TeamMemberFactory
func NewTeamMemberFactory() *TeamMemberFactory {
	return &TeamMemberFactory{}
}

// Create creates a test TeamMember with default values
func (f *TeamMemberFactory) Create() *models.TeamMember {
	return &models.TeamMember{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:   uuid.New(),
		UserID:   uuid.New(),
		Role:     models.TeamMemberRolePlayer,
		JoinedAt: time.Now(),
		IsActive: true,
	}
}

// WithTeamAndUser sets the team and user IDs for the membership
func (f *TeamMemberFactory) WithTeamAndUser(teamID, userID uuid.UUID) *models.TeamMember {
	member := f.Create()
	member.TeamID = teamID
	member.UserID = userID
	return member
}

// WithRole sets a custom role for the membership
func (f *TeamMemberFactory) WithRole(role models.TeamMemberRole) *models.TeamMember {
	member := f.Create()
	member.Role = role
	return member
}

// PlayerFactory provides methods to create test Player data
type PlayerFactory struct{}

// NewPlayerFactory creates a new PlayerFactory
func NewPlayerFactory() *PlayerFactory {
	return &PlayerFactory{}
}

// Create creates a test Player with default values
func (f *PlayerFactory) Create() *models.Player {
	id := uuid.New()
	// PUUID carries a partial unique index, derive it from the row UUID
	return &models.Player{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		PUUID:       uuid.New().String(),
		GameName:    "TestPlayer" + id.String()[:4],
		TagLine:     "EUW",
		Region:      "EU",
		Role:        models.PlayerRoleFlex,
		CurrentRank: "Immortal 1",
		IsActive:    true,
	}
}

// WithTeam sets the team ID for the player
func (f *PlayerFactory) WithTeam(teamID uuid.UUID) *models.Player {
	player := f.Create()
	player.TeamID = &teamID
	return player
}

// WithUser links the player to a platform account
func (f *PlayerFactory) WithUser(userID uuid.UUID) *models.Player {
	player := f.Create()
	player.UserID = &userID
	return player
}

// WithRole sets a custom in-game role for the player
func (f *PlayerFactory) WithRole(role models.PlayerRole) *models.Player {
	player := f.Create()
	player.Role = role
	return player
}

// WithPUUID sets a custom PUUID for the player
func (f *PlayerFactory) WithPUUID(puuid string) *models.Player {
	player := f.Create()
	player.PUUID = puuid
	return player
}

// MatchFactory provides methods to create test Match data
type MatchFactory struct{}

// NewMatchFactory creates a new MatchFactory
func NewMatchFactory() *MatchFactory {
	return &MatchFactory{}
}

// Create creates a test Match with default values
func (f *MatchFactory) Create() *models.Match {
	return &models.Match{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:     uuid.New(),
		Category:   models.MatchCategoryScrim,
		MapName:    "Ascent",
		Opponent:   "Test Opponent",
		Result:     models.MatchResultWin,
		RoundsWon:  13,
		RoundsLost: 7,
		Source:     models.MatchSourceManual,
		PlayedAt:   time.Now().Add(-2 * time.Hour),
	}
}

// WithTeam sets the team ID for the match
func (f *MatchFactory) WithTeam(teamID uuid.UUID) *models.Match {
	match := f.Create()
	match.TeamID = teamID
	return match
}

// WithCategory sets a custom category for the match
func (f *MatchFactory) WithCategory(category models.MatchCategory) *models.Match {
	match := f.Create()
	match.Category = category
	return match
}

// WithResult sets the result and round score for the match
func (f *MatchFactory) WithResult(result models.MatchResult, won, lost int) *models.Match {
	match := f.Create()
	match.Result = result
	match.RoundsWon = won
	match.RoundsLost = lost
	return match
}

// WithMatchRef sets the external match reference, marking the match as imported
func (f *MatchFactory) WithMatchRef(ref string) *models.Match {
	match := f.Create()
	match.MatchRef = ref
	match.Source = models.MatchSourceImport
	return match
}

// MatchPlayerFactory provides methods to create test MatchPlayer data
type MatchPlayerFactory struct{}

// NewMatchPlayerFactory creates a new MatchPlayerFactory
func NewMatchPlayerFactory() *MatchPlayerFactory {
	return &MatchPlayerFactory{}
}

// Create creates a test MatchPlayer scoreboard row with default values
func (f *MatchPlayerFactory) Create() *models.MatchPlayer {
	id := uuid.New()
	return &models.MatchPlayer{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		MatchID:      uuid.New(),
		PUUID:        uuid.New().String(),
		GameName:     "TestPlayer" + id.String()[:4],
		TagLine:      "EUW",
		AgentName:    "Jett",
		TeamSide:     "Blue",
		IsAlly:       true,
		Kills:        18,
		Deaths:       12,
		Assists:      4,
		Score:        4567,
		RoundsPlayed: 20,
		DamageDealt:  2900,
		Headshots:    14,
		Bodyshots:    40,
		Legshots:     2,
	}
}

// WithMatch sets the match ID for the scoreboard row
func (f *MatchPlayerFactory) WithMatch(matchID uuid.UUID) *models.MatchPlayer {
	row := f.Create()
	row.MatchID = matchID
	return row
}

// WithPlayer links the row to a roster player
func (f *MatchPlayerFactory) WithPlayer(playerID uuid.UUID) *models.MatchPlayer {
	row := f.Create()
	row.PlayerID = &playerID
	return row
}

// WithStats sets the core combat stats for the row
func (f *MatchPlayerFactory) WithStats(kills, deaths, assists int) *models.MatchPlayer {
	row := f.Create()
	row.Kills = kills
	row.Deaths = deaths
	row.Assists = assists
	return row
}

// GoalFactory provides methods to create test Goal data
type GoalFactory struct{}

// NewGoalFactory creates a new GoalFactory
func NewGoalFactory() *GoalFactory {
	return &GoalFactory{}
}

// Create creates a test Goal with default values
func (f *GoalFactory) Create() *models.Goal {
	return &models.Goal{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:      uuid.New(),
		Title:       "Improve retake coordination",
		Description: "A test goal for testing purposes",
		Status:      models.GoalStatusActive,
		Progress:    0,
	}
}

// WithTeam sets the team ID for the goal
func (f *GoalFactory) WithTeam(teamID uuid.UUID) *models.Goal {
	goal := f.Create()
	goal.TeamID = teamID
	return goal
}

// WithPlayer scopes the goal to a single player
func (f *GoalFactory) WithPlayer(playerID uuid.UUID) *models.Goal {
	goal := f.Create()
	goal.PlayerID = &playerID
	return goal
}

// WithProgress sets the progress percentage for the goal
func (f *GoalFactory) WithProgress(progress int) *models.Goal {
	goal := f.Create()
	goal.Progress = progress
	return goal
}

// ScheduleFactory provides methods to create test Schedule data
type ScheduleFactory struct{}

// NewScheduleFactory creates a new ScheduleFactory
func NewScheduleFactory() *ScheduleFactory {
	return &ScheduleFactory{}
}

// Create creates a test Schedule with default values, starting tomorrow
func (f *ScheduleFactory) Create() *models.Schedule {
	start := time.Now().Add(24 * time.Hour).Truncate(time.Minute)
	return &models.Schedule{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:              uuid.New(),
		Title:               "Evening scrim block",
		EventType:           models.ScheduleTypeScrim,
		Opponent:            "Test Opponent",
		StartsAt:            start,
		EndsAt:              start.Add(2 * time.Hour),
		Location:            "Team voice channel",
		Status:              models.ScheduleStatusScheduled,
		RemindBeforeMinutes: 60,
	}
}

// WithTeam sets the team ID for the schedule
func (f *ScheduleFactory) WithTeam(teamID uuid.UUID) *models.Schedule {
	schedule := f.Create()
	schedule.TeamID = teamID
	return schedule
}

// WithWindow sets the start and end times for the schedule
func (f *ScheduleFactory) WithWindow(startsAt, endsAt time.Time) *models.Schedule {
	schedule := f.Create()
	schedule.StartsAt = startsAt
	schedule.EndsAt = endsAt
	return schedule
}

// WithType sets a custom event type for the schedule
func (f *ScheduleFactory) WithType(eventType models.ScheduleType) *models.Schedule {
	schedule := f.Create()
	schedule.EventType = eventType
	return schedule
}

// AttendanceFactory provides methods to create test Attendance data
type AttendanceFactory struct{}

// NewAttendanceFactory creates a new AttendanceFactory
func NewAttendanceFactory() *AttendanceFactory {
	return &AttendanceFactory{}
}

// Create creates a test Attendance record with default values
func (f *AttendanceFactory) Create() *models.Attendance {
	return &models.Attendance{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ScheduleID:  uuid.New(),
		UserID:      uuid.New(),
		Status:      models.AttendanceStatusAttending,
		RespondedAt: time.Now(),
	}
}

// WithScheduleAndUser sets the schedule and user IDs for the record
func (f *AttendanceFactory) WithScheduleAndUser(scheduleID, userID uuid.UUID) *models.Attendance {
	attendance := f.Create()
	attendance.ScheduleID = scheduleID
	attendance.UserID = userID
	return attendance
}

// WithStatus sets a custom RSVP status for the record
func (f *AttendanceFactory) WithStatus(status models.AttendanceStatus) *models.Attendance {
	attendance := f.Create()
	attendance.Status = status
	return attendance
}

// FeedbackFactory provides methods to create test Feedback data
type FeedbackFactory struct{}

// NewFeedbackFactory creates a new FeedbackFactory
func NewFeedbackFactory() *FeedbackFactory {
	return &FeedbackFactory{}
}

// Create creates a test Feedback note with default values
func (f *FeedbackFactory) Create() *models.Feedback {
	return &models.Feedback{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:   uuid.New(),
		AuthorID: uuid.New(),
		Category: models.FeedbackCategoryGeneral,
		Content:  "A test feedback note for testing purposes",
	}
}

// WithTeamAndAuthor sets the team and author IDs for the note
func (f *FeedbackFactory) WithTeamAndAuthor(teamID, authorID uuid.UUID) *models.Feedback {
	feedback := f.Create()
	feedback.TeamID = teamID
	feedback.AuthorID = authorID
	return feedback
}

// WithRecipient addresses the note to a single user
func (f *FeedbackFactory) WithRecipient(recipientID uuid.UUID) *models.Feedback {
	feedback := f.Create()
	feedback.RecipientID = &recipientID
	return feedback
}

// WithMatch ties the note to a match
func (f *FeedbackFactory) WithMatch(matchID uuid.UUID) *models.Feedback {
	feedback := f.Create()
	feedback.MatchID = &matchID
	return feedback
}

// ConditionFactory provides methods to create test Condition data
type ConditionFactory struct{}

// NewConditionFactory creates a new ConditionFactory
func NewConditionFactory() *ConditionFactory {
	return &ConditionFactory{}
}

// Create creates a test daily Condition check-in with default values
func (f *ConditionFactory) Create() *models.Condition {
	return &models.Condition{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:        uuid.New(),
		RecordedOn:    time.Now().Truncate(24 * time.Hour),
		PhysicalScore: 4,
		MentalScore:   4,
		SleepHours:    7.5,
	}
}

// WithUser sets the user ID for the check-in
func (f *ConditionFactory) WithUser(userID uuid.UUID) *models.Condition {
	condition := f.Create()
	condition.UserID = userID
	return condition
}

// WithTeam sets the team ID on the check-in
func (f *ConditionFactory) WithTeam(teamID uuid.UUID) *models.Condition {
	condition := f.Create()
	condition.TeamID = &teamID
	return condition
}

// WithScores sets the wellness scores for the check-in
func (f *ConditionFactory) WithScores(physical, mental int) *models.Condition {
	condition := f.Create()
	condition.PhysicalScore = physical
	condition.MentalScore = mental
	return condition
}

// NotificationFactory provides methods to create test Notification data
type NotificationFactory struct{}

// NewNotificationFactory creates a new NotificationFactory
func NewNotificationFactory() *NotificationFactory {
	return &NotificationFactory{}
}

// Create creates a test Notification with default values
func (f *NotificationFactory) Create() *models.Notification {
	return &models.Notification{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Type:  models.NotificationTypeSystem,
		Title: "Test notification",
		Body:  "A test notification for testing purposes",
	}
}

// WithUser addresses the notification to a single user
func (f *NotificationFactory) WithUser(userID uuid.UUID) *models.Notification {
	notification := f.Create()
	notification.UserID = &userID
	return notification
}

// WithTeam addresses the notification to a team
func (f *NotificationFactory) WithTeam(teamID uuid.UUID) *models.Notification {
	notification := f.Create()
	notification.TeamID = &teamID
	return notification
}

// WithType sets a custom notification type
func (f *NotificationFactory) WithType(notificationType models.NotificationType) *models.Notification {
	notification := f.Create()
	notification.Type = notificationType
	return notification
}

// ScrimObjectiveFactory provides methods to create test ScrimObjective data
type ScrimObjectiveFactory struct{}

// NewScrimObjectiveFactory creates a new ScrimObjectiveFactory
func NewScrimObjectiveFactory() *ScrimObjectiveFactory {
	return &ScrimObjectiveFactory{}
}

// Create creates a test ScrimObjective with default values
func (f *ScrimObjectiveFactory) Create() *models.ScrimObjective {
	return &models.ScrimObjective{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:      uuid.New(),
		Title:       "Win more pistol rounds",
		Description: "A test objective for testing purposes",
		SortOrder:   0,
	}
}

// WithTeam sets the team ID for the objective
func (f *ScrimObjectiveFactory) WithTeam(teamID uuid.UUID) *models.ScrimObjective {
	objective := f.Create()
	objective.TeamID = teamID
	return objective
}

// WithMatch hangs the objective off a match
func (f *ScrimObjectiveFactory) WithMatch(matchID uuid.UUID) *models.ScrimObjective {
	objective := f.Create()
	objective.MatchID = &matchID
	return objective
}

// WithSchedule hangs the objective off a calendar event
func (f *ScrimObjectiveFactory) WithSchedule(scheduleID uuid.UUID) *models.ScrimObjective {
	objective := f.Create()
	objective.ScheduleID = &scheduleID
	return objective
}

// FactorySet provides access to all factories
type FactorySet struct {
	User           *UserFactory
	Team           *TeamFactory
	TeamMember     *TeamMemberFactory
	Player         *PlayerFactory
	Match          *MatchFactory
	MatchPlayer    *MatchPlayerFactory
	Goal           *GoalFactory
	Schedule       *ScheduleFactory
	Attendance     *AttendanceFactory
	Feedback       *FeedbackFactory
	Condition      *ConditionFactory
	Notification   *NotificationFactory
	ScrimObjective *ScrimObjectiveFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:           NewUserFactory(),
		Team:           NewTeamFactory(),
		TeamMember:     NewTeamMemberFactory(),
		Player:         NewPlayerFactory(),
		Match:          NewMatchFactory(),
		MatchPlayer:    NewMatchPlayerFactory(),
		Goal:           NewGoalFactory(),
		Schedule:       NewScheduleFactory(),
		Attendance:     NewAttendanceFactory(),
		Feedback:       NewFeedbackFactory(),
		Condition:      NewConditionFactory(),
		Notification:   NewNotificationFactory(),
		ScrimObjective: NewScrimObjectiveFactory(),
	}
}

// CreateFullTeamSetup creates a user who owns a team, the owner membership,
// and a roster player linked to the team.
func (fs *FactorySet) CreateFullTeamSetup() (*models.User, *models.Team, *models.TeamMember, *models.Player) {
	// Create owner account
	owner := fs.User.Create()

	// Create team owned by the account
	team := fs.Team.WithOwner(owner.ID)

	// Create owner membership
	member := fs.TeamMember.WithTeamAndUser(team.ID, owner.ID)
	member.Role = models.TeamMemberRoleOwner

	// Create a roster player on the team
	player := fs.Player.WithTeam(team.ID)

	return owner, team, member, player
}
