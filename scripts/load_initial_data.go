package main

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"valo-platform-backend/internal/config"
	"valo-platform-backend/internal/database"
	"valo-platform-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type UserData struct {
	Username    string `yaml:"username"`
	DisplayName string `yaml:"display_name"`
	Email       string `yaml:"email"`
	DiscordID   string `yaml:"discord_id,omitempty"`
	RiotID      string `yaml:"riot_id,omitempty"`
	Timezone    string `yaml:"timezone,omitempty"`
	Provider    string `yaml:"provider,omitempty"`
}

type TeamData struct {
	Name        string       `yaml:"name"`
	Tag         string       `yaml:"tag"`
	Region      string       `yaml:"region"`
	Description string       `yaml:"description"`
	OwnerName   string       `yaml:"owner_name"`
	InviteCode  string       `yaml:"invite_code,omitempty"`
	WebhookURL  string       `yaml:"webhook_url,omitempty"`
	Links       []Link       `yaml:"links,omitempty"`
	Members     []MemberData `yaml:"members,omitempty"`
}

type MemberData struct {
	Username string `yaml:"username"`
	Role     string `yaml:"role"`
}

type PlayerData struct {
	TeamName    string `yaml:"team_name"`
	Username    string `yaml:"username,omitempty"`
	GameName    string `yaml:"game_name"`
	TagLine     string `yaml:"tag_line"`
	Region      string `yaml:"region,omitempty"`
	Role        string `yaml:"role"`
	CurrentRank string `yaml:"current_rank,omitempty"`
}

type ScheduleData struct {
	TeamName            string `yaml:"team_name"`
	Title               string `yaml:"title"`
	EventType           string `yaml:"event_type"`
	Opponent            string `yaml:"opponent,omitempty"`
	StartsInHours       int    `yaml:"starts_in_hours"`
	DurationMinutes     int    `yaml:"duration_minutes"`
	Location            string `yaml:"location,omitempty"`
	RemindBeforeMinutes int    `yaml:"remind_before_minutes"`
	Notes               string `yaml:"notes,omitempty"`
}

type GoalData struct {
	TeamName     string `yaml:"team_name"`
	PlayerName   string `yaml:"player_name,omitempty"`
	Title        string `yaml:"title"`
	Description  string `yaml:"description,omitempty"`
	Progress     int    `yaml:"progress"`
	TargetInDays int    `yaml:"target_in_days,omitempty"`
}

type Link struct {
	URL   string `yaml:"url"`
	Title string `yaml:"title"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type PlayersFile struct {
	Players []PlayerData `yaml:"players"`
}

type SchedulesFile struct {
	Schedules []ScheduleData `yaml:"schedules"`
}

type GoalsFile struct {
	Goals []GoalData `yaml:"goals"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent, // Suppress all GORM logs including SQL queries and "record not found"
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	// Load all data from YAML files
	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	teams, err := loadTeams(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}

	players, err := loadPlayers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load players: %w", err)
	}

	schedules, err := loadSchedules(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load schedules: %w", err)
	}

	goals, err := loadGoals(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load goals: %w", err)
	}

	// Create users first
	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, userData := range users {
		user, created, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Username, err)
		}
		userMap[userData.Username] = user
		if created {
			userCreated++
		}
	}
	log.Printf("📋 Users: %d created, %d total", userCreated, len(users))

	// Create teams with their memberships
	teamMap := make(map[string]*models.Team)
	teamCreated := 0
	for _, teamData := range teams {
		team, created, err := createTeam(db, teamData, userMap)
		if err != nil {
			return fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
		}
		teamMap[teamData.Name] = team
		if created {
			teamCreated++
		}
	}
	log.Printf("📋 Teams: %d created, %d total", teamCreated, len(teams))

	// Create players
	playerMap := make(map[string]*models.Player)
	playerCreated := 0
	for _, playerData := range players {
		player, created, err := createPlayer(db, playerData, teamMap, userMap)
		if err != nil {
			return fmt.Errorf("failed to create player %s: %w", playerData.GameName, err)
		}
		playerMap[playerData.GameName] = player
		if created {
			playerCreated++
		}
	}
	log.Printf("📋 Players: %d created, %d total", playerCreated, len(players))

	// Create schedules
	scheduleCreated := 0
	for _, scheduleData := range schedules {
		_, created, err := createSchedule(db, scheduleData, teamMap)
		if err != nil {
			return fmt.Errorf("failed to create schedule %s: %w", scheduleData.Title, err)
		}
		if created {
			scheduleCreated++
		}
	}
	log.Printf("📋 Schedules: %d created, %d total", scheduleCreated, len(schedules))

	// Create goals
	goalCreated := 0
	for _, goalData := range goals {
		_, created, err := createGoal(db, goalData, teamMap, playerMap)
		if err != nil {
			return fmt.Errorf("failed to create goal %s: %w", goalData.Title, err)
		}
		if created {
			goalCreated++
		}
	}
	log.Printf("📋 Goals: %d created, %d total", goalCreated, len(goals))

	return nil
}

func loadUsers(dataDir string) ([]UserData, error) {
	var allUsers []UserData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "users") {
			var file UsersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allUsers = append(allUsers, file.Users...)
		}
		return nil
	})

	return allUsers, err
}

func loadTeams(dataDir string) ([]TeamData, error) {
	var allTeams []TeamData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "teams") {
			var file TeamsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTeams = append(allTeams, file.Teams...)
		}
		return nil
	})

	return allTeams, err
}

func loadPlayers(dataDir string) ([]PlayerData, error) {
	var allPlayers []PlayerData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "players") {
			var file PlayersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allPlayers = append(allPlayers, file.Players...)
		}
		return nil
	})

	return allPlayers, err
}

func loadSchedules(dataDir string) ([]ScheduleData, error) {
	var allSchedules []ScheduleData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "schedules") {
			var file SchedulesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allSchedules = append(allSchedules, file.Schedules...)
		}
		return nil
	})

	return allSchedules, err
}

func loadGoals(dataDir string) ([]GoalData, error) {
	var allGoals []GoalData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "goals") {
			var file GoalsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allGoals = append(allGoals, file.Goals...)
		}
		return nil
	})

	return allGoals, err
}

func createUser(db *gorm.DB, userData UserData) (*models.User, bool, error) {
	var user models.User
	if err := db.Where("username = ?", userData.Username).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			provider := models.AuthProviderDiscord
			if userData.Provider != "" {
				provider = models.AuthProvider(userData.Provider)
			}

			user = models.User{
				Username:    userData.Username,
				DisplayName: userData.DisplayName,
				Email:       userData.Email,
				DiscordID:   userData.DiscordID,
				RiotID:      userData.RiotID,
				Timezone:    userData.Timezone,
				Provider:    provider,
				IsActive:    true,
			}

			if err := db.Create(&user).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create user: %w", err)
			}
			return &user, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query user: %w", err)
		}
	}

	return &user, false, nil // created = false (existing)
}

func createTeam(db *gorm.DB, teamData TeamData, userMap map[string]*models.User) (*models.Team, bool, error) {
	owner := userMap[teamData.OwnerName]
	if owner == nil {
		return nil, false, fmt.Errorf("owner %s not found for team %s", teamData.OwnerName, teamData.Name)
	}

	var team models.Team
	if err := db.Where("name = ?", teamData.Name).First(&team).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			linksJSON, _ := json.Marshal(teamData.Links)

			inviteCode := teamData.InviteCode
			if inviteCode == "" {
				inviteCode = newInviteCode()
			}

			team = models.Team{
				Name:        teamData.Name,
				Tag:         teamData.Tag,
				Region:      teamData.Region,
				Description: teamData.Description,
				OwnerID:     owner.ID,
				InviteCode:  inviteCode,
				WebhookURL:  teamData.WebhookURL,
				Links:       linksJSON,
			}

			if err := db.Create(&team).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create team: %w", err)
			}

			// Membership rows: the owner plus any listed members
			if err := createMembership(db, &team, owner, models.TeamMemberRoleOwner); err != nil {
				return nil, false, err
			}
			for _, memberData := range teamData.Members {
				user := userMap[memberData.Username]
				if user == nil {
					return nil, false, fmt.Errorf("user %s not found for team %s", memberData.Username, teamData.Name)
				}
				role := models.TeamMemberRolePlayer
				if memberData.Role != "" {
					role = models.TeamMemberRole(memberData.Role)
				}
				if role == models.TeamMemberRoleOwner {
					continue // already added above
				}
				if err := createMembership(db, &team, user, role); err != nil {
					return nil, false, err
				}
			}
			return &team, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query team: %w", err)
		}
	}

	return &team, false, nil // created = false (existing)
}

func createMembership(db *gorm.DB, team *models.Team, user *models.User, role models.TeamMemberRole) error {
	member := models.TeamMember{
		TeamID:   team.ID,
		UserID:   user.ID,
		Role:     role,
		JoinedAt: time.Now().UTC(),
		IsActive: true,
	}
	if err := db.Create(&member).Error; err != nil {
		return fmt.Errorf("failed to create membership for %s: %w", user.Username, err)
	}
	return nil
}

func createPlayer(db *gorm.DB, playerData PlayerData, teamMap map[string]*models.Team, userMap map[string]*models.User) (*models.Player, bool, error) {
	team := teamMap[playerData.TeamName]
	if team == nil {
		return nil, false, fmt.Errorf("team %s not found for player %s", playerData.TeamName, playerData.GameName)
	}

	var player models.Player
	if err := db.Where("game_name = ? AND tag_line = ? AND team_id = ?", playerData.GameName, playerData.TagLine, team.ID).First(&player).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			role := models.PlayerRoleFlex
			if playerData.Role != "" {
				role = models.PlayerRole(playerData.Role)
			}

			player = models.Player{
				TeamID:      &team.ID,
				GameName:    playerData.GameName,
				TagLine:     playerData.TagLine,
				Region:      playerData.Region,
				Role:        role,
				CurrentRank: playerData.CurrentRank,
				IsActive:    true,
			}
			if user := userMap[playerData.Username]; user != nil {
				player.UserID = &user.ID
			}

			if err := db.Create(&player).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create player: %w", err)
			}
			return &player, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query player: %w", err)
		}
	}

	return &player, false, nil // created = false (existing)
}

func createSchedule(db *gorm.DB, scheduleData ScheduleData, teamMap map[string]*models.Team) (*models.Schedule, bool, error) {
	team := teamMap[scheduleData.TeamName]
	if team == nil {
		return nil, false, fmt.Errorf("team %s not found for schedule %s", scheduleData.TeamName, scheduleData.Title)
	}

	var schedule models.Schedule
	if err := db.Where("title = ? AND team_id = ?", scheduleData.Title, team.ID).First(&schedule).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			eventType := models.ScheduleTypePractice
			if scheduleData.EventType != "" {
				eventType = models.ScheduleType(scheduleData.EventType)
			}

			// Offsets keep demo events in the future no matter when the seed runs
			startsAt := time.Now().UTC().Add(time.Duration(scheduleData.StartsInHours) * time.Hour).Truncate(time.Minute)
			duration := scheduleData.DurationMinutes
			if duration <= 0 {
				duration = 120
			}
			remind := scheduleData.RemindBeforeMinutes
			if remind <= 0 {
				remind = 60
			}

			schedule = models.Schedule{
				TeamID:              team.ID,
				Title:               scheduleData.Title,
				EventType:           eventType,
				Opponent:            scheduleData.Opponent,
				StartsAt:            startsAt,
				EndsAt:              startsAt.Add(time.Duration(duration) * time.Minute),
				Location:            scheduleData.Location,
				Status:              models.ScheduleStatusScheduled,
				RemindBeforeMinutes: remind,
				Notes:               scheduleData.Notes,
			}

			if err := db.Create(&schedule).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create schedule: %w", err)
			}
			return &schedule, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query schedule: %w", err)
		}
	}

	return &schedule, false, nil // created = false (existing)
}

func createGoal(db *gorm.DB, goalData GoalData, teamMap map[string]*models.Team, playerMap map[string]*models.Player) (*models.Goal, bool, error) {
	team := teamMap[goalData.TeamName]
	if team == nil {
		return nil, false, fmt.Errorf("team %s not found for goal %s", goalData.TeamName, goalData.Title)
	}

	var goal models.Goal
	if err := db.Where("title = ? AND team_id = ?", goalData.Title, team.ID).First(&goal).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			goal = models.Goal{
				TeamID:      team.ID,
				Title:       goalData.Title,
				Description: goalData.Description,
				Status:      models.GoalStatusActive,
				Progress:    goalData.Progress,
			}
			if player := playerMap[goalData.PlayerName]; player != nil {
				goal.PlayerID = &player.ID
			}
			if goalData.TargetInDays > 0 {
				target := time.Now().UTC().AddDate(0, 0, goalData.TargetInDays)
				goal.TargetDate = &target
			}

			if err := db.Create(&goal).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create goal: %w", err)
			}
			return &goal, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query goal: %w", err)
		}
	}

	return &goal, false, nil // created = false (existing)
}

// newInviteCode mirrors the short URL safe codes the API hands out.
func newInviteCode() string {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return base64.RawURLEncoding.EncodeToString(b)
}
