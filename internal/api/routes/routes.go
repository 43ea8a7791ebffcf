package routes

import (
	"context"
	"log"
	"time"

	"valo-platform-backend/internal/api/handlers"
	"valo-platform-backend/internal/api/middleware"
	"valo-platform-backend/internal/auth"
	"valo-platform-backend/internal/config"
	"valo-platform-backend/internal/repository"
	"valo-platform-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	memberRepo := repository.NewTeamMemberRepository(db)
	playerRepo := repository.NewPlayerRepository(db)
	matchRepo := repository.NewMatchRepository(db)
	matchPlayerRepo := repository.NewMatchPlayerRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	conditionRepo := repository.NewConditionRepository(db)
	objectiveRepo := repository.NewScrimObjectiveRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Initialize external integrations; the API keeps serving without them
	notifier := service.NewDiscordNotifier(time.Duration(cfg.DiscordTimeoutSec) * time.Second)

	var screenshotStore service.ScreenshotStore
	if cfg.StorageEnabled() {
		storageService, err := service.NewStorageService(cfg)
		if err != nil {
			log.Printf("Warning: object storage initialization failed: %v", err)
		} else {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if err := storageService.EnsureBucket(ctx); err != nil {
				log.Printf("Warning: screenshot bucket check failed: %v", err)
			}
			cancel()
			screenshotStore = storageService
		}
	}

	var visionClient service.VisionServiceInterface
	if cfg.VisionEnabled() {
		visionService, err := service.NewVisionService(cfg)
		if err != nil {
			log.Printf("Warning: vision client initialization failed: %v", err)
		} else {
			visionClient = visionService
		}
	}

	// Initialize services
	userService := service.NewUserService(userRepo, validator)
	notificationService := service.NewNotificationService(notificationRepo, teamRepo, notifier)
	teamService := service.NewTeamService(teamRepo, memberRepo, userRepo, notificationService, validator)
	playerService := service.NewPlayerService(playerRepo, memberRepo, matchPlayerRepo, validator)
	matchService := service.NewMatchService(matchRepo, matchPlayerRepo, playerRepo, memberRepo, notificationService, screenshotStore, validator)
	statsService := service.NewStatsService(matchRepo, matchPlayerRepo, playerRepo, memberRepo)
	goalService := service.NewGoalService(goalRepo, memberRepo, playerRepo, notificationService, validator)
	scheduleService := service.NewScheduleService(scheduleRepo, attendanceRepo, memberRepo, validator)
	feedbackService := service.NewFeedbackService(feedbackRepo, memberRepo, matchRepo, userRepo, notificationService, validator)
	conditionService := service.NewConditionService(conditionRepo, memberRepo, validator)
	objectiveService := service.NewObjectiveService(objectiveRepo, matchRepo, scheduleRepo, memberRepo, validator)

	// Initialize auth configuration and services
	authConfig, err := auth.LoadAuthConfig("config/auth.yaml")
	if err != nil {
		log.Printf("Warning: Failed to load auth config: %v", err)
		// Continue without auth if config fails to load
		authConfig = nil
	}

	var authHandler *auth.AuthHandler
	var authMiddleware *auth.AuthMiddleware
	if authConfig != nil {
		authService, err := auth.NewAuthService(authConfig, userService)
		if err != nil {
			log.Printf("Warning: Failed to initialize auth service: %v", err)
		} else {
			authHandler = auth.NewAuthHandler(authService)
			authMiddleware = auth.NewAuthMiddleware(authService)
		}
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(userService)
	teamHandler := handlers.NewTeamHandler(teamService)
	playerHandler := handlers.NewPlayerHandler(playerService)
	matchHandler := handlers.NewMatchHandler(matchService)
	statsHandler := handlers.NewStatsHandler(statsService)
	goalHandler := handlers.NewGoalHandler(goalService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)
	conditionHandler := handlers.NewConditionHandler(conditionService)
	objectiveHandler := handlers.NewObjectiveHandler(objectiveService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	ocrHandler := handlers.NewOCRHandler(visionClient, screenshotStore)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Prometheus metrics route
	router.GET("/metrics", middleware.MetricsHandler())

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes (OAuth login flow)
	if authHandler != nil {
		auth := router.Group("/api/auth")
		{
			// Provider-specific auth routes
			providerGroup := auth.Group("/:provider")
			{
				providerGroup.GET("/start", authHandler.Start)
				providerGroup.GET("/handler/frame", authHandler.HandlerFrame)
				providerGroup.GET("/refresh", authHandler.Refresh)
				providerGroup.POST("/logout", authHandler.Logout)
			}

			// Helper endpoint for token validation
			auth.POST("/validate", authHandler.ValidateToken)
		}
	}

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")

	// Apply auth middleware to require authentication for all API endpoints
	if authMiddleware != nil {
		v1.Use(authMiddleware.RequireAuth())
	}

	{
		// User routes
		users := v1.Group("/users")
		{
			users.GET("/me", userHandler.GetMe)
			users.PUT("/me", userHandler.UpdateMe)
			users.GET("/:id", userHandler.GetUser)
		}

		// Team routes
		teams := v1.Group("/teams")
		{
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("", teamHandler.GetMyTeams)
			teams.POST("/join", teamHandler.JoinTeam)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PUT("/:id", teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
			teams.POST("/:id/invite-code", teamHandler.RotateInviteCode)
			teams.GET("/:id/members", teamHandler.GetTeamMembers)
			teams.POST("/:id/members", teamHandler.AddTeamMember)
			teams.PUT("/:id/members/:memberId", teamHandler.UpdateTeamMemberRole)
			teams.DELETE("/:id/members/:memberId", teamHandler.RemoveTeamMember)
			teams.POST("/:id/links", teamHandler.AddLink)       // Add a link to a team
			teams.DELETE("/:id/links", teamHandler.RemoveLink)  // Remove a link from a team
			teams.PUT("/:id/links", teamHandler.UpdateLinks)    // Update all links for a team
			teams.GET("/:id/players", playerHandler.GetPlayersByTeam)
			teams.GET("/:id/matches", matchHandler.GetMatchesByTeam)
			teams.GET("/:id/schedules", scheduleHandler.GetSchedulesByTeam)
			teams.GET("/:id/schedules/upcoming", scheduleHandler.GetUpcomingByTeam)
			teams.GET("/:id/goals", goalHandler.GetGoalsByTeam)
			teams.GET("/:id/conditions", conditionHandler.GetTeamConditions)
			teams.GET("/:id/objectives", objectiveHandler.GetTeamObjectives)
		}

		// Player routes
		players := v1.Group("/players")
		{
			players.POST("", playerHandler.CreatePlayer)
			players.GET("/:id", playerHandler.GetPlayer)
			players.PUT("/:id", playerHandler.UpdatePlayer)
			players.DELETE("/:id", playerHandler.DeletePlayer)
			players.GET("/:id/stats", statsHandler.GetPlayerStats)
			players.GET("/:id/stats/maps", statsHandler.GetPlayerMapStats)
			players.GET("/:id/stats/agents", statsHandler.GetPlayerAgentStats)
			players.GET("/:id/stats/timings", statsHandler.GetPlayerTimingStats)
			players.GET("/:id/matches", statsHandler.GetPlayerMatches)
		}

		// Match routes
		matches := v1.Group("/matches")
		{
			matches.POST("", matchHandler.CreateMatch)
			matches.POST("/import", matchHandler.ImportMatch)
			matches.GET("/:id", matchHandler.GetMatch)
			matches.PUT("/:id", matchHandler.UpdateMatch)
			matches.DELETE("/:id", matchHandler.DeleteMatch)
			matches.GET("/:id/players", matchHandler.GetMatchPlayers)
			matches.GET("/:id/stats", statsHandler.GetMatchStats)
			matches.POST("/:id/screenshot", matchHandler.UploadScreenshot)
			matches.POST("/:id/objectives", objectiveHandler.CreateMatchObjective)
			matches.GET("/:id/objectives", objectiveHandler.GetMatchObjectives)
		}

		// Scoreboard OCR routes
		ocr := v1.Group("/ocr")
		{
			ocr.POST("/scoreboard", ocrHandler.ParseScoreboard)
		}

		// Goal routes
		goals := v1.Group("/goals")
		{
			goals.POST("", goalHandler.CreateGoal)
			goals.GET("/:id", goalHandler.GetGoal)
			goals.PUT("/:id", goalHandler.UpdateGoal)
			goals.PUT("/:id/progress", goalHandler.UpdateGoalProgress)
			goals.DELETE("/:id", goalHandler.DeleteGoal)
		}

		// Schedule routes
		schedules := v1.Group("/schedules")
		{
			schedules.POST("", scheduleHandler.CreateSchedule)
			schedules.GET("/:id", scheduleHandler.GetSchedule)
			schedules.PUT("/:id", scheduleHandler.UpdateSchedule)
			schedules.DELETE("/:id", scheduleHandler.DeleteSchedule)
			schedules.GET("/:id/attendance", scheduleHandler.GetAttendance)
			schedules.PUT("/:id/attendance", scheduleHandler.UpsertAttendance)
			schedules.POST("/:id/objectives", objectiveHandler.CreateScheduleObjective)
			schedules.GET("/:id/objectives", objectiveHandler.GetScheduleObjectives)
		}

		// Feedback routes
		feedback := v1.Group("/feedback")
		{
			feedback.POST("", feedbackHandler.CreateFeedback)
			feedback.GET("", feedbackHandler.ListFeedback) // Requires team_id parameter
			feedback.GET("/:id", feedbackHandler.GetFeedback)
			feedback.PUT("/:id", feedbackHandler.UpdateFeedback)
			feedback.DELETE("/:id", feedbackHandler.DeleteFeedback)
		}

		// Condition routes
		conditions := v1.Group("/conditions")
		{
			conditions.PUT("/today", conditionHandler.UpsertToday)
			conditions.GET("/me", conditionHandler.GetMyConditions)
		}

		// Objective routes; creation goes through matches and schedules
		objectives := v1.Group("/objectives")
		{
			objectives.PUT("/:id", objectiveHandler.UpdateObjective)
			objectives.DELETE("/:id", objectiveHandler.DeleteObjective)
		}

		// Notification routes
		notifications := v1.Group("/notifications")
		{
			notifications.GET("", notificationHandler.ListNotifications)
			notifications.POST("/:id/read", notificationHandler.MarkRead)
			notifications.POST("/read-all", notificationHandler.MarkAllRead)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
