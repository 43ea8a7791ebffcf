package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"valo-platform-backend/internal/api/routes"
	"valo-platform-backend/internal/config"
	"valo-platform-backend/internal/cron"
	"valo-platform-backend/internal/database"
	"valo-platform-backend/internal/logger"
	"valo-platform-backend/internal/repository"
	"valo-platform-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	_ "valo-platform-backend/docs" // This is needed for swag
)

//	@title			Valo Platform Backend API
//	@version		1.0
//	@description	This is the backend API for the Valo Platform, providing endpoints for managing teams, players, matches, scrim schedules, goals and scoreboard OCR imports.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7010
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg)

	// Start the schedule reminder worker
	scheduler := startReminderWorker(db, cfg)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7010"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatal("Failed to start server:", err)
		}
	}()

	// Block until SIGINT/SIGTERM, then drain in-flight requests and cron jobs
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Error("Server forced to shutdown:", err)
	}
	scheduler.Shutdown()

	logrus.Info("Server exited")
}

// startReminderWorker wires the reminder service onto the cron scheduler and
// starts it. Reminders run on cfg.ReminderCronSpec (every minute by default).
func startReminderWorker(db *gorm.DB, cfg *config.Config) *cron.Scheduler {
	reminders := service.NewReminderService(
		repository.NewScheduleRepository(db),
		repository.NewAttendanceRepository(db),
		repository.NewTeamRepository(db),
		repository.NewNotificationRepository(db),
		service.NewDiscordNotifier(time.Duration(cfg.DiscordTimeoutSec)*time.Second),
	)

	log := logger.New()
	scheduler := cron.NewScheduler()
	if _, err := scheduler.AddFunc(cfg.ReminderCronSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := reminders.RunOnce(ctx); err != nil {
			log.WithField("error", err.Error()).Error("Schedule reminder run failed")
		}
	}); err != nil {
		logrus.Fatal("Failed to register reminder job:", err)
	}
	scheduler.Start()
	return scheduler
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
