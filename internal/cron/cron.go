package cron

import (
	"context"
	"time"

	"valo-platform-backend/internal/logger"

	"github.com/robfig/cron/v3"
)

// Scheduler is a cron-like job scheduler for background work such as the
// schedule reminder job.
type Scheduler struct {
	*cron.Cron
}

// cronLogger adapts the application logger to the cron logger interface.
type cronLogger struct {
	log *logger.Logger
}

// Info logs routine messages about cron's operation.
func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.WithField("component", "cron").Debug(append([]interface{}{msg}, keysAndValues...)...)
}

// Error logs an error condition.
func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.WithField("component", "cron").Error(append([]interface{}{msg, " err=", err}, keysAndValues...)...)
}

// NewScheduler returns a new Scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{
		Cron: cron.New(cron.WithLogger(cronLogger{log: logger.New()})),
	}
}

// AddFunc adds a job to the Scheduler.
func (s *Scheduler) AddFunc(spec string, fn func()) (int, error) {
	id, err := s.Cron.AddFunc(spec, fn)
	return int(id), err
}

// Start starts the Scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
}

// Shutdown stops the Scheduler and waits for running jobs to finish.
func (s *Scheduler) Shutdown() {
	ctx, cancel := context.WithTimeout(s.Cron.Stop(), 30*time.Second)
	defer cancel()
	<-ctx.Done()
}
