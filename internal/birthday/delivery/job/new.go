package job

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"birthday-calendar-sync/internal/birthday"
	"birthday-calendar-sync/pkg/log"
)

// DefaultSchedule runs the sync every day shortly after midnight.
const DefaultSchedule = "5 0 * * *"

// Config controls the scheduled sync.
type Config struct {
	Schedule   string // standard 5-field cron expression or descriptor such as "@hourly"
	RunOnStart bool
	Location   *time.Location
}

// Scheduler triggers periodic sync runs. Overlapping runs are skipped.
type Scheduler struct {
	l          log.Logger
	uc         birthday.UseCase
	cron       *cron.Cron
	job        cron.Job
	schedule   string
	runOnStart bool

	mu  sync.Mutex
	ctx context.Context
}

// New validates the schedule and builds a Scheduler.
func New(l log.Logger, uc birthday.UseCase, cfg Config) (*Scheduler, error) {
	if uc == nil {
		return nil, errors.New("use case is required")
	}
	if cfg.Schedule == "" {
		cfg.Schedule = DefaultSchedule
	}
	if _, err := cron.ParseStandard(cfg.Schedule); err != nil {
		return nil, fmt.Errorf("invalid sync schedule %q: %w", cfg.Schedule, err)
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}

	cl := cronLogger{l: l}
	s := &Scheduler{
		l:          l,
		uc:         uc,
		cron:       cron.New(cron.WithLocation(cfg.Location), cron.WithLogger(cl)),
		schedule:   cfg.Schedule,
		runOnStart: cfg.RunOnStart,
	}
	s.job = cron.NewChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)).Then(cron.FuncJob(s.runSync))
	return s, nil
}

// cronLogger adapts log.Logger to cron.Logger.
type cronLogger struct {
	l log.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.l.Debugf(context.Background(), "cron: %s %v", msg, keysAndValues)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.l.Errorf(context.Background(), "cron: %s: %v %v", msg, err, keysAndValues)
}
