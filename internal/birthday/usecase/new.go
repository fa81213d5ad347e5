package usecase

import (
	"sync"
	"time"

	"birthday-calendar-sync/internal/birthday"
	"birthday-calendar-sync/internal/birthday/metrics"
	"birthday-calendar-sync/internal/birthday/repository"
	"birthday-calendar-sync/internal/model"
	pkgLog "birthday-calendar-sync/pkg/log"
)

const defaultParallelism = 4

// Config carries the sync settings threaded through every pass.
type Config struct {
	Calendars   []model.CalendarTarget
	RosterPath  string
	Parallelism int
	Verify      bool
	Prune       bool
	Location    *time.Location   // defines "today", defaults to UTC
	Now         func() time.Time // defaults to time.Now
}

type implUseCase struct {
	l        pkgLog.Logger
	calendar CalendarClient
	roster   repository.RosterRepository
	metrics  *metrics.Metrics
	cfg      Config

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates a new birthday UseCase instance.
func New(
	l pkgLog.Logger,
	calendar CalendarClient,
	roster repository.RosterRepository,
	m *metrics.Metrics,
	cfg Config,
) birthday.UseCase {
	if cfg.Parallelism <= 0 {
		cfg.Parallelism = defaultParallelism
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	for i := range cfg.Calendars {
		if cfg.Calendars[i].LookAhead <= 0 {
			cfg.Calendars[i].LookAhead = birthday.DefaultLookAhead
		}
	}

	return &implUseCase{
		l:        l,
		calendar: calendar,
		roster:   roster,
		metrics:  m,
		cfg:      cfg,
		locks:    make(map[string]*sync.Mutex),
	}
}
