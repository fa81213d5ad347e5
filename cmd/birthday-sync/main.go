package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"birthday-calendar-sync/config"
	"birthday-calendar-sync/internal/birthday"
	birthdayHTTP "birthday-calendar-sync/internal/birthday/delivery/http"
	"birthday-calendar-sync/internal/birthday/delivery/job"
	"birthday-calendar-sync/internal/birthday/metrics"
	rosterFile "birthday-calendar-sync/internal/birthday/repository/file"
	"birthday-calendar-sync/internal/birthday/usecase"
	"birthday-calendar-sync/internal/httpserver"
	"birthday-calendar-sync/internal/model"
	"birthday-calendar-sync/pkg/gcalendar"
	"birthday-calendar-sync/pkg/log"
)

const (
	modeOnce  = "once"
	modeServe = "serve"
)

func main() {
	os.Exit(run())
}

func run() int {
	mode := flag.String("mode", modeOnce, "once: one sync pass then exit; serve: scheduled sync plus HTTP API")
	configPath := flag.String("config", "", "config file (default: config.yaml in ./config, ., /etc/birthday-sync/)")
	listCalendars := flag.Bool("list-calendars", false, "print the calendars visible to the account and exit")
	dryRun := flag.Bool("dry-run", false, "compute operations without applying them (once mode)")
	flag.Parse()

	// 1. Configuration
	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return 1
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infof(ctx, "Starting birthday calendar sync (%s)...", *mode)
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Google Calendar client
	tokenStore, err := gcalendar.NewTokenStore(cfg.GoogleCalendar.TokenStore, cfg.GoogleCalendar.TokenPath)
	if err != nil {
		logger.Errorf(ctx, "Invalid token store: %v", err)
		return 1
	}
	calendarClient, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath,
		gcalendar.WithTokenStore(tokenStore),
		gcalendar.WithRateLimit(cfg.GoogleCalendar.RequestsPerSecond),
	)
	if err != nil {
		logger.Errorf(ctx, "Google Calendar not available: %v", err)
		logger.Warn(ctx, "→ Run `go run ./scripts/gcal-auth` to generate an OAuth token")
		return 1
	}

	// 4. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	syncMetrics := metrics.New(registry)

	// 5. Birthday UseCase
	uc := usecase.New(logger, calendarClient, rosterFile.New(logger), syncMetrics, usecase.Config{
		Calendars:   calendarTargets(cfg.Calendars),
		RosterPath:  cfg.Roster.Path,
		Parallelism: cfg.Sync.Parallelism,
		Verify:      cfg.Sync.Verify,
		Prune:       cfg.Sync.Prune,
		Location:    cfg.Sync.Location,
	})

	if *listCalendars {
		return printCalendars(ctx, logger, uc)
	}

	switch *mode {
	case modeOnce:
		return runOnce(ctx, logger, uc, *dryRun)
	case modeServe:
		return serve(ctx, logger, cfg, uc, registry)
	default:
		logger.Errorf(ctx, "Unknown mode %q, expected %s or %s", *mode, modeOnce, modeServe)
		return 2
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

func calendarTargets(cals []config.CalendarConfig) []model.CalendarTarget {
	targets := make([]model.CalendarTarget, len(cals))
	for i, c := range cals {
		targets[i] = model.CalendarTarget{
			NameOrID:   c.Name,
			LookAhead:  c.LookAhead,
			RosterPath: c.Roster,
		}
	}
	return targets
}

// runOnce runs a single pass and reports failure through the exit code.
func runOnce(ctx context.Context, logger log.Logger, uc birthday.UseCase, dryRun bool) int {
	out, err := uc.Sync(ctx, birthday.SyncInput{DryRun: dryRun})
	if err != nil {
		logger.Errorf(ctx, "Sync failed: %v", err)
		return 1
	}

	for _, res := range out.Results {
		if res.Err != nil {
			fmt.Printf("%-30s error: %v\n", res.Calendar, res.Err)
			continue
		}
		creates, deletes := birthday.CountOps(res.Operations)
		if dryRun {
			fmt.Printf("%-30s would create %d, would delete %d\n", res.Calendar, creates, deletes)
			continue
		}
		fmt.Printf("%-30s created %d, deleted %d, failed %d\n", res.Calendar, res.Created, res.Deleted+res.AlreadyGone, res.Failed+res.Skipped)
	}

	if out.Failed() {
		return 1
	}
	return 0
}

func printCalendars(ctx context.Context, logger log.Logger, uc birthday.UseCase) int {
	cals, err := uc.ListCalendars(ctx)
	if err != nil {
		logger.Errorf(ctx, "Failed to list calendars: %v", err)
		return 1
	}
	for _, c := range cals {
		marker := " "
		if c.Primary {
			marker = "*"
		}
		fmt.Printf("%s %-40s %s\n", marker, c.Summary, c.ID)
	}
	return 0
}

// serve runs the scheduler and the HTTP API until a shutdown signal arrives.
func serve(ctx context.Context, logger log.Logger, cfg *config.Config, uc birthday.UseCase, registry *prometheus.Registry) int {
	scheduler, err := job.New(logger, uc, job.Config{
		Schedule:   cfg.Sync.Schedule,
		RunOnStart: cfg.Sync.RunOnStart,
		Location:   cfg.Sync.Location,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize scheduler: %v", err)
		return 1
	}

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		APIKey:          cfg.HTTPServer.APIKey,
		Gatherer:        registry,
		BirthdayHandler: birthdayHTTP.New(logger, uc),
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return scheduler.Run(gctx) })
	g.Go(func() error { return httpServer.Run(gctx) })

	if err := g.Wait(); err != nil {
		logger.Errorf(ctx, "Server stopped with error: %v", err)
		return 1
	}

	logger.Info(ctx, "Server stopped gracefully")
	return 0
}
