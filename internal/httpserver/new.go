package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	birthdayHTTP "birthday-calendar-sync/internal/birthday/delivery/http"
	"birthday-calendar-sync/pkg/log"
)

const defaultShutdownTimeout = 30 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	apiKey          string
	shutdownTimeout time.Duration

	// Metrics
	gatherer prometheus.Gatherer

	// Birthday domain
	birthdayHandler birthdayHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	APIKey          string // required on /api/v1 routes when set
	ShutdownTimeout time.Duration

	// Gatherer backs GET /metrics. Nil disables the route.
	Gatherer prometheus.Gatherer

	BirthdayHandler birthdayHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		apiKey:          cfg.APIKey,
		shutdownTimeout: cfg.ShutdownTimeout,
		gatherer:        cfg.Gatherer,
		birthdayHandler: cfg.BirthdayHandler,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}
