package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	birthdayHTTP "birthday-calendar-sync/internal/birthday/delivery/http"
	"birthday-calendar-sync/internal/middleware"
	"birthday-calendar-sync/internal/model"
)

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	if srv.environment != string(model.EnvironmentProduction) {
		srv.gin.Use(gin.Logger())
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.gatherer != nil {
		srv.gin.GET("/metrics", gin.WrapH(promhttp.HandlerFor(srv.gatherer, promhttp.HandlerOpts{})))
	}
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")
	mw := middleware.New(srv.l, srv.apiKey)

	if srv.birthdayHandler != nil {
		birthdayHTTP.RegisterRoutes(api, srv.birthdayHandler, mw)
		srv.l.Infof(ctx, "Birthday routes registered under /api/v1 (auth enabled: %v)", srv.apiKey != "")
	} else {
		srv.l.Infof(ctx, "Birthday handler not configured, skipping domain routes")
	}
}
