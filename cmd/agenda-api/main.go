package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/vitalsalud/agenda-api/api/swagger"
	"github.com/vitalsalud/agenda-api/internal/calendar"
	"github.com/vitalsalud/agenda-api/internal/handler"
	"github.com/vitalsalud/agenda-api/internal/middleware"
	"github.com/vitalsalud/agenda-api/internal/repository"
	"github.com/vitalsalud/agenda-api/internal/service"
	"github.com/vitalsalud/agenda-api/pkg/cache"
	"github.com/vitalsalud/agenda-api/pkg/config"
	"github.com/vitalsalud/agenda-api/pkg/database"
	"github.com/vitalsalud/agenda-api/pkg/logger"
	corsmiddleware "github.com/vitalsalud/agenda-api/pkg/middleware/cors"
	reqidmiddleware "github.com/vitalsalud/agenda-api/pkg/middleware/requestid"
)

// @title Agenda API
// @version 1.0.0
// @description Calendar and scheduling backend for medical practices
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, event cache disabled", "error", err)
		redisClient = nil
	}

	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if redisClient != nil {
		cacheRepo := repository.NewCacheRepository(redisClient, logr)
		defer cacheRepo.Close()
		cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Events.CacheTTL, logr)
	}

	eventRepo := repository.NewEventRepository(db)
	scheduleRepo := repository.NewStaffScheduleRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	branchRepo := repository.NewBranchRepository(db)

	generatorSvc := service.NewGeneratorService(scheduleRepo, eventRepo, cacheSvc, service.GeneratorConfig{
		Workers:    cfg.Generator.Workers,
		MaxRetries: cfg.Generator.MaxRetries,
		RetryDelay: cfg.Generator.RetryDelay,
		Horizon:    cfg.Generator.Horizon,
	}, logr)

	eventSvc := service.NewEventService(eventRepo, cacheSvc, generatorSvc, cfg.Events.CacheTTL, nil, logr)
	scheduleSvc := service.NewStaffScheduleService(scheduleRepo, cacheSvc, nil, logr)
	staffSvc := service.NewStaffService(staffRepo)
	branchSvc := service.NewBranchService(branchRepo)

	resolver := calendar.NewResolver(calendar.ShiftCalendarPolicy())
	calendarSvc := service.NewCalendarService(resolver, eventSvc, cfg.Calendar.PixelsPerHour, cfg.Calendar.MaxEventsPerCell, logr)

	eventHandler := handler.NewEventHandler(eventSvc)
	scheduleHandler := handler.NewStaffScheduleHandler(scheduleSvc)
	calendarHandler := handler.NewCalendarHandler(calendarSvc)
	staffHandler := handler.NewStaffHandler(staffSvc)
	branchHandler := handler.NewBranchHandler(branchSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	generatorSvc.Start(ctx)
	defer generatorSvc.Stop()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/calendar", calendarHandler.View)

		api.GET("/events/filter", eventHandler.List)
		api.POST("/events", eventHandler.Create)
		api.GET("/events/:id", eventHandler.Get)
		api.PATCH("/events/:id", eventHandler.Update)
		api.DELETE("/events/remove/all", eventHandler.BulkDeactivate)
		api.PATCH("/events/reactivate/all", eventHandler.BulkReactivate)
		api.POST("/events/:id/generate-events", eventHandler.Generate)
		api.DELETE("/events/by-schedule/:scheduleId", eventHandler.DeleteBySchedule)

		api.GET("/staff-schedules", scheduleHandler.List)
		api.POST("/staff-schedules", scheduleHandler.Create)
		api.GET("/staff-schedules/:id", scheduleHandler.Get)
		api.PUT("/staff-schedules/:id", scheduleHandler.Update)
		api.DELETE("/staff-schedules/:id", scheduleHandler.Deactivate)
		api.PATCH("/staff-schedules/:id/reactivate", scheduleHandler.Reactivate)

		api.GET("/staff", staffHandler.List)
		api.GET("/staff/:id", staffHandler.Get)

		api.GET("/branches", branchHandler.List)
		api.GET("/branches/:id", branchHandler.Get)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
