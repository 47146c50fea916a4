package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/krismos64/SmartPlanning-sub005/api/swagger"
	"github.com/krismos64/SmartPlanning-sub005/internal/handler"
	"github.com/krismos64/SmartPlanning-sub005/internal/middleware"
	"github.com/krismos64/SmartPlanning-sub005/internal/models"
	"github.com/krismos64/SmartPlanning-sub005/internal/planning"
	"github.com/krismos64/SmartPlanning-sub005/internal/repository"
	"github.com/krismos64/SmartPlanning-sub005/internal/service"
	"github.com/krismos64/SmartPlanning-sub005/pkg/cache"
	"github.com/krismos64/SmartPlanning-sub005/pkg/config"
	"github.com/krismos64/SmartPlanning-sub005/pkg/database"
	"github.com/krismos64/SmartPlanning-sub005/pkg/jobs"
	"github.com/krismos64/SmartPlanning-sub005/pkg/logger"
	corsmiddleware "github.com/krismos64/SmartPlanning-sub005/pkg/middleware/cors"
	reqidmiddleware "github.com/krismos64/SmartPlanning-sub005/pkg/middleware/requestid"
)

// @title SmartPlanning API
// @version 0.1.0
// @description Weekly schedule generation for staffing platforms
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

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to redis", "error", err)
	}

	userRepo := repository.NewUserRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	leaveRepo := repository.NewLeaveRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	defer cacheRepo.Close()

	validate := validator.New()
	metricsSvc := service.NewMetricsService(logr)
	engine := planning.NewEngine(metricsSvc, logr, planning.EngineConfig{SlowThreshold: cfg.Planning.SlowThreshold})

	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		AccessTokenSecret: cfg.JWT.Secret,
		AccessTokenExpiry: cfg.JWT.Expiration,
		Issuer:            "smartplanning",
	})
	planningSvc := service.NewPlanningService(engine, scheduleRepo, employeeRepo, leaveRepo, companyRepo, cacheRepo, metricsSvc, validate, logr, service.PlanningServiceConfig{
		CandidateMode: cfg.Planning.CandidateMode,
		CacheTTL:      cfg.Planning.CacheTTL,
	})
	employeeSvc := service.NewEmployeeService(employeeRepo, validate, logr)
	leaveSvc := service.NewLeaveService(leaveRepo, cacheRepo, validate, logr)

	worker := service.NewGenerationWorker(planningSvc, logr)
	queue := jobs.NewQueue("planning", worker.Handle, jobs.QueueConfig{
		Workers: cfg.Planning.Workers,
		OnDepth: metricsSvc.RecordQueueDepth,
		Logger:  logr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	queue.Start(ctx)
	defer queue.Stop()

	exportTitle := fmt.Sprintf("%s weekly planning", cfg.Exports.CompanyName)
	authHandler := handler.NewAuthHandler(authSvc)
	planningHandler := handler.NewPlanningHandler(planningSvc, queue, exportTitle, cfg.Exports.Footer)
	employeeHandler := handler.NewEmployeeHandler(employeeSvc)
	leaveHandler := handler.NewLeaveHandler(leaveSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "reason": "database unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.JWT(authSvc))
	protected.GET("/auth/me", authHandler.Me)
	protected.GET("/leaves", leaveHandler.List)
	protected.POST("/leaves", leaveHandler.Create)

	manage := protected.Group("")
	manage.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleDirector, models.RoleManager))
	manage.POST("/planning/generate", planningHandler.Generate)
	manage.POST("/companies/:id/planning/generate", planningHandler.GenerateForCompany)
	manage.POST("/planning/schedules/:id/publish", planningHandler.Publish)
	manage.GET("/planning/export", planningHandler.Export)
	manage.GET("/employees", employeeHandler.List)
	manage.POST("/employees", employeeHandler.Create)
	manage.GET("/employees/:id", employeeHandler.Get)
	manage.PUT("/employees/:id", employeeHandler.Update)
	manage.DELETE("/employees/:id", employeeHandler.Deactivate)
	manage.POST("/leaves/:id/decision", leaveHandler.Decide)

	addr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{Addr: addr, Handler: r}

	go func() {
		logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Sugar().Infow("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Errorw("graceful shutdown failed", "error", err)
	}
}
