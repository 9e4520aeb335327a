package main

import (
	"context"
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
	"go.uber.org/zap"

	_ "github.com/nadeen-odeh/dept-assistant-api/api/swagger"
	"github.com/nadeen-odeh/dept-assistant-api/internal/handler"
	"github.com/nadeen-odeh/dept-assistant-api/internal/llm"
	"github.com/nadeen-odeh/dept-assistant-api/internal/middleware"
	"github.com/nadeen-odeh/dept-assistant-api/internal/models"
	"github.com/nadeen-odeh/dept-assistant-api/internal/repository"
	"github.com/nadeen-odeh/dept-assistant-api/internal/service"
	"github.com/nadeen-odeh/dept-assistant-api/pkg/cache"
	"github.com/nadeen-odeh/dept-assistant-api/pkg/config"
	"github.com/nadeen-odeh/dept-assistant-api/pkg/database"
	"github.com/nadeen-odeh/dept-assistant-api/pkg/logger"
	corsmiddleware "github.com/nadeen-odeh/dept-assistant-api/pkg/middleware/cors"
	reqidmiddleware "github.com/nadeen-odeh/dept-assistant-api/pkg/middleware/requestid"
	"github.com/nadeen-odeh/dept-assistant-api/pkg/ttlcache"
)

// @title Department Assistant API
// @version 1.0.0
// @description Chatbot backend for the software engineering department
// @BasePath /api/v1
// @schemes http https

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
		logr.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer db.Close() //nolint:errcheck

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, response cache disabled", zap.Error(err))
		redisClient = nil
	}

	validate := validator.New()
	metricsSvc := service.NewMetricsService()

	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.DefaultTTL, logr, cfg.Cache.Enabled && redisClient != nil)

	classifier := llm.NewGeminiClassifier(cfg.Gemini, logr)

	courseRepo := repository.NewCourseRepository(db)
	yearbookRepo := repository.NewYearbookRepository(db)
	labRepo := repository.NewLabRepository(db)
	registrationRepo := repository.NewRegistrationRepository(db)
	advisorRepo := repository.NewAdvisorRepository(db)

	courseCache := ttlcache.New[[]models.Course]()
	courseSvc := service.NewCourseService(courseRepo, yearbookRepo, courseCache, cfg.Chat.CourseCacheTTL, cfg.Chat.SuggestLimit, validate, logr)
	labSvc := service.NewLabService(labRepo, classifier, cacheSvc, metricsSvc, logr)
	registrationSvc := service.NewRegistrationService(registrationRepo, classifier, metricsSvc, logr)
	advisorSvc := service.NewAdvisorService(advisorRepo, validate, logr)
	chatSvc := service.NewChatService(courseSvc, labSvc, registrationSvc, classifier, metricsSvc, logr)

	chatHandler := handler.NewChatHandler(chatSvc, courseSvc, cacheSvc, logr)
	courseHandler := handler.NewCourseHandler(courseSvc)
	labHandler := handler.NewLabHandler(labSvc)
	registrationHandler := handler.NewRegistrationHandler(registrationSvc)
	advisorHandler := handler.NewAdvisorHandler(advisorSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS))
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(middleware.WithResponseMeta())

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Health)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.POST("/ask", chatHandler.Ask)
		api.GET("/courses/suggest", chatHandler.Suggest)
		api.GET("/yearbooks", courseHandler.ListYearbooks)
		api.GET("/yearbooks/:yearbookId/courses/:semesterKey", courseHandler.ListBySemester)
		api.GET("/labs/years", labHandler.ListYears)
		api.GET("/labs/:yearId/:semester", labHandler.GetSemester)
		api.GET("/advisors/find", advisorHandler.Find)
	}

	admin := api.Group("/admin")
	{
		admin.PUT("/yearbooks/:yearbookId/courses/:semesterKey/:courseCode", courseHandler.Save)
		admin.DELETE("/yearbooks/:yearbookId/courses/:semesterKey/:courseCode", courseHandler.Delete)
		admin.PUT("/labs/:yearId/:semester", labHandler.Replace)
		admin.GET("/labs/:yearId/:semester/export", labHandler.Export)
		admin.GET("/registration-guidelines/:semester", registrationHandler.Get)
		admin.PUT("/registration-guidelines/:semester", registrationHandler.Save)
		admin.GET("/advisors", advisorHandler.List)
		admin.POST("/advisors/:advisorId", advisorHandler.Save)
		admin.DELETE("/advisors/:advisorId", advisorHandler.Delete)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logr.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logr.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logr.Error("shutdown failed", zap.Error(err))
	}

	if err := cacheRepo.Close(); err != nil {
		logr.Warn("failed to close redis", zap.Error(err))
	}
}
