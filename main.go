package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"courseware/config"
	"courseware/cron"
	"courseware/database"
	coursesRepo "courseware/database/repository/courses"
	lessonplanRepo "courseware/database/repository/lessonplan"
	"courseware/handlers"
	"courseware/middleware"
	"courseware/routes"
	ai "courseware/services/intelligence"
	"courseware/services/timetable"
	"courseware/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitPlanCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	courseRepo := coursesRepo.NewMongoCourseRepo()
	planRepo := lessonplanRepo.NewMongoLessonPlanRepo()

	// services.
	planCache := ai.NewRedisPlanStore(
		utils.GetPlanCacheClient(),
		time.Duration(config.AppConfig.PlanCacheTTLMin)*time.Minute,
	)

	var validator ai.PlanValidator
	if config.AppConfig.ValidateWithGemini && config.AppConfig.GeminiAPIKey != "" {
		gemini := ai.NewGeminiClient(config.AppConfig.GeminiAPIKey)
		validator = ai.NewGeminiPlanValidator(gemini)
	}

	timetableSvc := &timetable.DefaultService{
		Repo:      planRepo,
		Cache:     planCache,
		Validator: validator,
	}

	// Async generation queue.
	queue := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisJobsDB,
	})
	defer queue.Close()
	cron.InitLessonPlanWorker(courseRepo, timetableSvc)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Timetable: handlers.NewTimetableHandler(timetableSvc, courseRepo, queue),
		Course:    handlers.NewCourseHandler(courseRepo, planRepo),
		Admin:     handlers.NewAdminHandler(planRepo, planCache),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetPlanCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
