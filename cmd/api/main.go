package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/campusgrid/enrollment-api/internal/config"
	"github.com/campusgrid/enrollment-api/internal/database"
	"github.com/campusgrid/enrollment-api/internal/handler"
	"github.com/campusgrid/enrollment-api/internal/middleware"
	"github.com/campusgrid/enrollment-api/internal/models"
	"github.com/campusgrid/enrollment-api/internal/repository"
	"github.com/campusgrid/enrollment-api/internal/router"
	"github.com/campusgrid/enrollment-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Professor{}, &models.Subject{}, &models.Student{}, &models.Enrollment{}, &models.ActivityLog{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	studentRepo := repository.NewStudentRepository(db)
	professorRepo := repository.NewProfessorRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	activityRepo := repository.NewActivityLogRepository(db)

	activityService := service.NewActivityService(activityRepo, logger)
	studentService := service.NewStudentService(studentRepo, validate, activityService, logger)
	professorService := service.NewProfessorService(professorRepo, validate, activityService, logger)
	subjectService := service.NewSubjectService(subjectRepo, professorRepo, validate, activityService, logger)
	gradeService := service.NewGradeService(enrollmentRepo, validate, activityService, logger)
	dashboardService := service.NewDashboardService(studentRepo, professorRepo, subjectRepo, redisClient, cfg.StatsCacheTTL, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})

	var jwtMiddleware fiber.Handler
	if cfg.JWTSecret != "" {
		jwtMiddleware = middleware.JWTProtected(cfg.JWTSecret)
	}

	router.Register(app, cfg, router.Dependencies{
		StudentHandler:   handler.NewStudentHandler(studentService, logger),
		ProfessorHandler: handler.NewProfessorHandler(professorService, logger),
		SubjectHandler:   handler.NewSubjectHandler(subjectService, logger),
		GradeHandler:     handler.NewGradeHandler(gradeService, logger),
		ActivityHandler:  handler.NewActivityHandler(activityService, cfg.ActivityFeedLimit, logger),
		DashboardHandler: handler.NewDashboardHandler(dashboardService, logger),
		JWTMiddleware:    jwtMiddleware,
		WriteRateLimiter: middleware.RateLimit(cfg.WriteRateLimit, cfg.WriteRateWindow),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
