package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/student-portal/internal/config"
	"github.com/iliyamo/student-portal/internal/handler"
	"github.com/iliyamo/student-portal/internal/middleware"
	"github.com/iliyamo/student-portal/internal/queue"
	"github.com/iliyamo/student-portal/internal/repository"
	"github.com/iliyamo/student-portal/internal/router"
	"github.com/iliyamo/student-portal/internal/store"
)

func main() {
	// Load .env when present; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	st, err := store.Open(cfg.DBFile)
	if err != nil {
		log.Fatalf("open store %s: %v", cfg.DBFile, err)
	}

	users := repository.NewUserRepo(st)
	courses := repository.NewCourseRepo(st)
	enrollments := repository.NewEnrollmentRepo(st)
	payments := repository.NewPaymentRepo(st)

	h := router.Handlers{
		Auth:        handler.NewAuthHandler(cfg, users),
		Courses:     handler.NewCourseHandler(courses),
		Enrollments: handler.NewEnrollmentHandler(enrollments, courses),
		Payments:    handler.NewPaymentHandler(payments),
		Admin:       handler.NewAdminHandler(users, payments),
	}

	e := echo.New()
	e.Use(middleware.RateLimit(config.LoadRateLimitConfig(), config.NewRedisClient()))
	router.RegisterRoutes(e)
	router.RegisterPortal(e, h, cfg.JWTSecret)

	// Background consumer that records initiated payments; it reconnects
	// on its own and never takes the server down.
	go queue.StartPaymentConsumer()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, db=%s)", addr, cfg.Env, cfg.DBFile)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
