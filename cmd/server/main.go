package main

import (
	"log"
	"net/http"
	"time"

	_ "campusevents/docs" // swagger docs

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"campusevents/internal/auth"
	"campusevents/internal/cache"
	"campusevents/internal/config"
	"campusevents/internal/db"
	"campusevents/internal/handler"
	"campusevents/internal/middleware"
	"campusevents/internal/model"
	"campusevents/internal/repository"
	"campusevents/internal/router"
	"campusevents/internal/service"
)

// @title Campus Events API
// @version 1.0
// @description Campus event management with student registrations, event requests, and admin review.
// @host localhost:8080
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(echomw.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Admin{},
		&model.Event{},
		&model.EventRequest{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	adminRepo := repository.NewAdminRepository(gormDB)
	eventRepo := repository.NewEventRepository(gormDB)
	requestRepo := repository.NewRequestRepository(gormDB)

	// Initialize session service
	sessions := auth.NewSessionService(cfg.SessionSecret, time.Duration(cfg.SessionTTLHours)*time.Hour)

	// Initialize services
	authService := service.NewAuthService(userRepo, adminRepo, sessions)
	eventService := service.NewEventService(eventRepo, cacheClient)
	requestService := service.NewRequestService(requestRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, sessions)
	eventHandler := handler.NewEventHandler(eventService)
	requestHandler := handler.NewRequestHandler(requestService)
	dashboardHandler := handler.NewDashboardHandler(eventService, requestService)

	// Register routes
	router.Register(
		e,
		middleware.LoadIdentity(sessions, userRepo, adminRepo),
		authHandler,
		eventHandler,
		requestHandler,
		dashboardHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
