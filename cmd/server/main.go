package main // Entry point package

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/course-catalog/internal/config"
	"github.com/iliyamo/course-catalog/internal/database"
	"github.com/iliyamo/course-catalog/internal/handler"
	"github.com/iliyamo/course-catalog/internal/queue"
	"github.com/iliyamo/course-catalog/internal/repository"
	"github.com/iliyamo/course-catalog/internal/router"
)

func main() {
	// .env is a convenience for local development; in deployed environments
	// the variables are expected to be set for real.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}

	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	if err := database.EnsureSchema(context.Background(), db); err != nil {
		log.Fatalf("schema setup failed: %v", err)
	}

	rdb := config.NewRedisClient() // nil when Redis is unreachable; features degrade
	if rdb == nil {
		log.Println("redis unavailable: response cache and rate limiting disabled")
	}

	users := repository.NewUserRepo(db)
	courses := repository.NewCourseRepo(db)

	authHandler := handler.NewAuthHandler(cfg, users)
	courseHandler := handler.NewCourseHandler(courses)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler, rdb)
	router.RegisterCourses(e, courseHandler, cfg.JWTSecret, rdb)

	// The audit consumer reconnects forever on its own; it must not block
	// or crash the HTTP server.
	go func() {
		if err := queue.StartCatalogConsumer(); err != nil {
			log.Printf("catalog consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
