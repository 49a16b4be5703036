package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/efriedrich/movie-api/internal/auth"
	"github.com/efriedrich/movie-api/internal/config"
	"github.com/efriedrich/movie-api/internal/database"
	"github.com/efriedrich/movie-api/internal/handler"
	"github.com/efriedrich/movie-api/internal/queue"
	"github.com/efriedrich/movie-api/internal/repository"
	"github.com/efriedrich/movie-api/internal/router"
)

func main() {
	// .env is a development convenience; in production the variables come
	// from the real environment.
	_ = godotenv.Load()
	cfg := config.Load()

	client, err := database.Open(cfg.MongoURI)
	if err != nil {
		log.Fatalf("mongodb: %v", err)
	}
	defer func() {
		if err := database.Close(client); err != nil {
			log.Printf("mongodb: disconnect: %v", err)
		}
	}()
	db := client.Database(cfg.MongoDB)

	users := repository.NewUserRepo(db)
	movies := repository.NewMovieRepo(db)

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; cache and rate limiting disabled")
	}

	go queue.StartAccountConsumer()

	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	router.Register(e, cfg, users,
		handler.NewAuthHandler(cfg, auth.NewVerifier(users)),
		handler.NewUserHandler(cfg, users),
		handler.NewMovieHandler(movies),
		rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
