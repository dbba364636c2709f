package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"recipebox/internal/api"
	"recipebox/internal/config"
	"recipebox/internal/handler"
	"recipebox/internal/infrastructure/auth"
	"recipebox/internal/infrastructure/kafka"
	"recipebox/internal/infrastructure/redis"
	"recipebox/internal/infrastructure/session"
	"recipebox/internal/observability"
	core "recipebox/internal/repository/postgres"
	service "recipebox/internal/services"
)

func main() {
	cfg := config.Load()

	shutdownTracing := observability.Setup("recipebox")
	defer shutdownTracing(context.Background())

	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("Failed to connect to Postgres: %v", err)
	}
	defer db.Close()

	if err := core.Migrate(context.Background(), db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	redisClient, err := redis.NewClient(context.Background(), cfg.RedisAddr)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	userRepo := core.NewPostgresUserRepository(db)
	recipeRepo := core.NewPostgresRecipeRepository(db)
	sessions := session.NewRedisStore(redisClient, cfg.SessionTTL)
	hasher := auth.NewHasher()

	userProducer := kafka.NewProducer(cfg.KafkaBrokers, "users")
	recipeProducer := kafka.NewProducer(cfg.KafkaBrokers, "recipes")
	defer userProducer.Close()
	defer recipeProducer.Close()

	svc := service.NewRecipeBoxService(userRepo, recipeRepo, sessions, hasher, userProducer, recipeProducer)
	h := handler.NewHandler(svc)
	router := api.SetupRouter(h, sessions)

	server := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: router,
	}
	go func() {
		log.Printf("Starting server on %s", cfg.ServerAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped")
}
