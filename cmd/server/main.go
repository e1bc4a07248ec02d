package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	"github.com/taskhive/todo-service/internal/config"
	"github.com/taskhive/todo-service/internal/handler"
	"github.com/taskhive/todo-service/internal/middleware"
	redisclient "github.com/taskhive/todo-service/internal/redis"
	"github.com/taskhive/todo-service/internal/repository"
	"github.com/taskhive/todo-service/internal/service"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	redis, err := redisclient.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redis.Close()

	// --- wiring ---
	userRepo := repository.NewUserRepository(db)
	userReadRepo := repository.NewUserReadRepository(userRepo, redis.Client)
	todoRepo := repository.NewTodoRepository(db)

	userSvc := service.NewUserService(userRepo, userReadRepo, todoRepo)
	todoSvc := service.NewTodoService(todoRepo, userSvc)

	if cfg.Seed.Enabled {
		if err := service.Seed(context.Background(), userSvc, todoSvc); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	api := router.Group("/api")
	handler.NewUserHandler(userSvc).RegisterRoutes(api.Group("/users"))
	handler.NewTodoHandler(todoSvc).RegisterRoutes(api.Group("/todos"))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	log.Printf("Todo service starting on port %s", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
