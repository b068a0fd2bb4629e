package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meetbook/core/cache"
	"meetbook/core/config"
	"meetbook/core/database"
	"meetbook/core/logger"
	"meetbook/core/storage"
	authModule "meetbook/modules/auth"
	availabilityModule "meetbook/modules/availability"
	bookingModule "meetbook/modules/booking"
	calendarModule "meetbook/modules/calendar"
	eventModule "meetbook/modules/event"
	notificationModule "meetbook/modules/notification"
	userModule "meetbook/modules/user"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// Run wires the whole application and blocks until shutdown. The process
// entry point owns every shared handle (database, cache, queue, storage);
// modules receive them by injection.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Init(cfg.LogLevel)

	db, err := database.InitDB(database.DatabaseConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		return err
	}

	redisCache, err := cache.NewRedisCache(cache.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return fmt.Errorf("init redis: %w", err)
	}
	defer redisCache.Close()

	var uploader storage.Uploader
	if cfg.Storage.Bucket != "" {
		uploader, err = storage.NewS3Uploader(cfg.Storage)
		if err != nil {
			return fmt.Errorf("init storage: %w", err)
		}
	} else {
		logger.Warn("Photo storage disabled: STORAGE_BUCKET is not set")
	}

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	queueClient := asynq.NewClient(redisOpt)
	defer queueClient.Close()

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestID())

	authModule.Init(e, db)
	userModule.Init(e, db, uploader)
	availabilityModule.Init(e, db)
	bookingModule.Init(e, db, redisCache, notificationModule.NewEnqueuer(queueClient))
	calendarModule.Init(e, db, redisCache)
	eventModule.Init(e, db, redisCache)
	taskHandler := notificationModule.Init(e, db)

	// Background worker shares the process with the HTTP server.
	worker := asynq.NewServer(redisOpt, asynq.Config{Concurrency: 5})
	mux := asynq.NewServeMux()
	taskHandler.Register(mux)
	go func() {
		if err := worker.Run(mux); err != nil {
			logger.Error("Asynq worker stopped", "error", err)
		}
	}()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		logger.Info("HTTP server starting", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")
	worker.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(ctx)
}
