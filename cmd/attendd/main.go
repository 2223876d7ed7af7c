package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/heatseek/attendance-system/internal/api"
	"github.com/heatseek/attendance-system/internal/core/ports"
	"github.com/heatseek/attendance-system/internal/core/service"
	"github.com/heatseek/attendance-system/internal/infrastructure/cache"
	"github.com/heatseek/attendance-system/internal/infrastructure/remote"
	"github.com/heatseek/attendance-system/internal/infrastructure/store"
	"github.com/heatseek/attendance-system/internal/pkg/config"
	"github.com/heatseek/attendance-system/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.Init(logger.Options{})
		bootLog.Fatal().Err(err).Msg("loading configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	db, err := store.Open(cfg.Store.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Store.Path).Msg("opening session store")
	}
	sessionStorage, err := store.NewSessionStorage(db)
	if err != nil {
		log.Fatal().Err(err).Msg("preparing session storage")
	}

	// Redis is optional; without it the directory hits the remote every time.
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = cache.Connect(ctx, cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("connecting to redis")
		}
		defer rdb.Close()
	}

	remoteClient := remote.NewClient(cfg.Remote.BaseURL, time.Duration(cfg.Remote.TimeoutSeconds)*time.Second, log)

	sessions := service.NewSessionStore(remoteClient, sessionStorage, log)
	if err := sessions.Restore(ctx); err != nil {
		log.Warn().Err(err).Msg("restoring persisted session")
	}

	services := api.Services{
		Sessions:   sessions,
		Attendance: service.NewAttendanceEngine(sessions, remoteClient, log),
		Leave:      service.NewLeaveLifecycle(sessions, remoteClient, log),
		Directory:  service.NewEmployeeDirectory(sessions, remoteClient, directoryCache(rdb), log),
	}

	e := api.NewRouter(services, db, rdb, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting attendance facade")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("attendance facade stopped")
}

// directoryCache wraps the optional Redis client. Returning the interface
// type keeps a disabled cache an untyped nil, which the directory service
// checks for.
func directoryCache(rdb *redis.Client) ports.DirectoryCache {
	if rdb == nil {
		return nil
	}
	return cache.NewDirectoryCache(rdb)
}
