package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	"pet-adoption-api/internal/adapters/storage/postgres"
	"pet-adoption-api/internal/config"
	"pet-adoption-api/internal/media"
	"pet-adoption-api/internal/platform/logger"
	"pet-adoption-api/internal/router"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		logger.New(os.Stderr, logger.Options{}).Error("load config", map[string]any{"err": err.Error()})
		os.Exit(1)
	}

	log := logger.New(os.Stdout, logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
	})

	store, err := media.NewStore(cfg.ImageDir, cfg.DefaultImage)
	if err != nil {
		log.Error("init media store", map[string]any{"err": err.Error()})
		os.Exit(1)
	}

	var db *sql.DB
	if cfg.DBDSN != "" {
		db, err = postgres.Open(cfg.DBDSN)
		if err != nil {
			log.Error("open database", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			cancel()
			log.Error("ensure schema", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		cancel()
	} else {
		log.Warn("no db_dsn configured, using in-memory store", nil)
	}

	r := router.NewRouter(router.Options{Media: store, DB: db, Log: log})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": cfg.Addr, "images": cfg.ImageDir})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
}
