package main

import (
	"context"
	"database/sql"
	"errors"

	"pet-adoption-api/internal/adapters/storage/postgres"
	"pet-adoption-api/internal/config"
	"pet-adoption-api/internal/domain/adoptions"
	"pet-adoption-api/internal/media"
	"pet-adoption-api/internal/platform/logger"
)

type commandContext struct {
	configPath *string
}

// adminEnv agrupa lo que los comandos necesitan: el repo directo (para
// tocar la forma guardada) y el service (mismo contrato CRUD que la API).
type adminEnv struct {
	cfg   config.Config
	db    *sql.DB
	repo  *postgres.AdoptionsRepo
	svc   *adoptions.Service
	store *media.Store
}

func (c *commandContext) open(ctx context.Context) (*adminEnv, error) {
	cfg, err := config.Load(*c.configPath)
	if err != nil {
		return nil, err
	}
	if cfg.DBDSN == "" {
		return nil, errors.New("db_dsn is required (set it in the config file or DB_DSN)")
	}

	store, err := media.NewStore(cfg.ImageDir, cfg.DefaultImage)
	if err != nil {
		return nil, err
	}

	db, err := postgres.Open(cfg.DBDSN)
	if err != nil {
		return nil, err
	}
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	repo := postgres.NewAdoptionsRepo(db)
	return &adminEnv{
		cfg:   cfg,
		db:    db,
		repo:  repo,
		svc:   adoptions.NewService(repo, store, logger.Nop()),
		store: store,
	}, nil
}

func (e *adminEnv) close() {
	_ = e.db.Close()
}
