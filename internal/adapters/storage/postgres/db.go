package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"pet-adoption-api/internal/domain/adoptions"
)

var ErrNotFound = adoptions.ErrNotFound

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// EnsureSchema crea la tabla si no existe. Las columnas location,
// description y owner no las escribe código nuevo: existen porque data
// migrada del sistema anterior las trae y los reads las devuelven.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS adoption_requests (
			id            text PRIMARY KEY,
			name          text,
			type          text,
			age           text,
			area          text,
			location      text,
			justification text,
			description   text,
			email         text,
			phone         text,
			owner         jsonb,
			filename      text,
			status        text,
			updated_at    timestamptz NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS adoption_requests_status_updated_at
			ON adoption_requests (status, updated_at DESC);
	`)
	return err
}
