package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}

// schema es idempotente; se aplica en orden al arrancar.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS pets (
		id              UUID PRIMARY KEY,
		name            TEXT NOT NULL,
		type            TEXT NOT NULL,
		breed           TEXT NOT NULL,
		age             TEXT NOT NULL,
		location        TEXT NOT NULL,
		bio             TEXT NOT NULL,
		image           TEXT NOT NULL,
		gender          TEXT NOT NULL DEFAULT 'Unknown' CHECK (gender IN ('Male','Female','Unknown')),
		size            TEXT NOT NULL DEFAULT 'Medium' CHECK (size IN ('Small','Medium','Large')),
		adoption_status TEXT NOT NULL DEFAULT 'Available' CHECK (adoption_status IN ('Available','Pending','Adopted')),
		created_at      TIMESTAMPTZ NOT NULL,
		updated_at      TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS pets_status_created_idx ON pets (adoption_status, created_at)`,
	`CREATE TABLE IF NOT EXISTS applications (
		id         UUID PRIMARY KEY,
		pet_id     TEXT NOT NULL DEFAULT '',
		pet_name   TEXT NOT NULL,
		name       TEXT NOT NULL,
		email      TEXT NOT NULL,
		phone      TEXT NOT NULL,
		message    TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		seq        BIGSERIAL
	)`,
	`ALTER TABLE applications ADD COLUMN IF NOT EXISTS seq BIGSERIAL`,
	`CREATE INDEX IF NOT EXISTS applications_created_idx ON applications (created_at DESC, seq DESC)`,
	`CREATE TABLE IF NOT EXISTS admin_users (
		id            UUID PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL
	)`,
}

// EnsureSchema crea tablas e índices si no existen.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema step %d: %w", i+1, err)
		}
	}
	return nil
}

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// likePattern escapa comodines de LIKE y arma %q%.
func likePattern(q string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.TrimSpace(q)) + "%"
}
