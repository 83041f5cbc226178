package pg

import (
	"context"
)

// Схема. Политика удаления владельца выбрана явно: вычисления остаются
// с owner_id = NULL (ON DELETE SET NULL), каскада нет.
const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
	id            UUID PRIMARY KEY,
	first_name    VARCHAR(100) NOT NULL,
	last_name     VARCHAR(100) NOT NULL,
	email         VARCHAR(255) NOT NULL UNIQUE,
	username      VARCHAR(50)  NOT NULL UNIQUE,
	password_hash TEXT         NOT NULL,
	is_active     BOOLEAN      NOT NULL DEFAULT TRUE,
	is_verified   BOOLEAN      NOT NULL DEFAULT FALSE,
	last_login    TIMESTAMPTZ,
	created_at    TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ  NOT NULL DEFAULT NOW()
);
`

const createCalculationsTable = `
CREATE TABLE IF NOT EXISTS calculations (
	id         UUID PRIMARY KEY,
	kind       VARCHAR(50) NOT NULL,
	owner_id   UUID REFERENCES users(id) ON DELETE SET NULL,
	inputs     DOUBLE PRECISION[] NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_calculations_owner ON calculations (owner_id, created_at);
`

// Migrate создаёт таблицы users и calculations, если их ещё нет.
func Migrate(ctx context.Context, db *DB) error {
	if _, err := db.ExecContext(ctx, createUsersTable); err != nil {
		return err
	}
	_, err := db.ExecContext(ctx, createCalculationsTable)
	return err
}
