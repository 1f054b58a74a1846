package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateUsersTable, downCreateUsersTable)
}

func upCreateUsersTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE users (
	  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	  clerk_user_id TEXT UNIQUE NOT NULL,
	  name TEXT NOT NULL DEFAULT '',
	  role TEXT NOT NULL DEFAULT 'student',
	  is_activated BOOLEAN NOT NULL DEFAULT FALSE,
	  created_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);

	CREATE INDEX idx_users_role ON users (role);
	`

	_, err := tx.ExecContext(ctx, query)

	if err != nil {
		return err
	}

	return nil
}

func downCreateUsersTable(ctx context.Context, tx *sql.Tx) error {
	query := `DROP TABLE IF EXISTS users;`
	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}
	return nil
}
