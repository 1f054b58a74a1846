package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateSalariesTable, downCreateSalariesTable)
}

func upCreateSalariesTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE salaries (
	  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	  description TEXT NOT NULL DEFAULT '',
	  type TEXT NOT NULL DEFAULT 'salary',
	  receiver_id UUID NOT NULL REFERENCES users (id) ON DELETE CASCADE,
	  value NUMERIC(12, 2) NOT NULL DEFAULT 0,
	  created_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);

	CREATE INDEX idx_salaries_receiver_id ON salaries (receiver_id);
	`

	_, err := tx.ExecContext(ctx, query)

	if err != nil {
		return err
	}

	return nil
}

func downCreateSalariesTable(ctx context.Context, tx *sql.Tx) error {
	query := `DROP TABLE IF EXISTS salaries;`
	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}
	return nil
}
