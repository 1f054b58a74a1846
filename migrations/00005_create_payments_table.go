package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreatePaymentsTable, downCreatePaymentsTable)
}

func upCreatePaymentsTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE payments (
	  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	  student_id UUID NOT NULL REFERENCES users (id) ON DELETE CASCADE,
	  course_id TEXT NOT NULL REFERENCES courses (course_id) ON DELETE CASCADE,
	  paycheck_key TEXT NOT NULL DEFAULT '',
	  amount NUMERIC(12, 2) NOT NULL DEFAULT 0,
	  status TEXT NOT NULL DEFAULT 'pending',
	  submitted_date TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
	  verification_date TIMESTAMP WITH TIME ZONE,
	  verified_by TEXT,
	  rejection_reason TEXT
	);

	CREATE INDEX idx_payments_status ON payments (status);
	CREATE INDEX idx_payments_student_course ON payments (student_id, course_id);
	`

	_, err := tx.ExecContext(ctx, query)

	if err != nil {
		return err
	}

	return nil
}

func downCreatePaymentsTable(ctx context.Context, tx *sql.Tx) error {
	query := `DROP TABLE IF EXISTS payments;`
	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}
	return nil
}
