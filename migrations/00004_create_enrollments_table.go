package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateEnrollmentsTable, downCreateEnrollmentsTable)
}

func upCreateEnrollmentsTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE enrollments (
	  student_id UUID NOT NULL REFERENCES users (id) ON DELETE CASCADE,
	  course_id TEXT NOT NULL REFERENCES courses (course_id) ON DELETE CASCADE,
	  enroll_date TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
	  is_paid BOOLEAN NOT NULL DEFAULT FALSE,
	  scores JSONB NOT NULL DEFAULT '[]',
	  paycheck_key TEXT NOT NULL DEFAULT '',
	  PRIMARY KEY (student_id, course_id)
	);

	CREATE INDEX idx_enrollments_course_id ON enrollments (course_id);
	`

	_, err := tx.ExecContext(ctx, query)

	if err != nil {
		return err
	}

	return nil
}

func downCreateEnrollmentsTable(ctx context.Context, tx *sql.Tx) error {
	query := `DROP TABLE IF EXISTS enrollments;`
	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}
	return nil
}
