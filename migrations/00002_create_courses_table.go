package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateCoursesTable, downCreateCoursesTable)
}

func upCreateCoursesTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE courses (
	  course_id TEXT PRIMARY KEY,
	  name TEXT NOT NULL,
	  description TEXT NOT NULL DEFAULT '',
	  price NUMERIC(12, 2) NOT NULL DEFAULT 0,
	  compare_at_price NUMERIC(12, 2) NOT NULL DEFAULT 0,
	  rating DOUBLE PRECISION NOT NULL DEFAULT 0,
	  total_vote INTEGER NOT NULL DEFAULT 0,
	  target JSONB NOT NULL DEFAULT '[]',
	  summary JSONB NOT NULL DEFAULT '[]',
	  student_list JSONB NOT NULL DEFAULT '[]',
	  student_limit INTEGER NOT NULL DEFAULT 0,
	  applied_number INTEGER NOT NULL DEFAULT 0,
	  current_student INTEGER NOT NULL DEFAULT 0,
	  cover_img TEXT NOT NULL DEFAULT '',
	  start_date TEXT NOT NULL DEFAULT '',
	  end_date TEXT NOT NULL DEFAULT '',
	  created_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);

	CREATE TABLE course_teachers (
	  course_id TEXT NOT NULL REFERENCES courses (course_id) ON DELETE CASCADE,
	  name TEXT NOT NULL,
	  intro TEXT NOT NULL DEFAULT '',
	  position INTEGER NOT NULL DEFAULT 0,
	  PRIMARY KEY (course_id, position)
	);
	`

	_, err := tx.ExecContext(ctx, query)

	if err != nil {
		return err
	}

	return nil
}

func downCreateCoursesTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	DROP TABLE IF EXISTS course_teachers;
	DROP TABLE IF EXISTS courses;
	`
	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}
	return nil
}
