package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateClassesTable, downCreateClassesTable)
}

func upCreateClassesTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE classes (
	  class_id TEXT PRIMARY KEY,
	  course_id TEXT NOT NULL REFERENCES courses (course_id) ON DELETE CASCADE,
	  schedule JSONB NOT NULL DEFAULT '[]',
	  name TEXT NOT NULL,
	  description JSONB NOT NULL DEFAULT '[]',
	  lesson_list JSONB NOT NULL DEFAULT '[]',
	  progress INTEGER NOT NULL DEFAULT 0,
	  documents JSONB NOT NULL DEFAULT '[]',
	  is_active BOOLEAN NOT NULL DEFAULT TRUE,
	  meeting TEXT NOT NULL DEFAULT '',
	  cover_img TEXT NOT NULL DEFAULT '',
	  start_date TEXT NOT NULL DEFAULT '',
	  end_date TEXT NOT NULL DEFAULT '',
	  color TEXT NOT NULL DEFAULT ''
	);

	CREATE INDEX idx_classes_course_id ON classes (course_id);

	CREATE TABLE class_teachers (
	  class_id TEXT NOT NULL REFERENCES classes (class_id) ON DELETE CASCADE,
	  name TEXT NOT NULL,
	  intro TEXT NOT NULL DEFAULT '',
	  position INTEGER NOT NULL DEFAULT 0,
	  PRIMARY KEY (class_id, position)
	);
	`

	_, err := tx.ExecContext(ctx, query)

	if err != nil {
		return err
	}

	return nil
}

func downCreateClassesTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	DROP TABLE IF EXISTS class_teachers;
	DROP TABLE IF EXISTS classes;
	`
	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}
	return nil
}
