package repository_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/nerkartran297/english-center-api/internal/model"
	repo "github.com/nerkartran297/english-center-api/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

var classCols = []string{
	"class_id", "course_id", "schedule", "name", "description", "lesson_list",
	"progress", "documents", "is_active", "meeting", "cover_img",
	"start_date", "end_date", "color",
}

func TestPostgresClassRepository_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresClassRepository(sqlxDB)

	rows := sqlmock.NewRows(classCols).AddRow(
		"2-1", "2", []byte(`["Mon 15:30 18:00","Thu 19:00 21:00"]`),
		"IELTS Advanced A1", []byte(`[["Week 1","Listening"]]`),
		[]byte(`["Intro"]`), 20, []byte(`[]`), true,
		"https://meet.example.com/a1", "", "2024-01-08", "2024-04-26", "blue",
	)
	mock.ExpectQuery(`FROM classes c WHERE c\.class_id = \$1`).
		WithArgs("2-1").WillReturnRows(rows)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT name, intro FROM class_teachers`)).
		WithArgs("2-1").
		WillReturnRows(sqlmock.NewRows([]string{"name", "intro"}).AddRow("Ms. Lan", "8.0 IELTS"))

	class, err := r.FindByID(context.Background(), "2-1")
	require.NoError(t, err)
	require.Equal(t, "2-1", class.ID)
	require.Equal(t, model.StringList{"Mon 15:30 18:00", "Thu 19:00 21:00"}, class.Schedule)
	require.Len(t, class.Teachers, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresClassRepository_FindByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresClassRepository(sqlxDB)

	mock.ExpectQuery(`FROM classes c WHERE c\.class_id = \$1`).
		WithArgs("nope").WillReturnRows(sqlmock.NewRows(classCols))

	class, err := r.FindByID(context.Background(), "nope")
	require.NoError(t, err)
	require.Nil(t, class)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresClassRepository_Update_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresClassRepository(sqlxDB)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE classes SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = r.Update(context.Background(), &model.Class{ID: "nope", CourseID: "2"})
	require.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresClassRepository_ListByStudent_OnlyPaidEnrollments(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresClassRepository(sqlxDB)

	studentID := uuid.New()
	mock.ExpectQuery(`JOIN enrollments e ON e\.course_id = courses\.course_id`).
		WithArgs(studentID).
		WillReturnRows(sqlmock.NewRows([]string{"course_id", "name", "price", "rating"}).
			AddRow("2", "IELTS Advanced", 1500000.0, 4.8))

	// course teachers ride along so the schedule and my-classes views can
	// show who teaches, same as the demo catalog
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT name, intro FROM course_teachers`)).
		WithArgs("2").
		WillReturnRows(sqlmock.NewRows([]string{"name", "intro"}).AddRow("Ms. Lan", "8.0 IELTS"))

	mock.ExpectQuery(`FROM classes c WHERE c\.course_id = \$1`).
		WithArgs("2").WillReturnRows(sqlmock.NewRows(classCols))

	courses, err := r.ListByStudent(context.Background(), studentID)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	require.Equal(t, "IELTS Advanced", courses[0].Name)
	require.Equal(t, []model.Teacher{{Name: "Ms. Lan", Intro: "8.0 IELTS"}}, courses[0].Teachers)
	require.Empty(t, courses[0].Classes)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCourseRepository_FindByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresCourseRepository(sqlxDB)

	mock.ExpectQuery(`FROM courses WHERE course_id = \$1`).
		WithArgs("nope").WillReturnError(sql.ErrNoRows)

	course, err := r.FindByID(context.Background(), "nope")
	require.NoError(t, err)
	require.Nil(t, course)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCourseRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresCourseRepository(sqlxDB)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM courses WHERE course_id = $1`)).
		WithArgs("2").WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, r.Delete(context.Background(), "2"))
	require.NoError(t, mock.ExpectationsWereMet())
}
