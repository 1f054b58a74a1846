package repository_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/nerkartran297/english-center-api/internal/model"
	repo "github.com/nerkartran297/english-center-api/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func TestPostgresStudentRepository_FindByClerkID_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresStudentRepository(sqlxDB)

	id := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "clerk_user_id", "name", "role", "is_activated", "created_at"}).
		AddRow(id, "user_2abc", "Nguyen Van A", "student", true, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, clerk_user_id, name, role, is_activated, created_at FROM users WHERE clerk_user_id = $1`)).
		WithArgs("user_2abc").WillReturnRows(rows)

	u, err := r.FindByClerkID(context.Background(), "user_2abc")
	require.NoError(t, err)
	require.Equal(t, id, u.ID)
	require.Equal(t, "student", u.Role)
	require.True(t, u.IsActivated)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStudentRepository_FindByClerkID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresStudentRepository(sqlxDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, clerk_user_id, name, role, is_activated, created_at FROM users WHERE clerk_user_id = $1`)).
		WithArgs("user_missing").WillReturnError(sql.ErrNoRows)

	// unknown clerk IDs come back nil, not as an error
	u, err := r.FindByClerkID(context.Background(), "user_missing")
	require.NoError(t, err)
	require.Nil(t, u)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStudentRepository_AddEnrollment(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresStudentRepository(sqlxDB)

	studentID := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO enrollments (student_id, course_id, enroll_date, is_paid, scores, paycheck_key)`)).
		WithArgs(studentID, "2", sqlmock.AnyArg(), false, sqlmock.AnyArg(), "proofs/abc.png").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = r.AddEnrollment(context.Background(), &model.Enrollment{
		StudentID:   studentID,
		CourseID:    "2",
		EnrollDate:  time.Now(),
		IsPaid:      false,
		PaycheckKey: "proofs/abc.png",
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStudentRepository_MarkEnrollmentPaid_NoEnrollment(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresStudentRepository(sqlxDB)

	studentID := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE enrollments SET is_paid = TRUE`)).
		WithArgs(studentID, "9").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = r.MarkEnrollmentPaid(context.Background(), studentID, "9")
	require.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStudentRepository_HasEnrollment(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresStudentRepository(sqlxDB)

	studentID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM enrollments WHERE student_id = $1 AND course_id = $2`)).
		WithArgs(studentID, "2").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	ok, err := r.HasEnrollment(context.Background(), studentID, "2")
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStudentRepository_GetRecord_WithEnrollments(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresStudentRepository(sqlxDB)

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, clerk_user_id, name, role, is_activated, created_at FROM users WHERE id = $1`)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "clerk_user_id", "name", "role", "is_activated", "created_at"}).
			AddRow(id, "user_2abc", "Nguyen Van A", "student", true, time.Now()))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT student_id, course_id, enroll_date, is_paid, scores, paycheck_key`)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"student_id", "course_id", "enroll_date", "is_paid", "scores", "paycheck_key"}).
			AddRow(id, "2", time.Now(), true, []byte(`[{"score":8.5,"description":"Midterm","comment":"Good"}]`), ""))

	record, err := r.GetRecord(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, record.Courses, 1)
	require.Equal(t, "2", record.Courses[0].CourseID)
	require.Equal(t, 8.5, record.Courses[0].Scores[0].Score)
	require.NoError(t, mock.ExpectationsWereMet())
}
