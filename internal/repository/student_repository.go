package repository

import (
	"context"
	"database/sql"

	"github.com/nerkartran297/english-center-api/internal/model"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type StudentRepository interface {
	FindByClerkID(ctx context.Context, clerkUserID string) (*model.User, error)
	FindByID(ctx context.Context, userID uuid.UUID) (*model.User, error)
	ListStudents(ctx context.Context) ([]model.StudentRecord, error)
	GetRecord(ctx context.Context, userID uuid.UUID) (*model.StudentRecord, error)
	AddEnrollment(ctx context.Context, e *model.Enrollment) error
	MarkEnrollmentPaid(ctx context.Context, studentID uuid.UUID, courseID string) error
	HasEnrollment(ctx context.Context, studentID uuid.UUID, courseID string) (bool, error)
}

type postgresStudentRepository struct {
	db *sqlx.DB
}

func NewPostgresStudentRepository(db *sqlx.DB) StudentRepository {
	return &postgresStudentRepository{db: db}
}

func (r *postgresStudentRepository) FindByClerkID(ctx context.Context, clerkUserID string) (*model.User, error) {
	var user model.User
	query := `SELECT id, clerk_user_id, name, role, is_activated, created_at FROM users WHERE clerk_user_id = $1`
	err := r.db.GetContext(ctx, &user, query, clerkUserID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *postgresStudentRepository) FindByID(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	var user model.User
	query := `SELECT id, clerk_user_id, name, role, is_activated, created_at FROM users WHERE id = $1`
	err := r.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *postgresStudentRepository) ListStudents(ctx context.Context) ([]model.StudentRecord, error) {
	var users []model.User
	query := `
		SELECT id, clerk_user_id, name, role, is_activated, created_at
		FROM users WHERE role = $1 ORDER BY created_at DESC
	`
	if err := r.db.SelectContext(ctx, &users, query, model.RoleStudent); err != nil {
		return nil, err
	}

	records := make([]model.StudentRecord, 0, len(users))
	for _, u := range users {
		enrollments, err := r.listEnrollments(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		records = append(records, model.StudentRecord{User: u, Courses: enrollments})
	}
	return records, nil
}

func (r *postgresStudentRepository) GetRecord(ctx context.Context, userID uuid.UUID) (*model.StudentRecord, error) {
	user, err := r.FindByID(ctx, userID)
	if err != nil || user == nil {
		return nil, err
	}
	enrollments, err := r.listEnrollments(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &model.StudentRecord{User: *user, Courses: enrollments}, nil
}

func (r *postgresStudentRepository) AddEnrollment(ctx context.Context, e *model.Enrollment) error {
	query := `
		INSERT INTO enrollments (student_id, course_id, enroll_date, is_paid, scores, paycheck_key)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		e.StudentID, e.CourseID, e.EnrollDate, e.IsPaid, e.Scores, e.PaycheckKey)
	return err
}

func (r *postgresStudentRepository) MarkEnrollmentPaid(ctx context.Context, studentID uuid.UUID, courseID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE enrollments SET is_paid = TRUE
		WHERE student_id = $1 AND course_id = $2
	`, studentID, courseID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *postgresStudentRepository) HasEnrollment(ctx context.Context, studentID uuid.UUID, courseID string) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM enrollments WHERE student_id = $1 AND course_id = $2`
	if err := r.db.GetContext(ctx, &count, query, studentID, courseID); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *postgresStudentRepository) listEnrollments(ctx context.Context, studentID uuid.UUID) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	query := `
		SELECT student_id, course_id, enroll_date, is_paid, scores, paycheck_key
		FROM enrollments WHERE student_id = $1 ORDER BY enroll_date DESC
	`
	if err := r.db.SelectContext(ctx, &enrollments, query, studentID); err != nil {
		return nil, err
	}
	if enrollments == nil {
		enrollments = []model.Enrollment{}
	}
	return enrollments, nil
}
