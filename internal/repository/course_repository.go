package repository

import (
	"context"
	"database/sql"

	"github.com/nerkartran297/english-center-api/internal/model"

	"github.com/jmoiron/sqlx"
)

// CourseRepository is the catalog data source. The in-memory demo catalog
// and the Postgres store both sit behind it, so every read path works the
// same in demo mode and against a live database.
type CourseRepository interface {
	List(ctx context.Context) ([]model.Course, error)
	FindByID(ctx context.Context, courseID string) (*model.Course, error)
	Create(ctx context.Context, course *model.Course) error
	Update(ctx context.Context, course *model.Course) error
	Delete(ctx context.Context, courseID string) error
}

type postgresCourseRepository struct {
	db *sqlx.DB
}

func NewPostgresCourseRepository(db *sqlx.DB) CourseRepository {
	return &postgresCourseRepository{db: db}
}

const courseColumns = `
	course_id, name, description, price, compare_at_price, rating, total_vote,
	target, summary, student_list, student_limit, applied_number,
	current_student, cover_img, start_date, end_date, created_at
`

func (r *postgresCourseRepository) List(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	query := `SELECT ` + courseColumns + ` FROM courses ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &courses, query); err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []model.Course{}
	}
	for i := range courses {
		if err := r.attach(ctx, &courses[i]); err != nil {
			return nil, err
		}
	}
	return courses, nil
}

func (r *postgresCourseRepository) FindByID(ctx context.Context, courseID string) (*model.Course, error) {
	var course model.Course
	query := `SELECT ` + courseColumns + ` FROM courses WHERE course_id = $1`
	err := r.db.GetContext(ctx, &course, query, courseID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if err := r.attach(ctx, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *postgresCourseRepository) Create(ctx context.Context, course *model.Course) error {
	query := `
		INSERT INTO courses (
			course_id, name, description, price, compare_at_price, rating,
			total_vote, target, summary, student_list, student_limit,
			applied_number, current_student, cover_img, start_date, end_date
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING created_at
	`
	row := r.db.QueryRowxContext(ctx, query,
		course.ID, course.Name, course.Description, course.Price,
		course.CompareAtPrice, course.Rating, course.TotalVote,
		course.Target, course.Summary, course.StudentList,
		course.StudentLimit, course.AppliedNumber, course.CurrentStudent,
		course.CoverIMG, course.StartDate, course.EndDate,
	)
	if err := row.Scan(&course.CreatedAt); err != nil {
		return err
	}
	return r.replaceTeachers(ctx, course.ID, course.Teachers)
}

func (r *postgresCourseRepository) Update(ctx context.Context, course *model.Course) error {
	query := `
		UPDATE courses SET
			name = $2, description = $3, price = $4, compare_at_price = $5,
			rating = $6, total_vote = $7, target = $8, summary = $9,
			student_list = $10, student_limit = $11, applied_number = $12,
			current_student = $13, cover_img = $14, start_date = $15, end_date = $16
		WHERE course_id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		course.ID, course.Name, course.Description, course.Price,
		course.CompareAtPrice, course.Rating, course.TotalVote,
		course.Target, course.Summary, course.StudentList,
		course.StudentLimit, course.AppliedNumber, course.CurrentStudent,
		course.CoverIMG, course.StartDate, course.EndDate,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return r.replaceTeachers(ctx, course.ID, course.Teachers)
}

func (r *postgresCourseRepository) Delete(ctx context.Context, courseID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE course_id = $1`, courseID)
	return err
}

func (r *postgresCourseRepository) replaceTeachers(ctx context.Context, courseID string, teachers []model.Teacher) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM course_teachers WHERE course_id = $1`, courseID); err != nil {
		return err
	}
	for i, t := range teachers {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO course_teachers (course_id, name, intro, position)
			VALUES ($1, $2, $3, $4)
		`, courseID, t.Name, t.Intro, i)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *postgresCourseRepository) attach(ctx context.Context, course *model.Course) error {
	var teachers []model.Teacher
	err := r.db.SelectContext(ctx, &teachers, `
		SELECT name, intro FROM course_teachers
		WHERE course_id = $1 ORDER BY position
	`, course.ID)
	if err != nil {
		return err
	}
	course.Teachers = teachers

	classes, err := selectClasses(ctx, r.db, `WHERE c.course_id = $1`, course.ID)
	if err != nil {
		return err
	}
	course.Classes = classes
	return nil
}
