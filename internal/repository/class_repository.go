package repository

import (
	"context"
	"database/sql"

	"github.com/nerkartran297/english-center-api/internal/model"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type ClassRepository interface {
	FindByID(ctx context.Context, classID string) (*model.Class, error)
	Create(ctx context.Context, class *model.Class) error
	Update(ctx context.Context, class *model.Class) error
	// ListByStudent returns the courses a student has a paid enrollment in,
	// with their classes attached. Feeds my-classes and the weekly schedule.
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]model.Course, error)
}

type postgresClassRepository struct {
	db *sqlx.DB
}

func NewPostgresClassRepository(db *sqlx.DB) ClassRepository {
	return &postgresClassRepository{db: db}
}

const classColumns = `
	c.class_id, c.course_id, c.schedule, c.name, c.description, c.lesson_list,
	c.progress, c.documents, c.is_active, c.meeting, c.cover_img,
	c.start_date, c.end_date, c.color
`

func selectClasses(ctx context.Context, db *sqlx.DB, where string, args ...interface{}) ([]model.Class, error) {
	var classes []model.Class
	query := `SELECT ` + classColumns + ` FROM classes c ` + where + ` ORDER BY c.class_id`
	if err := db.SelectContext(ctx, &classes, query, args...); err != nil {
		return nil, err
	}
	if classes == nil {
		classes = []model.Class{}
	}
	for i := range classes {
		var teachers []model.Teacher
		err := db.SelectContext(ctx, &teachers, `
			SELECT name, intro FROM class_teachers
			WHERE class_id = $1 ORDER BY position
		`, classes[i].ID)
		if err != nil {
			return nil, err
		}
		classes[i].Teachers = teachers
	}
	return classes, nil
}

func (r *postgresClassRepository) FindByID(ctx context.Context, classID string) (*model.Class, error) {
	classes, err := selectClasses(ctx, r.db, `WHERE c.class_id = $1`, classID)
	if err != nil {
		return nil, err
	}
	if len(classes) == 0 {
		return nil, nil
	}
	return &classes[0], nil
}

func (r *postgresClassRepository) Create(ctx context.Context, class *model.Class) error {
	query := `
		INSERT INTO classes (
			class_id, course_id, schedule, name, description, lesson_list,
			progress, documents, is_active, meeting, cover_img,
			start_date, end_date, color
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.db.ExecContext(ctx, query,
		class.ID, class.CourseID, class.Schedule, class.Name,
		class.Description, class.LessonList, class.Progress,
		class.Documents, class.IsActive, class.Meeting, class.CoverIMG,
		class.StartDate, class.EndDate, class.Color,
	)
	if err != nil {
		return err
	}
	return r.replaceTeachers(ctx, class.ID, class.Teachers)
}

func (r *postgresClassRepository) Update(ctx context.Context, class *model.Class) error {
	query := `
		UPDATE classes SET
			schedule = $2, name = $3, description = $4, lesson_list = $5,
			progress = $6, documents = $7, is_active = $8, meeting = $9,
			cover_img = $10, start_date = $11, end_date = $12, color = $13
		WHERE class_id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		class.ID, class.Schedule, class.Name, class.Description,
		class.LessonList, class.Progress, class.Documents, class.IsActive,
		class.Meeting, class.CoverIMG, class.StartDate, class.EndDate,
		class.Color,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return r.replaceTeachers(ctx, class.ID, class.Teachers)
}

func (r *postgresClassRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]model.Course, error) {
	var courses []model.Course
	query := `
		SELECT courses.*
		FROM courses
		JOIN enrollments e ON e.course_id = courses.course_id
		WHERE e.student_id = $1 AND e.is_paid
		ORDER BY e.enroll_date DESC
	`
	if err := r.db.SelectContext(ctx, &courses, query, studentID); err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []model.Course{}
	}
	for i := range courses {
		var teachers []model.Teacher
		err := r.db.SelectContext(ctx, &teachers, `
			SELECT name, intro FROM course_teachers
			WHERE course_id = $1 ORDER BY position
		`, courses[i].ID)
		if err != nil {
			return nil, err
		}
		courses[i].Teachers = teachers

		classes, err := selectClasses(ctx, r.db, `WHERE c.course_id = $1`, courses[i].ID)
		if err != nil {
			return nil, err
		}
		courses[i].Classes = classes
	}
	return courses, nil
}

func (r *postgresClassRepository) replaceTeachers(ctx context.Context, classID string, teachers []model.Teacher) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM class_teachers WHERE class_id = $1`, classID); err != nil {
		return err
	}
	for i, t := range teachers {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO class_teachers (class_id, name, intro, position)
			VALUES ($1, $2, $3, $4)
		`, classID, t.Name, t.Intro, i)
		if err != nil {
			return err
		}
	}
	return nil
}
