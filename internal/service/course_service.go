package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/nerkartran297/english-center-api/internal/catalog"
	"github.com/nerkartran297/english-center-api/internal/model"
	"github.com/nerkartran297/english-center-api/internal/repository"
	"github.com/nerkartran297/english-center-api/internal/schedule"

	"github.com/google/uuid"
)

var (
	ErrCourseNotFound  = errors.New("course not found")
	ErrClassNotFound   = errors.New("class not found")
	ErrNotEnrolled     = errors.New("student is not enrolled in this course")
	ErrInvalidSchedule = errors.New("invalid schedule slot")
)

type CourseService interface {
	// ListCourses runs the filter-sort engine over the catalog. An empty
	// filter with the default sort returns everything, best-rated first.
	ListCourses(ctx context.Context, f catalog.FilterState, key catalog.SortKey) ([]model.Course, error)
	GetCourse(ctx context.Context, courseID string) (*model.Course, error)
	CreateCourse(ctx context.Context, course *model.Course) error
	UpdateCourse(ctx context.Context, course *model.Course) error
	DeleteCourse(ctx context.Context, courseID string) error
	CreateClass(ctx context.Context, class *model.Class) error
	UpdateClass(ctx context.Context, class *model.Class) error
	GetClassForStudent(ctx context.Context, classID string, studentID uuid.UUID) (*model.Class, error)
}

type courseService struct {
	courseRepo  repository.CourseRepository
	classRepo   repository.ClassRepository
	studentRepo repository.StudentRepository
}

func NewCourseService(courseRepo repository.CourseRepository, classRepo repository.ClassRepository, studentRepo repository.StudentRepository) CourseService {
	return &courseService{
		courseRepo:  courseRepo,
		classRepo:   classRepo,
		studentRepo: studentRepo,
	}
}

func (s *courseService) ListCourses(ctx context.Context, f catalog.FilterState, key catalog.SortKey) ([]model.Course, error) {
	courses, err := s.courseRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if key == "" {
		key = catalog.DefaultSort
	}
	return catalog.FilterSort(courses, f, key), nil
}

func (s *courseService) GetCourse(ctx context.Context, courseID string) (*model.Course, error) {
	course, err := s.courseRepo.FindByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}
	return course, nil
}

func (s *courseService) CreateCourse(ctx context.Context, course *model.Course) error {
	return s.courseRepo.Create(ctx, course)
}

func (s *courseService) UpdateCourse(ctx context.Context, course *model.Course) error {
	err := s.courseRepo.Update(ctx, course)
	if isNoRows(err) {
		return ErrCourseNotFound
	}
	return err
}

func (s *courseService) DeleteCourse(ctx context.Context, courseID string) error {
	return s.courseRepo.Delete(ctx, courseID)
}

func (s *courseService) CreateClass(ctx context.Context, class *model.Class) error {
	if err := validateSchedule(class.Schedule); err != nil {
		return err
	}
	course, err := s.courseRepo.FindByID(ctx, class.CourseID)
	if err != nil {
		return err
	}
	if course == nil {
		return ErrCourseNotFound
	}
	return s.classRepo.Create(ctx, class)
}

func (s *courseService) UpdateClass(ctx context.Context, class *model.Class) error {
	if err := validateSchedule(class.Schedule); err != nil {
		return err
	}
	err := s.classRepo.Update(ctx, class)
	if isNoRows(err) {
		return ErrClassNotFound
	}
	return err
}

func (s *courseService) GetClassForStudent(ctx context.Context, classID string, studentID uuid.UUID) (*model.Class, error) {
	class, err := s.classRepo.FindByID(ctx, classID)
	if err != nil {
		return nil, err
	}
	if class == nil {
		return nil, ErrClassNotFound
	}

	enrolled, err := s.studentRepo.HasEnrollment(ctx, studentID, class.CourseID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, ErrNotEnrolled
	}
	return class, nil
}

// validateSchedule rejects malformed slot strings at write time, so legacy
// rows are the only place the read path's log-and-skip can trigger.
func validateSchedule(raw []string) error {
	for _, slot := range raw {
		if _, err := schedule.ParseSlot(slot); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidSchedule, slot)
		}
	}
	return nil
}
