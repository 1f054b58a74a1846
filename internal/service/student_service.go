package service

import (
	"context"
	"errors"

	"github.com/nerkartran297/english-center-api/internal/model"
	"github.com/nerkartran297/english-center-api/internal/repository"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

type StudentService interface {
	GetRole(ctx context.Context, clerkUserID string) (*model.User, error)
	GetInformation(ctx context.Context, userID uuid.UUID) (*model.StudentRecord, error)
	ListStudents(ctx context.Context) ([]model.StudentRecord, error)
	MyClasses(ctx context.Context, studentID uuid.UUID) ([]model.Course, error)
	ListSalaries(ctx context.Context, receiverID uuid.UUID) ([]model.Salary, error)
}

type studentService struct {
	studentRepo repository.StudentRepository
	classRepo   repository.ClassRepository
	salaryRepo  repository.SalaryRepository
}

func NewStudentService(studentRepo repository.StudentRepository, classRepo repository.ClassRepository, salaryRepo repository.SalaryRepository) StudentService {
	return &studentService{
		studentRepo: studentRepo,
		classRepo:   classRepo,
		salaryRepo:  salaryRepo,
	}
}

func (s *studentService) GetRole(ctx context.Context, clerkUserID string) (*model.User, error) {
	user, err := s.studentRepo.FindByClerkID(ctx, clerkUserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *studentService) GetInformation(ctx context.Context, userID uuid.UUID) (*model.StudentRecord, error) {
	record, err := s.studentRepo.GetRecord(ctx, userID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrUserNotFound
	}
	return record, nil
}

func (s *studentService) ListStudents(ctx context.Context) ([]model.StudentRecord, error) {
	return s.studentRepo.ListStudents(ctx)
}

func (s *studentService) MyClasses(ctx context.Context, studentID uuid.UUID) ([]model.Course, error) {
	return s.classRepo.ListByStudent(ctx, studentID)
}

func (s *studentService) ListSalaries(ctx context.Context, receiverID uuid.UUID) ([]model.Salary, error) {
	return s.salaryRepo.ListByReceiver(ctx, receiverID)
}
