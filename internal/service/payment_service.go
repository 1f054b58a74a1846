package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"time"

	"github.com/nerkartran297/english-center-api/internal/events"
	"github.com/nerkartran297/english-center-api/internal/model"
	"github.com/nerkartran297/english-center-api/internal/repository"
	"github.com/nerkartran297/english-center-api/internal/storage"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrAlreadyPurchased = errors.New("course already purchased or pending review")
	ErrAlreadyVerified  = errors.New("payment has already been verified")
)

type PaymentService interface {
	// SubmitPurchase stores the proof image, records a pending payment and
	// an unpaid enrollment, and announces the submission.
	SubmitPurchase(ctx context.Context, courseID string, studentID uuid.UUID, proof io.Reader, filename, contentType string) (*model.Payment, error)
	// ListPayments is the staff review queue; paycheck keys are swapped for
	// presigned review URLs.
	ListPayments(ctx context.Context) ([]model.Payment, error)
	// Verify settles a pending payment. Approval activates the enrollment.
	Verify(ctx context.Context, paymentID uuid.UUID, approve bool, verifiedBy string, reason *string) (*model.Payment, error)
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
	studentRepo repository.StudentRepository
	courseRepo  repository.CourseRepository
	proofs      storage.ProofStore
	publisher   events.EventPublisher
}

func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	studentRepo repository.StudentRepository,
	courseRepo repository.CourseRepository,
	proofs storage.ProofStore,
	publisher events.EventPublisher,
) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		studentRepo: studentRepo,
		courseRepo:  courseRepo,
		proofs:      proofs,
		publisher:   publisher,
	}
}

func (s *paymentService) SubmitPurchase(ctx context.Context, courseID string, studentID uuid.UUID, proof io.Reader, filename, contentType string) (*model.Payment, error) {
	course, err := s.courseRepo.FindByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}

	open, err := s.paymentRepo.HasOpenPayment(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}
	if open {
		return nil, ErrAlreadyPurchased
	}

	key := fmt.Sprintf("proofs/%s/%s%s", courseID, uuid.NewString(), path.Ext(filename))
	if err := s.proofs.Put(ctx, key, contentType, proof); err != nil {
		return nil, err
	}

	payment, err := s.paymentRepo.Create(ctx, &model.Payment{
		StudentID:   studentID,
		CourseID:    courseID,
		PaycheckKey: key,
		Amount:      course.Price,
	})
	if err != nil {
		return nil, err
	}

	enrolled, err := s.studentRepo.HasEnrollment(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		err = s.studentRepo.AddEnrollment(ctx, &model.Enrollment{
			StudentID:   studentID,
			CourseID:    courseID,
			EnrollDate:  time.Now(),
			IsPaid:      false,
			PaycheckKey: key,
		})
		if err != nil {
			return nil, err
		}
	}

	go s.publisher.PublishPaymentSubmitted(payment)

	return payment, nil
}

func (s *paymentService) ListPayments(ctx context.Context) ([]model.Payment, error) {
	payments, err := s.paymentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range payments {
		if payments[i].PaycheckKey == "" {
			continue
		}
		url, err := s.proofs.ReviewURL(ctx, payments[i].PaycheckKey)
		if err != nil {
			slog.WarnContext(ctx, "could not presign proof image",
				slog.String("paymentID", payments[i].ID.String()),
				slog.String("error", err.Error()))
			continue
		}
		payments[i].PaycheckKey = url
	}
	return payments, nil
}

func (s *paymentService) Verify(ctx context.Context, paymentID uuid.UUID, approve bool, verifiedBy string, reason *string) (*model.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	if payment.Status != model.PaymentPending {
		return nil, ErrAlreadyVerified
	}

	status := model.PaymentRejected
	if approve {
		status = model.PaymentApproved
	}
	if err := s.paymentRepo.SetVerdict(ctx, paymentID, status, verifiedBy, reason); err != nil {
		if isNoRows(err) {
			return nil, ErrAlreadyVerified
		}
		return nil, err
	}

	if approve {
		if err := s.studentRepo.MarkEnrollmentPaid(ctx, payment.StudentID, payment.CourseID); err != nil && !isNoRows(err) {
			return nil, err
		}
	}

	payment.Status = status
	payment.IsPaid = approve
	payment.VerifiedBy = &verifiedBy
	payment.RejectionReason = reason
	now := time.Now()
	payment.VerificationDate = &now

	go s.publisher.PublishPaymentVerified(payment)

	return payment, nil
}
