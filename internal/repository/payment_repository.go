package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/nerkartran297/english-center-api/internal/model"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type PaymentRepository interface {
	Create(ctx context.Context, p *model.Payment) (*model.Payment, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Payment, error)
	List(ctx context.Context) ([]model.Payment, error)
	HasOpenPayment(ctx context.Context, studentID uuid.UUID, courseID string) (bool, error)
	SetVerdict(ctx context.Context, id uuid.UUID, status, verifiedBy string, reason *string) error
}

type postgresPaymentRepository struct {
	db *sqlx.DB
}

func NewPostgresPaymentRepository(db *sqlx.DB) PaymentRepository {
	return &postgresPaymentRepository{db: db}
}

func (r *postgresPaymentRepository) Create(ctx context.Context, p *model.Payment) (*model.Payment, error) {
	query := `
		INSERT INTO payments (student_id, course_id, paycheck_key, amount, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, submitted_date
	`
	row := r.db.QueryRowxContext(ctx, query,
		p.StudentID, p.CourseID, p.PaycheckKey, p.Amount, model.PaymentPending)
	if err := row.Scan(&p.ID, &p.SubmittedDate); err != nil {
		return nil, err
	}
	p.Status = model.PaymentPending
	return p, nil
}

const paymentSelect = `
	SELECT
		p.id, p.student_id, COALESCE(u.name, '') AS student_name,
		p.course_id, COALESCE(c.name, '') AS course_name,
		p.paycheck_key, p.status = 'approved' AS is_paid, p.amount,
		p.submitted_date, p.status, p.verification_date, p.verified_by,
		p.rejection_reason
	FROM payments p
	LEFT JOIN users u ON p.student_id = u.id
	LEFT JOIN courses c ON p.course_id = c.course_id
`

func (r *postgresPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Payment, error) {
	var p model.Payment
	err := r.db.GetContext(ctx, &p, paymentSelect+` WHERE p.id = $1`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *postgresPaymentRepository) List(ctx context.Context) ([]model.Payment, error) {
	var payments []model.Payment
	err := r.db.SelectContext(ctx, &payments, paymentSelect+` ORDER BY p.submitted_date DESC`)
	if err != nil {
		return nil, err
	}
	if payments == nil {
		payments = []model.Payment{}
	}
	return payments, nil
}

func (r *postgresPaymentRepository) HasOpenPayment(ctx context.Context, studentID uuid.UUID, courseID string) (bool, error) {
	var count int
	query := `
		SELECT COUNT(*) FROM payments
		WHERE student_id = $1 AND course_id = $2 AND status IN ('pending', 'approved')
	`
	if err := r.db.GetContext(ctx, &count, query, studentID, courseID); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *postgresPaymentRepository) SetVerdict(ctx context.Context, id uuid.UUID, status, verifiedBy string, reason *string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE payments
		SET status = $2, verified_by = $3, rejection_reason = $4, verification_date = $5
		WHERE id = $1 AND status = 'pending'
	`, id, status, verifiedBy, reason, time.Now())
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
