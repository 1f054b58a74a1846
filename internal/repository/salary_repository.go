package repository

import (
	"context"

	"github.com/nerkartran297/english-center-api/internal/model"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type SalaryRepository interface {
	ListByReceiver(ctx context.Context, receiverID uuid.UUID) ([]model.Salary, error)
}

type postgresSalaryRepository struct {
	db *sqlx.DB
}

func NewPostgresSalaryRepository(db *sqlx.DB) SalaryRepository {
	return &postgresSalaryRepository{db: db}
}

func (r *postgresSalaryRepository) ListByReceiver(ctx context.Context, receiverID uuid.UUID) ([]model.Salary, error) {
	var salaries []model.Salary
	query := `
		SELECT id, description, type, receiver_id, value, created_at
		FROM salaries WHERE receiver_id = $1 ORDER BY created_at DESC
	`
	if err := r.db.SelectContext(ctx, &salaries, query, receiverID); err != nil {
		return nil, err
	}
	if salaries == nil {
		salaries = []model.Salary{}
	}
	return salaries, nil
}
