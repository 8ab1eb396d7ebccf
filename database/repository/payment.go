package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"stayhub/database"
	"stayhub/models"
)

// PaymentRepository records bill status transitions reported by the
// payment gateway.
type PaymentRepository interface {
	RecordStatus(ctx context.Context, billID, status string, amount int) error
	GetBill(ctx context.Context, billID string) (*models.Bill, error)
}

// PgPaymentRepo is the Postgres-backed PaymentRepository.
type PgPaymentRepo struct {
	DB *pgxpool.Pool
}

// NewPgPaymentRepo creates a PaymentRepository over the global pool.
func NewPgPaymentRepo() *PgPaymentRepo {
	return &PgPaymentRepo{DB: database.GetPool()}
}

func (r *PgPaymentRepo) RecordStatus(ctx context.Context, billID, status string, amount int) error {
	_, err := r.DB.Exec(ctx,
		`INSERT INTO bills (id, status, amount, updated_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO UPDATE SET status = $2, amount = $3, updated_at = $4`,
		billID, status, amount, time.Now())
	if err != nil {
		return fmt.Errorf("record bill status: %w", err)
	}
	return nil
}

func (r *PgPaymentRepo) GetBill(ctx context.Context, billID string) (*models.Bill, error) {
	var bill models.Bill
	err := r.DB.QueryRow(ctx,
		`SELECT id, status, amount, updated_at FROM bills WHERE id = $1`,
		billID).Scan(&bill.ID, &bill.Status, &bill.Amount, &bill.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: bill %s", ErrNotFound, billID)
	}
	if err != nil {
		return nil, fmt.Errorf("get bill: %w", err)
	}
	return &bill, nil
}
