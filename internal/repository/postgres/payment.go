package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"olms-backend/internal/domain"
	"olms-backend/internal/repository"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

const paymentSelect = `SELECT id, payment_id, loan_id, customer_id, amount, payment_type, payment_method,
	principal_amount, interest_amount, penalty_amount, COALESCE(receipt_number, ''), payment_date, received_by, created_at
	FROM payments`

func scanPayment(row rowScanner) (*domain.Payment, error) {
	p := &domain.Payment{}
	var receivedBy sql.NullString
	err := row.Scan(&p.ID, &p.PaymentID, &p.LoanID, &p.CustomerID, &p.Amount, &p.PaymentType, &p.PaymentMethod,
		&p.PrincipalAmount, &p.InterestAmount, &p.PenaltyAmount, &p.ReceiptNumber, &p.PaymentDate, &receivedBy, &p.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	p.ReceivedBy = nullStringPtr(receivedBy)
	return p, nil
}

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.CreatedAt = time.Now().UTC()
	query := `INSERT INTO payments (id, payment_id, loan_id, customer_id, amount, payment_type, payment_method,
	          principal_amount, interest_amount, penalty_amount, receipt_number, payment_date, received_by, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.ExecContext(ctx, query, p.ID, p.PaymentID, p.LoanID, p.CustomerID, p.Amount, p.PaymentType, p.PaymentMethod,
		p.PrincipalAmount, p.InterestAmount, p.PenaltyAmount, p.ReceiptNumber, p.PaymentDate, p.ReceivedBy, p.CreatedAt)
	return err
}

func (r *paymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	return scanPayment(r.db.QueryRowContext(ctx, paymentSelect+` WHERE id = $1`, id))
}

func (r *paymentRepository) ListByLoan(ctx context.Context, loanID string, limit int) ([]domain.Payment, error) {
	query := paymentSelect + ` WHERE loan_id = $1 ORDER BY created_at DESC`
	args := []any{loanID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, *p)
	}
	return payments, rows.Err()
}
