package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"olms-backend/internal/domain"
	"olms-backend/internal/repository"
)

type ornamentRepository struct {
	db *sql.DB
}

func NewOrnamentRepository(db *sql.DB) repository.OrnamentRepository {
	return &ornamentRepository{db: db}
}

const ornamentColumns = `o.id, o.ornament_id, o.customer_id, o.loan_id, o.name, o.type, o.metal_type, o.karat,
	o.gross_weight, o.net_weight, o.valuation_amount, o.status, o.created_at`

func scanOrnament(row rowScanner, extra ...any) (*domain.Ornament, error) {
	o := &domain.Ornament{}
	var loanID sql.NullString
	dest := []any{&o.ID, &o.OrnamentID, &o.CustomerID, &loanID, &o.Name, &o.Type, &o.MetalType, &o.Karat,
		&o.GrossWeight, &o.NetWeight, &o.ValuationAmount, &o.Status, &o.CreatedAt}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, notFound(err)
	}
	o.LoanID = nullStringPtr(loanID)
	return o, nil
}

func (r *ornamentRepository) Create(ctx context.Context, o *domain.Ornament) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	o.CreatedAt = time.Now().UTC()
	query := `INSERT INTO ornaments (id, ornament_id, customer_id, loan_id, name, type, metal_type, karat, gross_weight, net_weight, valuation_amount, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.ExecContext(ctx, query, o.ID, o.OrnamentID, o.CustomerID, o.LoanID, o.Name, o.Type, o.MetalType, o.Karat,
		o.GrossWeight, o.NetWeight, o.ValuationAmount, o.Status, o.CreatedAt)
	return err
}

func (r *ornamentRepository) GetByOrnamentCode(ctx context.Context, code string) (*domain.Ornament, error) {
	query := `SELECT ` + ornamentColumns + ` FROM ornaments o WHERE o.ornament_id = $1`
	return scanOrnament(r.db.QueryRowContext(ctx, query, code))
}

func (r *ornamentRepository) ListByLoan(ctx context.Context, loanID string) ([]domain.Ornament, error) {
	query := `SELECT ` + ornamentColumns + ` FROM ornaments o WHERE o.loan_id = $1 ORDER BY o.created_at`
	rows, err := r.db.QueryContext(ctx, query, loanID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ornaments []domain.Ornament
	for rows.Next() {
		o, err := scanOrnament(rows)
		if err != nil {
			return nil, err
		}
		ornaments = append(ornaments, *o)
	}
	return ornaments, rows.Err()
}

// ListByCustomer returns the customer's ornaments newest first, each with the
// reference and status of the loan it is linked to, if any.
func (r *ornamentRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.Ornament, error) {
	query := `SELECT ` + ornamentColumns + `, l.loan_reference_number, l.status
	          FROM ornaments o LEFT JOIN loans l ON l.id = o.loan_id
	          WHERE o.customer_id = $1 ORDER BY o.created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ornaments []domain.Ornament
	for rows.Next() {
		var loanRef, loanStatus sql.NullString
		o, err := scanOrnament(rows, &loanRef, &loanStatus)
		if err != nil {
			return nil, err
		}
		if loanRef.Valid {
			o.Loan = &domain.OrnamentLoan{
				LoanReferenceNumber: loanRef.String,
				Status:              domain.LoanStatus(loanStatus.String),
			}
		}
		ornaments = append(ornaments, *o)
	}
	return ornaments, rows.Err()
}

func (r *ornamentRepository) LinkToLoan(ctx context.Context, ornamentID, loanID string) error {
	query := `UPDATE ornaments SET loan_id = $1, status = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, loanID, domain.OrnamentStatusPledged, ornamentID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
