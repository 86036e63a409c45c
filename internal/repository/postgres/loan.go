package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"olms-backend/internal/domain"
	"olms-backend/internal/logger"
	"olms-backend/internal/repository"
)

type loanRepository struct {
	db *sql.DB
}

func NewLoanRepository(db *sql.DB) repository.LoanRepository {
	return &loanRepository{db: db}
}

const loanColumns = `l.id, l.loan_reference_number, l.customer_id, l.branch_id, COALESCE(b.name, ''),
	l.principal_amount, l.interest_rate, l.status, l.risk_zone,
	l.outstanding_principal, l.outstanding_interest, l.total_principal_paid, l.total_interest_paid,
	l.total_ornament_value, l.loan_to_value_ratio, l.penalty_amount,
	l.disbursement_date, l.maturity_date, l.created_at`

const loanSelect = `SELECT ` + loanColumns + ` FROM loans l LEFT JOIN branches b ON b.id = l.branch_id`

func scanLoan(row rowScanner) (*domain.Loan, error) {
	l := &domain.Loan{}
	var branchID sql.NullString
	var maturity sql.NullTime
	err := row.Scan(&l.ID, &l.LoanReferenceNumber, &l.CustomerID, &branchID, &l.BranchName,
		&l.PrincipalAmount, &l.InterestRate, &l.Status, &l.RiskZone,
		&l.OutstandingPrincipal, &l.OutstandingInterest, &l.TotalPrincipalPaid, &l.TotalInterestPaid,
		&l.TotalOrnamentValue, &l.LoanToValueRatio, &l.PenaltyAmount,
		&l.DisbursementDate, &maturity, &l.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	l.BranchID = nullStringPtr(branchID)
	if maturity.Valid {
		m := maturity.Time
		l.MaturityDate = &m
	}
	return l, nil
}

func (r *loanRepository) queryLoans(ctx context.Context, query string, args ...any) ([]domain.Loan, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var loans []domain.Loan
	for rows.Next() {
		l, err := scanLoan(rows)
		if err != nil {
			return nil, err
		}
		loans = append(loans, *l)
	}
	return loans, rows.Err()
}

func (r *loanRepository) Create(ctx context.Context, l *domain.Loan) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	l.CreatedAt = time.Now().UTC()
	query := `INSERT INTO loans (id, loan_reference_number, customer_id, branch_id, principal_amount, interest_rate, status, risk_zone,
	          outstanding_principal, outstanding_interest, total_principal_paid, total_interest_paid, total_ornament_value,
	          loan_to_value_ratio, penalty_amount, disbursement_date, maturity_date, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.db.ExecContext(ctx, query, l.ID, l.LoanReferenceNumber, l.CustomerID, l.BranchID, l.PrincipalAmount, l.InterestRate,
		l.Status, l.RiskZone, l.OutstandingPrincipal, l.OutstandingInterest, l.TotalPrincipalPaid, l.TotalInterestPaid,
		l.TotalOrnamentValue, l.LoanToValueRatio, l.PenaltyAmount, l.DisbursementDate, l.MaturityDate, l.CreatedAt)
	return err
}

func (r *loanRepository) GetByID(ctx context.Context, id string) (*domain.Loan, error) {
	return scanLoan(r.db.QueryRowContext(ctx, loanSelect+` WHERE l.id = $1`, id))
}

func (r *loanRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.Loan, error) {
	return r.queryLoans(ctx, loanSelect+` WHERE l.customer_id = $1 ORDER BY l.created_at DESC`, customerID)
}

func (r *loanRepository) ListActive(ctx context.Context) ([]domain.Loan, error) {
	return r.queryLoans(ctx, loanSelect+` WHERE l.status IN ('ACTIVE', 'OVERDUE') ORDER BY l.created_at`)
}

// MarkOverdue flips ACTIVE loans past maturity to OVERDUE and returns them.
func (r *loanRepository) MarkOverdue(ctx context.Context, asOf time.Time) ([]domain.Loan, error) {
	query := `WITH updated AS (
	              UPDATE loans SET status = 'OVERDUE'
	              WHERE status = 'ACTIVE' AND maturity_date IS NOT NULL AND maturity_date < $1
	              RETURNING *
	          )
	          SELECT ` + loanColumns + ` FROM updated l LEFT JOIN branches b ON b.id = l.branch_id`
	logger.DatabaseCall("UPDATE", "loans", "as_of", asOf)
	loans, err := r.queryLoans(ctx, query, asOf)
	logger.DatabaseResult("UPDATE", int64(len(loans)), err)
	return loans, err
}

func (r *loanRepository) UpdateRiskZone(ctx context.Context, id string, zone domain.RiskZone) error {
	res, err := r.db.ExecContext(ctx, `UPDATE loans SET risk_zone = $1 WHERE id = $2`, zone, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
