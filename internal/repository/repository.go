package repository

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"olms-backend/internal/domain"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	GetByCustomerCode(ctx context.Context, code string) (*domain.Customer, error)
}

type LoanRepository interface {
	Create(ctx context.Context, loan *domain.Loan) error
	GetByID(ctx context.Context, id string) (*domain.Loan, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Loan, error)
	ListActive(ctx context.Context) ([]domain.Loan, error)
	MarkOverdue(ctx context.Context, asOf time.Time) ([]domain.Loan, error)
	UpdateRiskZone(ctx context.Context, id string, zone domain.RiskZone) error
}

type OrnamentRepository interface {
	Create(ctx context.Context, ornament *domain.Ornament) error
	GetByOrnamentCode(ctx context.Context, code string) (*domain.Ornament, error)
	ListByLoan(ctx context.Context, loanID string) ([]domain.Ornament, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Ornament, error)
	LinkToLoan(ctx context.Context, ornamentID, loanID string) error
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	// ListByLoan returns payments newest first. A limit <= 0 returns the full history.
	ListByLoan(ctx context.Context, loanID string, limit int) ([]domain.Payment, error)
}

type NoteRepository interface {
	ListByCustomer(ctx context.Context, customerID string, limit int) ([]domain.Note, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type BranchRepository interface {
	Create(ctx context.Context, branch *domain.Branch) error
	First(ctx context.Context) (*domain.Branch, error)
}

type SettingRepository interface {
	Get(ctx context.Context, key string) (*domain.Setting, error)
	List(ctx context.Context) ([]domain.Setting, error)
	Create(ctx context.Context, setting *domain.Setting) error
	Upsert(ctx context.Context, key, value string) error
}

type MetalRateRepository interface {
	Create(ctx context.Context, rate *domain.MetalRate) error
	FindForDay(ctx context.Context, metalType domain.MetalType, karat decimal.Decimal, day time.Time) (*domain.MetalRate, error)
}
