package service

import (
	"context"
	"io"
	"time"

	"olms-backend/internal/domain"
	"olms-backend/internal/receipt"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.User, error) // token, user
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

type CustomerService interface {
	GetCustomerHistory(ctx context.Context, customerID string) (*domain.CustomerHistory, error)
}

type ReceiptService interface {
	GenerateReceipt(ctx context.Context, req ReceiptRequest) (*Receipt, error)
}

type UploadService interface {
	Upload(ctx context.Context, user *domain.User, req UploadRequest) (*UploadResult, error)
	Open(ctx context.Context, filename string) (*StoredFile, error)
}

type BootstrapService interface {
	Initialize(ctx context.Context) error
}

type SeedService interface {
	Seed(ctx context.Context) (*SeedReport, error)
}

type LoanMaintenanceService interface {
	MarkOverdueLoans(ctx context.Context, asOf time.Time) (int, error)
	RefreshRiskZones(ctx context.Context, asOf time.Time) (*RiskZoneReport, error)
}

// ReceiptRequest selects a receipt by payment or, failing that, by loan.
type ReceiptRequest struct {
	PaymentID string
	LoanID    string
	Copy      receipt.Copy
}

type Receipt struct {
	Filename string
	PDF      []byte
}

type UploadRequest struct {
	Kind        string `validate:"omitempty,alphanum,max=32"`
	Filename    string
	ContentType string `validate:"required"`
	Size        int64  `validate:"gte=0"`
	Body        io.Reader
}

type UploadResult struct {
	Success  bool   `json:"success"`
	Filename string `json:"filename"`
	Path     string `json:"path"`
}

type StoredFile struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

type SeedReport struct {
	Customers  int `json:"customers"`
	Ornaments  int `json:"ornaments"`
	Loans      int `json:"loans"`
	Payments   int `json:"payments"`
	MetalRates int `json:"metalRates"`
}

type RiskZoneReport struct {
	Evaluated int `json:"evaluated"`
	Changed   int `json:"changed"`
	Failed    int `json:"failed"`
}
