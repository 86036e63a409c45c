package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"olms-backend/internal/domain"
	"olms-backend/internal/logger"
	"olms-backend/internal/receipt"
	"olms-backend/internal/repository"
	"olms-backend/internal/storage"
)

type receiptService struct {
	loanRepo     repository.LoanRepository
	paymentRepo  repository.PaymentRepository
	customerRepo repository.CustomerRepository
	ornamentRepo repository.OrnamentRepository
	settings     settingReader
	store        storage.StorageInterface
	now          func() time.Time
}

func NewReceiptService(
	loanRepo repository.LoanRepository,
	paymentRepo repository.PaymentRepository,
	customerRepo repository.CustomerRepository,
	ornamentRepo repository.OrnamentRepository,
	settingRepo repository.SettingRepository,
	store storage.StorageInterface,
) ReceiptService {
	return &receiptService{
		loanRepo:     loanRepo,
		paymentRepo:  paymentRepo,
		customerRepo: customerRepo,
		ornamentRepo: ornamentRepo,
		settings:     settingReader{repo: settingRepo},
		store:        store,
		now:          time.Now,
	}
}

func (s *receiptService) GenerateReceipt(ctx context.Context, req ReceiptRequest) (*Receipt, error) {
	if req.PaymentID == "" && req.LoanID == "" {
		return nil, ErrReceiptTargetRequired
	}
	switch req.Copy {
	case "":
		req.Copy = receipt.CopyCustomer
	case receipt.CopyCustomer, receipt.CopyAdmin:
	default:
		return nil, ErrInvalidCopy
	}

	data := receipt.Data{Copy: req.Copy}

	var loanID string
	if req.PaymentID != "" {
		payment, err := s.paymentRepo.GetByID(ctx, req.PaymentID)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPaymentNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load payment: %w", err)
		}
		data.Payment = payment
		loanID = payment.LoanID
	} else {
		loanID = req.LoanID
	}

	loan, err := s.loanRepo.GetByID(ctx, loanID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrLoanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load loan: %w", err)
	}
	data.Loan = *loan

	if data.Payment == nil {
		latest, err := s.paymentRepo.ListByLoan(ctx, loan.ID, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to load latest payment: %w", err)
		}
		if len(latest) > 0 {
			data.Payment = &latest[0]
		}
	}

	customer, err := s.customerRepo.GetByID(ctx, loan.CustomerID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load customer: %w", err)
	}
	data.Customer = *customer

	if data.Ornaments, err = s.ornamentRepo.ListByLoan(ctx, loan.ID); err != nil {
		return nil, fmt.Errorf("failed to load ornaments: %w", err)
	}
	if data.Company, err = s.settings.company(ctx); err != nil {
		return nil, err
	}
	if req.Copy == receipt.CopyAdmin {
		data.Signature = s.loadSignature(ctx)
	}

	pdf, err := receipt.Bytes(data)
	if err != nil {
		return nil, err
	}
	receiptsGenerated.WithLabelValues(string(req.Copy)).Inc()

	ref := loan.LoanReferenceNumber
	if req.PaymentID != "" {
		ref = req.PaymentID
	}
	return &Receipt{
		Filename: fmt.Sprintf("bill_%s_%s_%d.pdf", req.Copy, ref, s.now().UnixMilli()),
		PDF:      pdf,
	}, nil
}

// loadSignature returns the stored signature image, or nil when none is
// configured or it cannot be read. A receipt is still issued without it.
func (s *receiptService) loadSignature(ctx context.Context) *receipt.Image {
	key, err := s.settings.stringOr(ctx, domain.SettingSignaturePath, "")
	if err != nil || key == "" {
		return nil
	}
	key = path.Base(key)

	var imageType string
	switch strings.ToLower(path.Ext(key)) {
	case ".png":
		imageType = "PNG"
	case ".jpg", ".jpeg":
		imageType = "JPG"
	default:
		logger.WarnContext(ctx, "Unsupported signature image type", "key", key)
		return nil
	}

	rc, err := s.store.Open(ctx, key)
	if err != nil {
		logger.WarnContext(ctx, "Signature image unavailable", "key", key, "error", err)
		return nil
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		logger.WarnContext(ctx, "Failed to read signature image", "key", key, "error", err)
		return nil
	}
	return &receipt.Image{Data: data, Type: imageType}
}
