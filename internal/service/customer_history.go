package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"olms-backend/internal/domain"
	"olms-backend/internal/logger"
	"olms-backend/internal/repository"
	"olms-backend/internal/utils"
)

// loanFetchConcurrency bounds parallel per-loan queries against the pool.
const loanFetchConcurrency = 4

// HistoryOptions tunes how much of a customer's record is loaded.
type HistoryOptions struct {
	PaymentWindow int // newest payments per loan; 0 loads all
	NotesLimit    int
}

type customerService struct {
	customerRepo repository.CustomerRepository
	loanRepo     repository.LoanRepository
	ornamentRepo repository.OrnamentRepository
	paymentRepo  repository.PaymentRepository
	noteRepo     repository.NoteRepository
	settings     settingReader
	opts         HistoryOptions
}

func NewCustomerService(
	customerRepo repository.CustomerRepository,
	loanRepo repository.LoanRepository,
	ornamentRepo repository.OrnamentRepository,
	paymentRepo repository.PaymentRepository,
	noteRepo repository.NoteRepository,
	settingRepo repository.SettingRepository,
	opts HistoryOptions,
) CustomerService {
	if opts.NotesLimit <= 0 {
		opts.NotesLimit = 20
	}
	return &customerService{
		customerRepo: customerRepo,
		loanRepo:     loanRepo,
		ornamentRepo: ornamentRepo,
		paymentRepo:  paymentRepo,
		noteRepo:     noteRepo,
		settings:     settingReader{repo: settingRepo},
		opts:         opts,
	}
}

func (s *customerService) GetCustomerHistory(ctx context.Context, customerID string) (*domain.CustomerHistory, error) {
	customer, err := s.findCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	loans, err := s.loanRepo.ListByCustomer(ctx, customer.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	if err := s.loadLoanDetails(ctx, loans); err != nil {
		return nil, err
	}

	ornaments, err := s.ornamentRepo.ListByCustomer(ctx, customer.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ornaments: %w", err)
	}
	notes, err := s.noteRepo.ListByCustomer(ctx, customer.ID, s.opts.NotesLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	maxLTV, err := s.settings.maxLTV(ctx)
	if err != nil {
		return nil, err
	}

	customer.Loans = loans
	customer.Ornaments = ornaments
	customer.Notes = notes
	stats := utils.ComputeCustomerStatistics(customer, maxLTV)
	riskAssessments.WithLabelValues(string(stats.RiskLevel)).Inc()

	payments := make([]domain.Payment, 0)
	for _, l := range loans {
		payments = append(payments, l.Payments...)
	}

	return &domain.CustomerHistory{
		Customer:   customer,
		Statistics: stats,
		Loans:      nonNilLoans(loans),
		Ornaments:  nonNilOrnaments(ornaments),
		Notes:      nonNilNotes(notes),
		Payments:   payments,
	}, nil
}

// findCustomer accepts the internal id or the customer code.
func (s *customerService) findCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		customer, err = s.customerRepo.GetByCustomerCode(ctx, id)
	}
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load customer: %w", err)
	}
	return customer, nil
}

// loadLoanDetails fills each loan's ornaments and payments in place.
func (s *customerService) loadLoanDetails(ctx context.Context, loans []domain.Loan) error {
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(loanFetchConcurrency)

	for i := range loans {
		loan := &loans[i]
		g.Go(func() error {
			ornaments, err := s.ornamentRepo.ListByLoan(gCtx, loan.ID)
			if err != nil {
				return fmt.Errorf("failed to list ornaments for loan %s: %w", loan.ID, err)
			}
			payments, err := s.paymentRepo.ListByLoan(gCtx, loan.ID, s.opts.PaymentWindow)
			if err != nil {
				return fmt.Errorf("failed to list payments for loan %s: %w", loan.ID, err)
			}
			if s.opts.PaymentWindow > 0 && len(payments) == s.opts.PaymentWindow {
				logger.WarnContext(ctx, "Payment history truncated, totalPaymentsMade may undercount",
					"loan_id", loan.ID, "window", s.opts.PaymentWindow)
			}
			loan.Ornaments = nonNilOrnaments(ornaments)
			loan.Payments = nonNilPayments(payments)
			return nil
		})
	}
	return g.Wait()
}

func nonNilLoans(v []domain.Loan) []domain.Loan {
	if v == nil {
		return []domain.Loan{}
	}
	return v
}

func nonNilOrnaments(v []domain.Ornament) []domain.Ornament {
	if v == nil {
		return []domain.Ornament{}
	}
	return v
}

func nonNilPayments(v []domain.Payment) []domain.Payment {
	if v == nil {
		return []domain.Payment{}
	}
	return v
}

func nonNilNotes(v []domain.Note) []domain.Note {
	if v == nil {
		return []domain.Note{}
	}
	return v
}
