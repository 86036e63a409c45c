package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"olms-backend/internal/domain"
	"olms-backend/internal/logger"
	"olms-backend/internal/repository"
	"olms-backend/internal/utils"
)

type seedCustomer struct {
	first, last, phone, email, city string
}

type seedOrnament struct {
	name, kind string
	metal      domain.MetalType
	karat      string
	gross, net string
	valuation  int64
}

type seedLoan struct {
	principal int64
	status    domain.LoanStatus
	zone      domain.RiskZone
}

type seedPayment struct {
	amount int64
	kind   domain.PaymentType
	method domain.PaymentMethod
}

type seedRate struct {
	metal domain.MetalType
	karat string
	rate  int64
}

var (
	seedCustomers = []seedCustomer{
		{"Rajesh", "Kumar", "9876543210", "rajesh@email.com", "Mumbai"},
		{"Priya", "Sharma", "9876543211", "priya@email.com", "Delhi"},
		{"Amit", "Patel", "9876543212", "amit@email.com", "Ahmedabad"},
		{"Sunita", "Verma", "9876543213", "sunita@email.com", "Jaipur"},
		{"Ravi", "Singh", "9876543214", "ravi@email.com", "Lucknow"},
	}
	seedOrnaments = []seedOrnament{
		{"Gold Necklace", "NECKLACE", domain.MetalTypeGold, "22", "25.5", "24.0", 150000},
		{"Gold Bangle Set", "BANGLE", domain.MetalTypeGold, "22", "35.0", "34.0", 200000},
		{"Gold Earrings", "EARRINGS", domain.MetalTypeGold, "22", "8.0", "7.5", 50000},
		{"Silver Chain", "CHAIN", domain.MetalTypeSilver, "92.5", "50.0", "48.0", 40000},
		{"Gold Ring", "RING", domain.MetalTypeGold, "24", "5.0", "4.8", 35000},
	}
	seedLoans = []seedLoan{
		{100000, domain.LoanStatusActive, domain.RiskZoneGreen},
		{150000, domain.LoanStatusActive, domain.RiskZoneYellow},
		{80000, domain.LoanStatusActive, domain.RiskZoneGreen},
		{200000, domain.LoanStatusOverdue, domain.RiskZoneRed},
		{50000, domain.LoanStatusActive, domain.RiskZoneGreen},
	}
	seedPayments = []seedPayment{
		{5000, domain.PaymentTypeInterest, domain.PaymentMethodCash},
		{10000, domain.PaymentTypeBoth, domain.PaymentMethodUPI},
		{3000, domain.PaymentTypeInterest, domain.PaymentMethodCash},
	}
	seedRates = []seedRate{
		{domain.MetalTypeGold, "24", 6500},
		{domain.MetalTypeGold, "22", 6000},
		{domain.MetalTypeGold, "18", 5000},
		{domain.MetalTypeSilver, "92.5", 80},
	}
)

type seedService struct {
	customerRepo  repository.CustomerRepository
	ornamentRepo  repository.OrnamentRepository
	loanRepo      repository.LoanRepository
	paymentRepo   repository.PaymentRepository
	metalRateRepo repository.MetalRateRepository
	now           func() time.Time
}

func NewSeedService(
	customerRepo repository.CustomerRepository,
	ornamentRepo repository.OrnamentRepository,
	loanRepo repository.LoanRepository,
	paymentRepo repository.PaymentRepository,
	metalRateRepo repository.MetalRateRepository,
) SeedService {
	return &seedService{
		customerRepo:  customerRepo,
		ornamentRepo:  ornamentRepo,
		loanRepo:      loanRepo,
		paymentRepo:   paymentRepo,
		metalRateRepo: metalRateRepo,
		now:           time.Now,
	}
}

// Seed loads demo data. Customers and ornaments are matched by code and
// reused; loans and payments get fresh references on every run.
func (s *seedService) Seed(ctx context.Context) (*SeedReport, error) {
	now := s.now().UTC()
	report := &SeedReport{}

	customers := make([]*domain.Customer, 0, len(seedCustomers))
	for i, sc := range seedCustomers {
		c, created, err := s.ensureCustomer(ctx, fmt.Sprintf("CUS%06d", i+1), sc)
		if err != nil {
			return nil, err
		}
		if created {
			report.Customers++
		}
		customers = append(customers, c)
	}

	ornaments := make([]*domain.Ornament, 0, len(seedOrnaments))
	for i, so := range seedOrnaments {
		owner := customers[i%len(customers)]
		o, created, err := s.ensureOrnament(ctx, fmt.Sprintf("ORN%06d", i+1), owner.ID, so)
		if err != nil {
			return nil, err
		}
		if created {
			report.Ornaments++
		}
		ornaments = append(ornaments, o)
	}

	stamp := now.UnixMilli()
	loans := make([]*domain.Loan, 0, len(seedLoans))
	for i, sl := range seedLoans {
		customer := customers[i%len(customers)]
		ornament := ornaments[i%len(ornaments)]
		principal := decimal.NewFromInt(sl.principal)
		disbursed := utils.StartOfDay(now).AddDate(0, 0, -30*i)
		maturity := disbursed.AddDate(0, 6, 0)
		if sl.status == domain.LoanStatusOverdue {
			maturity = disbursed.AddDate(0, 0, 30)
		}

		loan := &domain.Loan{
			LoanReferenceNumber:  fmt.Sprintf("LN%08d", (stamp+int64(i))%100000000),
			CustomerID:           customer.ID,
			BranchID:             customer.BranchID,
			PrincipalAmount:      principal,
			InterestRate:         decimal.NewFromInt(12),
			Status:               sl.status,
			RiskZone:             sl.zone,
			OutstandingPrincipal: principal,
			TotalOrnamentValue:   ornament.ValuationAmount,
			LoanToValueRatio:     principal.Mul(decimal.NewFromInt(100)).Div(ornament.ValuationAmount).Round(2),
			DisbursementDate:     disbursed,
			MaturityDate:         &maturity,
		}
		if err := s.loanRepo.Create(ctx, loan); err != nil {
			return nil, fmt.Errorf("failed to create loan: %w", err)
		}
		if err := s.ornamentRepo.LinkToLoan(ctx, ornament.ID, loan.ID); err != nil {
			return nil, fmt.Errorf("failed to link ornament %s: %w", ornament.OrnamentID, err)
		}
		report.Loans++
		loans = append(loans, loan)
	}

	for i, sp := range seedPayments {
		loan := loans[i%len(loans)]
		amount := decimal.NewFromInt(sp.amount)
		principal, interest := decimal.Zero, amount.Mul(decimal.NewFromFloat(0.4))
		if sp.kind == domain.PaymentTypeBoth {
			principal = amount.Mul(decimal.NewFromFloat(0.6))
		}
		if sp.kind == domain.PaymentTypeInterest {
			interest = amount
		}

		payment := &domain.Payment{
			PaymentID:       fmt.Sprintf("PAY%08d", (stamp+int64(i))%100000000),
			LoanID:          loan.ID,
			CustomerID:      loan.CustomerID,
			Amount:          amount,
			PaymentType:     sp.kind,
			PaymentMethod:   sp.method,
			PrincipalAmount: principal,
			InterestAmount:  interest,
			ReceiptNumber:   fmt.Sprintf("RCP%d", stamp+int64(i)),
			PaymentDate:     now.AddDate(0, 0, -7*i),
		}
		if err := s.paymentRepo.Create(ctx, payment); err != nil {
			return nil, fmt.Errorf("failed to create payment: %w", err)
		}
		report.Payments++
	}

	today := utils.StartOfDay(now)
	for _, sr := range seedRates {
		karat := decimal.RequireFromString(sr.karat)
		_, err := s.metalRateRepo.FindForDay(ctx, sr.metal, karat, today)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("failed to look up metal rate: %w", err)
		}
		rate := &domain.MetalRate{
			MetalType:   sr.metal,
			Karat:       karat,
			RatePerGram: decimal.NewFromInt(sr.rate),
			RateDate:    today,
			Source:      "MANUAL",
		}
		if err := s.metalRateRepo.Create(ctx, rate); err != nil {
			return nil, fmt.Errorf("failed to create metal rate: %w", err)
		}
		report.MetalRates++
	}

	logger.InfoContext(ctx, "Sample data loaded",
		"customers", report.Customers, "ornaments", report.Ornaments,
		"loans", report.Loans, "payments", report.Payments, "metal_rates", report.MetalRates)
	return report, nil
}

func (s *seedService) ensureCustomer(ctx context.Context, code string, sc seedCustomer) (*domain.Customer, bool, error) {
	existing, err := s.customerRepo.GetByCustomerCode(ctx, code)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to look up customer %s: %w", code, err)
	}

	c := &domain.Customer{
		CustomerID: code,
		FirstName:  sc.first,
		LastName:   sc.last,
		Phone:      sc.phone,
		Email:      sc.email,
		City:       sc.city,
		Status:     domain.CustomerStatusActive,
	}
	if err := s.customerRepo.Create(ctx, c); err != nil {
		return nil, false, fmt.Errorf("failed to create customer %s: %w", code, err)
	}
	return c, true, nil
}

func (s *seedService) ensureOrnament(ctx context.Context, code, customerID string, so seedOrnament) (*domain.Ornament, bool, error) {
	existing, err := s.ornamentRepo.GetByOrnamentCode(ctx, code)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to look up ornament %s: %w", code, err)
	}

	o := &domain.Ornament{
		OrnamentID:      code,
		CustomerID:      customerID,
		Name:            so.name,
		Type:            so.kind,
		MetalType:       so.metal,
		Karat:           decimal.RequireFromString(so.karat),
		GrossWeight:     decimal.RequireFromString(so.gross),
		NetWeight:       decimal.RequireFromString(so.net),
		ValuationAmount: decimal.NewFromInt(so.valuation),
		Status:          domain.OrnamentStatusPledged,
	}
	if err := s.ornamentRepo.Create(ctx, o); err != nil {
		return nil, false, fmt.Errorf("failed to create ornament %s: %w", code, err)
	}
	return o, true, nil
}
