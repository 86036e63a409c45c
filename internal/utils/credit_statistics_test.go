package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"olms-backend/internal/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal, field string) {
	t.Helper()
	assert.Truef(t, dec(expected).Equal(actual), "%s: expected %s, got %s", field, expected, actual.String())
}

func activeLoan(outstanding, collateral string, zone domain.RiskZone) domain.Loan {
	return domain.Loan{
		Status:               domain.LoanStatusActive,
		RiskZone:             zone,
		OutstandingPrincipal: dec(outstanding),
		TotalOrnamentValue:   dec(collateral),
	}
}

func overdueLoan() domain.Loan {
	l := activeLoan("10000", "20000", domain.RiskZoneGreen)
	l.Status = domain.LoanStatusOverdue
	return l
}

func TestComputeCustomerStatistics_TwoActiveLoans(t *testing.T) {
	customer := &domain.Customer{
		Loans: []domain.Loan{
			activeLoan("100000", "150000", domain.RiskZoneGreen),
			activeLoan("50000", "80000", domain.RiskZoneYellow),
		},
	}

	stats := ComputeCustomerStatistics(customer, decimal.NewFromInt(75))

	assert.Equal(t, 2, stats.TotalLoans)
	assert.Equal(t, 2, stats.ActiveLoans)
	assertDecimal(t, "150000", stats.TotalOutstanding, "totalOutstanding")
	assertDecimal(t, "230000", stats.TotalCollateralValue, "totalCollateralValue")
	assertDecimal(t, "172500", stats.MaxCreditLimit, "maxCreditLimit")
	assertDecimal(t, "22500", stats.AvailableCredit, "availableCredit")
	assertDecimal(t, "75", stats.MaxLTV, "maxLTV")
	assert.Equal(t, 1, stats.YellowZoneLoans)
	assert.Equal(t, 0, stats.RedZoneLoans)
	assert.Equal(t, domain.RiskLevelMedium, stats.RiskLevel)
}

func TestComputeCustomerStatistics_EmptyCustomer(t *testing.T) {
	stats := ComputeCustomerStatistics(&domain.Customer{}, decimal.NewFromInt(75))

	assert.Equal(t, 0, stats.TotalLoans)
	assert.Equal(t, 0, stats.ActiveLoans)
	assert.Equal(t, 0, stats.ClosedLoans)
	assert.Equal(t, 0, stats.PledgedOrnaments)
	for name, v := range map[string]decimal.Decimal{
		"totalOutstanding":         stats.TotalOutstanding,
		"totalInterestOutstanding": stats.TotalInterestOutstanding,
		"totalPrincipalPaid":       stats.TotalPrincipalPaid,
		"totalInterestPaid":        stats.TotalInterestPaid,
		"totalPaymentsMade":        stats.TotalPaymentsMade,
		"totalCollateralValue":     stats.TotalCollateralValue,
		"pledgedValue":             stats.PledgedValue,
		"maxCreditLimit":           stats.MaxCreditLimit,
		"availableCredit":          stats.AvailableCredit,
	} {
		assertDecimal(t, "0", v, name)
	}
	assert.Equal(t, domain.RiskLevelLow, stats.RiskLevel)
}

func TestComputeCustomerStatistics_ClosedLoansOnlyCountTowardsPaidTotals(t *testing.T) {
	closed := domain.Loan{
		Status:               domain.LoanStatusClosed,
		RiskZone:             domain.RiskZoneRed,
		OutstandingPrincipal: dec("5000"),
		OutstandingInterest:  dec("300"),
		TotalOrnamentValue:   dec("90000"),
		TotalPrincipalPaid:   dec("60000"),
		TotalInterestPaid:    dec("7200"),
	}
	active := activeLoan("40000", "100000", domain.RiskZoneGreen)
	active.OutstandingInterest = dec("1200")
	active.TotalPrincipalPaid = dec("10000")
	active.TotalInterestPaid = dec("800")

	stats := ComputeCustomerStatistics(&domain.Customer{Loans: []domain.Loan{closed, active}}, decimal.NewFromInt(75))

	assert.Equal(t, 2, stats.TotalLoans)
	assert.Equal(t, 1, stats.ActiveLoans)
	assert.Equal(t, 1, stats.ClosedLoans)
	assertDecimal(t, "40000", stats.TotalOutstanding, "totalOutstanding")
	assertDecimal(t, "1200", stats.TotalInterestOutstanding, "totalInterestOutstanding")
	assertDecimal(t, "100000", stats.TotalCollateralValue, "totalCollateralValue")
	assertDecimal(t, "70000", stats.TotalPrincipalPaid, "totalPrincipalPaid")
	assertDecimal(t, "8000", stats.TotalInterestPaid, "totalInterestPaid")
	// A closed red-zone loan does not affect risk.
	assert.Equal(t, 0, stats.RedZoneLoans)
	assert.Equal(t, domain.RiskLevelLow, stats.RiskLevel)
}

func TestComputeCustomerStatistics_AvailableCreditNeverNegative(t *testing.T) {
	tests := []struct {
		name        string
		outstanding string
		collateral  string
		maxLTV      int64
	}{
		{"Outstanding above limit", "100000", "100000", 75},
		{"No collateral", "1", "0", 75},
		{"Zero LTV", "10", "100000", 0},
		{"Far above limit", "9999999", "1000", 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customer := &domain.Customer{Loans: []domain.Loan{activeLoan(tt.outstanding, tt.collateral, domain.RiskZoneGreen)}}
			stats := ComputeCustomerStatistics(customer, decimal.NewFromInt(tt.maxLTV))
			assertDecimal(t, "0", stats.AvailableCredit, "availableCredit")
			assert.False(t, stats.AvailableCredit.IsNegative())
		})
	}
}

func TestComputeCustomerStatistics_Idempotent(t *testing.T) {
	customer := &domain.Customer{
		Loans: []domain.Loan{
			activeLoan("100000", "150000", domain.RiskZoneGreen),
			overdueLoan(),
			{Status: domain.LoanStatusClosed, TotalPrincipalPaid: dec("5000")},
		},
		Ornaments: []domain.Ornament{{Status: domain.OrnamentStatusPledged, ValuationAmount: dec("150000")}},
	}

	first := ComputeCustomerStatistics(customer, decimal.NewFromInt(75))
	second := ComputeCustomerStatistics(customer, decimal.NewFromInt(75))
	assert.Equal(t, first, second)
}

func TestComputeCustomerStatistics_OverdueLoansRaiseRisk(t *testing.T) {
	customer := &domain.Customer{Loans: []domain.Loan{activeLoan("1000", "5000", domain.RiskZoneGreen)}}
	assert.Equal(t, domain.RiskLevelLow, ComputeCustomerStatistics(customer, DefaultMaxLTV).RiskLevel)

	customer.Loans = append(customer.Loans, overdueLoan())
	stats := ComputeCustomerStatistics(customer, DefaultMaxLTV)
	assert.Equal(t, 1, stats.OverdueLoans)
	assert.Equal(t, domain.RiskLevelMedium, stats.RiskLevel)

	customer.Loans = append(customer.Loans, overdueLoan())
	stats = ComputeCustomerStatistics(customer, DefaultMaxLTV)
	assert.Equal(t, 2, stats.OverdueLoans)
	assert.Equal(t, domain.RiskLevelHigh, stats.RiskLevel)
}

func TestComputeCustomerStatistics_RedZoneIsHighWithoutOverdue(t *testing.T) {
	customer := &domain.Customer{Loans: []domain.Loan{activeLoan("1000", "5000", domain.RiskZoneRed)}}

	stats := ComputeCustomerStatistics(customer, DefaultMaxLTV)
	assert.Equal(t, 1, stats.RedZoneLoans)
	assert.Equal(t, 0, stats.OverdueLoans)
	assert.Equal(t, domain.RiskLevelHigh, stats.RiskLevel)
}

func TestComputeCustomerStatistics_TwoYellowLoansStayMedium(t *testing.T) {
	customer := &domain.Customer{Loans: []domain.Loan{
		activeLoan("1000", "5000", domain.RiskZoneYellow),
		activeLoan("2000", "5000", domain.RiskZoneYellow),
	}}

	stats := ComputeCustomerStatistics(customer, DefaultMaxLTV)
	assert.Equal(t, 2, stats.YellowZoneLoans)
	assert.Equal(t, domain.RiskLevelMedium, stats.RiskLevel)
}

func TestComputeCustomerStatistics_UnknownStatusIsNotActive(t *testing.T) {
	customer := &domain.Customer{Loans: []domain.Loan{{
		Status:               domain.LoanStatus("AUCTIONED"),
		RiskZone:             domain.RiskZoneRed,
		OutstandingPrincipal: dec("1000"),
		TotalOrnamentValue:   dec("2000"),
		TotalPrincipalPaid:   dec("300"),
	}}}

	stats := ComputeCustomerStatistics(customer, DefaultMaxLTV)
	assert.Equal(t, 1, stats.TotalLoans)
	assert.Equal(t, 0, stats.ActiveLoans)
	assert.Equal(t, 0, stats.ClosedLoans)
	assertDecimal(t, "0", stats.TotalOutstanding, "totalOutstanding")
	assertDecimal(t, "300", stats.TotalPrincipalPaid, "totalPrincipalPaid")
	assert.Equal(t, domain.RiskLevelLow, stats.RiskLevel)
}

func TestComputeCustomerStatistics_OrnamentsAndPayments(t *testing.T) {
	loanID := "loan-1"
	customer := &domain.Customer{
		Loans: []domain.Loan{
			{
				Status:   domain.LoanStatusActive,
				Payments: []domain.Payment{{Amount: dec("5000")}, {Amount: dec("3000")}},
			},
			{
				Status:   domain.LoanStatusClosed,
				Payments: []domain.Payment{{Amount: dec("10000")}},
			},
		},
		Ornaments: []domain.Ornament{
			{Status: domain.OrnamentStatusPledged, LoanID: &loanID, ValuationAmount: dec("150000")},
			{Status: domain.OrnamentStatusPledged, ValuationAmount: dec("35000.50")},
			{Status: domain.OrnamentStatusReleased, ValuationAmount: dec("50000")},
		},
	}

	stats := ComputeCustomerStatistics(customer, DefaultMaxLTV)
	assertDecimal(t, "18000", stats.TotalPaymentsMade, "totalPaymentsMade")
	assert.Equal(t, 2, stats.PledgedOrnaments)
	assertDecimal(t, "185000.50", stats.PledgedValue, "pledgedValue")
}

func TestClassifyRisk(t *testing.T) {
	tests := []struct {
		red, yellow, overdue int
		expected             domain.RiskLevel
	}{
		{0, 0, 0, domain.RiskLevelLow},
		{0, 0, 1, domain.RiskLevelMedium},
		{0, 1, 0, domain.RiskLevelMedium},
		{0, 3, 1, domain.RiskLevelMedium},
		{0, 0, 2, domain.RiskLevelHigh},
		{1, 0, 0, domain.RiskLevelHigh},
		{1, 2, 0, domain.RiskLevelHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ClassifyRisk(tt.red, tt.yellow, tt.overdue), "red=%d yellow=%d overdue=%d", tt.red, tt.yellow, tt.overdue)
	}
}
