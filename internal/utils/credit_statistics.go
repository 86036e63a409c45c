package utils

import (
	"github.com/shopspring/decimal"

	"olms-backend/internal/domain"
)

// DefaultMaxLTV is the loan-to-value percentage used when none is configured.
var DefaultMaxLTV = decimal.NewFromInt(75)

var hundred = decimal.NewFromInt(100)

// ComputeCustomerStatistics derives the credit and risk summary for a single
// customer snapshot. Nil loan, ornament and payment collections count as
// empty. maxLTV is a percentage and is used exactly as given.
func ComputeCustomerStatistics(customer *domain.Customer, maxLTV decimal.Decimal) domain.CustomerStatistics {
	stats := domain.CustomerStatistics{MaxLTV: maxLTV}

	for i := range customer.Loans {
		loan := &customer.Loans[i]

		stats.TotalLoans++
		stats.TotalPrincipalPaid = stats.TotalPrincipalPaid.Add(loan.TotalPrincipalPaid)
		stats.TotalInterestPaid = stats.TotalInterestPaid.Add(loan.TotalInterestPaid)
		for _, p := range loan.Payments {
			stats.TotalPaymentsMade = stats.TotalPaymentsMade.Add(p.Amount)
		}

		if loan.Status == domain.LoanStatusClosed {
			stats.ClosedLoans++
		}
		if !loan.Status.IsActive() {
			continue
		}

		stats.ActiveLoans++
		stats.TotalOutstanding = stats.TotalOutstanding.Add(loan.OutstandingPrincipal)
		stats.TotalInterestOutstanding = stats.TotalInterestOutstanding.Add(loan.OutstandingInterest)
		stats.TotalCollateralValue = stats.TotalCollateralValue.Add(loan.TotalOrnamentValue)

		switch loan.RiskZone {
		case domain.RiskZoneRed:
			stats.RedZoneLoans++
		case domain.RiskZoneYellow:
			stats.YellowZoneLoans++
		}
		if loan.Status == domain.LoanStatusOverdue {
			stats.OverdueLoans++
		}
	}

	for _, o := range customer.Ornaments {
		if o.Status != domain.OrnamentStatusPledged {
			continue
		}
		stats.PledgedOrnaments++
		stats.PledgedValue = stats.PledgedValue.Add(o.ValuationAmount)
	}

	stats.MaxCreditLimit = stats.TotalCollateralValue.Mul(maxLTV).Div(hundred)
	stats.AvailableCredit = decimal.Max(decimal.Zero, stats.MaxCreditLimit.Sub(stats.TotalOutstanding))
	stats.RiskLevel = ClassifyRisk(stats.RedZoneLoans, stats.YellowZoneLoans, stats.OverdueLoans)

	return stats
}

// ClassifyRisk applies the risk rules in priority order. The first rule that
// fires wins, so a single red-zone loan is HIGH regardless of the other counts.
func ClassifyRisk(redZoneLoans, yellowZoneLoans, overdueLoans int) domain.RiskLevel {
	if redZoneLoans > 0 || overdueLoans > 1 {
		return domain.RiskLevelHigh
	}
	if yellowZoneLoans > 0 || overdueLoans > 0 {
		return domain.RiskLevelMedium
	}
	return domain.RiskLevelLow
}
