package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type LoanStatus string

const (
	LoanStatusActive  LoanStatus = "ACTIVE"
	LoanStatusOverdue LoanStatus = "OVERDUE"
	LoanStatusClosed  LoanStatus = "CLOSED"
)

// IsActive reports whether the loan still carries exposure. Statuses outside
// the named set are never active.
func (s LoanStatus) IsActive() bool {
	switch s {
	case LoanStatusActive, LoanStatusOverdue:
		return true
	case LoanStatusClosed:
		return false
	default:
		return false
	}
}

// Known reports whether s is one of the named loan statuses.
func (s LoanStatus) Known() bool {
	switch s {
	case LoanStatusActive, LoanStatusOverdue, LoanStatusClosed:
		return true
	default:
		return false
	}
}

type RiskZone string

const (
	RiskZoneGreen  RiskZone = "GREEN"
	RiskZoneYellow RiskZone = "YELLOW"
	RiskZoneRed    RiskZone = "RED"
)

type Loan struct {
	ID                   string          `json:"id"`
	LoanReferenceNumber  string          `json:"loanReferenceNumber"`
	CustomerID           string          `json:"customerId"`
	BranchID             *string         `json:"branchId,omitempty"`
	BranchName           string          `json:"branchName,omitempty"` // Populated on reads
	PrincipalAmount      decimal.Decimal `json:"principalAmount"`
	InterestRate         decimal.Decimal `json:"interestRate"`
	Status               LoanStatus      `json:"status"`
	RiskZone             RiskZone        `json:"riskZone"`
	OutstandingPrincipal decimal.Decimal `json:"outstandingPrincipal"`
	OutstandingInterest  decimal.Decimal `json:"outstandingInterest"`
	TotalPrincipalPaid   decimal.Decimal `json:"totalPrincipalPaid"`
	TotalInterestPaid    decimal.Decimal `json:"totalInterestPaid"`
	TotalOrnamentValue   decimal.Decimal `json:"totalOrnamentValue"`
	LoanToValueRatio     decimal.Decimal `json:"loanToValueRatio"`
	PenaltyAmount        decimal.Decimal `json:"penaltyAmount"`
	DisbursementDate     time.Time       `json:"disbursementDate"`
	MaturityDate         *time.Time      `json:"maturityDate,omitempty"`
	CreatedAt            time.Time       `json:"createdAt"`
	Ornaments            []Ornament      `json:"ornaments"`
	Payments             []Payment       `json:"payments"`
}
