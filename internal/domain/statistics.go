package domain

import "github.com/shopspring/decimal"

type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "LOW"
	RiskLevelMedium RiskLevel = "MEDIUM"
	RiskLevelHigh   RiskLevel = "HIGH"
)

// CustomerStatistics is the credit and risk summary derived from one
// customer snapshot. It reflects the snapshot at fetch time; writes that land
// between the fetch and the computation are not detected.
type CustomerStatistics struct {
	TotalLoans               int             `json:"totalLoans"`
	ActiveLoans              int             `json:"activeLoans"`
	ClosedLoans              int             `json:"closedLoans"`
	TotalOutstanding         decimal.Decimal `json:"totalOutstanding"`
	TotalInterestOutstanding decimal.Decimal `json:"totalInterestOutstanding"`
	TotalPrincipalPaid       decimal.Decimal `json:"totalPrincipalPaid"`
	TotalInterestPaid        decimal.Decimal `json:"totalInterestPaid"`
	TotalPaymentsMade        decimal.Decimal `json:"totalPaymentsMade"`
	TotalCollateralValue     decimal.Decimal `json:"totalCollateralValue"`
	PledgedOrnaments         int             `json:"pledgedOrnaments"`
	PledgedValue             decimal.Decimal `json:"pledgedValue"`
	AvailableCredit          decimal.Decimal `json:"availableCredit"`
	MaxCreditLimit           decimal.Decimal `json:"maxCreditLimit"`
	MaxLTV                   decimal.Decimal `json:"maxLTV"`
	RiskLevel                RiskLevel       `json:"riskLevel"`
	RedZoneLoans             int             `json:"redZoneLoans"`
	YellowZoneLoans          int             `json:"yellowZoneLoans"`
	OverdueLoans             int             `json:"overdueLoans"`
}

// CustomerHistory is the payload of the customer history endpoint.
type CustomerHistory struct {
	Customer   *Customer          `json:"customer"`
	Statistics CustomerStatistics `json:"statistics"`
	Loans      []Loan             `json:"loans"`
	Ornaments  []Ornament         `json:"ornaments"`
	Notes      []Note             `json:"notes"`
	Payments   []Payment          `json:"payments"`
}
