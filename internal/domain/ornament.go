package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrnamentStatus string

const (
	OrnamentStatusPledged  OrnamentStatus = "PLEDGED"
	OrnamentStatusReleased OrnamentStatus = "RELEASED"
)

type MetalType string

const (
	MetalTypeGold   MetalType = "GOLD"
	MetalTypeSilver MetalType = "SILVER"
)

type Ornament struct {
	ID              string          `json:"id"`
	OrnamentID      string          `json:"ornamentId"`
	CustomerID      string          `json:"customerId"`
	LoanID          *string         `json:"loanId"`
	Name            string          `json:"name"`
	Type            string          `json:"type"`
	MetalType       MetalType       `json:"metalType"`
	Karat           decimal.Decimal `json:"karat"`
	GrossWeight     decimal.Decimal `json:"grossWeight"`
	NetWeight       decimal.Decimal `json:"netWeight"`
	ValuationAmount decimal.Decimal `json:"valuationAmount"`
	Status          OrnamentStatus  `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	Loan            *OrnamentLoan   `json:"loan,omitempty"` // Populated on customer reads
}

// OrnamentLoan is the slice of the pledging loan shown next to an ornament.
type OrnamentLoan struct {
	LoanReferenceNumber string     `json:"loanReferenceNumber"`
	Status              LoanStatus `json:"status"`
}
