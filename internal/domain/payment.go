package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentType string

const (
	PaymentTypeInterest  PaymentType = "INTEREST"
	PaymentTypePrincipal PaymentType = "PRINCIPAL"
	PaymentTypeBoth      PaymentType = "BOTH"
)

type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "CASH"
	PaymentMethodUPI  PaymentMethod = "UPI"
	PaymentMethodBank PaymentMethod = "BANK_TRANSFER"
)

type Payment struct {
	ID              string          `json:"id"`
	PaymentID       string          `json:"paymentId"`
	LoanID          string          `json:"loanId"`
	CustomerID      string          `json:"customerId"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentType     PaymentType     `json:"paymentType"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
	PrincipalAmount decimal.Decimal `json:"principalAmount"`
	InterestAmount  decimal.Decimal `json:"interestAmount"`
	PenaltyAmount   decimal.Decimal `json:"penaltyAmount"`
	ReceiptNumber   string          `json:"receiptNumber"`
	PaymentDate     time.Time       `json:"paymentDate"`
	ReceivedBy      *string         `json:"receivedBy,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}
