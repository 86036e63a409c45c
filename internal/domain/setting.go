package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Setting keys read by the back office.
const (
	SettingMaxLTVRatio         = "max_ltv_ratio"
	SettingLoanToValueRatio    = "loan_to_value_ratio"
	SettingDefaultInterestRate = "default_interest_rate"
	SettingPenaltyRate         = "penalty_rate"
	SettingYellowZoneThreshold = "yellow_zone_threshold"
	SettingRedZoneThreshold    = "red_zone_threshold"
	SettingOverdueDaysRed      = "overdue_days_red"
	SettingSignaturePath       = "signature_path"
	SettingCompanyName         = "company_name"
	SettingCompanyAddress      = "company_address"
	SettingCompanyPhone        = "company_phone"
	SettingCompanyEmail        = "company_email"
	SettingCompanyGSTIN        = "company_gstin"
)

type Setting struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

type MetalRate struct {
	ID          string          `json:"id"`
	MetalType   MetalType       `json:"metalType"`
	Karat       decimal.Decimal `json:"karat"`
	RatePerGram decimal.Decimal `json:"ratePerGram"`
	RateDate    time.Time       `json:"rateDate"`
	Source      string          `json:"source"`
}
