package utils

import (
	"github.com/shopspring/decimal"

	"olms-backend/internal/domain"
)

// ZoneThresholds holds the revaluation cut-offs. LTV thresholds are
// percentages; OverdueDaysRed is the number of days past maturity after
// which an overdue loan is red regardless of its LTV.
type ZoneThresholds struct {
	YellowLTV      decimal.Decimal
	RedLTV         decimal.Decimal
	OverdueDaysRed int
}

// DefaultZoneThresholds mirrors the settings written by system bootstrap.
func DefaultZoneThresholds() ZoneThresholds {
	return ZoneThresholds{
		YellowLTV:      decimal.NewFromInt(80),
		RedLTV:         decimal.NewFromInt(90),
		OverdueDaysRed: 15,
	}
}

// CurrentLTV returns outstanding principal as a percentage of collateral
// value. ok is false when there is no collateral to measure against.
func CurrentLTV(outstanding, collateral decimal.Decimal) (ltv decimal.Decimal, ok bool) {
	if !collateral.IsPositive() {
		return decimal.Zero, false
	}
	return outstanding.Mul(hundred).Div(collateral), true
}

// ClassifyRiskZone assigns a revaluation zone to a loan.
func ClassifyRiskZone(outstanding, collateral decimal.Decimal, daysPastMaturity int, t ZoneThresholds) domain.RiskZone {
	if daysPastMaturity > t.OverdueDaysRed {
		return domain.RiskZoneRed
	}

	ltv, ok := CurrentLTV(outstanding, collateral)
	if !ok {
		if outstanding.IsPositive() {
			return domain.RiskZoneRed
		}
		return domain.RiskZoneGreen
	}

	switch {
	case ltv.GreaterThanOrEqual(t.RedLTV):
		return domain.RiskZoneRed
	case ltv.GreaterThanOrEqual(t.YellowLTV):
		return domain.RiskZoneYellow
	default:
		return domain.RiskZoneGreen
	}
}
