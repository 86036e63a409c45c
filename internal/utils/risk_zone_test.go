package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"olms-backend/internal/domain"
)

func TestClassifyRiskZone(t *testing.T) {
	thresholds := DefaultZoneThresholds()

	tests := []struct {
		name        string
		outstanding string
		collateral  string
		daysPast    int
		expected    domain.RiskZone
	}{
		{"Low LTV", "50000", "100000", 0, domain.RiskZoneGreen},
		{"Just below yellow", "79999", "100000", 0, domain.RiskZoneGreen},
		{"At yellow threshold", "80000", "100000", 0, domain.RiskZoneYellow},
		{"At red threshold", "90000", "100000", 0, domain.RiskZoneRed},
		{"Above collateral", "150000", "100000", 0, domain.RiskZoneRed},
		{"Overdue within grace", "10000", "100000", 15, domain.RiskZoneGreen},
		{"Overdue past grace", "10000", "100000", 16, domain.RiskZoneRed},
		{"No collateral with exposure", "1", "0", 0, domain.RiskZoneRed},
		{"No collateral no exposure", "0", "0", 0, domain.RiskZoneGreen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zone := ClassifyRiskZone(dec(tt.outstanding), dec(tt.collateral), tt.daysPast, thresholds)
			assert.Equal(t, tt.expected, zone)
		})
	}
}

func TestCurrentLTV(t *testing.T) {
	ltv, ok := CurrentLTV(dec("100000"), dec("150000"))
	assert.True(t, ok)
	assert.Equal(t, "66.67", ltv.StringFixed(2))

	_, ok = CurrentLTV(dec("100"), dec("0"))
	assert.False(t, ok)
}
