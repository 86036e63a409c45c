package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalFieldsEncodeAsNumbers(t *testing.T) {
	stats := CustomerStatistics{
		TotalOutstanding: decimal.NewFromInt(150000),
		AvailableCredit:  decimal.RequireFromString("22500.50"),
		MaxLTV:           decimal.NewFromInt(75),
		RiskLevel:        RiskLevelLow,
	}

	raw, err := json.Marshal(stats)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"totalOutstanding":150000`)
	assert.Contains(t, string(raw), `"availableCredit":22500.5`)
	assert.Contains(t, string(raw), `"maxLTV":75`)

	var back CustomerStatistics
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, back.AvailableCredit.Equal(stats.AvailableCredit))
}

func TestLoanAmountsEncodeAsNumbers(t *testing.T) {
	loan := Loan{
		PrincipalAmount: decimal.NewFromInt(100000),
		InterestRate:    decimal.RequireFromString("12.5"),
	}

	raw, err := json.Marshal(loan)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.IsType(t, float64(0), got["principalAmount"])
	assert.IsType(t, float64(0), got["interestRate"])
}
