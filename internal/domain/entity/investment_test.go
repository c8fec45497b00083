package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvestment_LatestPayback_Empty(t *testing.T) {
	inv := &Investment{}

	_, ok := inv.LatestPayback()
	assert.False(t, ok)
}

func TestInvestment_RecordPayback(t *testing.T) {
	inv := &Investment{PaybackAmount: decimal.NewFromInt(50)}
	first := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	second := first.AddDate(0, 1, 0)

	inv.RecordPayback(decimal.NewFromInt(25), first)
	entry := inv.RecordPayback(decimal.RequireFromString("12.5"), second)

	assert.True(t, decimal.RequireFromString("87.5").Equal(inv.PaybackAmount))
	assert.True(t, inv.PaybackAmount.Equal(entry.Total))
	require.Len(t, inv.PaybackHistory, 2)
	assert.True(t, decimal.NewFromInt(75).Equal(inv.PaybackHistory[0].Total))

	latest, ok := inv.LatestPayback()
	require.True(t, ok)
	assert.Equal(t, second, latest.Date)
	assert.True(t, decimal.RequireFromString("12.5").Equal(latest.Amount))
}
