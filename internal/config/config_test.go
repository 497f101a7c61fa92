package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStatutoryDefaults(t *testing.T) {
	statutory, err := loadStatutory()
	require.NoError(t, err)

	assert.True(t, statutory.MinimumWage.Equal(decimal.RequireFromString("11903.13")))
	assert.True(t, statutory.ISRRate4.Equal(decimal.RequireFromString("0.25")))
	assert.True(t, statutory.ISRBracket3Base.Equal(decimal.RequireFromString("96916.30")))
}

func TestLoadStatutoryEnvOverrides(t *testing.T) {
	t.Setenv("STATUTORY_ISR_RATE2", "0.16")
	t.Setenv("STATUTORY_ISR_RATE3", "0.21")
	t.Setenv("STATUTORY_ISR_RATE4", "0.26")
	t.Setenv("STATUTORY_ISR_BRACKET2_BASE", "42000.00")
	t.Setenv("STATUTORY_ISR_BRACKET3_BASE", "97500.00")

	statutory, err := loadStatutory()
	require.NoError(t, err)

	assert.True(t, statutory.ISRRate2.Equal(decimal.RequireFromString("0.16")))
	assert.True(t, statutory.ISRRate3.Equal(decimal.RequireFromString("0.21")))
	assert.True(t, statutory.ISRRate4.Equal(decimal.RequireFromString("0.26")))
	assert.True(t, statutory.ISRBracket2Base.Equal(decimal.RequireFromString("42000.00")))
	assert.True(t, statutory.ISRBracket3Base.Equal(decimal.RequireFromString("97500.00")))

	// Untouched fields keep their defaults.
	assert.True(t, statutory.ISRBracket1Ceiling.Equal(decimal.RequireFromString("217493.16")))
}

func TestLoadStatutoryInvalidValue(t *testing.T) {
	t.Setenv("STATUTORY_ISR_RATE4", "quince por ciento")

	_, err := loadStatutory()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STATUTORY_ISR_RATE4")
}
