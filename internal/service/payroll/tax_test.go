package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sistema-rh/planilla-backend-go/internal/config"
)

func newTestCalculator() *Calculator {
	return NewCalculator(config.DefaultStatutory())
}

func TestIncomeTaxZeroFloor(t *testing.T) {
	calc := newTestCalculator()

	// 10000 monthly -> 120000 annual -> 80000 net, well under the exempt
	// ceiling.
	got := calc.IncomeTax(decimal.NewFromInt(10000))
	assert.True(t, got.IsZero(), "IncomeTax(10000) = %s, want 0", got)

	// The exempt boundary itself still owes nothing.
	boundary := config.DefaultStatutory().ISRBracket1Ceiling.
		Add(config.DefaultStatutory().AnnualExemption).
		Div(decimal.NewFromInt(12))
	got = calc.IncomeTax(boundary)
	assert.True(t, got.IsZero(), "IncomeTax at bracket boundary = %s, want 0", got)
}

func TestIncomeTaxSecondBracket(t *testing.T) {
	calc := newTestCalculator()

	// 40000 monthly -> 480000 annual -> 440000 net, inside the 15% band:
	// (440000 - 217493.16) * 0.15 / 12.
	got := calc.IncomeTax(decimal.NewFromInt(40000))
	want := decimal.RequireFromString("440000").
		Sub(decimal.RequireFromString("217493.16")).
		Mul(decimal.RequireFromString("0.15")).
		Div(decimal.NewFromInt(12))

	assert.True(t, got.Equal(want), "IncomeTax(40000) = %s, want %s", got, want)
	assert.Equal(t, "2781.34", got.StringFixed(2))
}

func TestIncomeTaxUpperBrackets(t *testing.T) {
	calc := newTestCalculator()

	// 50000 monthly -> 600000 annual -> 560000 net, inside the 20% band.
	got := calc.IncomeTax(decimal.NewFromInt(50000))
	want := decimal.RequireFromString("41610.33").
		Add(decimal.RequireFromString("560000").
			Sub(decimal.RequireFromString("494224.40")).
			Mul(decimal.RequireFromString("0.20"))).
		Div(decimal.NewFromInt(12))
	assert.True(t, got.Equal(want), "IncomeTax(50000) = %s, want %s", got, want)

	// 100000 monthly -> 1200000 annual -> 1160000 net, top band.
	got = calc.IncomeTax(decimal.NewFromInt(100000))
	want = decimal.RequireFromString("96916.30").
		Add(decimal.RequireFromString("1160000").
			Sub(decimal.RequireFromString("771252.37")).
			Mul(decimal.RequireFromString("0.25"))).
		Div(decimal.NewFromInt(12))
	assert.True(t, got.Equal(want), "IncomeTax(100000) = %s, want %s", got, want)
}

func TestIncomeTaxMonotonicWithinBrackets(t *testing.T) {
	calc := newTestCalculator()

	// Withholding is non-decreasing inside each band. The bands are
	// sampled separately because the published constants are not
	// monotonic across the third boundary; that dip is pinned in
	// TestIncomeTaxTopBracketBaseDip.
	brackets := [][]int64{
		{0, 5000, 10000, 21457},
		{21458, 25000, 30000, 40000, 44518},
		{44519, 50000, 60000, 67604},
		{67605, 80000, 100000, 150000},
	}

	for _, salaries := range brackets {
		prev := calc.IncomeTax(decimal.NewFromInt(salaries[0]))
		for _, s := range salaries[1:] {
			got := calc.IncomeTax(decimal.NewFromInt(s))
			assert.False(t, got.LessThan(prev),
				"IncomeTax(%d) = %s decreased below %s", s, got, prev)
			prev = got
		}
	}
}

func TestIncomeTaxTopBracketBaseDip(t *testing.T) {
	calc := newTestCalculator()

	// The published tables carry a quirk: tax accrued at the third
	// bracket's ceiling, 41610.33 + (771252.37 - 494224.40) * 0.20 =
	// 97015.92 annual, exceeds the fourth bracket's base of 96916.30, so
	// withholding drops by about 8.30 a month when a salary crosses the
	// boundary. The tables are applied as published, not smoothed.
	below := calc.IncomeTax(decimal.NewFromInt(67604)) // net annual 771248.00, third band
	above := calc.IncomeTax(decimal.NewFromInt(67605)) // net annual 771260.00, fourth band

	assert.True(t, above.LessThan(below),
		"IncomeTax(67605) = %s, expected below IncomeTax(67604) = %s", above, below)
	assert.Equal(t, "8.07", below.Sub(above).StringFixed(2))

	// Exact values per the band formulas.
	wantBelow := decimal.RequireFromString("41610.33").
		Add(decimal.RequireFromString("771248").
			Sub(decimal.RequireFromString("494224.40")).
			Mul(decimal.RequireFromString("0.20"))).
		Div(decimal.NewFromInt(12))
	wantAbove := decimal.RequireFromString("96916.30").
		Add(decimal.RequireFromString("771260").
			Sub(decimal.RequireFromString("771252.37")).
			Mul(decimal.RequireFromString("0.25"))).
		Div(decimal.NewFromInt(12))
	assert.True(t, below.Equal(wantBelow), "IncomeTax(67604) = %s, want %s", below, wantBelow)
	assert.True(t, above.Equal(wantAbove), "IncomeTax(67605) = %s, want %s", above, wantAbove)
}
