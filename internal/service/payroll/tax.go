package payroll

import "github.com/shopspring/decimal"

var (
	monthsPerYear = decimal.NewFromInt(12)
)

// IncomeTax returns the monthly ISR withholding for a monthly base
// salary, per the progressive annual brackets in the statutory config:
// annual income less the flat exemption is taxed by band, and the annual
// figure is divided back to a monthly amount. The result is exact
// decimal; rounding happens only at the presentation boundary.
func (c *Calculator) IncomeTax(monthlySalary decimal.Decimal) decimal.Decimal {
	s := c.statutory

	annualIncome := monthlySalary.Mul(monthsPerYear)
	netAnnual := annualIncome.Sub(s.AnnualExemption)

	switch {
	case netAnnual.LessThanOrEqual(s.ISRBracket1Ceiling):
		return decimal.Zero
	case netAnnual.LessThanOrEqual(s.ISRBracket2Ceiling):
		return netAnnual.Sub(s.ISRBracket1Ceiling).Mul(s.ISRRate2).Div(monthsPerYear)
	case netAnnual.LessThanOrEqual(s.ISRBracket3Ceiling):
		return s.ISRBracket2Base.
			Add(netAnnual.Sub(s.ISRBracket2Ceiling).Mul(s.ISRRate3)).
			Div(monthsPerYear)
	default:
		return s.ISRBracket3Base.
			Add(netAnnual.Sub(s.ISRBracket3Ceiling).Mul(s.ISRRate4)).
			Div(monthsPerYear)
	}
}
