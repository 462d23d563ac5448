package finance

import (
	"math"
	"strings"
)

// maxTenureMonths caps absurd tenures before the float to int conversion
const maxTenureMonths = math.MaxInt32

// TenureMonths converts a loan tenure to months. Anything other than
// "years" is taken as months.
func TenureMonths(value float64, unit string) int {
	if value <= 0 || math.IsNaN(value) {
		return 0
	}
	if strings.EqualFold(strings.TrimSpace(unit), "years") {
		value *= 12
	}
	if value >= maxTenureMonths {
		return maxTenureMonths
	}
	return int(value)
}

// EMI calculates the equated monthly installment of an amortizing loan.
// A zero rate repays principal in equal parts. The result is always finite:
// invalid input gives 0.
func EMI(principal, annualRate float64, months int) float64 {
	if principal <= 0 || months <= 0 || annualRate < 0 ||
		math.IsInf(principal, 0) || math.IsInf(annualRate, 0) {
		return 0
	}

	r := annualRate / 12 / 100
	n := float64(months)
	if r == 0 {
		return principal / n
	}

	// P·r·g/(g−1) rewritten as P·r/(1−1/g): when (1+r)^n overflows on very
	// long tenures, 1/g is 0 and the installment tends to the interest P·r.
	growth := math.Pow(1+r, n)
	emi := principal * r / (1 - 1/growth)
	if math.IsNaN(emi) || math.IsInf(emi, 0) {
		return 0
	}
	return emi
}
