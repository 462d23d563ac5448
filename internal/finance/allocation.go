package finance

import (
	"math"

	"github.com/Dan9191/finance-sage/internal/models"
)

// TotalInvestments sums every holding, mutual funds first
func TotalInvestments(inv models.Investments) float64 {
	return inv.MutualFundTotal() +
		inv.Gold.Float() +
		inv.RealEstate.Float() +
		inv.RSU.Float() +
		inv.ESOPs.Float() +
		inv.FixedDeposits.Float() +
		inv.Other.Float()
}

// Allocate returns each category's share of total holdings in percent.
// It returns nil when there is nothing to allocate or the total overflows.
func Allocate(inv models.Investments) *models.Allocation {
	total := TotalInvestments(inv)
	if total <= 0 || math.IsInf(total, 0) {
		return nil
	}

	pct := func(v float64) float64 { return v / total * 100 }
	return &models.Allocation{
		Gold:          pct(inv.Gold.Float()),
		RealEstate:    pct(inv.RealEstate.Float()),
		MutualFunds:   pct(inv.MutualFundTotal()),
		RSU:           pct(inv.RSU.Float()),
		ESOPs:         pct(inv.ESOPs.Float()),
		FixedDeposits: pct(inv.FixedDeposits.Float()),
		Other:         pct(inv.Other.Float()),
	}
}
