// Package strategy picks a target allocation template for a risk band and
// dresses it with age- and portfolio-specific notes.
package strategy

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Dan9191/finance-sage/internal/models"
	"github.com/Dan9191/finance-sage/internal/persona"
)

// RiskBand is the coarse appetite derived from the attitude answer
type RiskBand string

const (
	Conservative RiskBand = "Conservative"
	Balanced     RiskBand = "Balanced"
	Aggressive   RiskBand = "Aggressive"
)

// Asset classes used in target allocations
const (
	Equity     = "equity"
	Debt       = "debt"
	Gold       = "gold"
	RealEstate = "realEstate"
)

type template struct {
	title       string
	allocation  map[string]float64
	instruments []string
	narrative   string
	tips        []string
}

var templates = map[RiskBand]template{
	Conservative: {
		title:      "Capital Preservation",
		allocation: map[string]float64{Equity: 30, Debt: 50, Gold: 10, RealEstate: 10},
		instruments: []string{
			"PPF/EPF",
			"Debt Mutual Funds",
			"Fixed Deposits",
			"Sovereign Gold Bonds",
			"Large Cap Index Funds",
		},
		narrative: "Kept most of the portfolio in safe, long-term debt instruments, added a steady SIP into a large cap index fund and held gold as a hedge.",
		tips: []string{
			"Keep six months of expenses in a liquid fund before investing.",
			"Ladder fixed deposits so one matures every quarter.",
			"Prefer Sovereign Gold Bonds over physical gold.",
		},
	},
	Balanced: {
		title:      "Balanced Growth",
		allocation: map[string]float64{Equity: 50, Debt: 30, Gold: 10, RealEstate: 10},
		instruments: []string{
			"Index Funds",
			"Balanced Advantage Funds",
			"ELSS",
			"PPF/EPF",
			"REITs",
		},
		narrative: "Maintained a balanced portfolio, used ELSS for tax savings, rebalanced annually and avoided concentration in any one asset class.",
		tips: []string{
			"Automate SIPs on salary day.",
			"Rebalance once a year back to the target split.",
			"Use REITs instead of a second property for real estate exposure.",
		},
	},
	Aggressive: {
		title:      "High Growth",
		allocation: map[string]float64{Equity: 75, Debt: 10, Gold: 5, RealEstate: 10},
		instruments: []string{
			"Large Cap Mutual Funds",
			"Mid Cap Mutual Funds",
			"Small Cap Mutual Funds",
			"International Equity Funds",
			"REITs",
		},
		narrative: "Started early with SIPs in diversified equity mutual funds, stepped contributions up every year and avoided overexposure to gold and real estate.",
		tips: []string{
			"Cap small cap exposure at a quarter of equity.",
			"Step up SIPs by 10% with every raise.",
			"Do not stop SIPs during market falls.",
		},
	},
}

const (
	youngTilt = "With a long horizon ahead, you can lean further into equity and ride out volatility."
	olderTilt = "As retirement approaches, gradually move gains into debt and income-generating instruments to protect capital."
	midTilt   = "Balance growth with stability, and review the split whenever your goals or obligations change."
)

// RiskBandFromAttitude reads the free-text attitude answer
func RiskBandFromAttitude(attitude string) RiskBand {
	a := strings.ToLower(attitude)
	switch {
	case strings.Contains(a, "aggress"), strings.Contains(a, "high risk"), strings.Contains(a, "growth"):
		return Aggressive
	case strings.Contains(a, "conserv"), strings.Contains(a, "cautious"), strings.Contains(a, "safe"), strings.Contains(a, "low risk"):
		return Conservative
	}
	return Balanced
}

// Bands lists every band with a template
func Bands() []RiskBand {
	return []RiskBand{Conservative, Balanced, Aggressive}
}

// AgeTilt returns the age-specific sentence appended to the narrative
func AgeTilt(ageGroup string) string {
	switch persona.ParseAgeBucket(ageGroup) {
	case persona.Age18To25, persona.Age26To35:
		return youngTilt
	case persona.Age51To65, persona.AgeOver65:
		return olderTilt
	}
	return midTilt
}

// Build returns the strategy for band. current may be nil, in which case no
// comparison note is produced.
func Build(band RiskBand, ageGroup string, current *models.Allocation) models.Strategy {
	t, ok := templates[band]
	if !ok {
		band = Balanced
		t = templates[band]
	}

	target := make(map[string]float64, len(t.allocation))
	for k, v := range t.allocation {
		target[k] = v
	}

	s := models.Strategy{
		Title:              t.title,
		RiskBand:           string(band),
		TargetAllocation:   target,
		Instruments:        append([]string(nil), t.instruments...),
		Narrative:          t.narrative + " " + AgeTilt(ageGroup),
		ImplementationTips: append([]string(nil), t.tips...),
	}

	if current != nil {
		s.ComparisonNote = fmt.Sprintf(
			"Your current allocation is %.1f%% equity, %.1f%% gold and %.1f%% real estate, against a target of %.0f%% equity, %.0f%% gold and %.0f%% real estate.",
			current.Equity(), current.Gold, current.RealEstate,
			target[Equity], target[Gold], target[RealEstate],
		)
	}

	return s
}

// FormatAllocation renders a target split as "50% equity, 30% debt, ..."
// in descending weight order.
func FormatAllocation(allocation map[string]float64) string {
	keys := make([]string, 0, len(allocation))
	for k := range allocation {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if allocation[keys[i]] != allocation[keys[j]] {
			return allocation[keys[i]] > allocation[keys[j]]
		}
		return keys[i] < keys[j]
	})

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%.0f%% %s", allocation[k], k))
	}
	return strings.Join(parts, ", ")
}
