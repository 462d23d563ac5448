package strategy

import (
	"strings"
	"testing"

	"github.com/Dan9191/finance-sage/internal/models"
)

func TestBuild_TemplatesSumToHundred(t *testing.T) {
	for _, band := range Bands() {
		s := Build(band, "26-35", nil)
		var total float64
		for _, v := range s.TargetAllocation {
			total += v
		}
		if total != 100 {
			t.Errorf("%s: expected allocation total 100, got %f", band, total)
		}
		if s.RiskBand != string(band) {
			t.Errorf("Expected risk band %s, got %s", band, s.RiskBand)
		}
		if len(s.Instruments) == 0 || len(s.ImplementationTips) == 0 {
			t.Errorf("%s: expected instruments and tips", band)
		}
	}
}

func TestBuild_UnknownBandUsesBalanced(t *testing.T) {
	s := Build(RiskBand("YOLO"), "36-50", nil)
	if s.RiskBand != string(Balanced) {
		t.Errorf("Expected Balanced fallback, got %s", s.RiskBand)
	}
}

func TestBuild_TemplatesAreNotShared(t *testing.T) {
	s := Build(Aggressive, "18-25", nil)
	s.TargetAllocation[Equity] = 0
	s.Instruments[0] = "changed"

	again := Build(Aggressive, "18-25", nil)
	if again.TargetAllocation[Equity] != 75 {
		t.Errorf("template allocation was mutated: %v", again.TargetAllocation)
	}
	if again.Instruments[0] == "changed" {
		t.Error("template instruments were mutated")
	}
}

func TestBuild_AgeTilt(t *testing.T) {
	tests := map[string]string{
		"18-25":   youngTilt,
		"26-35":   youngTilt,
		"36-50":   midTilt,
		"51-65":   olderTilt,
		"65+":     olderTilt,
		"unknown": midTilt,
	}
	for age, want := range tests {
		s := Build(Balanced, age, nil)
		if !strings.HasSuffix(s.Narrative, want) {
			t.Errorf("%s: expected narrative to end with %q, got %q", age, want, s.Narrative)
		}
	}
}

func TestBuild_ComparisonOnlyWithAllocation(t *testing.T) {
	if s := Build(Conservative, "36-50", nil); s.ComparisonNote != "" {
		t.Errorf("Expected no comparison without allocation, got %q", s.ComparisonNote)
	}

	current := &models.Allocation{Gold: 20, RealEstate: 30, MutualFunds: 40, RSU: 10}
	s := Build(Conservative, "36-50", current)
	want := "Your current allocation is 50.0% equity, 20.0% gold and 30.0% real estate, against a target of 30% equity, 10% gold and 10% real estate."
	if s.ComparisonNote != want {
		t.Errorf("Unexpected comparison:\n got %q\nwant %q", s.ComparisonNote, want)
	}
}

func TestRiskBandFromAttitude(t *testing.T) {
	tests := map[string]RiskBand{
		"I am an aggressive investor":       Aggressive,
		"High risk, high reward":            Aggressive,
		"I prefer safe investments":         Conservative,
		"Conservative - protect my capital": Conservative,
		"Somewhere in between":              Balanced,
		"":                                  Balanced,
	}
	for attitude, want := range tests {
		if got := RiskBandFromAttitude(attitude); got != want {
			t.Errorf("RiskBandFromAttitude(%q) = %s, want %s", attitude, got, want)
		}
	}
}

func TestFormatAllocation(t *testing.T) {
	got := FormatAllocation(map[string]float64{Equity: 50, Debt: 30, Gold: 10, RealEstate: 10})
	want := "50% equity, 30% debt, 10% gold, 10% realEstate"
	if got != want {
		t.Errorf("FormatAllocation = %q, want %q", got, want)
	}
}
