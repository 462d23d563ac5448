package models

import (
	"encoding/json"
	"testing"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		raw  string
		want Amount
	}{
		{`1500`, 1500},
		{`"1,20,000"`, 120000},
		{`"₹2500"`, 2500},
		{`""`, 0},
		{`null`, 0},
		{`"abc"`, 0},
		{`"NaN"`, 0},
		{`"Inf"`, 0},
		{`"-Infinity"`, 0},
		{`"1e400"`, 0},
		{`1e400`, 0},
	}
	for _, tt := range tests {
		var a Amount
		if err := json.Unmarshal([]byte(tt.raw), &a); err != nil {
			t.Fatalf("Unmarshal(%s) failed: %v", tt.raw, err)
		}
		if a != tt.want {
			t.Errorf("Unmarshal(%s) = %v, want %v", tt.raw, a, tt.want)
		}
	}
}

func TestFinanceRequest_RiskQuizPresence(t *testing.T) {
	tests := []struct {
		raw   string
		taken bool
	}{
		{`{}`, false},
		{`{"riskQuiz": null}`, false},
		{`{"riskQuiz": false}`, false},
		{`{"riskQuiz": ""}`, false},
		{`{"riskQuiz": 0}`, false},
		{`{"riskQuiz": {}}`, true},
		{`{"riskQuiz": true}`, true},
		{`{"riskQuiz": "done"}`, true},
		{`{"riskQuiz": 1}`, true},
		{`{"riskQuiz": []}`, true},
		{`{"riskQuiz": {"ageGroup": "18-25"}}`, true},
	}
	for _, tt := range tests {
		var req FinanceRequest
		if err := json.Unmarshal([]byte(tt.raw), &req); err != nil {
			t.Fatalf("Unmarshal(%s) failed: %v", tt.raw, err)
		}
		if taken := req.RiskQuiz != nil; taken != tt.taken {
			t.Errorf("%s: quiz taken = %v, want %v", tt.raw, taken, tt.taken)
		}
	}

	var req FinanceRequest
	if err := json.Unmarshal([]byte(`{"riskQuiz": {"demographics": {"ageGroup": "26-35"}}}`), &req); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if got := req.RiskQuiz.AgeGroup(); got != "26-35" {
		t.Errorf("Expected nested age group, got %q", got)
	}
}
