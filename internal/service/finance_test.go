package service

import (
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/Dan9191/finance-sage/internal/models"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func decodeFinanceRequest(t *testing.T, body string) models.FinanceRequest {
	t.Helper()
	var req models.FinanceRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("Failed to decode request: %v", err)
	}
	return req
}

func TestRecommend_NoQuiz(t *testing.T) {
	svc := NewFinanceService(testLogger())

	for _, body := range []string{`{}`, `{"income":{"inhandIncome":"50000"}}`, `{"riskQuiz":null}`} {
		resp := svc.Recommend(decodeFinanceRequest(t, body))
		if resp != NoQuizResponse() {
			t.Errorf("%s: expected no-quiz response, got %+v", body, resp)
		}
	}
}

func TestRecommend_WithQuiz(t *testing.T) {
	svc := NewFinanceService(testLogger())
	req := decodeFinanceRequest(t, `{
		"income": {"inhandIncome": "100000"},
		"investments": {"gold": 20000, "realEstate": "30000", "mutualFunds": [{"name": "Index", "amount": 50000}]},
		"expenses": {"monthlyExpenses": 40000},
		"riskQuiz": {"ageGroup": "18-25", "knowledge": "Minimal", "behaviour": "Cautious", "reaction": "Sell"}
	}`)

	resp := svc.Recommend(req)
	if !resp.Success {
		t.Fatal("Expected success")
	}
	if !strings.HasPrefix(resp.Persona, "A1 – ") {
		t.Errorf("Expected persona A1, got %q", resp.Persona)
	}
	if !strings.Contains(resp.Recommendation, "Balanced Growth") {
		t.Errorf("Expected balanced strategy, got %q", resp.Recommendation)
	}
	if !strings.HasPrefix(resp.IdealStrategy, "Ideal instruments: ") {
		t.Errorf("Unexpected ideal strategy %q", resp.IdealStrategy)
	}
	if !strings.Contains(resp.Comparison, "50.0% equity, 20.0% gold and 30.0% real estate") {
		t.Errorf("Unexpected comparison %q", resp.Comparison)
	}
	if resp.Strategies == nil || resp.Strategies.Allocation == nil {
		t.Fatal("Expected structured strategies with allocation")
	}
	if resp.Strategies.Metrics.MonthlySavings != 60000 {
		t.Errorf("Expected monthly savings 60000, got %f", resp.Strategies.Metrics.MonthlySavings)
	}
}

func TestRecommend_EmptyQuizFallsBack(t *testing.T) {
	svc := NewFinanceService(testLogger())
	resp := svc.Recommend(decodeFinanceRequest(t, `{"riskQuiz": {}}`))

	if !resp.Success {
		t.Fatal("Expected success")
	}
	if !strings.HasPrefix(resp.Persona, "GEN – ") {
		t.Errorf("Expected general persona, got %q", resp.Persona)
	}
	if resp.Comparison != Unknown {
		t.Errorf("Expected %q comparison without investments, got %q", Unknown, resp.Comparison)
	}
	if resp.Recommendation == "" || resp.IdealStrategy == "" {
		t.Error("Expected non-empty texts")
	}
}

func TestRecommend_AttitudeDrivesBandAndBehaviour(t *testing.T) {
	svc := NewFinanceService(testLogger())
	resp := svc.Recommend(decodeFinanceRequest(t, `{"riskQuiz": {"attitude": "I want aggressive growth"}}`))

	if resp.Strategies == nil {
		t.Fatal("Expected structured strategies")
	}
	if resp.Strategies.Strategy.RiskBand != "Aggressive" {
		t.Errorf("Expected Aggressive band, got %s", resp.Strategies.Strategy.RiskBand)
	}
}

func TestBehaviourFromAttitude(t *testing.T) {
	tests := map[string]string{
		"":                  "",
		"high risk please":  "Aggressive",
		"keep it safe":      "Cautious",
		"somewhere between": "Moderate",
	}
	for in, want := range tests {
		if got := behaviourFromAttitude(in); got != want {
			t.Errorf("behaviourFromAttitude(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEMI(t *testing.T) {
	svc := NewFinanceService(testLogger())
	resp := svc.EMI(models.EMIRequest{Principal: 120000, InterestRate: 0, TenureValue: 1, TenureType: "years"})
	if resp.TenureMonths != 12 {
		t.Errorf("Expected 12 months, got %d", resp.TenureMonths)
	}
	if resp.EMI != 10000 {
		t.Errorf("Expected EMI 10000, got %f", resp.EMI)
	}
}
