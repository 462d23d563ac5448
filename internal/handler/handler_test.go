package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Dan9191/finance-sage/internal/config"
	"github.com/Dan9191/finance-sage/internal/models"
	"github.com/Dan9191/finance-sage/internal/repository"
	"github.com/Dan9191/finance-sage/internal/service"
)

type fakeKeyRate struct {
	rate float64
	err  error
}

func (f fakeKeyRate) GetKeyRate(ctx context.Context) (float64, error) {
	return f.rate, f.err
}

type nopNotifier struct{}

func (nopNotifier) SendBookingConfirmation(to, username string, booking models.Booking, property models.Property) error {
	return nil
}

func newTestServer(t *testing.T, keyRate KeyRateSource) *httptest.Server {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := &config.Config{
		JWTSecret:      "test-secret",
		TokenExpiry:    time.Hour,
		HMACSecret:     "hmac-secret",
		EncryptionKey:  []byte("0123456789abcdef0123456789abcdef"),
		BookingHoldTTL: 30 * time.Minute,
	}
	store := repository.NewMemoryStore(repository.SeedProperties())

	router := NewRouter(Services{
		Finance: service.NewFinanceService(logger),
		Booking: service.NewBookingService(store, nopNotifier{}, nil, cfg, logger),
		Auth:    service.NewAuthService(store, logger, cfg),
		KeyRate: keyRate,
	}, logger)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url, token, body string) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	return resp, data
}

func decode(t *testing.T, data []byte, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("Failed to decode %q: %v", data, err)
	}
}

func TestFinance_EmptyBody(t *testing.T) {
	srv := newTestServer(t, fakeKeyRate{})

	resp, data := do(t, http.MethodPost, srv.URL+"/api/finance", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	var got models.FinanceResponse
	decode(t, data, &got)
	if got != service.NoQuizResponse() {
		t.Errorf("Expected no-quiz response, got %+v", got)
	}
}

func TestFinance_MalformedJSON(t *testing.T) {
	srv := newTestServer(t, fakeKeyRate{})

	for _, body := range []string{"{not json", `{"income": "lots"}`} {
		resp, data := do(t, http.MethodPost, srv.URL+"/api/finance", "", body)
		if resp.StatusCode != http.StatusInternalServerError {
			t.Errorf("%s: expected 500, got %d", body, resp.StatusCode)
		}
		var got models.FinanceResponse
		decode(t, data, &got)
		if got != service.FailureResponse() {
			t.Errorf("%s: expected failure response, got %+v", body, got)
		}
	}
}

func TestFinance_FalsyQuizMeansNoQuiz(t *testing.T) {
	srv := newTestServer(t, fakeKeyRate{})

	for _, quiz := range []string{"null", "false", `""`, "0"} {
		body := `{"income": {"inhandIncome": 50000}, "riskQuiz": ` + quiz + `}`
		resp, data := do(t, http.MethodPost, srv.URL+"/api/finance", "", body)
		if resp.StatusCode != http.StatusOK {
			t.Errorf("riskQuiz %s: expected 200, got %d", quiz, resp.StatusCode)
			continue
		}
		var got models.FinanceResponse
		decode(t, data, &got)
		if got != service.NoQuizResponse() {
			t.Errorf("riskQuiz %s: expected no-quiz response, got %+v", quiz, got)
		}
	}
}

func TestFinance_NonFiniteInputsStayValidJSON(t *testing.T) {
	srv := newTestServer(t, fakeKeyRate{})

	body := `{
		"income": {"inhandIncome": "NaN", "otherIncome": "Infinity"},
		"investments": {"gold": "NaN"},
		"debt": {"hasDebt": "yes", "loans": [{"type": "Home", "principal": 100000, "interest": 12, "tenureValue": 100000, "tenureType": "years"}]},
		"riskQuiz": {"demographics": {"ageGroup": "26-35"}}
	}`
	resp, data := do(t, http.MethodPost, srv.URL+"/api/finance", "", body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", resp.StatusCode, data)
	}
	if len(data) == 0 || !json.Valid(data) {
		t.Fatalf("Expected a JSON body, got %q", data)
	}
	var got models.FinanceResponse
	decode(t, data, &got)
	if !got.Success || got.Strategies == nil {
		t.Fatalf("Unexpected response %+v", got)
	}
	if emi := got.Strategies.Metrics.TotalEMI; math.Abs(emi-1000) > 1e-6 {
		t.Errorf("Expected EMI near 1000, got %v", emi)
	}
}

func TestFinance_UnencodableResultIsFailure(t *testing.T) {
	srv := newTestServer(t, fakeKeyRate{})

	// finite inputs whose sum overflows
	body := `{"income": {"inhandIncome": 1e308, "otherIncome": 1e308}, "riskQuiz": {"demographics": {"ageGroup": "18-25"}}}`
	resp, data := do(t, http.MethodPost, srv.URL+"/api/finance", "", body)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d: %s", resp.StatusCode, data)
	}
	var got models.FinanceResponse
	decode(t, data, &got)
	if got != service.FailureResponse() {
		t.Errorf("Expected failure response, got %+v", got)
	}
}

func TestFinance_WithQuiz(t *testing.T) {
	srv := newTestServer(t, fakeKeyRate{})

	body := `{
		"income": {"inhandIncome": "1,00,000"},
		"debt": {"hasDebt": "yes", "loans": [{"type": "Home", "principal": "5000000", "interest": "8.5", "tenureValue": "20", "tenureType": "years"}]},
		"riskQuiz": {"demographics": {"ageGroup": "51-65"}, "knowledgeLevel": "Advanced", "behavior": "Moderate", "downturnReaction": "Buy More"}
	}`
	resp, data := do(t, http.MethodPost, srv.URL+"/api/finance", "", body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", resp.StatusCode, data)
	}
	var got models.FinanceResponse
	decode(t, data, &got)
	if !got.Success || got.Strategies == nil {
		t.Fatalf("Expected structured success, got %+v", got)
	}
	if got.Strategies.Metrics.TotalEMI <= 0 {
		t.Errorf("Expected loan EMI in metrics, got %f", got.Strategies.Metrics.TotalEMI)
	}
	if got.Comparison != service.Unknown {
		t.Errorf("Expected %q comparison without investments, got %q", service.Unknown, got.Comparison)
	}
}

func TestFinance_EMI(t *testing.T) {
	srv := newTestServer(t, fakeKeyRate{})

	resp, data := do(t, http.MethodPost, srv.URL+"/api/finance/emi", "", `{"principal": 120000, "interest": 0, "tenureValue": 12, "tenureType": "months"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	var got models.EMIResponse
	decode(t, data, &got)
	if got.EMI != 10000 || got.TenureMonths != 12 {
		t.Errorf("Unexpected EMI response %+v", got)
	}

	resp, data = do(t, http.MethodPost, srv.URL+"/api/finance/emi", "", `{"principal": 100000, "interest": 12, "tenureValue": 100000, "tenureType": "years"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200 for long tenure, got %d", resp.StatusCode)
	}
	got = models.EMIResponse{}
	decode(t, data, &got)
	if math.Abs(got.EMI-1000) > 1e-6 || got.TenureMonths != 1200000 {
		t.Errorf("Unexpected long tenure EMI response %+v", got)
	}

	resp, _ = do(t, http.MethodPost, srv.URL+"/api/finance/emi", "", "[")
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected 400 for malformed body, got %d", resp.StatusCode)
	}
}

func TestKeyRate(t *testing.T) {
	srv := newTestServer(t, fakeKeyRate{rate: 16.5})
	resp, data := do(t, http.MethodGet, srv.URL+"/api/key-rate", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	var got map[string]float64
	decode(t, data, &got)
	if got["key_rate"] != 16.5 {
		t.Errorf("Expected 16.5, got %v", got)
	}

	failing := newTestServer(t, fakeKeyRate{err: errors.New("upstream down")})
	resp, _ = do(t, http.MethodGet, failing.URL+"/api/key-rate", "", "")
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("Expected 500, got %d", resp.StatusCode)
	}
}

func TestProperties(t *testing.T) {
	srv := newTestServer(t, fakeKeyRate{})

	resp, data := do(t, http.MethodGet, srv.URL+"/api/properties", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	var list []models.Property
	decode(t, data, &list)
	if len(list) != len(repository.SeedProperties()) {
		t.Errorf("Expected %d properties, got %d", len(repository.SeedProperties()), len(list))
	}

	resp, data = do(t, http.MethodGet, srv.URL+"/api/properties/2", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	var p models.Property
	decode(t, data, &p)
	if p.Title != "Modern Beach House" {
		t.Errorf("Unexpected property %+v", p)
	}

	resp, data = do(t, http.MethodGet, srv.URL+"/api/properties/404", "", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", resp.StatusCode)
	}
	var e map[string]string
	decode(t, data, &e)
	if e["error"] != "Property not found" {
		t.Errorf("Unexpected error body %v", e)
	}
}

func signUpAndIn(t *testing.T, baseURL string) string {
	t.Helper()
	resp, data := do(t, http.MethodPost, baseURL+"/auth/signup", "", `{"email": "guest@example.com", "username": "guest", "password": "password123"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Signup: expected 201, got %d: %s", resp.StatusCode, data)
	}
	if bytes.Contains(data, []byte("password")) {
		t.Errorf("Signup response leaks password data: %s", data)
	}

	resp, data = do(t, http.MethodPost, baseURL+"/auth/signin", "", `{"email": "guest@example.com", "password": "password123"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Signin: expected 200, got %d: %s", resp.StatusCode, data)
	}
	var got map[string]string
	decode(t, data, &got)
	if got["token"] == "" {
		t.Fatal("Expected token")
	}
	return got["token"]
}

func TestAuth_Errors(t *testing.T) {
	srv := newTestServer(t, fakeKeyRate{})
	signUpAndIn(t, srv.URL)

	tests := []struct {
		path, body string
		want       int
	}{
		{"/auth/signup", `{"email": "guest@example.com", "username": "other", "password": "password123"}`, http.StatusConflict},
		{"/auth/signup", `{"email": "bad", "username": "other", "password": "password123"}`, http.StatusBadRequest},
		{"/auth/signup", `{`, http.StatusBadRequest},
		{"/auth/signin", `{"email": "guest@example.com", "password": "nope-nope"}`, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		resp, data := do(t, http.MethodPost, srv.URL+tt.path, "", tt.body)
		if resp.StatusCode != tt.want {
			t.Errorf("%s %s: expected %d, got %d: %s", tt.path, tt.body, tt.want, resp.StatusCode, data)
		}
	}
}

func TestBookingFlow(t *testing.T) {
	srv := newTestServer(t, fakeKeyRate{})
	token := signUpAndIn(t, srv.URL)

	booking := `{"propertyId": "glamping", "checkIn": "2026-11-01", "checkOut": "2026-11-03", "guests": 2, "totalPrice": 360}`

	resp, _ := do(t, http.MethodPost, srv.URL+"/api/bookings", "", booking)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected 401 without token, got %d", resp.StatusCode)
	}

	resp, data := do(t, http.MethodPost, srv.URL+"/api/bookings", token, `{"propertyId": "glamping"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing fields, got %d", resp.StatusCode)
	}
	var e map[string]string
	decode(t, data, &e)
	if e["error"] != "Missing required fields" {
		t.Errorf("Unexpected error body %v", e)
	}

	resp, data = do(t, http.MethodPost, srv.URL+"/api/bookings", token, booking)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", resp.StatusCode, data)
	}
	var created models.BookingView
	decode(t, data, &created)
	if created.Status != models.BookingPending || created.CheckIn != "2026-11-01" {
		t.Errorf("Unexpected booking %+v", created)
	}

	resp, _ = do(t, http.MethodPost, srv.URL+"/api/bookings", token, booking)
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("Expected 409 for overlapping exclusive booking, got %d", resp.StatusCode)
	}

	resp, data = do(t, http.MethodGet, srv.URL+"/api/bookings/"+created.ID.String(), "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	resp, data = do(t, http.MethodGet, srv.URL+"/api/bookings/unknown", "", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", resp.StatusCode)
	}
	decode(t, data, &e)
	if e["error"] != "Booking not found" {
		t.Errorf("Unexpected error body %v", e)
	}

	payment := `{"bookingId": "` + created.ID.String() + `", "paymentMethod": "card", "card": {"number": "4242-4242-4242-4242", "holder": "Guest", "expiry": "01/30", "cvv": "999"}}`
	resp, data = do(t, http.MethodPost, srv.URL+"/api/payment", token, payment)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", resp.StatusCode, data)
	}
	var paid models.PaymentResponse
	decode(t, data, &paid)
	if !paid.Success || paid.Message != "Payment processed successfully" || paid.Booking.Status != models.BookingConfirmed {
		t.Errorf("Unexpected payment response %+v", paid)
	}
	if bytes.Contains(data, []byte("4242-4242")) {
		t.Errorf("Payment response leaks card number: %s", data)
	}

	resp, data = do(t, http.MethodGet, srv.URL+"/api/exclusive-availability", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	var avail models.AvailabilityResponse
	decode(t, data, &avail)
	if strings.Join(avail.BookedDates, ",") != "2026-11-01,2026-11-02" {
		t.Errorf("Unexpected booked dates %v", avail.BookedDates)
	}
}
