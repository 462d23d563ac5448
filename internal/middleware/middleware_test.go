package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type fakeParser struct {
	valid  string
	userID uuid.UUID
}

func (f fakeParser) ParseToken(token string) (uuid.UUID, error) {
	if token != f.valid {
		return uuid.Nil, errors.New("bad token")
	}
	return f.userID, nil
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()
	parser := fakeParser{valid: "good", userID: userID}

	var seen uuid.UUID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := UserIDFromContext(r.Context())
		if !ok {
			t.Error("Expected user ID in context")
		}
		seen = id
		w.WriteHeader(http.StatusNoContent)
	})
	h := AuthMiddleware(parser, quietLogger())(next)

	tests := []struct {
		header string
		want   int
	}{
		{"", http.StatusUnauthorized},
		{"good", http.StatusUnauthorized},
		{"Basic good", http.StatusUnauthorized},
		{"Bearer ", http.StatusUnauthorized},
		{"Bearer bad", http.StatusUnauthorized},
		{"Bearer good", http.StatusNoContent},
		{"bearer good", http.StatusNoContent},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.header != "" {
			req.Header.Set("Authorization", tt.header)
		}
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		if rr.Code != tt.want {
			t.Errorf("%q: expected %d, got %d", tt.header, tt.want, rr.Code)
		}
		if rr.Code == http.StatusUnauthorized {
			var body map[string]string
			if err := json.NewDecoder(rr.Body).Decode(&body); err != nil || body["error"] == "" {
				t.Errorf("%q: expected JSON error body, got %q", tt.header, rr.Body.String())
			}
		}
	}
	if seen != userID {
		t.Errorf("Expected %s in context, got %s", userID, seen)
	}
}

func TestUserIDFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := UserIDFromContext(req.Context()); ok {
		t.Error("Expected no user ID")
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	h := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/finance", nil))

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected one JSON log line, got %q", buf.String())
	}
	if entry["method"] != "POST" || entry["path"] != "/api/finance" || entry["status"] != float64(http.StatusTeapot) {
		t.Errorf("Unexpected log entry %v", entry)
	}
}
