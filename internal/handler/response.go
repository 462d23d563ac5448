package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/Dan9191/finance-sage/internal/repository"
	"github.com/Dan9191/finance-sage/internal/service"
)

// writeJSON encodes v before touching the response so an unencodable value
// becomes a 500 rather than an empty body under the intended status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		body, status = []byte(`{"error":"Internal server error"}`), http.StatusInternalServerError
	}
	writeBody(w, status, body)
}

func writeBody(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps service and store errors to status codes.
// notFound is the message used for repository.ErrNotFound.
func writeServiceError(w http.ResponseWriter, logger *logrus.Logger, err error, notFound string) {
	var svcErr *service.Error
	switch {
	case errors.As(err, &svcErr) && errors.Is(svcErr.Kind, service.ErrValidation):
		writeError(w, http.StatusBadRequest, svcErr.Message)
	case errors.As(err, &svcErr) && errors.Is(svcErr.Kind, service.ErrConflict):
		writeError(w, http.StatusConflict, svcErr.Message)
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, notFound)
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, service.ErrForbidden):
		writeError(w, http.StatusForbidden, "Forbidden")
	default:
		logger.WithError(err).Error("Request failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
