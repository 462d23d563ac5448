package handler

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// KeyRateSource returns the central bank key rate in percent
type KeyRateSource interface {
	GetKeyRate(ctx context.Context) (float64, error)
}

// KeyRateHandler exposes the reference rate users compare loans against
type KeyRateHandler struct {
	source KeyRateSource
	logger *logrus.Logger
}

func NewKeyRateHandler(source KeyRateSource, logger *logrus.Logger) *KeyRateHandler {
	return &KeyRateHandler{source: source, logger: logger}
}

func (h *KeyRateHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/key-rate", h.GetKeyRate).Methods("GET")
}

func (h *KeyRateHandler) GetKeyRate(w http.ResponseWriter, r *http.Request) {
	rate, err := h.source.GetKeyRate(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to get key rate")
		writeError(w, http.StatusInternalServerError, "Failed to get key rate")
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"key_rate": rate})
}
