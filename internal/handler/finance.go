package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/finance-sage/internal/models"
	"github.com/Dan9191/finance-sage/internal/service"
)

// FinanceHandler serves the questionnaire recommendation routes
type FinanceHandler struct {
	financeService *service.FinanceService
	logger         *logrus.Logger
}

func NewFinanceHandler(financeService *service.FinanceService, logger *logrus.Logger) *FinanceHandler {
	return &FinanceHandler{
		financeService: financeService,
		logger:         logger,
	}
}

func (h *FinanceHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/finance", h.Recommend).Methods("POST")
	router.HandleFunc("/finance/emi", h.EMI).Methods("POST")
}

// Recommend answers 200 with a recommendation, or 500 with the fixed
// failure body when the payload cannot be read or anything goes wrong.
func (h *FinanceHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			h.logger.WithField("panic", rec).Error("Recommendation panicked")
			writeJSON(w, http.StatusInternalServerError, service.FailureResponse())
		}
	}()

	var req models.FinanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.WithError(err).Error("Failed to decode finance request")
		writeJSON(w, http.StatusInternalServerError, service.FailureResponse())
		return
	}

	body, err := json.Marshal(h.financeService.Recommend(req))
	if err != nil {
		h.logger.WithError(err).Error("Failed to encode recommendation")
		writeJSON(w, http.StatusInternalServerError, service.FailureResponse())
		return
	}
	writeBody(w, http.StatusOK, body)
}

func (h *FinanceHandler) EMI(w http.ResponseWriter, r *http.Request) {
	var req models.EMIRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithError(err).Error("Failed to decode EMI request")
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	writeJSON(w, http.StatusOK, h.financeService.EMI(req))
}
