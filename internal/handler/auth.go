package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/finance-sage/internal/models"
	"github.com/Dan9191/finance-sage/internal/service"
)

// AuthHandler serves sign-up and sign-in
type AuthHandler struct {
	authService *service.AuthService
	logger      *logrus.Logger
}

func NewAuthHandler(authService *service.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

func (h *AuthHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/signup", h.SignUp).Methods("POST")
	router.HandleFunc("/signin", h.SignIn).Methods("POST")
}

func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var in models.SignUpInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.logger.WithError(err).Error("Failed to decode signup request")
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := h.authService.SignUp(r.Context(), in)
	if err != nil {
		writeServiceError(w, h.logger, err, "User not found")
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var in models.SignInInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.logger.WithError(err).Error("Failed to decode signin request")
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	token, err := h.authService.SignIn(r.Context(), in)
	if err != nil {
		writeServiceError(w, h.logger, err, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
