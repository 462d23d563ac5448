package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/finance-sage/internal/middleware"
	"github.com/Dan9191/finance-sage/internal/models"
	"github.com/Dan9191/finance-sage/internal/service"
)

const (
	propertyNotFound = "Property not found"
	bookingNotFound  = "Booking not found"
)

// BookingHandler serves the stays booking routes
type BookingHandler struct {
	bookingService *service.BookingService
	logger         *logrus.Logger
}

func NewBookingHandler(bookingService *service.BookingService, logger *logrus.Logger) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		logger:         logger,
	}
}

// RegisterRoutes mounts the read routes publicly and the write routes
// behind auth.
func (h *BookingHandler) RegisterRoutes(router *mux.Router, auth mux.MiddlewareFunc) {
	router.HandleFunc("/properties", h.ListProperties).Methods("GET")
	router.HandleFunc("/properties/{id}", h.GetProperty).Methods("GET")
	router.HandleFunc("/bookings/{id}", h.GetBooking).Methods("GET")
	router.HandleFunc("/exclusive-availability", h.ExclusiveAvailability).Methods("GET")

	secured := router.NewRoute().Subrouter()
	secured.Use(auth)
	secured.HandleFunc("/bookings", h.CreateBooking).Methods("POST")
	secured.HandleFunc("/payment", h.ProcessPayment).Methods("POST")
}

func (h *BookingHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	properties, err := h.bookingService.ListProperties(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeServiceError(w, h.logger, err, propertyNotFound)
		return
	}
	writeJSON(w, http.StatusOK, properties)
}

func (h *BookingHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	property, err := h.bookingService.GetProperty(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, h.logger, err, propertyNotFound)
		return
	}
	writeJSON(w, http.StatusOK, property)
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req models.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithError(err).Error("Failed to decode booking request")
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	booking, err := h.bookingService.CreateBooking(r.Context(), userID, req)
	if err != nil {
		writeServiceError(w, h.logger, err, propertyNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, booking.View())
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	booking, err := h.bookingService.GetBooking(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, h.logger, err, bookingNotFound)
		return
	}
	writeJSON(w, http.StatusOK, booking.View())
}

func (h *BookingHandler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req models.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithError(err).Error("Failed to decode payment request")
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	resp, err := h.bookingService.ProcessPayment(r.Context(), userID, req)
	if err != nil {
		writeServiceError(w, h.logger, err, bookingNotFound)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *BookingHandler) ExclusiveAvailability(w http.ResponseWriter, r *http.Request) {
	resp, err := h.bookingService.ExclusiveAvailability(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err, propertyNotFound)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
