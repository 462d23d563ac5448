package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/finance-sage/internal/config"
	"github.com/Dan9191/finance-sage/internal/models"
	"github.com/Dan9191/finance-sage/internal/repository"
	"github.com/Dan9191/finance-sage/internal/utils"
)

// Fixed texts of the booking routes
const (
	MissingFieldsMessage  = "Missing required fields"
	PaymentSuccessMessage = "Payment processed successfully"
)

// Notifier delivers booking confirmations
type Notifier interface {
	SendBookingConfirmation(to, username string, booking models.Booking, property models.Property) error
}

// PropertySearcher finds property IDs by free text
type PropertySearcher interface {
	Search(query string, limit int) ([]string, error)
}

// BookingService handles the stays booking demo
type BookingService struct {
	store    repository.Store
	notifier Notifier
	searcher PropertySearcher
	cfg      *config.Config
	log      *logrus.Logger
	now      func() time.Time
}

// NewBookingService initializes a new booking service; searcher may be nil
func NewBookingService(store repository.Store, notifier Notifier, searcher PropertySearcher, cfg *config.Config, log *logrus.Logger) *BookingService {
	return &BookingService{
		store:    store,
		notifier: notifier,
		searcher: searcher,
		cfg:      cfg,
		log:      log,
		now:      time.Now,
	}
}

// ListProperties returns the catalogue, narrowed by a free-text query when one is given
func (s *BookingService) ListProperties(ctx context.Context, query string) ([]models.Property, error) {
	properties, err := s.store.ListProperties(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	if strings.TrimSpace(query) == "" || s.searcher == nil {
		return properties, nil
	}

	ids, err := s.searcher.Search(query, len(properties))
	if err != nil {
		return nil, fmt.Errorf("failed to search properties: %w", err)
	}
	byID := make(map[string]models.Property, len(properties))
	for _, p := range properties {
		byID[p.ID] = p
	}
	out := make([]models.Property, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// GetProperty retrieves one property
func (s *BookingService) GetProperty(ctx context.Context, id string) (*models.Property, error) {
	return s.store.FindPropertyByID(ctx, id)
}

// CreateBooking validates and stores a pending booking for the user
func (s *BookingService) CreateBooking(ctx context.Context, userID uuid.UUID, req models.CreateBookingRequest) (*models.Booking, error) {
	if req.PropertyID == "" || req.CheckIn == "" || req.CheckOut == "" || req.Guests <= 0 ||
		req.TotalPrice == nil || !req.TotalPrice.IsPositive() {
		return nil, invalid(MissingFieldsMessage)
	}

	checkIn, err := time.Parse(models.DateLayout, req.CheckIn)
	if err != nil {
		return nil, invalid("checkIn must be a YYYY-MM-DD date")
	}
	checkOut, err := time.Parse(models.DateLayout, req.CheckOut)
	if err != nil {
		return nil, invalid("checkOut must be a YYYY-MM-DD date")
	}
	if !checkOut.After(checkIn) {
		return nil, invalid("checkOut must be after checkIn")
	}

	property, err := s.store.FindPropertyByID(ctx, req.PropertyID)
	if err != nil {
		return nil, err
	}
	if req.Guests > property.MaxGuests {
		return nil, invalid(fmt.Sprintf("This property allows at most %d guests", property.MaxGuests))
	}

	now := s.now().UTC()
	booking := &models.Booking{
		ID:         uuid.New(),
		PropertyID: property.ID,
		UserID:     userID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     req.Guests,
		TotalPrice: *req.TotalPrice,
		Status:     models.BookingPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	err = s.store.CreateBooking(ctx, booking)
	if errors.Is(err, repository.ErrUnavailable) {
		return nil, conflict("Selected dates are not available")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"booking_id":  booking.ID,
		"property_id": property.ID,
		"user_id":     userID,
		"nights":      booking.Nights(),
	}).Info("Booking created")
	return booking, nil
}

// GetBooking retrieves a booking by its string ID
func (s *BookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	bookingID, err := uuid.Parse(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	return s.store.FindBookingByID(ctx, bookingID)
}

// ProcessPayment records a mock payment and confirms the booking
func (s *BookingService) ProcessPayment(ctx context.Context, userID uuid.UUID, req models.PaymentRequest) (*models.PaymentResponse, error) {
	if req.BookingID == "" || req.PaymentMethod == "" {
		return nil, invalid(MissingFieldsMessage)
	}

	booking, err := s.GetBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, ErrForbidden
	}
	if booking.Status != models.BookingPending {
		return nil, conflict(fmt.Sprintf("Booking is already %s", booking.Status))
	}

	payment := &models.Payment{
		ID:        uuid.New(),
		BookingID: booking.ID,
		Amount:    booking.TotalPrice,
		Method:    req.PaymentMethod,
		CreatedAt: s.now().UTC(),
	}
	if req.Card != nil {
		if err := s.secureCard(payment, req.Card); err != nil {
			return nil, err
		}
	}

	// Claim the booking first so a concurrent payment or expiry loses the race.
	err = s.store.UpdateBookingStatus(ctx, booking.ID, models.BookingPending, models.BookingConfirmed, payment.CreatedAt)
	if errors.Is(err, repository.ErrStatusChanged) {
		return nil, s.statusConflict(ctx, booking.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to confirm booking: %w", err)
	}
	if err := s.store.CreatePayment(ctx, payment); err != nil {
		if rerr := s.store.UpdateBookingStatus(ctx, booking.ID, models.BookingConfirmed, models.BookingPending, s.now().UTC()); rerr != nil {
			s.log.WithError(rerr).WithField("booking_id", booking.ID).Error("Failed to release booking after payment error")
		}
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	booking.Status = models.BookingConfirmed
	booking.UpdatedAt = payment.CreatedAt

	s.log.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"payment_id": payment.ID,
		"method":     payment.Method,
		"amount":     payment.Amount.StringFixed(2),
	}).Info("Payment processed")

	s.notify(ctx, *booking)

	return &models.PaymentResponse{
		Success: true,
		Message: PaymentSuccessMessage,
		Booking: booking.View(),
	}, nil
}

// statusConflict reports the status a booking moved to under us
func (s *BookingService) statusConflict(ctx context.Context, id uuid.UUID) error {
	current, err := s.store.FindBookingByID(ctx, id)
	if err != nil {
		return conflict("Booking is no longer pending")
	}
	return conflict(fmt.Sprintf("Booking is already %s", current.Status))
}

func (s *BookingService) secureCard(payment *models.Payment, card *models.PaymentCard) error {
	digits, err := utils.NormalizeCardNumber(card.Number)
	if err != nil {
		return invalid("Invalid card number")
	}
	sealed, err := utils.Seal(digits, s.cfg.EncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to seal card: %w", err)
	}
	payment.MaskedCard = utils.MaskCardNumber(digits)
	payment.SealedCard = sealed
	payment.HMAC = utils.CardFingerprint(digits, card.Expiry, s.cfg.HMACSecret)
	return nil
}

// notify is best effort: the payment already went through
func (s *BookingService) notify(ctx context.Context, booking models.Booking) {
	logger := s.log.WithField("booking_id", booking.ID)

	user, err := s.store.FindUserByID(ctx, booking.UserID)
	if err != nil {
		logger.WithError(err).Warn("Booking owner not found, skipping confirmation")
		return
	}
	property, err := s.store.FindPropertyByID(ctx, booking.PropertyID)
	if err != nil {
		logger.WithError(err).Warn("Booked property not found, skipping confirmation")
		return
	}
	if err := s.notifier.SendBookingConfirmation(user.Email, user.Username, booking, *property); err != nil {
		logger.WithError(err).Error("Failed to send booking confirmation")
	}
}

// ExclusiveAvailability lists nights already held on exclusive properties
func (s *BookingService) ExclusiveAvailability(ctx context.Context) (*models.AvailabilityResponse, error) {
	properties, err := s.store.ListProperties(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	seen := make(map[string]struct{})
	for _, p := range properties {
		if !p.Exclusive {
			continue
		}
		bookings, err := s.store.ListActiveBookings(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list bookings: %w", err)
		}
		for _, b := range bookings {
			for _, d := range b.NightDates() {
				seen[d] = struct{}{}
			}
		}
	}

	dates := make([]string, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return &models.AvailabilityResponse{BookedDates: dates}, nil
}

// ExpireStale cancels pending bookings older than the hold TTL and
// returns how many were cancelled.
func (s *BookingService) ExpireStale(ctx context.Context) (int, error) {
	now := s.now().UTC()
	stale, err := s.store.ListPendingBefore(ctx, now.Add(-s.cfg.BookingHoldTTL))
	if err != nil {
		return 0, fmt.Errorf("failed to list pending bookings: %w", err)
	}

	cancelled := 0
	for _, b := range stale {
		// A booking paid since the listing is left alone.
		err := s.store.UpdateBookingStatus(ctx, b.ID, models.BookingPending, models.BookingCancelled, now)
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrStatusChanged) {
			continue
		}
		if err != nil {
			return cancelled, fmt.Errorf("failed to cancel booking %s: %w", b.ID, err)
		}
		cancelled++
	}

	if cancelled > 0 {
		s.log.WithField("count", cancelled).Info("Expired stale bookings")
	}
	return cancelled, nil
}
