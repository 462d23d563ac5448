package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Booking statuses
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// DateLayout is the wire format of check-in/check-out dates
const DateLayout = "2006-01-02"

// Property is a rentable stay
type Property struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Location    string          `json:"location"`
	Price       decimal.Decimal `json:"price"` // per night
	Images      []string        `json:"images"`
	Amenities   []string        `json:"amenities"`
	MaxGuests   int             `json:"maxGuests"`
	Bedrooms    int             `json:"bedrooms"`
	Bathrooms   int             `json:"bathrooms"`
	Exclusive   bool            `json:"exclusive"`
}

// Booking is a reservation of a property for a date range
type Booking struct {
	ID         uuid.UUID       `json:"id"`
	PropertyID string          `json:"propertyId"`
	UserID     uuid.UUID       `json:"userId"`
	CheckIn    time.Time       `json:"-"`
	CheckOut   time.Time       `json:"-"`
	Guests     int             `json:"guests"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// Nights is the number of nights covered by the booking
func (b Booking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}

// NightDates lists each occupied night in DateLayout
func (b Booking) NightDates() []string {
	var dates []string
	for d := b.CheckIn; d.Before(b.CheckOut); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(DateLayout))
	}
	return dates
}

// BookingView is the JSON shape of a booking
type BookingView struct {
	Booking
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

// View renders dates in DateLayout
func (b Booking) View() BookingView {
	return BookingView{
		Booking:  b,
		CheckIn:  b.CheckIn.Format(DateLayout),
		CheckOut: b.CheckOut.Format(DateLayout),
	}
}

// CreateBookingRequest is the body of POST /api/bookings
type CreateBookingRequest struct {
	PropertyID string           `json:"propertyId"`
	CheckIn    string           `json:"checkIn"`
	CheckOut   string           `json:"checkOut"`
	Guests     int              `json:"guests"`
	TotalPrice *decimal.Decimal `json:"totalPrice"`
}

// PaymentCard is the card entered on the payment form
type PaymentCard struct {
	Number string `json:"number"`
	Holder string `json:"holder"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
}

// PaymentRequest is the body of POST /api/payment
type PaymentRequest struct {
	BookingID     string       `json:"bookingId"`
	PaymentMethod string       `json:"paymentMethod"`
	Card          *PaymentCard `json:"card,omitempty"`
}

// Payment records a processed (mock) payment
type Payment struct {
	ID         uuid.UUID       `json:"id"`
	BookingID  uuid.UUID       `json:"bookingId"`
	Amount     decimal.Decimal `json:"amount"`
	Method     string          `json:"method"`
	MaskedCard string          `json:"maskedCard,omitempty"`
	SealedCard string          `json:"-"`
	HMAC       string          `json:"-"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// PaymentResponse is returned by POST /api/payment
type PaymentResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Booking BookingView `json:"booking"`
}

// AvailabilityResponse lists nights already taken on exclusive stays
type AvailabilityResponse struct {
	BookedDates []string `json:"bookedDates"`
}
