package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Dan9191/finance-sage/internal/models"
)

var (
	// ErrNotFound is returned when a record does not exist
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a unique field is already taken
	ErrDuplicate = errors.New("already exists")
	// ErrUnavailable is returned when an exclusive property is already held for some of the nights
	ErrUnavailable = errors.New("dates unavailable")
	// ErrStatusChanged is returned when a booking is no longer in the expected status
	ErrStatusChanged = errors.New("booking status changed")
)

// PropertyStore provides access to rentable properties
type PropertyStore interface {
	ListProperties(ctx context.Context) ([]models.Property, error)
	FindPropertyByID(ctx context.Context, id string) (*models.Property, error)
}

// BookingStore provides access to bookings and their payments.
// CreateBooking fails with ErrUnavailable when the property is exclusive and
// a non-cancelled booking holds any of the nights; the check and the insert
// are atomic. UpdateBookingStatus moves a booking from one status to another
// and fails with ErrStatusChanged when it is not in status from.
type BookingStore interface {
	CreateBooking(ctx context.Context, booking *models.Booking) error
	FindBookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id uuid.UUID, from, to string, at time.Time) error
	ListActiveBookings(ctx context.Context, propertyID string) ([]models.Booking, error)
	ListPendingBefore(ctx context.Context, cutoff time.Time) ([]models.Booking, error)
	CreatePayment(ctx context.Context, payment *models.Payment) error
}

// UserStore provides access to accounts
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// Store is everything the booking demo persists
type Store interface {
	PropertyStore
	BookingStore
	UserStore
}
