package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Dan9191/finance-sage/internal/models"
)

// MemoryStore keeps everything in process memory; data resets on restart
type MemoryStore struct {
	mu         sync.RWMutex
	properties []models.Property
	bookings   map[uuid.UUID]models.Booking
	payments   map[uuid.UUID]models.Payment
	users      map[uuid.UUID]models.User
}

// NewMemoryStore initializes a store holding properties
func NewMemoryStore(properties []models.Property) *MemoryStore {
	return &MemoryStore{
		properties: properties,
		bookings:   make(map[uuid.UUID]models.Booking),
		payments:   make(map[uuid.UUID]models.Payment),
		users:      make(map[uuid.UUID]models.User),
	}
}

// ListProperties returns all properties in catalogue order
func (s *MemoryStore) ListProperties(ctx context.Context) ([]models.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Property, len(s.properties))
	copy(out, s.properties)
	return out, nil
}

// FindPropertyByID retrieves a property
func (s *MemoryStore) FindPropertyByID(ctx context.Context, id string) (*models.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.properties {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

// CreateBooking stores a new booking, holding the lock across the
// availability check
func (s *MemoryStore) CreateBooking(ctx context.Context, booking *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.bookings[booking.ID]; exists {
		return ErrDuplicate
	}
	if s.exclusive(booking.PropertyID) {
		for _, b := range s.bookings {
			if b.PropertyID == booking.PropertyID && b.Status != models.BookingCancelled &&
				booking.CheckIn.Before(b.CheckOut) && b.CheckIn.Before(booking.CheckOut) {
				return ErrUnavailable
			}
		}
	}
	s.bookings[booking.ID] = *booking
	return nil
}

func (s *MemoryStore) exclusive(propertyID string) bool {
	for _, p := range s.properties {
		if p.ID == propertyID {
			return p.Exclusive
		}
	}
	return false
}

// FindBookingByID retrieves a booking
func (s *MemoryStore) FindBookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &b, nil
}

// UpdateBookingStatus moves a booking from one status to another
func (s *MemoryStore) UpdateBookingStatus(ctx context.Context, id uuid.UUID, from, to string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return ErrNotFound
	}
	if b.Status != from {
		return ErrStatusChanged
	}
	b.Status = to
	b.UpdatedAt = at
	s.bookings[id] = b
	return nil
}

// ListActiveBookings returns non-cancelled bookings of a property ordered by check-in
func (s *MemoryStore) ListActiveBookings(ctx context.Context, propertyID string) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Booking
	for _, b := range s.bookings {
		if b.PropertyID == propertyID && b.Status != models.BookingCancelled {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CheckIn.Before(out[j].CheckIn) })
	return out, nil
}

// ListPendingBefore returns pending bookings created before cutoff
func (s *MemoryStore) ListPendingBefore(ctx context.Context, cutoff time.Time) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Booking
	for _, b := range s.bookings {
		if b.Status == models.BookingPending && b.CreatedAt.Before(cutoff) {
			out = append(out, b)
		}
	}
	return out, nil
}

// CreatePayment stores a payment record
func (s *MemoryStore) CreatePayment(ctx context.Context, payment *models.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments[payment.ID] = *payment
	return nil
}

// CreateUser stores a new user; emails are unique case-insensitively
func (s *MemoryStore) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, user.Email) || u.Username == user.Username {
			return ErrDuplicate
		}
	}
	s.users[user.ID] = *user
	return nil
}

// FindUserByEmail retrieves a user by email
func (s *MemoryStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

// FindUserByID retrieves a user by ID
func (s *MemoryStore) FindUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}
