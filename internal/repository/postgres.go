package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/Dan9191/finance-sage/internal/models"
)

// uniqueViolation is the PostgreSQL error code for unique constraint failures
const uniqueViolation = "23505"

const schema = `
CREATE SCHEMA IF NOT EXISTS sage;

CREATE TABLE IF NOT EXISTS sage.properties (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	description TEXT NOT NULL,
	location    TEXT NOT NULL,
	price       NUMERIC(12, 2) NOT NULL,
	images      TEXT[] NOT NULL DEFAULT '{}',
	amenities   TEXT[] NOT NULL DEFAULT '{}',
	max_guests  INT NOT NULL,
	bedrooms    INT NOT NULL,
	bathrooms   INT NOT NULL,
	exclusive   BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE TABLE IF NOT EXISTS sage.users (
	id            UUID PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	username      TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS sage.bookings (
	id          UUID PRIMARY KEY,
	property_id TEXT NOT NULL REFERENCES sage.properties(id),
	user_id     UUID NOT NULL,
	check_in    DATE NOT NULL,
	check_out   DATE NOT NULL,
	guests      INT NOT NULL,
	total_price NUMERIC(12, 2) NOT NULL,
	status      TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS sage.payments (
	id          UUID PRIMARY KEY,
	booking_id  UUID NOT NULL REFERENCES sage.bookings(id),
	amount      NUMERIC(12, 2) NOT NULL,
	method      TEXT NOT NULL,
	masked_card TEXT NOT NULL DEFAULT '',
	sealed_card TEXT NOT NULL DEFAULT '',
	hmac        TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL
);`

// PostgresStore provides database operations
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore initializes a new PostgreSQL-backed store
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates the schema and loads properties that are not there yet
func (r *PostgresStore) Migrate(ctx context.Context, seed []models.Property) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	query := `
		INSERT INTO sage.properties (id, title, description, location, price, images, amenities, max_guests, bedrooms, bathrooms, exclusive)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO NOTHING`
	for _, p := range seed {
		_, err := r.db.ExecContext(ctx, query, p.ID, p.Title, p.Description, p.Location, p.Price,
			pq.Array(p.Images), pq.Array(p.Amenities), p.MaxGuests, p.Bedrooms, p.Bathrooms, p.Exclusive)
		if err != nil {
			return fmt.Errorf("failed to seed property %s: %w", p.ID, err)
		}
	}
	return nil
}

const propertyColumns = `id, title, description, location, price, images, amenities, max_guests, bedrooms, bathrooms, exclusive`

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanProperty(row scanner) (models.Property, error) {
	var p models.Property
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Location, &p.Price,
		pq.Array(&p.Images), pq.Array(&p.Amenities), &p.MaxGuests, &p.Bedrooms, &p.Bathrooms, &p.Exclusive)
	return p, err
}

// ListProperties returns all properties
func (r *PostgresStore) ListProperties(ctx context.Context) ([]models.Property, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+propertyColumns+` FROM sage.properties ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	defer rows.Close()

	var out []models.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// FindPropertyByID retrieves a property
func (r *PostgresStore) FindPropertyByID(ctx context.Context, id string) (*models.Property, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+propertyColumns+` FROM sage.properties WHERE id = $1`, id)
	p, err := scanProperty(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find property: %w", err)
	}
	return &p, nil
}

// CreateBooking creates a new booking in the database. The property row is
// locked for the transaction so concurrent bookings of an exclusive property
// see each other.
func (r *PostgresStore) CreateBooking(ctx context.Context, b *models.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exclusive bool
	err = tx.QueryRowContext(ctx, `SELECT exclusive FROM sage.properties WHERE id = $1 FOR UPDATE`, b.PropertyID).
		Scan(&exclusive)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to lock property: %w", err)
	}

	if exclusive {
		var taken bool
		err = tx.QueryRowContext(ctx, `
			SELECT EXISTS (
				SELECT 1 FROM sage.bookings
				WHERE property_id = $1 AND status <> $2 AND check_in < $4 AND $3 < check_out
			)`, b.PropertyID, models.BookingCancelled, b.CheckIn, b.CheckOut).Scan(&taken)
		if err != nil {
			return fmt.Errorf("failed to check availability: %w", err)
		}
		if taken {
			return ErrUnavailable
		}
	}

	query := `
		INSERT INTO sage.bookings (id, property_id, user_id, check_in, check_out, guests, total_price, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = tx.ExecContext(ctx, query, b.ID, b.PropertyID, b.UserID, b.CheckIn, b.CheckOut,
		b.Guests, b.TotalPrice, b.Status, b.CreatedAt, b.UpdatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit booking: %w", err)
	}
	return nil
}

const bookingColumns = `id, property_id, user_id, check_in, check_out, guests, total_price, status, created_at, updated_at`

func scanBooking(row scanner) (models.Booking, error) {
	var b models.Booking
	err := row.Scan(&b.ID, &b.PropertyID, &b.UserID, &b.CheckIn, &b.CheckOut,
		&b.Guests, &b.TotalPrice, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	b.CheckIn = b.CheckIn.UTC()
	b.CheckOut = b.CheckOut.UTC()
	return b, err
}

// FindBookingByID retrieves a booking
func (r *PostgresStore) FindBookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+bookingColumns+` FROM sage.bookings WHERE id = $1`, id)
	b, err := scanBooking(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find booking: %w", err)
	}
	return &b, nil
}

// UpdateBookingStatus moves a booking from one status to another
func (r *PostgresStore) UpdateBookingStatus(ctx context.Context, id uuid.UUID, from, to string, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE sage.bookings SET status = $3, updated_at = $4 WHERE id = $1 AND status = $2`, id, from, to, at)
	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}
	if n == 1 {
		return nil
	}

	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM sage.bookings WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("failed to find booking: %w", err)
	}
	if !exists {
		return ErrNotFound
	}
	return ErrStatusChanged
}

func (r *PostgresStore) listBookings(ctx context.Context, query string, args ...interface{}) ([]models.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var out []models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// ListActiveBookings returns non-cancelled bookings of a property
func (r *PostgresStore) ListActiveBookings(ctx context.Context, propertyID string) ([]models.Booking, error) {
	return r.listBookings(ctx, `
		SELECT `+bookingColumns+` FROM sage.bookings
		WHERE property_id = $1 AND status <> $2
		ORDER BY check_in`, propertyID, models.BookingCancelled)
}

// ListPendingBefore returns pending bookings created before cutoff
func (r *PostgresStore) ListPendingBefore(ctx context.Context, cutoff time.Time) ([]models.Booking, error) {
	return r.listBookings(ctx, `
		SELECT `+bookingColumns+` FROM sage.bookings
		WHERE status = $1 AND created_at < $2`, models.BookingPending, cutoff)
}

// CreatePayment stores a payment record
func (r *PostgresStore) CreatePayment(ctx context.Context, p *models.Payment) error {
	query := `
		INSERT INTO sage.payments (id, booking_id, amount, method, masked_card, sealed_card, hmac, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecContext(ctx, query, p.ID, p.BookingID, p.Amount, p.Method, p.MaskedCard, p.SealedCard, p.HMAC, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// CreateUser creates a new user in the database
func (r *PostgresStore) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO sage.users (id, email, username, password_hash, created_at)
		VALUES ($1, LOWER($2), $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, user.ID, user.Email, user.Username, user.PasswordHash, user.CreatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *PostgresStore) findUser(ctx context.Context, where string, arg interface{}) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, username, password_hash, created_at FROM sage.users WHERE ` + where
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&user.ID, &user.Email, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// FindUserByEmail retrieves a user by email
func (r *PostgresStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findUser(ctx, "email = LOWER($1)", email)
}

// FindUserByID retrieves a user by ID
func (r *PostgresStore) FindUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.findUser(ctx, "id = $1", id)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
