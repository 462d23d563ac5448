package models

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
)

// User represents an account holder
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Not serialized
	CreatedAt    time.Time `json:"created_at"`
}

// SignUpInput is the body of POST /auth/signup
type SignUpInput struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks the sign-up fields
func (in SignUpInput) Validate() error {
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return fmt.Errorf("invalid email")
	}
	if len(in.Username) < 3 {
		return fmt.Errorf("username must be at least 3 characters")
	}
	if len(in.Password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	return nil
}

// SignInInput is the body of POST /auth/signin
type SignInInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
