package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrDuplicateEmail = errors.New("email is already registered")
	// ErrInvalidCredentials covers both unknown email and wrong secret; the
	// two cases are deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError reports a missing or malformed registration field. It is
// recoverable by re-submission.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// User is the public projection handed to the rest of the system. It never
// carries credential material.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
}

// credential is the internal record held in the credential store. The
// secret is kept only as a bcrypt hash.
type credential struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	SecretHash []byte    `json:"secret_hash"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (c credential) public() *User {
	return &User{
		ID:        c.ID,
		Email:     c.Email,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		CreatedAt: c.CreatedAt,
	}
}

func validateRegistration(email, secret, firstName, lastName string) error {
	if strings.TrimSpace(email) == "" {
		return &ValidationError{Field: "email", Reason: "required"}
	}
	at := strings.Index(email, "@")
	if at <= 0 || !strings.Contains(email[at:], ".") {
		return &ValidationError{Field: "email", Reason: "malformed"}
	}
	if secret == "" {
		return &ValidationError{Field: "password", Reason: "required"}
	}
	if strings.TrimSpace(firstName) == "" {
		return &ValidationError{Field: "firstName", Reason: "required"}
	}
	if strings.TrimSpace(lastName) == "" {
		return &ValidationError{Field: "lastName", Reason: "required"}
	}
	return nil
}
