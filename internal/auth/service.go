package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/harshh999/quarrel-store/internal/store"
	"golang.org/x/crypto/bcrypt"
)

const (
	credentialsKey = "users"
	sessionUserKey = "user"
)

// Service registers and authenticates users against the persistence
// adapter. The credential store under the "users" key is internal to this
// package; everything returned outward is the public User projection.
type Service struct {
	kv store.KV
}

func NewService(kv store.KV) *Service {
	return &Service{kv: kv}
}

// Register creates a credential record and a public projection, persists
// both, and leaves the new user as the active session user.
func (s *Service) Register(ctx context.Context, email, secret, firstName, lastName string) (*User, error) {
	if err := validateRegistration(email, secret, firstName, lastName); err != nil {
		return nil, err
	}

	creds := s.loadCredentials(ctx)
	for _, c := range creds {
		if c.Email == email {
			return nil, ErrDuplicateEmail
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash secret: %w", err)
	}

	cred := credential{
		ID:         uuid.New().String(),
		Email:      email,
		SecretHash: hash,
		FirstName:  firstName,
		LastName:   lastName,
		CreatedAt:  time.Now().UTC(),
	}

	creds = append(creds, cred)
	if err := store.PutJSON(ctx, s.kv, credentialsKey, creds); err != nil {
		return nil, fmt.Errorf("persist credentials: %w", err)
	}

	user := cred.public()
	if err := store.PutJSON(ctx, s.kv, sessionUserKey, user); err != nil {
		return nil, fmt.Errorf("persist session user: %w", err)
	}
	return user, nil
}

// Login matches email and secret against the credential store and persists
// the public projection as the active session user.
func (s *Service) Login(ctx context.Context, email, secret string) (*User, error) {
	for _, c := range s.loadCredentials(ctx) {
		if c.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword(c.SecretHash, []byte(secret)) != nil {
			return nil, ErrInvalidCredentials
		}

		user := c.public()
		if err := store.PutJSON(ctx, s.kv, sessionUserKey, user); err != nil {
			return nil, fmt.Errorf("persist session user: %w", err)
		}
		return user, nil
	}
	return nil, ErrInvalidCredentials
}

// Logout clears the active session user.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.kv.Delete(ctx, sessionUserKey); err != nil {
		return fmt.Errorf("remove session user: %w", err)
	}
	return nil
}

// Current returns the active session user, or nil when no user is logged in
// or the stored value is malformed.
func (s *Service) Current(ctx context.Context) *User {
	var user User
	err := store.GetJSON(ctx, s.kv, sessionUserKey, &user)
	if err != nil {
		if !errors.Is(err, store.ErrKeyNotFound) {
			log.Printf("session user load error: %v", err)
		}
		return nil
	}
	return &user
}

func (s *Service) loadCredentials(ctx context.Context) []credential {
	var creds []credential
	err := store.GetJSON(ctx, s.kv, credentialsKey, &creds)
	if err != nil {
		if !errors.Is(err, store.ErrKeyNotFound) {
			// Malformed store fails closed to an empty credential list.
			log.Printf("credential store load error: %v", err)
		}
		return nil
	}
	return creds
}
