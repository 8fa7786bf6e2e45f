package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/harshh999/quarrel-store/internal/auth"
	"github.com/harshh999/quarrel-store/internal/cart"
	"github.com/harshh999/quarrel-store/internal/catalog"
	"github.com/harshh999/quarrel-store/internal/checkout"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// handleDomainError maps domain errors to HTTP status codes.
func handleDomainError(w http.ResponseWriter, err error) {
	var validationErr *auth.ValidationError

	switch {
	case errors.As(err, &validationErr):
		respondError(w, http.StatusBadRequest, "validation_error", validationErr.Error())
	case errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, cart.ErrInvalidVariant),
		errors.Is(err, checkout.ErrUnknownShipping):
		respondError(w, http.StatusBadRequest, "invalid_argument", err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, checkout.ErrNotLoggedIn):
		respondError(w, http.StatusUnauthorized, "unauthenticated", err.Error())
	case errors.Is(err, catalog.ErrProductNotFound),
		errors.Is(err, cart.ErrLineNotFound):
		respondError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, auth.ErrDuplicateEmail):
		respondError(w, http.StatusConflict, "already_exists", err.Error())
	case errors.Is(err, cart.ErrOutOfStock),
		errors.Is(err, checkout.ErrEmptyCart):
		respondError(w, http.StatusUnprocessableEntity, "unprocessable", err.Error())
	default:
		log.Printf("internal error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
