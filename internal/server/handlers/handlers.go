// Package handlers implements the JSON HTTP API over the phone number
// engine and the contact directory.
package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/AlexTLDR/phonenorm/internal/config"
	"github.com/AlexTLDR/phonenorm/internal/country"
	"github.com/AlexTLDR/phonenorm/internal/database"
	"github.com/AlexTLDR/phonenorm/internal/logger"
	"github.com/AlexTLDR/phonenorm/internal/metrics"
	"github.com/AlexTLDR/phonenorm/internal/phone"
)

// ContactStore is the contact directory used by the handlers.
type ContactStore interface {
	CreateContact(name, email string, office, mobile *phone.Number) (*database.Contact, error)
	GetContactByID(id int64) (*database.Contact, error)
	ListContacts() ([]*database.Contact, error)
	UpdateContact(id int64, name, email string, office, mobile *phone.Number) (*database.Contact, error)
	DeleteContact(id int64) error
	FindContactsByPhone(n *phone.Number) ([]*database.Contact, error)
}

// Server defines what handlers need from the server
type Server interface {
	GetStore() ContactStore
	GetConfig() *config.Config
	GetRegistry() *country.Registry
	GetParser() *phone.Parser
	GetLogger() *logger.Logger
	GetMetrics() *metrics.PhoneMetrics

	// PreferredCountry returns the country stored in the client session,
	// or nil.
	PreferredCountry(r *http.Request) *country.Country
	SetPreferredCountry(w http.ResponseWriter, r *http.Request, c *country.Country) error

	// DefaultCountry returns the country a bare local number of this
	// request belongs to.
	DefaultCountry(r *http.Request) *country.Country
}

var validate = validator.New(validator.WithRequiredStructEnabled())

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps err to a status code. Invalid input is a 400, a missing
// row a 404 and everything else a logged 500.
func writeError(w http.ResponseWriter, s Server, operation string, err error) {
	switch {
	case errors.Is(err, phone.ErrInvalidArgument), errors.Is(err, country.ErrUnknownCountry):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, sql.ErrNoRows):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	default:
		s.GetLogger().DatabaseError(operation, err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

// decodeRequest reads and validates a JSON body. It writes a 400 and
// returns false when the body is unusable.
func decodeRequest(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return false
	}
	if err := validate.Struct(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return false
	}
	return true
}

// parseID parses an ID string and returns an error if invalid
func parseID(idStr string) (int64, error) {
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid ID format: %w", err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("invalid ID: must be positive")
	}
	return id, nil
}

// HandleHealth reports liveness.
func HandleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
