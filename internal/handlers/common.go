package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gnb-666/pgy-travel-back/internal/apperr"
	"github.com/gnb-666/pgy-travel-back/internal/config"
	"github.com/gnb-666/pgy-travel-back/internal/services"
)

// Package-level configuration set once from main, same lifecycle as the
// media service below.
var (
	statusLabels map[string]int
	beautifyURL  string
	beautifyKey  string
)

// Init wires handler-level configuration. Must be called before routes are
// served.
func Init(cfg *config.Config) {
	statusLabels = cfg.StatusLabels
	beautifyURL = cfg.BeautifyURL
	beautifyKey = cfg.BeautifyKey
}

const requestTimeout = 5 * time.Second

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// fail maps a taxonomy error to its HTTP status. Errors outside the taxonomy
// are logged and surfaced as a generic failure.
func fail(w http.ResponseWriter, err error) {
	status := apperr.HTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Printf("internal error: %v", err)
		message = "internal server error"
	}
	writeJSON(w, status, errorResponse{Success: false, Message: message})
}

func extractBearerToken(header string) string {
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}

// requireStaff validates the admin session from the Authorization header and
// checks the role policy for the requested action.
func requireStaff(r *http.Request, action services.Action) (*services.AdminSession, error) {
	token := extractBearerToken(r.Header.Get("Authorization"))
	session, err := services.ValidateAdminSession(r.Context(), token)
	if err != nil {
		return nil, err
	}
	if err := services.Authorize(session, action); err != nil {
		return nil, err
	}
	return session, nil
}

func decodeBody(r *http.Request, dest interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: invalid request body", apperr.ErrValidation)
	}
	return nil
}
