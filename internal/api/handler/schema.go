package handler

import (
	"time"

	"github.com/clinicadmin/inventory-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type authenticateRequest struct {
	Token *string `json:"token" validate:"omitempty,max=512"`
}

// authenticateResponse carries the resolved user; user is null when the
// token identifies nobody.
type authenticateResponse struct {
	User *domain.User `json:"user"`
}

type healthcheckResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}
