package handlers

//go:generate mockgen -source=handlers.go -destination=handlers_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/homestay/internal/jwt"
	"github.com/sbilibin2017/homestay/internal/logger"
	"github.com/sbilibin2017/homestay/internal/services"
)

// SessionTokener resolves the session of a request.
type SessionTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// sessionUserID returns the user of the request session, or uuid.Nil when
// the request carries no valid session.
func sessionUserID(ctx context.Context, r *http.Request, tokener SessionTokener) uuid.UUID {
	tokenString, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		return uuid.Nil
	}
	claims, err := tokener.GetClaims(ctx, tokenString)
	if err != nil {
		logger.FromContext(ctx).Infow("rejected session token", "error", err)
		return uuid.Nil
	}
	return claims.UserID
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeServiceError maps a service error onto its HTTP status. Unknown
// errors are logged and reported as 500 without detail.
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrMissingFields):
		writeError(w, http.StatusBadRequest, "Missing required fields")
	case errors.Is(err, services.ErrInvalidHome),
		errors.Is(err, services.ErrInvalidLocation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, services.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, services.ErrHomeNotFound):
		writeError(w, http.StatusNotFound, "Home not found")
	case errors.Is(err, services.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, services.ErrImageNotFound):
		writeError(w, http.StatusNotFound, "Image not found")
	case errors.Is(err, services.ErrEmailAlreadyExists):
		writeError(w, http.StatusConflict, "Email already exists")
	default:
		logger.FromContext(ctx).Errorw("internal server error", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
