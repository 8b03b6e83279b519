package handlers

//go:generate mockgen -source=user.go -destination=user_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/homestay/internal/models"
)

// ProfileGetter reads the profile of a user.
type ProfileGetter interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
}

// NewGetUserHandler returns an HTTP handler for the session user together
// with their homes and bookings.
// @Summary Current user
// @Tags user
// @Produce json
// @Success 200 {object} models.Profile "User with homes and bookings"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /user [get]
// @Security BearerAuth
func NewGetUserHandler(svc ProfileGetter, tokener SessionTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		profile, err := svc.GetProfile(ctx, sessionUserID(ctx, r, tokener))
		if err != nil {
			writeServiceError(ctx, w, err)
			return
		}
		writeJSON(w, http.StatusOK, profile)
	}
}
