package handlers

//go:generate mockgen -source=booking.go -destination=booking_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/homestay/internal/models"
)

// BookingCreator books homes.
type BookingCreator interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, homeID string) (*models.BookingDB, error)
}

// NewCreateBookingHandler returns an HTTP handler booking the home in the
// path for the session user.
// @Summary Book a home
// @Tags booking
// @Produce json
// @Param homeId path string true "Home id"
// @Success 201 {object} models.BookingDB "Booking"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Home not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /booking/{homeId} [post]
// @Security BearerAuth
func NewCreateBookingHandler(svc BookingCreator, tokener SessionTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		booking, err := svc.CreateBooking(ctx, sessionUserID(ctx, r, tokener), chi.URLParam(r, "homeId"))
		if err != nil {
			writeServiceError(ctx, w, err)
			return
		}
		writeJSON(w, http.StatusCreated, booking)
	}
}
