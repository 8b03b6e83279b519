package services

//go:generate mockgen -source=profile.go -destination=profile_mock.go -package=services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/homestay/internal/logger"
	"github.com/sbilibin2017/homestay/internal/models"
)

// UserByIDReader reads a user by id.
type UserByIDReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// OwnedHomesReader lists the homes of an owner that have not expired.
type OwnedHomesReader interface {
	ListActiveByOwner(ctx context.Context, userID uuid.UUID, now time.Time) ([]models.HomeDB, error)
}

// UserBookingsReader lists the bookings of a user.
type UserBookingsReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.BookingDB, error)
}

type ProfileService struct {
	users    UserByIDReader
	homes    OwnedHomesReader
	bookings UserBookingsReader
	now      func() time.Time
}

func NewProfileService(users UserByIDReader, homes OwnedHomesReader, bookings UserBookingsReader) *ProfileService {
	return &ProfileService{users: users, homes: homes, bookings: bookings, now: time.Now}
}

// GetProfile returns the user with their active homes and bookings.
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	log := logger.FromContext(ctx)

	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		log.Errorw("failed to get user", "user_id", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	user.PasswordHash = ""

	homes, err := s.homes.ListActiveByOwner(ctx, userID, s.now())
	if err != nil {
		log.Errorw("failed to list user homes", "user_id", userID, "error", err)
		return nil, err
	}

	bookings, err := s.bookings.ListByUser(ctx, userID)
	if err != nil {
		log.Errorw("failed to list user bookings", "user_id", userID, "error", err)
		return nil, err
	}

	return &models.Profile{UserDB: *user, Homes: homes, Bookings: bookings}, nil
}
