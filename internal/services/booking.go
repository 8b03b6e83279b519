package services

//go:generate mockgen -source=booking.go -destination=booking_mock.go -package=services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/homestay/internal/logger"
	"github.com/sbilibin2017/homestay/internal/models"
	"github.com/sbilibin2017/homestay/internal/repositories"
)

// HomeExistenceChecker reports whether a home exists and has not expired.
type HomeExistenceChecker interface {
	ExistsActive(ctx context.Context, homeID uuid.UUID, now time.Time) (bool, error)
}

// BookingWriter stores bookings.
type BookingWriter interface {
	Save(ctx context.Context, userID, homeID uuid.UUID) (*models.BookingDB, error)
}

// BookingService creates bookings.
type BookingService struct {
	homes       HomeExistenceChecker
	writer      BookingWriter
	kafkaWriter KafkaWriter
	now         func() time.Time
}

// NewBookingService creates a new BookingService. kafkaWriter may be nil.
func NewBookingService(homes HomeExistenceChecker, writer BookingWriter, kafkaWriter KafkaWriter) *BookingService {
	return &BookingService{
		homes:       homes,
		writer:      writer,
		kafkaWriter: kafkaWriter,
		now:         time.Now,
	}
}

// CreateBooking books homeID for userID. There is no overlap or capacity
// check; booking the same home twice creates two bookings. A home whose
// availability has ended is treated as missing even before it is swept.
func (s *BookingService) CreateBooking(ctx context.Context, userID uuid.UUID, homeID string) (*models.BookingDB, error) {
	log := logger.FromContext(ctx)

	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	id, err := uuid.Parse(homeID)
	if err != nil {
		return nil, ErrHomeNotFound
	}

	exists, err := s.homes.ExistsActive(ctx, id, s.now())
	if err != nil {
		log.Errorw("failed to check home exists", "home_id", id, "error", err)
		return nil, err
	}
	if !exists {
		return nil, ErrHomeNotFound
	}

	booking, err := s.writer.Save(ctx, userID, id)
	if errors.Is(err, repositories.ErrForeignKey) {
		return nil, ErrHomeNotFound
	}
	if err != nil {
		log.Errorw("failed to save booking", "user_id", userID, "home_id", id, "error", err)
		return nil, err
	}

	publishEvent(ctx, s.kafkaWriter, models.EventBookingCreated, userID, booking)
	return booking, nil
}
