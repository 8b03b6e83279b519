package services

//go:generate mockgen -source=listing.go -destination=listing_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/homestay/internal/logger"
	"github.com/sbilibin2017/homestay/internal/models"
	"github.com/sbilibin2017/homestay/internal/repositories"
)

// maxPrice is the largest value a NUMERIC(10,2) column holds.
const maxPrice = 99999999.99

// StateReader lists states.
type StateReader interface {
	List(ctx context.Context) ([]models.StateDB, error)
}

// CityReader reads cities.
type CityReader interface {
	ListByState(ctx context.Context, stateID int64) ([]models.CityDB, error)
	GetByID(ctx context.Context, cityID int64) (*models.CityDB, error)
}

// ReferenceCache caches states and cities.
type ReferenceCache interface {
	GetStates(ctx context.Context) ([]models.StateDB, error)
	SetStates(ctx context.Context, states []models.StateDB) error
	GetCities(ctx context.Context, stateID int64) ([]models.CityDB, error)
	SetCities(ctx context.Context, stateID int64, cities []models.CityDB) error
}

// HomeReader reads homes.
type HomeReader interface {
	GetByID(ctx context.Context, homeID uuid.UUID) (*models.HomeDetails, error)
	ListActive(ctx context.Context, now time.Time, filter models.HomeFilter) ([]models.HomeDB, error)
}

// HomeWriter writes and purges homes.
type HomeWriter interface {
	Save(ctx context.Context, home models.HomeDB) (*models.HomeDB, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// ListingService serves reference data and home listings.
type ListingService struct {
	states      StateReader
	cities      CityReader
	cache       ReferenceCache
	homes       HomeReader
	homeWriter  HomeWriter
	kafkaWriter KafkaWriter
	now         func() time.Time
}

// NewListingService creates a new ListingService. cache and kafkaWriter may be nil.
func NewListingService(
	states StateReader,
	cities CityReader,
	cache ReferenceCache,
	homes HomeReader,
	homeWriter HomeWriter,
	kafkaWriter KafkaWriter,
) *ListingService {
	return &ListingService{
		states:      states,
		cities:      cities,
		cache:       cache,
		homes:       homes,
		homeWriter:  homeWriter,
		kafkaWriter: kafkaWriter,
		now:         time.Now,
	}
}

// ListStates returns all states ordered by name.
func (s *ListingService) ListStates(ctx context.Context) ([]models.StateDB, error) {
	log := logger.FromContext(ctx)

	if s.cache != nil {
		states, err := s.cache.GetStates(ctx)
		if err == nil {
			return states, nil
		}
		if !errors.Is(err, repositories.ErrCacheMiss) {
			log.Warnw("failed to read states from cache", "error", err)
		}
	}

	states, err := s.states.List(ctx)
	if err != nil {
		log.Errorw("failed to list states", "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetStates(ctx, states); err != nil {
			log.Warnw("failed to cache states", "error", err)
		}
	}
	return states, nil
}

// ListCities returns the cities of a state. An unknown state has no cities.
func (s *ListingService) ListCities(ctx context.Context, stateID int64) ([]models.CityDB, error) {
	log := logger.FromContext(ctx)

	if s.cache != nil {
		cities, err := s.cache.GetCities(ctx, stateID)
		if err == nil {
			return cities, nil
		}
		if !errors.Is(err, repositories.ErrCacheMiss) {
			log.Warnw("failed to read cities from cache", "state_id", stateID, "error", err)
		}
	}

	cities, err := s.cities.ListByState(ctx, stateID)
	if err != nil {
		log.Errorw("failed to list cities", "state_id", stateID, "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetCities(ctx, stateID, cities); err != nil {
			log.Warnw("failed to cache cities", "state_id", stateID, "error", err)
		}
	}
	return cities, nil
}

// CreateHome validates input and stores a new home owned by ownerID.
// Field validation runs before the owner check, so an anonymous request
// with missing fields gets ErrMissingFields rather than ErrUnauthorized.
func (s *ListingService) CreateHome(ctx context.Context, ownerID uuid.UUID, in models.HomeInput) (*models.HomeDB, error) {
	log := logger.FromContext(ctx)

	home, err := parseHomeInput(in)
	if err != nil {
		log.Infow("rejected home input", "error", err)
		return nil, err
	}

	if ownerID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	home.UserID = ownerID

	city, err := s.cities.GetByID(ctx, home.CityID)
	if err != nil {
		log.Errorw("failed to get city", "city_id", home.CityID, "error", err)
		return nil, err
	}
	if city == nil || city.StateID != home.StateID {
		return nil, ErrInvalidLocation
	}

	saved, err := s.homeWriter.Save(ctx, home)
	if errors.Is(err, repositories.ErrForeignKey) {
		// The only reference not checked above is the owner.
		log.Warnw("home owner no longer exists", "user_id", ownerID)
		return nil, ErrUnauthorized
	}
	if err != nil {
		log.Errorw("failed to save home", "user_id", ownerID, "error", err)
		return nil, err
	}

	publishEvent(ctx, s.kafkaWriter, models.EventHomeCreated, ownerID, saved)
	return saved, nil
}

// GetHome returns a home with its state, city and owner. A malformed id
// or a home whose availability has ended is reported as ErrHomeNotFound.
func (s *ListingService) GetHome(ctx context.Context, id string) (*models.HomeDetails, error) {
	homeID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrHomeNotFound
	}

	home, err := s.homes.GetByID(ctx, homeID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get home", "home_id", homeID, "error", err)
		return nil, err
	}
	if home == nil || home.Expired(s.now()) {
		return nil, ErrHomeNotFound
	}
	return home, nil
}

// ListActiveHomes returns homes still available now. It never deletes.
func (s *ListingService) ListActiveHomes(ctx context.Context, filter models.HomeFilter) ([]models.HomeDB, error) {
	switch filter.SortBy {
	case models.SortByNewest, models.SortByPrice, models.SortByDate:
	default:
		return nil, fmt.Errorf("%w: unknown sort order %q", ErrInvalidHome, filter.SortBy)
	}

	homes, err := s.homes.ListActive(ctx, s.now(), filter)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list homes", "error", err)
		return nil, err
	}
	return homes, nil
}

// PurgeExpiredHomes deletes homes whose availability ended before now and
// returns how many were removed.
func (s *ListingService) PurgeExpiredHomes(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	deleted, err := s.homeWriter.DeleteExpired(ctx, now)
	if err != nil {
		log.Errorw("failed to delete expired homes", "error", err)
		return 0, err
	}

	if deleted > 0 {
		log.Infow("expired homes deleted", "count", deleted)
		publishEvent(ctx, s.kafkaWriter, models.EventHomesExpired, uuid.Nil, map[string]any{
			"count":  deleted,
			"before": now.UTC(),
		})
	}
	return deleted, nil
}

func parseHomeInput(in models.HomeInput) (models.HomeDB, error) {
	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)
	rawState := strings.TrimSpace(in.StateID)
	rawCity := strings.TrimSpace(in.CityID)
	rawFrom := strings.TrimSpace(in.AvailableFrom)
	rawTo := strings.TrimSpace(in.AvailableTo)
	rawPrice := strings.TrimSpace(in.Price)

	if title == "" || description == "" || rawState == "" || rawCity == "" ||
		rawFrom == "" || rawTo == "" || rawPrice == "" {
		return models.HomeDB{}, ErrMissingFields
	}

	stateID, err := strconv.ParseInt(rawState, 10, 64)
	if err != nil || stateID <= 0 {
		return models.HomeDB{}, fmt.Errorf("%w: stateId must be a positive integer", ErrInvalidHome)
	}
	cityID, err := strconv.ParseInt(rawCity, 10, 64)
	if err != nil || cityID <= 0 {
		return models.HomeDB{}, fmt.Errorf("%w: cityId must be a positive integer", ErrInvalidHome)
	}

	price, err := strconv.ParseFloat(rawPrice, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return models.HomeDB{}, fmt.Errorf("%w: price must be a number", ErrInvalidHome)
	}
	price = math.Round(price*100) / 100
	if price <= 0 || price > maxPrice {
		return models.HomeDB{}, fmt.Errorf("%w: price must be positive and at most %.2f", ErrInvalidHome, maxPrice)
	}

	from, err := parseDate(rawFrom)
	if err != nil {
		return models.HomeDB{}, fmt.Errorf("%w: availableFrom: %v", ErrInvalidHome, err)
	}
	to, err := parseDate(rawTo)
	if err != nil {
		return models.HomeDB{}, fmt.Errorf("%w: availableTo: %v", ErrInvalidHome, err)
	}
	if to.Before(from) {
		return models.HomeDB{}, fmt.Errorf("%w: availableTo is before availableFrom", ErrInvalidHome)
	}

	images := make([]string, 0, len(in.Images))
	for _, img := range in.Images {
		if img = strings.TrimSpace(img); img != "" {
			images = append(images, img)
		}
	}

	return models.HomeDB{
		Title:         title,
		Description:   description,
		Price:         price,
		StateID:       stateID,
		CityID:        cityID,
		AvailableFrom: from,
		AvailableTo:   to,
		Requirements:  strings.TrimSpace(in.Requirements),
		Images:        images,
	}, nil
}

// parseDate accepts an RFC 3339 timestamp or a YYYY-MM-DD date, the latter
// read as midnight UTC.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is neither RFC 3339 nor YYYY-MM-DD", s)
	}
	return t, nil
}
