package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/homestay/internal/models"
	"github.com/sbilibin2017/homestay/internal/repositories"
)

type listingMocks struct {
	states *MockStateReader
	cities *MockCityReader
	cache  *MockReferenceCache
	homes  *MockHomeReader
	writer *MockHomeWriter
	kafka  *MockKafkaWriter
}

func newListingService(t *testing.T) (*ListingService, listingMocks) {
	ctrl := gomock.NewController(t)
	m := listingMocks{
		states: NewMockStateReader(ctrl),
		cities: NewMockCityReader(ctrl),
		cache:  NewMockReferenceCache(ctrl),
		homes:  NewMockHomeReader(ctrl),
		writer: NewMockHomeWriter(ctrl),
		kafka:  NewMockKafkaWriter(ctrl),
	}
	svc := NewListingService(m.states, m.cities, m.cache, m.homes, m.writer, m.kafka)
	return svc, m
}

func validHomeInput() models.HomeInput {
	return models.HomeInput{
		Title:         "Beach house",
		Description:   "Steps from the ocean",
		StateID:       "1",
		CityID:        "2",
		AvailableFrom: "2030-06-01",
		AvailableTo:   "2030-06-30T12:00:00Z",
		Requirements:  "No smoking",
		Images:        []string{" https://img/1.jpg ", "", "https://img/2.jpg"},
		Price:         "199.999",
	}
}

func TestListingService_ListStates(t *testing.T) {
	ctx := context.Background()
	states := []models.StateDB{{StateID: 2, Name: "Arizona"}, {StateID: 1, Name: "California"}}

	t.Run("cache hit", func(t *testing.T) {
		svc, m := newListingService(t)
		m.cache.EXPECT().GetStates(ctx).Return(states, nil)

		got, err := svc.ListStates(ctx)
		require.NoError(t, err)
		assert.Equal(t, states, got)
	})

	t.Run("cache miss loads and fills cache", func(t *testing.T) {
		svc, m := newListingService(t)
		gomock.InOrder(
			m.cache.EXPECT().GetStates(ctx).Return(nil, repositories.ErrCacheMiss),
			m.states.EXPECT().List(ctx).Return(states, nil),
			m.cache.EXPECT().SetStates(ctx, states).Return(nil),
		)

		got, err := svc.ListStates(ctx)
		require.NoError(t, err)
		assert.Equal(t, states, got)
	})

	t.Run("cache failure falls back to database", func(t *testing.T) {
		svc, m := newListingService(t)
		m.cache.EXPECT().GetStates(ctx).Return(nil, errors.New("redis down"))
		m.states.EXPECT().List(ctx).Return(states, nil)
		m.cache.EXPECT().SetStates(ctx, states).Return(errors.New("redis down"))

		got, err := svc.ListStates(ctx)
		require.NoError(t, err)
		assert.Equal(t, states, got)
	})

	t.Run("database error", func(t *testing.T) {
		svc, m := newListingService(t)
		m.cache.EXPECT().GetStates(ctx).Return(nil, repositories.ErrCacheMiss)
		m.states.EXPECT().List(ctx).Return(nil, errors.New("db error"))

		_, err := svc.ListStates(ctx)
		assert.Error(t, err)
	})

	t.Run("without cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := NewMockStateReader(ctrl)
		reader.EXPECT().List(ctx).Return(states, nil)

		svc := NewListingService(reader, nil, nil, nil, nil, nil)
		got, err := svc.ListStates(ctx)
		require.NoError(t, err)
		assert.Equal(t, states, got)
	})
}

func TestListingService_ListCities(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown state yields empty list", func(t *testing.T) {
		svc, m := newListingService(t)
		m.cache.EXPECT().GetCities(ctx, int64(999)).Return(nil, repositories.ErrCacheMiss)
		m.cities.EXPECT().ListByState(ctx, int64(999)).Return([]models.CityDB{}, nil)
		m.cache.EXPECT().SetCities(ctx, int64(999), []models.CityDB{}).Return(nil)

		cities, err := svc.ListCities(ctx, 999)
		require.NoError(t, err)
		assert.NotNil(t, cities)
		assert.Empty(t, cities)
	})

	t.Run("cache hit", func(t *testing.T) {
		svc, m := newListingService(t)
		cached := []models.CityDB{{CityID: 2, Name: "Miami", StateID: 1}}
		m.cache.EXPECT().GetCities(ctx, int64(1)).Return(cached, nil)

		cities, err := svc.ListCities(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, cached, cities)
	})
}

func TestListingService_CreateHome(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	tests := []struct {
		name    string
		owner   uuid.UUID
		mutate  func(in *models.HomeInput)
		setup   func(m listingMocks)
		wantErr error
	}{
		{
			name:  "success",
			owner: ownerID,
			setup: func(m listingMocks) {
				m.cities.EXPECT().GetByID(ctx, int64(2)).Return(&models.CityDB{CityID: 2, StateID: 1}, nil)
				m.writer.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, h models.HomeDB) (*models.HomeDB, error) {
					h.HomeID = uuid.New()
					return &h, nil
				})
				m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:    "missing title without session",
			owner:   uuid.Nil,
			mutate:  func(in *models.HomeInput) { in.Title = "  " },
			wantErr: ErrMissingFields,
		},
		{
			name:    "missing price",
			owner:   ownerID,
			mutate:  func(in *models.HomeInput) { in.Price = "" },
			wantErr: ErrMissingFields,
		},
		{
			name:    "no session",
			owner:   uuid.Nil,
			wantErr: ErrUnauthorized,
		},
		{
			name:    "non numeric price",
			owner:   ownerID,
			mutate:  func(in *models.HomeInput) { in.Price = "cheap" },
			wantErr: ErrInvalidHome,
		},
		{
			name:    "zero price",
			owner:   ownerID,
			mutate:  func(in *models.HomeInput) { in.Price = "0" },
			wantErr: ErrInvalidHome,
		},
		{
			name:    "negative price",
			owner:   ownerID,
			mutate:  func(in *models.HomeInput) { in.Price = "-10" },
			wantErr: ErrInvalidHome,
		},
		{
			name:    "price overflowing column",
			owner:   ownerID,
			mutate:  func(in *models.HomeInput) { in.Price = "100000000" },
			wantErr: ErrInvalidHome,
		},
		{
			name:    "bad state id",
			owner:   ownerID,
			mutate:  func(in *models.HomeInput) { in.StateID = "one" },
			wantErr: ErrInvalidHome,
		},
		{
			name:    "bad date",
			owner:   ownerID,
			mutate:  func(in *models.HomeInput) { in.AvailableFrom = "06/01/2030" },
			wantErr: ErrInvalidHome,
		},
		{
			name:    "end before start",
			owner:   ownerID,
			mutate:  func(in *models.HomeInput) { in.AvailableTo = "2030-05-01" },
			wantErr: ErrInvalidHome,
		},
		{
			name:  "city in another state",
			owner: ownerID,
			setup: func(m listingMocks) {
				m.cities.EXPECT().GetByID(ctx, int64(2)).Return(&models.CityDB{CityID: 2, StateID: 7}, nil)
			},
			wantErr: ErrInvalidLocation,
		},
		{
			name:  "unknown city",
			owner: ownerID,
			setup: func(m listingMocks) {
				m.cities.EXPECT().GetByID(ctx, int64(2)).Return(nil, nil)
			},
			wantErr: ErrInvalidLocation,
		},
		{
			name:  "owner deleted",
			owner: ownerID,
			setup: func(m listingMocks) {
				m.cities.EXPECT().GetByID(ctx, int64(2)).Return(&models.CityDB{CityID: 2, StateID: 1}, nil)
				m.writer.EXPECT().Save(ctx, gomock.Any()).Return(nil, repositories.ErrForeignKey)
			},
			wantErr: ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newListingService(t)
			if tt.setup != nil {
				tt.setup(m)
			}
			in := validHomeInput()
			if tt.mutate != nil {
				tt.mutate(&in)
			}

			home, err := svc.CreateHome(ctx, tt.owner, in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, home)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, ownerID, home.UserID)
			assert.Equal(t, 200.0, home.Price)
			assert.Equal(t, time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC), home.AvailableFrom)
			assert.Equal(t, []string{"https://img/1.jpg", "https://img/2.jpg"}, []string(home.Images))
		})
	}
}

func TestListingService_GetHome(t *testing.T) {
	ctx := context.Background()
	homeID := uuid.New()

	t.Run("found", func(t *testing.T) {
		svc, m := newListingService(t)
		details := &models.HomeDetails{HomeDB: models.HomeDB{HomeID: homeID, AvailableTo: time.Now().Add(24 * time.Hour)}}
		m.homes.EXPECT().GetByID(ctx, homeID).Return(details, nil)

		got, err := svc.GetHome(ctx, homeID.String())
		require.NoError(t, err)
		assert.Equal(t, details, got)
	})

	t.Run("last available day", func(t *testing.T) {
		svc, m := newListingService(t)
		now := time.Date(2030, 6, 30, 12, 0, 0, 0, time.UTC)
		svc.now = func() time.Time { return now }
		details := &models.HomeDetails{HomeDB: models.HomeDB{HomeID: homeID, AvailableTo: now}}
		m.homes.EXPECT().GetByID(ctx, homeID).Return(details, nil)

		got, err := svc.GetHome(ctx, homeID.String())
		require.NoError(t, err)
		assert.Equal(t, details, got)
	})

	t.Run("expired but not yet swept", func(t *testing.T) {
		svc, m := newListingService(t)
		now := time.Date(2030, 7, 1, 0, 0, 0, 0, time.UTC)
		svc.now = func() time.Time { return now }
		m.homes.EXPECT().GetByID(ctx, homeID).Return(&models.HomeDetails{
			HomeDB: models.HomeDB{HomeID: homeID, AvailableTo: now.Add(-24 * time.Hour)},
		}, nil)

		got, err := svc.GetHome(ctx, homeID.String())
		assert.ErrorIs(t, err, ErrHomeNotFound)
		assert.Nil(t, got)
	})

	t.Run("absent", func(t *testing.T) {
		svc, m := newListingService(t)
		m.homes.EXPECT().GetByID(ctx, homeID).Return(nil, nil)

		_, err := svc.GetHome(ctx, homeID.String())
		assert.ErrorIs(t, err, ErrHomeNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		svc, _ := newListingService(t)
		_, err := svc.GetHome(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, ErrHomeNotFound)
	})
}

func TestListingService_ExpiredHomeIsHiddenBeforeSweep(t *testing.T) {
	ctx := context.Background()
	svc, m := newListingService(t)
	now := time.Date(2030, 7, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	expired := models.HomeDB{HomeID: uuid.New(), AvailableTo: now.Add(-24 * time.Hour)}

	m.homes.EXPECT().ListActive(ctx, now, models.HomeFilter{}).Return([]models.HomeDB{}, nil)
	m.homes.EXPECT().GetByID(ctx, expired.HomeID).Return(&models.HomeDetails{HomeDB: expired}, nil)

	homes, err := svc.ListActiveHomes(ctx, models.HomeFilter{})
	require.NoError(t, err)
	assert.Empty(t, homes)

	_, err = svc.GetHome(ctx, expired.HomeID.String())
	assert.ErrorIs(t, err, ErrHomeNotFound)
}

func TestListingService_ListActiveHomes(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	stateID := int64(1)

	svc, m := newListingService(t)
	svc.now = func() time.Time { return now }

	filter := models.HomeFilter{StateID: &stateID, SortBy: models.SortByPrice}
	homes := []models.HomeDB{{HomeID: uuid.New(), AvailableTo: now.Add(time.Hour)}}
	m.homes.EXPECT().ListActive(ctx, now, filter).Return(homes, nil)

	got, err := svc.ListActiveHomes(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, homes, got)

	_, err = svc.ListActiveHomes(ctx, models.HomeFilter{SortBy: "rating"})
	assert.ErrorIs(t, err, ErrInvalidHome)
}

func TestListingService_PurgeExpiredHomes(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("publishes when homes were deleted", func(t *testing.T) {
		svc, m := newListingService(t)
		m.writer.EXPECT().DeleteExpired(ctx, now).Return(int64(2), nil)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		n, err := svc.PurgeExpiredHomes(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("nothing to delete", func(t *testing.T) {
		svc, m := newListingService(t)
		m.writer.EXPECT().DeleteExpired(ctx, now).Return(int64(0), nil)

		n, err := svc.PurgeExpiredHomes(ctx, now)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("database error", func(t *testing.T) {
		svc, m := newListingService(t)
		m.writer.EXPECT().DeleteExpired(ctx, now).Return(int64(0), errors.New("db error"))

		_, err := svc.PurgeExpiredHomes(ctx, now)
		assert.Error(t, err)
	})
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("2030-06-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC), got)

	got, err = parseDate("2030-06-01T10:30:00+02:00")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2030, 6, 1, 8, 30, 0, 0, time.UTC)))

	_, err = parseDate("tomorrow")
	assert.Error(t, err)
}
