package handlers

//go:generate mockgen -source=homes.go -destination=homes_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/homestay/internal/models"
)

// HomeGetter reads a single home.
type HomeGetter interface {
	GetHome(ctx context.Context, id string) (*models.HomeDetails, error)
}

// HomesLister lists active homes.
type HomesLister interface {
	ListActiveHomes(ctx context.Context, filter models.HomeFilter) ([]models.HomeDB, error)
}

// HomeCreator creates homes.
type HomeCreator interface {
	CreateHome(ctx context.Context, ownerID uuid.UUID, in models.HomeInput) (*models.HomeDB, error)
}

// CreateHomeRequest represents the JSON body of a new listing
// swagger:model CreateHomeRequest
type CreateHomeRequest struct {
	// required: true
	// default: Beach house
	Title string `json:"title"`

	// required: true
	// default: Steps from the ocean
	Description string `json:"description"`

	// State id, as a number or numeric string
	// required: true
	// default: 1
	StateID json.Number `json:"stateId"`

	// City id, as a number or numeric string; must belong to the state
	// required: true
	// default: 2
	CityID json.Number `json:"cityId"`

	// RFC 3339 timestamp or YYYY-MM-DD
	// required: true
	// default: 2030-06-01
	AvailableFrom string `json:"availableFrom"`

	// RFC 3339 timestamp or YYYY-MM-DD, not before availableFrom
	// required: true
	// default: 2030-06-30
	AvailableTo string `json:"availableTo"`

	// default: No smoking
	Requirements string `json:"requirements"`

	// Image URLs, in display order
	Images []string `json:"images"`

	// Nightly price, positive
	// required: true
	// default: 120.50
	Price json.Number `json:"price"`
}

// NewGetHomeHandler returns an HTTP handler for a single home with its
// state, city and owner.
// @Summary Get home
// @Tags homes
// @Produce json
// @Param id path string true "Home id"
// @Success 200 {object} models.HomeDetails "Home"
// @Failure 404 {object} handlers.ErrorResponse "Home not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /homes/{id} [get]
func NewGetHomeHandler(svc HomeGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		home, err := svc.GetHome(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}
		writeJSON(w, http.StatusOK, home)
	}
}

// NewListHomesHandler returns an HTTP handler listing homes that are still
// available.
// @Summary List active homes
// @Tags homes
// @Produce json
// @Param stateId query int false "State id"
// @Param cityId query int false "City id"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param sortBy query string false "price or date; newest first when empty" Enums(price, date)
// @Success 200 {array} models.HomeDB "Homes"
// @Failure 400 {object} handlers.ErrorResponse "Invalid filter"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /homes [get]
func NewListHomesHandler(svc HomesLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseHomeFilter(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		homes, err := svc.ListActiveHomes(r.Context(), filter)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}
		writeJSON(w, http.StatusOK, homes)
	}
}

// NewCreateHomeHandler returns an HTTP handler creating a home owned by the
// session user. Missing fields are reported before a missing session.
// @Summary Create home
// @Tags homes
// @Accept json
// @Produce json
// @Param createHomeRequest body handlers.CreateHomeRequest true "Home"
// @Success 201 {object} models.HomeDB "Created home"
// @Failure 400 {object} handlers.ErrorResponse "Missing or invalid fields"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /homes [post]
// @Security BearerAuth
func NewCreateHomeHandler(svc HomeCreator, tokener SessionTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req CreateHomeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		home, err := svc.CreateHome(ctx, sessionUserID(ctx, r, tokener), models.HomeInput{
			Title:         req.Title,
			Description:   req.Description,
			StateID:       req.StateID.String(),
			CityID:        req.CityID.String(),
			AvailableFrom: req.AvailableFrom,
			AvailableTo:   req.AvailableTo,
			Requirements:  req.Requirements,
			Images:        req.Images,
			Price:         req.Price.String(),
		})
		if err != nil {
			writeServiceError(ctx, w, err)
			return
		}
		writeJSON(w, http.StatusCreated, home)
	}
}

func parseHomeFilter(r *http.Request) (models.HomeFilter, error) {
	q := r.URL.Query()
	var filter models.HomeFilter

	if v := q.Get("stateId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filter, errors.New("invalid stateId")
		}
		filter.StateID = &id
	}
	if v := q.Get("cityId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filter, errors.New("invalid cityId")
		}
		filter.CityID = &id
	}
	if v := q.Get("minPrice"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filter, errors.New("invalid minPrice")
		}
		filter.MinPrice = &p
	}
	if v := q.Get("maxPrice"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filter, errors.New("invalid maxPrice")
		}
		filter.MaxPrice = &p
	}

	switch sortBy := q.Get("sortBy"); sortBy {
	case models.SortByNewest, models.SortByPrice, models.SortByDate:
		filter.SortBy = sortBy
	default:
		return filter, errors.New("invalid sortBy")
	}
	return filter, nil
}
