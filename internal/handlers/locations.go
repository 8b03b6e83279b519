package handlers

//go:generate mockgen -source=locations.go -destination=locations_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/homestay/internal/models"
)

// StatesLister lists states.
type StatesLister interface {
	ListStates(ctx context.Context) ([]models.StateDB, error)
}

// CitiesLister lists the cities of a state.
type CitiesLister interface {
	ListCities(ctx context.Context, stateID int64) ([]models.CityDB, error)
}

// CitiesRequest selects the state whose cities are listed
// swagger:model CitiesRequest
type CitiesRequest struct {
	// State id, as a number or numeric string
	// required: true
	// default: 1
	StateID json.Number `json:"stateId"`
}

// NewListStatesHandler returns an HTTP handler listing all states.
// @Summary List states
// @Description Returns all states ordered by name
// @Tags locations
// @Produce json
// @Success 200 {array} models.StateDB "States"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /states [get]
func NewListStatesHandler(svc StatesLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		states, err := svc.ListStates(r.Context())
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}
		writeJSON(w, http.StatusOK, states)
	}
}

// NewListCitiesHandler returns an HTTP handler listing the cities of the
// state named in the request body. An unknown state yields an empty list.
// @Summary List cities of a state
// @Tags locations
// @Accept json
// @Produce json
// @Param citiesRequest body handlers.CitiesRequest true "State"
// @Success 200 {array} models.CityDB "Cities"
// @Failure 400 {object} handlers.ErrorResponse "Invalid state id"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /cities [post]
func NewListCitiesHandler(svc CitiesLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CitiesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.StateID == "" {
			writeError(w, http.StatusBadRequest, "Missing required fields")
			return
		}

		stateID, err := req.StateID.Int64()
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid state id")
			return
		}
		listCities(w, r, svc, stateID)
	}
}

// NewListStateCitiesHandler returns an HTTP handler listing the cities of
// the state in the URL path.
// @Summary List cities of a state
// @Tags locations
// @Produce json
// @Param stateId path int true "State id"
// @Success 200 {array} models.CityDB "Cities"
// @Failure 400 {object} handlers.ErrorResponse "Invalid state id"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /states/{stateId}/cities [get]
func NewListStateCitiesHandler(svc CitiesLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stateID, err := strconv.ParseInt(chi.URLParam(r, "stateId"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid state id")
			return
		}
		listCities(w, r, svc, stateID)
	}
}

func listCities(w http.ResponseWriter, r *http.Request, svc CitiesLister, stateID int64) {
	cities, err := svc.ListCities(r.Context(), stateID)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, cities)
}
