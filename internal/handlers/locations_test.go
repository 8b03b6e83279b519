package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/homestay/internal/models"
)

func TestListStatesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockStatesLister(ctrl)
	handler := NewListStatesHandler(svc)

	states := []models.StateDB{{StateID: 2, Name: "Arizona"}, {StateID: 1, Name: "California"}}
	svc.EXPECT().ListStates(gomock.Any()).Return(states, nil)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/states", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"id":2,"name":"Arizona"},{"id":1,"name":"California"}]`, rr.Body.String())

	svc.EXPECT().ListStates(gomock.Any()).Return(nil, errors.New("db down"))
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/states", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestListCitiesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cities := []models.CityDB{{CityID: 5, Name: "Miami", StateID: 3}}

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockCitiesLister)
		expectedCode int
		expectedBody string
	}{
		{
			name: "numeric state id",
			body: `{"stateId":3}`,
			mockSetup: func(m *MockCitiesLister) {
				m.EXPECT().ListCities(gomock.Any(), int64(3)).Return(cities, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[{"id":5,"name":"Miami","stateId":3}]`,
		},
		{
			name: "string state id",
			body: `{"stateId":"3"}`,
			mockSetup: func(m *MockCitiesLister) {
				m.EXPECT().ListCities(gomock.Any(), int64(3)).Return(cities, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[{"id":5,"name":"Miami","stateId":3}]`,
		},
		{
			name: "unknown state",
			body: `{"stateId":999}`,
			mockSetup: func(m *MockCitiesLister) {
				m.EXPECT().ListCities(gomock.Any(), int64(999)).Return([]models.CityDB{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[]`,
		},
		{
			name:         "missing state id",
			body:         `{}`,
			mockSetup:    func(m *MockCitiesLister) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Missing required fields"}`,
		},
		{
			name:         "fractional state id",
			body:         `{"stateId":1.5}`,
			mockSetup:    func(m *MockCitiesLister) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid state id"}`,
		},
		{
			name:         "invalid json",
			body:         `{"stateId":`,
			mockSetup:    func(m *MockCitiesLister) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockCitiesLister(ctrl)
			tt.mockSetup(svc)

			rr := httptest.NewRecorder()
			NewListCitiesHandler(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/cities", bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestListStateCitiesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockCitiesLister(ctrl)
	r := chi.NewRouter()
	r.Get("/states/{stateId}/cities", NewListStateCitiesHandler(svc))

	svc.EXPECT().ListCities(gomock.Any(), int64(7)).Return([]models.CityDB{{CityID: 1, Name: "Austin", StateID: 7}}, nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/states/7/cities", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var cities []models.CityDB
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&cities))
	assert.Equal(t, "Austin", cities[0].Name)

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/states/texas/cities", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
