package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/domain"
)

func stopFixture(tripID uuid.UUID) domain.Stop {
	return domain.Stop{
		ID:            uuid.MustParse("0f8fad5b-0000-0000-0000-0000000000bb"),
		TripID:        tripID,
		CityName:      "Paris",
		Country:       "France",
		ArrivalDate:   time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		DepartureDate: time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC),
		SequenceOrder: 1,
	}
}

func TestCreateStop_Created(t *testing.T) {
	user := travellerFixture()
	trip := tripFixture()
	stops := &mockStopAPI{
		create: func(_ context.Context, userID uuid.UUID, stop domain.Stop) (domain.Stop, error) {
			assert.Equal(t, user.ID, userID)
			assert.Equal(t, trip.ID, stop.TripID)
			assert.Equal(t, "Paris", stop.CityName)
			return stopFixture(trip.ID), nil
		},
	}
	router := newTestRouter(apiSet{stops: stops}, &user)

	body := `{"city_name":"Paris","country":"France","arrival_date":"2025-06-02","departure_date":"2025-06-06","sequence_order":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/trips/"+trip.ID.String()+"/stops", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		CityName    string `json:"city_name"`
		ArrivalDate string `json:"arrival_date"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Paris", resp.CityName)
	assert.Equal(t, "2025-06-02", resp.ArrivalDate)
}

func TestCreateStop_OutsideTripDates(t *testing.T) {
	user := travellerFixture()
	trip := tripFixture()
	stops := &mockStopAPI{
		create: func(_ context.Context, _ uuid.UUID, _ domain.Stop) (domain.Stop, error) {
			return domain.Stop{}, fmt.Errorf("service.StopService.Create: %w: arrival date outside trip dates", domain.ErrValidation)
		},
	}
	router := newTestRouter(apiSet{stops: stops}, &user)

	body := `{"city_name":"Paris","country":"France","arrival_date":"2024-01-01","departure_date":"2024-01-02","sequence_order":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/trips/"+trip.ID.String()+"/stops", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "arrival date outside trip dates")
}

func TestListStops_OK(t *testing.T) {
	user := travellerFixture()
	trip := tripFixture()
	stops := &mockStopAPI{
		list: func(_ context.Context, _, tripID uuid.UUID) ([]domain.Stop, error) {
			assert.Equal(t, trip.ID, tripID)
			return []domain.Stop{stopFixture(trip.ID)}, nil
		},
	}
	router := newTestRouter(apiSet{stops: stops}, &user)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/trips/"+trip.ID.String()+"/stops", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []struct {
		CityName string `json:"city_name"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Paris", resp[0].CityName)
}

func TestUpdateStop_BadStopID(t *testing.T) {
	user := travellerFixture()
	router := newTestRouter(apiSet{stops: &mockStopAPI{}}, &user)

	body := `{"city_name":"Paris","country":"France","arrival_date":"2025-06-02","departure_date":"2025-06-06","sequence_order":1}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/trips/"+uuid.NewString()+"/stops/oops", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteStop_NoContent(t *testing.T) {
	user := travellerFixture()
	stops := &mockStopAPI{
		delete: func(_ context.Context, _, _, _ uuid.UUID) error { return nil },
	}
	router := newTestRouter(apiSet{stops: stops}, &user)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/trips/"+uuid.NewString()+"/stops/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
