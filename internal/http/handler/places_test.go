package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"greeter/internal/model"
	"greeter/internal/service"
	serviceMocks "greeter/internal/service/mocks"
)

func TestSearchPlaces_Routes(t *testing.T) {
	at := model.Coordinates{Latitude: 40.7, Longitude: -74}
	found := &model.PlaceCollection{
		Type:     "FeatureCollection",
		Features: []json.RawMessage{json.RawMessage(`{"type":"Feature","properties":{"name":"X"}}`)},
	}

	tests := []struct {
		path     string
		category model.PlaceCategory
	}{
		{"/api/hospital", model.Hospitals},
		{"/api/social-services/food", model.FoodServices},
		{"/api/social-services/shelter", model.Shelters},
		{"/api/transportation", model.PublicTransport},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			mockSvc := new(serviceMocks.MockPlacesService)
			app, _ := newAPIApp(func(app *fiber.App) { RegisterPlacesRoutes(app, mockSvc) })

			mockSvc.On("Search", mock.Anything, tt.category, at, 0).Return(found, nil).Once()

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path+"?latitude=40.7&longitude=-74", nil))
			require.NoError(t, err)

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.JSONEq(t, `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{"name":"X"}}]}`, readBody(t, resp))
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestSearchPlaces(t *testing.T) {
	t.Run("passes the radius", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockPlacesService)
		app, _ := newAPIApp(func(app *fiber.App) { RegisterPlacesRoutes(app, mockSvc) })

		mockSvc.On("Search", mock.Anything, model.Hospitals, mock.Anything, 7500).
			Return(&model.PlaceCollection{Type: "FeatureCollection", Features: []json.RawMessage{json.RawMessage(`{}`)}}, nil).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/hospital?latitude=1&longitude=2&radius=7500", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid radius", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockPlacesService)
		app, _ := newAPIApp(func(app *fiber.App) { RegisterPlacesRoutes(app, mockSvc) })

		for _, r := range []string{"abc", "-5", "1.5"} {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/hospital?latitude=1&longitude=2&radius="+r, nil))
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode, r)
			assert.Equal(t, "INVALID_RADIUS", errorCode(t, resp), r)
		}
	})

	t.Run("invalid coordinates", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockPlacesService)
		app, _ := newAPIApp(func(app *fiber.App) { RegisterPlacesRoutes(app, mockSvc) })

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/transportation?longitude=2", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_COORDINATES", errorCode(t, resp))
	})

	t.Run("nothing found", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockPlacesService)
		app, _ := newAPIApp(func(app *fiber.App) { RegisterPlacesRoutes(app, mockSvc) })

		mockSvc.On("Search", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, &service.NoPlacesError{Category: "social shelter services", RadiusKm: 40})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/social-services/shelter?latitude=1&longitude=2", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		var res errorPayload
		require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &res))
		assert.Equal(t, "NO_PLACES_FOUND", res.Error.Code)
		assert.Equal(t, "no social shelter services found within 40 km", res.Error.Message)
	})

	t.Run("upstream failure", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockPlacesService)
		app, _ := newAPIApp(func(app *fiber.App) { RegisterPlacesRoutes(app, mockSvc) })

		mockSvc.On("Search", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("geoapify: unexpected status 401"))

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/hospital?latitude=1&longitude=2", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
		assert.Equal(t, "UPSTREAM_ERROR", errorCode(t, resp))
	})
}
