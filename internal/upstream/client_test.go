package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greeter/internal/config"
	"greeter/internal/model"
)

// newTestClient points every upstream at one test server. The returned func
// yields the last request the server saw.
func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, func() *http.Request) {
	t.Helper()
	var (
		mu   sync.Mutex
		last *http.Request
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		last = r.Clone(context.Background())
		mu.Unlock()
		h(w, r)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(config.UpstreamConfig{
		FCCBaseURL:       srv.URL,
		FEMABaseURL:      srv.URL,
		GeoapifyBaseURL:  srv.URL + "/",
		PlacesAPIKey:     "secret",
		EONETBaseURL:     srv.URL,
		NominatimBaseURL: srv.URL,
		UserAgent:        "greeter-test",
		TimeoutSec:       5,
	})
	return c, func() *http.Request {
		mu.Lock()
		defer mu.Unlock()
		return last
	}
}

func TestClient_LocateCounty(t *testing.T) {
	at := model.Coordinates{Latitude: 34.05, Longitude: -118.25}

	t.Run("found", func(t *testing.T) {
		c, seen := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"State":{"FIPS":"06","name":"California"},"County":{"FIPS":"06037","name":"Los Angeles"}}`))
		})

		got, err := c.LocateCounty(context.Background(), at)

		require.NoError(t, err)
		assert.Equal(t, model.CountyFIPS{State: "06", County: "06037"}, got)
		assert.Equal(t, "/api/census/block/find", seen().URL.Path)
		assert.Equal(t, "34.05", seen().URL.Query().Get("latitude"))
		assert.Equal(t, "-118.25", seen().URL.Query().Get("longitude"))
		assert.Equal(t, "2020", seen().URL.Query().Get("censusYear"))
		assert.Equal(t, "greeter-test", seen().Header.Get("User-Agent"))
	})

	t.Run("outside the US", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"State":{"FIPS":null},"County":{"FIPS":null}}`))
		})

		_, err := c.LocateCounty(context.Background(), at)

		assert.ErrorIs(t, err, ErrNoCounty)
	})

	t.Run("upstream failure", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		_, err := c.LocateCounty(context.Background(), at)

		var se *StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, "fcc", se.Service)
		assert.Equal(t, http.StatusServiceUnavailable, se.StatusCode)
	})
}

func TestClient_OpenDeclarations(t *testing.T) {
	c, seen := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"DisasterDeclarationsSummaries":[
			{"disasterNumber":4699,"state":"CA","declarationType":"DR","declarationDate":"2024-04-10T00:00:00.000Z","incidentType":"Flood","declarationTitle":"SEVERE STORMS","incidentBeginDate":"2024-01-31T00:00:00.000Z","incidentEndDate":null,"designatedArea":"Los Angeles (County)","fipsStateCode":"06","fipsCountyCode":"037"}
		],"metadata":{"count":1}}`))
	})

	got, err := c.OpenDeclarations(context.Background(), model.CountyFIPS{State: "06", County: "06037"})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 4699, got[0].DisasterNumber)
	assert.Equal(t, time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC), got[0].DeclarationDate)
	assert.Nil(t, got[0].IncidentEndDate)
	assert.Equal(t, "/api/open/v2/DisasterDeclarationsSummaries", seen().URL.Path)
	assert.Equal(t, "incidentEndDate eq null and fipsStateCode eq '06' and fipsCountyCode eq '037'", seen().URL.Query().Get("$filter"))
	assert.Equal(t, "incidentBeginDate desc", seen().URL.Query().Get("$orderby"))
}

func TestClient_SearchPlaces(t *testing.T) {
	t.Run("builds the circle query", func(t *testing.T) {
		c, seen := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"type":"FeatureCollection","features":[{"type":"Feature","properties":{"name":"General Hospital"}}]}`))
		})

		got, err := c.SearchPlaces(context.Background(), PlaceQuery{
			Category: model.Hospitals,
			Center:   model.Coordinates{Latitude: 40.7, Longitude: -74},
			Radius:   5000,
		})

		require.NoError(t, err)
		assert.Equal(t, "FeatureCollection", got.Type)
		assert.Len(t, got.Features, 1)
		assert.Equal(t, "/v2/places", seen().URL.Path)
		q := seen().URL.Query()
		assert.Equal(t, model.Hospitals.Filter, q.Get("categories"))
		assert.Equal(t, "circle:-74,40.7,5000", q.Get("filter"))
		assert.Equal(t, "proximity:-74,40.7", q.Get("bias"))
		assert.Equal(t, "10", q.Get("limit"))
		assert.Equal(t, "secret", q.Get("apiKey"))
	})

	t.Run("missing features decode as empty", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"type":"FeatureCollection"}`))
		})

		got, err := c.SearchPlaces(context.Background(), PlaceQuery{Category: model.Shelters, Radius: 1})

		require.NoError(t, err)
		assert.NotNil(t, got.Features)
		assert.Empty(t, got.Features)
	})

	t.Run("invalid json", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		})

		_, err := c.SearchPlaces(context.Background(), PlaceQuery{Category: model.Shelters, Radius: 1})

		assert.ErrorContains(t, err, "geoapify: decode response")
	})
}

func TestClient_NaturalEvents(t *testing.T) {
	payload := `{"events":[
		{"title":"Wildfire A","categories":[{"title":"Wildfires"}],"geometry":[{"date":"2024-05-01T12:00:00Z","type":"Point","coordinates":[-118.2,34.1]}]},
		{"title":"Iceberg B","categories":[{"title":"Sea and Lake Ice"}],"geometry":[{"date":"2024-05-02T00:00:00Z","type":"Polygon","coordinates":[[[1,2],[3,4]]]}]},
		{"title":"No Geometry","categories":[],"geometry":[]},
		{"title":"Storm C","categories":[{"title":"Severe Storms"},{"title":"Floods"}],"geometry":[{"date":"2024-05-03T06:30:00Z","type":"Point","coordinates":[10.5,-3.25]}]}
	]}`
	c, seen := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(payload))
	})

	events, raw, err := c.NaturalEvents(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "/api/v3/events", seen().URL.Path)
	assert.JSONEq(t, payload, string(raw))
	require.Len(t, events, 2)
	assert.Equal(t, model.NaturalEvent{
		Title:      "Wildfire A",
		Categories: []string{"Wildfires"},
		Latitude:   34.1,
		Longitude:  -118.2,
		Date:       time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}, events[0])
	assert.Equal(t, []string{"Severe Storms", "Floods"}, events[1].Categories)
	assert.Equal(t, -3.25, events[1].Latitude)
}

func TestClient_ReverseGeocode(t *testing.T) {
	tests := []struct {
		name string
		body string
		want model.Location
	}{
		{
			name: "city",
			body: `{"address":{"county":"Kings County","city":"New York","state":"New York","country":"United States"}}`,
			want: model.Location{County: "Kings County", City: "New York", State: "New York", Country: "United States"},
		},
		{
			name: "town fallback",
			body: `{"address":{"town":"Smallville","country":"United States"}}`,
			want: model.Location{City: "Smallville", Country: "United States"},
		},
		{
			name: "village fallback",
			body: `{"address":{"village":"Hamlet","state":"Bavaria"}}`,
			want: model.Location{City: "Hamlet", State: "Bavaria"},
		},
		{
			name: "no address",
			body: `{"error":"Unable to geocode"}`,
			want: model.Location{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, seen := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})

			got, err := c.ReverseGeocode(context.Background(), model.Coordinates{Latitude: 40.65, Longitude: -73.95})

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "/reverse", seen().URL.Path)
			assert.Equal(t, "40.65", seen().URL.Query().Get("lat"))
			assert.Equal(t, "json", seen().URL.Query().Get("format"))
		})
	}
}
