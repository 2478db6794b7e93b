// Package upstream talks to the public APIs behind the disaster and places
// routes: FCC census blocks, FEMA declarations, Geoapify places, NASA EONET
// and Nominatim reverse geocoding.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"greeter/internal/config"
	"greeter/internal/model"
)

// ErrNoCounty is returned when coordinates do not resolve to a US county.
var ErrNoCounty = errors.New("coordinates do not resolve to a US county")

// StatusError reports a non-2xx answer from an upstream API.
type StatusError struct {
	Service    string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.Service, e.StatusCode)
}

// CensusLocator maps coordinates to census FIPS codes.
type CensusLocator interface {
	LocateCounty(ctx context.Context, at model.Coordinates) (model.CountyFIPS, error)
}

// DeclarationSource lists disaster declarations whose incident is still open.
type DeclarationSource interface {
	OpenDeclarations(ctx context.Context, county model.CountyFIPS) ([]model.DisasterDeclaration, error)
}

// PlaceQuery is one circular places search.
type PlaceQuery struct {
	Category model.PlaceCategory
	Center   model.Coordinates
	Radius   int
}

// PlaceSearcher finds places of a category inside a circle.
type PlaceSearcher interface {
	SearchPlaces(ctx context.Context, q PlaceQuery) (*model.PlaceCollection, error)
}

// EventSource returns the current natural events feed. The raw payload is
// returned alongside the decoded events so callers can archive it.
type EventSource interface {
	NaturalEvents(ctx context.Context) ([]model.NaturalEvent, []byte, error)
}

// ReverseGeocoder describes the place at a point.
type ReverseGeocoder interface {
	ReverseGeocode(ctx context.Context, at model.Coordinates) (model.Location, error)
}

// Client implements every upstream interface over HTTP.
type Client struct {
	http *http.Client
	cfg  config.UpstreamConfig
}

var (
	_ CensusLocator     = (*Client)(nil)
	_ DeclarationSource = (*Client)(nil)
	_ PlaceSearcher     = (*Client)(nil)
	_ EventSource       = (*Client)(nil)
	_ ReverseGeocoder   = (*Client)(nil)
)

// NewClient returns a Client with an instrumented transport.
func NewClient(cfg config.UpstreamConfig) *Client {
	return &Client{
		http: &http.Client{
			Timeout:   cfg.Timeout(),
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		cfg: cfg,
	}
}

func (c *Client) get(ctx context.Context, service, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", service, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", service, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w", service, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Service: service, StatusCode: resp.StatusCode}
	}
	return body, nil
}

func (c *Client) getJSON(ctx context.Context, service, rawURL string, out any) error {
	body, err := c.get(ctx, service, rawURL)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", service, err)
	}
	return nil
}

func endpoint(base, path string, q url.Values) string {
	u := strings.TrimRight(base, "/") + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

func formatCoord(v float64) string {
	return fmt.Sprintf("%g", v)
}

// LocateCounty resolves the census block at a point and returns its state and county codes.
func (c *Client) LocateCounty(ctx context.Context, at model.Coordinates) (model.CountyFIPS, error) {
	q := url.Values{}
	q.Set("latitude", formatCoord(at.Latitude))
	q.Set("longitude", formatCoord(at.Longitude))
	q.Set("censusYear", "2020")
	q.Set("showall", "false")
	q.Set("format", "json")

	var res struct {
		State struct {
			FIPS string `json:"FIPS"`
		} `json:"State"`
		County struct {
			FIPS string `json:"FIPS"`
		} `json:"County"`
	}
	if err := c.getJSON(ctx, "fcc", endpoint(c.cfg.FCCBaseURL, "/api/census/block/find", q), &res); err != nil {
		return model.CountyFIPS{}, err
	}
	if res.State.FIPS == "" || len(res.County.FIPS) <= 2 {
		return model.CountyFIPS{}, ErrNoCounty
	}
	return model.CountyFIPS{State: res.State.FIPS, County: res.County.FIPS}, nil
}

// OpenDeclarations lists declarations for a county whose incident has no end
// date, newest incident first.
func (c *Client) OpenDeclarations(ctx context.Context, county model.CountyFIPS) ([]model.DisasterDeclaration, error) {
	q := url.Values{}
	q.Set("$filter", fmt.Sprintf("incidentEndDate eq null and fipsStateCode eq '%s' and fipsCountyCode eq '%s'",
		county.State, county.County[2:]))
	q.Set("$orderby", "incidentBeginDate desc")

	var res model.DeclarationList
	if err := c.getJSON(ctx, "fema", endpoint(c.cfg.FEMABaseURL, "/api/open/v2/DisasterDeclarationsSummaries", q), &res); err != nil {
		return nil, err
	}
	return res.Declarations, nil
}

// SearchPlaces queries places of a category within a circle, biased towards its center.
func (c *Client) SearchPlaces(ctx context.Context, pq PlaceQuery) (*model.PlaceCollection, error) {
	lon, lat := formatCoord(pq.Center.Longitude), formatCoord(pq.Center.Latitude)
	q := url.Values{}
	q.Set("categories", pq.Category.Filter)
	q.Set("filter", fmt.Sprintf("circle:%s,%s,%d", lon, lat, pq.Radius))
	q.Set("bias", fmt.Sprintf("proximity:%s,%s", lon, lat))
	q.Set("limit", fmt.Sprint(pq.Category.Limit))
	q.Set("apiKey", c.cfg.PlacesAPIKey)

	var res model.PlaceCollection
	if err := c.getJSON(ctx, "geoapify", endpoint(c.cfg.GeoapifyBaseURL, "/v2/places", q), &res); err != nil {
		return nil, err
	}
	if res.Features == nil {
		res.Features = []json.RawMessage{}
	}
	return &res, nil
}

type eonetFeed struct {
	Events []struct {
		Title      string `json:"title"`
		Categories []struct {
			Title string `json:"title"`
		} `json:"categories"`
		Geometry []struct {
			Date        string          `json:"date"`
			Type        string          `json:"type"`
			Coordinates json.RawMessage `json:"coordinates"`
		} `json:"geometry"`
	} `json:"events"`
}

// NaturalEvents fetches the EONET events feed. Each event is reduced to its
// first geometry; events without a point geometry or a valid date are skipped.
func (c *Client) NaturalEvents(ctx context.Context) ([]model.NaturalEvent, []byte, error) {
	body, err := c.get(ctx, "eonet", endpoint(c.cfg.EONETBaseURL, "/api/v3/events", nil))
	if err != nil {
		return nil, nil, err
	}

	var feed eonetFeed
	if err := json.Unmarshal(body, &feed); err != nil {
		return nil, nil, fmt.Errorf("eonet: decode response: %w", err)
	}

	events := make([]model.NaturalEvent, 0, len(feed.Events))
	for _, e := range feed.Events {
		if len(e.Geometry) == 0 {
			continue
		}
		g := e.Geometry[0]
		var point []float64
		if err := json.Unmarshal(g.Coordinates, &point); err != nil || len(point) < 2 {
			continue
		}
		date, err := time.Parse(time.RFC3339, g.Date)
		if err != nil {
			continue
		}
		categories := make([]string, 0, len(e.Categories))
		for _, cat := range e.Categories {
			categories = append(categories, cat.Title)
		}
		events = append(events, model.NaturalEvent{
			Title:      e.Title,
			Categories: categories,
			Latitude:   point[1],
			Longitude:  point[0],
			Date:       date.UTC(),
		})
	}
	return events, body, nil
}

// ReverseGeocode looks up the address at a point. City falls back to town, then village.
func (c *Client) ReverseGeocode(ctx context.Context, at model.Coordinates) (model.Location, error) {
	q := url.Values{}
	q.Set("lat", formatCoord(at.Latitude))
	q.Set("lon", formatCoord(at.Longitude))
	q.Set("format", "json")

	var res struct {
		Address *struct {
			County  string `json:"county"`
			City    string `json:"city"`
			Town    string `json:"town"`
			Village string `json:"village"`
			State   string `json:"state"`
			Country string `json:"country"`
		} `json:"address"`
	}
	if err := c.getJSON(ctx, "nominatim", endpoint(c.cfg.NominatimBaseURL, "/reverse", q), &res); err != nil {
		return model.Location{}, err
	}
	if res.Address == nil {
		return model.Location{}, nil
	}

	a := res.Address
	loc := model.Location{County: a.County, City: a.City, State: a.State, Country: a.Country}
	if loc.City == "" {
		loc.City = a.Town
	}
	if loc.City == "" {
		loc.City = a.Village
	}
	return loc, nil
}
