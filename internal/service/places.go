package service

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"greeter/internal/model"
	"greeter/internal/upstream"
)

const (
	maxSearchRadius = 50000
	maxSearchRuns   = 10
)

// NoPlacesError is returned when the search widened to its limit without a match.
type NoPlacesError struct {
	Category string
	// RadiusKm is the largest radius searched, in whole kilometers.
	RadiusKm int
}

func (e *NoPlacesError) Error() string {
	return fmt.Sprintf("no %s found within %d km", e.Category, e.RadiusKm)
}

// PlacesService defines the use cases behind the places routes.
type PlacesService interface {
	// Search finds places of a category around a point. A radius of zero uses
	// the category default. While nothing is found the radius doubles, up to
	// ten queries and while it stays under 50 km.
	Search(ctx context.Context, category model.PlaceCategory, at model.Coordinates, radius int) (*model.PlaceCollection, error)
}

type placesService struct {
	searcher upstream.PlaceSearcher
	tracer   trace.Tracer
}

// NewPlacesService constructs a PlacesService using the global tracer provider.
func NewPlacesService(searcher upstream.PlaceSearcher) PlacesService {
	return &placesService{searcher: searcher, tracer: otel.Tracer(tracerName)}
}

func (s *placesService) Search(ctx context.Context, category model.PlaceCategory, at model.Coordinates, radius int) (*model.PlaceCollection, error) {
	ctx, sp := s.tracer.Start(ctx, "places.search")
	defer sp.End()

	if radius <= 0 {
		radius = category.DefaultRadius
	}

	var (
		res      *model.PlaceCollection
		searched int
	)
	for run := 0; run < maxSearchRuns; run++ {
		var err error
		res, err = s.searcher.SearchPlaces(ctx, upstream.PlaceQuery{Category: category, Center: at, Radius: radius})
		if err != nil {
			return nil, err
		}
		searched = radius
		radius *= 2
		if len(res.Features) > 0 || radius >= maxSearchRadius {
			break
		}
	}

	sp.SetAttributes(
		attribute.String("places.category", category.Filter),
		attribute.Int("places.radius", searched),
		attribute.Int("places.count", len(res.Features)),
	)

	if len(res.Features) == 0 {
		return nil, &NoPlacesError{Category: category.Name, RadiusKm: searched / 1000}
	}
	return res, nil
}
