package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"greeter/internal/model"
	"greeter/internal/upstream"
)

// MockClient is a testify mock implementing every upstream interface.
type MockClient struct {
	mock.Mock
}

var (
	_ upstream.CensusLocator     = (*MockClient)(nil)
	_ upstream.DeclarationSource = (*MockClient)(nil)
	_ upstream.PlaceSearcher     = (*MockClient)(nil)
	_ upstream.EventSource       = (*MockClient)(nil)
	_ upstream.ReverseGeocoder   = (*MockClient)(nil)
)

func (m *MockClient) LocateCounty(ctx context.Context, at model.Coordinates) (model.CountyFIPS, error) {
	args := m.Called(ctx, at)
	return args.Get(0).(model.CountyFIPS), args.Error(1)
}

func (m *MockClient) OpenDeclarations(ctx context.Context, county model.CountyFIPS) ([]model.DisasterDeclaration, error) {
	args := m.Called(ctx, county)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DisasterDeclaration), args.Error(1)
}

func (m *MockClient) SearchPlaces(ctx context.Context, q upstream.PlaceQuery) (*model.PlaceCollection, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PlaceCollection), args.Error(1)
}

func (m *MockClient) NaturalEvents(ctx context.Context) ([]model.NaturalEvent, []byte, error) {
	args := m.Called(ctx)
	var events []model.NaturalEvent
	if v := args.Get(0); v != nil {
		events = v.([]model.NaturalEvent)
	}
	var raw []byte
	if v := args.Get(1); v != nil {
		raw = v.([]byte)
	}
	return events, raw, args.Error(2)
}

func (m *MockClient) ReverseGeocode(ctx context.Context, at model.Coordinates) (model.Location, error) {
	args := m.Called(ctx, at)
	return args.Get(0).(model.Location), args.Error(1)
}
