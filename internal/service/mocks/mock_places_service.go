package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"greeter/internal/model"
	"greeter/internal/service"
)

// MockPlacesService is a testify mock of service.PlacesService.
type MockPlacesService struct {
	mock.Mock
}

var _ service.PlacesService = (*MockPlacesService)(nil)

func (m *MockPlacesService) Search(ctx context.Context, category model.PlaceCategory, at model.Coordinates, radius int) (*model.PlaceCollection, error) {
	args := m.Called(ctx, category, at, radius)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PlaceCollection), args.Error(1)
}
