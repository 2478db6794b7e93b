package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"greeter/internal/model"
	"greeter/internal/repository"
)

// MockDisasterRepository is a testify mock of repository.DisasterRepository.
type MockDisasterRepository struct {
	mock.Mock
}

var _ repository.DisasterRepository = (*MockDisasterRepository)(nil)

func (m *MockDisasterRepository) CreateBatch(ctx context.Context, disasters []model.Disaster) error {
	args := m.Called(ctx, disasters)
	return args.Error(0)
}

func (m *MockDisasterRepository) Latest(ctx context.Context) (*model.Disaster, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Disaster), args.Error(1)
}
