package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"greeter/internal/model"
	"greeter/internal/service"
	"greeter/internal/storage"
)

// MockDisasterService is a testify mock of service.DisasterService.
type MockDisasterService struct {
	mock.Mock
}

var _ service.DisasterService = (*MockDisasterService)(nil)

func (m *MockDisasterService) ActiveDeclarations(ctx context.Context, at model.Coordinates) (*model.DeclarationList, error) {
	args := m.Called(ctx, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DeclarationList), args.Error(1)
}

func (m *MockDisasterService) Recent(ctx context.Context) (*service.RecentDisasters, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RecentDisasters), args.Error(1)
}

func (m *MockDisasterService) Archive(ctx context.Context, name string) (io.ReadCloser, storage.ObjectInfo, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Get(1).(storage.ObjectInfo), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(storage.ObjectInfo), args.Error(2)
}

func (m *MockDisasterService) Store(ctx context.Context, disasters []model.Disaster) (int, error) {
	args := m.Called(ctx, disasters)
	return args.Int(0), args.Error(1)
}

func (m *MockDisasterService) Latest(ctx context.Context) (*model.Disaster, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Disaster), args.Error(1)
}
