package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"greeter/internal/service"
)

var _ service.GreetingService = (*MockGreetingService)(nil)

// MockGreetingService is a testify mock of service.GreetingService.
type MockGreetingService struct {
	mock.Mock
}

func (m *MockGreetingService) Homepage(ctx context.Context) string {
	args := m.Called(ctx)
	return args.String(0)
}

func (m *MockGreetingService) Hello(ctx context.Context) string {
	args := m.Called(ctx)
	return args.String(0)
}
