package service

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"greeter/internal/model"
)

const tracerName = "greeter/internal/service"

// GreetingService defines the use cases behind the greeting routes.
type GreetingService interface {
	// Homepage returns the body served at the root path.
	Homepage(ctx context.Context) string

	// Hello returns the body served at /hello.
	Hello(ctx context.Context) string
}

// greetingService is a concrete implementation of GreetingService.
// It holds no mutable state; every call returns the same value.
type greetingService struct {
	tracer trace.Tracer
}

// NewGreetingService constructs a new GreetingService using the global tracer provider.
func NewGreetingService() GreetingService {
	return &greetingService{tracer: otel.Tracer(tracerName)}
}

func (s *greetingService) Homepage(ctx context.Context) string {
	return s.greet(ctx, "greeting.homepage", model.HomepageGreeting)
}

func (s *greetingService) Hello(ctx context.Context) string {
	return s.greet(ctx, "greeting.hello", model.HelloGreeting)
}

func (s *greetingService) greet(ctx context.Context, span, text string) string {
	_, sp := s.tracer.Start(ctx, span)
	defer sp.End()

	sp.SetAttributes(attribute.Int("greeting.length", len(text)))
	return text
}
