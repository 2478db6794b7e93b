package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"greeter/internal/model"
)

func TestGreetingService(t *testing.T) {
	ctx := context.Background()
	svc := NewGreetingService()

	tests := []struct {
		name string
		call func(context.Context) string
		want string
	}{
		{name: "homepage", call: svc.Homepage, want: "Homepage!!"},
		{name: "hello", call: svc.Hello, want: "Hello, World!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.call(ctx))
		})
	}
}

func TestGreetingService_Idempotent(t *testing.T) {
	ctx := context.Background()
	svc := NewGreetingService()

	for i := 0; i < 5; i++ {
		assert.Equal(t, model.HomepageGreeting, svc.Homepage(ctx))
		assert.Equal(t, model.HelloGreeting, svc.Hello(ctx))
	}
}

func TestGreetingService_Spans(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := trace.NewTracerProvider(trace.WithSpanProcessor(rec))
	defer tp.Shutdown(context.Background())

	svc := &greetingService{tracer: tp.Tracer(tracerName)}
	svc.Homepage(context.Background())
	svc.Hello(context.Background())

	spans := rec.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "greeting.homepage", spans[0].Name())
	assert.Equal(t, "greeting.hello", spans[1].Name())
}
