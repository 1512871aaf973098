package attr

import (
	"context"
	"errors"
	"testing"
)

func TestCorrelationIDRoundTrip(t *testing.T) {
	ctx := WithCorrelationID(context.Background(), "abc-123")

	if got := CorrelationIDFromContext(ctx); got != "abc-123" {
		t.Fatalf("expected abc-123, got %q", got)
	}
	a := ExtractCorrelationID(ctx)
	if a.Key != "correlation_id" || a.Value.String() != "abc-123" {
		t.Fatalf("unexpected attr: %v", a)
	}
	if got := CorrelationIDFromContext(context.Background()); got != "" {
		t.Fatalf("expected empty id, got %q", got)
	}
}

func TestError(t *testing.T) {
	if got := Error(errors.New("boom")).Value.String(); got != "boom" {
		t.Fatalf("expected boom, got %q", got)
	}
	if got := Error(nil).Value.String(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
