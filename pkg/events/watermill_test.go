package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/go-cmp/cmp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/ghuser/catalog/pkg/logger"
)

func setupTracer() *sdktrace.TracerProvider {
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return tp
}

func TestRetryWithBackoff_SuccessOnFirstAttempt(t *testing.T) {
	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		return nil
	}
	msg := message.NewMessage("id", nil)
	if err := retryWithBackoff(context.Background(), msg, handler, maxRetries, time.Millisecond, logger.Discard()); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestRetryWithBackoff_SuccessAfterRetries(t *testing.T) {
	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		if calls < 3 {
			return errors.New("transient error")
		}
		return nil
	}
	msg := message.NewMessage("id", nil)
	if err := retryWithBackoff(context.Background(), msg, handler, maxRetries, time.Millisecond, logger.Discard()); err != nil {
		t.Fatalf("expected nil after eventual success, got %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestRetryWithBackoff_ExhaustsRetries(t *testing.T) {
	permanent := errors.New("permanent error")
	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		return permanent
	}
	msg := message.NewMessage("id", nil)
	err := retryWithBackoff(context.Background(), msg, handler, maxRetries, time.Millisecond, logger.Discard())
	if !errors.Is(err, permanent) {
		t.Fatalf("expected wrapped permanent error, got %v", err)
	}
	if calls != maxRetries {
		t.Errorf("expected %d calls, got %d", maxRetries, calls)
	}
}

func TestRetryWithBackoff_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		return errors.New("error")
	}
	msg := message.NewMessage("id", nil)
	err := retryWithBackoff(ctx, msg, handler, maxRetries, time.Second, logger.Discard())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call before context cancel, got %d", calls)
	}
}

type sampleEvent struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestNewMessage_MetadataAndDecode(t *testing.T) {
	want := sampleEvent{ID: "c-1", Name: "Electronics"}
	msg, err := NewMessage(context.Background(), "category.created", want)
	if err != nil {
		t.Fatalf("new message: %v", err)
	}

	if got := msg.Metadata.Get(MetaTopic); got != "category.created" {
		t.Errorf("topic metadata = %q", got)
	}
	if got := msg.Metadata.Get(MetaEventID); got != msg.UUID {
		t.Errorf("event id metadata = %q, want %q", got, msg.UUID)
	}
	if got := msg.Metadata.Get(MetaEventVersion); got != eventVersion {
		t.Errorf("version metadata = %q", got)
	}

	got, err := Decode[sampleEvent](msg)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("decoded event mismatch (-want +got):\n%s", diff)
	}
}

func TestNewMessage_Unmarshalable(t *testing.T) {
	if _, err := NewMessage(context.Background(), "x", make(chan int)); err == nil {
		t.Fatal("expected marshal error")
	}
}

func TestDecode_BadPayload(t *testing.T) {
	msg := message.NewMessage("id", []byte("{"))
	if _, err := Decode[sampleEvent](msg); err == nil {
		t.Fatal("expected decode error")
	}
}

// The trace context injected by NewMessage must be restored by extractTrace,
// which Subscribe applies to every delivered message.
func TestTracePropagation_RoundTrip(t *testing.T) {
	tp := setupTracer()
	defer tp.Shutdown(context.Background()) //nolint:errcheck

	ctx, span := otel.Tracer("test").Start(context.Background(), "publish-span")
	defer span.End()
	wantTraceID := span.SpanContext().TraceID()

	msg, err := NewMessage(ctx, "item.created", sampleEvent{ID: "i-1"})
	if err != nil {
		t.Fatalf("new message: %v", err)
	}

	gotSpan := trace.SpanFromContext(extractTrace(context.Background(), msg))
	if !gotSpan.SpanContext().IsValid() {
		t.Fatal("extracted span context is not valid")
	}
	if gotSpan.SpanContext().TraceID() != wantTraceID {
		t.Errorf("trace ID mismatch: want %s, got %s", wantTraceID, gotSpan.SpanContext().TraceID())
	}
}
