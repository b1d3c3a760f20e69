package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"go.opentelemetry.io/otel/trace"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	line := strings.TrimSpace(buf.String())
	if err := sonic.UnmarshalString(line, &entry); err != nil {
		t.Fatalf("decode log line %q: %v", line, err)
	}
	return entry
}

func TestLogger_KeyValueFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(&buf, LevelInfo, FormatJSON).With("component", "apifootball")
	logger.Warn("upstream rejected request", "status", 429, "error", errors.New("too many requests"))

	entry := decodeLine(t, &buf)
	if entry["msg"] != "upstream rejected request" || entry["level"] != "WARN" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if entry["component"] != "apifootball" || entry["status"] != float64(429) || entry["error"] != "too many requests" {
		t.Fatalf("unexpected fields: %v", entry)
	}
}

func TestLogger_RedactsSensitiveKeys(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	New(&buf, LevelInfo, FormatJSON).Info("calling upstream", "api_key", "secret-key", "Authorization", "Bearer x")

	if strings.Contains(buf.String(), "secret-key") || strings.Contains(buf.String(), "Bearer x") {
		t.Fatalf("sensitive value leaked: %s", buf.String())
	}
	entry := decodeLine(t, &buf)
	if entry["api_key"] != redactedValue {
		t.Fatalf("expected redacted api_key, got %v", entry["api_key"])
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(&buf, LevelWarn, FormatJSON)
	logger.Info("dropped")
	logger.Debug("dropped")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn, got %s", buf.String())
	}
}

func TestLogger_TraceFieldsFromContext(t *testing.T) {
	t.Parallel()

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	var buf bytes.Buffer
	New(&buf, LevelInfo, FormatJSON).InfoContext(ctx, "http request")

	entry := decodeLine(t, &buf)
	if entry["trace_id"] != traceID.String() || entry["span_id"] != spanID.String() {
		t.Fatalf("expected trace fields, got %v", entry)
	}
}

func TestLogger_NilUsesDefault(t *testing.T) {
	var logger *Logger
	logger.Info("no panic")
	if err := logger.Sync(); err != nil {
		t.Fatalf("sync nil logger: %v", err)
	}
	if logger.With("k", "v") == nil || logger.Named("x") == nil {
		t.Fatalf("expected derived loggers from nil receiver")
	}
}

func TestFormatForEnv(t *testing.T) {
	t.Parallel()

	if FormatForEnv("dev") != FormatConsole {
		t.Fatalf("expected console format for dev")
	}
	if FormatForEnv("prod") != FormatJSON || FormatForEnv("stage") != FormatJSON {
		t.Fatalf("expected json format outside dev")
	}
}
