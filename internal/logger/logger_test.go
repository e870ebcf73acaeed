package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	l := Logger()
	assert.NotNil(t, l)
}

func TestWithRequestID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ctx = WithRequestID(ctx, "test-request-123")

	val := ctx.Value(requestIDKey)
	assert.Equal(t, "test-request-123", val)
}

func TestWithJob(t *testing.T) {
	t.Parallel()

	ctx := WithJob(context.Background(), "bill-rollover")

	assert.Equal(t, "bill-rollover", ctx.Value(jobKey))
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		setupCtx func() context.Context
	}{
		{
			name:     "empty context",
			setupCtx: context.Background,
		},
		{
			name: "with request ID",
			setupCtx: func() context.Context {
				return WithRequestID(context.Background(), "req-123")
			},
		},
		{
			name: "with job",
			setupCtx: func() context.Context {
				return WithJob(context.Background(), "bill-rollover")
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.NotNil(t, FromContext(tt.setupCtx()))
		})
	}
}

// Setup swaps the package default, so these tests do not run in parallel.
func TestSetup_ProductionWritesJSON(t *testing.T) {
	defer Setup(os.Getenv("ENV"), os.Stdout)

	var buf bytes.Buffer
	Setup("production", &buf)

	FromContext(WithRequestID(context.Background(), "req-9")).Info("hello", "key", "value")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "req-9", entry["request_id"])
	assert.Equal(t, "value", entry["key"])
}

func TestSetup_DevelopmentLogsDebug(t *testing.T) {
	defer Setup(os.Getenv("ENV"), os.Stdout)

	var buf bytes.Buffer
	Setup("development", &buf)

	Debug("debug line")
	Info("info line")
	Warn("warn line")
	Error("error line")

	out := buf.String()
	assert.Contains(t, out, "debug line")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "error line")
}
