package testutil

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/wizzomafizzo/hyprsettings/internal/logging"
)

// NewTestContext creates a context with a debug logger writing to memory.
// The returned function reads everything logged so far.
func NewTestContext(t *testing.T) (ctx context.Context, getLogOutput func() string) {
	t.Helper()

	var logOutput strings.Builder
	syncWriter := zerolog.SyncWriter(&logOutput)

	ctx, err := logging.New(context.Background(), nil, logging.Config{
		ConfigDir: "test-config",
		Writer:    syncWriter,
		Level:     zerolog.DebugLevel,
	})
	if err != nil {
		t.Fatalf("Failed to create test logger: %v", err)
	}

	return ctx, logOutput.String
}
