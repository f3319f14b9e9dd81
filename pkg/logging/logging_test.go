package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestComponentChainsAndTags(t *testing.T) {
	var buf bytes.Buffer
	old := Logger
	Logger = zerolog.New(&buf)
	defer func() { Logger = old }()

	// Chained directly off the return value, as handlers do.
	Component("api").Info().Str("k", "v").Msg("ready")

	out := buf.String()
	if !strings.Contains(out, `"component":"api"`) {
		t.Fatalf("missing component tag: %s", out)
	}
	if !strings.Contains(out, `"k":"v"`) || !strings.Contains(out, "ready") {
		t.Fatalf("missing fields: %s", out)
	}
}
