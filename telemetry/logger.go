package telemetry

import (
	"os"

	"github.com/hashicorp/go-hclog"
)

// NewLogger returns a named hclog.Logger writing to stderr at level,
// suitable for injecting into a GPUTaskGraph build or a framepool run.
// An empty level defaults to "info".
func NewLogger(name, level string) hclog.Logger {
	if level == "" {
		level = "info"
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:            name,
		Level:           hclog.LevelFromString(level),
		Output:          os.Stderr,
		IncludeLocation: false,
	})
}
