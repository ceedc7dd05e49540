package telemetry

import "github.com/google/uuid"

// NewFrameID returns a fresh correlation ID for one GPUTaskGraph build,
// threaded through log lines and metric labels so a single frame's
// activity can be traced across both.
func NewFrameID() string {
	return uuid.NewString()
}
