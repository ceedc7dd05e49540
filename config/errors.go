package config

import "errors"

// ErrInvalidFrame is returned, wrapped with details, when a loaded
// FrameConfig fails struct-tag validation or references an unknown
// resource usage or execution domain.
var ErrInvalidFrame = errors.New("config: invalid frame configuration")
