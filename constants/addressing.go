package constants

import "time"

// Segment Addressing Constants
const (
	// DefaultAnchorLedCount is the anchor zone width applied when a
	// segment does not specify one
	DefaultAnchorLedCount = 2
)

// Animation Timing Constants
const (
	// FrameInterval is the preview rendering interval (~60 FPS); the
	// effect engine must produce a full frame well inside this budget
	FrameInterval = 16 * time.Millisecond

	// DefaultLoopDuration is one full phase cycle at speed 1.0
	DefaultLoopDuration = 4 * time.Second
)
