package constants

// Path Sampling Constants
const (
	// SampleSpacing is the target path distance between two virtual LEDs,
	// in the same units as the path coordinates handed to the sampler
	SampleSpacing = 4.0

	// MinSampleCount / MaxSampleCount bound the derived virtual LED count
	// for visual quality on short paths and frame budget on long ones
	MinSampleCount = 20
	MaxSampleCount = 150
)

// Default Arc Constants
//
// Used when a trace has fewer than two points: a synthetic single-peak
// roofline spanning most of the canvas width.
const (
	// DefaultArcPointCount is the vertex count of the synthesized polyline
	DefaultArcPointCount = 12

	// DefaultArcLeft / DefaultArcRight bound the horizontal span in
	// normalized canvas coordinates
	DefaultArcLeft  = 0.08
	DefaultArcRight = 0.92

	// DefaultArcBandHeight is the vertical band the arc occupies, as a
	// fraction of canvas height, centered vertically
	DefaultArcBandHeight = 0.25

	// DefaultArcPeakOffset places the peak this fraction of the band
	// below the band's top edge
	DefaultArcPeakOffset = 0.25
)
