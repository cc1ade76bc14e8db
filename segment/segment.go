// Package segment models the logical pixel address space of a roofline
// installation: an ordered list of named segments concatenated into one
// global LED strip, with derived anchor zones and connectivity grouping.
package segment

import "github.com/lumina-lights/roofline/constants"

// Type classifies a segment's architectural role along the roofline
type Type uint8

const (
	TypeRun Type = iota
	TypeCorner
	TypePeak
	TypeColumn
	TypeConnector
)

// String returns the wire-format name used by editor and device layers
func (t Type) String() string {
	switch t {
	case TypeRun:
		return "run"
	case TypeCorner:
		return "corner"
	case TypePeak:
		return "peak"
	case TypeColumn:
		return "column"
	case TypeConnector:
		return "connector"
	}
	return "unknown"
}

// Direction is the physical wiring direction of a segment's data line
type Direction uint8

const (
	DirectionForward Direction = iota
	DirectionReverse
)

// Segment is a named, contiguous run of LEDs within the global strip.
// StartPixel and SortOrder are derived by Configuration recalculation and
// never authored directly.
type Segment struct {
	ID   string
	Name string

	// PixelCount is the number of physical LEDs on this segment
	PixelCount int

	// StartPixel is the global index of this segment's first pixel,
	// derived from the pixel counts of all segments sorted before it
	StartPixel int

	Type      Type
	Direction Direction

	// AnchorPixels holds explicit local anchor positions; when empty,
	// anchors are inferred from Type
	AnchorPixels []int

	// AnchorLedCount is the width of each anchor zone in pixels
	AnchorLedCount int

	// SortOrder is the segment's position in strip order, derived
	SortOrder int

	// ArchitecturalRole is an optional free-form label ("eave", "gable")
	ArchitecturalRole string

	// ConnectedToPrevious marks this segment as physically wired to the
	// previous one with no power injection gap
	ConnectedToPrevious bool

	// Level is the building story this segment sits on
	Level int

	// AdjacentSegmentIDs lists physically neighboring segments
	AdjacentSegmentIDs []string
}

// EndPixel is the global index of the segment's last pixel. Meaningless
// when PixelCount is zero.
func (s Segment) EndPixel() int {
	return s.StartPixel + s.PixelCount - 1
}

// ContainsPixel reports whether the global index falls inside the segment
func (s Segment) ContainsPixel(global int) bool {
	return s.PixelCount > 0 && global >= s.StartPixel && global <= s.EndPixel()
}

// anchorWidth returns the effective zone width, substituting the default
// when the segment does not carry a valid one
func (s Segment) anchorWidth() int {
	if s.AnchorLedCount < 1 {
		return constants.DefaultAnchorLedCount
	}
	return s.AnchorLedCount
}

// Zone is a half-open range [Start, End) of local pixel indices marking an
// anchor accent area. Derived, never stored.
type Zone struct {
	Start int
	End   int
}

// Contains reports whether the local index falls inside the zone
func (z Zone) Contains(local int) bool {
	return local >= z.Start && local < z.End
}

// AnchorZones derives the segment's anchor zones. Explicit anchor pixels
// take precedence; otherwise zones are inferred from the segment type:
// runs and columns anchor both ends, corners and peaks anchor the middle,
// connectors have none. Out-of-range anchors are clamped into the segment
// rather than rejected.
func (s Segment) AnchorZones() []Zone {
	if s.PixelCount <= 0 {
		return nil
	}
	width := s.anchorWidth()
	if width > s.PixelCount {
		width = s.PixelCount
	}

	if len(s.AnchorPixels) > 0 {
		zones := make([]Zone, 0, len(s.AnchorPixels))
		for _, a := range s.AnchorPixels {
			zones = append(zones, s.clampZone(a, width))
		}
		return zones
	}

	switch s.Type {
	case TypeRun, TypeColumn:
		start := Zone{0, width}
		end := s.clampZone(s.PixelCount-width, width)
		if end.Start <= start.Start {
			// Segment too short for two distinct zones
			return []Zone{start}
		}
		return []Zone{start, end}
	case TypeCorner, TypePeak:
		return []Zone{s.clampZone((s.PixelCount-width)/2, width)}
	default:
		return nil
	}
}

// clampZone builds a zone of the given width starting at the local index,
// shifted as needed to stay inside [0, PixelCount)
func (s Segment) clampZone(start, width int) Zone {
	if start < 0 {
		start = 0
	}
	if start+width > s.PixelCount {
		start = s.PixelCount - width
		if start < 0 {
			start = 0
			width = s.PixelCount
		}
	}
	return Zone{start, start + width}
}

// IsAnchorLocal reports whether the local index falls inside any of the
// segment's anchor zones
func (s Segment) IsAnchorLocal(local int) bool {
	for _, z := range s.AnchorZones() {
		if z.Contains(local) {
			return true
		}
	}
	return false
}

// clone deep-copies the segment's slice fields so copy-on-write updates
// never alias the source configuration
func (s Segment) clone() Segment {
	out := s
	if len(s.AnchorPixels) > 0 {
		out.AnchorPixels = append([]int(nil), s.AnchorPixels...)
	}
	if len(s.AdjacentSegmentIDs) > 0 {
		out.AdjacentSegmentIDs = append([]string(nil), s.AdjacentSegmentIDs...)
	}
	return out
}
