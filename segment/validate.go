package segment

import "fmt"

// WarningCode identifies a class of configuration defect
type WarningCode uint8

const (
	WarnOutOfRangeAnchor WarningCode = iota
	WarnNegativePixelCount
	WarnEmptySegment
)

// String returns the wire-format warning name
func (w WarningCode) String() string {
	switch w {
	case WarnOutOfRangeAnchor:
		return "OutOfRangeAnchor"
	case WarnNegativePixelCount:
		return "NegativePixelCount"
	case WarnEmptySegment:
		return "EmptySegment"
	}
	return "Unknown"
}

// Warning is a non-fatal configuration defect surfaced as data. Rendering
// continues regardless; the editor decides what to show the user.
type Warning struct {
	SegmentID string
	Code      WarningCode
	Detail    string
}

// Validate scans every segment for defects the address space tolerates at
// render time (by clamping) but the user should still fix. It never stops
// at the first problem; all segments are checked.
func Validate(c Configuration) []Warning {
	var warnings []Warning
	for _, s := range c.Segments {
		if s.PixelCount < 0 {
			warnings = append(warnings, Warning{
				SegmentID: s.ID,
				Code:      WarnNegativePixelCount,
				Detail:    fmt.Sprintf("pixel count %d clamped to 0", s.PixelCount),
			})
			continue
		}
		if s.PixelCount == 0 {
			warnings = append(warnings, Warning{
				SegmentID: s.ID,
				Code:      WarnEmptySegment,
				Detail:    "segment has no pixels and will not render",
			})
			continue
		}
		for _, a := range s.AnchorPixels {
			if a < 0 || a >= s.PixelCount {
				warnings = append(warnings, Warning{
					SegmentID: s.ID,
					Code:      WarnOutOfRangeAnchor,
					Detail:    fmt.Sprintf("anchor %d outside [0,%d), clamped", a, s.PixelCount),
				})
			}
		}
	}
	return warnings
}
