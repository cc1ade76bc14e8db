// Package pattern resolves a lighting template against a segment address
// space, producing the per-pixel base colors the effect engine animates.
// Resolution is pure: identical inputs always produce identical output.
package pattern

import "github.com/lumina-lights/roofline/render"

// TemplateType selects the segment-aware base color rule
type TemplateType uint8

const (
	Downlighting TemplateType = iota
	ChaseBySegment
	AlternatingSegments
	CornerAccent
	Uniform
)

// String returns the wire-format template name
func (t TemplateType) String() string {
	switch t {
	case Downlighting:
		return "downlighting"
	case ChaseBySegment:
		return "chaseBySegment"
	case AlternatingSegments:
		return "alternatingSegments"
	case CornerAccent:
		return "cornerAccent"
	case Uniform:
		return "uniform"
	}
	return "unknown"
}

// Template is an authored pattern selection, handed to the core as an
// immutable snapshot
type Template struct {
	Type TemplateType

	// AnchorColor lights anchor zones (and everything, for uniform)
	AnchorColor render.RGBA

	// SpacedColor lights the periodic in-between pixels
	SpacedColor render.RGBA

	// SpacingCount is the number of unlit pixels between two spaced ones
	SpacingCount int

	// AnchorAlwaysOn keeps anchor zones lit regardless of spacing
	AnchorAlwaysOn bool

	// Speed and Intensity pass through to the effect engine
	Speed     float64
	Intensity float64

	// SecondaryColor is the optional alternate for alternatingSegments;
	// nil falls back to SpacedColor
	SecondaryColor *render.RGBA
}

// secondary resolves the alternate segment color with its fallback chain
func (t Template) secondary() render.RGBA {
	if t.SecondaryColor != nil {
		return *t.SecondaryColor
	}
	return t.SpacedColor
}
