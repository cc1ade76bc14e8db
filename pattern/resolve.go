package pattern

import (
	"github.com/lumina-lights/roofline/render"
	"github.com/lumina-lights/roofline/segment"
)

// Resolution is the output of resolving a template against a configuration:
// one base color per global pixel, plus the per-segment phase offsets the
// chase effect uses to contain its highlight within segment boundaries.
type Resolution struct {
	// Colors holds one base color per global pixel, in strip order
	Colors []render.RGBA

	// SegmentPhase maps segment ID to its chase phase offset: the prefix
	// pixel sum of all earlier segments over the total count. Populated
	// only for chaseBySegment templates.
	SegmentPhase map[string]float64
}

// Resolve computes per-pixel base colors for the whole strip. Pixels no
// rule lights are left unlit (transparent), not black, so downstream
// blending can distinguish "off" from "dark".
func Resolve(c segment.Configuration, t Template) Resolution {
	total := c.TotalPixelCount()
	res := Resolution{Colors: make([]render.RGBA, total)}
	for i := range res.Colors {
		res.Colors[i] = render.RGBAUnlit
	}

	switch t.Type {
	case Downlighting:
		resolveDownlighting(c, t, res.Colors)
	case ChaseBySegment:
		res.SegmentPhase = resolveChase(c, t, res.Colors)
	case AlternatingSegments:
		resolveAlternating(c, t, res.Colors)
	case CornerAccent:
		resolveCornerAccent(c, t, res.Colors)
	case Uniform:
		for i := range res.Colors {
			res.Colors[i] = t.AnchorColor
		}
	}
	return res
}

// resolveDownlighting lights anchor zones solid and spaces accent pixels
// evenly through the remainder. The spacing counter runs per segment over
// non-anchor pixels only, so anchors never shift the rhythm.
func resolveDownlighting(c segment.Configuration, t Template, colors []render.RGBA) {
	period := t.SpacingCount + 1
	if period < 1 {
		period = 1
	}
	for _, s := range c.Segments {
		spacingIdx := 0
		for local := 0; local < s.PixelCount; local++ {
			if t.AnchorAlwaysOn && s.IsAnchorLocal(local) {
				colors[s.StartPixel+local] = t.AnchorColor
				continue
			}
			if spacingIdx%period == 0 {
				colors[s.StartPixel+local] = t.SpacedColor
			}
			spacingIdx++
		}
	}
}

// resolveChase paints the whole strip in the anchor color and computes the
// phase offset that starts each segment's highlight at its own boundary
func resolveChase(c segment.Configuration, t Template, colors []render.RGBA) map[string]float64 {
	for i := range colors {
		colors[i] = t.AnchorColor
	}
	total := c.TotalPixelCount()
	offsets := make(map[string]float64, len(c.Segments))
	for _, s := range c.Segments {
		if total > 0 {
			offsets[s.ID] = float64(s.StartPixel) / float64(total)
		} else {
			offsets[s.ID] = 0
		}
	}
	return offsets
}

// resolveAlternating colors segments by sort order parity
func resolveAlternating(c segment.Configuration, t Template, colors []render.RGBA) {
	alt := t.secondary()
	for _, s := range c.Segments {
		color := t.AnchorColor
		if s.SortOrder%2 != 0 {
			color = alt
		}
		for local := 0; local < s.PixelCount; local++ {
			colors[s.StartPixel+local] = color
		}
	}
}

// resolveCornerAccent highlights anchor zones of corner and peak segments
// and floods everything else with the spaced color
func resolveCornerAccent(c segment.Configuration, t Template, colors []render.RGBA) {
	for _, s := range c.Segments {
		accent := s.Type == segment.TypeCorner || s.Type == segment.TypePeak
		for local := 0; local < s.PixelCount; local++ {
			if accent && s.IsAnchorLocal(local) {
				colors[s.StartPixel+local] = t.AnchorColor
			} else {
				colors[s.StartPixel+local] = t.SpacedColor
			}
		}
	}
}
