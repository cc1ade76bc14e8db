// Package scene ties the address space, pattern resolution, path sampling,
// and effect engine together into a per-frame evaluator. A Scene is an
// immutable snapshot of authored inputs; a Renderer precomputes everything
// that survives across frames so the per-frame path only evaluates effects.
package scene

import (
	"github.com/lumina-lights/roofline/effect"
	"github.com/lumina-lights/roofline/pattern"
	"github.com/lumina-lights/roofline/render"
	"github.com/lumina-lights/roofline/segment"
	"github.com/lumina-lights/roofline/trace"
)

// Scene bundles the externally authored inputs of one rendering setup
type Scene struct {
	Config   segment.Configuration
	Template pattern.Template
	Effect   effect.Kind

	// Path is the traced outline in normalized coordinates; fewer than
	// two points falls back to the synthesized default arc
	Path []trace.Point
}

// Renderer is the precomputed frame evaluator for one Scene. It recomputes
// only when the scene changes (build a new Renderer); Frame itself performs
// no allocation beyond its reusable output buffer.
type Renderer struct {
	scene   Scene
	samples []trace.Point
	res     pattern.Resolution
	total   int
	buf     []render.RGBA
}

// NewRenderer samples the scene's path and resolves its template.
// sampleCount < 1 derives the count from the path's arc length.
func NewRenderer(s Scene, sampleCount int) *Renderer {
	samples := trace.Samples(s.Path, sampleCount)
	return &Renderer{
		scene:   s,
		samples: samples,
		res:     pattern.Resolve(s.Config, s.Template),
		total:   s.Config.TotalPixelCount(),
		buf:     make([]render.RGBA, len(samples)),
	}
}

// Samples returns the precomputed sample positions; index i is logical
// LED i. Callers must not modify the slice.
func (r *Renderer) Samples() []trace.Point {
	return r.samples
}

// SampleCount is the number of virtual LEDs along the path
func (r *Renderer) SampleCount() int {
	return len(r.samples)
}

// PixelForSample maps a sample index onto the global pixel it represents,
// by proportional resampling. Returns 0 when the strip is empty.
func (r *Renderer) PixelForSample(i int) int {
	n := len(r.samples)
	if n == 0 || r.total == 0 {
		return 0
	}
	p := i * r.total / n
	if p >= r.total {
		p = r.total - 1
	}
	return p
}

// SampleForPixel is the inverse proportional mapping, used by hardware
// adapters that address physical pixels
func (r *Renderer) SampleForPixel(global int) int {
	n := len(r.samples)
	if n == 0 || r.total == 0 {
		return 0
	}
	s := global * n / r.total
	if s >= n {
		s = n - 1
	}
	return s
}

// ValidateDevice checks the logical strip against a controller's reported
// pixel count; a mismatch is advisory only
func (r *Renderer) ValidateDevice(expectedCount int) bool {
	return r.scene.Config.ValidateAgainstDevice(expectedCount)
}

// Warnings surfaces configuration defects for the editor layer
func (r *Renderer) Warnings() []segment.Warning {
	return segment.Validate(r.scene.Config)
}

// Frame evaluates every sample at the given phase. The returned slice is
// reused between calls; callers needing to retain a frame must copy it.
func (r *Renderer) Frame(phase float64) []render.RGBA {
	params := effect.Params{
		Palette:   r.res.Colors,
		Speed:     r.scene.Template.Speed,
		Intensity: r.scene.Template.Intensity,
	}

	if r.scene.Template.Type == pattern.ChaseBySegment && r.scene.Effect == effect.Chase {
		return r.segmentChaseFrame(phase, params)
	}
	r.buf = effect.Frame(r.scene.Effect, len(r.samples), phase, params, r.buf)
	return r.buf
}

// segmentChaseFrame contains the chase highlight within one segment at a
// time: each segment owns the phase window starting at its resolved offset,
// sized by its share of the strip, and runs a local chase through it. The
// highlight therefore hands off cleanly at segment boundaries instead of
// sweeping across them.
func (r *Renderer) segmentChaseFrame(phase float64, params effect.Params) []render.RGBA {
	n := len(r.samples)
	if cap(r.buf) < n {
		r.buf = make([]render.RGBA, n)
	}
	r.buf = r.buf[:n]
	phase -= float64(int(phase))
	if phase < 0 {
		phase++
	}

	for i := 0; i < n; i++ {
		r.buf[i] = render.RGBAUnlit

		g := r.PixelForSample(i)
		seg, ok := r.scene.Config.SegmentForPixel(g)
		if !ok || seg.PixelCount == 0 {
			continue
		}
		offset := r.res.SegmentPhase[seg.ID]
		share := float64(seg.PixelCount) / float64(r.total)

		// Outside this segment's window the highlight is elsewhere
		if phase < offset || phase >= offset+share {
			continue
		}
		local := (phase - offset) / share
		segParams := params
		segParams.Palette = r.res.Colors[seg.StartPixel : seg.StartPixel+seg.PixelCount]
		r.buf[i] = effect.ColorAt(effect.Chase, g-seg.StartPixel, seg.PixelCount, local, segParams)
	}
	return r.buf
}
