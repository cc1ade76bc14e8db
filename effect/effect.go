// Package effect computes per-sample animation colors as pure functions of
// the animation phase. Every kind is total and phase-periodic: the color at
// phase 0 equals the color at phase 1, and identical arguments always yield
// identical output, so frames may be computed concurrently or out of order.
package effect

import (
	"math"

	"github.com/lumina-lights/roofline/constants"
	"github.com/lumina-lights/roofline/render"
)

// Kind selects the animation algorithm
type Kind uint8

const (
	Solid Kind = iota
	Breathe
	Chase
	Rainbow
	Twinkle
	Wave
	Fire
)

// String returns the wire-format effect name
func (k Kind) String() string {
	switch k {
	case Solid:
		return "solid"
	case Breathe:
		return "breathe"
	case Chase:
		return "chase"
	case Rainbow:
		return "rainbow"
	case Twinkle:
		return "twinkle"
	case Wave:
		return "wave"
	case Fire:
		return "fire"
	}
	return "unknown"
}

// Kinds lists every effect in display order
func Kinds() []Kind {
	return []Kind{Solid, Breathe, Chase, Rainbow, Twinkle, Wave, Fire}
}

// Params carries the non-positional inputs of an effect evaluation
type Params struct {
	// Palette holds the base colors produced by pattern resolution. An
	// empty palette is substituted with a single default color.
	Palette []render.RGBA

	// Speed is a playback rate multiplier applied by the animation driver
	// when it advances phase; the engine itself only consumes phase
	Speed float64

	// Intensity is the 0-100 effect strength setting (sparkle density)
	Intensity float64
}

// palette returns the effective color list, never empty
func (p Params) palette() []render.RGBA {
	if len(p.Palette) == 0 {
		return []render.RGBA{render.RGBADefault}
	}
	return p.Palette
}

// baseColor maps sample i of n onto the palette, the solid-effect rule
// every other effect builds on
func baseColor(palette []render.RGBA, i, n int) render.RGBA {
	idx := i * len(palette) / n
	if idx >= len(palette) {
		idx = len(palette) - 1
	}
	return palette[idx]
}

// wrapPhase folds any phase value into [0,1), making every effect periodic
// by construction
func wrapPhase(phase float64) float64 {
	phase -= math.Floor(phase)
	if phase >= 1 || phase < 0 {
		return 0
	}
	return phase
}

// ColorAt evaluates one sample of one frame. i is the sample index, n the
// total sample count, phase the normalized animation clock. n < 1 or an
// out-of-range i yields an unlit pixel rather than a fault.
func ColorAt(kind Kind, i, n int, phase float64, p Params) render.RGBA {
	if n < 1 || i < 0 || i >= n {
		return render.RGBAUnlit
	}
	phase = wrapPhase(phase)
	palette := p.palette()

	switch kind {
	case Solid:
		return baseColor(palette, i, n)
	case Breathe:
		return breatheAt(palette, i, n, phase)
	case Chase:
		return chaseAt(palette, i, n, phase)
	case Rainbow:
		return rainbowAt(palette, i, n, phase)
	case Twinkle:
		return twinkleAt(palette, i, n, phase, p.Intensity)
	case Wave:
		return waveAt(palette, i, n, phase)
	case Fire:
		return fireAt(i, phase)
	}
	return baseColor(palette, i, n)
}

// Frame fills dst with one whole frame, reusing its backing array when the
// capacity suffices. This is the per-frame hot path; it allocates only when
// the caller hands it an undersized buffer.
func Frame(kind Kind, n int, phase float64, p Params, dst []render.RGBA) []render.RGBA {
	if n < 1 {
		return dst[:0]
	}
	if cap(dst) < n {
		dst = make([]render.RGBA, n)
	}
	dst = dst[:n]
	for i := range dst {
		dst[i] = ColorAt(kind, i, n, phase, p)
	}
	return dst
}

// breatheAt applies a sinusoidal alpha envelope over the solid rule. The
// raw multiplier tops out above 1 and is clamped, holding full brightness
// around the crest of each breath.
func breatheAt(palette []render.RGBA, i, n int, phase float64) render.RGBA {
	alpha := constants.BreatheAlphaFloor +
		constants.BreatheAlphaRange*(math.Sin(2*math.Pi*phase)+1)
	c := baseColor(palette, i, n)
	return c.WithAlpha(render.Clamp01(alpha) * float64(c.A) / 255.0)
}

// chaseAt runs a highlight window along the strip, one loop per phase
// cycle. Brightness falls off as cos from the head to the tail; samples
// outside the window are unlit.
func chaseAt(palette []render.RGBA, i, n int, phase float64) render.RGBA {
	window := constants.ChaseWindowFraction * float64(n)
	if window < 1 {
		window = 1
	}
	head := phase * float64(n)

	// Distance from the head, measured backwards along the wrapped strip
	dist := head - float64(i)
	dist -= float64(n) * math.Floor(dist/float64(n))

	if dist >= window {
		return render.RGBAUnlit
	}
	brightness := math.Cos(math.Pi / 2 * dist / window)
	return baseColor(palette, i, n).Scale(brightness)
}

// rainbowAt sweeps color along the strip. With a multi-color palette it
// cyclically interpolates between neighboring entries; with a single color
// it synthesizes a full hue sweep instead, since one color gives the
// interpolation nothing to move between.
func rainbowAt(palette []render.RGBA, i, n int, phase float64) render.RGBA {
	pos := float64(i)/float64(n) + phase
	pos -= math.Floor(pos)

	if len(palette) == 1 {
		return render.Hue(360 * pos)
	}

	scaled := pos * float64(len(palette))
	idx := int(scaled)
	if idx >= len(palette) {
		idx = len(palette) - 1
	}
	next := (idx + 1) % len(palette)
	return render.Lerp(palette[idx], palette[next], scaled-float64(idx))
}

// waveAt modulates brightness with a travelling sine while cycling the
// palette through equal-width index bands
func waveAt(palette []render.RGBA, i, n int, phase float64) render.RGBA {
	pos := float64(i)/float64(n) + phase
	brightness := constants.WaveBrightnessFloor +
		constants.WaveBrightnessRange*(math.Sin(2*math.Pi*constants.WaveFrequency*pos)+1)/2
	return baseColor(palette, i, n).Scale(brightness)
}
