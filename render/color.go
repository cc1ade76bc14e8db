package render

import (
	"github.com/lucasb-eyer/go-colorful"
)

// RGBA stores explicit 8-bit color channels plus alpha, decoupled from any
// terminal or device color model. Alpha is straight (not premultiplied).
type RGBA struct {
	R, G, B, A uint8
}

// Predefined colors
var (
	RGBABlack = RGBA{0, 0, 0, 255}
	RGBAWhite = RGBA{255, 255, 255, 255}

	// RGBAUnlit is a fully transparent pixel, distinct from opaque black
	RGBAUnlit = RGBA{0, 0, 0, 0}

	// RGBADefault is the warm white substituted when a caller supplies no
	// palette at all (roughly 2700K, the common roofline accent color)
	RGBADefault = RGBA{255, 214, 170, 255}
)

// Opaque builds a fully opaque color from channel values
func Opaque(r, g, b uint8) RGBA {
	return RGBA{r, g, b, 255}
}

// IsLit reports whether the color contributes any light
func (c RGBA) IsLit() bool {
	return c.A > 0 && (c.R > 0 || c.G > 0 || c.B > 0)
}

// Clamp01 restricts a unit-interval factor before it touches a channel
func Clamp01(v float64) float64 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 1
	}
	return v
}

// clampChannel converts float to uint8 with rounding
func clampChannel(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v + 0.5)
}

// Scale multiplies the color channels by a brightness factor, leaving alpha
// untouched. The factor is clamped to [0,1].
func (c RGBA) Scale(brightness float64) RGBA {
	brightness = Clamp01(brightness)
	return RGBA{
		R: clampChannel(float64(c.R) * brightness),
		G: clampChannel(float64(c.G) * brightness),
		B: clampChannel(float64(c.B) * brightness),
		A: c.A,
	}
}

// WithAlpha replaces alpha with the clamped unit-interval factor
func (c RGBA) WithAlpha(alpha float64) RGBA {
	c.A = clampChannel(Clamp01(alpha) * 255.0)
	return c
}

// Lerp linearly interpolates between two colors, channel-wise including alpha.
// t is clamped to [0,1]; t=0 yields a, t=1 yields b.
func Lerp(a, b RGBA, t float64) RGBA {
	t = Clamp01(t)
	return RGBA{
		R: clampChannel(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: clampChannel(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: clampChannel(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: clampChannel(float64(a.A) + (float64(b.A)-float64(a.A))*t),
	}
}

// Blend performs straight alpha blending: result = src*alpha + dst*(1-alpha).
// Early-out on the endpoints saves the per-channel math in the frame loop.
func (dst RGBA) Blend(src RGBA, alpha float64) RGBA {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGBA{
		R: uint8(float64(src.R)*alpha + float64(dst.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(dst.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(dst.B)*inv),
		A: uint8(float64(src.A)*alpha + float64(dst.A)*inv),
	}
}

// Over composites the color onto an opaque background using its own alpha,
// producing the flattened opaque color a screen or LED strip would show.
func (c RGBA) Over(bg RGBA) RGBA {
	out := bg.Blend(RGBA{c.R, c.G, c.B, 255}, float64(c.A)/255.0)
	out.A = 255
	return out
}

// Hue returns a fully saturated, full-value color at the given hue angle in
// degrees. Used to synthesize a rainbow sweep from a single base color.
func Hue(degrees float64) RGBA {
	degrees = degrees - 360.0*float64(int(degrees/360.0))
	if degrees < 0 {
		degrees += 360.0
	}
	r, g, b := colorful.Hsv(degrees, 1.0, 1.0).RGB255()
	return RGBA{r, g, b, 255}
}

// LerpBlended interpolates between two colors in HCL space, which keeps
// perceived brightness steady across the transition. Falls back to channel
// lerp when either endpoint is unlit, since HCL is undefined at black.
func LerpBlended(a, b RGBA, t float64) RGBA {
	if !a.IsLit() || !b.IsLit() {
		return Lerp(a, b, t)
	}
	ca := colorful.Color{R: float64(a.R) / 255.0, G: float64(a.G) / 255.0, B: float64(a.B) / 255.0}
	cb := colorful.Color{R: float64(b.R) / 255.0, G: float64(b.G) / 255.0, B: float64(b.B) / 255.0}
	r, g, bl := ca.BlendHcl(cb, Clamp01(t)).Clamped().RGB255()
	return RGBA{r, g, bl, clampChannel(float64(a.A) + (float64(b.A)-float64(a.A))*Clamp01(t))}
}
