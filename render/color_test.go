package render

import "testing"

func TestScale(t *testing.T) {
	tests := []struct {
		name       string
		c          RGBA
		brightness float64
		want       RGBA
	}{
		{"identity", RGBA{200, 100, 50, 255}, 1.0, RGBA{200, 100, 50, 255}},
		{"half", RGBA{200, 100, 50, 255}, 0.5, RGBA{100, 50, 25, 255}},
		{"zero", RGBA{200, 100, 50, 255}, 0.0, RGBA{0, 0, 0, 255}},
		{"negative clamps to zero", RGBA{200, 100, 50, 255}, -1.0, RGBA{0, 0, 0, 255}},
		{"above one clamps to identity", RGBA{200, 100, 50, 255}, 2.0, RGBA{200, 100, 50, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Scale(tt.brightness); got != tt.want {
				t.Errorf("Scale(%v) = %v, want %v", tt.brightness, got, tt.want)
			}
		})
	}
}

func TestScaleKeepsAlpha(t *testing.T) {
	c := RGBA{100, 100, 100, 77}
	if got := c.Scale(0.5); got.A != 77 {
		t.Errorf("alpha = %d, want 77", got.A)
	}
}

func TestWithAlpha(t *testing.T) {
	c := RGBAWhite
	if got := c.WithAlpha(0.5); got.A != 128 {
		t.Errorf("alpha = %d, want 128", got.A)
	}
	if got := c.WithAlpha(1.5); got.A != 255 {
		t.Errorf("alpha = %d, want clamped 255", got.A)
	}
	if got := c.WithAlpha(-0.5); got.A != 0 {
		t.Errorf("alpha = %d, want clamped 0", got.A)
	}
}

func TestLerpEndpoints(t *testing.T) {
	a := RGBA{10, 20, 30, 255}
	b := RGBA{210, 120, 130, 55}

	if got := Lerp(a, b, 0); got != a {
		t.Errorf("t=0: got %v, want %v", got, a)
	}
	if got := Lerp(a, b, 1); got != b {
		t.Errorf("t=1: got %v, want %v", got, b)
	}
	mid := Lerp(a, b, 0.5)
	if mid.R != 110 || mid.G != 70 || mid.B != 80 || mid.A != 155 {
		t.Errorf("t=0.5: got %v", mid)
	}
}

func TestBlend(t *testing.T) {
	dst := RGBA{0, 0, 0, 255}
	src := RGBA{255, 255, 255, 255}

	if got := dst.Blend(src, 0); got != dst {
		t.Errorf("alpha 0: got %v, want dst", got)
	}
	if got := dst.Blend(src, 1); got != src {
		t.Errorf("alpha 1: got %v, want src", got)
	}
	mid := dst.Blend(src, 0.5)
	if mid.R != 127 {
		t.Errorf("alpha 0.5: R = %d, want 127", mid.R)
	}
}

func TestOverFlattensAlpha(t *testing.T) {
	half := RGBA{255, 0, 0, 128}
	got := half.Over(RGBABlack)
	if got.A != 255 {
		t.Errorf("alpha = %d, want opaque", got.A)
	}
	if got.R < 120 || got.R > 135 || got.G != 0 {
		t.Errorf("got %v, want half-intensity red", got)
	}

	if got := RGBAUnlit.Over(RGBABlack); got != RGBABlack {
		t.Errorf("unlit over black = %v, want black", got)
	}
}

func TestHue(t *testing.T) {
	tests := []struct {
		degrees float64
		want    RGBA
	}{
		{0, RGBA{255, 0, 0, 255}},
		{120, RGBA{0, 255, 0, 255}},
		{240, RGBA{0, 0, 255, 255}},
		{360, RGBA{255, 0, 0, 255}},
		{-120, RGBA{0, 0, 255, 255}},
	}
	for _, tt := range tests {
		if got := Hue(tt.degrees); got != tt.want {
			t.Errorf("Hue(%v) = %v, want %v", tt.degrees, got, tt.want)
		}
	}
}

func TestIsLit(t *testing.T) {
	tests := []struct {
		c    RGBA
		want bool
	}{
		{RGBAUnlit, false},
		{RGBABlack, false},
		{RGBAWhite, true},
		{RGBA{255, 0, 0, 0}, false},
		{RGBA{0, 0, 1, 255}, true},
	}
	for _, tt := range tests {
		if got := tt.c.IsLit(); got != tt.want {
			t.Errorf("IsLit(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestLerpBlendedFallsBackAtBlack(t *testing.T) {
	// HCL is undefined at black; the blend must degrade to channel lerp
	got := LerpBlended(RGBAUnlit, RGBAWhite, 0.5)
	want := Lerp(RGBAUnlit, RGBAWhite, 0.5)
	if got != want {
		t.Errorf("got %v, want channel lerp %v", got, want)
	}
}

func TestLerpBlendedEndpoints(t *testing.T) {
	a := Opaque(255, 0, 0)
	b := Opaque(0, 0, 255)
	if got := LerpBlended(a, b, 0); got != a {
		t.Errorf("t=0: got %v, want %v", got, a)
	}
	if got := LerpBlended(a, b, 1); got != b {
		t.Errorf("t=1: got %v, want %v", got, b)
	}
}
