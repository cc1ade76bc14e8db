package effect

import (
	"testing"

	"github.com/lumina-lights/roofline/render"
)

var (
	red  = render.Opaque(255, 0, 0)
	blue = render.Opaque(0, 0, 255)
)

func TestSolidSingleColor(t *testing.T) {
	p := Params{Palette: []render.RGBA{red}}
	for _, n := range []int{1, 10, 150} {
		for _, phase := range []float64{0, 0.25, 0.999} {
			for i := 0; i < n; i += n/3 + 1 {
				if got := ColorAt(Solid, i, n, phase, p); got != red {
					t.Fatalf("ColorAt(Solid, %d, %d, %v) = %v, want red", i, n, phase, got)
				}
			}
		}
	}
}

func TestSolidPaletteMapping(t *testing.T) {
	p := Params{Palette: []render.RGBA{red, blue}}
	for i := 0; i < 5; i++ {
		if got := ColorAt(Solid, i, 10, 0, p); got != red {
			t.Errorf("sample %d = %v, want red", i, got)
		}
	}
	for i := 5; i < 10; i++ {
		if got := ColorAt(Solid, i, 10, 0, p); got != blue {
			t.Errorf("sample %d = %v, want blue", i, got)
		}
	}
}

func TestEmptyPaletteSubstitutesDefault(t *testing.T) {
	if got := ColorAt(Solid, 0, 10, 0, Params{}); got != render.RGBADefault {
		t.Errorf("got %v, want the default color", got)
	}
}

func TestOutOfRangeSampleIsUnlit(t *testing.T) {
	p := Params{Palette: []render.RGBA{red}}
	tests := []struct {
		name string
		i, n int
	}{
		{"negative index", -1, 10},
		{"index past end", 10, 10},
		{"zero samples", 0, 0},
		{"negative count", 0, -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ColorAt(Chase, tt.i, tt.n, 0.5, p); got != render.RGBAUnlit {
				t.Errorf("got %v, want unlit", got)
			}
		})
	}
}

func TestBreatheEnvelope(t *testing.T) {
	p := Params{Palette: []render.RGBA{red}}

	// Phase 0: multiplier 0.3 + 0.5*(sin 0 + 1) = 0.8
	got := ColorAt(Breathe, 0, 10, 0, p)
	if got.R != red.R || got.A != 204 {
		t.Errorf("phase 0: got %v, want red at alpha 204", got)
	}

	// Phase 0.25: multiplier 1.3 clamps to full alpha
	got = ColorAt(Breathe, 0, 10, 0.25, p)
	if got.A != 255 {
		t.Errorf("phase 0.25: alpha = %d, want 255", got.A)
	}

	// Phase 0.75: multiplier bottoms out at 0.3
	got = ColorAt(Breathe, 0, 10, 0.75, p)
	if got.A < 70 || got.A > 80 {
		t.Errorf("phase 0.75: alpha = %d, want about 76", got.A)
	}
}

func TestChasePeriodicity(t *testing.T) {
	p := Params{Palette: []render.RGBA{red, blue}}
	for _, n := range []int{5, 10, 47, 150} {
		for i := 0; i < n; i++ {
			at0 := ColorAt(Chase, i, n, 0, p)
			at1 := ColorAt(Chase, i, n, 1.0, p)
			if at0 != at1 {
				t.Fatalf("n=%d i=%d: phase 0 gives %v, phase 1 gives %v", n, i, at0, at1)
			}
		}
	}
}

func TestChaseWindow(t *testing.T) {
	p := Params{Palette: []render.RGBA{red}}

	// At phase 0 the head sits on sample 0 at full brightness
	if got := ColorAt(Chase, 0, 10, 0, p); got != red {
		t.Errorf("head sample = %v, want full red", got)
	}

	// Window is 2n/5 = 4 samples; sample 5 is well outside at phase 0
	if got := ColorAt(Chase, 5, 10, 0, p); got != render.RGBAUnlit {
		t.Errorf("sample outside window = %v, want unlit", got)
	}

	// Mid-window samples dim with the cosine falloff
	head := ColorAt(Chase, 8, 10, 0.8, p)
	tail := ColorAt(Chase, 6, 10, 0.8, p)
	if head != red {
		t.Errorf("head = %v, want full red", head)
	}
	if !tail.IsLit() || tail.R >= head.R {
		t.Errorf("tail = %v, want dimmer than head %v", tail, head)
	}
}

func TestRainbowPaletteEndpoints(t *testing.T) {
	p := Params{Palette: []render.RGBA{red, blue}}

	if got := ColorAt(Rainbow, 0, 10, 0, p); got != red {
		t.Errorf("sample 0 at phase 0 = %v, want red", got)
	}

	// Halfway along the strip the sweep reaches the second color
	got := ColorAt(Rainbow, 5, 10, 0, p)
	if got != blue {
		t.Errorf("sample 5 = %v, want blue", got)
	}

	// Advancing phase by i/n reproduces sample 0's color at sample i
	shifted := ColorAt(Rainbow, 0, 10, 0.5, p)
	if shifted != got {
		t.Errorf("phase-shifted sample = %v, want %v", shifted, got)
	}
}

func TestRainbowSingleColorHueSweep(t *testing.T) {
	p := Params{Palette: []render.RGBA{red}}

	// A single base color synthesizes a hue sweep starting at pure red
	got := ColorAt(Rainbow, 0, 12, 0, p)
	if got != (render.RGBA{R: 255, G: 0, B: 0, A: 255}) {
		t.Errorf("sweep start = %v, want pure red", got)
	}

	// A third of the way along the sweep sits at green
	got = ColorAt(Rainbow, 4, 12, 0, p)
	if got.G != 255 || got.R != 0 {
		t.Errorf("sweep third = %v, want pure green", got)
	}
}

func TestWaveBrightnessBounds(t *testing.T) {
	p := Params{Palette: []render.RGBA{render.RGBAWhite}}
	for i := 0; i < 30; i++ {
		got := ColorAt(Wave, i, 30, 0.37, p)
		// Brightness stays within [0.4, 1.0] of the base color
		if got.R < 100 {
			t.Errorf("sample %d = %v, dimmer than the wave floor", i, got)
		}
	}
}

func TestWaveVaries(t *testing.T) {
	p := Params{Palette: []render.RGBA{render.RGBAWhite}}
	seen := map[uint8]bool{}
	for i := 0; i < 30; i++ {
		seen[ColorAt(Wave, i, 30, 0, p).R] = true
	}
	if len(seen) < 5 {
		t.Errorf("wave brightness barely varies: %d distinct levels", len(seen))
	}
}

func TestTwinkleDeterministic(t *testing.T) {
	p := Params{Palette: []render.RGBA{red}, Intensity: 80}
	for i := 0; i < 40; i++ {
		a := ColorAt(Twinkle, i, 40, 0.42, p)
		b := ColorAt(Twinkle, i, 40, 0.42, p)
		if a != b {
			t.Fatalf("sample %d: identical evaluations differ: %v vs %v", i, a, b)
		}
	}
}

func TestTwinkleBaseLayer(t *testing.T) {
	p := Params{Palette: []render.RGBA{render.RGBAWhite}, Intensity: 0}
	dimmed := 0
	for i := 0; i < 40; i++ {
		got := ColorAt(Twinkle, i, 40, 0.05, p)
		// Non-sparkling samples sit at half brightness
		if got.R == 128 {
			dimmed++
		}
	}
	// At most the sparkle budget escapes the base layer
	if dimmed < 40-12 {
		t.Errorf("only %d of 40 samples at base brightness", dimmed)
	}
}

func TestTwinkleSparkleCountWithinBudget(t *testing.T) {
	// n=40 caps the budget at ceil(40/15)=3 regardless of intensity
	p := Params{Palette: []render.RGBA{render.RGBAWhite}, Intensity: 100}

	// Mid-bucket the envelope is fully open, so sparkles render pure white
	sparkles := 0
	for i := 0; i < 40; i++ {
		if ColorAt(Twinkle, i, 40, 0.45, p) == render.RGBAWhite {
			sparkles++
		}
	}
	if sparkles < 1 || sparkles > 3 {
		t.Errorf("got %d sparkles, want between 1 and 3", sparkles)
	}
}

func TestFireDeterministicAndWarm(t *testing.T) {
	p := Params{Palette: []render.RGBA{blue}} // ignored by fire
	for i := 0; i < 30; i++ {
		a := ColorAt(Fire, i, 30, 0.6, p)
		b := ColorAt(Fire, i, 30, 0.6, p)
		if a != b {
			t.Fatalf("sample %d: identical evaluations differ", i)
		}
		// Fire ignores the palette and stays on the warm ramp
		if a.B > a.R {
			t.Errorf("sample %d = %v, blue exceeds red on a flame", i, a)
		}
		if !a.IsLit() {
			t.Errorf("sample %d unlit, fire keeps a base glow", i)
		}
	}
}

func TestFireVariesAcrossSamples(t *testing.T) {
	p := Params{}
	seen := map[render.RGBA]bool{}
	for i := 0; i < 30; i++ {
		seen[ColorAt(Fire, i, 30, 0.6, p)] = true
	}
	if len(seen) < 4 {
		t.Errorf("fire shows only %d distinct colors across 30 samples", len(seen))
	}
}

func TestFrameFillsBuffer(t *testing.T) {
	p := Params{Palette: []render.RGBA{red}}

	frame := Frame(Solid, 20, 0, p, nil)
	if len(frame) != 20 {
		t.Fatalf("got %d samples, want 20", len(frame))
	}

	// A sufficiently large buffer is reused, not reallocated
	reused := Frame(Solid, 10, 0.5, p, frame)
	if len(reused) != 10 {
		t.Fatalf("got %d samples, want 10", len(reused))
	}
	if &reused[0] != &frame[0] {
		t.Error("frame buffer was reallocated despite sufficient capacity")
	}

	if got := Frame(Solid, 0, 0, p, frame); len(got) != 0 {
		t.Errorf("zero samples: got %d entries, want 0", len(got))
	}
}

func TestKindString(t *testing.T) {
	want := map[Kind]string{
		Solid: "solid", Breathe: "breathe", Chase: "chase", Rainbow: "rainbow",
		Twinkle: "twinkle", Wave: "wave", Fire: "fire", Kind(42): "unknown",
	}
	for k, s := range want {
		if got := k.String(); got != s {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, s)
		}
	}
}
