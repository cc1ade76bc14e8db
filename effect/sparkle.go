package effect

import (
	"math"
	"math/rand/v2"

	"github.com/lumina-lights/roofline/constants"
	"github.com/lumina-lights/roofline/render"
)

// seedStream is the fixed second PCG seed word; the first word carries the
// phase bucket (and sample index, for fire). Any constant works as long as
// it never changes between frames.
const seedStream = 0x1ED5EED

// firePalette is the fixed warm ramp fire draws from, ember to near-white.
// Fire ignores the resolved base colors entirely.
var firePalette = [4]render.RGBA{
	{R: 178, G: 34, B: 0, A: 255},    // deep ember red
	{R: 255, G: 96, B: 0, A: 255},    // orange
	{R: 255, G: 154, B: 0, A: 255},   // amber
	{R: 255, G: 206, B: 120, A: 255}, // hot yellow-white
}

// bucketEnvelope is the triangular fade applied across one sparkle window:
// ramp in over the first fade fraction, hold, ramp out over the last.
// t is the progress through the window in [0,1).
func bucketEnvelope(t float64) float64 {
	fade := constants.SparkleFadeFraction
	switch {
	case t < fade:
		return t / fade
	case t > 1-fade:
		return (1 - t) / fade
	default:
		return 1
	}
}

// sparkleBudget derives how many samples twinkle lights per bucket from the
// intensity setting, capped by a density ceiling that scales with n
func sparkleBudget(intensity float64, n int) int {
	count := int(math.Ceil(intensity / constants.TwinkleIntensityDivisor))
	if count < constants.TwinkleMinSparkles {
		count = constants.TwinkleMinSparkles
	}
	upper := int(math.Ceil(float64(n) / float64(constants.TwinkleDensityDivisor)))
	if upper < constants.TwinkleMaxFloor {
		upper = constants.TwinkleMaxFloor
	}
	if upper > constants.TwinkleMaxCeil {
		upper = constants.TwinkleMaxCeil
	}
	if count > upper {
		count = upper
	}
	return count
}

// twinkleAt dims the base layer and lifts a deterministic set of sparkle
// samples toward white. The RNG is re-seeded from the quantized phase
// bucket, so every evaluation of the same bucket picks the same sparkles
// regardless of frame order.
func twinkleAt(palette []render.RGBA, i, n int, phase float64, intensity float64) render.RGBA {
	base := baseColor(palette, i, n).Scale(constants.TwinkleBaseBrightness)

	bucket := int(phase * constants.TwinkleBuckets)
	progress := phase*constants.TwinkleBuckets - float64(bucket)

	rng := rand.New(rand.NewPCG(uint64(bucket), seedStream))
	budget := sparkleBudget(intensity, n)

	sparkling := false
	for s := 0; s < budget; s++ {
		if rng.IntN(n) == i {
			sparkling = true
			break
		}
	}
	if !sparkling {
		return base
	}

	env := bucketEnvelope(progress)
	return render.Lerp(base, render.RGBAWhite, env)
}

// fireAt flickers each sample independently over a steady warm glow. The
// seed combines the phase bucket with the sample index, so the flame is
// spatially stable within a bucket yet every sample shimmers on its own.
func fireAt(i int, phase float64) render.RGBA {
	bucket := int(phase * constants.FireBuckets)
	progress := phase*constants.FireBuckets - float64(bucket)

	rng := rand.New(rand.NewPCG(uint64(bucket+i), seedStream))
	color := firePalette[rng.IntN(len(firePalette))]
	flicker := rng.Float64()

	env := bucketEnvelope(progress)
	brightness := constants.FireBaseBrightness +
		constants.FireFlickerRange*flicker*env
	return color.Scale(brightness)
}
