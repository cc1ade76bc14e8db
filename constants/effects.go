package constants

// Chase Effect Constants
const (
	// ChaseWindowFraction is the lit window length as a fraction of the
	// sample count; the head travels one full loop per phase cycle
	ChaseWindowFraction = 0.4
)

// Breathe Effect Constants
const (
	// BreatheAlphaFloor keeps the strip visible at the bottom of the cycle
	BreatheAlphaFloor = 0.3

	// BreatheAlphaRange scales the sinusoidal component above the floor
	BreatheAlphaRange = 0.5
)

// Wave Effect Constants
const (
	// WaveFrequency is the number of full brightness waves along the strip
	WaveFrequency = 1.5

	// WaveBrightnessFloor prevents troughs from going fully dark
	WaveBrightnessFloor = 0.4

	// WaveBrightnessRange spans from the floor up to full brightness
	WaveBrightnessRange = 0.6
)

// Twinkle Effect Constants
const (
	// TwinkleBuckets is the number of discrete sparkle sets per phase loop;
	// the RNG is re-seeded once per bucket for reproducible frames
	TwinkleBuckets = 10

	// TwinkleBaseBrightness dims the base layer so sparkles stand out
	TwinkleBaseBrightness = 0.5

	// TwinkleIntensityDivisor converts the 0-100 intensity setting into a
	// sparkle count before clamping
	TwinkleIntensityDivisor = 40.0

	// TwinkleMinSparkles is the floor on sparkles per set
	TwinkleMinSparkles = 2

	// TwinkleDensityDivisor derives the sparkle ceiling from the sample
	// count, bounded by TwinkleMaxFloor / TwinkleMaxCeil
	TwinkleDensityDivisor = 15
	TwinkleMaxFloor       = 3
	TwinkleMaxCeil        = 12

	// SparkleFadeFraction is the triangular ramp width at each end of a
	// bucket window, shared by twinkle and fire
	SparkleFadeFraction = 0.3
)

// Fire Effect Constants
const (
	// FireBuckets is the flicker re-seed rate per phase loop; higher than
	// twinkle for a busier, flame-like shimmer
	FireBuckets = 15

	// FireBaseBrightness is the steady glow under the flicker component
	FireBaseBrightness = 0.55

	// FireFlickerRange is the brightness headroom the flicker can add
	FireFlickerRange = 0.45
)
