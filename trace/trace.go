// Package trace distributes virtual LEDs along a traced roofline outline.
// Sampling is by arc length: consecutive samples are equally spaced by path
// distance, not by vertex count, so effects travel at constant speed no
// matter how unevenly the outline was traced.
package trace

import (
	"math"

	"github.com/lumina-lights/roofline/constants"
)

// Point is a 2D position, normally in normalized [0,1] canvas coordinates
type Point struct {
	X, Y float64
}

// Lerp interpolates toward b at t in [0,1]
func (p Point) Lerp(b Point, t float64) Point {
	return Point{
		X: p.X + (b.X-p.X)*t,
		Y: p.Y + (b.Y-p.Y)*t,
	}
}

func (p Point) distance(b Point) float64 {
	dx := b.X - p.X
	dy := b.Y - p.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Length accumulates the total polyline arc length
func Length(points []Point) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += points[i-1].distance(points[i])
	}
	return total
}

// DerivedSampleCount chooses a virtual LED count for a path of the given
// length: roughly one LED per SampleSpacing length-units, clamped for
// visual quality on short paths and frame budget on long ones
func DerivedSampleCount(length float64) int {
	count := int(math.Round(length / constants.SampleSpacing))
	if count < constants.MinSampleCount {
		return constants.MinSampleCount
	}
	if count > constants.MaxSampleCount {
		return constants.MaxSampleCount
	}
	return count
}

// Samples places count points along the polyline at arc-length positions
// 0, L/count, 2L/count, and so on, linearly interpolating between the two
// bracketing vertices of each target length. Fewer than two input points
// fall back to the synthesized default arc; count < 1 derives a count from
// the path length. Zero-length edges are skipped.
func Samples(points []Point, count int) []Point {
	if len(points) < 2 {
		points = DefaultArc()
	}
	total := Length(points)
	if count < 1 {
		count = DerivedSampleCount(total)
	}

	out := make([]Point, count)
	if total == 0 {
		// Degenerate trace: every vertex coincides
		for i := range out {
			out[i] = points[0]
		}
		return out
	}

	// seg indexes the current edge's end vertex; walked is the arc length
	// consumed before that edge
	step := total / float64(count)
	seg := 1
	walked := 0.0
	edgeLen := points[0].distance(points[1])

	for i := 0; i < count; i++ {
		target := float64(i) * step

		// Advance to the edge containing the target length
		for target > walked+edgeLen && seg < len(points)-1 {
			walked += edgeLen
			seg++
			edgeLen = points[seg-1].distance(points[seg])
		}

		if edgeLen == 0 {
			out[i] = points[seg]
			continue
		}
		t := (target - walked) / edgeLen
		if t > 1 {
			t = 1
		}
		out[i] = points[seg-1].Lerp(points[seg], t)
	}
	return out
}

// DefaultArc synthesizes the placeholder outline shown before the user has
// traced their roofline: a single symmetric parabolic peak spanning most of
// the canvas width, sitting in a vertical band around the canvas center.
func DefaultArc() []Point {
	points := make([]Point, constants.DefaultArcPointCount)

	band := constants.DefaultArcBandHeight
	bandTop := 0.5 - band/2
	peakY := bandTop + band*constants.DefaultArcPeakOffset
	baseY := bandTop + band

	span := constants.DefaultArcRight - constants.DefaultArcLeft
	for i := range points {
		t := float64(i) / float64(len(points)-1)
		// u in [-1,1], zero at the peak
		u := 2*t - 1
		points[i] = Point{
			X: constants.DefaultArcLeft + span*t,
			Y: baseY - (baseY-peakY)*(1-u*u),
		}
	}
	return points
}
