package segment

import "sort"

// Configuration is an immutable snapshot of a roofline's segment list.
// All mutating operations return a new Configuration with start pixels and
// sort orders recalculated; the receiver is never modified.
type Configuration struct {
	ID       string
	Name     string
	Segments []Segment
}

// NewConfiguration builds a configuration from authored segments, deriving
// start pixels and sort orders from the given list order
func NewConfiguration(id, name string, segments []Segment) Configuration {
	c := Configuration{ID: id, Name: name, Segments: cloneSegments(segments)}
	c.recalculate()
	return c
}

func cloneSegments(segments []Segment) []Segment {
	out := make([]Segment, len(segments))
	for i, s := range segments {
		out[i] = s.clone()
	}
	return out
}

// recalculate reassigns SortOrder and StartPixel by current list order and
// clamps negative pixel counts. Runs after every structural change.
func (c *Configuration) recalculate() {
	start := 0
	for i := range c.Segments {
		if c.Segments[i].PixelCount < 0 {
			c.Segments[i].PixelCount = 0
		}
		c.Segments[i].SortOrder = i
		c.Segments[i].StartPixel = start
		start += c.Segments[i].PixelCount
	}
}

// AddSegment appends a segment and returns the recalculated configuration
func (c Configuration) AddSegment(s Segment) Configuration {
	out := Configuration{ID: c.ID, Name: c.Name}
	out.Segments = append(cloneSegments(c.Segments), s.clone())
	out.recalculate()
	return out
}

// RemoveSegment drops the segment with the given ID. Unknown IDs return
// the configuration unchanged.
func (c Configuration) RemoveSegment(id string) Configuration {
	out := Configuration{ID: c.ID, Name: c.Name, Segments: make([]Segment, 0, len(c.Segments))}
	for _, s := range c.Segments {
		if s.ID != id {
			out.Segments = append(out.Segments, s.clone())
		}
	}
	out.recalculate()
	return out
}

// UpdateSegment replaces the segment with the given ID in place, keeping
// its position in strip order. Unknown IDs return the configuration
// unchanged.
func (c Configuration) UpdateSegment(id string, replacement Segment) Configuration {
	out := Configuration{ID: c.ID, Name: c.Name, Segments: cloneSegments(c.Segments)}
	for i := range out.Segments {
		if out.Segments[i].ID == id {
			replacement.ID = id
			out.Segments[i] = replacement.clone()
			break
		}
	}
	out.recalculate()
	return out
}

// ReorderSegments moves the segment at oldIndex to newIndex, shifting the
// segments between them. Out-of-range indices return the configuration
// unchanged.
func (c Configuration) ReorderSegments(oldIndex, newIndex int) Configuration {
	n := len(c.Segments)
	if oldIndex < 0 || oldIndex >= n || newIndex < 0 || newIndex >= n {
		return c
	}
	out := Configuration{ID: c.ID, Name: c.Name, Segments: cloneSegments(c.Segments)}
	moved := out.Segments[oldIndex]
	out.Segments = append(out.Segments[:oldIndex], out.Segments[oldIndex+1:]...)
	out.Segments = append(out.Segments, Segment{})
	copy(out.Segments[newIndex+1:], out.Segments[newIndex:])
	out.Segments[newIndex] = moved
	out.recalculate()
	return out
}

// TotalPixelCount is the pixel count of the whole concatenated strip
func (c Configuration) TotalPixelCount() int {
	total := 0
	for _, s := range c.Segments {
		total += s.PixelCount
	}
	return total
}

// SegmentForPixel finds the segment whose global range contains the index.
// Out-of-range indices report not found rather than faulting.
func (c Configuration) SegmentForPixel(global int) (Segment, bool) {
	for _, s := range c.Segments {
		if s.ContainsPixel(global) {
			return s, true
		}
	}
	return Segment{}, false
}

// IsAnchorPixel reports whether the global index lands inside an anchor
// zone of its owning segment
func (c Configuration) IsAnchorPixel(global int) bool {
	s, ok := c.SegmentForPixel(global)
	if !ok {
		return false
	}
	return s.IsAnchorLocal(global - s.StartPixel)
}

// ConnectedRuns partitions the segments into maximal groups of consecutive
// segments joined by ConnectedToPrevious. The first segment always starts
// a new run regardless of its own flag; existing installations depend on
// this grouping, so it is kept as-is.
func (c Configuration) ConnectedRuns() [][]Segment {
	if len(c.Segments) == 0 {
		return nil
	}
	var runs [][]Segment
	var current []Segment
	for i, s := range c.Segments {
		if i == 0 || !s.ConnectedToPrevious {
			if len(current) > 0 {
				runs = append(runs, current)
			}
			current = nil
		}
		current = append(current, s)
	}
	return append(runs, current)
}

// DisconnectedSegmentIndices lists the strip positions, excluding 0, where
// a new connectivity run begins
func (c Configuration) DisconnectedSegmentIndices() []int {
	var indices []int
	for i, s := range c.Segments {
		if i > 0 && !s.ConnectedToPrevious {
			indices = append(indices, i)
		}
	}
	return indices
}

// AllLevels returns the distinct story levels present, sorted ascending
func (c Configuration) AllLevels() []int {
	seen := make(map[int]struct{}, len(c.Segments))
	var levels []int
	for _, s := range c.Segments {
		if _, ok := seen[s.Level]; !ok {
			seen[s.Level] = struct{}{}
			levels = append(levels, s.Level)
		}
	}
	sort.Ints(levels)
	return levels
}

// ValidateAgainstDevice checks the logical pixel count against the count a
// physical controller reports. A mismatch only surfaces a warning upstream;
// preview rendering stays meaningful either way.
func (c Configuration) ValidateAgainstDevice(expectedCount int) bool {
	return c.TotalPixelCount() == expectedCount
}
