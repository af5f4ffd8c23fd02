package circle

// Sections is an immutable snapshot of per-section item counts.
//
// The total is computed once when the snapshot is taken and never changes,
// so a layout pass always sees a consistent view of the data source.
type Sections struct {
	counts []int
	total  int
}

// NewSections captures the given counts. Negative counts are clamped to 0.
// The slice is copied; later changes to the caller's slice are not observed.
func NewSections(counts ...int) Sections {
	s := Sections{counts: make([]int, len(counts))}
	for i, n := range counts {
		s.counts[i] = max(n, 0)
		s.total += s.counts[i]
	}
	return s
}

// Snapshot queries countOf exactly once for each of the n sections and
// freezes the result.
func Snapshot(n int, countOf func(section int) int) Sections {
	counts := make([]int, max(n, 0))
	for i := range counts {
		counts[i] = countOf(i)
	}
	return NewSections(counts...)
}

// Len returns the number of sections, including empty ones.
func (s Sections) Len() int { return len(s.counts) }

// Count returns the item count of section i, or 0 if i is out of range.
func (s Sections) Count(i int) int {
	if i < 0 || i >= len(s.counts) {
		return 0
	}
	return s.counts[i]
}

// Total returns the sum of all section counts.
func (s Sections) Total() int { return s.total }

// Counts returns a copy of the per-section counts.
func (s Sections) Counts() []int {
	return append([]int(nil), s.counts...)
}

// DiameterFunc returns the diameter of the item at (section, item).
type DiameterFunc func(section, item int) float64

// UniformDiameter returns a DiameterFunc that reports d for every item.
func UniformDiameter(d float64) DiameterFunc {
	return func(int, int) float64 { return d }
}
