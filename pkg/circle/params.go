package circle

import "math"

const (
	// FullCircle is one full turn in radians.
	FullCircle = 2 * math.Pi

	// DefaultDiameter is the item diameter used when no DiameterFunc is given.
	DefaultDiameter = 70.0

	// viewportRadiusDivisor sizes the default radius relative to the
	// smaller viewport dimension.
	viewportRadiusDivisor = 2.5
)

// Params holds the per-pass layout parameters.
//
// Params is a plain value: hosts build a new value whenever they want a
// different layout and compare it with [Params.Equal] to decide whether a
// recomputation is needed.
type Params struct {
	Center     Point
	Radius     float64
	Clustering float64
}

// ParamsForViewport returns parameters centered in a w×h viewport with a
// radius of min(w, h) / 2.5 and no clustering.
func ParamsForViewport(w, h float64) Params {
	return Params{
		Center: Point{X: w / 2, Y: h / 2},
		Radius: math.Min(w, h) / viewportRadiusDivisor,
	}
}

// Normalized returns p with the clustering factor clamped to [0, 1] and a
// negative radius clamped to 0. NaN values become 0.
func (p Params) Normalized() Params {
	p.Clustering = ClampClustering(p.Clustering)
	if p.Radius < 0 || math.IsNaN(p.Radius) {
		p.Radius = 0
	}
	return p
}

// Equal reports whether p and o produce the same layout.
func (p Params) Equal(o Params) bool {
	return p.Normalized() == o.Normalized()
}

// ClampClustering clips k to [0, 1]. NaN is treated as 0.
func ClampClustering(k float64) float64 {
	switch {
	case math.IsNaN(k), k < 0:
		return 0
	case k > 1:
		return 1
	default:
		return k
	}
}
