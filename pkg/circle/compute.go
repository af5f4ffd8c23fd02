package circle

import "math"

// Compute places every item of s on the circle described by p.
//
// diameterOf is called once per item, in placement order. A nil diameterOf
// uses [DefaultDiameter] for all items. Compute is a pure function: it keeps
// no state between calls and identical inputs produce identical layouts.
func Compute(s Sections, diameterOf DiameterFunc, p Params) Layout {
	p = p.Normalized()
	if diameterOf == nil {
		diameterOf = UniformDiameter(DefaultDiameter)
	}

	l := Layout{
		Params:  p,
		offsets: make([]int, s.Len()),
	}
	total := s.Total()
	if total == 0 {
		return l
	}
	l.Items = make([]Placement, 0, total)

	k := p.Clustering
	g := 0
	for sec := 0; sec < s.Len(); sec++ {
		l.offsets[sec] = g
		n := s.Count(sec)
		if n == 0 {
			continue
		}
		centroid := centroidAngle(g, n, total)
		for i := 0; i < n; i++ {
			base := baselineAngle(g+i, total)
			angle := (1-k)*base + k*centroid
			center := Point{
				X: p.Center.X + p.Radius*math.Cos(angle),
				Y: p.Center.Y + p.Radius*math.Sin(angle),
			}
			d := diameterOf(sec, i)
			if d < 0 || math.IsNaN(d) {
				d = 0
			}
			l.Items = append(l.Items, Placement{
				ID:       ItemID{Section: sec, Item: i},
				Index:    g + i,
				Angle:    angle,
				Center:   center,
				Diameter: d,
				Frame:    RectAround(center, d),
			})
		}
		g += n
	}
	return l
}

// baselineAngle is the evenly spaced slot angle of global index g.
func baselineAngle(g, total int) float64 {
	return float64(g) / float64(total) * FullCircle
}

// centroidAngle is the mean baseline angle of the n items starting at
// global index first.
func centroidAngle(first, n, total int) float64 {
	return float64(2*first+n-1) / 2 / float64(total) * FullCircle
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }
