// Package circle computes circular placements for items grouped into sections.
//
// # Overview
//
// Given the item count of every section, a diameter for every item, and a
// [Params] value (center, radius, clustering factor), [Compute] assigns each
// item a position on a circle and a square frame around that position. The
// result is a [Layout]: an ordered list of [Placement] values that a host
// (an SVG sink, a terminal preview, a UI toolkit) reads to draw items.
//
// # Algorithm
//
// The full circle is divided into one slot per item. Section 0's items come
// first, then section 1's, and so on. The item with global index g out of
// total items starts at the baseline angle
//
//	baseline = g / total * 2π
//
// Clustering then pulls every item towards the centroid angle of its own
// section:
//
//	angle = (1-k) * baseline + k * centroid
//
// where k is the clustering factor clamped to [0, 1]. With k = 0 items are
// evenly spaced regardless of section boundaries; with k = 1 every section
// collapses onto a single angle.
//
// The centroid of a section is the arithmetic mean of its items' baseline
// angles. Because baselines are evenly spaced, that equals the midpoint of
// the first and last slot of the section. A single section of 4 items has
// baselines 0°, 90°, 180°, 270° and centroid 135°.
//
// Finally each angle becomes a position:
//
//	position = center + radius * (cos(angle), sin(angle))
//
// Angles grow clockwise on screen because the y axis points down.
//
// # Input Capabilities
//
// Item counts are captured once per pass with [NewSections] or [Snapshot],
// so a data source that mutates while a pass is running cannot produce
// inconsistent totals. Diameters are queried lazily, once per item per pass,
// through a [DiameterFunc].
//
// # Clamping
//
// Compute never fails. Out-of-range inputs are clamped:
//
//   - clustering factor to [0, 1] (NaN becomes 0)
//   - negative radius to 0
//   - negative section counts to 0
//   - negative item diameters to 0
//
// Large diameters combined with a clustering factor near 1 overlap
// visually. [Layout.Overlaps] reports such pairs; it is a caveat, not an
// error.
//
// # Usage
//
//	sections := circle.NewSections(3, 2)
//	l := circle.Compute(sections, circle.UniformDiameter(40), circle.Params{
//	    Center:     circle.Point{X: 400, Y: 300},
//	    Radius:     200,
//	    Clustering: 0.5,
//	})
//	for _, p := range l.Items {
//	    fmt.Println(p.ID, p.Center, p.Frame)
//	}
package circle
