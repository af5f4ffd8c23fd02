package circle

import "fmt"

// ItemID identifies an item by section index and index within the section.
type ItemID struct {
	Section int `json:"section"`
	Item    int `json:"item"`
}

// String formats the id as "section/item".
func (id ItemID) String() string { return fmt.Sprintf("%d/%d", id.Section, id.Item) }

// Placement is the computed geometry of one item.
type Placement struct {
	ID       ItemID
	Index    int     // global slot index across all sections
	Angle    float64 // final angle in radians, after clustering
	Center   Point
	Diameter float64
	Frame    Rect
}

// Degrees returns the placement angle in degrees.
func (p Placement) Degrees() float64 { return Degrees(p.Angle) }

// Layout is the result of one [Compute] pass.
type Layout struct {
	Params Params
	Items  []Placement

	// offsets[s] is the global index of the first item of section s.
	offsets []int
}

// Len returns the number of placed items.
func (l Layout) Len() int { return len(l.Items) }

// Item returns the placement of (section, item).
func (l Layout) Item(section, item int) (Placement, bool) {
	if section < 0 || section >= len(l.offsets) || item < 0 {
		return Placement{}, false
	}
	g := l.offsets[section] + item
	if g >= len(l.Items) {
		return Placement{}, false
	}
	p := l.Items[g]
	if p.ID.Section != section {
		return Placement{}, false
	}
	return p, true
}

// InRect returns the placements whose frame intersects r, in slot order.
func (l Layout) InRect(r Rect) []Placement {
	var out []Placement
	for _, p := range l.Items {
		if p.Frame.Intersects(r) {
			out = append(out, p)
		}
	}
	return out
}

// Bounds returns the union of all item frames. An empty layout returns the
// zero-size rectangle at the layout center.
func (l Layout) Bounds() Rect {
	if len(l.Items) == 0 {
		return RectAround(l.Params.Center, 0)
	}
	b := l.Items[0].Frame
	for _, p := range l.Items[1:] {
		b = b.Union(p.Frame)
	}
	return b
}

// ContentSize returns the extent a scrolling host needs to show every item,
// measured from the origin.
func (l Layout) ContentSize() Size {
	b := l.Bounds()
	return Size{Width: max(b.MaxX, 0), Height: max(b.MaxY, 0)}
}

// Overlaps returns every pair of items whose frames intersect.
func (l Layout) Overlaps() [][2]ItemID {
	var out [][2]ItemID
	for i := range l.Items {
		for j := i + 1; j < len(l.Items); j++ {
			if l.Items[i].Frame.Intersects(l.Items[j].Frame) {
				out = append(out, [2]ItemID{l.Items[i].ID, l.Items[j].ID})
			}
		}
	}
	return out
}

// OverlapCount returns len(l.Overlaps()) without collecting the pairs.
func (l Layout) OverlapCount() int {
	n := 0
	for i := range l.Items {
		for j := i + 1; j < len(l.Items); j++ {
			if l.Items[i].Frame.Intersects(l.Items[j].Frame) {
				n++
			}
		}
	}
	return n
}

// SectionCount returns the number of sections the layout was computed for.
func (l Layout) SectionCount() int { return len(l.offsets) }

// Rebuild reconstructs a Layout from placements produced by an earlier
// pass, for example after a cache round trip. sectionCount must cover every
// section referenced by items; items must be in slot order.
func Rebuild(p Params, sectionCount int, items []Placement) (Layout, error) {
	l := Layout{Params: p, Items: items, offsets: make([]int, sectionCount)}
	next := 0
	for g, it := range items {
		if it.ID.Section < 0 || it.ID.Section >= sectionCount {
			return Layout{}, fmt.Errorf("item %s: section out of range (have %d sections)", it.ID, sectionCount)
		}
		if g > 0 && it.ID.Section < items[g-1].ID.Section {
			return Layout{}, fmt.Errorf("item %s: items not in slot order", it.ID)
		}
		for ; next <= it.ID.Section; next++ {
			l.offsets[next] = g
		}
		if g-l.offsets[it.ID.Section] != it.ID.Item {
			return Layout{}, fmt.Errorf("item %s: expected item index %d", it.ID, g-l.offsets[it.ID.Section])
		}
	}
	for ; next < sectionCount; next++ {
		l.offsets[next] = len(items)
	}
	return l, nil
}
