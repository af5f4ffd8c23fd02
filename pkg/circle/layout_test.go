package circle

import (
	"reflect"
	"testing"
)

func TestLayoutItem(t *testing.T) {
	l := Compute(NewSections(2, 0, 3), nil, Params{Radius: 10})

	tests := []struct {
		name          string
		section, item int
		wantOK        bool
		wantIndex     int
	}{
		{"first", 0, 0, true, 0},
		{"last of first section", 0, 1, true, 1},
		{"past end of first section", 0, 2, false, 0},
		{"empty section", 1, 0, false, 0},
		{"third section", 2, 2, true, 4},
		{"past end", 2, 3, false, 0},
		{"negative section", -1, 0, false, 0},
		{"negative item", 0, -1, false, 0},
		{"unknown section", 3, 0, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := l.Item(tt.section, tt.item)
			if ok != tt.wantOK {
				t.Fatalf("Item(%d, %d) ok = %v, want %v", tt.section, tt.item, ok, tt.wantOK)
			}
			if ok && p.Index != tt.wantIndex {
				t.Errorf("Item(%d, %d).Index = %d, want %d", tt.section, tt.item, p.Index, tt.wantIndex)
			}
		})
	}
}

func TestLayoutInRect(t *testing.T) {
	// Four items at 0°, 90°, 180°, 270° around (100, 100).
	l := Compute(NewSections(4), UniformDiameter(10), Params{Center: Point{X: 100, Y: 100}, Radius: 50})

	right := Rect{MinX: 140, MinY: 90, MaxX: 200, MaxY: 110}
	got := l.InRect(right)
	if len(got) != 1 || got[0].ID != (ItemID{0, 0}) {
		t.Errorf("InRect(right) = %v, want item 0/0", got)
	}

	if got := l.InRect(Rect{MinX: 0, MinY: 0, MaxX: 200, MaxY: 200}); len(got) != 4 {
		t.Errorf("InRect(all) returned %d items, want 4", len(got))
	}
	if got := l.InRect(Rect{MinX: 95, MinY: 95, MaxX: 105, MaxY: 105}); len(got) != 0 {
		t.Errorf("InRect(center) returned %d items, want 0", len(got))
	}
}

func TestLayoutBounds(t *testing.T) {
	l := Compute(NewSections(4), UniformDiameter(10), Params{Center: Point{X: 100, Y: 100}, Radius: 50})
	b := l.Bounds()

	want := Rect{MinX: 45, MinY: 45, MaxX: 155, MaxY: 155}
	if !approx(b.MinX, want.MinX) || !approx(b.MinY, want.MinY) || !approx(b.MaxX, want.MaxX) || !approx(b.MaxY, want.MaxY) {
		t.Errorf("Bounds() = %+v, want %+v", b, want)
	}

	size := l.ContentSize()
	if !approx(size.Width, 155) || !approx(size.Height, 155) {
		t.Errorf("ContentSize() = %+v, want 155x155", size)
	}
}

func TestLayoutBoundsEmpty(t *testing.T) {
	l := Compute(NewSections(), nil, Params{Center: Point{X: 3, Y: 4}, Radius: 10})
	if b := l.Bounds(); b != (Rect{MinX: 3, MinY: 4, MaxX: 3, MaxY: 4}) {
		t.Errorf("Bounds() = %+v, want point at center", b)
	}
}

func TestLayoutOverlaps(t *testing.T) {
	spread := Compute(NewSections(2, 2), UniformDiameter(10), Params{Radius: 100})
	if o := spread.Overlaps(); len(o) != 0 {
		t.Errorf("spread layout overlaps: %v", o)
	}

	collapsed := Compute(NewSections(2, 2), UniformDiameter(10), Params{Radius: 100, Clustering: 1})
	want := [][2]ItemID{{{0, 0}, {0, 1}}, {{1, 0}, {1, 1}}}
	if o := collapsed.Overlaps(); !reflect.DeepEqual(o, want) {
		t.Errorf("Overlaps() = %v, want %v", o, want)
	}
}

func TestLayoutOverlapCount(t *testing.T) {
	tests := []struct {
		name string
		l    Layout
		want int
	}{
		{"empty", Compute(NewSections(), nil, Params{Radius: 100}), 0},
		{"spread", Compute(NewSections(2, 2), UniformDiameter(10), Params{Radius: 100}), 0},
		{"sections collapsed", Compute(NewSections(2, 2), UniformDiameter(10), Params{Radius: 100, Clustering: 1}), 2},
		{"all on center", Compute(NewSections(4), UniformDiameter(10), Params{}), 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.l.OverlapCount(); got != tt.want {
				t.Errorf("OverlapCount() = %d, want %d", got, tt.want)
			}
			if got := len(tt.l.Overlaps()); got != tt.want {
				t.Errorf("len(Overlaps()) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRebuild(t *testing.T) {
	orig := Compute(NewSections(0, 2, 0, 3, 0), nil, Params{Radius: 40, Clustering: 0.2})

	got, err := Rebuild(orig.Params, orig.SectionCount(), orig.Items)
	if err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	if !reflect.DeepEqual(got, orig) {
		t.Errorf("Rebuild() = %+v, want %+v", got, orig)
	}
}

func TestRebuildErrors(t *testing.T) {
	tests := []struct {
		name     string
		sections int
		items    []Placement
	}{
		{"section out of range", 1, []Placement{{ID: ItemID{1, 0}}}},
		{"out of order", 2, []Placement{{ID: ItemID{1, 0}}, {ID: ItemID{0, 0}}}},
		{"gap in items", 1, []Placement{{ID: ItemID{0, 0}}, {ID: ItemID{0, 2}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Rebuild(Params{}, tt.sections, tt.items); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestItemIDString(t *testing.T) {
	if got := (ItemID{Section: 2, Item: 7}).String(); got != "2/7" {
		t.Errorf("String() = %q, want %q", got, "2/7")
	}
}
