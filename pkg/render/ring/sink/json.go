package sink

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/ringlayout/pkg/circle"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	labels   LabelFunc
	sections func(int) string
	name     string
	indent   bool
}

// WithJSONLabels records item labels in the output.
func WithJSONLabels(f LabelFunc) JSONOption { return func(r *jsonRenderer) { r.labels = f } }

// WithJSONSectionNames records section names in the output.
func WithJSONSectionNames(f func(int) string) JSONOption {
	return func(r *jsonRenderer) { r.sections = f }
}

// WithJSONName records the scene name in the output.
func WithJSONName(name string) JSONOption { return func(r *jsonRenderer) { r.name = name } }

// WithJSONIndent pretty-prints the output.
func WithJSONIndent() JSONOption { return func(r *jsonRenderer) { r.indent = true } }

type jsonOutput struct {
	Name         string       `json:"name,omitempty"`
	Width        float64      `json:"width"`
	Height       float64      `json:"height"`
	Center       circle.Point `json:"center"`
	Radius       float64      `json:"radius"`
	Clustering   float64      `json:"clustering"`
	Sections     int          `json:"sections"`
	SectionNames []string     `json:"section_names,omitempty"`
	Items        []jsonItem   `json:"items"`
}

type jsonItem struct {
	Section  int     `json:"section"`
	Item     int     `json:"item"`
	Index    int     `json:"index"`
	Angle    float64 `json:"angle"`
	Degrees  float64 `json:"degrees"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Diameter float64 `json:"diameter"`
	Label    string  `json:"label,omitempty"`
}

// RenderJSON exports l as JSON.
func RenderJSON(l circle.Layout, opts ...JSONOption) ([]byte, error) {
	var r jsonRenderer
	for _, opt := range opts {
		opt(&r)
	}

	size := l.ContentSize()
	out := jsonOutput{
		Name:       r.name,
		Width:      size.Width,
		Height:     size.Height,
		Center:     l.Params.Center,
		Radius:     l.Params.Radius,
		Clustering: l.Params.Clustering,
		Sections:   l.SectionCount(),
		Items:      make([]jsonItem, len(l.Items)),
	}
	if r.sections != nil {
		for i := range l.SectionCount() {
			out.SectionNames = append(out.SectionNames, r.sections(i))
		}
	}
	for i, p := range l.Items {
		out.Items[i] = jsonItem{
			Section:  p.ID.Section,
			Item:     p.ID.Item,
			Index:    p.Index,
			Angle:    p.Angle,
			Degrees:  p.Degrees(),
			X:        p.Center.X,
			Y:        p.Center.Y,
			Diameter: p.Diameter,
		}
		if r.labels != nil {
			out.Items[i].Label = r.labels(p.ID.Section, p.ID.Item)
		}
	}

	if r.indent {
		return json.MarshalIndent(out, "", "  ")
	}
	return json.Marshal(out)
}

// ParseJSON reads a layout produced by [RenderJSON]. Labels and section
// names are returned alongside; the layout itself carries geometry only.
func ParseJSON(data []byte) (circle.Layout, Labels, error) {
	var in jsonOutput
	if err := json.Unmarshal(data, &in); err != nil {
		return circle.Layout{}, Labels{}, fmt.Errorf("decode layout: %w", err)
	}

	var items []circle.Placement
	if len(in.Items) > 0 {
		items = make([]circle.Placement, len(in.Items))
	}
	labels := Labels{Sections: in.SectionNames, Items: make(map[circle.ItemID]string)}
	for i, it := range in.Items {
		id := circle.ItemID{Section: it.Section, Item: it.Item}
		c := circle.Point{X: it.X, Y: it.Y}
		items[i] = circle.Placement{
			ID:       id,
			Index:    it.Index,
			Angle:    it.Angle,
			Center:   c,
			Diameter: it.Diameter,
			Frame:    circle.RectAround(c, it.Diameter),
		}
		if it.Label != "" {
			labels.Items[id] = it.Label
		}
	}

	params := circle.Params{Center: in.Center, Radius: in.Radius, Clustering: in.Clustering}
	l, err := circle.Rebuild(params, in.Sections, items)
	if err != nil {
		return circle.Layout{}, Labels{}, fmt.Errorf("decode layout: %w", err)
	}
	return l, labels, nil
}

// Labels holds the display names recovered by [ParseJSON].
type Labels struct {
	Sections []string
	Items    map[circle.ItemID]string
}

// Label implements [LabelFunc].
func (l Labels) Label(section, item int) string {
	return l.Items[circle.ItemID{Section: section, Item: item}]
}
