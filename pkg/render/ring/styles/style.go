// Package styles defines how ring items are drawn in SVG.
package styles

import "bytes"

// Style defines the visual appearance of a ring rendering.
type Style interface {
	// RenderDefs writes SVG <defs> content (filters, gradients).
	RenderDefs(buf *bytes.Buffer)
	// RenderGuide writes the circle the items are placed on.
	RenderGuide(buf *bytes.Buffer, g Guide)
	// RenderItem writes the SVG for a single item shape.
	RenderItem(buf *bytes.Buffer, it Item)
	// RenderText writes the SVG for an item's label.
	RenderText(buf *bytes.Buffer, it Item)
}

// Item contains all data needed to render a single placed item.
type Item struct {
	ID       string  // stable element id, "section-item"
	Label    string  // display text; empty hides the label
	Section  int     // section index, used for coloring
	CX, CY   float64 // center
	Diameter float64
}

// Guide describes the layout circle.
type Guide struct {
	CX, CY, R float64
}
