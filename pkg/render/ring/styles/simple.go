package styles

import (
	"bytes"
	"fmt"
)

// Simple draws flat section-colored circles with centered labels.
type Simple struct {
	// Outline draws item strokes when true.
	Outline bool
}

func (Simple) RenderDefs(*bytes.Buffer) {}

func (Simple) RenderGuide(buf *bytes.Buffer, g Guide) {
	fmt.Fprintf(buf, `  <circle class="guide" cx="%.2f" cy="%.2f" r="%.2f" fill="none" stroke="#ccc" stroke-dasharray="4 4"/>`+"\n",
		g.CX, g.CY, g.R)
}

func (s Simple) RenderItem(buf *bytes.Buffer, it Item) {
	stroke := "none"
	if s.Outline {
		stroke = "#333"
	}
	fmt.Fprintf(buf, `  <circle id="item-%s" class="item" data-section="%d" cx="%.2f" cy="%.2f" r="%.2f" fill="%s" stroke="%s"/>`+"\n",
		EscapeXML(it.ID), it.Section, it.CX, it.CY, it.Diameter/2, SectionColor(it.Section), stroke)
}

func (Simple) RenderText(buf *bytes.Buffer, it Item) {
	if it.Label == "" || it.Diameter <= 0 {
		return
	}
	fmt.Fprintf(buf, `  <text class="item-text" x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="central" font-family="sans-serif" font-size="%.1f" fill="white">%s</text>`+"\n",
		it.CX, it.CY, FontSize(it), EscapeXML(TruncateLabel(it)))
}

var _ Style = Simple{}
