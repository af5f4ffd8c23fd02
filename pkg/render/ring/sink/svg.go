package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/ringlayout/pkg/circle"
	"github.com/matzehuels/ringlayout/pkg/render/ring/styles"
)

// svgPadding is added around the layout bounds when no explicit size is set.
const svgPadding = 20.0

// LabelFunc returns the display label of an item.
type LabelFunc func(section, item int) string

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style         styles.Style
	labels        LabelFunc
	guide         bool
	width, height float64
	title         string
}

func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }
func WithLabels(f LabelFunc) SVGOption    { return func(r *svgRenderer) { r.labels = f } }
func WithGuide() SVGOption                { return func(r *svgRenderer) { r.guide = true } }
func WithTitle(t string) SVGOption        { return func(r *svgRenderer) { r.title = t } }

// WithSize fixes the SVG canvas size. Non-positive values fall back to the
// layout extent.
func WithSize(w, h float64) SVGOption {
	return func(r *svgRenderer) { r.width, r.height = w, h }
}

// RenderSVG draws l as an SVG document.
func RenderSVG(l circle.Layout, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	w, h := r.canvas(l)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		w, h, w, h)
	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", styles.EscapeXML(r.title))
	}

	r.style.RenderDefs(&buf)
	if r.guide {
		r.style.RenderGuide(&buf, styles.Guide{CX: l.Params.Center.X, CY: l.Params.Center.Y, R: l.Params.Radius})
	}

	items := buildItems(l, r.labels)
	for _, it := range items {
		r.style.RenderItem(&buf, it)
	}
	for _, it := range items {
		r.style.RenderText(&buf, it)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: styles.Simple{}}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func (r svgRenderer) canvas(l circle.Layout) (w, h float64) {
	if r.width > 0 && r.height > 0 {
		return r.width, r.height
	}
	size := l.ContentSize()
	return size.Width + svgPadding, size.Height + svgPadding
}

func buildItems(l circle.Layout, labels LabelFunc) []styles.Item {
	items := make([]styles.Item, len(l.Items))
	for i, p := range l.Items {
		items[i] = styles.Item{
			ID:       fmt.Sprintf("%d-%d", p.ID.Section, p.ID.Item),
			Section:  p.ID.Section,
			CX:       p.Center.X,
			CY:       p.Center.Y,
			Diameter: p.Diameter,
		}
		if labels != nil {
			items[i].Label = labels(p.ID.Section, p.ID.Item)
		}
	}
	return items
}
