package sink

import (
	"github.com/matzehuels/ringlayout/pkg/circle"
	"github.com/matzehuels/ringlayout/pkg/render"
)

// RenderPDF renders l as SVG and converts it to PDF. Requires rsvg-convert.
func RenderPDF(l circle.Layout, opts ...SVGOption) ([]byte, error) {
	return render.ToPDF(RenderSVG(l, opts...))
}
