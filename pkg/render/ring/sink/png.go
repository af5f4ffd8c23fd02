package sink

import (
	"github.com/matzehuels/ringlayout/pkg/circle"
	"github.com/matzehuels/ringlayout/pkg/render"
)

// RenderPNG renders l as SVG and converts it to PNG at the given scale.
// Requires rsvg-convert.
func RenderPNG(l circle.Layout, scale float64, opts ...SVGOption) ([]byte, error) {
	return render.ToPNG(RenderSVG(l, opts...), scale)
}
