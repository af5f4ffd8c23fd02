// Package sink writes ring layouts to output formats.
//
// [RenderSVG] draws each placement as a section-colored circle, [RenderJSON]
// exports the placements for hosts and caches, and [ParseJSON] reads that
// export back into a [circle.Layout]. [RenderPNG] and [RenderPDF] convert
// the SVG through rsvg-convert.
//
// All renderers take functional options:
//
//	svg := sink.RenderSVG(l, sink.WithLabels(sc.Label), sink.WithGuide())
//	data, err := sink.RenderJSON(l, sink.WithJSONLabels(sc.Label))
//
// [circle.Layout]: github.com/matzehuels/ringlayout/pkg/circle#Layout
package sink
