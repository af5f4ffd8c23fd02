// Package render turns computed ring layouts into visual output.
//
// # Overview
//
// The layout itself comes from [circle.Compute]. This package and its
// subpackages only draw it:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Ring visualization (in [ring/sink] and [ring/styles])
//   - Pinned node-link diagrams via Graphviz (in [nodelink])
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert any SVG using the external rsvg-convert tool
// (from librsvg). Both the ring and node-link renderers use them.
//
//	svg := sink.RenderSVG(layout, sink.WithGuide())
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [circle.Compute]: github.com/matzehuels/ringlayout/pkg/circle#Compute
// [ring/sink]: github.com/matzehuels/ringlayout/pkg/render/ring/sink
// [ring/styles]: github.com/matzehuels/ringlayout/pkg/render/ring/styles
// [nodelink]: github.com/matzehuels/ringlayout/pkg/render/nodelink
package render
