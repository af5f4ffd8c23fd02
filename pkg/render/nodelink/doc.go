// Package nodelink renders ring layouts as Graphviz node-link diagrams.
//
// # Overview
//
// Each placed item becomes a fixed-size circular node pinned at its computed
// center (pos="x,y!"), and consecutive items of a section are joined by an
// edge. Graphviz does not move pinned nodes, so the drawing shows exactly the
// geometry produced by [circle.Compute], with section membership visible as
// chains.
//
// # Usage
//
//	dot := nodelink.ToDOT(l, nodelink.Options{Labels: sc.Label})
//	svg, err := nodelink.RenderSVG(dot)
//
// For PDF or PNG output:
//
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0)  // 2x scale
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] with the neato engine for
// in-process SVG rendering. PDF and PNG conversion requires librsvg
// (rsvg-convert).
//
// [circle.Compute]: github.com/matzehuels/ringlayout/pkg/circle#Compute
package nodelink
