package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/ringlayout/pkg/circle"
	"github.com/matzehuels/ringlayout/pkg/render"
	"github.com/matzehuels/ringlayout/pkg/render/ring/styles"
)

// pointsPerInch converts layout units (points) to Graphviz node sizes.
const pointsPerInch = 72.0

// Options configures node-link diagram rendering.
type Options struct {
	// Labels returns the node label of an item. Nil uses the item id.
	Labels func(section, item int) string
	// Detailed appends the placement angle to each label.
	Detailed bool
	// NoEdges omits the section chains.
	NoEdges bool
}

// ToDOT converts a layout to Graphviz DOT with every node pinned at its
// computed center. Layout y grows downwards, Graphviz y upwards, so y is
// negated on the way out.
func ToDOT(l circle.Layout, opts Options) string {
	var b strings.Builder
	b.WriteString(dotHeader)

	for _, p := range l.Items {
		fmt.Fprintf(&b, "  %q [label=%q, pos=\"%.2f,%.2f!\", width=%.4f, fillcolor=%q];\n",
			p.ID.String(), fmtLabel(p, opts),
			p.Center.X, -p.Center.Y,
			p.Diameter/pointsPerInch,
			styles.SectionColor(p.ID.Section))
	}

	if !opts.NoEdges {
		b.WriteString("\n")
		// Items are ordered by section, so chains are runs of equal section.
		for i := 1; i < len(l.Items); i++ {
			a, c := l.Items[i-1].ID, l.Items[i].ID
			if a.Section == c.Section {
				fmt.Fprintf(&b, "  %q -- %q;\n", a.String(), c.String())
			}
		}
	}

	b.WriteString("}\n")
	return b.String()
}

const dotHeader = `graph G {
  layout=neato;
  inputscale=72;
  bgcolor="transparent";
  node [shape=circle, style=filled, fixedsize=true, fontcolor=white, fontsize=10];

`

func fmtLabel(p circle.Placement, opts Options) string {
	label := p.ID.String()
	if opts.Labels != nil {
		if s := opts.Labels(p.ID.Section, p.ID.Item); s != "" {
			label = s
		}
	}
	if opts.Detailed {
		label += fmt.Sprintf("\n%.1f°", p.Degrees())
	}
	return label
}

// RenderSVG lays out a DOT graph with neato and returns the SVG.
func RenderSVG(dot string) ([]byte, error) {
	return RenderSVGContext(context.Background(), dot)
}

// RenderSVGContext is RenderSVG bounded by ctx.
func RenderSVGContext(ctx context.Context, dot string) ([]byte, error) {
	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("start graphviz: %w", err)
	}
	defer gv.Close()
	// Every node carries a pinned pos, so neato only routes edges.
	gv.SetLayout(graphviz.NEATO)

	var out bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &out); err != nil {
		return nil, fmt.Errorf("graphviz svg: %w", err)
	}
	return normalizeViewBox(out.Bytes()), nil
}

var (
	svgOpenTag = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe  = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox swaps Graphviz's pt-sized <svg> tag for a unitless one
// with the same viewBox, matching the ring sink's output.
func normalizeViewBox(svg []byte) []byte {
	m := viewBoxRe.FindSubmatch(svg)
	if m == nil {
		return svg
	}
	w, errW := strconv.ParseFloat(string(m[3]), 64)
	h, errH := strconv.ParseFloat(string(m[4]), 64)
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return svg
	}
	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgOpenTag.ReplaceAll(svg, []byte(tag))
}

// RenderPDF converts the neato SVG with rsvg-convert.
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVGContext(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG converts the neato SVG with rsvg-convert at scale.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVGContext(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
