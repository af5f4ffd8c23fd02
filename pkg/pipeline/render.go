package pipeline

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/ringlayout/pkg/circle"
	"github.com/matzehuels/ringlayout/pkg/render/nodelink"
	"github.com/matzehuels/ringlayout/pkg/render/ring/sink"
	"github.com/matzehuels/ringlayout/pkg/render/ring/styles"
	"github.com/matzehuels/ringlayout/pkg/scene"
)

// Render generates output artifacts in the requested formats. Formats are
// rendered concurrently; the first failure cancels the rest.
func Render(ctx context.Context, l circle.Layout, sc *scene.Scene, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	var (
		mu        sync.Mutex
		artifacts = make(map[string][]byte, len(opts.Formats))
	)
	g, ctx := errgroup.WithContext(ctx)
	for _, format := range opts.Formats {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := renderFormat(ctx, l, sc, opts, format)
			if err != nil {
				return fmt.Errorf("render %s: %w", format, err)
			}
			mu.Lock()
			artifacts[format] = data
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return artifacts, nil
}

func renderFormat(ctx context.Context, l circle.Layout, sc *scene.Scene, opts Options, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		return MarshalLayout(l, sc)
	case FormatDOT:
		return []byte(nodelink.ToDOT(l, dotOptions(sc, opts))), nil
	}
	if opts.IsNodelink() {
		return renderNodelink(ctx, l, sc, opts, format)
	}
	return renderRing(l, sc, opts, format)
}

func renderRing(l circle.Layout, sc *scene.Scene, opts Options, format string) ([]byte, error) {
	svgOpts := buildSVGOptions(sc, opts)
	switch format {
	case FormatSVG:
		return sink.RenderSVG(l, svgOpts...), nil
	case FormatPNG:
		return sink.RenderPNG(l, opts.Scale, svgOpts...)
	case FormatPDF:
		return sink.RenderPDF(l, svgOpts...)
	default:
		return nil, fmt.Errorf("unsupported ring format: %s", format)
	}
}

func renderNodelink(ctx context.Context, l circle.Layout, sc *scene.Scene, opts Options, format string) ([]byte, error) {
	dot := nodelink.ToDOT(l, dotOptions(sc, opts))
	switch format {
	case FormatSVG:
		return nodelink.RenderSVGContext(ctx, dot)
	case FormatPNG:
		return nodelink.RenderPNG(ctx, dot, opts.Scale)
	case FormatPDF:
		return nodelink.RenderPDF(ctx, dot)
	default:
		return nil, fmt.Errorf("unsupported nodelink format: %s", format)
	}
}

func buildSVGOptions(sc *scene.Scene, opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{
		sink.WithStyle(styles.Simple{Outline: opts.Outline}),
		sink.WithSize(opts.Width, opts.Height),
	}
	if opts.Guide {
		svgOpts = append(svgOpts, sink.WithGuide())
	}
	if sc != nil {
		if !opts.NoLabels {
			svgOpts = append(svgOpts, sink.WithLabels(sc.Label))
		}
		if sc.Name != "" {
			svgOpts = append(svgOpts, sink.WithTitle(sc.Name))
		}
	}
	return svgOpts
}

func dotOptions(sc *scene.Scene, opts Options) nodelink.Options {
	o := nodelink.Options{Detailed: opts.Detailed}
	if sc != nil && !opts.NoLabels {
		o.Labels = sc.Label
	}
	return o
}
