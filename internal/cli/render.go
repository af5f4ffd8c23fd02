package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ringlayout/pkg/pipeline"
)

// renderCommand creates the render command for generating visualizations.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output     string
		formatsStr string
		noCache    bool
		flags      layoutFlags
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [scene]",
		Short: "Render a scene to SVG, PNG, PDF, JSON or DOT",
		Long: `Render a scene to one or more output formats.

Two visualization types are available:
  ring      section-colored circles on the layout circle (default)
  nodelink  Graphviz diagram with items pinned at their computed positions
            and consecutive items of a section joined by edges

PNG and PDF output require librsvg (rsvg-convert).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ScenePath = args[0]
			opts.Formats = pipeline.ParseFormats(formatsStr)
			c.applyLayoutFlags(cmd, &flags, &opts)
			return c.runRender(cmd.Context(), opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", pipeline.FormatSVG, "output format(s): svg, png, pdf, json, dot (comma-separated)")
	cmd.Flags().StringVarP(&opts.VizType, "type", "t", pipeline.DefaultVizType, "visualization type: ring, nodelink")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().Float64Var(&opts.Width, "width", 0, "canvas width (default: fit the layout)")
	cmd.Flags().Float64Var(&opts.Height, "height", 0, "canvas height (default: fit the layout)")
	cmd.Flags().BoolVar(&opts.NoLabels, "no-labels", false, "omit item labels")
	cmd.Flags().BoolVar(&opts.Guide, "guide", false, "draw the layout circle")
	cmd.Flags().BoolVar(&opts.Outline, "outline", false, "outline item circles")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "show angles in nodelink and DOT labels")
	cmd.Flags().Float64Var(&opts.Scale, "scale", pipeline.DefaultScale, "PNG resolution multiplier")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "ignore cached results")
	flags.register(cmd)

	return cmd
}

func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinner(ctx, os.Stderr, fmt.Sprintf("Rendering %s...", strings.Join(opts.Formats, ", ")))
	spinner.Start()
	res, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if spinner.Cancelled() {
		return ctx.Err()
	}

	paths := outputPaths(opts.ScenePath, output, opts.Formats)
	for _, format := range opts.Formats {
		if err := os.WriteFile(paths[format], res.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write output %s: %w", paths[format], err)
		}
	}

	printSuccess("Rendered %s", res.Scene.Name)
	for _, format := range opts.Formats {
		printFile(paths[format])
	}
	printStats(res.Stats.Items, res.Stats.Sections, res.Stats.Overlaps, res.CacheInfo.RenderHit)
	return nil
}

// outputPaths maps each format to its output file. A single format with an
// explicit output uses it as is; otherwise the base path (output minus a
// known extension, or the scene path minus its extension) gets one file per
// format.
func outputPaths(scenePath, output string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	for _, f := range formats {
		paths[f] = basePath(output, scenePath) + "." + f
	}
	return paths
}

// basePath strips a format extension from output, or the extension of the
// scene file when output is empty.
func basePath(output, scenePath string) string {
	if output == "" {
		return strings.TrimSuffix(scenePath, filepath.Ext(scenePath))
	}
	ext := filepath.Ext(output)
	if slices.Contains([]string{".svg", ".png", ".pdf", ".json", ".dot"}, ext) {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
