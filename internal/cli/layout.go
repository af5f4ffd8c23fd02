package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ringlayout/pkg/pipeline"
)

// layoutCommand creates the layout command, which writes the computed
// placements of a scene as JSON.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		flags   layoutFlags
	)

	cmd := &cobra.Command{
		Use:   "layout [scene]",
		Short: "Compute item placements for a scene",
		Long: `Compute item placements for a scene.

The scene file (.toml, .yaml or .json) lists sections and their items. The
output is a JSON document with one entry per item: its section, index, angle
and center, plus the parameters that produced it. Use "-o -" to write to
stdout.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{ScenePath: args[0], Formats: []string{pipeline.FormatJSON}}
			c.applyLayoutFlags(cmd, &flags, &opts)
			return c.runLayout(cmd.Context(), opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <scene>.layout.json, - for stdout)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	flags.register(cmd)

	return cmd
}

func (c *CLI) runLayout(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	res, err := runner.Execute(ctx, opts)
	if err != nil {
		return err
	}
	prog.done("Computed layout", "scene", res.Scene.Name, "cached", res.CacheInfo.LayoutHit)

	data := res.Artifacts[pipeline.FormatJSON]
	if output == "-" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}

	outputPath := output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(opts.ScenePath, filepath.Ext(opts.ScenePath)) + ".layout.json"
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(res.Stats.Items, res.Stats.Sections, res.Stats.Overlaps, res.CacheInfo.LayoutHit)
	printNewline()
	printNextStep("Render", "ringlayout render "+opts.ScenePath)
	return nil
}
