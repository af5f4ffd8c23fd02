// Package cli implements the ringlayout command-line interface.
//
// Commands:
//   - layout: compute a scene's placements and write them as JSON
//   - render: draw a scene as SVG, PNG, PDF, JSON or DOT
//   - preview: explore clustering and radius interactively in the terminal
//   - serve: expose layout and render over HTTP
//   - cache: inspect or clear the file cache
//
// All commands support --verbose (-v) for debug-level logging. Defaults for
// the cache backend, server address and viewport come from the user config
// file (see package config); flags override them.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ringlayout/internal/config"
	"github.com/matzehuels/ringlayout/pkg/buildinfo"
	"github.com/matzehuels/ringlayout/pkg/cache"
	"github.com/matzehuels/ringlayout/pkg/circle"
	"github.com/matzehuels/ringlayout/pkg/pipeline"
	"github.com/matzehuels/ringlayout/pkg/scene"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Config is loaded lazily by the root command's pre-run hook.
	Config     *config.Config
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "ringlayout",
		Short:        "ringlayout places grouped items on a circle",
		Long:         `ringlayout computes circular layouts for items grouped into sections, optionally pulling each section together, and renders them as SVG, PNG, PDF, JSON or Graphviz DOT.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: "+config.Path()+")")

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

func (c *CLI) loadConfig() error {
	var (
		cfg *config.Config
		err error
	)
	if c.configPath == "" {
		cfg, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(c.configPath)
	}
	if err != nil {
		return err
	}
	c.Config = cfg
	c.Logger.Debug("loaded config", "cache", cfg.Cache.Backend, "addr", cfg.Server.Addr)
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	ch, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(ch, c.Config.Cache.Keyer(), c.Logger), nil
}

// newCache opens the configured backend. A file cache that cannot be created
// degrades to no caching; remote backends fail loudly.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	ch, err := cache.Open(ctx, c.Config.Cache)
	if err != nil {
		if c.Config.Cache.Backend == cache.BackendFile {
			c.Logger.Warn("file cache unavailable, continuing without cache", "error", err)
			return cache.NewNullCache(), nil
		}
		return nil, err
	}
	return ch, nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// layoutFlags are the parameter overrides shared by layout, render and preview.
type layoutFlags struct {
	radius     float64
	clustering float64
	diameter   float64
	centerX    float64
	centerY    float64
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&f.radius, "radius", "r", 0, "circle radius (default: scene value or min(width, height) / 2.5)")
	cmd.Flags().Float64VarP(&f.clustering, "clustering", "k", 0, "section clustering factor in [0, 1]")
	cmd.Flags().Float64VarP(&f.diameter, "diameter", "d", 0, "default item diameter")
	cmd.Flags().Float64Var(&f.centerX, "cx", 0, "circle center x")
	cmd.Flags().Float64Var(&f.centerY, "cy", 0, "circle center y")
}

// apply copies only the flags the user actually set into opts, plus the
// configured default viewport.
func (c *CLI) applyLayoutFlags(cmd *cobra.Command, f *layoutFlags, opts *pipeline.Options) {
	opts.DefaultViewport = &scene.Viewport{Width: c.Config.Viewport.Width, Height: c.Config.Viewport.Height}
	opts.Logger = c.Logger

	flags := cmd.Flags()
	if flags.Changed("radius") {
		opts.Radius = &f.radius
	}
	if flags.Changed("clustering") {
		opts.Clustering = &f.clustering
	}
	if flags.Changed("diameter") {
		opts.Diameter = &f.diameter
	}
	if flags.Changed("cx") || flags.Changed("cy") {
		opts.Center = &circle.Point{X: f.centerX, Y: f.centerY}
	}
}
