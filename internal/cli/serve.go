package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ringlayout/internal/server"
)

// serveCommand creates the serve command, which exposes layout and render
// over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve layout and render over HTTP",
		Long: `Start an HTTP server exposing the layout pipeline.

Endpoints:
  GET  /healthz      liveness check
  POST /v1/layout    scene body (JSON, TOML or YAML) -> JSON layout
  POST /v1/render    scene body -> artifact (?format=svg|png|pdf|json|dot)

The server shuts down gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.Config.Server
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}

			runner, err := c.newRunner(cmd.Context(), noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			srv := server.New(runner, loggerFromContext(cmd.Context()), cfg)
			printInfo("Listening on %s", srv.Addr())
			printKeyValue("Cache", c.cacheBackend(noCache))
			return srv.ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: config server.addr or :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) cacheBackend(noCache bool) string {
	if noCache {
		return "none"
	}
	return c.Config.Cache.Backend
}
