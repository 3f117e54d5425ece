package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/curricula/pkg/config"
	"github.com/matzehuels/curricula/pkg/observability"
	"github.com/matzehuels/curricula/pkg/pipeline"
	"github.com/matzehuels/curricula/pkg/server"
)

// serveCommand runs the HTTP API until interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analysis HTTP API",
		Long: `Serve the analysis HTTP API.

Endpoints:
  POST /v1/analyze   analyze a curriculum CSV or JSON catalog
  POST /v1/schedule  schedule an ad hoc course graph
  GET  /healthz      liveness and build information
  GET  /metrics      Prometheus metrics

The server shuts down gracefully on SIGINT or SIGTERM.`,
		Example: `  curricula serve
  curricula serve --addr 127.0.0.1:9000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				c.Config.Apply(config.Overrides{Addr: &addr})
			}
			srv := c.newServer()
			return srv.ListenAndServe(cmd.Context(), c.Config.Server.Addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", config.DefaultAddr, "listen address (default from config)")

	return cmd
}

// newServer wires a server that logs and records Prometheus metrics.
func (c *CLI) newServer() *server.Server {
	hooks := observability.Multi{
		observability.NewLogHooks(c.Logger),
		observability.NewPrometheusHooks(),
	}
	srv := server.New(pipeline.NewRunner(c.Logger, hooks), c.Logger, hooks)
	srv.Timeout = c.Config.Analysis.CentralityTimeout.Duration
	return srv
}
