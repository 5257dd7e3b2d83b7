package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/starmap/internal/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		envFile string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP service",
		Long: `Run the HTTP service.

Settings are read from the environment, after loading --env-file:

  STARMAP_ADDR          listen address (default :8080)
  STARMAP_REDIS_URL     Redis cache, e.g. redis://localhost:6379/0
  STARMAP_MONGO_URI     MongoDB archive, e.g. mongodb://localhost:27017
  STARMAP_MONGO_DB      MongoDB database (default starmap)
  STARMAP_ARCHIVE_DIR   directory archive, used without MongoDB
  STARMAP_RATE_LIMIT    requests per second per client (default 10, 0 disables)
  STARMAP_RATE_BURST    burst size (default 20)
  STARMAP_CORS_ORIGINS  comma-separated allowed origins (default *)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := server.LoadConfig(envFile)
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			return c.runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address (overrides STARMAP_ADDR)")
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "environment file to load")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, cfg server.Config) error {
	backends, err := server.OpenBackends(ctx, cfg, c.Logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := backends.Close(context.Background()); err != nil {
			c.Logger.Warn("close backends", "error", err)
		}
	}()

	return server.New(cfg, backends.Runner, backends.Store, c.Logger).Run(ctx)
}
