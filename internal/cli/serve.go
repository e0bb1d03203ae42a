package cli

import (
	"github.com/spf13/cobra"

	"github.com/mverdi/wallplan/internal/api"
	"github.com/mverdi/wallplan/internal/config"
)

// newServeCmd creates the serve command, which runs the planning API server.
func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the assembly planning HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.ListenAddr
			}

			loadCustomSystems()

			srv := api.NewServer(addr, loggerFromContext(cmd.Context()))
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from WALLPLAN_LISTEN_ADDR)")

	return cmd
}
