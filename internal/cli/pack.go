package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mverdi/wallplan/internal/config"
	"github.com/mverdi/wallplan/internal/engine"
	"github.com/mverdi/wallplan/internal/model"
)

// newPackCmd creates the pack command.
func newPackCmd() *cobra.Command {
	var flags inputFlags
	var drawingID string

	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Submit the assembly to the remote packing engine",
		Long: `Pack computes the wall assembly configuration, converts it to the
engine wire payload, and submits it for block packing against a drawing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			in, err := flags.resolve()
			if err != nil {
				return err
			}
			cfg, err := model.BuildConfig(in)
			if err != nil {
				return err
			}
			for _, w := range cfg.Warnings() {
				printWarning("%s", w.String())
			}

			envCfg, err := config.Load()
			if err != nil {
				return err
			}
			client, err := engine.NewClient(envCfg)
			if err != nil {
				return err
			}

			p := newProgress(logger)
			result, err := client.Pack(cmd.Context(), drawingID, cfg.Payload())
			if err != nil {
				return err
			}
			p.done("Packing complete")

			printSuccess("%s", result.String())
			printKeyValue("Large blocks", fmt.Sprintf("%d", result.Counts.Large))
			printKeyValue("Medium blocks", fmt.Sprintf("%d", result.Counts.Medium))
			printKeyValue("Small blocks", fmt.Sprintf("%d", result.Counts.Small))
			for _, w := range result.Warnings {
				printWarning("%s", w)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&drawingID, "drawing", "", "drawing identifier on the engine")
	_ = cmd.MarkFlagRequired("drawing")

	return cmd
}
