package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mverdi/wallplan/pkg/buildinfo"
)

// Execute runs the wallplan CLI and returns an error if any command fails.
//
// The function sets up the root command with all subcommands, configures
// logging based on the --verbose flag, and executes the command tree. The
// logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "wallplan",
		Short:        "wallplan plans stud placement for block wall assemblies",
		Long:         `wallplan computes reinforcing stud positions and height compositions for three-size block wall systems, keeping studs aligned across block categories so courses can interlock.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newComputeCmd())
	root.AddCommand(newSuggestCmd())
	root.AddCommand(newTuneCmd())
	root.AddCommand(newCompareCmd())
	root.AddCommand(newEstimateCmd())
	root.AddCommand(newSystemsCmd())
	root.AddCommand(newProjectCmd())
	root.AddCommand(newPresetsCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newPackCmd())
	root.AddCommand(newConfigCmd())
	root.AddCommand(newBackupCmd())
	root.AddCommand(newServeCmd())

	return root.ExecuteContext(ctx)
}
