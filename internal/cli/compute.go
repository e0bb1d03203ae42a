package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/mverdi/wallplan/internal/model"
)

// newComputeCmd creates the compute command.
func newComputeCmd() *cobra.Command {
	var flags inputFlags
	var asJSON bool
	var asPayload bool

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute stud placement for a wall assembly",
		Long: `Compute classifies the three block sizes, places studs at the
configured spacing measured from each block's trailing edge, and derives
the stud height composition per category.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			in, err := flags.resolve()
			if err != nil {
				return err
			}

			p := newProgress(logger)
			cfg, err := model.BuildConfig(in)
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("Computed %d stud positions", cfg.StudsPerCourse()))

			switch {
			case asPayload:
				return json.NewEncoder(os.Stdout).Encode(cfg.Payload())
			case asJSON:
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(cfg)
			default:
				printConfig(cfg)
				return nil
			}
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full configuration as JSON")
	cmd.Flags().BoolVar(&asPayload, "payload", false, "print the packing-engine payload as JSON")

	return cmd
}

// printConfig renders a configuration as a styled table with warnings.
func printConfig(cfg *model.WallAssemblyConfig) {
	fmt.Println(StyleTitle.Render("Wall Assembly"))
	printKeyValue("Stud", fmt.Sprintf("%.0f x %.0f mm", cfg.Stud.ThicknessMm, cfg.Stud.TotalHeightMm))
	printKeyValue("Ground clearance", fmt.Sprintf("%.0f mm", cfg.Stud.GroundClearanceMm))
	printKeyValue("Spacing", fmt.Sprintf("%.0f mm", cfg.SpacingMm))
	printKeyValue("Studs per course", fmt.Sprintf("%d", cfg.StudsPerCourse()))
	printNewline()

	rows := [][]string{}
	for _, id := range model.CategoryIDs {
		p := cfg.Placement(id)
		h := cfg.Height(id)
		rows = append(rows, []string{
			id.String(),
			fmt.Sprintf("%.0f x %.0f", p.Category.WidthMm, p.Category.HeightMm),
			fmt.Sprintf("%d / %d", len(p.PositionsMm), p.RequestedCount),
			formatPositions(p.PositionsMm),
			fmt.Sprintf("%.0f", h.EmbeddedMm),
			fmt.Sprintf("%.0f", h.InterlockClearanceMm),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("Category", "Block (mm)", "Studs", "Offsets (mm)", "Embedded", "Clearance").
		Rows(rows...)
	fmt.Println(t)

	for _, w := range cfg.Warnings() {
		printWarning("%s", w.String())
	}
}

// formatPositions renders stud offsets as a comma-separated list.
func formatPositions(positions []float64) string {
	if len(positions) == 0 {
		return "-"
	}
	parts := make([]string, len(positions))
	for i, p := range positions {
		parts[i] = fmt.Sprintf("%.0f", p)
	}
	return strings.Join(parts, ", ")
}
