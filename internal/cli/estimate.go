package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mverdi/wallplan/internal/model"
	"github.com/mverdi/wallplan/internal/project"
)

// newEstimateCmd creates the estimate command.
func newEstimateCmd() *cobra.Command {
	var flags inputFlags
	var blockCounts []int
	var barLength float64
	var waste float64
	var price float64
	var bar string

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate timber purchase for a wall",
		Long: `Estimate multiplies the per-block stud placements by the number of
blocks in the wall and converts the total into purchasable timber bars,
including a waste factor.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := flags.resolve()
			if err != nil {
				return err
			}
			cfg, err := model.BuildConfig(in)
			if err != nil {
				return err
			}

			appCfg, err := project.LoadAppConfig(project.DefaultConfigPath())
			if err != nil {
				return err
			}
			if barLength == 0 {
				barLength = appCfg.DefaultBarLengthMm
			}
			if waste == 0 {
				waste = appCfg.DefaultWastePercent
			}

			// A named inventory bar supplies length and price together.
			if bar != "" {
				inv, err := project.LoadInventory(project.DefaultInventoryPath())
				if err != nil {
					return err
				}
				if b := inv.FindBarByName(bar); b != nil {
					barLength = b.LengthMm
					price = b.Price
				} else {
					printWarning("No inventory bar named %q, using defaults", bar)
				}
			}

			counts := model.CategoryCounts{Large: 1, Medium: 1, Small: 1}
			if len(blockCounts) == 3 {
				counts = model.CategoryCounts{Large: blockCounts[0], Medium: blockCounts[1], Small: blockCounts[2]}
			}

			est := model.EstimateTimber(cfg, counts, barLength, waste, price)

			fmt.Println(StyleTitle.Render("Timber Estimate"))
			printKeyValue("Studs needed", fmt.Sprintf("%d", est.TotalStuds))
			printKeyValue("Stud length", fmt.Sprintf("%.0f mm", est.StudLengthMm))
			printKeyValue("Bar length", fmt.Sprintf("%.0f mm", est.BarLengthMm))
			printKeyValue("Studs per bar", fmt.Sprintf("%d", est.StudsPerBar))
			printKeyValue("Offcut per bar", fmt.Sprintf("%.0f mm", est.OffcutPerBarMm))
			printKeyValue("Bars (minimum)", fmt.Sprintf("%d", est.BarsNeededMin))
			printKeyValue(fmt.Sprintf("Bars (+%.0f%% waste)", est.WastePercent), fmt.Sprintf("%d", est.BarsWithWaste))
			if est.PricePerBar > 0 {
				printKeyValue("Estimated cost", fmt.Sprintf("%.2f", est.EstimatedCost))
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntSliceVar(&blockCounts, "blocks", nil, "blocks in the wall, large,medium,small")
	cmd.Flags().Float64Var(&barLength, "bar-length", 0, "purchasable bar length in mm")
	cmd.Flags().Float64Var(&waste, "waste", 0, "waste factor percent")
	cmd.Flags().Float64Var(&price, "price", 0, "price per bar")
	cmd.Flags().StringVar(&bar, "bar", "", "use a named inventory bar for length and price")

	return cmd
}
