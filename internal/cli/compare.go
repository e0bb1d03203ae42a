package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/mverdi/wallplan/internal/model"
	"github.com/mverdi/wallplan/pkg/errors"
)

// newCompareCmd creates the compare command.
func newCompareCmd() *cobra.Command {
	var flags inputFlags

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare what-if spacing and count scenarios",
		Long: `Compare builds the current configuration alongside automatic
variations (suggested spacing, ±10% spacing, one extra stud per block) and
tabulates stud counts and warnings for each.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := flags.resolve()
			if err != nil {
				return err
			}

			results := model.CompareScenarios(model.BuildDefaultScenarios(in))

			fmt.Println(StyleTitle.Render("Scenario Comparison"))
			printNewline()

			rows := [][]string{}
			for _, res := range results {
				if res.Err != nil {
					rows = append(rows, []string{
						res.Scenario.Name, "-", "-",
						StyleWarning.Render(errors.UserMessage(res.Err)),
					})
					continue
				}
				status := StyleSuccess.Render("ok")
				if len(res.Warnings) > 0 {
					status = StyleWarning.Render(fmt.Sprintf("%d narrow", len(res.Warnings)))
				}
				rows = append(rows, []string{
					res.Scenario.Name,
					fmt.Sprintf("%.0f", res.Config.SpacingMm),
					fmt.Sprintf("%d", res.StudsPerCourse),
					status,
				})
			}

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(StyleDim).
				Headers("Scenario", "Spacing (mm)", "Studs", "Status").
				Rows(rows...)
			fmt.Println(t)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
