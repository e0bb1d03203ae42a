package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mverdi/wallplan/internal/model"
)

// newSuggestCmd creates the suggest command.
func newSuggestCmd() *cobra.Command {
	var flags inputFlags

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest a stud spacing for the block sizes",
		Long: `Suggest derives the recommended stud spacing as one third of the
largest block's width, which fits three studs on the large block and keeps
every category aligned.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := flags.resolve()
			if err != nil {
				return err
			}

			cats, err := model.ClassifyBlocks(in.Blocks)
			if err != nil {
				return err
			}
			suggested := model.SuggestSpacing(cats)

			printSuccess("Suggested spacing: %s", StyleHighlight.Render(fmt.Sprintf("%.0f mm", suggested)))
			printDetail("Large block %.0f mm / 3, rounded down", cats[0].WidthMm)
			if in.SpacingMm > 0 && in.SpacingMm != suggested {
				printInfo("Current spacing is %.0f mm", in.SpacingMm)
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
