package cli

import (
	"github.com/spf13/cobra"

	"github.com/mverdi/wallplan/internal/export"
	"github.com/mverdi/wallplan/internal/model"
	"github.com/mverdi/wallplan/internal/project"
)

// newExportCmd creates the export command group.
func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the assembly to shop-floor formats",
	}

	cmd.AddCommand(newExportPDFCmd())
	cmd.AddCommand(newExportLabelsCmd())
	cmd.AddCommand(newExportXLSXCmd())
	cmd.AddCommand(newExportDXFCmd())

	return cmd
}

// resolveConfig builds the configuration from the shared input flags.
func resolveConfig(flags *inputFlags) (*model.WallAssemblyConfig, error) {
	in, err := flags.resolve()
	if err != nil {
		return nil, err
	}
	return model.BuildConfig(in)
}

func newExportPDFCmd() *cobra.Command {
	var flags inputFlags
	var out string
	var name string

	cmd := &cobra.Command{
		Use:   "pdf",
		Short: "Export elevation drawings as PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(&flags)
			if err != nil {
				return err
			}
			if err := export.ExportPDF(out, cfg, name); err != nil {
				return err
			}
			printSuccess("Exported PDF")
			printFile(out)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&out, "output", "o", "assembly.pdf", "output file")
	cmd.Flags().StringVar(&name, "title", "", "drawing title")
	return cmd
}

func newExportLabelsCmd() *cobra.Command {
	var flags inputFlags
	var out string

	cmd := &cobra.Command{
		Use:   "labels",
		Short: "Export QR-coded stud labels as PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(&flags)
			if err != nil {
				return err
			}
			if err := export.ExportLabels(out, cfg); err != nil {
				return err
			}
			printSuccess("Exported %d label(s)", cfg.StudsPerCourse())
			printFile(out)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&out, "output", "o", "labels.pdf", "output file")
	return cmd
}

func newExportXLSXCmd() *cobra.Command {
	var flags inputFlags
	var out string
	var blockCounts []int
	var withEstimate bool

	cmd := &cobra.Command{
		Use:   "xlsx",
		Short: "Export the cut list as an Excel workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(&flags)
			if err != nil {
				return err
			}

			var estimate *model.TimberEstimate
			if withEstimate {
				appCfg, err := project.LoadAppConfig(project.DefaultConfigPath())
				if err != nil {
					return err
				}
				counts := model.CategoryCounts{Large: 1, Medium: 1, Small: 1}
				if len(blockCounts) == 3 {
					counts = model.CategoryCounts{Large: blockCounts[0], Medium: blockCounts[1], Small: blockCounts[2]}
				}
				est := model.EstimateTimber(cfg, counts, appCfg.DefaultBarLengthMm, appCfg.DefaultWastePercent, 0)
				estimate = &est
			}

			if err := export.ExportXLSX(out, cfg, estimate); err != nil {
				return err
			}
			printSuccess("Exported workbook")
			printFile(out)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&out, "output", "o", "assembly.xlsx", "output file")
	cmd.Flags().IntSliceVar(&blockCounts, "blocks", nil, "blocks in the wall, large,medium,small")
	cmd.Flags().BoolVar(&withEstimate, "estimate", false, "include a purchase estimate sheet")
	return cmd
}

func newExportDXFCmd() *cobra.Command {
	var flags inputFlags
	var out string

	cmd := &cobra.Command{
		Use:   "dxf",
		Short: "Export the assembly as a DXF drawing",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(&flags)
			if err != nil {
				return err
			}
			if err := export.ExportDXF(out, cfg); err != nil {
				return err
			}
			printSuccess("Exported DXF")
			printFile(out)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&out, "output", "o", "assembly.dxf", "output file")
	return cmd
}
