package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/mverdi/wallplan/internal/catalog"
	"github.com/mverdi/wallplan/internal/config"
	"github.com/mverdi/wallplan/internal/engine"
	"github.com/mverdi/wallplan/internal/model"
	"github.com/mverdi/wallplan/internal/project"
	"github.com/mverdi/wallplan/pkg/errors"
)

// newSystemsCmd creates the systems command group.
func newSystemsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "systems",
		Short: "Manage the block-system catalog",
	}

	cmd.AddCommand(newSystemsListCmd())
	cmd.AddCommand(newSystemsShowCmd())
	cmd.AddCommand(newSystemsImportCmd())
	cmd.AddCommand(newSystemsExportCmd())
	cmd.AddCommand(newSystemsRemoveCmd())
	cmd.AddCommand(newSystemsSyncCmd())

	return cmd
}

func newSystemsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available block systems",
		RunE: func(cmd *cobra.Command, args []string) error {
			loadCustomSystems()

			rows := [][]string{}
			for _, s := range model.AllSystems() {
				origin := "custom"
				if s.IsBuiltIn {
					origin = "built-in"
				}
				rows = append(rows, []string{
					s.Name,
					fmt.Sprintf("%.0f / %.0f / %.0f", s.Blocks[0].WidthMm, s.Blocks[1].WidthMm, s.Blocks[2].WidthMm),
					fmt.Sprintf("%.0f", s.Blocks[0].HeightMm),
					origin,
				})
			}

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(StyleDim).
				Headers("Name", "Widths (mm)", "Height (mm)", "Origin").
				Rows(rows...)
			fmt.Println(t)
			return nil
		},
	}
}

func newSystemsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show one block system in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loadCustomSystems()

			sys, err := model.FindSystem(args[0])
			if err != nil {
				return err
			}

			fmt.Println(StyleTitle.Render(sys.Name))
			if sys.Description != "" {
				printDetail("%s", sys.Description)
			}
			printNewline()
			for i, label := range []string{"Large", "Medium", "Small"} {
				printKeyValue(label+" block", fmt.Sprintf("%.0f x %.0f mm", sys.Blocks[i].WidthMm, sys.Blocks[i].HeightMm))
			}
			printKeyValue("Stud", fmt.Sprintf("%.0f x %.0f mm", sys.Stud.ThicknessMm, sys.Stud.TotalHeightMm))
			printKeyValue("Ground clearance", fmt.Sprintf("%.0f mm", sys.Stud.GroundClearanceMm))
			if sys.SpacingMm > 0 {
				printKeyValue("Spacing", fmt.Sprintf("%.0f mm", sys.SpacingMm))
			} else {
				printKeyValue("Spacing", "suggested")
			}
			printKeyValue("Counts", fmt.Sprintf("%d / %d / %d", sys.Counts.Large, sys.Counts.Medium, sys.Counts.Small))
			return nil
		},
	}
}

func newSystemsImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import block systems from CSV, XLSX, or TOML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			var result catalog.ImportResult
			switch strings.ToLower(filepath.Ext(path)) {
			case ".csv", ".txt":
				result = catalog.ImportCSV(path)
			case ".xlsx":
				result = catalog.ImportExcel(path)
			case ".toml":
				result = catalog.ImportTOML(path)
			default:
				return errors.New(errors.ErrCodeUnsupported, "unsupported catalog format %q", filepath.Ext(path))
			}

			for _, w := range result.Warnings {
				printWarning("%s", w)
			}
			for _, e := range result.Errors {
				printError("%s", e)
			}
			if len(result.Systems) == 0 {
				return errors.New(errors.ErrCodeInvalidFormat, "no usable systems in %s", path)
			}

			loadCustomSystems()
			added := 0
			for _, sys := range result.Systems {
				if err := model.AddCustomSystem(sys); err != nil {
					printWarning("Skipping %q: %s", sys.Name, errors.UserMessage(err))
					continue
				}
				added++
			}
			if err := project.SaveCustomSystems(project.DefaultSystemsPath(), model.CustomSystems); err != nil {
				return err
			}

			printSuccess("Imported %d system(s)", added)
			return nil
		},
	}
}

func newSystemsExportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export <name>",
		Short: "Export one block system to a shareable TOML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loadCustomSystems()

			sys, err := model.FindSystem(args[0])
			if err != nil {
				return err
			}
			if out == "" {
				out = strings.ReplaceAll(strings.ToLower(sys.Name), " ", "-") + ".toml"
			}
			if err := project.ExportSystem(out, sys); err != nil {
				return err
			}
			printSuccess("Exported %q", sys.Name)
			printFile(out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default <name>.toml)")
	return cmd
}

func newSystemsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a custom block system",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loadCustomSystems()

			if !model.RemoveCustomSystem(args[0]) {
				return errors.New(errors.ErrCodeSystemNotFound, "no custom system named %q", args[0])
			}
			if err := project.SaveCustomSystems(project.DefaultSystemsPath(), model.CustomSystems); err != nil {
				return err
			}
			printSuccess("Removed %q", args[0])
			return nil
		},
	}
}

func newSystemsSyncCmd() *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Fetch block systems published by the packing engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			client, err := engine.NewClient(cfg)
			if err != nil {
				return err
			}

			p := newProgress(logger)
			remote, err := client.Systems(cmd.Context(), refresh)
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("Fetched %d remote system(s)", len(remote)))

			loadCustomSystems()
			added := 0
			for _, r := range remote {
				if err := model.AddCustomSystem(r.System); err != nil {
					logger.Debug("skipping remote system", "name", r.System.Name, "reason", err)
					continue
				}
				added++
			}
			if added > 0 {
				if err := project.SaveCustomSystems(project.DefaultSystemsPath(), model.CustomSystems); err != nil {
					return err
				}
			}
			printSuccess("Added %d new system(s)", added)
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the response cache")
	return cmd
}
