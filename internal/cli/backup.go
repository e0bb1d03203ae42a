package cli

import (
	"github.com/spf13/cobra"

	"github.com/mverdi/wallplan/internal/model"
	"github.com/mverdi/wallplan/internal/project"
)

// newBackupCmd creates the backup command group for full data export/import.
func newBackupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export or import all application data",
	}

	cmd.AddCommand(newBackupExportCmd())
	cmd.AddCommand(newBackupImportCmd())

	return cmd
}

func newBackupExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Export preferences, custom systems, presets, and inventory to one file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appCfg, err := project.LoadAppConfig(project.DefaultConfigPath())
			if err != nil {
				return err
			}
			systems, err := project.LoadCustomSystems(project.DefaultSystemsPath())
			if err != nil {
				return err
			}
			templates, err := project.LoadTemplates(project.DefaultTemplatePath())
			if err != nil {
				return err
			}
			inv, err := project.LoadInventory(project.DefaultInventoryPath())
			if err != nil {
				return err
			}

			if err := project.ExportAllData(args[0], appCfg, systems, templates, inv); err != nil {
				return err
			}

			printSuccess("Backup written")
			printFile(args[0])
			printDetail("%d custom system(s), %d preset(s), %d inventory bar(s)",
				len(systems), len(templates.Templates), len(inv.Bars))
			return nil
		},
	}
}

func newBackupImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Restore preferences, custom systems, presets, and inventory from a backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backup, err := project.ImportAllData(args[0])
			if err != nil {
				return err
			}

			if err := project.SaveAppConfig(project.DefaultConfigPath(), backup.Config); err != nil {
				return err
			}
			if err := project.SaveCustomSystems(project.DefaultSystemsPath(), backup.Systems); err != nil {
				return err
			}
			if err := project.SaveTemplates(project.DefaultTemplatePath(), backup.Templates); err != nil {
				return err
			}
			if err := project.SaveInventory(project.DefaultInventoryPath(), backup.Inventory); err != nil {
				return err
			}
			model.CustomSystems = backup.Systems

			printSuccess("Backup restored (exported %s)", backup.CreatedAt)
			printDetail("%d custom system(s), %d preset(s), %d inventory bar(s)",
				len(backup.Systems), len(backup.Templates.Templates), len(backup.Inventory.Bars))
			return nil
		},
	}
}
