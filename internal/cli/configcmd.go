package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mverdi/wallplan/internal/model"
	"github.com/mverdi/wallplan/internal/project"
	"github.com/mverdi/wallplan/pkg/errors"
)

// newConfigCmd creates the config command group for saved preferences.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage saved application preferences",
	}

	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigPathCmd())

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the saved preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
			if err != nil {
				return err
			}

			fmt.Println(StyleTitle.Render("Preferences"))
			printKeyValue("system", cfg.DefaultSystem)
			printKeyValue("spacing", fmt.Sprintf("%.0f", cfg.DefaultSpacingMm))
			printKeyValue("thickness", fmt.Sprintf("%.0f", cfg.DefaultThicknessMm))
			printKeyValue("stud-height", fmt.Sprintf("%.0f", cfg.DefaultStudHeightMm))
			printKeyValue("clearance", fmt.Sprintf("%.0f", cfg.DefaultGroundClearance))
			printKeyValue("counts", fmt.Sprintf("%d/%d/%d", cfg.DefaultCounts.Large, cfg.DefaultCounts.Medium, cfg.DefaultCounts.Small))
			printKeyValue("bar-length", fmt.Sprintf("%.0f", cfg.DefaultBarLengthMm))
			printKeyValue("waste", fmt.Sprintf("%.0f", cfg.DefaultWastePercent))
			if len(cfg.RecentProjects) > 0 {
				printNewline()
				printInfo("Recent projects")
				for _, p := range cfg.RecentProjects {
					printDetail("%s", p)
				}
			}
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a saved preference",
		Long: `Set updates one preference. Keys: system, spacing, thickness,
stud-height, clearance, bar-length, waste.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
			if err != nil {
				return err
			}

			setFloat := func(dst *float64) error {
				v, err := strconv.ParseFloat(value, 64)
				if err != nil {
					return errors.New(errors.ErrCodeInvalidFormat, "%q is not a number", value)
				}
				*dst = v
				return nil
			}

			switch key {
			case "system":
				loadCustomSystems()
				if _, err := model.FindSystem(value); err != nil {
					return err
				}
				cfg.DefaultSystem = value
			case "spacing":
				err = setFloat(&cfg.DefaultSpacingMm)
			case "thickness":
				err = setFloat(&cfg.DefaultThicknessMm)
			case "stud-height":
				err = setFloat(&cfg.DefaultStudHeightMm)
			case "clearance":
				err = setFloat(&cfg.DefaultGroundClearance)
			case "bar-length":
				err = setFloat(&cfg.DefaultBarLengthMm)
			case "waste":
				err = setFloat(&cfg.DefaultWastePercent)
			default:
				return errors.New(errors.ErrCodeInvalidConfiguration, "unknown preference %q", key)
			}
			if err != nil {
				return err
			}

			if err := project.SaveAppConfig(project.DefaultConfigPath(), cfg); err != nil {
				return err
			}
			printSuccess("Set %s = %s", key, value)
			return nil
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the preference file location",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(project.DefaultConfigPath())
			return nil
		},
	}
}
