package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mverdi/wallplan/internal/model"
	"github.com/mverdi/wallplan/internal/project"
	"github.com/mverdi/wallplan/pkg/errors"
)

// newPresetsCmd creates the presets command group. Presets are saved
// assembly templates that seed new computations.
func newPresetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "Manage reusable assembly presets",
	}

	cmd.AddCommand(newPresetsListCmd())
	cmd.AddCommand(newPresetsUseCmd())
	cmd.AddCommand(newPresetsSaveCmd())
	cmd.AddCommand(newPresetsRemoveCmd())

	return cmd
}

func newPresetsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := project.LoadTemplates(project.DefaultTemplatePath())
			if err != nil {
				return err
			}
			if len(store.Templates) == 0 {
				printInfo("No saved presets")
				return nil
			}
			for _, t := range store.Templates {
				line := fmt.Sprintf("%s (%s)", t.Name, t.System)
				if t.Description != "" {
					line += " - " + t.Description
				}
				printDetail("%s", line)
			}
			return nil
		},
	}
}

func newPresetsUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use <name>",
		Short: "Compute a configuration from a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := project.LoadTemplates(project.DefaultTemplatePath())
			if err != nil {
				return err
			}
			tpl := store.FindByName(args[0])
			if tpl == nil {
				tpl = store.FindByID(args[0])
			}
			if tpl == nil {
				return errors.New(errors.ErrCodeNotFound, "no preset named %q", args[0])
			}

			cfg, err := model.BuildConfig(tpl.Input)
			if err != nil {
				return err
			}
			printConfig(cfg)
			return nil
		},
	}
}

func newPresetsSaveCmd() *cobra.Command {
	var flags inputFlags
	var description string

	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Save the current assembly input as a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := flags.resolve()
			if err != nil {
				return err
			}
			if _, err := model.BuildConfig(in); err != nil {
				return err
			}

			store, err := project.LoadTemplates(project.DefaultTemplatePath())
			if err != nil {
				return err
			}
			if store.FindByName(args[0]) != nil {
				return errors.New(errors.ErrCodeInvalidConfiguration, "preset %q already exists", args[0])
			}

			system := flags.system
			if system == "" {
				system = model.BlockSystems[0].Name
			}
			store.Add(model.NewAssemblyTemplate(args[0], description, system, in))

			if err := project.SaveTemplates(project.DefaultTemplatePath(), store); err != nil {
				return err
			}
			printSuccess("Saved preset %q", args[0])
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&description, "description", "", "preset description")
	return cmd
}

func newPresetsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a saved preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := project.LoadTemplates(project.DefaultTemplatePath())
			if err != nil {
				return err
			}
			tpl := store.FindByName(args[0])
			if tpl == nil {
				return errors.New(errors.ErrCodeNotFound, "no preset named %q", args[0])
			}
			store.Remove(tpl.ID)

			if err := project.SaveTemplates(project.DefaultTemplatePath(), store); err != nil {
				return err
			}
			printSuccess("Removed preset %q", args[0])
			return nil
		},
	}
}
