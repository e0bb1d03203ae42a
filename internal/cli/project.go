package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mverdi/wallplan/internal/config"
	"github.com/mverdi/wallplan/internal/model"
	"github.com/mverdi/wallplan/internal/project"
)

// newProjectCmd creates the project command group.
func newProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage saved wall projects",
		Long: `Project stores named wall assemblies. The default backend keeps one
JSON file per project; set WALLPLAN_SQLITE_PATH or WALLPLAN_REDIS_ADDR to
use SQLite or Redis instead.`,
	}

	cmd.AddCommand(newProjectSaveCmd())
	cmd.AddCommand(newProjectShowCmd())
	cmd.AddCommand(newProjectListCmd())
	cmd.AddCommand(newProjectDeleteCmd())

	return cmd
}

// openStore selects the project store backend from the environment. The
// caller must call the returned close function.
func openStore(ctx context.Context) (project.Store, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	switch {
	case cfg.RedisAddr != "":
		s, err := project.NewRedisStore(ctx, cfg.RedisAddr, "", cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil
	case cfg.SQLitePath != "":
		s, err := project.OpenSQLiteStore(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil
	default:
		s, err := project.NewFileStore(project.DefaultProjectsDir())
		if err != nil {
			return nil, nil, err
		}
		return s, func() {}, nil
	}
}

func newProjectSaveCmd() *cobra.Command {
	var flags inputFlags
	var notes string

	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Save the assembly input under a project name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			in, err := flags.resolve()
			if err != nil {
				return err
			}
			// Validate before persisting.
			if _, err := model.BuildConfig(in); err != nil {
				return err
			}

			store, closeStore, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			p := model.NewProject(name)
			p.Input = in
			if flags.system != "" {
				p.System = flags.system
			}
			p.Notes = notes

			if err := store.Save(cmd.Context(), name, p); err != nil {
				return err
			}

			// Track recently used projects in the app config.
			if appCfg, err := project.LoadAppConfig(project.DefaultConfigPath()); err == nil {
				appCfg.RememberProject(name)
				_ = project.SaveAppConfig(project.DefaultConfigPath(), appCfg)
			}

			printSuccess("Saved project %q", name)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&notes, "notes", "", "free-form project notes")
	return cmd
}

func newProjectShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a saved project's computed configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			p, err := store.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Println(StyleTitle.Render(p.Name))
			printKeyValue("System", p.System)
			if p.Notes != "" {
				printKeyValue("Notes", p.Notes)
			}
			printKeyValue("Updated", p.UpdatedAt)
			printNewline()

			cfg, err := model.BuildConfig(p.Input)
			if err != nil {
				return err
			}
			printConfig(cfg)
			return nil
		},
	}
}

func newProjectListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			keys, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(keys) == 0 {
				printInfo("No saved projects")
				return nil
			}
			for _, k := range keys {
				printDetail("%s", k)
			}
			return nil
		},
	}
}

func newProjectDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			if err := store.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			printSuccess("Deleted project %q", args[0])
			return nil
		},
	}
}
