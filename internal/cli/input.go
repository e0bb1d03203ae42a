package cli

import (
	"github.com/spf13/cobra"

	"github.com/mverdi/wallplan/internal/model"
	"github.com/mverdi/wallplan/internal/project"
	"github.com/mverdi/wallplan/pkg/errors"
)

// inputFlags collects the assembly input flags shared by compute, suggest,
// compare, estimate, tune, export, and pack. Flags left at zero fall back
// to the selected block system's values.
type inputFlags struct {
	system    string
	preset    string
	widths    []float64
	height    float64
	thickness float64
	studH     float64
	clearance float64
	spacing   float64
	counts    []int
}

// register adds the shared flags to cmd.
func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.system, "system", "s", "", "block system name (default: configured system)")
	cmd.Flags().StringVar(&f.preset, "preset", "", "start from a saved preset")
	cmd.Flags().Float64SliceVar(&f.widths, "widths", nil, "block widths in mm, large,medium,small")
	cmd.Flags().Float64Var(&f.height, "block-height", 0, "block height in mm")
	cmd.Flags().Float64VarP(&f.thickness, "thickness", "t", 0, "stud thickness in mm")
	cmd.Flags().Float64Var(&f.studH, "stud-height", 0, "stud total height in mm")
	cmd.Flags().Float64Var(&f.clearance, "clearance", 0, "stud ground clearance in mm")
	cmd.Flags().Float64Var(&f.spacing, "spacing", 0, "stud spacing in mm (0 = suggested)")
	cmd.Flags().IntSliceVar(&f.counts, "counts", nil, "studs per block, large,medium,small")
}

// resolve builds the AssemblyInput from the flags, the saved application
// defaults, and the selected system. Custom systems saved on disk are
// loaded before resolution so --system finds them.
func (f *inputFlags) resolve() (model.AssemblyInput, error) {
	loadCustomSystems()

	var in model.AssemblyInput

	if f.preset != "" {
		store, err := project.LoadTemplates(project.DefaultTemplatePath())
		if err != nil {
			return in, err
		}
		tpl := store.FindByName(f.preset)
		if tpl == nil {
			tpl = store.FindByID(f.preset)
		}
		if tpl == nil {
			return in, errors.New(errors.ErrCodeNotFound, "no preset named %q", f.preset)
		}
		in = tpl.Input
	} else {
		appCfg, err := project.LoadAppConfig(project.DefaultConfigPath())
		if err != nil {
			return in, err
		}
		systemName := f.system
		if systemName == "" {
			systemName = appCfg.DefaultSystem
		}
		sys, err := model.FindSystem(systemName)
		if err != nil {
			return in, err
		}
		in = sys.Input()
		if f.system == "" {
			// No explicit system: the saved defaults win over the
			// system's stock stud settings.
			appCfg.ApplyToInput(&in)
		}
	}

	if len(f.widths) == 3 && f.height > 0 {
		for i := range in.Blocks {
			in.Blocks[i] = model.BlockDimensions{WidthMm: f.widths[i], HeightMm: f.height}
		}
	}
	if f.thickness > 0 {
		in.Stud.ThicknessMm = f.thickness
	}
	if f.studH > 0 {
		in.Stud.TotalHeightMm = f.studH
	}
	if f.clearance > 0 {
		in.Stud.GroundClearanceMm = f.clearance
	}
	if f.spacing > 0 {
		in.SpacingMm = f.spacing
	}
	if len(f.counts) == 3 {
		in.Counts = model.CategoryCounts{Large: f.counts[0], Medium: f.counts[1], Small: f.counts[2]}
	}

	return in, nil
}

// loadCustomSystems populates model.CustomSystems from disk. Load failures
// are ignored; the built-in systems always remain available.
func loadCustomSystems() {
	if systems, err := project.LoadCustomSystems(project.DefaultSystemsPath()); err == nil {
		model.CustomSystems = systems
	}
}
