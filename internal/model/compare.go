package model

import "fmt"

// Scenario defines a named input variation to compare.
type Scenario struct {
	Name  string
	Input AssemblyInput
}

// ScenarioResult holds the computed configuration and derived statistics
// for a single scenario. Err is set when the scenario's input fails
// validation; other scenarios are unaffected.
type ScenarioResult struct {
	Scenario       Scenario
	Config         *WallAssemblyConfig
	StudsPerCourse int
	Warnings       []NarrowBlockWarning
	Err            error
}

// CompareScenarios builds each scenario's configuration and returns the
// results in scenario order. Individual failures do not abort the
// comparison; they are reported on the affected result.
func CompareScenarios(scenarios []Scenario) []ScenarioResult {
	results := make([]ScenarioResult, 0, len(scenarios))
	for _, sc := range scenarios {
		res := ScenarioResult{Scenario: sc}
		cfg, err := BuildConfig(sc.Input)
		if err != nil {
			res.Err = err
			results = append(results, res)
			continue
		}
		res.Config = cfg
		res.StudsPerCourse = cfg.StudsPerCourse()
		res.Warnings = cfg.Warnings()
		results = append(results, res)
	}
	return results
}

// BuildDefaultScenarios generates what-if variations of the base input:
// the suggested spacing (when the base overrides it), ±10% spacing, and a
// generous stud count. Invalid variations are still included so their
// validation errors show up in the comparison.
func BuildDefaultScenarios(base AssemblyInput) []Scenario {
	scenarios := []Scenario{
		{Name: "Current Settings", Input: base},
	}

	if cats, err := ClassifyBlocks(base.Blocks); err == nil {
		suggested := SuggestSpacing(cats)
		if base.SpacingMm != 0 && base.SpacingMm != suggested {
			s := base
			s.SpacingMm = suggested
			scenarios = append(scenarios, Scenario{
				Name:  fmt.Sprintf("Suggested Spacing %.0fmm", suggested),
				Input: s,
			})
		}
	}

	spacing := base.SpacingMm
	if spacing > 0 {
		tight := base
		tight.SpacingMm = spacing * 0.9
		scenarios = append(scenarios, Scenario{
			Name:  fmt.Sprintf("Spacing %.0fmm (-10%%)", tight.SpacingMm),
			Input: tight,
		})

		wide := base
		wide.SpacingMm = spacing * 1.1
		scenarios = append(scenarios, Scenario{
			Name:  fmt.Sprintf("Spacing %.0fmm (+10%%)", wide.SpacingMm),
			Input: wide,
		})
	}

	generous := base
	generous.Counts = CategoryCounts{
		Large:  base.Counts.Large + 1,
		Medium: base.Counts.Medium + 1,
		Small:  base.Counts.Small + 1,
	}
	scenarios = append(scenarios, Scenario{Name: "One Extra Stud", Input: generous})

	return scenarios
}
