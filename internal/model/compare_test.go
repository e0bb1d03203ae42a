package model

import (
	"strings"
	"testing"
)

func TestCompareScenariosKeepsFailuresIsolated(t *testing.T) {
	good := standardInput()
	bad := standardInput()
	bad.Blocks[0].WidthMm = bad.Blocks[1].WidthMm // duplicate widths

	results := CompareScenarios([]Scenario{
		{Name: "good", Input: good},
		{Name: "bad", Input: bad},
	})

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Err != nil {
		t.Errorf("good scenario failed: %v", results[0].Err)
	}
	if results[0].StudsPerCourse != 6 {
		t.Errorf("good scenario StudsPerCourse = %d, want 6", results[0].StudsPerCourse)
	}
	if results[1].Err == nil {
		t.Error("bad scenario should carry its validation error")
	}
	if results[1].Config != nil {
		t.Error("bad scenario must not carry a config")
	}
}

func TestBuildDefaultScenarios(t *testing.T) {
	base := standardInput()
	base.SpacingMm = 450 // differs from suggested 413

	scenarios := BuildDefaultScenarios(base)
	if scenarios[0].Name != "Current Settings" {
		t.Errorf("first scenario = %q, want Current Settings", scenarios[0].Name)
	}

	var hasSuggested, hasExtra bool
	for _, s := range scenarios {
		if strings.HasPrefix(s.Name, "Suggested Spacing") {
			hasSuggested = true
			if s.Input.SpacingMm != 413 {
				t.Errorf("suggested scenario spacing = %v, want 413", s.Input.SpacingMm)
			}
		}
		if s.Name == "One Extra Stud" {
			hasExtra = true
			if s.Input.Counts.Large != base.Counts.Large+1 {
				t.Errorf("extra stud scenario Large count = %d", s.Input.Counts.Large)
			}
		}
	}
	if !hasSuggested {
		t.Error("missing suggested spacing scenario")
	}
	if !hasExtra {
		t.Error("missing extra stud scenario")
	}
}

func TestBuildDefaultScenariosWithSuggestedSpacing(t *testing.T) {
	base := standardInput()
	base.SpacingMm = 0 // already on suggestion

	for _, s := range BuildDefaultScenarios(base) {
		if strings.HasPrefix(s.Name, "Suggested Spacing") {
			t.Error("suggested scenario should be omitted when the base already uses it")
		}
	}
}
