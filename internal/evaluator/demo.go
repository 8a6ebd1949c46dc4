// ============================================================================
// mCALC - Rechner-Bibliothek
// ============================================================================
//
// Package:     evaluator
// Description: Demonstration scenarios
// Author:      Mike Stoffels
// Created:     2026-10-04
// License:     MIT
// ============================================================================

package evaluator

// Scenario is one demonstration line grouped under a section title
type Scenario struct {
	Section string
	Line    string
}

// DemoScenarios returns the sample invocations shown by "mcalc demo". The
// engineering trig samples use radians, the calculators' default unit.
func DemoScenarios() []Scenario {
	return []Scenario{
		{"Hilfsfunktionen", "round 3.14159 2"},
		{"Hilfsfunktionen", "radians 180 unit=degree"},

		{"Basis-Rechner", "add 10 5.1264 3 precision=2 float=true"},
		{"Basis-Rechner", "sub 10 5.1264 3 precision=2 float=true"},
		{"Basis-Rechner", "mul 10.1234 5.5678 precision=2 float=true"},
		{"Basis-Rechner", "div 100.1234 5.5678 precision=2 float=true"},
		{"Basis-Rechner", "div 5 0"},

		{"Wissenschaftlicher Rechner", "sqrt 16"},
		{"Wissenschaftlicher Rechner", "pow 2 3"},
		{"Wissenschaftlicher Rechner", "log 8 base=2"},
		{"Wissenschaftlicher Rechner", "ln 1"},
		{"Wissenschaftlicher Rechner", "sin 30"},
		{"Wissenschaftlicher Rechner", "cos 60"},
		{"Wissenschaftlicher Rechner", "tan 45"},
		{"Wissenschaftlicher Rechner", "sin 90 unit=degree"},

		{"Fehlerbehandlung", "div 100 5 0 strict=true"},
		{"Fehlerbehandlung", "sqrt -1"},
	}
}
