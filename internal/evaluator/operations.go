// ============================================================================
// mCALC - Rechner-Bibliothek
// ============================================================================
//
// Package:     evaluator
// Description: Operation table shared by CLI, REPL and demo
// Author:      Mike Stoffels
// Created:     2026-10-04
// License:     MIT
// ============================================================================

package evaluator

import "strings"

// Variadic marks an operation without an upper argument limit
const Variadic = -1

// Operation describes one calculator operation
type Operation struct {
	Name        string
	Aliases     []string
	MinArgs     int
	MaxArgs     int
	Usage       string
	Description string
}

var operations = []Operation{
	{Name: "add", Aliases: []string{"sum", "+"}, MinArgs: 0, MaxArgs: Variadic, Usage: "add <n>...", Description: "Summe aller Werte"},
	{Name: "sub", Aliases: []string{"subtract", "-"}, MinArgs: 0, MaxArgs: Variadic, Usage: "sub <n> <n>...", Description: "Zieht alle weiteren Werte vom ersten ab"},
	{Name: "mul", Aliases: []string{"multiply", "*"}, MinArgs: 0, MaxArgs: Variadic, Usage: "mul <n>...", Description: "Produkt aller Werte"},
	{Name: "div", Aliases: []string{"divide", "/"}, MinArgs: 0, MaxArgs: Variadic, Usage: "div <n> <n>... [strict=true]", Description: "Teilt den ersten Wert durch alle weiteren"},
	{Name: "sqrt", Aliases: []string{"root"}, MinArgs: 1, MaxArgs: 1, Usage: "sqrt <x>", Description: "Quadratwurzel"},
	{Name: "pow", Aliases: []string{"power", "^"}, MinArgs: 2, MaxArgs: 2, Usage: "pow <x> <y>", Description: "x hoch y"},
	{Name: "log", MinArgs: 1, MaxArgs: 1, Usage: "log <x> [base=10]", Description: "Logarithmus zur Basis (Standard 10)"},
	{Name: "ln", MinArgs: 1, MaxArgs: 1, Usage: "ln <x>", Description: "Natürlicher Logarithmus"},
	{Name: "sin", MinArgs: 1, MaxArgs: 1, Usage: "sin <x> [unit=radian]", Description: "Sinus"},
	{Name: "cos", MinArgs: 1, MaxArgs: 1, Usage: "cos <x> [unit=radian]", Description: "Kosinus"},
	{Name: "tan", MinArgs: 1, MaxArgs: 1, Usage: "tan <x> [unit=radian]", Description: "Tangens"},
	{Name: "radians", Aliases: []string{"rad"}, MinArgs: 1, MaxArgs: 1, Usage: "radians <winkel> [unit=degree]", Description: "Wandelt Grad oder Gon in Bogenmaß um"},
	{Name: "round", MinArgs: 2, MaxArgs: 2, Usage: "round <x> <stellen>", Description: "Rundet auf Stellen (kaufmännisch gerade)"},
}

// Operations returns all operations in display order
func Operations() []Operation {
	out := make([]Operation, len(operations))
	copy(out, operations)
	return out
}

// Lookup finds an operation by name or alias, ignoring case
func Lookup(name string) (Operation, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, op := range operations {
		if op.Name == name {
			return op, true
		}
		for _, alias := range op.Aliases {
			if alias == name {
				return op, true
			}
		}
	}
	return Operation{}, false
}

func (o Operation) accepts(n int) bool {
	if n < o.MinArgs {
		return false
	}
	return o.MaxArgs == Variadic || n <= o.MaxArgs
}
