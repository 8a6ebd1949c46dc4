package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/msto63/mCALC/internal/evaluator"
	"github.com/msto63/mCALC/internal/tui"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Führt Beispielrechnungen aus",
	Long: `Führt die Beispielrechnungen für Hilfsfunktionen, Basis-Rechner und
wissenschaftlichen Rechner aus, einschließlich der Fehlerfälle.`,
	RunE: runDemo,
}

var (
	demoSection = lipgloss.NewStyle().Bold(true).Underline(true)
	demoLine    = lipgloss.NewStyle().Width(46).PaddingLeft(2)
)

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	section := ""

	for _, sc := range evaluator.DemoScenarios() {
		if sc.Section != section {
			if section != "" {
				fmt.Fprintln(out)
			}
			section = sc.Section
			fmt.Fprintln(out, demoSection.Render(section))
		}

		outcome, err := current.evaluator.EvalLine(sc.Line)
		switch {
		case err != nil:
			fmt.Fprintln(out, demoLine.Render(sc.Line)+tui.RenderError(err.Error()))
		case outcome.IsSentinel():
			fmt.Fprintln(out, demoLine.Render(sc.Line)+tui.SentinelStyle.Render(outcome.String()))
		default:
			fmt.Fprintln(out, demoLine.Render(sc.Line)+"= "+outcome.String())
		}
	}
	return nil
}
