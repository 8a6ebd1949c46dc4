package cmd

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/msto63/mCALC/internal/evaluator"
	"github.com/msto63/mCALC/pkg/calculator"
)

// callFlags are the per-call overrides every operation command accepts
type callFlags struct {
	precision int
	noRound   bool
	float     bool
	unit      string
	base      float64
	strict    bool
}

func init() {
	for _, op := range evaluator.Operations() {
		rootCmd.AddCommand(newOperationCommand(op))
	}
	rootCmd.AddCommand(evalCmd)
}

func newOperationCommand(op evaluator.Operation) *cobra.Command {
	flags := &callFlags{}

	cmd := &cobra.Command{
		Use:     op.Usage,
		Short:   op.Description,
		Aliases: wordAliases(op.Aliases),
		Long: fmt.Sprintf(`%s

Aufruf: mcalc %s

Optionen stehen vor den Zahlen; negative Zahlen am Anfang mit "--" abtrennen:
  mcalc %s -p 2 -- -1.5 3`, op.Description, op.Usage, op.Name),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, op, flags, args)
		},
	}
	cmd.Flags().SetInterspersed(false)

	cmd.Flags().IntVarP(&flags.precision, "precision", "p", 0, "Nachkommastellen für die Rundung")
	cmd.Flags().BoolVar(&flags.noRound, "no-round", false, "Rundung abschalten")
	cmd.Flags().BoolVarP(&flags.float, "float", "f", false, "Ergebnis als Gleitkommazahl")
	switch op.Name {
	case "sin", "cos", "tan", "radians":
		cmd.Flags().StringVar(&flags.unit, "unit", "", "Winkeleinheit: rad, deg oder grad")
	case "log":
		cmd.Flags().Float64Var(&flags.base, "base", calculator.DefaultLogBase, "Basis des Logarithmus")
	case "div":
		cmd.Flags().BoolVar(&flags.strict, "strict", false, "Division durch Null als Fehler melden")
	}

	return cmd
}

// wordAliases drops the symbol aliases, which only make sense in a line
func wordAliases(aliases []string) []string {
	var words []string
	for _, a := range aliases {
		if a != "" && unicode.IsLetter(rune(a[0])) {
			words = append(words, a)
		}
	}
	return words
}

func runOperation(cmd *cobra.Command, op evaluator.Operation, flags *callFlags, args []string) error {
	req := evaluator.Request{Op: op.Name, Strict: flags.strict, NoRound: flags.noRound}

	for _, arg := range args {
		n, err := calculator.ParseNumber(arg)
		if err != nil {
			return err
		}
		req.Args = append(req.Args, n)
	}

	changed := cmd.Flags().Changed
	if changed("precision") {
		req.Precision = &flags.precision
	}
	if changed("float") {
		req.ForceFloat = &flags.float
	}
	if changed("unit") {
		req.Unit = flags.unit
	}
	if changed("base") {
		req.Base = &flags.base
	}

	outcome, err := current.evaluator.Eval(req)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), outcome.String())
	return nil
}

var evalCmd = &cobra.Command{
	Use:   "eval <zeile>",
	Short: "Wertet eine Zeile wie in der REPL aus",
	Long: `Wertet eine komplette Eingabezeile aus, z.B.:

  mcalc eval "add 10 5.1264 3 precision=2 float=true"
  mcalc eval div 100 5 0 strict=true`,
	Args:               cobra.MinimumNArgs(1),
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		outcome, err := current.evaluator.EvalLine(strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), outcome.String())
		return nil
	},
}
