package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	mdwerror "github.com/msto63/mCALC/foundation/core/error"
	"github.com/msto63/mCALC/pkg/calculator"
	"github.com/msto63/mCALC/pkg/core/logging"
)

// resetFlags restores every flag to its default, since cobra keeps flag
// state between Execute calls
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MCALC_CONFIG", "")
	wd, wdErr := os.Getwd()
	if wdErr != nil {
		t.Fatal(wdErr)
	}
	if cdErr := os.Chdir(t.TempDir()); cdErr != nil {
		t.Fatal(cdErr)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	resetFlags(rootCmd)
	current = nil

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err := Execute()
	return out.String(), errOut.String(), err
}

func TestOperationCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"add", []string{"add", "1", "2", "3"}, "6"},
		{"alias", []string{"sum", "1.5", "2"}, "3.5"},
		{"div precision", []string{"div", "-p", "2", "10", "3"}, "3.33"},
		{"div sentinel", []string{"div", "5", "0"}, calculator.SentinelDivisionByZero},
		{"sub negative", []string{"sub", "10", "-5"}, "15"},
		{"sub separator", []string{"sub", "--", "-1", "2"}, "-3"},
		{"mul float", []string{"mul", "-f", "2", "3"}, "6.0"},
		{"sqrt", []string{"sqrt", "16"}, "4.0"},
		{"log base", []string{"log", "--base", "2", "8"}, "3.0"},
		{"sin degree", []string{"sin", "--unit", "deg", "-p", "2", "90"}, "1.0"},
		{"radians", []string{"radians", "180"}, "3.141592653589793"},
		{"round", []string{"round", "2.675", "2"}, "2.67"},
		{"eval", []string{"eval", "add", "10", "5.1264", "3", "precision=2", "float=true"}, "18.13"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if got := strings.TrimSpace(out); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOperationErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code mdwerror.Code
	}{
		{"strict division", []string{"div", "--strict", "100", "5", "0"}, mdwerror.CodeDivisionByZero},
		{"bad number", []string{"mul", "2", "drei"}, mdwerror.CodeInvalidFormat},
		{"negative sqrt", []string{"sqrt", "-4"}, mdwerror.CodeInvalidArgument},
		{"arity", []string{"pow", "2"}, mdwerror.CodeInvalidInput},
		{"bad unit", []string{"cos", "--unit", "turns", "1"}, mdwerror.CodeInvalidUnit},
		{"missing config", []string{"--config", "fehlt.toml", "add", "1"}, mdwerror.CodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, err := execute(t, tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("code = %q, want %q", mdwerror.GetCode(err), tt.code)
			}
			if !strings.HasPrefix(stderr, "Fehler: ") {
				t.Errorf("stderr = %q, want Fehler: prefix", stderr)
			}
		})
	}
}

func TestConfigFileDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mcalc.toml")
	content := `
[calculator]
precision = 1
angle_unit = "degree"

[log]
level = "error"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "--config", path, "div", "10", "3")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got := strings.TrimSpace(out); got != "3.3" {
		t.Errorf("output = %q, want 3.3", got)
	}

	out, _, err = execute(t, "--config", path, "sin", "30")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got := strings.TrimSpace(out); got != "0.5" {
		t.Errorf("output = %q, want 0.5", got)
	}
}

func TestVerboseLogsToStderr(t *testing.T) {
	out, stderr, err := execute(t, "-v", "--log-format", "logfmt", "add", "1", "2")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(out) != "3" {
		t.Errorf("output = %q, want 3", out)
	}
	if !strings.Contains(stderr, "calculator.add completed") {
		t.Errorf("stderr = %q, want timer entry", stderr)
	}
}

func TestDemoCommand(t *testing.T) {
	out, _, err := execute(t, "demo")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"Basis-Rechner", "18.13", calculator.SentinelDivisionByZero, "Fehler:"} {
		if !strings.Contains(out, want) {
			t.Errorf("demo output missing %q:\n%s", want, out)
		}
	}
}

func TestSoftFailuresKeepStderrClean(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"division by zero", []string{"div", "5", "0"}},
		{"too few arguments", []string{"sub", "1"}},
		{"demo", []string{"demo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if stderr != "" {
				t.Errorf("stderr = %q, want empty", stderr)
			}
		})
	}
}

func TestHardFailureLoggedOnce(t *testing.T) {
	_, stderr, err := execute(t, "div", "--strict", "1", "0")
	if err == nil {
		t.Fatal("expected error")
	}
	if got := strings.Count(stderr, "\n"); got != 1 {
		t.Errorf("stderr has %d lines, want only the Fehler line: %q", got, stderr)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"success", []string{"add", "1", "2"}, 0},
		{"sentinel", []string{"div", "5", "0"}, 0},
		{"calculation", []string{"sqrt", "-4"}, 1},
		{"malformed number", []string{"mul", "2", "drei"}, 2},
		{"missing config", []string{"--config", "fehlt.toml", "add", "1"}, 3},
		{"invalid log format", []string{"--log-format", "xml", "add", "1"}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			if got := ExitCode(err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", err, got, tt.want)
			}
		})
	}
}

func TestREPLLogger(t *testing.T) {
	lc := logging.DefaultLoggerConfig("mcalc")
	lc.Level = "debug"

	logger, closeLog, err := replLogger(lc, "")
	if err != nil {
		t.Fatalf("replLogger() error = %v", err)
	}
	logger.Warn("nirgendwo")
	closeLog()

	path := filepath.Join(t.TempDir(), "repl.log")
	logger, closeLog, err = replLogger(lc, path)
	if err != nil {
		t.Fatalf("replLogger(%s) error = %v", path, err)
	}
	logger.Warn("in die Datei")
	closeLog()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(content), "in die Datei") {
		t.Errorf("log file = %q, want entry", content)
	}

	if _, _, err := replLogger(lc, filepath.Join(t.TempDir(), "fehlt", "repl.log")); err == nil {
		t.Error("expected error for unwritable log file")
	}
}

func TestVersionCommand(t *testing.T) {
	t.Setenv("MCALC_PRECISION", "nicht-gueltig")
	out, _, err := execute(t, "version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasPrefix(out, "mCALC v") {
		t.Errorf("version output = %q", out)
	}
}
