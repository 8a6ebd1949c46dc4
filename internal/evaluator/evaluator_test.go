package evaluator

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/mCALC/foundation/core/error"
	mdwlog "github.com/msto63/mCALC/foundation/core/log"
	"github.com/msto63/mCALC/pkg/calculator"
)

func TestEvalLine(t *testing.T) {
	ev := New()

	tests := []struct {
		line string
		want string
	}{
		{"add 10 5.1264 3 precision=2 float=true", "18.13"},
		{"sub 10 5.1264 3 precision=2 float=true", "1.87"},
		{"mul 10.1234 5.5678 precision=2 float=true", "56.37"},
		{"div 100.1234 5.5678 precision=2 float=true", "17.98"},
		{"add 1 2 3", "6"},
		{"add", "0"},
		{"div 100 5", "20.0"},
		{"div 5 0", calculator.SentinelDivisionByZero},
		{"sub 5", calculator.SentinelInsufficientArguments},
		{"mul", calculator.SentinelInsufficientArguments},
		{"div 100 5 strict=true", "20.0"},
		{"sqrt 16", "4.0"},
		{"pow 2 3", "8.0"},
		{"log 100", "2.0"},
		{"log 8 base=2", "3.0"},
		{"ln 1", "0.0"},
		{"sin 30 precision=2", "-0.99"},
		{"sin 90 unit=degree precision=2", "1.0"},
		{"radians 180", "3.141592653589793"},
		{"radians 180 unit=degree", "3.141592653589793"},
		{"radians 200 unit=gon precision=4", "3.1416"},
		{"round 3.14159 2", "3.14"},
		{"round 2.675 2", "2.67"},
		{"round 1234 -2", "1200"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			out, err := ev.EvalLine(tt.line)
			if err != nil {
				t.Fatalf("EvalLine() error = %v", err)
			}
			if got := out.String(); got != tt.want {
				t.Errorf("EvalLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEvalSentinelOutcome(t *testing.T) {
	out, err := New().EvalLine("divide 1 0")
	if err != nil {
		t.Fatalf("EvalLine() error = %v", err)
	}
	if !out.IsSentinel() {
		t.Fatal("expected sentinel outcome")
	}
	if out.Op != "div" {
		t.Errorf("Op = %q, want div", out.Op)
	}
}

func TestEvalErrors(t *testing.T) {
	ev := New()

	tests := []struct {
		name   string
		line   string
		code   mdwerror.Code
		target error
	}{
		{"unknown op", "modulo 5 2", mdwerror.CodeUnknownOperation, nil},
		{"arity", "sqrt 4 9", mdwerror.CodeInvalidInput, nil},
		{"arity pow", "pow 2", mdwerror.CodeInvalidInput, nil},
		{"strict division", "div 100 5 0 strict=true", mdwerror.CodeDivisionByZero, calculator.ErrDivisionByZero},
		{"strict arguments", "div 1 strict=true", mdwerror.CodeInsufficientArguments, calculator.ErrInsufficientArguments},
		{"negative sqrt", "sqrt -1", mdwerror.CodeInvalidArgument, calculator.ErrInvalidArgument},
		{"log of zero", "log 0", mdwerror.CodeInvalidArgument, calculator.ErrInvalidArgument},
		{"log base one", "log 8 base=1", mdwerror.CodeInvalidArgument, calculator.ErrInvalidArgument},
		{"ln negative", "ln -2", mdwerror.CodeInvalidArgument, calculator.ErrInvalidArgument},
		{"radians from radian", "radians 1 unit=radian", mdwerror.CodeInvalidUnit, nil},
		{"round float precision", "round 3.14 2.5", mdwerror.CodeInvalidArgument, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ev.EvalLine(tt.line)
			if err == nil {
				t.Fatal("expected error")
			}
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("code = %q, want %q", mdwerror.GetCode(err), tt.code)
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Errorf("errors.Is(%v, %v) = false", err, tt.target)
			}
		})
	}
}

func TestEvalStrictDivisionPosition(t *testing.T) {
	_, err := New().EvalLine("div 100 5 0 strict=true")

	var mdwErr *mdwerror.Error
	if !errors.As(err, &mdwErr) {
		t.Fatalf("error %v is not an *Error", err)
	}
	if got := mdwErr.Details()["position"]; got != 2 {
		t.Errorf("position = %v, want 2", got)
	}
}

func TestEvalUsesDefaults(t *testing.T) {
	ev := New(calculator.WithPrecision(1), calculator.WithAngleUnit(calculator.Degree))

	tests := []struct {
		line string
		want string
	}{
		{"div 10 3", "3.3"},
		{"div 10 3 round=off", "3.3333333333333335"},
		{"div 10 3 precision=3", "3.333"},
		{"sin 30", "0.5"},
		{"sin 30 unit=rad", "-1.0"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			out, err := ev.EvalLine(tt.line)
			if err != nil {
				t.Fatalf("EvalLine() error = %v", err)
			}
			if got := out.String(); got != tt.want {
				t.Errorf("EvalLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEvalLogsThroughCalculator(t *testing.T) {
	var buf bytes.Buffer
	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:  mdwlog.LevelDebug,
		Format: mdwlog.FormatLogfmt,
		Output: &buf,
	})

	ev := New(calculator.WithLogger(logger))
	if _, err := ev.EvalLine("sqrt 16"); err != nil {
		t.Fatalf("EvalLine() error = %v", err)
	}
	if !strings.Contains(buf.String(), "calculator.sqrt") {
		t.Errorf("log output %q does not mention calculator.sqrt", buf.String())
	}
}

func TestDemoScenariosEvaluate(t *testing.T) {
	ev := New()
	sections := map[string]bool{}

	for _, sc := range DemoScenarios() {
		sections[sc.Section] = true
		req, err := ParseLine(sc.Line)
		if err != nil {
			t.Errorf("ParseLine(%q) error = %v", sc.Line, err)
			continue
		}
		if _, ok := Lookup(req.Op); !ok {
			t.Errorf("scenario %q uses unknown operation", sc.Line)
		}
		_, err = ev.Eval(req)
		if sc.Section == "Fehlerbehandlung" {
			if err == nil {
				t.Errorf("scenario %q should fail", sc.Line)
			}
			continue
		}
		if err != nil {
			t.Errorf("scenario %q error = %v", sc.Line, err)
		}
	}

	if len(sections) != 4 {
		t.Errorf("got %d sections, want 4", len(sections))
	}
}
