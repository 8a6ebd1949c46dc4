package evaluator

import (
	"testing"

	mdwerror "github.com/msto63/mCALC/foundation/core/error"
)

func TestParseLine(t *testing.T) {
	req, err := ParseLine("ADD 10 5.1264 3 precision=2 float=true")
	if err != nil {
		t.Fatalf("ParseLine() error = %v", err)
	}
	if req.Op != "add" {
		t.Errorf("Op = %q, want add", req.Op)
	}
	if len(req.Args) != 3 {
		t.Fatalf("len(Args) = %d, want 3", len(req.Args))
	}
	if !req.Args[0].IsInt() || !req.Args[1].IsFloat() {
		t.Errorf("Args kinds = %v, %v", req.Args[0].Kind(), req.Args[1].Kind())
	}
	if req.Precision == nil || *req.Precision != 2 {
		t.Errorf("Precision = %v, want 2", req.Precision)
	}
	if req.ForceFloat == nil || !*req.ForceFloat {
		t.Errorf("ForceFloat = %v, want true", req.ForceFloat)
	}
}

func TestParseLineOptionsAnywhere(t *testing.T) {
	req, err := ParseLine("div strict=yes 100 base=2 5 unit=deg round=off")
	if err != nil {
		t.Fatalf("ParseLine() error = %v", err)
	}
	if len(req.Args) != 2 {
		t.Errorf("len(Args) = %d, want 2", len(req.Args))
	}
	if !req.Strict {
		t.Error("Strict = false, want true")
	}
	if !req.NoRound {
		t.Error("NoRound = false, want true")
	}
	if req.Base == nil || *req.Base != 2 {
		t.Errorf("Base = %v, want 2", req.Base)
	}
	if req.Unit != "deg" {
		t.Errorf("Unit = %q, want deg", req.Unit)
	}
}

func TestParseLineErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
		code mdwerror.Code
	}{
		{"empty", "   ", mdwerror.CodeInvalidFormat},
		{"bad number", "add 1 zwei", mdwerror.CodeInvalidFormat},
		{"bad precision", "add 1 precision=x", mdwerror.CodeInvalidFormat},
		{"bad switch", "add 1 float=vielleicht", mdwerror.CodeInvalidFormat},
		{"bad base", "log 8 base=two", mdwerror.CodeInvalidFormat},
		{"unknown option", "add 1 colour=red", mdwerror.CodeInvalidFormat},
		{"bad unit", "sin 1 unit=turns", mdwerror.CodeInvalidUnit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLine(tt.line)
			if err == nil {
				t.Fatal("expected error")
			}
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("code = %q, want %q", mdwerror.GetCode(err), tt.code)
			}
		})
	}
}

func TestRequestOptions(t *testing.T) {
	p := 3
	req := Request{Precision: &p, NoRound: true}
	opts, err := req.Options()
	if err != nil {
		t.Fatalf("Options() error = %v", err)
	}
	// NoRound wins over Precision
	if len(opts) != 1 {
		t.Errorf("len(opts) = %d, want 1", len(opts))
	}

	req = Request{Unit: "furlong"}
	if _, err := req.Options(); !mdwerror.HasCode(err, mdwerror.CodeInvalidUnit) {
		t.Errorf("Options() error = %v, want CodeInvalidUnit", err)
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		want string
		ok   bool
	}{
		{"add", "add", true},
		{"SUM", "add", true},
		{"/", "div", true},
		{"^", "pow", true},
		{" rad ", "radians", true},
		{"modulo", "", false},
	}

	for _, tt := range tests {
		op, ok := Lookup(tt.name)
		if ok != tt.ok || op.Name != tt.want {
			t.Errorf("Lookup(%q) = %q, %v; want %q, %v", tt.name, op.Name, ok, tt.want, tt.ok)
		}
	}
}

func TestOperationsCopy(t *testing.T) {
	ops := Operations()
	ops[0].Name = "changed"
	if op, _ := Lookup("add"); op.Name != "add" {
		t.Error("Operations() must return a copy")
	}
}
