package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	mdwerror "github.com/msto63/mCALC/foundation/core/error"
)

type reloadResult struct {
	cfg *Config
	err error
}

func startWatcher(t *testing.T, path string) <-chan reloadResult {
	t.Helper()
	results := make(chan reloadResult, 8)

	w, err := NewWatcher(path, nil, func(cfg *Config, err error) {
		results <- reloadResult{cfg, err}
	})
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	w.SetDelay(50 * time.Millisecond)

	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	t.Cleanup(w.Stop)
	return results
}

func waitReload(t *testing.T, results <-chan reloadResult) reloadResult {
	t.Helper()
	select {
	case r := <-results:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("no reload within 5s")
		return reloadResult{}
	}
}

func TestWatcherReloads(t *testing.T) {
	path := writeFile(t, "mcalc.toml", "[calculator]\nprecision = 1\n")
	results := startWatcher(t, path)

	if err := os.WriteFile(path, []byte("[calculator]\nprecision = 4\nangle_unit = \"degree\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := waitReload(t, results)
	if r.err != nil {
		t.Fatalf("reload error = %v", r.err)
	}
	if r.cfg.Calculator.Precision == nil || *r.cfg.Calculator.Precision != 4 {
		t.Errorf("Precision = %v, want 4", r.cfg.Calculator.Precision)
	}
	if r.cfg.Calculator.AngleUnit != "degree" {
		t.Errorf("AngleUnit = %q, want degree", r.cfg.Calculator.AngleUnit)
	}
}

func TestWatcherReportsInvalidFile(t *testing.T) {
	path := writeFile(t, "mcalc.toml", "[calculator]\n")
	results := startWatcher(t, path)

	if err := os.WriteFile(path, []byte("[calculator]\nangle_unit = \"turns\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := waitReload(t, results)
	if r.cfg != nil {
		t.Error("invalid reload should not deliver a configuration")
	}
	if !mdwerror.HasCode(r.err, mdwerror.CodeInvalidConfig) {
		t.Errorf("reload error = %v, want CodeInvalidConfig", r.err)
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	path := writeFile(t, "mcalc.toml", "[calculator]\n")
	results := startWatcher(t, path)

	other := filepath.Join(filepath.Dir(path), "other.toml")
	if err := os.WriteFile(other, []byte("x = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case r := <-results:
		t.Errorf("unexpected reload: %+v", r)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherStopIsIdempotent(t *testing.T) {
	path := writeFile(t, "mcalc.toml", "[calculator]\n")
	w, err := NewWatcher(path, nil, nil)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	w.Stop()
	w.Stop()
}
