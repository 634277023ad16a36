package workspace

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewDefaultsToX86_64(t *testing.T) {
	w := New()
	if w.IsMipsel() {
		t.Fatalf("IsMipsel() = true, want false by default")
	}
	if got, want := w.Target.String(), "x86_64"; got != want {
		t.Fatalf("Target.String() = %q, want %q", got, want)
	}
}

func TestSetFlagAndFlag(t *testing.T) {
	w := New()
	w.SetFlag("include", "/usr/local/ruc")
	v, ok := w.Flag("include")
	if !ok || v != "/usr/local/ruc" {
		t.Fatalf("Flag(%q) = (%q, %v), want (/usr/local/ruc, true)", "include", v, ok)
	}
	if _, ok := w.Flag("missing"); ok {
		t.Fatalf("Flag(%q) reported present, want absent", "missing")
	}
}

func TestLoadFileAppliesMipselTarget(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rucc.yaml")
	contents := "target: mipsel\nflags:\n  opt: size\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	w, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if !w.IsMipsel() {
		t.Fatalf("IsMipsel() = false, want true")
	}
	if v, ok := w.Flag("opt"); !ok || v != "size" {
		t.Fatalf("Flag(%q) = (%q, %v), want (size, true)", "opt", v, ok)
	}
}

func TestLoadFileMissingReturnsError(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("LoadFile on missing path: want error, got nil")
	}
}
