package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/sirkon/deepequal"
)

func writeConfig(t *testing.T, text string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "nilfer.yaml")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("write config: %s", err)
	}

	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
markers:
  - package: example.com/ann
    nonnull: NN
    nullable: Opt
  - package: example.com/plain
include_trivial: true
evidence: false
`)

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %s", err)
	}

	yes := true
	no := false
	want := Config{
		Markers: []MarkerPackage{
			{Package: "example.com/ann", Nonnull: "NN", Nullable: "Opt"},
			{Package: "example.com/plain"},
		},
		IncludeTrivial: &yes,
		Evidence:       &no,
	}

	if !reflect.DeepEqual(want, got) {
		deepequal.SideBySide(t, "config", want, got)
	}
	if got.Diagnostics != nil || got.Records != nil {
		t.Error("unset options must stay nil")
	}
}

func TestLoadEmptyPath(t *testing.T) {
	got, err := Load("")
	if err != nil {
		t.Fatalf("empty path must not fail: %s", err)
	}
	if !reflect.DeepEqual(Config{}, got) {
		t.Errorf("empty path must yield the zero config, got %+v", got)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file must fail")
	}

	if _, err := Load(writeConfig(t, "markers: {not: a list}")); err == nil {
		t.Error("malformed yaml must fail")
	}

	if _, err := Load(writeConfig(t, "markers:\n  - nonnull: NN\n")); err == nil {
		t.Error("marker without a package path must fail")
	}
}
