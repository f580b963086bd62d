package media

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/dominopress/dominopress/pkg/errors"
)

func TestBuiltins(t *testing.T) {
	presets := Builtins()
	if len(presets) == 0 {
		t.Fatal("no built-in presets")
	}

	for _, p := range presets {
		if p.Name == "" {
			t.Error("preset with empty name")
		}
		if p.Width.IsZero() {
			t.Errorf("preset %q has no width", p.Name)
		}
		if p.Margin.IsZero() || p.Spacing.IsZero() {
			t.Errorf("preset %q is missing margin/spacing defaults", p.Name)
		}
	}

	letter, err := Lookup(presets, "letter")
	if err != nil {
		t.Fatal(err)
	}
	if letter.Width.Inches() != 8.5 || letter.Height.Inches() != 11 {
		t.Errorf("letter = %v x %v, want 8.5in x 11in", letter.Width, letter.Height)
	}
	if letter.Strip() {
		t.Error("letter reported as strip")
	}

	strip, err := Lookup(presets, "strip2in")
	if err != nil {
		t.Fatal(err)
	}
	if !strip.Strip() {
		t.Error("strip2in not reported as strip")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "media.toml")
	content := `
[badge]
width = "60mm"
height = "90mm"
margin = "5mm"
spacing = "2mm"

[receipt]
width = "80mm"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	presets, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(presets) != 2 {
		t.Fatalf("loaded %d presets, want 2", len(presets))
	}

	badge, err := Lookup(presets, "badge")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := badge.Width.Inches(), 60/25.4; math.Abs(got-want) > lenEps {
		t.Errorf("badge width = %v in, want %v", got, want)
	}
	if got, want := badge.Margin.Inches(), 5/25.4; math.Abs(got-want) > lenEps {
		t.Errorf("badge margin = %v in, want %v", got, want)
	}

	// receipt omits height, margin and spacing: strip with defaults.
	receipt, err := Lookup(presets, "receipt")
	if err != nil {
		t.Fatal(err)
	}
	if !receipt.Strip() {
		t.Error("receipt not reported as strip")
	}
	if receipt.Margin != DefaultMargin || receipt.Spacing != DefaultSpacing {
		t.Errorf("receipt defaults = %v/%v, want %v/%v",
			receipt.Margin, receipt.Spacing, DefaultMargin, DefaultSpacing)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
		if !errors.Is(err, errors.ErrCodeFileNotFound) {
			t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
		}
	})

	t.Run("malformed toml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "media.toml")
		if err := os.WriteFile(path, []byte("[broken\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := Load(path)
		if !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidInput)
		}
	})

	t.Run("preset without width", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "media.toml")
		if err := os.WriteFile(path, []byte("[nameless]\nmargin = \"1in\"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := Load(path)
		if !errors.Is(err, errors.ErrCodeInvalidMedium) {
			t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidMedium)
		}
	})

	t.Run("bad unit", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "media.toml")
		if err := os.WriteFile(path, []byte("[bad]\nwidth = \"8.5cubits\"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Error("Load succeeded with an unknown unit")
		}
	})
}

func TestMerge(t *testing.T) {
	base := Builtins()
	override := Preset{Name: "letter", Width: Inches(9), Height: Inches(12)}.withDefaults()
	extra := Preset{Name: "badge", Width: Inches(3), Height: Inches(4)}.withDefaults()

	merged := Merge(base, []Preset{override, extra})

	if len(merged) != len(base)+1 {
		t.Errorf("merged %d presets, want %d", len(merged), len(base)+1)
	}

	letter, err := Lookup(merged, "letter")
	if err != nil {
		t.Fatal(err)
	}
	if letter.Width.Inches() != 9 {
		t.Errorf("override not applied: letter width = %v", letter.Width)
	}

	if _, err := Lookup(merged, "badge"); err != nil {
		t.Errorf("new preset missing after merge: %v", err)
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup(Builtins(), "tabloid")
	if !errors.Is(err, errors.ErrCodePresetNotFound) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodePresetNotFound)
	}
}
