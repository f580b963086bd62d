package media

import (
	"cmp"
	"os"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/dominopress/dominopress/pkg/errors"
)

// Default page margin and inter-tile spacing, applied when a preset or a
// caller leaves them unset. The layout core itself never applies defaults.
var (
	DefaultMargin  = Inches(0.25)
	DefaultSpacing = Inches(0.125)
)

// Preset is a named print medium: page dimensions plus the margin and
// spacing the generator should use on it. A zero Height marks an
// unbounded strip that grows to fit its content.
type Preset struct {
	Name    string `toml:"-"`
	Width   Length `toml:"width"`
	Height  Length `toml:"height"`
	Margin  Length `toml:"margin"`
	Spacing Length `toml:"spacing"`
}

// Strip reports whether the preset describes an unbounded strip medium.
func (p Preset) Strip() bool {
	return p.Height.IsZero()
}

// withDefaults fills in the margin and spacing when the preset leaves
// them unset.
func (p Preset) withDefaults() Preset {
	if p.Margin.IsZero() {
		p.Margin = DefaultMargin
	}
	if p.Spacing.IsZero() {
		p.Spacing = DefaultSpacing
	}
	return p
}

// Builtins returns the built-in media presets, sorted by name.
func Builtins() []Preset {
	presets := []Preset{
		{Name: "letter", Width: Inches(8.5), Height: Inches(11)},
		{Name: "legal", Width: Inches(8.5), Height: Inches(14)},
		{Name: "a4", Width: Length{210, Millimeter}, Height: Length{297, Millimeter}},
		{Name: "a5", Width: Length{148, Millimeter}, Height: Length{210, Millimeter}},
		{Name: "strip2in", Width: Inches(2)},
		{Name: "strip50mm", Width: Length{50, Millimeter}},
	}
	for i := range presets {
		presets[i] = presets[i].withDefaults()
	}
	slices.SortFunc(presets, func(a, b Preset) int { return cmp.Compare(a.Name, b.Name) })
	return presets
}

// Load reads user presets from a TOML file. Each top-level table is one
// preset keyed by name:
//
//	[badge]
//	width = "60mm"
//	height = "90mm"
//	margin = "5mm"
//	spacing = "2mm"
//
// Missing margin or spacing fall back to the defaults. A missing height
// makes the preset a strip. Load fails with FILE_NOT_FOUND when the file
// does not exist and INVALID_INPUT when it does not parse.
func Load(path string) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "preset file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "reading preset file %s", path)
	}

	var tables map[string]Preset
	if err := toml.Unmarshal(data, &tables); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parsing preset file %s", path)
	}

	presets := make([]Preset, 0, len(tables))
	for name, p := range tables {
		if p.Width.IsZero() {
			return nil, errors.New(errors.ErrCodeInvalidMedium, "preset %q has no width", name)
		}
		p.Name = name
		presets = append(presets, p.withDefaults())
	}
	slices.SortFunc(presets, func(a, b Preset) int { return cmp.Compare(a.Name, b.Name) })
	return presets, nil
}

// Merge overlays user presets onto the base set. A user preset with the
// same name as a base preset replaces it; new names are appended. The
// result is sorted by name.
func Merge(base, overrides []Preset) []Preset {
	byName := make(map[string]Preset, len(base)+len(overrides))
	for _, p := range base {
		byName[p.Name] = p
	}
	for _, p := range overrides {
		byName[p.Name] = p
	}

	merged := make([]Preset, 0, len(byName))
	for _, p := range byName {
		merged = append(merged, p)
	}
	slices.SortFunc(merged, func(a, b Preset) int { return cmp.Compare(a.Name, b.Name) })
	return merged
}

// Lookup finds a preset by name, failing with PRESET_NOT_FOUND when the
// name is unknown.
func Lookup(presets []Preset, name string) (Preset, error) {
	for _, p := range presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, errors.New(errors.ErrCodePresetNotFound, "unknown media preset %q", name)
}
