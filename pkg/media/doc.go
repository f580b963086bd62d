// Package media resolves print media descriptions into plain numbers for
// the layout engine.
//
// The layout core works in a single linear unit (inches). This package
// owns everything in front of that boundary: unit-suffixed lengths
// ("8.5in", "210mm", "612pt") with conversion to the common unit, named
// media presets for standard paper sizes and label strips, and merging of
// user-defined presets from a TOML file over the built-in set.
package media
