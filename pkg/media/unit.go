package media

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dominopress/dominopress/pkg/errors"
)

// Unit is a linear measurement unit.
type Unit string

// Supported units.
const (
	Inch       Unit = "in"
	Millimeter Unit = "mm"
	Centimeter Unit = "cm"
	Point      Unit = "pt"
)

// inchesPer maps each unit to its size in inches, the common unit all
// layout math is performed in.
var inchesPer = map[Unit]float64{
	Inch:       1,
	Millimeter: 1.0 / 25.4,
	Centimeter: 1.0 / 2.54,
	Point:      1.0 / 72,
}

// Length is a linear measurement with an explicit unit. The zero value is
// "absent" (see [Length.IsZero]); a zero-valued height marks an unbounded
// strip medium.
type Length struct {
	Value float64
	Unit  Unit
}

// Inches creates a Length in the common unit.
func Inches(v float64) Length {
	return Length{Value: v, Unit: Inch}
}

// ParseLength parses a unit-suffixed length such as "8.5in", "210mm",
// "2.54cm" or "612pt". A bare number is taken as inches. It fails with
// INVALID_UNIT for an unknown suffix and INVALID_INPUT for a malformed
// number.
func ParseLength(s string) (Length, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Length{}, errors.New(errors.ErrCodeInvalidInput, "empty length")
	}

	unit := Inch
	num := trimmed
	if i := strings.IndexFunc(trimmed, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.' && r != '-' && r != '+'
	}); i >= 0 {
		suffix := Unit(strings.TrimSpace(trimmed[i:]))
		if _, ok := inchesPer[suffix]; !ok {
			return Length{}, errors.New(errors.ErrCodeInvalidUnit, "unknown unit %q in %q", suffix, s)
		}
		unit = suffix
		num = trimmed[:i]
	}

	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Length{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid length %q", s)
	}
	return Length{Value: v, Unit: unit}, nil
}

// Inches converts the length to the common unit.
func (l Length) Inches() float64 {
	if l.Unit == "" {
		return l.Value
	}
	return l.Value * inchesPer[l.Unit]
}

// Points converts the length to PDF points (1/72 inch).
func (l Length) Points() float64 {
	return l.Inches() * 72
}

// IsZero reports whether the length is absent (zero value with no unit,
// or an explicit zero measurement).
func (l Length) IsZero() bool {
	return l.Value == 0
}

// String formats the length with its unit, e.g. "8.5in".
func (l Length) String() string {
	unit := l.Unit
	if unit == "" {
		unit = Inch
	}
	return fmt.Sprintf("%s%s", strconv.FormatFloat(l.Value, 'f', -1, 64), unit)
}

// UnmarshalText implements encoding.TextUnmarshaler so lengths can be
// written as strings in TOML preset files.
func (l *Length) UnmarshalText(b []byte) error {
	parsed, err := ParseLength(string(b))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (l Length) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}
