package sheet

import (
	"math"
	"testing"

	"github.com/dominopress/dominopress/pkg/domino"
	"github.com/dominopress/dominopress/pkg/errors"
)

const testEps = 1e-9

// letter is the reference scenario: US letter with default tile geometry,
// 0.25 margin, 0.125 spacing. Printable width 8.0 fits 12 tiles per row;
// printable height 10.5 fits 5 rows; 60 tiles per page.
var letter = Medium{Width: 8.5, Height: 11, Margin: 0.25}

func TestBuildLetterScenario(t *testing.T) {
	l, err := Build(letter, 100)
	if err != nil {
		t.Fatal(err)
	}

	if l.TilesPerRow != 12 {
		t.Errorf("TilesPerRow = %d, want 12", l.TilesPerRow)
	}
	if l.TilesPerColumn != 5 {
		t.Errorf("TilesPerColumn = %d, want 5", l.TilesPerColumn)
	}
	if l.TilesPerPage != 60 {
		t.Errorf("TilesPerPage = %d, want 60", l.TilesPerPage)
	}
	if l.Pages != 2 {
		t.Errorf("Pages = %d, want 2 for 100 tiles", l.Pages)
	}
	if l.Unbounded {
		t.Error("letter reported as unbounded")
	}
}

func TestBuildStrip(t *testing.T) {
	strip := Medium{Width: 2, Margin: 0.25}

	l, err := Build(strip, 10)
	if err != nil {
		t.Fatal(err)
	}

	if !l.Unbounded {
		t.Error("strip not reported as unbounded")
	}
	if l.TilesPerRow != 2 {
		t.Errorf("TilesPerRow = %d, want 2", l.TilesPerRow)
	}
	if l.TilesPerPage != 10 {
		t.Errorf("TilesPerPage = %d, want the full count on one page", l.TilesPerPage)
	}
	if l.Pages != 1 {
		t.Errorf("Pages = %d, want 1", l.Pages)
	}

	// 10 tiles in rows of 2 is 5 rows.
	wantHeight := 5*(l.Metrics.TileHeight()+strip.Margin) + strip.Margin
	if math.Abs(l.ContentHeight-wantHeight) > testEps {
		t.Errorf("ContentHeight = %v, want %v", l.ContentHeight, wantHeight)
	}
}

func TestBuildInfeasible(t *testing.T) {
	tests := []struct {
		name   string
		medium Medium
	}{
		{name: "too narrow", medium: Medium{Width: 0.5, Height: 11, Margin: 0.25}},
		{name: "too short", medium: Medium{Width: 8.5, Height: 1.5, Margin: 0.25}},
		{name: "margin eats the page", medium: Medium{Width: 8.5, Height: 11, Margin: 4.2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.medium, 1)
			if err == nil {
				t.Fatal("Build succeeded, want layout-infeasible")
			}
			if !errors.Is(err, errors.ErrCodeLayoutInfeasible) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeLayoutInfeasible)
			}
		})
	}
}

func TestBuildInvalidInputs(t *testing.T) {
	tests := []struct {
		name   string
		medium Medium
		count  int
		opts   []Option
		code   errors.Code
	}{
		{name: "zero width", medium: Medium{Width: 0, Height: 11}, count: 1, code: errors.ErrCodeInvalidMedium},
		{name: "negative height", medium: Medium{Width: 8.5, Height: -1}, count: 1, code: errors.ErrCodeInvalidMedium},
		{name: "negative margin", medium: Medium{Width: 8.5, Height: 11, Margin: -0.1}, count: 1, code: errors.ErrCodeInvalidMedium},
		{name: "negative spacing", medium: letter, count: 1, opts: []Option{WithSpacing(-0.1)}, code: errors.ErrCodeInvalidMedium},
		{name: "negative count", medium: letter, count: -1, code: errors.ErrCodeInvalidCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.medium, tt.count, tt.opts...)
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestBuildScaleConsistency(t *testing.T) {
	// Doubling the width (margin, spacing, tile geometry fixed) must
	// never decrease the row capacity.
	for _, width := range []float64{1.5, 2, 3.3, 5, 8.5, 12.25, 20} {
		narrow, err := Build(Medium{Width: width, Height: 11, Margin: 0.25}, 10)
		if err != nil {
			continue
		}
		wide, err := Build(Medium{Width: 2 * width, Height: 11, Margin: 0.25}, 10)
		if err != nil {
			t.Fatalf("width %v feasible but 2x infeasible: %v", width, err)
		}
		if wide.TilesPerRow < narrow.TilesPerRow {
			t.Errorf("width %v fits %d per row but %v fits %d",
				width, narrow.TilesPerRow, 2*width, wide.TilesPerRow)
		}
	}
}

func TestBuildCentering(t *testing.T) {
	l, err := Build(letter, 60)
	if err != nil {
		t.Fatal(err)
	}

	// The centered tile band leaves equal room on both sides: left offset
	// plus the band width plus the same offset spans the medium exactly.
	tileW := l.Metrics.TileWidth()
	band := float64(l.TilesPerRow)*tileW + float64(l.TilesPerRow-1)*l.Spacing
	if got := 2*l.XOffset + band; math.Abs(got-letter.Width) > testEps {
		t.Errorf("2*offset + band = %v, want medium width %v", got, letter.Width)
	}
	if l.XOffset < l.Spacing {
		t.Errorf("XOffset = %v, below the minimum spacing %v", l.XOffset, l.Spacing)
	}
}

func TestBuildWithoutCentering(t *testing.T) {
	l, err := Build(letter, 60, WithoutCentering())
	if err != nil {
		t.Fatal(err)
	}
	if l.XOffset != l.Spacing {
		t.Errorf("XOffset = %v, want spacing %v when centering is disabled", l.XOffset, l.Spacing)
	}
}

func TestBuildCustomMetrics(t *testing.T) {
	// Oversized tiles shrink capacity but still follow the same formulas.
	big := domino.Metrics{PipDiameter: 0.5, PipMargin: 0.5}

	l, err := Build(letter, 4, WithMetrics(big))
	if err != nil {
		t.Fatal(err)
	}
	wantPerRow := int((letter.Width - 2*letter.Margin) / (big.TileWidth() + l.Spacing))
	if l.TilesPerRow != wantPerRow {
		t.Errorf("TilesPerRow = %d, want %d", l.TilesPerRow, wantPerRow)
	}
}
