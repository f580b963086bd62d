package domino

import (
	"math"
	"math/bits"
	"testing"
)

const geomEps = 1e-9

func TestDefaultMetricsDimensions(t *testing.T) {
	m := DefaultMetrics()

	if got := m.TileWidth(); math.Abs(got-0.5) > geomEps {
		t.Errorf("TileWidth() = %v, want 0.5", got)
	}
	if got := m.TileHeight(); math.Abs(got-1.7) > geomEps {
		t.Errorf("TileHeight() = %v, want 1.7", got)
	}
	if got := m.CornerRadius(); math.Abs(got-0.1) > geomEps {
		t.Errorf("CornerRadius() = %v, want 0.1", got)
	}
	if got := m.PipRadius(); math.Abs(got-0.05) > geomEps {
		t.Errorf("PipRadius() = %v, want 0.05", got)
	}
}

func TestTilePipCountMatchesSetBits(t *testing.T) {
	m := DefaultMetrics()

	tests := []struct {
		name string
		code Code
	}{
		{name: "no pips", code: Code(0)},
		{name: "frame pips only", code: Code(0x8181)},
		{name: "all pips", code: Code(0xffff)},
		{name: "arbitrary pattern", code: Code(0xa5c3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tile := m.Tile(tt.code, 0, 0)
			want := bits.OnesCount16(uint16(tt.code))
			if len(tile.Pips) != want {
				t.Errorf("emitted %d pips, want %d", len(tile.Pips), want)
			}
		})
	}
}

func TestTileBodyPlacement(t *testing.T) {
	m := DefaultMetrics()
	tile := m.Tile(Code(0x8181), 2.25, 3.5)

	if tile.Body.X != 2.25 || tile.Body.Y != 3.5 {
		t.Errorf("body at (%v, %v), want (2.25, 3.5)", tile.Body.X, tile.Body.Y)
	}
	if math.Abs(tile.Body.W-m.TileWidth()) > geomEps {
		t.Errorf("body width = %v, want %v", tile.Body.W, m.TileWidth())
	}
	if math.Abs(tile.Body.H-m.TileHeight()) > geomEps {
		t.Errorf("body height = %v, want %v", tile.Body.H, m.TileHeight())
	}
	if math.Abs(tile.Body.Radius-m.CornerRadius()) > geomEps {
		t.Errorf("body radius = %v, want %v", tile.Body.Radius, m.CornerRadius())
	}
}

func TestTilePipCenters(t *testing.T) {
	m := DefaultMetrics()

	// Bit 0 is column 0, row 0: first pip down-right of the body corner.
	tile := m.Tile(Code(1), 0, 0)
	if len(tile.Pips) != 1 {
		t.Fatalf("emitted %d pips, want 1", len(tile.Pips))
	}
	wantC := m.PipMargin + m.PipDiameter/2
	if math.Abs(tile.Pips[0].CX-wantC) > geomEps || math.Abs(tile.Pips[0].CY-wantC) > geomEps {
		t.Errorf("bit 0 center = (%v, %v), want (%v, %v)", tile.Pips[0].CX, tile.Pips[0].CY, wantC, wantC)
	}

	// Bit 15 is column 1, row 7: last pip, mirrored into the far corner.
	tile = m.Tile(Code(1<<15), 0, 0)
	if len(tile.Pips) != 1 {
		t.Fatalf("emitted %d pips, want 1", len(tile.Pips))
	}
	pitch := m.PipDiameter + m.PipMargin
	wantX := m.PipMargin + pitch + m.PipDiameter/2
	wantY := m.PipMargin + 7*pitch + m.PipDiameter/2
	if math.Abs(tile.Pips[0].CX-wantX) > geomEps || math.Abs(tile.Pips[0].CY-wantY) > geomEps {
		t.Errorf("bit 15 center = (%v, %v), want (%v, %v)", tile.Pips[0].CX, tile.Pips[0].CY, wantX, wantY)
	}

	// All pips must stay inside the body.
	tile = m.Tile(Code(0xffff), 1, 1)
	for i, pip := range tile.Pips {
		if pip.CX-pip.R < tile.Body.X-geomEps || pip.CX+pip.R > tile.Body.X+tile.Body.W+geomEps ||
			pip.CY-pip.R < tile.Body.Y-geomEps || pip.CY+pip.R > tile.Body.Y+tile.Body.H+geomEps {
			t.Errorf("pip %d at (%v, %v) escapes the tile body", i, pip.CX, pip.CY)
		}
	}
}
