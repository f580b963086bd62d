package domino

// RoundedRect is an axis-aligned rectangle with rounded corners.
// (X, Y) is the top-left corner in a y-down coordinate system.
type RoundedRect struct {
	X, Y   float64
	W, H   float64
	Radius float64
}

// Circle is a filled circle given by its center and radius.
type Circle struct {
	CX, CY float64
	R      float64
}

// Tile is the drawable form of one code at one position: a rounded
// rectangle body plus one circle per visible pip. Unset bits are simply
// absent; they show as background, not as contrasting marks.
type Tile struct {
	Code Code
	Body RoundedRect
	Pips []Circle
}

// Tile converts a code plus the tile body's top-left position into draw
// primitives. It is a pure function: any 16-bit value renders, whether or
// not it is a valid token, and no rendering backend is involved.
func (m Metrics) Tile(code Code, x, y float64) Tile {
	t := Tile{
		Code: code,
		Body: RoundedRect{
			X: x, Y: y,
			W:      m.TileWidth(),
			H:      m.TileHeight(),
			Radius: m.CornerRadius(),
		},
		Pips: make([]Circle, 0, 16),
	}
	for bit := 0; bit < 16; bit++ {
		if !code.Bit(bit) {
			continue
		}
		cx, cy := m.pipCenter(bit, x, y)
		t.Pips = append(t.Pips, Circle{CX: cx, CY: cy, R: m.PipRadius()})
	}
	return t
}
