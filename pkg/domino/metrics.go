package domino

// Metrics derives all tile geometry from two constants: the pip diameter
// and the pip margin. Every tile and every pip is identical in size; the
// tile body is exactly wide enough for two pip columns with margins on
// both sides and between them, and exactly tall enough for eight pip rows
// with margins between and at both ends.
//
// Metrics carries no unit. The values are interpreted in whatever linear
// unit the caller resolved the medium to; the default metrics are chosen
// for inches.
type Metrics struct {
	PipDiameter float64
	PipMargin   float64
}

// DefaultMetrics returns the standard tile geometry: 0.1in pips with
// 0.1in margins, yielding a 0.5in x 1.7in tile.
func DefaultMetrics() Metrics {
	return Metrics{PipDiameter: 0.1, PipMargin: 0.1}
}

// TileWidth returns the tile body width: two pip columns plus three margins.
func (m Metrics) TileWidth() float64 {
	return 2*m.PipDiameter + 3*m.PipMargin
}

// TileHeight returns the tile body height: eight pip rows plus nine margins.
func (m Metrics) TileHeight() float64 {
	return 8*m.PipDiameter + 9*m.PipMargin
}

// CornerRadius returns the rounding radius of the tile body corners.
func (m Metrics) CornerRadius() float64 {
	return m.PipMargin
}

// PipRadius returns the radius of one pip circle.
func (m Metrics) PipRadius() float64 {
	return m.PipDiameter / 2
}

// pipCenter returns the center of pip position bit on a tile whose body
// top-left corner is at (x, y). Bit positions map to column bit/8 and
// row bit%8.
func (m Metrics) pipCenter(bit int, x, y float64) (cx, cy float64) {
	col := bit / columnBits
	row := bit % columnBits
	pitch := m.PipDiameter + m.PipMargin
	cx = x + m.PipMargin + float64(col)*pitch + m.PipDiameter/2
	cy = y + m.PipMargin + float64(row)*pitch + m.PipDiameter/2
	return cx, cy
}
