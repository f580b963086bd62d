package sheet

import "github.com/dominopress/dominopress/pkg/domino"

// PlacedTile is one code with its physical position on a page. (X, Y) is
// the tile body's top-left corner in the medium's linear unit.
type PlacedTile struct {
	Code domino.Code
	X, Y float64
}

// Page is one output sheet. Numbers start at 1.
type Page struct {
	Number int
	Tiles  []PlacedTile
}

// Paginate assigns every code a (page, x, y) according to the layout.
//
// Codes are consumed in order, in chunks of Layout.TilesPerPage; within a
// page, tile i occupies column i mod TilesPerRow and row i div
// TilesPerRow. Every input code appears exactly once, input order is
// preserved, and the result has ceil(len(codes)/TilesPerPage) pages. For
// strips, all codes land on a single page.
//
// The layout must come from [Build]; Paginate itself performs no
// validation.
func Paginate(codes []domino.Code, l Layout) []Page {
	if len(codes) == 0 {
		return nil
	}

	perPage := l.TilesPerPage
	if l.Unbounded || perPage <= 0 {
		perPage = len(codes)
	}

	tileW := l.Metrics.TileWidth()
	tileH := l.Metrics.TileHeight()
	margin := l.Medium.Margin

	pages := make([]Page, 0, (len(codes)+perPage-1)/perPage)
	for start := 0; start < len(codes); start += perPage {
		chunk := codes[start:min(start+perPage, len(codes))]

		page := Page{
			Number: len(pages) + 1,
			Tiles:  make([]PlacedTile, 0, len(chunk)),
		}
		for i, code := range chunk {
			col := i % l.TilesPerRow
			row := i / l.TilesPerRow
			page.Tiles = append(page.Tiles, PlacedTile{
				Code: code,
				X:    float64(col)*(tileW+l.Spacing) + l.XOffset,
				Y:    float64(row)*(tileH+margin) + margin,
			})
		}
		pages = append(pages, page)
	}
	return pages
}
