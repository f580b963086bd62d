// Package sheet computes how domino tiles fit onto print media and where
// each tile goes.
//
// The engine is deliberately unit-blind: a [Medium] carries plain numbers
// that the caller has already resolved to one linear unit (the CLI uses
// inches via the media package), and every output coordinate is in that
// same unit.
//
// [Build] turns a medium, a tile count and the tile geometry into a
// [Layout]: tiles per row, tiles per page (a strip is one unbounded
// page), the horizontal centering offset and the total content height.
// [Paginate] then walks a code sequence in page-sized chunks and assigns
// every code a concrete (x, y) position, row-major within its page.
//
// Both operations are pure and recomputed per request; nothing here is
// cached because every result depends on the inputs alone. A medium too
// small to host a single tile fails with the LAYOUT_INFEASIBLE error code
// rather than silently producing an empty layout.
package sheet
