// Package sink provides output format renderers for domino sheets.
//
// # Overview
//
// A "sink" transforms paginated tiles into a final output format. This
// package provides renderers for:
//
//   - SVG: one vector image per page
//   - PDF: one print-ready document with one PDF page per sheet
//   - PNG: raster export of one page (requires rsvg-convert)
//   - JSON: machine-readable manifest mapping every printed tile to its
//     code and position, tagged with a batch UUID
//
// All sinks consume the same inputs: [sheet.Page] values from
// [sheet.Paginate] plus the [sheet.Layout] they were computed from. The
// layout's linear unit is whatever the caller used (the CLI uses
// inches); the SVG and PDF sinks scale it to pixels and points through
// the [WithPixelsPerUnit] and [WithPointsPerUnit] options.
//
// # SVG Output
//
//	svg := sink.RenderSVG(page, layout)
//
// # PDF Output
//
// The PDF sink writes paged PDF directly via seehuhn.de/go/pdf; it does
// not round-trip through SVG and needs no external tools:
//
//	err := sink.RenderPDF(w, pages, layout)
//
// # PNG Output
//
// [RenderPNG] rasterizes the SVG rendering through rsvg-convert, exactly
// like SVG-to-PNG export elsewhere:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// # JSON Output
//
// [RenderJSON] emits the generation manifest: batch UUID, medium and
// layout echo, and one entry per tile. Fabrication can use it to map a
// physical token back to its code.
//
// [sheet.Page]: github.com/dominopress/dominopress/pkg/render/sheet.Page
// [sheet.Paginate]: github.com/dominopress/dominopress/pkg/render/sheet.Paginate
// [sheet.Layout]: github.com/dominopress/dominopress/pkg/render/sheet.Layout
package sink
