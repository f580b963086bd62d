// Package render provides output rendering for domino sheets.
//
// # Overview
//
// This package contains the rendering pipeline that turns computed sheet
// layouts into printable files. It provides:
//
//   - Generic format conversion (SVG to PNG)
//   - Sheet layout and pagination (in [sheet] subpackage)
//   - Output sinks for SVG, PDF, PNG and JSON (in [sheet/sink] subpackage)
//
// # Format Conversion
//
// The [ToPNG] function rasterizes any SVG using the external rsvg-convert
// tool (from librsvg). The PDF sink does not go through SVG; it writes
// paged PDF directly via seehuhn.de/go/pdf.
//
//	svg := sink.RenderSVG(page, layout)
//	png, err := render.ToPNG(svg, 2.0) // 2x scale
//
// [sheet]: github.com/dominopress/dominopress/pkg/render/sheet
// [sheet/sink]: github.com/dominopress/dominopress/pkg/render/sheet/sink
package render
