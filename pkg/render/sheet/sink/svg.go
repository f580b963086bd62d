package sink

import (
	"bytes"
	"fmt"

	"github.com/dominopress/dominopress/pkg/render/sheet"
)

// defaultPixelsPerUnit maps one layout unit (an inch in the CLI) to CSS
// pixels.
const defaultPixelsPerUnit = 96.0

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	pixelsPerUnit float64
	cropToContent bool
}

// WithPixelsPerUnit sets how many output pixels one layout unit maps to
// (default 96, CSS pixels per inch).
func WithPixelsPerUnit(ppu float64) SVGOption {
	return func(r *svgRenderer) { r.pixelsPerUnit = ppu }
}

// WithCropToContent sizes the image to the content height instead of the
// medium height. This is the default for strips, which have no fixed
// height to begin with.
func WithCropToContent() SVGOption {
	return func(r *svgRenderer) { r.cropToContent = true }
}

// RenderSVG renders one page as a standalone SVG image. The viewBox is in
// layout units, so nested coordinates stay identical to the layout's
// numbers; only the outer width/height attributes are scaled to pixels.
func RenderSVG(page sheet.Page, l sheet.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{pixelsPerUnit: defaultPixelsPerUnit}
	for _, opt := range opts {
		opt(&r)
	}

	width := l.Medium.Width
	height := l.Medium.Height
	if l.Unbounded || r.cropToContent {
		height = l.ContentHeight
	}

	strokeWidth := l.Metrics.PipMargin / 5

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.4f %.4f" width="%.0f" height="%.0f">`+"\n",
		width, height, width*r.pixelsPerUnit, height*r.pixelsPerUnit)

	for _, placed := range page.Tiles {
		tile := l.Metrics.Tile(placed.Code, placed.X, placed.Y)

		fmt.Fprintf(&buf, `  <rect x="%.4f" y="%.4f" width="%.4f" height="%.4f" rx="%.4f" fill="none" stroke="black" stroke-width="%.4f"/>`+"\n",
			tile.Body.X, tile.Body.Y, tile.Body.W, tile.Body.H, tile.Body.Radius, strokeWidth)
		for _, pip := range tile.Pips {
			fmt.Fprintf(&buf, `  <circle cx="%.4f" cy="%.4f" r="%.4f" fill="black"/>`+"\n",
				pip.CX, pip.CY, pip.R)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
