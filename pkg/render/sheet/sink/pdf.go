package sink

import (
	"io"

	"seehuhn.de/go/pdf/document"

	"github.com/dominopress/dominopress/pkg/errors"
	"github.com/dominopress/dominopress/pkg/render/sheet"
)

// defaultPointsPerUnit maps one layout unit (an inch in the CLI) to PDF
// points.
const defaultPointsPerUnit = 72.0

// kappa is the cubic Bezier control offset that approximates a quarter
// circle.
const kappa = 0.5522847498

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	pointsPerUnit float64
}

// WithPointsPerUnit sets how many PDF points one layout unit maps to
// (default 72, points per inch).
func WithPointsPerUnit(ppu float64) PDFOption {
	return func(r *pdfRenderer) { r.pointsPerUnit = ppu }
}

// RenderPDF writes all pages as one paged PDF document. Strips become a
// single page sized to the content height.
//
// Unlike the SVG path, this writes PDF natively and needs no external
// tools.
func RenderPDF(w io.Writer, pages []sheet.Page, l sheet.Layout, opts ...PDFOption) error {
	r := pdfRenderer{pointsPerUnit: defaultPointsPerUnit}
	for _, opt := range opts {
		opt(&r)
	}

	height := l.Medium.Height
	if l.Unbounded {
		height = l.ContentHeight
	}
	pageW := l.Medium.Width * r.pointsPerUnit
	pageH := height * r.pointsPerUnit

	doc, err := document.WriteMultiPage(w, pageW, pageH)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "creating PDF document")
	}

	for _, page := range pages {
		p := doc.AddPage()
		p.SetLineWidth(l.Metrics.PipMargin / 5 * r.pointsPerUnit)

		for _, placed := range page.Tiles {
			tile := l.Metrics.Tile(placed.Code, placed.X, placed.Y)

			// Layout coordinates are y-down with the origin at the top
			// left; PDF user space is y-up. Flip against the page height.
			x := tile.Body.X * r.pointsPerUnit
			y := pageH - (tile.Body.Y+tile.Body.H)*r.pointsPerUnit
			bw := tile.Body.W * r.pointsPerUnit
			bh := tile.Body.H * r.pointsPerUnit
			rad := tile.Body.Radius * r.pointsPerUnit

			roundedRect(p, x, y, bw, bh, rad)
			p.Stroke()

			for _, pip := range tile.Pips {
				p.Circle(pip.CX*r.pointsPerUnit, pageH-pip.CY*r.pointsPerUnit, pip.R*r.pointsPerUnit)
				p.Fill()
			}
		}

		if err := p.Close(); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "closing PDF page %d", page.Number)
		}
	}

	if err := doc.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "closing PDF document")
	}
	return nil
}

// pather is the subset of the PDF page API the rounded rectangle needs.
type pather interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

// roundedRect traces a rounded rectangle in PDF coordinates, (x, y) being
// the bottom-left corner. Quarter circles are approximated with cubic
// Beziers.
func roundedRect(p pather, x, y, w, h, r float64) {
	k := kappa * r

	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.CurveTo(x+w-r+k, y, x+w, y+r-k, x+w, y+r)
	p.LineTo(x+w, y+h-r)
	p.CurveTo(x+w, y+h-r+k, x+w-r+k, y+h, x+w-r, y+h)
	p.LineTo(x+r, y+h)
	p.CurveTo(x+r-k, y+h, x, y+h-r+k, x, y+h-r)
	p.LineTo(x, y+r)
	p.CurveTo(x, y+r-k, x+r-k, y, x+r, y)
	p.ClosePath()
}
