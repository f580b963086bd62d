package sink

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderPDF(t *testing.T) {
	pages, l := letterPages(t, 75)

	var buf bytes.Buffer
	if err := RenderPDF(&buf, pages, l); err != nil {
		t.Fatalf("RenderPDF() error: %v", err)
	}

	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header: %.20q", buf.String())
	}
	if buf.Len() == 0 {
		t.Error("output is empty")
	}
}

type pathRecorder struct {
	ops []string
}

func (r *pathRecorder) MoveTo(x, y float64)              { r.ops = append(r.ops, "move") }
func (r *pathRecorder) LineTo(x, y float64)              { r.ops = append(r.ops, "line") }
func (r *pathRecorder) CurveTo(_, _, _, _, _, _ float64) { r.ops = append(r.ops, "curve") }
func (r *pathRecorder) ClosePath()                       { r.ops = append(r.ops, "close") }

func TestRoundedRectPath(t *testing.T) {
	var rec pathRecorder
	roundedRect(&rec, 10, 20, 36, 122.4, 7.2)

	// One move, then alternating edges and corner curves, closed at the end.
	want := "move line curve line curve line curve line curve close"
	if got := strings.Join(rec.ops, " "); got != want {
		t.Errorf("path ops = %q, want %q", got, want)
	}
}
