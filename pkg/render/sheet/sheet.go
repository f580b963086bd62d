package sheet

import (
	"math"

	"github.com/dominopress/dominopress/pkg/domino"
	"github.com/dominopress/dominopress/pkg/errors"
)

// eps guards the capacity floors against float jitter: a row that
// mathematically fits n tiles must never round down to n-1.
const eps = 1e-9

// Medium describes one print target in a single linear unit. Height 0
// marks an unbounded strip whose length grows to fit the content.
type Medium struct {
	Width  float64
	Height float64
	Margin float64
}

// Unbounded reports whether the medium is a strip.
func (m Medium) Unbounded() bool {
	return m.Height == 0
}

// Layout is the computed tile arrangement for one medium. It is a plain
// value, recomputed per request and safe to copy.
type Layout struct {
	Medium  Medium
	Metrics domino.Metrics
	Spacing float64

	// Count is the number of tiles the layout was computed for.
	Count int

	// TilesPerRow is the horizontal capacity of the medium.
	TilesPerRow int

	// TilesPerColumn is the vertical capacity of a fixed-height page;
	// zero for strips.
	TilesPerColumn int

	// TilesPerPage is TilesPerRow*TilesPerColumn for fixed pages, or
	// Count for strips, which are a single unbounded page.
	TilesPerPage int

	// Unbounded mirrors Medium.Unbounded for convenience.
	Unbounded bool

	// XOffset is the x position of the first tile column. With centering
	// enabled the leftover row width is split evenly onto both sides;
	// without it, the offset is exactly one spacing.
	XOffset float64

	// ContentHeight is the height the content actually needs: the strip
	// length, or the required canvas of the final page.
	ContentHeight float64

	// Pages is the number of output sheets Paginate will produce.
	Pages int
}

// Option configures Build.
type Option func(*config)

type config struct {
	metrics domino.Metrics
	spacing float64
	center  bool
}

// WithMetrics overrides the default tile geometry.
func WithMetrics(m domino.Metrics) Option {
	return func(c *config) { c.metrics = m }
}

// WithSpacing overrides the default inter-tile spacing (in the medium's
// linear unit).
func WithSpacing(s float64) Option {
	return func(c *config) { c.spacing = s }
}

// WithoutCentering left-aligns tile rows instead of splitting the
// leftover row width onto both sides.
func WithoutCentering() Option {
	return func(c *config) { c.center = false }
}

// Build computes the layout for count tiles on the given medium.
//
// It fails with LAYOUT_INFEASIBLE when the medium cannot host even one
// tile at the given margin and spacing, and with INVALID_MEDIUM /
// INVALID_COUNT for nonsensical inputs. The capacity is never silently
// clamped: a caller asking for tiles on a too-small medium is told so.
func Build(m Medium, count int, opts ...Option) (Layout, error) {
	cfg := config{
		metrics: domino.DefaultMetrics(),
		spacing: 0.125,
		center:  true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if m.Width <= 0 {
		return Layout{}, errors.New(errors.ErrCodeInvalidMedium, "medium width must be positive, got %v", m.Width)
	}
	if m.Height < 0 {
		return Layout{}, errors.New(errors.ErrCodeInvalidMedium, "medium height must not be negative, got %v", m.Height)
	}
	if m.Margin < 0 {
		return Layout{}, errors.New(errors.ErrCodeInvalidMedium, "margin must not be negative, got %v", m.Margin)
	}
	if cfg.spacing < 0 {
		return Layout{}, errors.New(errors.ErrCodeInvalidMedium, "spacing must not be negative, got %v", cfg.spacing)
	}
	if count < 0 {
		return Layout{}, errors.New(errors.ErrCodeInvalidCount, "tile count must not be negative, got %d", count)
	}

	tileW := cfg.metrics.TileWidth()
	tileH := cfg.metrics.TileHeight()

	printableW := m.Width - 2*m.Margin
	tilesPerRow := int(math.Floor(printableW/(tileW+cfg.spacing) + eps))
	if tilesPerRow < 1 {
		return Layout{}, errors.New(errors.ErrCodeLayoutInfeasible,
			"medium width %v cannot fit one tile (printable %v, tile %v + spacing %v)",
			m.Width, printableW, tileW, cfg.spacing)
	}

	l := Layout{
		Medium:      m,
		Metrics:     cfg.metrics,
		Spacing:     cfg.spacing,
		Count:       count,
		TilesPerRow: tilesPerRow,
		Unbounded:   m.Unbounded(),
	}

	if m.Unbounded() {
		// A strip is a single page with as many rows as the count needs.
		l.TilesPerPage = count
		if count > 0 {
			l.Pages = 1
		}
	} else {
		printableH := m.Height - 2*m.Margin
		tilesPerColumn := int(math.Floor((printableH-m.Margin)/(tileH+m.Margin) + eps))
		if tilesPerColumn < 1 {
			return Layout{}, errors.New(errors.ErrCodeLayoutInfeasible,
				"medium height %v cannot fit one tile (printable %v, tile %v + margin %v)",
				m.Height, printableH, tileH, m.Margin)
		}
		l.TilesPerColumn = tilesPerColumn
		l.TilesPerPage = tilesPerRow * tilesPerColumn
		l.Pages = (count + l.TilesPerPage - 1) / l.TilesPerPage
	}

	l.XOffset = cfg.spacing
	if cfg.center {
		usedWidth := float64(tilesPerRow)*tileW + float64(tilesPerRow+1)*cfg.spacing
		l.XOffset = cfg.spacing + (m.Width-usedWidth)/2
	}

	rows := (count + tilesPerRow - 1) / tilesPerRow
	l.ContentHeight = float64(rows)*(tileH+m.Margin) + m.Margin

	return l, nil
}
