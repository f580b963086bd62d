package sink

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/dominopress/dominopress/pkg/render/sheet"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	batch  string
	preset string
	seed   uint64
	seeded bool
}

// WithJSONBatch sets an explicit batch identifier instead of a freshly
// generated UUID. Used to make manifests reproducible.
func WithJSONBatch(id string) JSONOption { return func(r *jsonRenderer) { r.batch = id } }

// WithJSONPreset records the media preset name the batch was generated
// for.
func WithJSONPreset(name string) JSONOption { return func(r *jsonRenderer) { r.preset = name } }

// WithJSONSeed records the sampling seed in the manifest, enabling
// reproducible regeneration of the same batch.
func WithJSONSeed(seed uint64) JSONOption {
	return func(r *jsonRenderer) { r.seed = seed; r.seeded = true }
}

type jsonOutput struct {
	Batch     string     `json:"batch"`
	Preset    string     `json:"preset,omitempty"`
	Seed      uint64     `json:"seed,omitempty"`
	Seeded    bool       `json:"seeded,omitempty"`
	Medium    jsonMedium `json:"medium"`
	Layout    jsonLayout `json:"layout"`
	Pages     []jsonPage `json:"pages"`
	TileCount int        `json:"tile_count"`
}

type jsonMedium struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height,omitempty"`
	Margin float64 `json:"margin"`
	Strip  bool    `json:"strip,omitempty"`
}

type jsonLayout struct {
	TilesPerRow   int     `json:"tiles_per_row"`
	TilesPerPage  int     `json:"tiles_per_page"`
	Spacing       float64 `json:"spacing"`
	XOffset       float64 `json:"x_offset"`
	ContentHeight float64 `json:"content_height"`
}

type jsonPage struct {
	Number int        `json:"number"`
	Tiles  []jsonTile `json:"tiles"`
}

type jsonTile struct {
	Code string  `json:"code"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// RenderJSON emits the generation manifest: a batch UUID, the medium and
// layout parameters, and one entry per printed tile. The manifest is the
// machine-readable record that maps a physical token back to its code.
func RenderJSON(pages []sheet.Page, l sheet.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	if r.batch == "" {
		r.batch = uuid.NewString()
	}

	out := jsonOutput{
		Batch:  r.batch,
		Preset: r.preset,
		Seed:   r.seed,
		Seeded: r.seeded,
		Medium: jsonMedium{
			Width:  l.Medium.Width,
			Height: l.Medium.Height,
			Margin: l.Medium.Margin,
			Strip:  l.Unbounded,
		},
		Layout: jsonLayout{
			TilesPerRow:   l.TilesPerRow,
			TilesPerPage:  l.TilesPerPage,
			Spacing:       l.Spacing,
			XOffset:       l.XOffset,
			ContentHeight: l.ContentHeight,
		},
		Pages: make([]jsonPage, 0, len(pages)),
	}

	for _, page := range pages {
		jp := jsonPage{Number: page.Number, Tiles: make([]jsonTile, 0, len(page.Tiles))}
		for _, tile := range page.Tiles {
			jp.Tiles = append(jp.Tiles, jsonTile{Code: tile.Code.String(), X: tile.X, Y: tile.Y})
			out.TileCount++
		}
		out.Pages = append(out.Pages, jp)
	}

	return json.MarshalIndent(out, "", "  ")
}
