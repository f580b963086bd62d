// Package pkg provides the core libraries for dominopress.
//
// # Overview
//
// Dominopress turns 16-bit codes into printable domino tiles: each code
// is drawn as a pip pattern on a rounded tile, and batches of tiles are
// laid out on pages or strips for printing. The pkg directory is
// organized into four main areas:
//
//  1. [domino] - Code legality rules, deck enumeration, sampling, tile geometry
//  2. [media] - Physical units and print media presets
//  3. [render] - Sheet layout, pagination, and output sinks (SVG, PDF, PNG, JSON)
//  4. [errors], [buildinfo] - Shared error codes and build metadata
//
// # Architecture
//
// The typical data flow through dominopress:
//
//	media preset / explicit dimensions
//	         ↓
//	    [domino] package (enumerate deck, sample unique codes)
//	         ↓
//	    [render/sheet] package (layout + pagination)
//	         ↓
//	    [render/sheet/sink] package (SVG/PDF/PNG/JSON output)
//
// # Quick Start
//
// Sample a batch of codes and render the first page as SVG:
//
//	import (
//	    "math/rand/v2"
//
//	    "github.com/dominopress/dominopress/pkg/domino"
//	    "github.com/dominopress/dominopress/pkg/render/sheet"
//	    "github.com/dominopress/dominopress/pkg/render/sheet/sink"
//	)
//
//	// 1. Sample unique codes
//	rng := rand.New(rand.NewPCG(42, 42))
//	codes, _ := domino.Default().Sample(rng, 60)
//
//	// 2. Compute the layout for US letter
//	l, _ := sheet.Build(sheet.Medium{Width: 8.5, Height: 11, Margin: 0.25}, len(codes))
//
//	// 3. Paginate and render
//	pages := sheet.Paginate(codes, l)
//	svg := sink.RenderSVG(pages[0], l)
//
// [domino]: https://pkg.go.dev/github.com/dominopress/dominopress/pkg/domino
// [media]: https://pkg.go.dev/github.com/dominopress/dominopress/pkg/media
// [render]: https://pkg.go.dev/github.com/dominopress/dominopress/pkg/render
// [render/sheet]: https://pkg.go.dev/github.com/dominopress/dominopress/pkg/render/sheet
// [render/sheet/sink]: https://pkg.go.dev/github.com/dominopress/dominopress/pkg/render/sheet/sink
// [errors]: https://pkg.go.dev/github.com/dominopress/dominopress/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/dominopress/dominopress/pkg/buildinfo
package pkg
