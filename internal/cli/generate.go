package cli

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dominopress/dominopress/pkg/domino"
	"github.com/dominopress/dominopress/pkg/errors"
	"github.com/dominopress/dominopress/pkg/media"
	"github.com/dominopress/dominopress/pkg/render/sheet"
	"github.com/dominopress/dominopress/pkg/render/sheet/sink"
)

const (
	defaultCount  = 60       // one full letter page
	defaultPreset = "letter" // built-in media preset used when no dimensions are given
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	count    int      // number of tiles to generate
	preset   string   // media preset name
	width    string   // explicit medium width (length string, e.g. "8.5in")
	height   string   // explicit medium height; empty keeps the preset's
	margin   string   // page margin override
	spacing  string   // inter-tile spacing override
	strip    bool     // force an unbounded strip medium
	seed     uint64   // sampling seed
	seedSet  bool     // whether --seed was given explicitly
	noCenter bool     // left-align rows instead of centering
	formats  []string // output formats: "svg", "pdf", "png", "json"
	output   string   // output file (single format) or base path (multiple)
	presets  string   // path to a user preset TOML file
}

// newGenerateCmd creates the generate command: sample unique codes and
// render them as printable tile sheets.
//
// The medium comes from --media (a preset name) or from explicit
// --width/--height; all lengths accept a unit suffix (in, mm, cm, pt)
// and default to inches. A missing height, or --strip, makes the medium
// an unbounded strip sized to its content.
func newGenerateCmd() *cobra.Command {
	var formatsStr string
	opts := generateOpts{
		count:  defaultCount,
		preset: defaultPreset,
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Sample unique codes and render printable tile sheets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			opts.seedSet = cmd.Flags().Changed("seed")
			return runGenerate(cmd.Context(), &opts)
		},
	}

	cmd.Flags().IntVarP(&opts.count, "count", "n", opts.count, "number of tiles to generate")
	cmd.Flags().StringVarP(&opts.preset, "media", "m", opts.preset, "media preset name (see 'dominopress media')")
	cmd.Flags().StringVar(&opts.width, "width", "", "medium width (overrides --media), e.g. 8.5in or 210mm")
	cmd.Flags().StringVar(&opts.height, "height", "", "medium height; omit with --width for a strip")
	cmd.Flags().StringVar(&opts.margin, "margin", "", "page margin, e.g. 0.25in")
	cmd.Flags().StringVar(&opts.spacing, "spacing", "", "inter-tile spacing, e.g. 0.125in")
	cmd.Flags().BoolVar(&opts.strip, "strip", false, "treat the medium as an unbounded strip")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "sampling seed (default: random)")
	cmd.Flags().BoolVar(&opts.noCenter, "no-center", false, "left-align tile rows instead of centering")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), pdf, png, json (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVar(&opts.presets, "presets", "", "TOML file with additional media presets")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
func parseFormats(s string) []string {
	if s == "" {
		return []string{"svg"}
	}
	return strings.Split(s, ",")
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{"svg": true, "pdf": true, "png": true, "json": true}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'svg', 'pdf', 'png', or 'json')", f)
		}
	}
	return nil
}

// basePath derives the base output path from the --output flag. If the
// output carries a known format extension it is stripped, so that
// "-o batch.svg -f svg,json" yields batch.svg and batch.json.
func basePath(output string) string {
	if output == "" {
		return "dominoes"
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// presetsFile picks the user preset file: the explicit flag value, or
// the XDG config location (~/.config/dominopress/media.toml) when it
// exists. An empty result means built-ins only.
func presetsFile(flag string) string {
	if flag != "" {
		return flag
	}
	path := defaultPresetsFile()
	if path == "" {
		return ""
	}
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// defaultPresetsFile returns the XDG-standard preset file location.
func defaultPresetsFile() string {
	if cfgHome := os.Getenv("XDG_CONFIG_HOME"); cfgHome != "" {
		return filepath.Join(cfgHome, appName, "media.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "media.toml")
}

// newRNG builds the deterministic sampling source for a seed.
func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// resolveMedium turns the flags into a concrete medium and spacing, both
// in inches. Explicit --width wins over --media; --margin, --spacing,
// and --strip override whatever the preset says.
func resolveMedium(opts *generateOpts) (sheet.Medium, float64, error) {
	var p media.Preset

	if opts.width != "" {
		w, err := media.ParseLength(opts.width)
		if err != nil {
			return sheet.Medium{}, 0, err
		}
		p = media.Preset{Name: "custom", Width: w, Margin: media.DefaultMargin, Spacing: media.DefaultSpacing}
		if opts.height != "" {
			h, err := media.ParseLength(opts.height)
			if err != nil {
				return sheet.Medium{}, 0, err
			}
			p.Height = h
		}
	} else {
		presets := media.Builtins()
		if path := presetsFile(opts.presets); path != "" {
			user, err := media.Load(path)
			if err != nil {
				return sheet.Medium{}, 0, err
			}
			presets = media.Merge(presets, user)
		}
		found, err := media.Lookup(presets, opts.preset)
		if err != nil {
			return sheet.Medium{}, 0, err
		}
		p = found
	}

	if opts.margin != "" {
		m, err := media.ParseLength(opts.margin)
		if err != nil {
			return sheet.Medium{}, 0, err
		}
		p.Margin = m
	}
	if opts.spacing != "" {
		s, err := media.ParseLength(opts.spacing)
		if err != nil {
			return sheet.Medium{}, 0, err
		}
		p.Spacing = s
	}
	if opts.strip {
		p.Height = media.Length{}
	}

	m := sheet.Medium{
		Width:  p.Width.Inches(),
		Height: p.Height.Inches(),
		Margin: p.Margin.Inches(),
	}
	return m, p.Spacing.Inches(), nil
}

// runGenerate samples the codes, computes the layout, and writes every
// requested output format.
func runGenerate(ctx context.Context, opts *generateOpts) error {
	logger := loggerFromContext(ctx)

	medium, spacing, err := resolveMedium(opts)
	if err != nil {
		return err
	}

	seed := opts.seed
	if !opts.seedSet {
		seed = rand.Uint64()
	}
	logger.Debugf("Sampling %d codes with seed %d", opts.count, seed)

	deck := domino.Default()
	prog := newProgress(logger)
	codes, err := deck.Sample(newRNG(seed), opts.count)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Sampled %d of %d codes", len(codes), deck.Size()))

	layoutOpts := []sheet.Option{sheet.WithSpacing(spacing)}
	if opts.noCenter {
		layoutOpts = append(layoutOpts, sheet.WithoutCentering())
	}
	layout, err := sheet.Build(medium, opts.count, layoutOpts...)
	if err != nil {
		return err
	}
	logger.Debugf("Layout: %d per row, %d per page, %d page(s)",
		layout.TilesPerRow, layout.TilesPerPage, layout.Pages)

	pages := sheet.Paginate(codes, layout)

	base := basePath(opts.output)
	var written []string
	for _, format := range opts.formats {
		paths, err := writeFormat(ctx, pages, layout, format, base, seed, opts)
		if err != nil {
			return err
		}
		written = append(written, paths...)
	}

	printSuccess("Generated %d tiles on %d page(s)", opts.count, len(pages))
	printDetail("%d per row, %d per page, seed %d", layout.TilesPerRow, layout.TilesPerPage, seed)
	for _, path := range written {
		printFile(path)
	}
	return nil
}

// writeFormat renders one output format and writes its file(s). SVG and
// PNG are one file per page; PDF and JSON cover all pages in one file.
func writeFormat(ctx context.Context, pages []sheet.Page, l sheet.Layout, format, base string, seed uint64, opts *generateOpts) ([]string, error) {
	logger := loggerFromContext(ctx)

	switch format {
	case "pdf":
		path := base + ".pdf"
		f, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if err := sink.RenderPDF(f, pages, l); err != nil {
			return nil, err
		}
		logger.Infof("Generated %s", path)
		return []string{path}, nil

	case "json":
		jsonOpts := []sink.JSONOption{sink.WithJSONSeed(seed)}
		if opts.width == "" {
			jsonOpts = append(jsonOpts, sink.WithJSONPreset(opts.preset))
		}
		data, err := sink.RenderJSON(pages, l, jsonOpts...)
		if err != nil {
			return nil, err
		}
		path := base + ".json"
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, err
		}
		logger.Infof("Generated %s", path)
		return []string{path}, nil

	case "svg", "png":
		var paths []string
		for _, page := range pages {
			var data []byte
			var err error
			if format == "png" {
				data, err = sink.RenderPNG(page, l)
			} else {
				data = sink.RenderSVG(page, l)
			}
			if err != nil {
				return nil, err
			}

			path := pagePath(base, format, page.Number, len(pages))
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return nil, err
			}
			logger.Infof("Generated %s", path)
			paths = append(paths, path)
		}
		return paths, nil

	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format: %s", format)
	}
}

// pagePath builds the file name for one page, adding a _pN suffix only
// when the batch spans multiple pages.
func pagePath(base, format string, number, total int) string {
	if total <= 1 {
		return fmt.Sprintf("%s.%s", base, format)
	}
	return fmt.Sprintf("%s_p%d.%s", base, number, format)
}
