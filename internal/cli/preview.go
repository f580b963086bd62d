package cli

import (
	"fmt"
	"math/rand/v2"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dominopress/dominopress/pkg/domino"
	"github.com/dominopress/dominopress/pkg/render/sheet"
)

// newPreviewCmd creates the preview command: an interactive terminal
// view of the sheets a generate run with the same flags would produce.
func newPreviewCmd() *cobra.Command {
	opts := generateOpts{
		count:  defaultCount,
		preset: defaultPreset,
	}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Browse generated sheets in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.seedSet = cmd.Flags().Changed("seed")
			return runPreview(&opts)
		},
	}

	cmd.Flags().IntVarP(&opts.count, "count", "n", opts.count, "number of tiles to generate")
	cmd.Flags().StringVarP(&opts.preset, "media", "m", opts.preset, "media preset name")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "sampling seed (default: random)")
	cmd.Flags().StringVar(&opts.presets, "presets", "", "TOML file with additional media presets")

	return cmd
}

// runPreview samples and lays out the tiles, then hands the pages to the
// interactive pager.
func runPreview(opts *generateOpts) error {
	medium, spacing, err := resolveMedium(opts)
	if err != nil {
		return err
	}

	seed := opts.seed
	if !opts.seedSet {
		seed = rand.Uint64()
	}

	codes, err := domino.Default().Sample(newRNG(seed), opts.count)
	if err != nil {
		return err
	}
	layout, err := sheet.Build(medium, opts.count, sheet.WithSpacing(spacing))
	if err != nil {
		return err
	}

	m := previewModel{
		pages:  sheet.Paginate(codes, layout),
		layout: layout,
		seed:   seed,
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// Preview styles.
var (
	previewTileStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 1)

	previewCodeStyle = lipgloss.NewStyle().Foreground(colorGray).Align(lipgloss.Center)
)

// previewModel is the bubbletea model for the sheet pager.
type previewModel struct {
	pages  []sheet.Page
	layout sheet.Layout
	page   int
	seed   uint64
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h", "pgup":
			if m.page > 0 {
				m.page--
			}
		case "right", "l", "pgdown":
			if m.page < len(m.pages)-1 {
				m.page++
			}
		}
	}
	return m, nil
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(appName))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render(fmt.Sprintf("page %d/%d · %d tiles · seed %d",
		m.page+1, len(m.pages), m.layout.Count, m.seed)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→ page  q quit"))
	b.WriteString("\n\n")

	if len(m.pages) == 0 {
		b.WriteString(StyleDim.Render("nothing to show"))
		return b.String()
	}

	b.WriteString(m.renderPage(m.pages[m.page]))
	return b.String()
}

// renderPage draws one page as a grid of bordered tile sketches with the
// hex code beneath each tile.
func (m previewModel) renderPage(p sheet.Page) string {
	perRow := m.layout.TilesPerRow
	if perRow < 1 {
		perRow = 1
	}

	var rows []string
	for start := 0; start < len(p.Tiles); start += perRow {
		end := min(start+perRow, len(p.Tiles))

		cells := make([]string, 0, end-start)
		for _, placed := range p.Tiles[start:end] {
			tile := previewTileStyle.Render(strings.Join(sketchRows(placed.Code), "\n"))
			code := previewCodeStyle.Width(lipgloss.Width(tile)).Render(placed.Code.String())
			cells = append(cells, lipgloss.JoinVertical(lipgloss.Left, tile, code))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
