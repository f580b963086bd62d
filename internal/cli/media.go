package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/dominopress/dominopress/pkg/domino"
	"github.com/dominopress/dominopress/pkg/media"
	"github.com/dominopress/dominopress/pkg/render/sheet"
)

// newMediaCmd creates the media command for listing the available print
// media presets. User presets from --presets are merged over the
// built-in set; same-name presets replace built-ins.
func newMediaCmd() *cobra.Command {
	var userFile string

	cmd := &cobra.Command{
		Use:   "media",
		Short: "List the available media presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMedia(userFile)
		},
	}

	cmd.Flags().StringVar(&userFile, "presets", "", "TOML file with additional media presets")

	return cmd
}

// runMedia prints the merged preset table with the per-page tile
// capacity each preset yields under default geometry.
func runMedia(userFile string) error {
	presets := media.Builtins()
	if path := presetsFile(userFile); path != "" {
		user, err := media.Load(path)
		if err != nil {
			return err
		}
		presets = media.Merge(presets, user)
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	rows := make([][]string, 0, len(presets))
	for _, p := range presets {
		rows = append(rows, []string{
			p.Name,
			p.Width.String(),
			heightCell(p),
			p.Margin.String(),
			p.Spacing.String(),
			capacityCell(p),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Preset", "Width", "Height", "Margin", "Spacing", "Capacity").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	fmt.Println(t)
	return nil
}

// heightCell formats a preset's height, naming strips explicitly.
func heightCell(p media.Preset) string {
	if p.Strip() {
		return "strip"
	}
	return p.Height.String()
}

// capacityCell reports how many tiles fit on one page of the preset, or
// the row width for strips.
func capacityCell(p media.Preset) string {
	m := sheet.Medium{
		Width:  p.Width.Inches(),
		Height: p.Height.Inches(),
		Margin: p.Margin.Inches(),
	}
	l, err := sheet.Build(m, domino.Default().Size(), sheet.WithSpacing(p.Spacing.Inches()))
	if err != nil {
		return "-"
	}
	if l.Unbounded {
		return fmt.Sprintf("%d/row", l.TilesPerRow)
	}
	return fmt.Sprintf("%d/page", l.TilesPerPage)
}
