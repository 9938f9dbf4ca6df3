package anyon

import (
	"fmt"
	"io"
	"math"
	"math/cmplx"

	"github.com/charmbracelet/lipgloss"
)

/*
Renderer is the visualisation collaborator for assembled generators. The
engine never depends on it for correctness: it is only called when a
generator is shown, and its errors are logged, not returned.
*/
type Renderer interface {
	Render(w io.Writer, g *Generator) error
}

/*
TableRenderer prints a generator as a terminal table, one row per final
state. Each entry is shown as modulus∠phase with the phase in units of π;
entries below Tolerance are shown as a dot.
*/
type TableRenderer struct {
	Tolerance float64
	Precision int

	header lipgloss.Style
	cell   lipgloss.Style
	zero   lipgloss.Style
}

func NewTableRenderer(tolerance float64) *TableRenderer {
	return &TableRenderer{
		Tolerance: tolerance,
		Precision: 3,
		header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).PaddingRight(1),
		cell:      lipgloss.NewStyle().Align(lipgloss.Right).PaddingLeft(2),
		zero:      lipgloss.NewStyle().Align(lipgloss.Right).PaddingLeft(2).Faint(true),
	}
}

func (r *TableRenderer) Render(w io.Writer, g *Generator) error {
	labels := g.Labels()
	if len(labels) != g.Len() {
		return fmt.Errorf("%w: %d labels for dimension %d", ErrInvalidShape, len(labels), g.Len())
	}

	labelWidth := 0
	for _, label := range labels {
		labelWidth = max(labelWidth, lipgloss.Width(label))
	}

	entries := make([][]string, g.Len())
	entryWidth := labelWidth
	for f, row := range g.Matrix {
		entries[f] = make([]string, len(row))
		for i, amplitude := range row {
			entries[f][i] = r.format(amplitude)
			entryWidth = max(entryWidth, lipgloss.Width(entries[f][i]))
		}
	}

	title := r.header.Render(fmt.Sprintf("σ_%d (%d×%d)", g.Index, g.Len(), g.Len()))

	columns := []string{r.header.Width(labelWidth + 1).Render("")}
	for _, label := range labels {
		columns = append(columns, r.header.Width(entryWidth+2).Align(lipgloss.Right).Render(label))
	}
	rows := []string{title, lipgloss.JoinHorizontal(lipgloss.Top, columns...)}

	for f, row := range entries {
		cells := []string{r.header.Width(labelWidth + 1).Render(labels[f])}
		for _, entry := range row {
			style := r.cell
			if entry == "·" {
				style = r.zero
			}
			cells = append(cells, style.Width(entryWidth+2).Render(entry))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, rows...))
	return err
}

func (r *TableRenderer) format(amplitude complex128) string {
	modulus := cmplx.Abs(amplitude)
	if modulus <= r.Tolerance {
		return "·"
	}

	return fmt.Sprintf("%.*f∠%+.*fπ", r.Precision, modulus, r.Precision, cmplx.Phase(amplitude)/math.Pi)
}
