package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/quadlab/internal/experiment"
)

type Row struct {
	Method   string
	Strategy string
	Output   float64
	Evals    int
	Elapsed  time.Duration
	AbsError float64
}

func RowFromResult(res *experiment.Result) Row {
	return Row{
		Method:   res.Method,
		Strategy: res.Report.Method,
		Output:   res.Report.Output,
		Evals:    res.Report.Evals,
		Elapsed:  res.Report.Elapsed(),
		AbsError: res.AbsErr,
	}
}

var tableHeaders = []string{"method", "strategy", "output", "evals", "elapsed", "abs error"}

func (r Row) cells() []string {
	return []string{
		r.Method,
		r.Strategy,
		fmt.Sprintf("%.15g", r.Output),
		fmt.Sprintf("%d", r.Evals),
		r.Elapsed.String(),
		FormatError(r.AbsError),
	}
}

// FormatError prints an absolute error, or "n/a" without an exact value.
func FormatError(err float64) string {
	if math.IsNaN(err) {
		return "n/a"
	}
	return fmt.Sprintf("%.3e", err)
}

// RenderTable lays rows out in aligned columns with the default theme.
func RenderTable(rows []Row) string {
	return renderTable(rows, ThemeCyberpunk)
}

func renderTable(rows []Row, theme Theme) string {
	cells := make([][]string, len(rows))
	widths := make([]int, len(tableHeaders))
	for i, h := range tableHeaders {
		widths[i] = len(h)
	}
	for i, r := range rows {
		cells[i] = r.cells()
		for j, c := range cells[i] {
			if w := lipgloss.Width(c); w > widths[j] {
				widths[j] = w
			}
		}
	}

	text := lipgloss.NewStyle().Foreground(theme.Text)
	header := HeaderStyle.
		Foreground(theme.Primary).
		BorderForeground(theme.Muted)

	var b strings.Builder
	plain := lipgloss.NewStyle()
	b.WriteString(header.Render(joinCells(tableHeaders, widths, func(int) lipgloss.Style { return plain })))

	for i, r := range rows {
		b.WriteString("\n")
		b.WriteString(joinCells(cells[i], widths, func(col int) lipgloss.Style {
			if col == len(widths)-1 && !math.IsNaN(r.AbsError) {
				return lipgloss.NewStyle().Foreground(theme.errorColor(r.AbsError))
			}
			return text
		}))
	}
	return b.String()
}

func joinCells(cells []string, widths []int, style func(col int) lipgloss.Style) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = style(i).Width(widths[i]).Render(c)
	}
	return strings.Join(parts, " ")
}
