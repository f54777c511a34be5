package viz

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/quadlab/internal/config"
	"github.com/san-kum/quadlab/internal/experiment"
	"github.com/san-kum/quadlab/internal/quad"
	"github.com/san-kum/quadlab/internal/sweep"
)

func TestRenderTable(t *testing.T) {
	rows := []Row{
		{Method: "trapezoid", Strategy: "Trapezoid", Output: 0.335, Evals: 11, Elapsed: time.Microsecond, AbsError: 1.0 / 600},
		{Method: "gaussian", Strategy: "Gaussian", Output: 1.3, Evals: 64, Elapsed: 2 * time.Microsecond, AbsError: math.NaN()},
	}

	out := RenderTable(rows)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)

	assert.Contains(t, lines[0], "method")
	assert.Contains(t, lines[0], "abs error")
	assert.Contains(t, lines[1], "─")
	assert.Contains(t, lines[2], "Trapezoid")
	assert.Contains(t, lines[2], "1.667e-03")
	assert.Contains(t, lines[3], "64")
	assert.Contains(t, lines[3], "n/a")
}

func TestMetric(t *testing.T) {
	out := Metric("evals", "17")
	assert.Contains(t, out, "evals:")
	assert.Contains(t, out, "17")
	assert.Less(t, strings.Index(out, "evals:"), strings.Index(out, "17"))
}

func TestFormatError(t *testing.T) {
	assert.Equal(t, "n/a", FormatError(math.NaN()))
	assert.Equal(t, "1.000e-10", FormatError(1e-10))
}

func TestSweepPlot(t *testing.T) {
	trials := []sweep.Trial{
		{Param: 10, AbsError: 1e-3},
		{Param: 20, AbsError: math.NaN()},
		{Param: 40, AbsError: 1e-5},
		{Param: 80, AbsError: 1e-7},
	}

	out := SweepPlot(trials, "trapezoid")
	assert.Contains(t, out, "log10 |error| at 10, 40, 80")

	assert.Equal(t, "no exact value to compare against",
		SweepPlot([]sweep.Trial{{Param: 1, AbsError: math.NaN()}}, "x"))
}

func TestTracePlot(t *testing.T) {
	assert.Empty(t, TracePlot(nil, "empty"))

	points := []quad.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 4}}
	assert.Contains(t, TracePlot(points, "romberg diagonal"), "romberg diagonal")
}

func TestThemes(t *testing.T) {
	assert.Equal(t, "retro", GetTheme("retro").Name)
	assert.Equal(t, "cyberpunk", GetTheme("nonexistent").Name)
	assert.Equal(t, []string{"cyberpunk", "retro", "minimal"}, ThemeNames())
	assert.Equal(t, ThemeMinimal.Good, ThemeMinimal.errorColor(1e-12))
	assert.Equal(t, ThemeMinimal.Bad, ThemeMinimal.errorColor(0.5))
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░", ProgressBar(1, 2, 10))
	assert.Equal(t, "██████████", ProgressBar(5, 2, 10))
	assert.Empty(t, ProgressBar(1, 0, 10))
}

func runner(t *testing.T) RunFunc {
	reg := experiment.NewRegistry()
	return func(method string) (*experiment.Result, error) {
		cfg := config.DefaultConfig()
		cfg.Integrand = "square"
		cfg.Method = method
		cfg.Params.Steps = 10
		exp, err := experiment.New(reg, cfg)
		if err != nil {
			return nil, err
		}
		return exp.Run(context.Background())
	}
}

// drive feeds the model its own commands until it stops issuing them.
func drive(t *testing.T, m tea.Model, cmd tea.Cmd) tea.Model {
	t.Helper()
	for i := 0; cmd != nil; i++ {
		require.Less(t, i, 100)
		m, cmd = m.Update(cmd())
	}
	return m
}

func TestCompareModel(t *testing.T) {
	m := NewCompareModel("square", []string{"trapezoid", "simpson", "gaussian"}, runner(t))
	assert.Contains(t, m.View(), "trapezoid")

	final := drive(t, m, m.Init()).(CompareModel)
	require.True(t, final.Done())
	require.Len(t, final.Rows(), 3)
	assert.Equal(t, "Trapezoid", final.Rows()[0].Strategy)
	assert.Equal(t, 64, final.Rows()[2].Evals)
	assert.Contains(t, final.View(), "3/3 done")
}

func TestCompareModelErrors(t *testing.T) {
	run := func(method string) (*experiment.Result, error) {
		if method == "bad" {
			return nil, errors.New("boom")
		}
		return runner(t)(method)
	}
	m := NewCompareModel("square", []string{"bad", "trapezoid"}, run)

	final := drive(t, m, m.Init()).(CompareModel)
	assert.Len(t, final.Rows(), 1)
	assert.EqualError(t, final.Err("bad"), "boom")
	assert.Contains(t, final.View(), "bad: boom")
}

func TestCompareModelKeys(t *testing.T) {
	m := NewCompareModel("square", []string{"trapezoid"}, runner(t))
	final := drive(t, m, m.Init()).(CompareModel)

	next, _ := final.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	assert.Equal(t, "retro", next.(CompareModel).Theme().Name)

	rerun, cmd := next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	assert.Empty(t, rerun.(CompareModel).Rows())
	require.NotNil(t, cmd)
	again := drive(t, rerun, cmd).(CompareModel)
	assert.Len(t, again.Rows(), 1)

	_, cmd = again.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
