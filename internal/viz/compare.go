package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/quadlab/internal/experiment"
)

// RunFunc integrates the configured integrand with one named method.
type RunFunc func(method string) (*experiment.Result, error)

type resultMsg struct {
	index int
	row   Row
	err   error
}

// CompareModel runs methods one at a time and fills in the table as
// results arrive.
type CompareModel struct {
	integrand string
	methods   []string
	run       RunFunc
	rows      []Row
	errs      map[string]error
	next      int
	theme     int
	width     int
}

func NewCompareModel(integrand string, methods []string, run RunFunc) CompareModel {
	return CompareModel{
		integrand: integrand,
		methods:   methods,
		run:       run,
		errs:      make(map[string]error),
		width:     80,
	}
}

func (m CompareModel) Done() bool   { return m.next >= len(m.methods) }
func (m CompareModel) Rows() []Row  { return m.rows }
func (m CompareModel) Theme() Theme { return Themes[m.theme] }

func (m CompareModel) Err(method string) error { return m.errs[method] }

func (m CompareModel) Init() tea.Cmd { return m.runNext() }

func (m CompareModel) runNext() tea.Cmd {
	if m.Done() {
		return nil
	}
	idx, name, run := m.next, m.methods[m.next], m.run
	return func() tea.Msg {
		res, err := run(name)
		if err != nil {
			return resultMsg{index: idx, row: Row{Method: name}, err: err}
		}
		return resultMsg{index: idx, row: RowFromResult(res)}
	}
}

func (m CompareModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "t":
			m.theme = (m.theme + 1) % len(Themes)
		case "r":
			if !m.Done() {
				return m, nil
			}
			m.rows = nil
			m.errs = make(map[string]error)
			m.next = 0
			return m, m.runNext()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case resultMsg:
		// results from a run that was restarted are stale
		if msg.index != m.next {
			return m, nil
		}
		if msg.err != nil {
			m.errs[msg.row.Method] = msg.err
		} else {
			m.rows = append(m.rows, msg.row)
		}
		m.next++
		return m, m.runNext()
	}
	return m, nil
}

func (m CompareModel) View() string {
	theme := m.Theme()
	title := lipgloss.NewStyle().Bold(true).Foreground(theme.Primary)

	var b strings.Builder
	b.WriteString(title.Render(fmt.Sprintf("quadlab: %s", m.integrand)))
	b.WriteString("\n\n")

	barWidth := m.width / 2
	if barWidth > 40 {
		barWidth = 40
	}
	b.WriteString(ProgressBar(m.next, len(m.methods), barWidth))
	if m.Done() {
		b.WriteString(fmt.Sprintf(" %d/%d done", m.next, len(m.methods)))
	} else {
		b.WriteString(fmt.Sprintf(" %s %s", Spinner(m.next), m.methods[m.next]))
	}
	b.WriteString("\n\n")

	b.WriteString(Panel.BorderForeground(theme.Muted).Render(renderTable(m.rows, theme)))
	b.WriteString("\n")

	for _, name := range m.methods {
		if err, ok := m.errs[name]; ok {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Bad).Render(fmt.Sprintf("%s: %v", name, err)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(KeyHint.Render(fmt.Sprintf("r rerun · t theme (%s) · q quit", theme.Name)))
	return b.String()
}
