// Package picker is the terminal drawing chooser used by the pick and list commands.
package picker

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"strokeview/internal/drawing"
)

// Styles
var (
	accentFg  = lipgloss.Color("#7C3AED")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	borderCol = lipgloss.Color("#243141")

	titleStyle    = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(baseDimFg)
	selectedStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	boxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	headerStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
)

// Model lists drawing summaries and lets the user choose one.
type Model struct {
	items    []drawing.Summary
	cursor   int
	offset   int
	height   int
	chosen   string
	canceled bool
}

// New returns a picker over items with the cursor on the first entry.
func New(items []drawing.Summary) Model {
	return Model{items: items, height: 20}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// title, box border and help line
		m.height = max(msg.Height-5, 1)
		m.scroll()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.canceled = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			m.cursor = max(len(m.items)-1, 0)
		case "enter":
			if len(m.items) == 0 {
				return m, nil
			}
			m.chosen = m.items[m.cursor].DrawingID
			return m, tea.Quit
		}
		m.scroll()
	}
	return m, nil
}

// scroll keeps the cursor inside the visible window.
func (m *Model) scroll() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Drawings (%d)", len(m.items))))
	b.WriteString("\n")

	var rows []string
	if len(m.items) == 0 {
		rows = append(rows, dimStyle.Render(drawingsEmpty))
	}
	end := min(m.offset+m.height, len(m.items))
	for i := m.offset; i < end; i++ {
		it := m.items[i]
		if i == m.cursor {
			rows = append(rows, selectedStyle.Render("> "+it.DrawingID))
			continue
		}
		rows = append(rows, fmt.Sprintf("  %s  %s", it.DrawingID, dimStyle.Render(string(it.DrawTimestamp))))
	}
	b.WriteString(boxStyle.Render(strings.Join(rows, "\n")))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("up/down move  enter view  q quit"))
	return b.String()
}

// Cursor returns the highlighted index.
func (m Model) Cursor() int { return m.cursor }

// Chosen returns the selected drawing id, or "" when the picker was dismissed.
func (m Model) Chosen() string { return m.chosen }

// Canceled reports whether the user quit without choosing.
func (m Model) Canceled() bool { return m.canceled }

// Run shows the picker on the terminal and returns the chosen id.
func Run(items []drawing.Summary) (string, error) {
	final, err := tea.NewProgram(New(items)).Run()
	if err != nil {
		return "", fmt.Errorf("picker: %w", err)
	}
	return final.(Model).Chosen(), nil
}

const drawingsEmpty = "no drawings"

// Table renders summaries as an aligned table for the list command.
func Table(items []drawing.Summary) string {
	if len(items) == 0 {
		return dimStyle.Render(drawingsEmpty)
	}
	headers := []string{"#", "DRAWING", "DRAWN", "CREATED", "AI"}
	cells := make([][]string, 0, len(items))
	for i, it := range items {
		ai := "no"
		if it.UseAI {
			ai = "yes"
		}
		cells = append(cells, []string{
			fmt.Sprint(i + 1), it.DrawingID, string(it.DrawTimestamp), string(it.CreatedAt), ai,
		})
	}

	widths := make([]int, len(headers))
	for c, h := range headers {
		widths[c] = lipgloss.Width(h)
		for _, row := range cells {
			widths[c] = max(widths[c], lipgloss.Width(row[c]))
		}
	}
	col := func(c int) lipgloss.Style { return lipgloss.NewStyle().Width(widths[c]).MarginRight(2) }

	var lines []string
	var head []string
	for c, h := range headers {
		head = append(head, col(c).Inherit(headerStyle).Render(h))
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, head...))
	for _, row := range cells {
		var parts []string
		for c, v := range row {
			parts = append(parts, col(c).Render(v))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
