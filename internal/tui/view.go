package tui

import (
	"fmt"
	"strings"

	"folio-cli/internal/features"
	"folio-cli/internal/router"
	"folio-cli/internal/tui/render"

	"github.com/charmbracelet/lipgloss"
)

const (
	headerHeight = 1
	statusHeight = 1
	// 边框 2 行 + 标题栏 + 输入行 + 提示行。
	modalChromeHeight = 5
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")).
			Padding(0, 1)
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D7A85")).
			Padding(0, 1)
	terminalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#5E6472")).
			Padding(0, 1)
	titleBarStyle = lipgloss.NewStyle().Faint(true)
)

func (m *Model) View() string {
	if m.modal.Visible() {
		return m.terminalView()
	}
	header := m.renderHeader()
	status := m.renderStatus()
	return lipgloss.JoinVertical(lipgloss.Left, header, m.page.View(), status)
}

func (m *Model) renderHeader() string {
	loc := m.router.Current()
	left := fmt.Sprintf("%s  %s %s", m.content.Owner, loc.Path(), m.spin.View())
	right := ""
	if m.features.Enabled(features.Clock) {
		right = m.clock.Format("15:04:05")
	}
	return headerStyle.Render(spread(left, right, maxInt(20, m.width)-2))
}

func (m *Model) renderStatus() string {
	hints := []string{m.toggleKey + " terminal", "b back", "↑/↓ scroll", "q quit"}
	if m.router.Current().Page == router.PageBlog {
		label := "all"
		if m.blogTag != "" {
			label = "#" + m.blogTag
		}
		hints = append(hints, "t tag: "+label)
	}
	return statusStyle.Width(maxInt(20, m.width)).Render(strings.Join(hints, " • "))
}

func (m *Model) terminalView() string {
	area := render.ModalRect(m.width, m.height)
	inner := maxInt(10, area.Width-4)

	title := titleBarStyle.Render(spread(m.profile.User+":~", "zsh", inner))
	hints := []string{"enter run", "↑/↓ history"}
	if m.features.Enabled(features.Completion) {
		hints = append(hints, "tab complete")
	}
	if m.features.Enabled(features.Clipboard) {
		hints = append(hints, "ctrl+y copy")
	}
	hints = append(hints, "esc close")
	hint := render.MutedStyle().Render(strings.Join(hints, " • "))
	if m.flash != "" {
		hint = render.MutedStyle().Render(m.flash)
	}

	body := lipgloss.JoinVertical(lipgloss.Left, title, m.term.View(), m.input.View(), hint)
	box := terminalStyle.Width(inner + 2).Render(body)
	if m.width <= 0 || m.height <= 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// spread 把 left 与 right 排在同一行的两端。
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
