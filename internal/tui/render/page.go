package render

import (
	"folio-cli/internal/site"

	"github.com/charmbracelet/lipgloss"
)

// RenderPage 将站点页面按宽度换行渲染，并返回换行后的锚点行号。
func RenderPage(page site.Page, width int) ([]Line, map[string]int) {
	lines := make([]Line, 0, len(page.Lines))
	rowOf := make([]int, len(page.Lines))
	for i, pl := range page.Lines {
		rowOf[i] = len(lines)
		if pl.Text == "" {
			lines = append(lines, Line{})
			continue
		}
		lines = append(lines, wrapLines(pl.Text, width, pageStyle(pl.Style))...)
	}
	anchors := make(map[string]int, len(page.Anchors))
	for name, idx := range page.Anchors {
		if idx >= 0 && idx < len(rowOf) {
			anchors[name] = rowOf[idx]
		}
	}
	return lines, anchors
}

func pageStyle(s site.LineStyle) lipgloss.Style {
	switch s {
	case site.StyleTitle:
		return titleStyle
	case site.StyleHeading:
		return headingStyle
	case site.StyleMuted:
		return mutedStyle
	case site.StyleAccent:
		return accentStyle
	default:
		return lipgloss.Style{}
	}
}
