package render

import "github.com/charmbracelet/lipgloss"

// PrefixLines 为首行/续行添加前缀。
func PrefixLines(lines []Line, initial Span, subsequent Span) []Line {
	out := make([]Line, 0, len(lines))
	for i, l := range lines {
		spans := make([]Span, 0, len(l.Spans)+1)
		if i == 0 {
			spans = append(spans, initial)
		} else {
			spans = append(spans, subsequent)
		}
		spans = append(spans, l.Spans...)
		out = append(out, Line{Spans: spans, Style: l.Style})
	}
	return out
}

// wrapLines 换行后每行套用同一样式。
func wrapLines(content string, width int, style lipgloss.Style) []Line {
	lines := wrapText(content, width)
	out := make([]Line, 0, len(lines))
	for _, l := range lines {
		out = append(out, Plain(l, style))
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
