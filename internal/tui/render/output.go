package render

import (
	"strings"

	"folio-cli/internal/shell"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// RenderRecord 渲染一条 scrollback 记录：提示符 + 原始命令，随后是输出。
func RenderRecord(rec shell.Record, width int) []Line {
	lines := []Line{{Spans: []Span{
		{Text: Prompt + " ", Style: promptStyle},
		{Text: rec.Command, Style: commandStyle},
	}}}
	return append(lines, RenderOutput(rec.Output, width)...)
}

// RenderScrollback 渲染整个 scrollback，记录之间空一行。
func RenderScrollback(records []shell.Record, width int) []Line {
	var out []Line
	for i, rec := range records {
		if i > 0 {
			out = append(out, Line{})
		}
		out = append(out, RenderRecord(rec, width)...)
	}
	return out
}

// RenderOutput 按输出形态渲染。
func RenderOutput(o shell.Output, width int) []Line {
	switch o.Kind {
	case shell.OutputCommands:
		return renderCommands(o, width)
	case shell.OutputInfo:
		return renderInfo(o, width)
	case shell.OutputListing:
		return renderListing(o)
	case shell.OutputLinks:
		return renderLinks(o)
	default:
		if o.Text == "" {
			return nil
		}
		style := lipgloss.Style{}
		if isDiagnostic(o.Text) {
			style = errorStyle
		}
		return wrapLines(o.Text, width, style)
	}
}

func isDiagnostic(text string) bool {
	return strings.HasPrefix(text, "command not found:") ||
		strings.HasPrefix(text, "cd: ") ||
		strings.HasPrefix(text, "Usage:")
}

func renderCommands(o shell.Output, width int) []Line {
	var lines []Line
	if o.Text != "" {
		lines = append(lines, Plain(o.Text, mutedStyle))
	}
	col := 0
	for _, c := range o.Commands {
		col = maxInt(col, runewidth.StringWidth(c.Usage))
	}
	for _, c := range o.Commands {
		usage := runewidth.FillRight(c.Usage, col)
		descWidth := width - col - 5
		desc := wrapText(c.Description, descWidth)
		indent := strings.Repeat(" ", col+5)
		for i, d := range desc {
			if i == 0 {
				lines = append(lines, Line{Spans: []Span{
					{Text: "  "},
					{Text: usage, Style: usageStyle},
					{Text: " - ", Style: mutedStyle},
					{Text: d},
				}})
				continue
			}
			lines = append(lines, Line{Spans: []Span{{Text: indent}, {Text: d}}})
		}
	}
	return lines
}

func renderInfo(o shell.Output, width int) []Line {
	lines := make([]Line, 0, len(o.Fields)+2)
	for _, f := range o.Fields {
		key := f.Key + ": "
		keyWidth := runewidth.StringWidth(key)
		value := wrapLines(f.Value, maxInt(1, width-keyWidth), lipgloss.Style{})
		lines = append(lines, PrefixLines(value, Span{Text: key, Style: keyStyle}, Span{Text: strings.Repeat(" ", keyWidth)})...)
	}
	if o.Text != "" {
		lines = append(lines, Line{})
		lines = append(lines, wrapLines(o.Text, width, mutedStyle)...)
	}
	return lines
}

func renderListing(o shell.Output) []Line {
	lines := make([]Line, 0, len(o.Entries))
	for _, e := range o.Entries {
		lines = append(lines, Line{Spans: []Span{
			{Text: shell.ListingMode + " ", Style: mutedStyle},
			{Text: e + "/", Style: dirStyle},
		}})
	}
	return lines
}

func renderLinks(o shell.Output) []Line {
	lines := make([]Line, 0, len(o.Links))
	for _, l := range o.Links {
		lines = append(lines, Line{Spans: []Span{
			{Text: l.Label + ": ", Style: keyStyle},
			{Text: l.Text, Style: linkStyle},
		}})
	}
	return lines
}

// Banner 返回弹窗顶部的欢迎语。
func Banner(owner string) []Line {
	return []Line{
		Plain("Welcome to "+owner+"'s Terminal v1.0.0", titleStyle),
		Plain("Type 'help' to see available commands.", mutedStyle),
	}
}
