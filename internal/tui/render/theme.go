package render

import "github.com/charmbracelet/lipgloss"

var (
	accentColor = lipgloss.Color("#22c55e")
	linkColor   = lipgloss.Color("#60a5fa")
	brandColor  = lipgloss.Color("#7D56F4")

	promptStyle  = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	commandStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	keyStyle     = lipgloss.NewStyle().Foreground(accentColor)
	usageStyle   = lipgloss.NewStyle().Foreground(linkColor)
	linkStyle    = lipgloss.NewStyle().Foreground(linkColor).Underline(true)
	dirStyle     = lipgloss.NewStyle().Foreground(linkColor).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f87171"))
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(brandColor)
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	accentStyle  = lipgloss.NewStyle().Bold(true)
)

// Prompt 是每条命令前的提示符。
const Prompt = "➜ ~"

// PromptStyle 暴露提示符样式给输入框使用。
func PromptStyle() lipgloss.Style {
	return promptStyle
}

// MutedStyle 暴露次要文本样式。
func MutedStyle() lipgloss.Style {
	return mutedStyle
}
