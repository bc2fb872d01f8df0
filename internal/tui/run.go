package tui

import (
	"errors"

	"folio-cli/internal/features"
	"folio-cli/internal/router"

	tea "github.com/charmbracelet/bubbletea"
)

// Result 返回 TUI 运行后的必要信息。
type Result struct {
	Location router.Location
}

// Greeting 是启动时写入日志的彩蛋。
func Greeting(email string) []string {
	return []string{
		"Yo you got deeper, welcome to the matrix...",
		"If you're looking at this, you're probably a dev or a really technical recruiter. Check out my GitHub or say hi at " + email + "!",
		"if you find a bug, just pretend it's a feature, okay?",
	}
}

// Run 封装 Bubble Tea 入口，返回最终的 UI 结果。
func Run(opts Options) (Result, error) {
	model := New(opts)
	if opts.Features.Enabled(features.ConsoleGreeting) {
		for _, line := range Greeting(model.profile.Email) {
			log.Info(line)
		}
	}
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	m, err := program.Run()
	if err != nil {
		return Result{}, err
	}
	tuiModel, ok := m.(*Model)
	if !ok {
		return Result{}, errors.New("unexpected tui model")
	}
	return Result{Location: tuiModel.Router().Current()}, nil
}
