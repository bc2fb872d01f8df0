package render

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Viewport 包装 bubbles viewport，跳过未变化的内容并支持跳转到指定行。
type Viewport struct {
	viewport.Model
	lastLines []string
	// Follow 为 true 时，若视口原本在底部，追加内容后仍停在底部。
	Follow bool
}

// NewViewport 创建视口。
func NewViewport(width, height int) Viewport {
	return Viewport{Model: viewport.New(width, height)}
}

// Resize 更新宽高；宽度变化会使缓存失效。
func (v *Viewport) Resize(width, height int) {
	if v == nil {
		return
	}
	if v.Width != width {
		v.Invalidate()
	}
	v.Width = width
	v.Height = height
}

// HandleUpdate 代理 bubbles 的 Update，保持内部状态。
func (v *Viewport) HandleUpdate(msg tea.Msg) tea.Cmd {
	if v == nil {
		return nil
	}
	var cmd tea.Cmd
	v.Model, cmd = v.Model.Update(msg)
	return cmd
}

// SetLines 更新内容，返回内容是否真的发生了变化。
func (v *Viewport) SetLines(lines []string) bool {
	if v == nil {
		return false
	}
	if v.lastLines != nil && slices.Equal(lines, v.lastLines) {
		return false
	}

	stickToBottom := v.Follow && (v.lastLines == nil || v.AtBottom())
	v.lastLines = append([]string{}, lines...)

	v.SetContent(strings.Join(lines, "\n"))
	if stickToBottom {
		v.GotoBottom()
	}
	return true
}

// ScrollTo 将第 line 行置于视口顶部。
func (v *Viewport) ScrollTo(line int) {
	if v == nil {
		return
	}
	v.SetYOffset(line)
}

// Invalidate 清空已缓存的行，强制下次 SetLines 全量刷新。
func (v *Viewport) Invalidate() {
	if v == nil {
		return
	}
	v.lastLines = nil
}
