package tui

import (
	"folio-cli/internal/features"
	"folio-cli/internal/router"

	tea "github.com/charmbracelet/bubbletea"
)

// handleTerminalKey 处理弹窗打开时的按键。会话的唯一写入口都在这里。
func (m *Model) handleTerminalKey(msg tea.KeyMsg) []tea.Cmd {
	sess := m.modal.Session()
	if sess == nil {
		return nil
	}
	switch msg.String() {
	case "esc":
		m.modal.SetVisible(false)
		return nil
	case "enter":
		line := m.input.Value()
		sess.Submit(line)
		if m.modal.Visible() {
			m.input.SetValue(sess.Input())
		}
		return nil
	case "up":
		sess.SetInput(m.input.Value())
		sess.RecallPrevious()
		m.setInput(sess.Input())
		return nil
	case "down":
		sess.SetInput(m.input.Value())
		sess.RecallNext()
		m.setInput(sess.Input())
		return nil
	case "tab":
		if !m.features.Enabled(features.Completion) {
			return nil
		}
		sess.SetInput(m.input.Value())
		sess.Complete()
		m.setInput(sess.Input())
		return nil
	case "ctrl+y":
		if !m.features.Enabled(features.Clipboard) {
			return nil
		}
		rec, ok := sess.LastRecord()
		if !ok {
			return []tea.Cmd{m.setFlash("nothing to copy")}
		}
		if err := m.copy(rec.Output.Plain()); err != nil {
			log.WithError(err).Warn("copy to clipboard failed")
			return []tea.Cmd{m.setFlash("copy failed")}
		}
		return []tea.Cmd{m.setFlash("copied")}
	case "pgup":
		m.term.PageUp()
		return nil
	case "pgdown":
		m.term.PageDown()
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	sess.SetInput(m.input.Value())
	return []tea.Cmd{cmd}
}

// handlePageKey 处理弹窗关闭时的页面浏览按键，第二个返回值表示退出。
func (m *Model) handlePageKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "q":
		return nil, true
	case "b", "backspace":
		m.router.Back()
		return nil, false
	case "t":
		if m.router.Current().Page == router.PageBlog {
			m.cycleTag()
		}
		return nil, false
	case "g", "home":
		m.page.GotoTop()
		return nil, false
	case "G", "end":
		m.page.GotoBottom()
		return nil, false
	}
	return m.page.HandleUpdate(msg), false
}

// cycleTag 在博客页依次切换标签筛选，最后回到全部文章。
func (m *Model) cycleTag() {
	tags := m.content.Tags()
	next := ""
	if m.blogTag == "" {
		if len(tags) > 0 {
			next = tags[0]
		}
	} else {
		for i, t := range tags {
			if t == m.blogTag && i+1 < len(tags) {
				next = tags[i+1]
				break
			}
		}
	}
	m.blogTag = next
	m.pageDirty = true
	m.anchorPending = true
}

func (m *Model) setInput(value string) {
	m.input.SetValue(value)
	m.input.CursorEnd()
}
