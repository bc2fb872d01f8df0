package shell

import (
	"time"

	"folio-cli/internal/events"
	"folio-cli/internal/logger"
)

// State 是终端弹窗的可见状态。
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// ModalOptions 描述弹窗及其会话的协作方。
type ModalOptions struct {
	Profile   Profile
	Navigator Navigator
	Events    Publisher
	Logger    *logger.LogEntry
	// OnChange 在每次真实的状态切换后调用。
	OnChange func(open bool)
}

// Modal 是终端弹窗的状态机：Closed ⇄ Open。
// 每次 Closed→Open 都创建全新的空会话，关闭时丢弃会话。
type Modal struct {
	opts    ModalOptions
	state   State
	session *Session
	log     *logger.LogEntry
}

// NewModal 返回处于 Closed 状态的弹窗。
func NewModal(opts ModalOptions) *Modal {
	entry := opts.Logger
	if entry == nil {
		entry = logger.Named("shell")
	}
	return &Modal{opts: opts, state: Closed, log: entry}
}

// Toggle 翻转可见状态。
func (m *Modal) Toggle() {
	m.SetVisible(m.state == Closed)
}

// SetVisible 切换到指定状态；与当前状态相同时不做任何事。
func (m *Modal) SetVisible(open bool) {
	if open == (m.state == Open) {
		return
	}
	if open {
		m.state = Open
		m.session = NewSession(Options{
			Profile:    m.opts.Profile,
			Navigator:  m.opts.Navigator,
			Visibility: m,
			Events:     m.opts.Events,
			Logger:     m.opts.Logger,
		})
	} else {
		m.state = Closed
		if m.session != nil {
			logger.Closed(m.session.ID(), m.session.history.Len())
		}
		m.session = nil
	}
	m.log.WithField("state", m.state.String()).Debug("terminal visibility changed")
	if m.opts.Events != nil {
		sessionID := ""
		if m.session != nil {
			sessionID = m.session.ID()
		}
		m.opts.Events.Publish(events.Event{
			Type:      events.EventVisibilityChanged,
			SessionID: sessionID,
			Timestamp: time.Now(),
			Payload:   events.VisibilityChanged{Visible: open},
		})
	}
	if m.opts.OnChange != nil {
		m.opts.OnChange(open)
	}
}

// Visible 报告弹窗是否打开。
func (m *Modal) Visible() bool {
	return m.state == Open
}

func (m *Modal) State() State {
	return m.state
}

// Session 返回当前会话；Closed 状态下为 nil。
func (m *Modal) Session() *Session {
	return m.session
}
