package events

import "time"

// EventType 描述终端会话广播的事件类型。
type EventType string

const (
	EventCommandExecuted     EventType = "command.executed"
	EventScrollbackCleared   EventType = "scrollback.cleared"
	EventNavigationRequested EventType = "navigation.requested"
	EventVisibilityChanged   EventType = "visibility.changed"
)

// CommandExecuted 在每次非空提交求值后发出。
type CommandExecuted struct {
	Command string `json:"command"`
	Name    string `json:"name"`
	Output  string `json:"output"`
	Known   bool   `json:"known"`
}

// NavigationRequested 在 cd 成功解析出目标后发出；Back 表示返回上一页。
type NavigationRequested struct {
	Path string `json:"path,omitempty"`
	Back bool   `json:"back,omitempty"`
}

// VisibilityChanged 在终端弹窗开关时发出。
type VisibilityChanged struct {
	Visible bool `json:"visible"`
}

// Event 是 Bus 上传递的唯一消息格式，Payload 的结构由 Type 决定。
type Event struct {
	Type      EventType
	SessionID string
	Timestamp time.Time
	Payload   any
}
