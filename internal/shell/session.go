package shell

import (
	"strings"
	"time"

	"folio-cli/internal/events"
	"folio-cli/internal/logger"

	"github.com/google/uuid"
)

// Navigator 是宿主的路由能力。
type Navigator interface {
	Navigate(path string)
	Back()
}

// Visibility 是宿主的终端弹窗开关能力。
type Visibility interface {
	SetVisible(open bool)
}

// Publisher 接收会话事件，events.Bus 满足该接口。
type Publisher interface {
	Publish(evt events.Event)
}

// Options 描述构造会话所需的协作方，全部可选。
type Options struct {
	ID         string
	Profile    Profile
	Navigator  Navigator
	Visibility Visibility
	Events     Publisher
	Logger     *logger.LogEntry
}

// Session 是一次终端会话：scrollback、输入历史与当前输入缓冲。
// 所有方法都在宿主的事件循环中同步执行，不做并发保护。
type Session struct {
	id         string
	registry   *Registry
	scrollback Scrollback
	history    *InputHistory
	input      string
	nav        Navigator
	visibility Visibility
	events     Publisher
	log        *logger.LogEntry
}

// NewSession 创建空会话。
func NewSession(opts Options) *Session {
	id := opts.ID
	if id == "" {
		id = uuid.NewString()
	}
	entry := opts.Logger
	if entry == nil {
		entry = logger.Named("shell")
	}
	return &Session{
		id:         id,
		registry:   NewRegistry(opts.Profile),
		history:    NewInputHistory(),
		nav:        opts.Navigator,
		visibility: opts.Visibility,
		events:     opts.Events,
		log:        entry.WithField("session_id", id),
	}
}

func (s *Session) ID() string {
	return s.id
}

// Registry 返回会话使用的命令分发表。
func (s *Session) Registry() *Registry {
	return s.registry
}

// Submit 求值一行输入。空白输入是 no-op；其余输入都会进入输入历史，
// 除 clear 外都会追加一条 scrollback 记录。
func (s *Session) Submit(raw string) {
	line := strings.TrimSpace(raw)
	if line == "" {
		return
	}
	tokens := strings.Split(strings.ToLower(line), " ")
	name, args := tokens[0], tokens[1:]
	res := s.registry.Dispatch(name, args)
	_, known := s.registry.Resolve(name)

	if res.Effect == EffectClear {
		s.scrollback.Clear()
	} else {
		s.scrollback.Append(Record{Command: raw, Output: res.Output})
	}
	s.history.Add(raw)
	s.input = ""

	logger.Command(s.id, raw, s.history.Len())
	logger.Output(s.id, res.Output.Kind.String(), res.Output.Plain())
	s.log.WithFields(logger.Fields{
		"command": name,
		"known":   known,
		"output":  res.Output.Kind.String(),
	}).Debug("command executed")
	s.publish(events.EventCommandExecuted, events.CommandExecuted{
		Command: raw,
		Name:    name,
		Output:  res.Output.Kind.String(),
		Known:   known,
	})
	if res.Effect == EffectClear {
		s.publish(events.EventScrollbackCleared, nil)
	}
	if res.Navigates() {
		s.navigate(res)
	}
}

func (s *Session) navigate(res Result) {
	switch res.Effect {
	case EffectBack:
		logger.Navigate(s.id, ParentDir)
		if s.nav != nil {
			s.nav.Back()
		}
		s.publish(events.EventNavigationRequested, events.NavigationRequested{Back: true})
	case EffectNavigate:
		logger.Navigate(s.id, res.Path)
		if s.nav != nil {
			s.nav.Navigate(res.Path)
		}
		s.publish(events.EventNavigationRequested, events.NavigationRequested{Path: res.Path})
	}
	s.log.WithField("path", res.Path).Debug("closing terminal after navigation")
	if s.visibility != nil {
		s.visibility.SetVisible(false)
	}
}

// RecallPrevious 把更早一条历史放入输入缓冲。
func (s *Session) RecallPrevious() {
	if text, ok := s.history.Previous(); ok {
		s.input = text
	}
}

// RecallNext 把更新一条历史放入输入缓冲；越过最新一条时清空缓冲。
func (s *Session) RecallNext() {
	if text, ok := s.history.Next(); ok {
		s.input = text
	}
}

// Input 返回当前输入缓冲。
func (s *Session) Input() string {
	return s.input
}

// SetInput 镜像用户在输入框中的编辑，不影响历史浏览位置。
func (s *Session) SetInput(value string) {
	s.input = value
}

// Scrollback 返回全部记录的副本。
func (s *Session) Scrollback() []Record {
	return s.scrollback.Records()
}

// LastRecord 返回最近一条记录。
func (s *Session) LastRecord() (Record, bool) {
	return s.scrollback.Last()
}

// History 返回输入历史（旧 → 新）。
func (s *Session) History() []string {
	return s.history.Entries()
}

// Cursor 返回历史浏览位置，-1 表示未浏览。
func (s *Session) Cursor() int {
	return s.history.Cursor()
}

func (s *Session) publish(typ events.EventType, payload any) {
	if s.events == nil {
		return
	}
	s.events.Publish(events.Event{
		Type:      typ,
		SessionID: s.id,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
