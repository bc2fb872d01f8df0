package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"folio-cli/internal/history"
	"folio-cli/internal/logger"
	"folio-cli/internal/shell"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var log = logger.Named("server")

// NavigationBack 是响应中表示“返回上一页”的导航值。
const NavigationBack = "back"

// DefaultIdleTimeout 会话空闲超过该时长后可被回收。
const DefaultIdleTimeout = 30 * time.Minute

// Recorder 保存已提交命令的审计记录，*history.Store 满足该接口。
type Recorder interface {
	Append(ctx context.Context, e history.Entry) error
	List(ctx context.Context, sessionID string) ([]history.Entry, error)
	Recent(ctx context.Context, limit int) ([]history.Entry, error)
}

type Options struct {
	Profile shell.Profile
	Events  shell.Publisher
	// History 为空时不记录，transcript 接口返回 501。
	History Recorder
	// MaxSessions 限制同时存活的会话数，0 表示不限制。
	MaxSessions int
	// IdleTimeout 为 0 时使用 DefaultIdleTimeout，负数表示不回收。
	IdleTimeout time.Duration
	// Now 仅用于测试注入时钟。
	Now func() time.Time
}

// Server 通过 JSON API 托管终端会话，供网页端的终端组件调用。
// 每个会话各自加锁，shell 本身不做并发保护。
type Server struct {
	opts     Options
	mu       sync.Mutex
	sessions map[string]*apiSession
	engine   *gin.Engine
}

type apiSession struct {
	mu      sync.Mutex
	id      string
	modal   *shell.Modal
	nav     *recordingNavigator
	created time.Time
	// lastUsed 由 Server.mu 保护。
	lastUsed time.Time
}

// recordingNavigator 记录会话请求的最后一次跳转，由浏览器端执行。
type recordingNavigator struct {
	pending string
}

func (n *recordingNavigator) Navigate(path string) { n.pending = path }
func (n *recordingNavigator) Back()                { n.pending = NavigationBack }

func (n *recordingNavigator) take() string {
	out := n.pending
	n.pending = ""
	return out
}

func New(opts Options) *Server {
	if opts.IdleTimeout == 0 {
		opts.IdleTimeout = DefaultIdleTimeout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	s := &Server{
		opts:     opts,
		sessions: make(map[string]*apiSession),
	}
	s.engine = s.routes()
	return s
}

// Handler 返回 HTTP handler。
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Serve 监听 addr 直到 ctx 结束，随后优雅关闭。
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go s.sweepLoop(ctx)
	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", addr).Info("terminal api listening")
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	}
}

func (s *Server) create() (*apiSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.opts.MaxSessions > 0 && len(s.sessions) >= s.opts.MaxSessions {
		s.evictIdleLocked()
		if len(s.sessions) >= s.opts.MaxSessions {
			return nil, errTooManySessions
		}
	}
	now := s.opts.Now()
	nav := &recordingNavigator{}
	sess := &apiSession{
		id:       uuid.NewString(),
		nav:      nav,
		created:  now,
		lastUsed: now,
	}
	sess.modal = shell.NewModal(shell.ModalOptions{
		Profile:   s.opts.Profile,
		Navigator: nav,
		Events:    s.opts.Events,
		Logger:    log.WithField("api_session", sess.id),
	})
	sess.modal.SetVisible(true)
	s.sessions[sess.id] = sess
	return sess, nil
}

func (s *Server) lookup(id string) (*apiSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if ok {
		sess.lastUsed = s.opts.Now()
	}
	return sess, ok
}

// Sweep 回收空闲超时的会话，返回回收数量。
func (s *Server) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.evictIdleLocked()
}

func (s *Server) evictIdleLocked() int {
	if s.opts.IdleTimeout < 0 {
		return 0
	}
	cutoff := s.opts.Now().Add(-s.opts.IdleTimeout)
	n := 0
	for id, sess := range s.sessions {
		if sess.lastUsed.After(cutoff) {
			continue
		}
		delete(s.sessions, id)
		n++
	}
	if n > 0 {
		log.WithField("evicted", n).WithField("live", len(s.sessions)).Info("idle terminal sessions reclaimed")
	}
	return n
}

func (s *Server) sweepLoop(ctx context.Context) {
	if s.opts.IdleTimeout < 0 {
		return
	}
	interval := min(s.opts.IdleTimeout/2, time.Minute)
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

func (s *Server) remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

// Len 返回存活的会话数。
func (s *Server) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

var (
	errTooManySessions = errors.New("too many terminal sessions")
	errSessionNotFound = errors.New("terminal session not found")
	errTerminalClosed  = errors.New("terminal is closed")
	errHistoryDisabled = errors.New("command history is disabled")
)
