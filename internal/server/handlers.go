package server

import (
	"net/http"
	"strconv"
	"time"

	"folio-cli/internal/history"
	"folio-cli/internal/shell"

	"github.com/gin-gonic/gin"
)

type commandRequest struct {
	Line *string `json:"line" binding:"required"`
}

type recallRequest struct {
	Direction string `json:"direction" binding:"required,oneof=previous next"`
}

type commandResponse struct {
	Records    []shell.Record `json:"records"`
	Navigation string         `json:"navigation,omitempty"`
	Visible    bool           `json:"visible"`
	Input      string         `json:"input"`
}

type recallResponse struct {
	Input  string `json:"input"`
	Cursor int    `json:"cursor"`
}

type snapshot struct {
	ID      string         `json:"id"`
	Visible bool           `json:"visible"`
	Records []shell.Record `json:"records"`
	History []string       `json:"history"`
	Input   string         `json:"input"`
	Cursor  int            `json:"cursor"`
	Created time.Time      `json:"created_at"`
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/api/terminal/history", s.handleRecent)

	api := r.Group("/api/terminal/sessions")
	api.POST("", s.handleCreate)
	api.GET("/:id", s.withSession(s.handleSnapshot))
	api.DELETE("/:id", s.handleDelete)
	api.POST("/:id/toggle", s.withSession(s.handleToggle))
	api.POST("/:id/commands", s.withSession(s.handleCommand))
	api.POST("/:id/recall", s.withSession(s.handleRecall))
	api.GET("/:id/transcript", s.withSession(s.handleTranscript))
	return r
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithField("method", c.Request.Method).
			WithField("path", c.FullPath()).
			WithField("status", c.Writer.Status()).
			WithField("elapsed", time.Since(start).String()).
			Debug("request")
	}
}

// withSession 解析 :id 并在会话锁内执行 handler。
func (s *Server) withSession(h func(*gin.Context, *apiSession)) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := s.lookup(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": errSessionNotFound.Error()})
			return
		}
		sess.mu.Lock()
		defer sess.mu.Unlock()
		h(c, sess)
	}
}

func (s *Server) handleCreate(c *gin.Context) {
	sess, err := s.create()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": sess.id, "visible": sess.modal.Visible()})
}

func (s *Server) handleDelete(c *gin.Context) {
	if !s.remove(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": errSessionNotFound.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleSnapshot(c *gin.Context, sess *apiSession) {
	out := snapshot{ID: sess.id, Visible: sess.modal.Visible(), Records: []shell.Record{}, History: []string{}, Cursor: -1, Created: sess.created}
	if term := sess.modal.Session(); term != nil {
		out.Records = records(term)
		if h := term.History(); h != nil {
			out.History = h
		}
		out.Input = term.Input()
		out.Cursor = term.Cursor()
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleToggle(c *gin.Context, sess *apiSession) {
	sess.modal.Toggle()
	c.JSON(http.StatusOK, gin.H{"visible": sess.modal.Visible()})
}

func (s *Server) handleCommand(c *gin.Context, sess *apiSession) {
	var req commandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	term := sess.modal.Session()
	if term == nil {
		c.JSON(http.StatusConflict, gin.H{"error": errTerminalClosed.Error()})
		return
	}
	before := len(term.Scrollback())
	term.Submit(*req.Line)
	navigation := sess.nav.take()
	s.record(c, sess.id, term, *req.Line, before, navigation)
	c.JSON(http.StatusOK, commandResponse{
		Records:    records(term),
		Navigation: navigation,
		Visible:    sess.modal.Visible(),
		Input:      term.Input(),
	})
}

func (s *Server) handleRecall(c *gin.Context, sess *apiSession) {
	var req recallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	term := sess.modal.Session()
	if term == nil {
		c.JSON(http.StatusConflict, gin.H{"error": errTerminalClosed.Error()})
		return
	}
	if req.Direction == "previous" {
		term.RecallPrevious()
	} else {
		term.RecallNext()
	}
	c.JSON(http.StatusOK, recallResponse{Input: term.Input(), Cursor: term.Cursor()})
}

// record 把一次提交写入审计记录；写入失败只记日志。
func (s *Server) record(c *gin.Context, id string, term *shell.Session, line string, before int, navigation string) {
	if s.opts.History == nil {
		return
	}
	kind := "cleared"
	if after := term.Scrollback(); len(after) > before {
		kind = after[len(after)-1].Output.Kind.String()
	}
	entry := history.Entry{
		SessionID:  id,
		Seq:        len(term.History()),
		Command:    line,
		Output:     kind,
		Navigation: navigation,
	}
	if err := s.opts.History.Append(c.Request.Context(), entry); err != nil {
		log.WithField("api_session", id).Warnf("failed to record command: %v", err)
	}
}

func (s *Server) handleTranscript(c *gin.Context, sess *apiSession) {
	if s.opts.History == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": errHistoryDisabled.Error()})
		return
	}
	entries, err := s.opts.History.List(c.Request.Context(), sess.id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if entries == nil {
		entries = []history.Entry{}
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// handleRecent 返回全部会话最近的命令，limit 默认 50，上限 500。
func (s *Server) handleRecent(c *gin.Context) {
	if s.opts.History == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": errHistoryDisabled.Error()})
		return
	}
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = min(n, 500)
	}
	entries, err := s.opts.History.Recent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if entries == nil {
		entries = []history.Entry{}
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// records 保证 JSON 中始终是数组而不是 null。
func records(term *shell.Session) []shell.Record {
	out := term.Scrollback()
	if out == nil {
		return []shell.Record{}
	}
	return out
}
