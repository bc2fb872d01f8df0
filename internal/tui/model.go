package tui

import (
	"time"

	"folio-cli/internal/features"
	"folio-cli/internal/logger"
	"folio-cli/internal/router"
	"folio-cli/internal/shell"
	"folio-cli/internal/site"
	"folio-cli/internal/tui/render"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var log = logger.Named("tui")

type Options struct {
	Profile   shell.Profile
	Content   site.Content
	ToggleKey string
	Features  features.Set
	Events    shell.Publisher
	Start     router.Location
	// Clipboard 默认写系统剪贴板。
	Clipboard func(string) error
	Now       func() time.Time
}

// tickMsg 驱动状态栏时钟。
type tickMsg time.Time

// flashMsg 清除状态栏上的临时提示。
type flashMsg struct {
	seq int
}

type Model struct {
	input     textinput.Model
	page      render.Viewport
	term      render.Viewport
	spin      spinner.Model
	router    *router.Router
	modal     *shell.Modal
	profile   shell.Profile
	content   site.Content
	features  features.Set
	toggleKey string
	copy      func(string) error
	now       func() time.Time
	clock     time.Time
	blogTag   string
	flash     string
	flashSeq  int
	width     int
	height    int
	// pageDirty 表示页面需要重新渲染；anchorPending 表示随后要滚动到锚点。
	pageDirty     bool
	anchorPending bool
}

func New(opts Options) *Model {
	profile := opts.Profile.WithDefaults()
	toggleKey := opts.ToggleKey
	if toggleKey == "" {
		toggleKey = "ctrl+k"
	}
	content := opts.Content
	if content.Owner == "" && len(content.Posts) == 0 && len(content.Jobs) == 0 {
		content = site.Default()
	}
	copyFn := opts.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	ti := textinput.New()
	ti.Prompt = render.Prompt + " "
	ti.PromptStyle = render.PromptStyle()
	ti.Placeholder = "type a command..."
	ti.CharLimit = 0

	spin := spinner.New()
	spin.Spinner = spinner.Ellipsis
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4"))

	term := render.NewViewport(80, 10)
	term.Follow = true

	m := &Model{
		input:     ti,
		page:      render.NewViewport(80, 20),
		term:      term,
		spin:      spin,
		router:    router.New(opts.Start),
		profile:   profile,
		content:   content,
		features:  opts.Features,
		toggleKey: toggleKey,
		copy:      copyFn,
		now:       now,
		clock:     now(),
		pageDirty: true,
	}
	m.router.OnChange = m.onRoute
	m.router.OnError = func(path string, err error) {
		log.WithError(err).WithField("path", path).Warn("ignored navigation")
	}
	m.modal = shell.NewModal(shell.ModalOptions{
		Profile:   profile,
		Navigator: m.router,
		Events:    opts.Events,
		OnChange:  m.onModalChange,
	})
	if opts.Start.Anchor != "" {
		m.anchorPending = true
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick}
	if m.features.Enabled(features.Clock) {
		cmds = append(cmds, tick())
	}
	return tea.Batch(cmds...)
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m.finish(cmds...)
	case tickMsg:
		m.clock = time.Time(msg)
		cmds = append(cmds, tick())
		return m.finish(cmds...)
	case flashMsg:
		if msg.seq == m.flashSeq {
			m.flash = ""
		}
		return m.finish(cmds...)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		cmds = append(cmds, cmd)
		return m.finish(cmds...)
	case tea.MouseMsg:
		if m.modal.Visible() {
			cmds = append(cmds, m.term.HandleUpdate(msg))
		} else {
			cmds = append(cmds, m.page.HandleUpdate(msg))
		}
		return m.finish(cmds...)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if msg.String() == m.toggleKey {
			m.modal.Toggle()
			return m.finish(cmds...)
		}
		if m.modal.Visible() {
			cmds = append(cmds, m.handleTerminalKey(msg)...)
			return m.finish(cmds...)
		}
		if cmd, quit := m.handlePageKey(msg); quit {
			return m, tea.Quit
		} else if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m.finish(cmds...)
	}
	return m.finish(cmds...)
}

func (m *Model) finish(cmds ...tea.Cmd) (tea.Model, tea.Cmd) {
	m.flushPage()
	if m.modal.Visible() {
		m.flushTerminal()
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) onRoute(loc router.Location) {
	if loc.Page != router.PageBlog {
		m.blogTag = ""
	}
	m.pageDirty = true
	m.anchorPending = true
	log.WithField("path", loc.Path()).Info("page changed")
}

func (m *Model) onModalChange(open bool) {
	m.input.Reset()
	if open {
		m.input.Focus()
		m.term.Invalidate()
		return
	}
	m.input.Blur()
}

func (m *Model) setFlash(text string) tea.Cmd {
	m.flash = text
	m.flashSeq++
	seq := m.flashSeq
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg { return flashMsg{seq: seq} })
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	pageHeight := height - headerHeight - statusHeight
	if pageHeight < 1 {
		pageHeight = 1
	}
	m.page.Resize(width, pageHeight)
	m.pageDirty = true

	area := render.ModalRect(width, height)
	inner := area.Width - 4
	if inner < 10 {
		inner = 10
	}
	termHeight := area.Height - modalChromeHeight
	if termHeight < 1 {
		termHeight = 1
	}
	m.term.Resize(inner, termHeight)
	m.input.Width = inner - lipgloss.Width(m.input.Prompt) - 1
}

func (m *Model) flushPage() {
	if !m.pageDirty {
		return
	}
	m.pageDirty = false
	width := m.page.Width
	if width <= 0 {
		width = 80
	}
	loc := m.router.Current()
	lines, anchors := render.RenderPage(m.content.Render(loc, m.blogTag), width)
	m.page.SetLines(render.LinesToStrings(lines))
	if m.anchorPending {
		m.anchorPending = false
		m.page.ScrollTo(anchors[loc.Anchor])
	}
}

func (m *Model) flushTerminal() {
	sess := m.modal.Session()
	if sess == nil {
		return
	}
	width := m.term.Width
	if width <= 0 {
		width = 80
	}
	lines := render.Banner(m.profile.Name)
	lines = append(lines, render.Line{})
	lines = append(lines, render.RenderScrollback(sess.Scrollback(), width)...)
	m.term.SetLines(render.LinesToStrings(lines))
}

// Router 返回宿主导航栈。
func (m *Model) Router() *router.Router {
	return m.router
}

// Modal 返回终端弹窗状态机。
func (m *Model) Modal() *shell.Modal {
	return m.modal
}
