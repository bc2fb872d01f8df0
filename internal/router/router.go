package router

import (
	"fmt"
	"strings"
)

// Page 是宿主站点的页面。
type Page string

const (
	PageHome Page = "home"
	PageBlog Page = "blog"
)

// Location 是一次跳转的目标：页面加可选的锚点（#projects、#work）。
type Location struct {
	Page   Page   `json:"page"`
	Anchor string `json:"anchor,omitempty"`
}

// Path 返回 location 对应的路由路径。
func (l Location) Path() string {
	base := "/"
	if l.Page == PageBlog {
		base = "/blog"
	}
	if l.Anchor != "" {
		return base + "#" + l.Anchor
	}
	return base
}

func (l Location) String() string {
	return l.Path()
}

// Parse 解析路由路径。支持 "/"、"/blog" 及其锚点形式。
func Parse(path string) (Location, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Location{}, fmt.Errorf("empty route path")
	}
	base, anchor, _ := strings.Cut(path, "#")
	base = strings.TrimSuffix(base, "/")
	switch base {
	case "":
		return Location{Page: PageHome, Anchor: anchor}, nil
	case "/blog":
		return Location{Page: PageBlog, Anchor: anchor}, nil
	default:
		return Location{}, fmt.Errorf("unknown route %q", path)
	}
}

// Router 维护宿主的导航栈，满足 shell.Navigator。
// 栈底始终是初始位置，Back 不会越过它。
type Router struct {
	stack []Location
	// OnChange 在位置变化后调用。
	OnChange func(Location)
	// OnError 接收无法解析的路径。
	OnError func(path string, err error)
}

// New 返回停在 start 的 router。
func New(start Location) *Router {
	if start.Page == "" {
		start.Page = PageHome
	}
	return &Router{stack: []Location{start}}
}

// Navigate 解析 path 并压栈。
func (r *Router) Navigate(path string) {
	loc, err := Parse(path)
	if err != nil {
		if r.OnError != nil {
			r.OnError(path, err)
		}
		return
	}
	r.stack = append(r.stack, loc)
	r.notify()
}

// Back 返回上一个位置；已在初始位置时不做任何事。
func (r *Router) Back() {
	if len(r.stack) <= 1 {
		return
	}
	r.stack = r.stack[:len(r.stack)-1]
	r.notify()
}

// Current 返回当前位置。
func (r *Router) Current() Location {
	return r.stack[len(r.stack)-1]
}

// Depth 返回导航栈深度（初始位置计 1）。
func (r *Router) Depth() int {
	return len(r.stack)
}

func (r *Router) notify() {
	if r.OnChange != nil {
		r.OnChange(r.Current())
	}
}
