package site

import (
	"fmt"
	"strings"

	"folio-cli/internal/router"
)

// Section anchors on the home page.
const (
	AnchorProjects = "projects"
	AnchorWork     = "work"
)

// LineStyle 区分页面行的渲染样式。
type LineStyle int

const (
	StyleBody LineStyle = iota
	StyleTitle
	StyleHeading
	StyleMuted
	StyleAccent
)

type Line struct {
	Text  string
	Style LineStyle
}

// Page 是渲染好的页面：逐行文本加锚点所在行号。
type Page struct {
	Title   string
	Lines   []Line
	Anchors map[string]int
}

// Offset 返回锚点所在行，未知锚点返回 0。
func (p Page) Offset(anchor string) int {
	if anchor == "" {
		return 0
	}
	return p.Anchors[anchor]
}

type pageBuilder struct {
	page Page
}

func (b *pageBuilder) add(style LineStyle, text string) {
	b.page.Lines = append(b.page.Lines, Line{Text: text, Style: style})
}

func (b *pageBuilder) addf(style LineStyle, format string, args ...any) {
	b.add(style, fmt.Sprintf(format, args...))
}

func (b *pageBuilder) blank() {
	b.page.Lines = append(b.page.Lines, Line{})
}

func (b *pageBuilder) anchor(name string) {
	b.page.Anchors[name] = len(b.page.Lines)
}

// Render 渲染 location 对应的页面。tag 仅对博客页生效，用于按标签筛选。
func (c Content) Render(loc router.Location, tag string) Page {
	b := &pageBuilder{page: Page{Anchors: make(map[string]int)}}
	switch loc.Page {
	case router.PageBlog:
		c.renderBlog(b, tag)
	default:
		c.renderHome(b)
	}
	return b.page
}

func (c Content) renderHome(b *pageBuilder) {
	b.page.Title = c.Owner
	b.add(StyleTitle, c.Headline)
	b.blank()
	b.add(StyleBody, c.Intro)
	b.blank()
	b.add(StyleAccent, "See my work -> cd work    Read my thoughts -> cd blog")
	b.blank()

	b.anchor(AnchorProjects)
	b.add(StyleHeading, "~/projects")
	b.add(StyleMuted, "// A collection of side projects, experiments, and tools I've built.")
	b.blank()
	if len(c.Projects) == 0 {
		b.add(StyleBody, "404: Projects Not Found")
		b.add(StyleMuted, `$ echo "Check back soon..."`)
		b.blank()
	}
	for _, p := range c.Projects {
		b.add(StyleAccent, p.Name)
		if p.Description != "" {
			b.add(StyleBody, p.Description)
		}
		if len(p.Technologies) > 0 {
			b.addf(StyleMuted, "stack: %s", strings.Join(p.Technologies, ", "))
		}
		if p.GitHub != "" {
			b.addf(StyleMuted, "source: %s", p.GitHub)
		}
		if p.Demo != "" {
			b.addf(StyleMuted, "demo: %s", p.Demo)
		}
		b.blank()
	}

	b.anchor(AnchorWork)
	b.add(StyleHeading, "./career_log.txt")
	b.add(StyleMuted, "// A chronological log of my professional experience.")
	b.blank()
	for _, j := range c.Jobs {
		status := "TERMINATED"
		if j.Running {
			status = "RUNNING"
		}
		b.addf(StyleAccent, "[%s] %s @ %s", status, j.Role, j.Company)
		if j.Period != "" {
			b.add(StyleMuted, j.Period)
		}
		if j.Description != "" {
			b.add(StyleBody, j.Description)
		}
		for _, h := range j.Highlights {
			b.addf(StyleBody, "> %s", h)
		}
		if len(j.Technologies) > 0 {
			b.addf(StyleMuted, "dependencies: %s", strings.Join(j.Technologies, ", "))
		}
		b.blank()
	}

	b.add(StyleHeading, "Recent posts")
	b.blank()
	for _, p := range c.recentPosts(3) {
		c.renderPostSummary(b, p)
	}
}

func (c Content) renderBlog(b *pageBuilder, tag string) {
	b.page.Title = "Blog"
	b.add(StyleTitle, "Blog")
	b.add(StyleMuted, "Thoughts on engineering, systems, and the craft of building software.")
	b.blank()
	if tags := c.Tags(); len(tags) > 0 {
		label := "All posts"
		if tag != "" {
			label = "#" + tag
		}
		b.addf(StyleMuted, "filter: %s  (tags: %s)", label, strings.Join(tags, " "))
		b.blank()
	}
	posts := c.PostsByTag(tag)
	if len(posts) == 0 {
		b.add(StyleBody, "No posts found.")
		return
	}
	for _, p := range posts {
		c.renderPostSummary(b, p)
	}
}

func (c Content) renderPostSummary(b *pageBuilder, p Post) {
	b.add(StyleAccent, p.Title)
	if p.Excerpt != "" {
		b.add(StyleBody, p.Excerpt)
	}
	meta := p.Date
	if len(p.Tags) > 0 {
		tags := make([]string, 0, len(p.Tags))
		for _, t := range p.Tags {
			tags = append(tags, "#"+t)
		}
		meta = strings.TrimSpace(meta + "  " + strings.Join(tags, " "))
	}
	if meta != "" {
		b.add(StyleMuted, meta)
	}
	b.blank()
}

func (c Content) recentPosts(n int) []Post {
	if len(c.Posts) <= n {
		return c.Posts
	}
	return c.Posts[:n]
}
