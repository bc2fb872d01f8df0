package site

import (
	"sort"
	"strings"

	"folio-cli/internal/config"
)

// Job 是工作经历中的一段。
type Job struct {
	Company      string
	Role         string
	Period       string
	Running      bool
	Description  string
	Highlights   []string
	Technologies []string
}

type Project struct {
	Name         string
	Description  string
	Technologies []string
	GitHub       string
	Demo         string
}

type Post struct {
	Slug    string
	Title   string
	Excerpt string
	Date    string
	Tags    []string
}

// Content 是宿主页面的全部静态内容。
type Content struct {
	Owner    string
	Headline string
	Intro    string
	Jobs     []Job
	Projects []Project
	Posts    []Post
}

// Default 返回内置的站点内容。
func Default() Content {
	return Content{
		Owner:    "Ilham Wibawa",
		Headline: "Hey, I'm an engineer who builds things that matter.",
		Intro: "I've spent the last few years learning how to turn ideas into real systems. " +
			"This is the story of that journey: the work I've done, the things I've built, " +
			"and what I've picked up along the way.",
		Jobs: []Job{
			{
				Company:     "SmartM2M Co., Ltd.",
				Role:        "Senior Software Engineer",
				Period:      "2022 - Present",
				Running:     true,
				Description: "Leads design and development of systems across blockchain, cybersecurity, and AI.",
				Highlights: []string{
					"Blockchain-as-a-Service (Hyperledger Fabric)",
					"Security Operations Center (SOC) Platform",
					"AI Ontology System for Manufacturing",
					"Blockchain-as-a-Service (Hyperledger Besu)",
				},
				Technologies: []string{"ReactJS", "Node.js", "TypeScript", "PostgreSQL", "HonoJS", "GraphQL", "Docker"},
			},
			{
				Company:      "KoinWorks",
				Role:         "Frontend Engineer",
				Period:       "2021 - 2022",
				Description:  "Built internal back-office applications for loan operations and administrative workflows.",
				Technologies: []string{"React.js", "Vue.js", "Nuxt.js", "Laravel"},
			},
			{
				Company:      "Recommend Group",
				Role:         "Frontend Developer",
				Period:       "Mar 2020 - Dec 2021",
				Description:  "Maintained client-side applications across multiple marketplace platforms.",
				Technologies: []string{"JavaScript", "Vue.js", "Ruby on Rails"},
			},
			{
				Company:      "Moya Hexagon",
				Role:         "Web Developer",
				Period:       "Jan 2018 - Mar 2020",
				Description:  "Full-stack work on Laravel-based web applications.",
				Technologies: []string{"PHP", "Laravel", "JavaScript"},
			},
		},
		Projects: []Project{
			{
				Name:         "MockLite",
				Description:  "Lightweight SQLite-based mock server with Faker.js integration.",
				Technologies: []string{"TypeScript", "SQLite", "Faker.js", "Node.js"},
				GitHub:       "https://github.com/ilhamwibawa/mocklite",
			},
		},
		Posts: []Post{
			{
				Slug:    "building-scalable-systems",
				Title:   "Building Scalable Systems: Lessons from the Trenches",
				Excerpt: "Thoughts on how to build systems that don't crumble when you least expect it.",
				Date:    "Dec 1, 2024",
				Tags:    []string{"architecture", "backend", "systems"},
			},
			{
				Slug:    "debugging-typescript",
				Title:   "Debugging TypeScript: Tips I Wish I Knew Earlier",
				Excerpt: "A practical guide to debugging TypeScript applications.",
				Date:    "Nov 24, 2024",
				Tags:    []string{"typescript", "debugging", "frontend"},
			},
			{
				Slug:    "shipping-fast",
				Title:   "The Art of Shipping: How to Move Fast Without Breaking Things",
				Excerpt: "Speed matters, but so does stability.",
				Date:    "Nov 15, 2024",
				Tags:    []string{"productivity", "engineering", "practices"},
			},
		},
	}
}

// FromConfig 用配置覆盖内置内容；配置中为空的部分保留内置值。
func FromConfig(owner string, cfg config.Site) Content {
	c := Default()
	if strings.TrimSpace(owner) != "" {
		c.Owner = owner
	}
	if cfg.Headline != "" {
		c.Headline = cfg.Headline
	}
	if cfg.Intro != "" {
		c.Intro = cfg.Intro
	}
	if len(cfg.Work) > 0 {
		c.Jobs = c.Jobs[:0:0]
		for _, j := range cfg.Work {
			c.Jobs = append(c.Jobs, Job(j))
		}
	}
	if len(cfg.Projects) > 0 {
		c.Projects = c.Projects[:0:0]
		for _, p := range cfg.Projects {
			c.Projects = append(c.Projects, Project(p))
		}
	}
	if len(cfg.Posts) > 0 {
		c.Posts = c.Posts[:0:0]
		for _, p := range cfg.Posts {
			c.Posts = append(c.Posts, Post(p))
		}
	}
	return c
}

// Tags 返回全部文章标签，按字母序去重。
func (c Content) Tags() []string {
	seen := make(map[string]struct{})
	for _, p := range c.Posts {
		for _, tag := range p.Tags {
			seen[tag] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for tag := range seen {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// PostsByTag 返回带指定标签的文章；tag 为空时返回全部。
func (c Content) PostsByTag(tag string) []Post {
	if tag == "" {
		return append([]Post(nil), c.Posts...)
	}
	var out []Post
	for _, p := range c.Posts {
		for _, t := range p.Tags {
			if t == tag {
				out = append(out, p)
				break
			}
		}
	}
	return out
}
