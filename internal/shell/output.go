package shell

import (
	"fmt"
	"strings"
)

// OutputKind 区分命令输出的渲染形态。
type OutputKind int

const (
	OutputText OutputKind = iota
	OutputCommands
	OutputInfo
	OutputListing
	OutputLinks
)

var outputKindNames = map[OutputKind]string{
	OutputText:     "text",
	OutputCommands: "commands",
	OutputInfo:     "info",
	OutputListing:  "listing",
	OutputLinks:    "links",
}

// String 返回 kind 的稳定名称（用于日志与 JSON）。
func (k OutputKind) String() string {
	if name, ok := outputKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// MarshalText 让 kind 在 JSON 中以名称出现。
func (k OutputKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// CommandHelp 是 help 列表中的一行。
type CommandHelp struct {
	Usage       string `json:"usage"`
	Description string `json:"description"`
}

// Field 是 info 块中的 key/value 行。
type Field struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Link 是 contact 输出中的一条链接。
type Link struct {
	Label string `json:"label"`
	Text  string `json:"text"`
	URL   string `json:"url"`
}

// Output 是一次命令执行产生的唯一结果。
// Kind 决定哪些字段有效；Text 在非 text 形态下作为标题或附注。
type Output struct {
	Kind     OutputKind    `json:"kind"`
	Text     string        `json:"text,omitempty"`
	Commands []CommandHelp `json:"commands,omitempty"`
	Fields   []Field       `json:"fields,omitempty"`
	Entries  []string      `json:"entries,omitempty"`
	Links    []Link        `json:"links,omitempty"`
}

// Text 构造纯文本输出。
func Text(s string) Output {
	return Output{Kind: OutputText, Text: s}
}

// Empty 报告输出是否没有任何可展示内容。
func (o Output) Empty() bool {
	return o.Kind == OutputText && o.Text == ""
}

// ListingMode 是 ls 输出每一行的权限前缀。
const ListingMode = "drwxr-xr-x"

// Plain 将输出降级为纯文本，供 exec 模式、剪贴板与日志使用。
func (o Output) Plain() string {
	switch o.Kind {
	case OutputCommands:
		lines := make([]string, 0, len(o.Commands)+1)
		if o.Text != "" {
			lines = append(lines, o.Text)
		}
		for _, c := range o.Commands {
			lines = append(lines, fmt.Sprintf("  %s - %s", c.Usage, c.Description))
		}
		return strings.Join(lines, "\n")
	case OutputInfo:
		lines := make([]string, 0, len(o.Fields)+2)
		for _, f := range o.Fields {
			lines = append(lines, fmt.Sprintf("%s: %s", f.Key, f.Value))
		}
		if o.Text != "" {
			lines = append(lines, "", o.Text)
		}
		return strings.Join(lines, "\n")
	case OutputListing:
		lines := make([]string, 0, len(o.Entries))
		for _, e := range o.Entries {
			lines = append(lines, fmt.Sprintf("%s %s/", ListingMode, e))
		}
		return strings.Join(lines, "\n")
	case OutputLinks:
		lines := make([]string, 0, len(o.Links))
		for _, l := range o.Links {
			lines = append(lines, fmt.Sprintf("%s: %s", l.Label, l.Text))
		}
		return strings.Join(lines, "\n")
	default:
		return o.Text
	}
}

// Record 是 scrollback 中的一条命令与输出。
// Command 保留用户原始输入（不裁剪、不改大小写）。
type Record struct {
	Command string `json:"command"`
	Output  Output `json:"output"`
}
