package shell

import (
	"fmt"
	"strings"
)

// Effect 是命令结果附带的副作用，由 Session 负责执行。
type Effect int

const (
	EffectNone Effect = iota
	EffectClear
	EffectNavigate
	EffectBack
)

// Result 是命令处理函数的返回值。处理函数本身不触碰任何状态。
type Result struct {
	Output Output
	Effect Effect
	Path   string
}

// Navigates 报告结果是否请求了路由跳转（含返回上一页）。
func (r Result) Navigates() bool {
	return r.Effect == EffectNavigate || r.Effect == EffectBack
}

type handler func(r *Registry, args []string) Result

// Command 描述一条内置命令。
// Arity 是处理函数读取的位置参数个数，多余参数被忽略。
type Command struct {
	Name  string
	Usage string
	Desc  string
	Arity int
	run   handler
	// args 返回参数位置的补全候选。
	args func() []string
}

// Registry 是命令名到处理函数的分发表，保留注册顺序用于 help。
type Registry struct {
	profile  Profile
	commands []Command
	lookup   map[string]int
}

// NewRegistry 构造包含全部内置命令的分发表。
func NewRegistry(p Profile) *Registry {
	r := &Registry{
		profile: p.WithDefaults(),
		lookup:  make(map[string]int),
	}
	for _, cmd := range builtinCommands() {
		if err := r.register(cmd); err != nil {
			panic(err)
		}
	}
	return r
}

func (r *Registry) register(cmd Command) error {
	cmd.Name = strings.TrimSpace(cmd.Name)
	if cmd.Name == "" {
		return fmt.Errorf("shell registry: empty command name")
	}
	if cmd.run == nil {
		return fmt.Errorf("shell registry: %q has no handler", cmd.Name)
	}
	if _, ok := r.lookup[cmd.Name]; ok {
		return fmt.Errorf("shell registry: duplicate command %q", cmd.Name)
	}
	r.lookup[cmd.Name] = len(r.commands)
	r.commands = append(r.commands, cmd)
	return nil
}

// Resolve 按名称查找命令（名称需已小写）。
func (r *Registry) Resolve(name string) (Command, bool) {
	idx, ok := r.lookup[name]
	if !ok {
		return Command{}, false
	}
	return r.commands[idx], true
}

// Commands 按注册顺序返回全部命令。
func (r *Registry) Commands() []Command {
	return append([]Command(nil), r.commands...)
}

// Names 按注册顺序返回全部命令名。
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.commands))
	for _, cmd := range r.commands {
		out = append(out, cmd.Name)
	}
	return out
}

// Dispatch 执行命令并返回结果；未知命令降级为诊断文本。
func (r *Registry) Dispatch(name string, args []string) Result {
	if name == "" {
		return Result{Output: Text("")}
	}
	cmd, ok := r.Resolve(name)
	if !ok {
		return Result{Output: Text("command not found: " + name)}
	}
	return cmd.run(r, args)
}

// Profile 返回分发表使用的站点主人信息。
func (r *Registry) Profile() Profile {
	return r.profile
}

func builtinCommands() []Command {
	return []Command{
		{Name: "help", Usage: "help", Desc: "Show this help message", run: runHelp},
		{Name: "clear", Usage: "clear", Desc: "Clear terminal output", run: runClear},
		{Name: "whoami", Usage: "whoami", Desc: "Display user info", run: runWhoami},
		{Name: "ls", Usage: "ls", Desc: "List site sections", run: runList},
		{Name: "cd", Usage: "cd [dir]", Desc: "Navigate to a section", Arity: 1, run: runChangeDir, args: directoryNames},
		{Name: "contact", Usage: "contact", Desc: "Show contact info", run: runContact},
	}
}

func runHelp(r *Registry, _ []string) Result {
	items := make([]CommandHelp, 0, len(r.commands))
	for _, cmd := range r.commands {
		items = append(items, CommandHelp{Usage: cmd.Usage, Description: cmd.Desc})
	}
	return Result{Output: Output{Kind: OutputCommands, Text: "Available commands:", Commands: items}}
}

func runClear(_ *Registry, _ []string) Result {
	return Result{Effect: EffectClear}
}

func runWhoami(r *Registry, _ []string) Result {
	return Result{Output: r.profile.whoami()}
}

func runList(_ *Registry, _ []string) Result {
	entries := make([]string, 0, len(directories))
	for _, d := range directories {
		entries = append(entries, d.Name)
	}
	return Result{Output: Output{Kind: OutputListing, Entries: entries}}
}

func runContact(r *Registry, _ []string) Result {
	return Result{Output: r.profile.contact()}
}

func runChangeDir(_ *Registry, args []string) Result {
	dir := ""
	if len(args) > 0 {
		dir = args[0]
	}
	if dir == "" {
		return Result{Output: Text("Usage: cd [directory]")}
	}
	if dir == ParentDir {
		return Result{Output: Text("Navigating back..."), Effect: EffectBack}
	}
	if d, ok := LookupDirectory(dir); ok {
		return Result{
			Output: Text(fmt.Sprintf("Navigating to %s...", d.Label)),
			Effect: EffectNavigate,
			Path:   d.Path,
		}
	}
	return Result{Output: Text("cd: no such file or directory: " + dir)}
}
