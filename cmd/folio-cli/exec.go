package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"folio-cli/internal/shell"
	"folio-cli/internal/tui/render"
)

func execMain(root rootArgs, args []string) {
	fs := flag.NewFlagSet("exec", flag.ExitOnError)
	var overrides stringSlice
	var jsonOut bool
	fs.Var(&overrides, "c", "Override config value key=value (repeatable)")
	fs.BoolVar(&jsonOut, "json", false, "Emit one JSON object per command")
	if err := fs.Parse(args); err != nil {
		log.Fatalf("parse exec args: %v", err)
	}

	rt, err := loadRuntime(root, prependOverrides(root.overrides, []string(overrides)))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	lines := fs.Args()
	if len(lines) == 1 && lines[0] == "-" {
		lines, err = readLines(os.Stdin)
		if err != nil {
			log.Fatalf("read stdin: %v", err)
		}
	}
	if len(lines) == 0 {
		log.Fatalf("exec: no commands given (pass them as arguments or use - to read stdin)")
	}

	bus, stop := startEventLog()
	defer stop()
	if err := runExec(os.Stdout, execOptions{Profile: rt.profile, Events: bus, JSON: jsonOut}, lines); err != nil {
		log.Fatalf("exec: %v", err)
	}
}

type execOptions struct {
	Profile shell.Profile
	Events  shell.Publisher
	JSON    bool
}

// execNavigator 收集会话请求的跳转，exec 模式下只打印不执行。
type execNavigator struct {
	pending []string
}

func (n *execNavigator) Navigate(path string) { n.pending = append(n.pending, path) }
func (n *execNavigator) Back()                { n.pending = append(n.pending, shell.ParentDir) }

func (n *execNavigator) take() []string {
	out := n.pending
	n.pending = nil
	return out
}

type execRecord struct {
	Command    string       `json:"command"`
	Output     shell.Output `json:"output"`
	Cleared    bool         `json:"cleared,omitempty"`
	Navigation []string     `json:"navigation,omitempty"`
}

// runExec 在同一个会话中依次执行 lines，并把每条结果写到 w。
// exec 模式没有弹窗，导航不会关闭会话。
func runExec(w io.Writer, opts execOptions, lines []string) error {
	nav := &execNavigator{}
	sess := shell.NewSession(shell.Options{
		Profile:   opts.Profile,
		Navigator: nav,
		Events:    opts.Events,
	})
	enc := json.NewEncoder(w)
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		before := len(sess.Scrollback())
		sess.Submit(line)
		rec := execRecord{Command: line, Navigation: nav.take()}
		if after := sess.Scrollback(); len(after) > before {
			rec.Output = after[len(after)-1].Output
		} else {
			rec.Cleared = true
		}

		if opts.JSON {
			if err := enc.Encode(rec); err != nil {
				return err
			}
			continue
		}
		if err := writePlainRecord(w, rec); err != nil {
			return err
		}
	}
	return nil
}

func writePlainRecord(w io.Writer, rec execRecord) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", render.Prompt, rec.Command)
	if !rec.Cleared {
		if text := rec.Output.Plain(); text != "" {
			b.WriteString(text)
			b.WriteString("\n")
		}
	}
	for _, target := range rec.Navigation {
		fmt.Fprintf(&b, "→ navigate %s\n", target)
	}
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
