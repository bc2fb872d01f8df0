package shell

import (
	"fmt"
	"testing"

	"folio-cli/internal/events"
	"folio-cli/internal/logger"

	"github.com/google/go-cmp/cmp"
)

type fakeHost struct {
	paths   []string
	backs   int
	visible []bool
}

func (h *fakeHost) Navigate(path string) { h.paths = append(h.paths, path) }
func (h *fakeHost) Back()                { h.backs++ }
func (h *fakeHost) SetVisible(open bool) { h.visible = append(h.visible, open) }

type recordingPublisher struct {
	events []events.Event
}

func (p *recordingPublisher) Publish(evt events.Event) { p.events = append(p.events, evt) }

func newTestSession() (*Session, *fakeHost) {
	host := &fakeHost{}
	s := NewSession(Options{ID: "test", Navigator: host, Visibility: host})
	return s, host
}

func TestSubmitAppendsOneRecordAndOneHistoryEntry(t *testing.T) {
	inputs := []string{"help", "whoami", "ls", "contact", "cd", "cd nowhere", "foobar", "  LS  ", "help extra args"}
	s, _ := newTestSession()
	for i, in := range inputs {
		s.Submit(in)
		if got := len(s.Scrollback()); got != i+1 {
			t.Fatalf("after %q scrollback len = %d, want %d", in, got, i+1)
		}
		if got := len(s.History()); got != i+1 {
			t.Fatalf("after %q history len = %d, want %d", in, got, i+1)
		}
	}
	if diff := cmp.Diff(inputs, s.History()); diff != "" {
		t.Fatalf("history mismatch (-want +got):\n%s", diff)
	}
}

func TestSubmitBlankIsNoop(t *testing.T) {
	s, host := newTestSession()
	s.Submit("ls")
	for _, in := range []string{"", " ", "\t", "   \n  "} {
		s.Submit(in)
	}
	if got := len(s.Scrollback()); got != 1 {
		t.Fatalf("scrollback len = %d, want 1", got)
	}
	if got := len(s.History()); got != 1 {
		t.Fatalf("history len = %d, want 1", got)
	}
	if len(host.paths) != 0 || len(host.visible) != 0 {
		t.Fatalf("blank input must not touch host: %+v", host)
	}
}

func TestSubmitPreservesRawCommandText(t *testing.T) {
	s, _ := newTestSession()
	s.Submit("  WhoAmI ")
	rec, ok := s.LastRecord()
	if !ok {
		t.Fatalf("expected a record")
	}
	if rec.Command != "  WhoAmI " {
		t.Fatalf("record command = %q, want raw input", rec.Command)
	}
	if rec.Output.Kind != OutputInfo {
		t.Fatalf("expected whoami info output, got %v", rec.Output.Kind)
	}
	if got := s.History()[0]; got != "  WhoAmI " {
		t.Fatalf("history entry = %q, want raw input", got)
	}
}

func TestClearEmptiesScrollbackButRecordsHistory(t *testing.T) {
	s, _ := newTestSession()
	s.Submit("help")
	s.Submit("ls")
	s.Submit("clear")
	if got := len(s.Scrollback()); got != 0 {
		t.Fatalf("scrollback len after clear = %d, want 0", got)
	}
	if diff := cmp.Diff([]string{"help", "ls", "clear"}, s.History()); diff != "" {
		t.Fatalf("history mismatch (-want +got):\n%s", diff)
	}
	s.Submit("whoami")
	if got := len(s.Scrollback()); got != 1 {
		t.Fatalf("scrollback len = %d, want 1", got)
	}
}

func TestPureCommandsAreStable(t *testing.T) {
	for _, name := range []string{"help", "whoami", "ls", "contact"} {
		t.Run(name, func(t *testing.T) {
			s, host := newTestSession()
			s.Submit(name)
			s.Submit(name)
			recs := s.Scrollback()
			if diff := cmp.Diff(recs[0].Output, recs[1].Output); diff != "" {
				t.Fatalf("output differs between invocations:\n%s", diff)
			}
			if recs[0].Output.Empty() {
				t.Fatalf("expected non-empty output for %s", name)
			}
			if len(host.paths) != 0 || host.backs != 0 || len(host.visible) != 0 {
				t.Fatalf("%s must not navigate: %+v", name, host)
			}
		})
	}
}

func TestHelpListsCommands(t *testing.T) {
	s, _ := newTestSession()
	s.Submit("help")
	rec, _ := s.LastRecord()
	want := []string{"help", "clear", "whoami", "ls", "cd [dir]", "contact"}
	var got []string
	for _, c := range rec.Output.Commands {
		got = append(got, c.Usage)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("help usages mismatch (-want +got):\n%s", diff)
	}
}

func TestListShowsFourSections(t *testing.T) {
	s, _ := newTestSession()
	s.Submit("ls")
	rec, _ := s.LastRecord()
	if diff := cmp.Diff([]string{"home", "blog", "projects", "work"}, rec.Output.Entries); diff != "" {
		t.Fatalf("listing mismatch (-want +got):\n%s", diff)
	}
	want := "drwxr-xr-x home/\ndrwxr-xr-x blog/\ndrwxr-xr-x projects/\ndrwxr-xr-x work/"
	if got := rec.Output.Plain(); got != want {
		t.Fatalf("plain listing = %q, want %q", got, want)
	}
}

func TestUnknownCommand(t *testing.T) {
	s, host := newTestSession()
	s.Submit("foobar")
	rec, _ := s.LastRecord()
	if diff := cmp.Diff(Text("command not found: foobar"), rec.Output); diff != "" {
		t.Fatalf("unexpected output (-want +got):\n%s", diff)
	}
	if len(host.paths) != 0 {
		t.Fatalf("unknown command must not navigate")
	}
}

func TestUnknownCommandIsLowerCased(t *testing.T) {
	s, _ := newTestSession()
	s.Submit("FooBar Baz")
	rec, _ := s.LastRecord()
	if got := rec.Output.Text; got != "command not found: foobar" {
		t.Fatalf("output = %q", got)
	}
}

func TestChangeDir(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		output string
		path   string
		back   bool
		closes bool
	}{
		{name: "no argument", input: "cd", output: "Usage: cd [directory]"},
		{name: "double space", input: "cd  blog", output: "Usage: cd [directory]"},
		{name: "home", input: "cd home", output: "Navigating to home...", path: "/", closes: true},
		{name: "tilde", input: "cd ~", output: "Navigating to home...", path: "/", closes: true},
		{name: "slash", input: "cd /", output: "Navigating to home...", path: "/", closes: true},
		{name: "blog", input: "cd blog", output: "Navigating to blog...", path: "/blog", closes: true},
		{name: "blog upper", input: "CD BLOG", output: "Navigating to blog...", path: "/blog", closes: true},
		{name: "projects", input: "cd projects", output: "Navigating to projects...", path: "/#projects", closes: true},
		{name: "work", input: "cd work", output: "Navigating to work experience...", path: "/#work", closes: true},
		{name: "back", input: "cd ..", output: "Navigating back...", back: true, closes: true},
		{name: "unknown", input: "cd nowhere", output: "cd: no such file or directory: nowhere"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, host := newTestSession()
			s.Submit(tt.input)
			rec, _ := s.LastRecord()
			if diff := cmp.Diff(Text(tt.output), rec.Output); diff != "" {
				t.Fatalf("output mismatch (-want +got):\n%s", diff)
			}
			var wantPaths []string
			if tt.path != "" {
				wantPaths = []string{tt.path}
			}
			if diff := cmp.Diff(wantPaths, host.paths); diff != "" {
				t.Fatalf("navigation mismatch (-want +got):\n%s", diff)
			}
			if (host.backs == 1) != tt.back {
				t.Fatalf("back calls = %d, want back=%v", host.backs, tt.back)
			}
			var wantVisible []bool
			if tt.closes {
				wantVisible = []bool{false}
			}
			if diff := cmp.Diff(wantVisible, host.visible); diff != "" {
				t.Fatalf("visibility mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRecallSequence(t *testing.T) {
	s, _ := newTestSession()
	for _, in := range []string{"ls", "help", "whoami"} {
		s.Submit(in)
	}
	if s.Cursor() != -1 {
		t.Fatalf("cursor = %d, want -1", s.Cursor())
	}

	steps := []struct {
		prev   bool
		input  string
		cursor int
	}{
		{prev: true, input: "whoami", cursor: 0},
		{prev: true, input: "help", cursor: 1},
		{prev: true, input: "ls", cursor: 2},
		{prev: true, input: "ls", cursor: 2},
		{prev: false, input: "help", cursor: 1},
		{prev: false, input: "whoami", cursor: 0},
		{prev: false, input: "", cursor: -1},
		{prev: false, input: "", cursor: -1},
	}
	for i, step := range steps {
		if step.prev {
			s.RecallPrevious()
		} else {
			s.RecallNext()
		}
		if s.Input() != step.input || s.Cursor() != step.cursor {
			t.Fatalf("step %d: input=%q cursor=%d, want input=%q cursor=%d", i, s.Input(), s.Cursor(), step.input, step.cursor)
		}
	}
	if diff := cmp.Diff([]string{"ls", "help", "whoami"}, s.History()); diff != "" {
		t.Fatalf("recall must not mutate history (-want +got):\n%s", diff)
	}
}

func TestRecallOnEmptyHistoryKeepsInput(t *testing.T) {
	s, _ := newTestSession()
	s.SetInput("draft")
	s.RecallPrevious()
	s.RecallNext()
	if s.Input() != "draft" || s.Cursor() != -1 {
		t.Fatalf("input=%q cursor=%d", s.Input(), s.Cursor())
	}
}

func TestSubmitResetsCursorAndInput(t *testing.T) {
	s, _ := newTestSession()
	s.Submit("ls")
	s.Submit("help")
	s.RecallPrevious()
	s.RecallPrevious()
	s.Submit(s.Input())
	if s.Cursor() != -1 {
		t.Fatalf("cursor = %d, want -1", s.Cursor())
	}
	if s.Input() != "" {
		t.Fatalf("input = %q, want empty", s.Input())
	}
	if diff := cmp.Diff([]string{"ls", "help", "ls"}, s.History()); diff != "" {
		t.Fatalf("history mismatch (-want +got):\n%s", diff)
	}
}

func TestSubmitPublishesEvents(t *testing.T) {
	pub := &recordingPublisher{}
	host := &fakeHost{}
	s := NewSession(Options{ID: "s1", Navigator: host, Visibility: host, Events: pub})
	s.Submit("clear")
	s.Submit("cd blog")

	var types []events.EventType
	for _, evt := range pub.events {
		if evt.SessionID != "s1" {
			t.Fatalf("event session id = %q", evt.SessionID)
		}
		types = append(types, evt.Type)
	}
	want := []events.EventType{
		events.EventCommandExecuted,
		events.EventScrollbackCleared,
		events.EventCommandExecuted,
		events.EventNavigationRequested,
	}
	if diff := cmp.Diff(want, types); diff != "" {
		t.Fatalf("event types mismatch (-want +got):\n%s", diff)
	}
	nav, ok := pub.events[3].Payload.(events.NavigationRequested)
	if !ok || nav.Path != "/blog" {
		t.Fatalf("unexpected navigation payload %+v", pub.events[3].Payload)
	}
}

func TestContactUsesProfile(t *testing.T) {
	s := NewSession(Options{Profile: Profile{Email: "me@example.test", GitHub: "https://github.com/me/"}})
	s.Submit("contact")
	rec, _ := s.LastRecord()
	want := "Email: me@example.test\nGitHub: github.com/me\nLinkedIn: linkedin.com/in/ilhamwibawa"
	if got := rec.Output.Plain(); got != want {
		t.Fatalf("contact = %q, want %q", got, want)
	}
	if rec.Output.Links[0].URL != "mailto:me@example.test" {
		t.Fatalf("email url = %q", rec.Output.Links[0].URL)
	}
}

type recordingTranscript struct {
	lines []string
}

func (r *recordingTranscript) Command(id, line string, seq int) {
	r.lines = append(r.lines, fmt.Sprintf("%s command %d %s", id, seq, line))
}
func (r *recordingTranscript) Output(id, kind, _ string) {
	r.lines = append(r.lines, fmt.Sprintf("%s output %s", id, kind))
}
func (r *recordingTranscript) Navigate(id, target string) {
	r.lines = append(r.lines, fmt.Sprintf("%s navigate %s", id, target))
}
func (r *recordingTranscript) Closed(id string, commands int) {
	r.lines = append(r.lines, fmt.Sprintf("%s closed %d", id, commands))
}

func TestSubmitWritesTranscript(t *testing.T) {
	rec := &recordingTranscript{}
	logger.SetGlobalTranscriptLogger(rec)
	t.Cleanup(func() { logger.SetGlobalTranscriptLogger(logger.NewNoopTranscriptLogger()) })

	s, _ := newTestSession()
	s.Submit("whoami")
	s.Submit("   ")
	s.Submit("cd blog")

	want := []string{
		"test command 1 whoami",
		"test output info",
		"test command 2 cd blog",
		"test output text",
		"test navigate /blog",
	}
	if diff := cmp.Diff(want, rec.lines); diff != "" {
		t.Fatalf("transcript mismatch (-want +got):\n%s", diff)
	}
}
