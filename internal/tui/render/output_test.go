package render

import (
	"testing"

	"folio-cli/internal/shell"

	"github.com/google/go-cmp/cmp"
)

func renderPlain(t *testing.T, input string) []string {
	t.Helper()
	s := shell.NewSession(shell.Options{})
	s.Submit(input)
	rec, ok := s.LastRecord()
	if !ok {
		t.Fatalf("no record for %q", input)
	}
	return LinesToPlainStrings(RenderRecord(rec, 80))
}

func TestRenderRecordHelp(t *testing.T) {
	want := []string{
		"➜ ~ help",
		"Available commands:",
		"  help     - Show this help message",
		"  clear    - Clear terminal output",
		"  whoami   - Display user info",
		"  ls       - List site sections",
		"  cd [dir] - Navigate to a section",
		"  contact  - Show contact info",
	}
	if diff := cmp.Diff(want, renderPlain(t, "help")); diff != "" {
		t.Fatalf("help render mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderRecordListing(t *testing.T) {
	want := []string{
		"➜ ~ ls",
		"drwxr-xr-x home/",
		"drwxr-xr-x blog/",
		"drwxr-xr-x projects/",
		"drwxr-xr-x work/",
	}
	if diff := cmp.Diff(want, renderPlain(t, "ls")); diff != "" {
		t.Fatalf("ls render mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderRecordWhoami(t *testing.T) {
	got := renderPlain(t, "whoami")
	want := []string{
		"➜ ~ whoami",
		"User: guest@ilhamwibawa.com",
		"Role: Visitor",
		"Access Level: Read Only",
		"",
		"Ilham Wibawa is a software engineer who loves building systems that matter.",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("whoami render mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderRecordKeepsRawCommand(t *testing.T) {
	got := renderPlain(t, "FooBar")
	want := []string{"➜ ~ FooBar", "command not found: foobar"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("render mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderOutputEmptyText(t *testing.T) {
	if lines := RenderOutput(shell.Text(""), 80); len(lines) != 0 {
		t.Fatalf("empty output should render no lines, got %d", len(lines))
	}
}

func TestRenderScrollbackSeparatesRecords(t *testing.T) {
	s := shell.NewSession(shell.Options{})
	s.Submit("cd")
	s.Submit("cd nowhere")
	got := LinesToPlainStrings(RenderScrollback(s.Scrollback(), 80))
	want := []string{
		"➜ ~ cd",
		"Usage: cd [directory]",
		"",
		"➜ ~ cd nowhere",
		"cd: no such file or directory: nowhere",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("scrollback render mismatch (-want +got):\n%s", diff)
	}
}

func TestBanner(t *testing.T) {
	got := LinesToPlainStrings(Banner("Ada"))
	want := []string{"Welcome to Ada's Terminal v1.0.0", "Type 'help' to see available commands."}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("banner mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderInfoWrapsValuesUnderKey(t *testing.T) {
	out := shell.Output{Kind: shell.OutputInfo, Fields: []shell.Field{{Key: "User", Value: "a b c d"}}}
	got := LinesToPlainStrings(RenderOutput(out, 10))
	want := []string{"User: a b", "      c d"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("info wrap mismatch (-want +got):\n%s", diff)
	}
}
