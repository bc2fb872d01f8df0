package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestStdTranscriptLoggerWritesSessionLines(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetLevel(logrus.DebugLevel)

	tl := NewTranscriptLogger(l)
	tl.Command("s1", "cd blog", 3)
	tl.Output("s1", "text", "Navigating to blog...\nok")
	tl.Navigate("s1", "/blog")
	tl.Closed("s1", 3)

	out := buf.String()
	for _, want := range []string{
		"[transcript] -> command seq=3 line=cd blog session_id=s1",
		`<- output kind=text text=Navigating to blog...\nok`,
		"=> navigate target=/blog",
		"xx session discarded commands=3",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestStdTranscriptLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetLevel(logrus.InfoLevel)

	NewTranscriptLogger(l).Output("s1", "text", "hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug output must be filtered at info level, got %q", buf.String())
	}
}

func TestSetGlobalTranscriptLoggerResets(t *testing.T) {
	SetGlobalTranscriptLogger(NewNoopTranscriptLogger())
	if _, ok := GlobalTranscriptLogger().(NoopTranscriptLogger); !ok {
		t.Fatalf("expected noop logger")
	}
	SetGlobalTranscriptLogger(nil)
	if _, ok := GlobalTranscriptLogger().(*StdTranscriptLogger); !ok {
		t.Fatalf("expected default logger after reset")
	}
}

func TestSetupTranscriptFile(t *testing.T) {
	t.Cleanup(func() { SetGlobalTranscriptLogger(nil) })
	path := filepath.Join(t.TempDir(), "logs", "transcript.log")
	closer, resolved, err := SetupTranscriptFile(path)
	if err != nil {
		t.Fatalf("SetupTranscriptFile error: %v", err)
	}
	Command("s9", "whoami", 1)
	_ = closer.Close()

	data, err := os.ReadFile(resolved)
	if err != nil {
		t.Fatalf("read transcript: %v", err)
	}
	if !strings.Contains(string(data), "-> command seq=1 line=whoami") {
		t.Fatalf("transcript missing command line: %q", string(data))
	}
}
