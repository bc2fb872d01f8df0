package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStoreAppendAndList(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := openTestStore(t)

	if got, err := s.List(ctx, "a"); err != nil || len(got) != 0 {
		t.Fatalf("List on empty store: got=%v err=%v", got, err)
	}
	if err := s.Append(ctx, Entry{SessionID: "a", Seq: 1, Command: "   "}); err != nil {
		t.Fatalf("Append whitespace: %v", err)
	}

	ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	entries := []Entry{
		{SessionID: "a", Seq: 2, Command: "cd blog", Output: "text", Navigation: "/blog", TS: ts},
		{SessionID: "b", Seq: 1, Command: "whoami", Output: "info", TS: ts},
		{SessionID: "a", Seq: 1, Command: "ls", Output: "listing", TS: ts},
	}
	for _, e := range entries {
		if err := s.Append(ctx, e); err != nil {
			t.Fatalf("Append %q: %v", e.Command, err)
		}
	}

	got, err := s.List(ctx, "a")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("List len=%d want=2: %#v", len(got), got)
	}
	if got[0].Command != "ls" || got[1].Navigation != "/blog" {
		t.Fatalf("unexpected order or fields: %#v", got)
	}
	if !got[0].TS.Equal(ts) {
		t.Fatalf("ts = %v, want %v", got[0].TS, ts)
	}
}

func TestStoreRecent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := openTestStore(t)
	for _, cmd := range []string{"help", "ls", "contact"} {
		if err := s.Append(ctx, Entry{SessionID: "a", Command: cmd, Output: "text"}); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}
	got, err := s.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 || got[0].Command != "contact" || got[1].Command != "ls" {
		t.Fatalf("Recent = %#v", got)
	}
}

func TestStoreReopenKeepsEntries(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Append(ctx, Entry{SessionID: "a", Seq: 1, Command: "ls", Output: "listing"}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	_ = s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	got, err := s.List(ctx, "a")
	if err != nil || len(got) != 1 {
		t.Fatalf("List after reopen: got=%v err=%v", got, err)
	}
}

func TestStoreErrors(t *testing.T) {
	t.Parallel()

	var s *Store
	if err := s.Append(context.Background(), Entry{Command: "hi"}); err == nil {
		t.Fatalf("expected error for nil store")
	}
	if _, err := Open("  "); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
