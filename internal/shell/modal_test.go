package shell

import "testing"

type recordingNavigator struct {
	paths []string
	backs int
}

func (n *recordingNavigator) Navigate(path string) { n.paths = append(n.paths, path) }
func (n *recordingNavigator) Back()                { n.backs++ }

func TestModalStartsClosed(t *testing.T) {
	m := NewModal(ModalOptions{})
	if m.Visible() || m.State() != Closed {
		t.Fatalf("expected closed modal, got %v", m.State())
	}
	if m.Session() != nil {
		t.Fatalf("closed modal must not own a session")
	}
}

func TestModalToggleTwiceRestoresStateAndResetsSession(t *testing.T) {
	var changes []bool
	m := NewModal(ModalOptions{OnChange: func(open bool) { changes = append(changes, open) }})

	m.Toggle()
	first := m.Session()
	if first == nil || !m.Visible() {
		t.Fatalf("expected open modal with session")
	}
	first.Submit("ls")
	first.Submit("help")

	m.Toggle()
	if m.Visible() || m.Session() != nil {
		t.Fatalf("expected closed modal without session")
	}

	m.Toggle()
	second := m.Session()
	if second == nil || second == first {
		t.Fatalf("expected a fresh session on reopen")
	}
	if len(second.Scrollback()) != 0 || len(second.History()) != 0 {
		t.Fatalf("reopened session must start empty")
	}
	if len(changes) != 3 || !changes[0] || changes[1] || !changes[2] {
		t.Fatalf("unexpected change notifications %v", changes)
	}
}

func TestModalSetVisibleIsIdempotent(t *testing.T) {
	calls := 0
	m := NewModal(ModalOptions{OnChange: func(bool) { calls++ }})
	m.SetVisible(false)
	m.SetVisible(true)
	s := m.Session()
	m.SetVisible(true)
	if m.Session() != s {
		t.Fatalf("re-opening an open modal must keep the session")
	}
	if calls != 1 {
		t.Fatalf("OnChange calls = %d, want 1", calls)
	}
}

func TestModalClosesOnSuccessfulChangeDir(t *testing.T) {
	nav := &recordingNavigator{}
	m := NewModal(ModalOptions{Navigator: nav})
	m.Toggle()
	s := m.Session()

	s.Submit("cd nowhere")
	if !m.Visible() {
		t.Fatalf("invalid cd must keep the terminal open")
	}
	s.Submit("cd")
	if !m.Visible() {
		t.Fatalf("cd without argument must keep the terminal open")
	}
	s.Submit("cd projects")
	if m.Visible() {
		t.Fatalf("successful cd must close the terminal")
	}
	if len(nav.paths) != 1 || nav.paths[0] != PathProjects {
		t.Fatalf("navigation = %v", nav.paths)
	}
	if got := len(s.Scrollback()); got != 3 {
		t.Fatalf("closing session still records the cd, got %d records", got)
	}
}

func TestModalBackNavigation(t *testing.T) {
	nav := &recordingNavigator{}
	m := NewModal(ModalOptions{Navigator: nav})
	m.Toggle()
	m.Session().Submit("cd ..")
	if nav.backs != 1 || m.Visible() {
		t.Fatalf("backs=%d visible=%v", nav.backs, m.Visible())
	}
}
