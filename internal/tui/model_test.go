package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"slidesearch/internal/domain"
)

type fakeOpener struct {
	calls []string
	err   error
}

func (f *fakeOpener) Open(path string, page int) error {
	f.calls = append(f.calls, path)
	return f.err
}

func testResults() []domain.SearchResult {
	return []domain.SearchResult{
		{Record: domain.PageRecord{Path: "a.pdf", Page: 0, Text: "first"}, Distance: 0.1},
		{Record: domain.PageRecord{Path: "a.pdf", Page: 4, Text: "second"}, Distance: 0.2},
		{Record: domain.PageRecord{Path: "b.pdf", Page: 2, Text: "third"}, Distance: 0.3},
	}
}

func key(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func press(t *testing.T, m Model, r rune) Model {
	t.Helper()
	updated, _ := m.Update(key(r))
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return next
}

func TestNavigation_NextAndPrevious(t *testing.T) {
	m := New(testResults(), "query", &fakeOpener{})

	m = press(t, m, 'n')
	if m.cursor != 1 {
		t.Fatalf("cursor = %d after n, want 1", m.cursor)
	}
	m = press(t, m, 'n')
	if m.cursor != 2 {
		t.Fatalf("cursor = %d after nn, want 2", m.cursor)
	}
	m = press(t, m, 'p')
	if m.cursor != 1 {
		t.Fatalf("cursor = %d after p, want 1", m.cursor)
	}
}

func TestNavigation_ClampedAtBounds(t *testing.T) {
	m := New(testResults(), "query", &fakeOpener{})

	// p at the first result is a no-op.
	m = press(t, m, 'p')
	if m.cursor != 0 {
		t.Fatalf("cursor = %d after p at lower bound, want 0", m.cursor)
	}

	// n at the last result is a no-op.
	m.cursor = len(m.results) - 1
	m = press(t, m, 'n')
	if m.cursor != 2 {
		t.Fatalf("cursor = %d after n at upper bound, want 2", m.cursor)
	}
}

func TestOpen_InvokesViewer(t *testing.T) {
	opener := &fakeOpener{}
	m := New(testResults(), "query", opener)
	m = press(t, m, 'n')
	m = press(t, m, 'o')

	if len(opener.calls) != 1 || opener.calls[0] != "a.pdf" {
		t.Fatalf("opener calls = %v, want [a.pdf]", opener.calls)
	}
}

func TestOpen_FailureIsNonFatal(t *testing.T) {
	opener := &fakeOpener{err: errors.New("unsupported platform")}
	m := New(testResults(), "query", opener)

	updated, cmd := m.Update(key('o'))
	if cmd != nil {
		t.Fatal("expected viewer failure not to quit the loop")
	}
	next := updated.(Model)
	if next.status == m.status {
		t.Error("expected status line to report the failed open")
	}
	// The loop keeps accepting navigation afterwards.
	next = press(t, next, 'n')
	if next.cursor != 1 {
		t.Fatalf("cursor = %d after failed open then n, want 1", next.cursor)
	}
}

func TestQuit(t *testing.T) {
	m := New(testResults(), "query", &fakeOpener{})
	_, cmd := m.Update(key('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("cmd produced %T, want tea.QuitMsg", cmd())
	}
}

func TestUnknownKey_Ignored(t *testing.T) {
	m := New(testResults(), "query", &fakeOpener{})
	before := m.cursor
	m = press(t, m, 'x')
	if m.cursor != before {
		t.Fatalf("cursor changed on unknown key: %d", m.cursor)
	}
}
