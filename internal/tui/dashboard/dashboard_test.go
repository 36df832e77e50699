// ABOUTME: Tests for the dashboard screen
// ABOUTME: Logout must clear the store before announcing itself

package dashboard

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/markwhitaker/classroom-cli/internal/session"
)

type memStore struct {
	sess       *session.Session
	clearCalls int
}

func (s *memStore) Get() (*session.Session, error) { return s.sess, nil }
func (s *memStore) Put(sess session.Session) error { s.sess = &sess; return nil }
func (s *memStore) Clear() error {
	s.sess = nil
	s.clearCalls++
	return nil
}

func TestViewShowsIdentityAndRoute(t *testing.T) {
	m := New(&memStore{}, session.Session{UserID: "u-1", Role: session.RoleStudent})

	view := m.View()
	for _, want := range []string{"Student Dashboard", "u-1", "/student-dashboard"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}

	m = New(&memStore{}, session.Session{UserID: "u-2", Role: session.RoleTeacher})
	if !strings.Contains(m.View(), "Teacher Dashboard") {
		t.Error("expected the teacher heading")
	}
}

func TestLogoutClearsStoreFirst(t *testing.T) {
	store := &memStore{sess: &session.Session{UserID: "u-1", Role: session.RoleStudent}}
	m := New(store, *store.sess)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")})
	if cmd == nil {
		t.Fatal("expected a logout command")
	}

	msg := cmd()
	if _, ok := msg.(LoggedOutMsg); !ok {
		t.Fatalf("expected LoggedOutMsg, got %T", msg)
	}
	if store.clearCalls != 1 {
		t.Errorf("expected the store to be cleared once, got %d", store.clearCalls)
	}
	if store.sess != nil {
		t.Error("expected no stored session after logout")
	}
}

func TestQuitKey(t *testing.T) {
	m := New(&memStore{}, session.Session{UserID: "u-1", Role: session.RoleStudent})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg, got %T", cmd())
	}
}
