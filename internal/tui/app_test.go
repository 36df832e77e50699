// ABOUTME: Integration tests for the root TUI model
// ABOUTME: Tests screen transitions, session persistence, and redirect cancellation

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/markwhitaker/classroom-cli/internal/client"
	"github.com/markwhitaker/classroom-cli/internal/session"
	"github.com/markwhitaker/classroom-cli/internal/tui/authform"
	"github.com/markwhitaker/classroom-cli/internal/tui/dashboard"
	"github.com/markwhitaker/classroom-cli/internal/tui/forgot"
	"github.com/markwhitaker/classroom-cli/internal/tui/roleselect"
)

// memStore is an in-memory session.Store for tests.
type memStore struct {
	sess       *session.Session
	putCalls   int
	clearCalls int
}

func (s *memStore) Get() (*session.Session, error) { return s.sess, nil }

func (s *memStore) Put(sess session.Session) error {
	s.sess = &sess
	s.putCalls++
	return nil
}

func (s *memStore) Clear() error {
	s.sess = nil
	s.clearCalls++
	return nil
}

func newTestApp(store session.Store) *App {
	return NewApp(client.New("http://localhost:8080"), store)
}

func TestAppInitialState_NoSession(t *testing.T) {
	app := newTestApp(&memStore{})

	if app.screen != ScreenAuth {
		t.Errorf("expected ScreenAuth, got %d", app.screen)
	}
	if app.form == nil {
		t.Error("expected the auth form to be initialized")
	}
	if app.dash != nil {
		t.Error("expected no dashboard yet")
	}
}

func TestAppRestoresStoredSession(t *testing.T) {
	store := &memStore{sess: &session.Session{UserID: "u-1", Role: session.RoleTeacher}}
	app := newTestApp(store)

	if app.screen != ScreenDashboard {
		t.Errorf("expected a stored session to skip sign-in, got screen %d", app.screen)
	}
	if app.dash == nil {
		t.Error("expected the dashboard to be created")
	}
	if app.sess.UserID != "u-1" {
		t.Errorf("unexpected session: %+v", app.sess)
	}
}

func TestAuthenticatedPersistsThenRedirects(t *testing.T) {
	store := &memStore{}
	app := newTestApp(store)

	_, cmd := app.Update(authform.AuthenticatedMsg{UserID: "u-1", Role: session.RoleStudent})

	if store.putCalls != 1 {
		t.Errorf("expected the session to be persisted once, got %d", store.putCalls)
	}
	if store.sess == nil || store.sess.UserID != "u-1" {
		t.Errorf("unexpected stored session: %+v", store.sess)
	}
	if app.screen != ScreenRedirect {
		t.Errorf("expected the interstitial, got screen %d", app.screen)
	}
	if app.dash != nil {
		t.Error("the dashboard must not appear before the delay fires")
	}
	if cmd == nil {
		t.Error("expected spinner and redirect commands")
	}
}

func TestRedirectFiresOnlyWithCurrentSeq(t *testing.T) {
	app := newTestApp(&memStore{})
	app.Update(authform.AuthenticatedMsg{UserID: "u-1", Role: session.RoleStudent})

	app.Update(redirectMsg{seq: app.redirectSeq - 1})
	if app.screen != ScreenRedirect {
		t.Fatal("a stale redirect must not land")
	}

	app.Update(redirectMsg{seq: app.redirectSeq})
	if app.screen != ScreenDashboard {
		t.Errorf("expected the dashboard, got screen %d", app.screen)
	}
	if app.dash == nil {
		t.Error("expected the dashboard to be created")
	}
}

func TestRedirectIgnoredOffInterstitial(t *testing.T) {
	app := newTestApp(&memStore{})
	app.redirectSeq = 3

	app.Update(redirectMsg{seq: 3})
	if app.screen != ScreenAuth {
		t.Error("a redirect must not land outside the interstitial")
	}
}

func TestLogoutReturnsToFreshSignIn(t *testing.T) {
	store := &memStore{sess: &session.Session{UserID: "u-1", Role: session.RoleStudent}}
	app := newTestApp(store)
	if app.screen != ScreenDashboard {
		t.Fatal("precondition: expected the dashboard")
	}

	_, cmd := app.Update(dashboard.LoggedOutMsg{})

	if app.screen != ScreenAuth {
		t.Errorf("expected sign-in after logout, got screen %d", app.screen)
	}
	if app.form == nil {
		t.Error("expected a fresh auth form")
	}
	if app.dash != nil {
		t.Error("expected the dashboard to be dropped")
	}
	if cmd == nil {
		t.Error("expected the form's init command")
	}
}

func TestForgotOverlayLifecycle(t *testing.T) {
	app := newTestApp(&memStore{})

	app.Update(authform.ForgotRequestedMsg{})
	if app.overlay != overlayForgot || app.forgot == nil {
		t.Fatal("expected the forgot dialog to open")
	}

	app.Update(forgot.ClosedMsg{})
	if app.overlay != overlayNone || app.forgot != nil {
		t.Error("expected the forgot dialog to close")
	}
	if app.screen != ScreenAuth {
		t.Error("expected to be back on sign-in")
	}
}

func TestRoleSelectCancelKeepsSignUp(t *testing.T) {
	app := newTestApp(&memStore{})

	app.Update(authform.RoleSelectRequestedMsg{Token: "cred-123"})
	if app.overlay != overlayRole || app.roles == nil {
		t.Fatal("expected the role dialog to open")
	}

	app.Update(roleselect.CancelledMsg{})
	if app.overlay != overlayNone || app.roles != nil {
		t.Error("expected the role dialog to close")
	}
	if app.screen != ScreenAuth {
		t.Error("expected to stay on the auth screen")
	}
}

func TestRoleSelectCompletionAuthenticates(t *testing.T) {
	store := &memStore{}
	app := newTestApp(store)
	app.Update(authform.RoleSelectRequestedMsg{Token: "cred-123"})

	app.Update(roleselect.CompletedMsg{UserID: "u-2", Role: session.RoleTeacher})

	if app.overlay != overlayNone || app.roles != nil {
		t.Error("expected the role dialog to close")
	}
	if app.screen != ScreenRedirect {
		t.Errorf("expected the interstitial, got screen %d", app.screen)
	}
	if store.sess == nil || store.sess.Role != session.RoleTeacher {
		t.Errorf("unexpected stored session: %+v", store.sess)
	}
}

func TestCtrlCQuits(t *testing.T) {
	app := newTestApp(&memStore{})

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg, got %T", cmd())
	}
}

func TestViewPerScreen(t *testing.T) {
	store := &memStore{}
	app := newTestApp(store)

	if app.View() == "" {
		t.Error("expected the auth view to render")
	}

	app.Update(authform.AuthenticatedMsg{UserID: "u-1", Role: session.RoleStudent})
	if app.View() == "" {
		t.Error("expected the interstitial to render")
	}

	app.Update(redirectMsg{seq: app.redirectSeq})
	if app.View() == "" {
		t.Error("expected the dashboard to render")
	}
}
