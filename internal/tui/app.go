// ABOUTME: Root TUI model wiring the auth screens together
// ABOUTME: Owns screen transitions, dialogs, and the post-login redirect delay

package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/markwhitaker/classroom-cli/internal/client"
	"github.com/markwhitaker/classroom-cli/internal/session"
	"github.com/markwhitaker/classroom-cli/internal/tui/authform"
	"github.com/markwhitaker/classroom-cli/internal/tui/dashboard"
	"github.com/markwhitaker/classroom-cli/internal/tui/debuglog"
	"github.com/markwhitaker/classroom-cli/internal/tui/forgot"
	"github.com/markwhitaker/classroom-cli/internal/tui/roleselect"
	"github.com/markwhitaker/classroom-cli/internal/tui/styles"
)

// redirectDelay is how long the "signed in" interstitial shows before the
// dashboard appears.
const redirectDelay = 2 * time.Second

// Screen identifies the top-level view.
type Screen int

const (
	ScreenAuth Screen = iota
	ScreenRedirect
	ScreenDashboard
)

// overlay identifies a dialog drawn instead of the auth screen.
type overlay int

const (
	overlayNone overlay = iota
	overlayForgot
	overlayRole
)

// redirectMsg fires when the interstitial delay elapses. Stale sequence
// numbers are ignored so a cancelled redirect can never land.
type redirectMsg struct {
	seq int
}

// App is the root model.
type App struct {
	api   *client.Client
	store session.Store

	screen  Screen
	overlay overlay

	form   *authform.Form
	forgot *forgot.Model
	roles  *roleselect.Model
	dash   *dashboard.Model

	sess        session.Session
	spin        spinner.Model
	redirectSeq int

	width  int
	height int
}

// NewApp builds the root model. A stored session skips the auth screen and
// the redirect delay entirely.
func NewApp(api *client.Client, store session.Store) *App {
	a := &App{api: api, store: store}

	sess, err := store.Get()
	debuglog.Error("restore session", err)
	if sess != nil {
		a.sess = *sess
		a.screen = ScreenDashboard
		a.dash = dashboard.New(store, *sess)
		return a
	}

	a.screen = ScreenAuth
	a.form = authform.New(api)
	return a
}

// Run starts the TUI and blocks until it exits.
func Run(api *client.Client, store session.Store) error {
	p := tea.NewProgram(NewApp(api, store), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	if a.screen == ScreenDashboard {
		return a.dash.Init()
	}
	return a.form.Init()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, a.route(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a, a.route(msg)

	case authform.AuthenticatedMsg:
		return a, a.onAuthenticated(msg.UserID, msg.Role)

	case authform.ForgotRequestedMsg:
		a.overlay = overlayForgot
		a.forgot = forgot.New(a.api)
		return a, a.forgot.Init()

	case authform.RoleSelectRequestedMsg:
		a.overlay = overlayRole
		a.roles = roleselect.New(a.api, msg.Token)
		return a, a.roles.Init()

	case forgot.ClosedMsg:
		a.overlay = overlayNone
		a.forgot = nil
		return a, nil

	case roleselect.CompletedMsg:
		a.overlay = overlayNone
		a.roles = nil
		return a, a.onAuthenticated(msg.UserID, msg.Role)

	case roleselect.CancelledMsg:
		a.overlay = overlayNone
		a.roles = nil
		a.form.ClearRole()
		return a, nil

	case dashboard.LoggedOutMsg:
		a.screen = ScreenAuth
		a.dash = nil
		a.sess = session.Session{}
		a.form = authform.New(a.api)
		return a, a.form.Init()

	case redirectMsg:
		if msg.seq != a.redirectSeq || a.screen != ScreenRedirect {
			return a, nil
		}
		a.screen = ScreenDashboard
		a.dash = dashboard.New(a.store, a.sess)
		return a, a.dash.Init()

	case spinner.TickMsg:
		if a.screen == ScreenRedirect {
			var cmd tea.Cmd
			a.spin, cmd = a.spin.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, a.route(msg)
}

// onAuthenticated persists the session and shows the interstitial. The
// dashboard itself appears only after the delay fires with a current
// sequence number.
func (a *App) onAuthenticated(userID string, role session.Role) tea.Cmd {
	a.sess = session.Session{UserID: userID, Role: role}
	debuglog.Error("persist session", a.store.Put(a.sess))

	a.screen = ScreenRedirect
	a.overlay = overlayNone
	a.forgot = nil
	a.roles = nil

	a.spin = spinner.New(spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(styles.Primary)))

	a.redirectSeq++
	seq := a.redirectSeq
	return tea.Batch(
		a.spin.Tick,
		tea.Tick(redirectDelay, func(time.Time) tea.Msg {
			return redirectMsg{seq: seq}
		}),
	)
}

// route forwards a message to whichever child currently has the screen.
func (a *App) route(msg tea.Msg) tea.Cmd {
	switch {
	case a.overlay == overlayForgot && a.forgot != nil:
		model, cmd := a.forgot.Update(msg)
		a.forgot = model.(*forgot.Model)
		return cmd

	case a.overlay == overlayRole && a.roles != nil:
		model, cmd := a.roles.Update(msg)
		a.roles = model.(*roleselect.Model)
		return cmd

	case a.screen == ScreenAuth:
		model, cmd := a.form.Update(msg)
		a.form = model.(*authform.Form)
		return cmd

	case a.screen == ScreenDashboard:
		model, cmd := a.dash.Update(msg)
		a.dash = model.(*dashboard.Model)
		return cmd
	}
	return nil
}

// View implements tea.Model.
func (a *App) View() string {
	var body string
	switch {
	case a.overlay == overlayForgot && a.forgot != nil:
		body = a.forgot.View()
	case a.overlay == overlayRole && a.roles != nil:
		body = a.roles.View()
	case a.screen == ScreenRedirect:
		body = styles.Panel.Render(
			a.spin.View() + " " +
				styles.SuccessText.Render("Signed in!") + "\n" +
				styles.Subtitle.Render("Taking you to "+a.sess.Role.DashboardRoute()+"..."))
	case a.screen == ScreenDashboard:
		body = a.dash.View()
	default:
		body = a.form.View()
	}

	if a.width > 0 && a.height > 0 {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, body)
	}
	return body
}
