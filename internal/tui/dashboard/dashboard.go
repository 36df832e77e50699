// ABOUTME: Post-auth landing screen, one per role
// ABOUTME: Shows the signed-in identity and owns the logout action

package dashboard

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/markwhitaker/classroom-cli/internal/session"
	"github.com/markwhitaker/classroom-cli/internal/tui/debuglog"
	"github.com/markwhitaker/classroom-cli/internal/tui/styles"
)

// LoggedOutMsg is sent after the stored session has been cleared.
type LoggedOutMsg struct{}

// Model is the role-specific landing screen.
type Model struct {
	store session.Store
	sess  session.Session
}

// New creates the dashboard for the signed-in session.
func New(store session.Store, sess session.Session) *Model {
	return &Model{store: store, sess: sess}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "l":
			store := m.store
			return m, func() tea.Msg {
				debuglog.Error("clear session", store.Clear())
				return LoggedOutMsg{}
			}
		case "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	title := "Teacher Dashboard"
	if m.sess.Role == session.RoleStudent {
		title = "Student Dashboard"
	}
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n")

	b.WriteString(styles.Label.Render("Signed in as  "))
	b.WriteString(styles.Value.Render(m.sess.UserID))
	b.WriteString("\n")
	b.WriteString(styles.Label.Render("Role          "))
	b.WriteString(styles.Value.Render(m.sess.Role.Display()))
	b.WriteString("\n")
	b.WriteString(styles.Label.Render("Route         "))
	b.WriteString(styles.Value.Render(m.sess.Role.DashboardRoute()))
	b.WriteString("\n")

	b.WriteString(styles.Help.Render("l log out  q quit"))
	return styles.Panel.Render(b.String())
}
