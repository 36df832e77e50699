// ABOUTME: Forgot-password dialog with a debounced submit
// ABOUTME: Rapid confirms collapse into one request carrying the latest email

package forgot

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/markwhitaker/classroom-cli/internal/client"
	"github.com/markwhitaker/classroom-cli/internal/errmsg"
	"github.com/markwhitaker/classroom-cli/internal/tui/styles"
	"github.com/markwhitaker/classroom-cli/internal/validate"
)

// debounceWindow is how long a confirm waits before firing. Confirms arriving
// inside the window supersede the pending one.
const debounceWindow = 500 * time.Millisecond

// ClosedMsg is sent when the dialog should close and return to sign-in.
type ClosedMsg struct{}

// debounceMsg fires when a confirm's wait expires. Only the newest sequence
// number is honored; earlier ones are stale.
type debounceMsg struct {
	seq int
}

type resultMsg struct {
	resp *client.ForgotPasswordResponse
	err  error
}

type state int

const (
	stateIdle state = iota
	stateSubmitting
	stateResult
)

// Model is the forgot-password dialog.
type Model struct {
	api *client.Client

	emailInput textinput.Model
	state      state
	seq        int

	errText   string
	message   string
	resetLink string
}

// New creates the dialog. It always starts empty; nothing carries over from
// the sign-in form.
func New(api *client.Client) *Model {
	ti := textinput.New()
	ti.Placeholder = "Enter your email"
	ti.CharLimit = 256
	ti.Width = 40
	ti.Focus()

	return &Model{api: api, emailInput: ti}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return ClosedMsg{} }

		case "enter":
			switch m.state {
			case stateResult:
				return m, func() tea.Msg { return ClosedMsg{} }
			case stateSubmitting:
				return m, nil
			}
			// Arm (or re-arm) the debounce. The email is read when the
			// window expires, not now, so edits made while waiting count.
			m.seq++
			seq := m.seq
			return m, tea.Tick(debounceWindow, func(time.Time) tea.Msg {
				return debounceMsg{seq: seq}
			})
		}

		if m.state == stateIdle {
			var cmd tea.Cmd
			before := m.emailInput.Value()
			m.emailInput, cmd = m.emailInput.Update(msg)
			if m.emailInput.Value() != before {
				m.errText = ""
			}
			return m, cmd
		}
		return m, nil

	case debounceMsg:
		if msg.seq != m.seq || m.state != stateIdle {
			return m, nil
		}
		return m.fire()

	case resultMsg:
		if msg.err != nil {
			m.state = stateIdle
			m.errText = errmsg.FromError(msg.err)
			return m, nil
		}
		m.state = stateResult
		m.message = msg.resp.Message
		if m.message == "" {
			m.message = "Password reset link sent to your email"
		}
		m.resetLink = msg.resp.Data
		m.emailInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.emailInput, cmd = m.emailInput.Update(msg)
	return m, cmd
}

// fire validates the email as it stands now and submits it.
func (m *Model) fire() (tea.Model, tea.Cmd) {
	email := strings.TrimSpace(m.emailInput.Value())
	if email == "" {
		m.errText = "Please enter your email"
		return m, nil
	}
	if !validate.Email(email) {
		m.errText = "Please enter a valid email"
		return m, nil
	}

	m.state = stateSubmitting
	m.errText = ""
	api := m.api
	return m, func() tea.Msg {
		resp, err := api.ForgotPassword(context.Background(), email)
		return resultMsg{resp: resp, err: err}
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Forgot Password"))
	b.WriteString("\n")

	switch m.state {
	case stateResult:
		b.WriteString(styles.SuccessText.Render(m.message))
		b.WriteString("\n")
		if m.resetLink != "" {
			b.WriteString(styles.Label.Render("Reset link: "))
			b.WriteString(styles.Value.Render(m.resetLink))
			b.WriteString("\n")
		}
		b.WriteString(styles.Help.Render("Enter back to login"))

	case stateSubmitting:
		b.WriteString(styles.Subtitle.Render("Sending reset link..."))

	default:
		b.WriteString(styles.Subtitle.Render("We'll email you a link to reset your password"))
		b.WriteString("\n")
		b.WriteString(m.emailInput.View())
		b.WriteString("\n")
		if m.errText != "" {
			b.WriteString(styles.FieldError.Render(m.errText))
			b.WriteString("\n")
		}
		b.WriteString(styles.Help.Render("Enter send  Esc back to login"))
	}

	return styles.ActivePanel.Render(b.String())
}
