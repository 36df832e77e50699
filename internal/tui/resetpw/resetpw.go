// ABOUTME: Reset-password screen reached via the emailed reset link
// ABOUTME: Without a token the screen is a dead end; there is no way to mint one here

package resetpw

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/markwhitaker/classroom-cli/internal/client"
	"github.com/markwhitaker/classroom-cli/internal/errmsg"
	"github.com/markwhitaker/classroom-cli/internal/tui/styles"
	"github.com/markwhitaker/classroom-cli/internal/validate"
)

type resultMsg struct {
	resp *client.MessageResponse
	err  error
}

const confirmMismatch = "Passwords do not match"

// Model is the reset-password screen.
type Model struct {
	api   *client.Client
	token string

	newInput     textinput.Model
	confirmInput textinput.Model
	focus        int

	fieldErrs  map[string]string
	errText    string
	submitting bool

	done    bool
	doneMsg string
}

// New creates the screen for the token parsed from a reset link. An empty
// token renders a terminal error view.
func New(api *client.Client, token string) *Model {
	m := &Model{
		api:       api,
		token:     token,
		fieldErrs: map[string]string{},
	}

	m.newInput = newPasswordInput("Enter new password")
	m.confirmInput = newPasswordInput("Confirm new password")
	m.newInput.Focus()
	return m
}

func newPasswordInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.Width = 40
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	return ti
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.token == "" {
		return nil
	}
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errText = resetError(msg.err)
			return m, nil
		}
		m.done = true
		m.doneMsg = msg.resp.Message
		if m.doneMsg == "" {
			m.doneMsg = "Password reset successful. You can now sign in."
		}
		return m, nil

	case tea.KeyMsg:
		if m.token == "" || m.done {
			switch msg.String() {
			case "enter", "q", "esc", "ctrl+c":
				return m, tea.Quit
			}
			return m, nil
		}
		return m.updateForm(msg)
	}

	return m, m.updateFocusedInput(msg)
}

func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "tab", "down":
		return m, m.moveFocus(1)

	case "shift+tab", "up":
		return m, m.moveFocus(-1)

	case "enter":
		if m.focus == 2 {
			return m.submit()
		}
		return m, m.moveFocus(1)
	}

	return m, m.updateFocusedInput(msg)
}

func (m *Model) input(i int) *textinput.Model {
	switch i {
	case 0:
		return &m.newInput
	case 1:
		return &m.confirmInput
	}
	return nil
}

func (m *Model) fieldName(i int) string {
	if i == 0 {
		return "password"
	}
	return "confirm"
}

func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	ti := m.input(m.focus)
	if ti == nil {
		return nil
	}

	before := ti.Value()
	updated, cmd := ti.Update(msg)
	*ti = updated

	if updated.Value() != before {
		field := m.fieldName(m.focus)
		delete(m.fieldErrs, field)
		m.errText = ""
		m.validateField(field)
	}
	return cmd
}

// validateField records an inline error for a non-empty invalid value.
func (m *Model) validateField(field string) {
	switch field {
	case "password":
		if msg := validate.Field("password", m.newInput.Value()); msg != "" {
			m.fieldErrs[field] = msg
		}
	case "confirm":
		v := m.confirmInput.Value()
		if v != "" && v != m.newInput.Value() {
			m.fieldErrs[field] = confirmMismatch
		}
	}
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	if ti := m.input(m.focus); ti != nil {
		ti.Blur()
		m.validateField(m.fieldName(m.focus))
	}

	m.focus = (m.focus + delta + 3) % 3

	if ti := m.input(m.focus); ti != nil {
		return ti.Focus()
	}
	return nil
}

func (m *Model) submit() (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	password := m.newInput.Value()
	confirm := m.confirmInput.Value()

	switch {
	case password == "":
		m.fieldErrs["password"] = "Password is required"
	case !validate.Password(password):
		m.fieldErrs["password"] = validate.MsgInvalidPassword
	}
	switch {
	case confirm == "":
		m.fieldErrs["confirm"] = "Please confirm your password"
	case confirm != password:
		m.fieldErrs["confirm"] = confirmMismatch
	}
	if len(m.fieldErrs) > 0 {
		return m, nil
	}

	m.submitting = true
	m.errText = ""
	api, token := m.api, m.token
	return m, func() tea.Msg {
		resp, err := api.ResetPassword(context.Background(), token, password)
		return resultMsg{resp: resp, err: err}
	}
}

// resetError prefers the backend's own message; token problems ("Invalid or
// expired token") are only ever phrased by the backend.
func resetError(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode != 0 && apiErr.Message != "" {
		return apiErr.Message
	}
	return errmsg.Fallback
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Reset Password"))
	b.WriteString("\n")

	switch {
	case m.token == "":
		b.WriteString(styles.ErrorText.Render("Invalid or missing reset token."))
		b.WriteString("\n")
		b.WriteString(styles.Subtitle.Render("Use the reset link from your email to open this screen."))
		b.WriteString("\n")
		b.WriteString(styles.Help.Render("Enter quit"))

	case m.done:
		b.WriteString(styles.SuccessText.Render(m.doneMsg))
		b.WriteString("\n")
		b.WriteString(styles.Help.Render("Enter quit"))

	case m.submitting:
		b.WriteString(styles.Subtitle.Render("Resetting password..."))

	default:
		m.writeField(&b, "New password", "password", m.newInput.View())
		m.writeField(&b, "Confirm password", "confirm", m.confirmInput.View())
		b.WriteString("\n")
		button := styles.Button.Render("Reset Password")
		if m.focus == 2 {
			button = "> " + button
		} else {
			button = "  " + button
		}
		b.WriteString(button)
		b.WriteString("\n")
		if m.errText != "" {
			b.WriteString(styles.ErrorText.Render(m.errText))
			b.WriteString("\n")
		}
		b.WriteString(styles.Help.Render("Tab next field  Enter submit  Esc quit"))
	}

	return styles.ActivePanel.Render(b.String())
}

func (m *Model) writeField(b *strings.Builder, label, field, inputView string) {
	b.WriteString(styles.Label.Render(label))
	b.WriteString("\n")
	b.WriteString(inputView)
	b.WriteString("\n")
	if msg, ok := m.fieldErrs[field]; ok {
		b.WriteString(styles.FieldError.Render(msg))
		b.WriteString("\n")
	}
}
