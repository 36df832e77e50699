// ABOUTME: Role chooser shown after a Google sign-up credential arrives
// ABOUTME: Holds the credential until a role is picked, then creates the account

package roleselect

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/markwhitaker/classroom-cli/internal/client"
	"github.com/markwhitaker/classroom-cli/internal/errmsg"
	"github.com/markwhitaker/classroom-cli/internal/session"
	"github.com/markwhitaker/classroom-cli/internal/tui/styles"
)

// CompletedMsg is sent when the Google account has been created.
type CompletedMsg struct {
	UserID string
	Role   session.Role
}

// CancelledMsg is sent when the user backs out without picking a role. The
// held credential is discarded with the model.
type CancelledMsg struct{}

type resultMsg struct {
	resp *client.AuthResponse
	err  error
}

// Model is the role selection dialog.
type Model struct {
	api   *client.Client
	token string

	choice     string
	form       *huh.Form
	submitting bool
	errText    string
}

// New creates the dialog holding the given Google credential.
func New(api *client.Client, token string) *Model {
	m := &Model{api: api, token: token}
	m.form = newForm(&m.choice)
	return m
}

func newForm(choice *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("role").
				Title("One more step").
				Description("Choose how you'll use Classroom").
				Options(
					huh.NewOption("Select a role", ""),
					huh.NewOption("Student", string(session.RoleStudent)),
					huh.NewOption("Teacher", string(session.RoleTeacher)),
				).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("Please select a role")
					}
					return nil
				}).
				Value(choice),
		),
	).WithShowHelp(false)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.form.Init()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "esc" && !m.submitting {
			return m, func() tea.Msg { return CancelledMsg{} }
		}

	case resultMsg:
		m.submitting = false
		if msg.err != nil {
			// Keep the credential and let the user pick again.
			m.errText = errmsg.FromError(msg.err)
			m.choice = ""
			m.form = newForm(&m.choice)
			return m, m.form.Init()
		}
		userID := msg.resp.UserID
		role := session.Role(msg.resp.Role)
		return m, func() tea.Msg { return CompletedMsg{UserID: userID, Role: role} }
	}

	if m.submitting {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.submitting = true
		m.errText = ""
		return m, tea.Batch(cmd, m.submitCmd())
	}
	return m, cmd
}

func (m *Model) submitCmd() tea.Cmd {
	api, token, role := m.api, m.token, m.choice
	return func() tea.Msg {
		resp, err := api.GoogleSignup(context.Background(), token, role)
		return resultMsg{resp: resp, err: err}
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.submitting {
		return styles.ActivePanel.Render(
			styles.Title.Render("Google Sign-Up") + "\n" +
				styles.Subtitle.Render("Creating your account..."))
	}

	body := styles.Title.Render("Google Sign-Up") + "\n" + m.form.View()
	if m.errText != "" {
		body += "\n" + styles.ErrorText.Render(m.errText)
	}
	body += "\n" + styles.Help.Render("Enter confirm  Esc cancel")
	return styles.ActivePanel.Render(body)
}
