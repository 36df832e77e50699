// ABOUTME: Sign-in / sign-up form model for the auth screen
// ABOUTME: Owns credentials, per-field errors, and the Google sign-in bridge

package authform

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/markwhitaker/classroom-cli/internal/client"
	"github.com/markwhitaker/classroom-cli/internal/errmsg"
	"github.com/markwhitaker/classroom-cli/internal/session"
	"github.com/markwhitaker/classroom-cli/internal/tui/styles"
	"github.com/markwhitaker/classroom-cli/internal/validate"
)

// Mode selects which of the two forms is showing.
type Mode int

const (
	ModeSignIn Mode = iota
	ModeSignUp
)

// flow tags which submission path an API failure belongs to, so one flow's
// stale error can never clobber another's.
type flow int

const (
	flowForm flow = iota
	flowGoogle
)

// AuthenticatedMsg is sent when any authentication path succeeds.
type AuthenticatedMsg struct {
	UserID string
	Role   session.Role
}

// RoleSelectRequestedMsg is sent when a Google credential arrives in sign-up
// mode; the backend is not called until a role has been chosen.
type RoleSelectRequestedMsg struct {
	Token string
}

// ForgotRequestedMsg is sent when the user asks for the password-reset flow.
type ForgotRequestedMsg struct{}

// submitResultMsg carries the outcome of a gateway call.
type submitResultMsg struct {
	resp     *client.AuthResponse
	err      error
	sourceFl flow
}

// roleOptions is the cycle order for the role row; empty means unselected.
var roleOptions = []string{"", string(session.RoleStudent), string(session.RoleTeacher)}

// Form is the sign-in / sign-up form.
type Form struct {
	api *client.Client

	mode       Mode
	submitting bool

	nameInput     textinput.Model
	emailInput    textinput.Model
	passwordInput textinput.Model
	role          string

	focus     int
	fieldErrs map[string]string
	formErr   string
	googleErr string

	googleOpen  bool
	googleInput textinput.Model

	width int
}

// New creates the form in sign-in mode.
func New(api *client.Client) *Form {
	f := &Form{
		api:       api,
		mode:      ModeSignIn,
		fieldErrs: map[string]string{},
	}

	f.nameInput = newInput("Enter your name")
	f.emailInput = newInput("Enter your email")
	f.passwordInput = newInput("Enter your password")
	f.passwordInput.EchoMode = textinput.EchoPassword
	f.passwordInput.EchoCharacter = '•'

	f.googleInput = newInput("Paste the Google ID token")
	f.googleInput.CharLimit = 4096

	f.emailInput.Focus()
	return f
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.Width = 40
	return ti
}

// Init implements tea.Model.
func (f *Form) Init() tea.Cmd {
	return textinput.Blink
}

// Mode returns the current form mode.
func (f *Form) Mode() Mode {
	return f.mode
}

// Submitting reports whether a submission is in flight.
func (f *Form) Submitting() bool {
	return f.submitting
}

// ClearRole drops the chosen role, e.g. after a cancelled role selection.
func (f *Form) ClearRole() {
	f.role = ""
	delete(f.fieldErrs, "role")
}

// fieldOrder lists the focus targets for the current mode. "submit" is last.
func (f *Form) fieldOrder() []string {
	if f.mode == ModeSignIn {
		return []string{"email", "password", "submit"}
	}
	return []string{"name", "email", "password", "role", "submit"}
}

func (f *Form) focusedField() string {
	return f.fieldOrder()[f.focus]
}

func (f *Form) input(field string) *textinput.Model {
	switch field {
	case "name":
		return &f.nameInput
	case "email":
		return &f.emailInput
	case "password":
		return &f.passwordInput
	}
	return nil
}

func (f *Form) credentials() validate.Credentials {
	return validate.Credentials{
		Email:    strings.TrimSpace(f.emailInput.Value()),
		Password: f.passwordInput.Value(),
		Name:     f.nameInput.Value(),
		Role:     f.role,
	}
}

// Update implements tea.Model.
func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.width = msg.Width
		return f, nil

	case submitResultMsg:
		return f.handleResult(msg)

	case tea.KeyMsg:
		if f.googleOpen {
			return f.updateGoogleModal(msg)
		}
		return f.updateForm(msg)
	}

	// Cursor blink and other component internals go to the focused input.
	return f, f.updateFocusedInput(msg)
}

func (f *Form) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+t":
		f.toggleMode()
		return f, nil

	case "ctrl+g":
		f.googleOpen = true
		f.googleInput.SetValue("")
		return f, f.googleInput.Focus()

	case "ctrl+f":
		if f.mode == ModeSignIn {
			return f, func() tea.Msg { return ForgotRequestedMsg{} }
		}
		return f, nil

	case "tab", "down":
		return f, f.moveFocus(1)

	case "shift+tab", "up":
		return f, f.moveFocus(-1)

	case "enter":
		if f.focusedField() == "submit" {
			return f.submit()
		}
		return f, f.moveFocus(1)
	}

	if f.focusedField() == "role" {
		switch msg.String() {
		case "left", "right", " ":
			f.cycleRole(msg.String() == "left")
			return f, nil
		}
		return f, nil
	}

	return f, f.updateFocusedInput(msg)
}

// updateFocusedInput forwards a message to the focused text input and applies
// the change rules: editing a field clears its error and any API error, then
// re-validates the new (non-empty) value.
func (f *Form) updateFocusedInput(msg tea.Msg) tea.Cmd {
	if f.googleOpen {
		var cmd tea.Cmd
		f.googleInput, cmd = f.googleInput.Update(msg)
		return cmd
	}

	field := f.focusedField()
	ti := f.input(field)
	if ti == nil {
		return nil
	}

	before := ti.Value()
	updated, cmd := ti.Update(msg)
	*ti = updated

	if updated.Value() != before {
		f.inputChanged(field, updated.Value())
	}
	return cmd
}

func (f *Form) inputChanged(field, value string) {
	delete(f.fieldErrs, field)
	f.formErr = ""
	f.googleErr = ""
	if msg := validate.Field(field, value); msg != "" {
		f.fieldErrs[field] = msg
	}
}

// moveFocus shifts focus by delta, validating the field being left the way a
// blur event would.
func (f *Form) moveFocus(delta int) tea.Cmd {
	order := f.fieldOrder()
	current := f.focusedField()

	if ti := f.input(current); ti != nil {
		ti.Blur()
		if msg := validate.Field(current, ti.Value()); msg != "" {
			f.fieldErrs[current] = msg
		}
	}

	f.focus = (f.focus + delta + len(order)) % len(order)

	if ti := f.input(f.focusedField()); ti != nil {
		return ti.Focus()
	}
	return nil
}

func (f *Form) cycleRole(backwards bool) {
	idx := 0
	for i, r := range roleOptions {
		if r == f.role {
			idx = i
			break
		}
	}
	if backwards {
		idx = (idx - 1 + len(roleOptions)) % len(roleOptions)
	} else {
		idx = (idx + 1) % len(roleOptions)
	}
	f.role = roleOptions[idx]
	delete(f.fieldErrs, "role")
	f.formErr = ""
}

// toggleMode flips between sign-in and sign-up, dropping all credentials and
// errors; nothing carries over between the two forms.
func (f *Form) toggleMode() {
	if f.mode == ModeSignIn {
		f.mode = ModeSignUp
	} else {
		f.mode = ModeSignIn
	}

	f.nameInput.SetValue("")
	f.emailInput.SetValue("")
	f.passwordInput.SetValue("")
	f.role = ""
	f.fieldErrs = map[string]string{}
	f.formErr = ""
	f.googleErr = ""

	f.nameInput.Blur()
	f.emailInput.Blur()
	f.passwordInput.Blur()
	f.focus = 0
	if ti := f.input(f.focusedField()); ti != nil {
		ti.Focus()
	}
}

// canSubmit mirrors the disabled state of the submit button. The handler in
// submit re-checks the same conditions; the button state is only a guard.
func (f *Form) canSubmit() bool {
	if f.submitting {
		return false
	}
	creds := f.credentials()
	if creds.Email == "" || creds.Password == "" {
		return false
	}
	if f.mode == ModeSignUp && (creds.Name == "" || creds.Role == "") {
		return false
	}
	return true
}

func (f *Form) submit() (tea.Model, tea.Cmd) {
	if f.submitting {
		return f, nil
	}

	creds := f.credentials()
	var missing map[string]string
	if f.mode == ModeSignIn {
		missing = validate.Required(creds, "Email", "Password")
	} else {
		missing = validate.Required(creds, "Email", "Password", "Name", "Role")
	}
	if len(missing) > 0 {
		for field, text := range missing {
			f.fieldErrs[field] = text
		}
		return f, nil
	}

	f.submitting = true
	f.formErr = ""
	return f, f.submitCmd(creds)
}

func (f *Form) submitCmd(creds validate.Credentials) tea.Cmd {
	api := f.api
	mode := f.mode
	return func() tea.Msg {
		if mode == ModeSignIn {
			resp, err := api.Login(context.Background(), creds.Email, creds.Password)
			return submitResultMsg{resp: resp, err: err, sourceFl: flowForm}
		}
		resp, err := api.Signup(context.Background(), client.SignupRequest{
			Email:    creds.Email,
			Password: creds.Password,
			Name:     creds.Name,
			Role:     creds.Role,
		})
		return submitResultMsg{resp: resp, err: err, sourceFl: flowForm}
	}
}

func (f *Form) googleLoginCmd(token string) tea.Cmd {
	api := f.api
	return func() tea.Msg {
		resp, err := api.GoogleLogin(context.Background(), token)
		return submitResultMsg{resp: resp, err: err, sourceFl: flowGoogle}
	}
}

func (f *Form) handleResult(msg submitResultMsg) (tea.Model, tea.Cmd) {
	f.submitting = false
	if msg.err != nil {
		text := errmsg.FromError(msg.err)
		if msg.sourceFl == flowGoogle {
			f.googleErr = text
		} else {
			f.formErr = text
		}
		return f, nil
	}

	userID := msg.resp.UserID
	role := session.Role(msg.resp.Role)
	return f, func() tea.Msg { return AuthenticatedMsg{UserID: userID, Role: role} }
}

// updateGoogleModal handles the credential paste modal. This stands in for
// the browser OAuth widget: it either hands over a credential or fails.
func (f *Form) updateGoogleModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		f.googleOpen = false
		f.googleInput.Blur()
		return f, nil

	case "enter":
		token := strings.TrimSpace(f.googleInput.Value())
		f.googleOpen = false
		f.googleInput.Blur()

		if token == "" {
			// The widget produced no credential.
			f.googleErr = errmsg.GoogleFailed
			return f, nil
		}
		if f.mode == ModeSignIn {
			f.submitting = true
			return f, f.googleLoginCmd(token)
		}
		// Sign-up defers the backend call until a role is chosen.
		return f, func() tea.Msg { return RoleSelectRequestedMsg{Token: token} }
	}

	var cmd tea.Cmd
	f.googleInput, cmd = f.googleInput.Update(msg)
	return f, cmd
}

// View implements tea.Model.
func (f *Form) View() string {
	if f.googleOpen {
		return f.viewGoogleModal()
	}

	var b strings.Builder

	b.WriteString(styles.Title.Render("Classroom"))
	b.WriteString("\n")
	if f.mode == ModeSignIn {
		b.WriteString(styles.Subtitle.Render("Sign in with your email or Google account"))
	} else {
		b.WriteString(styles.Subtitle.Render("Create your account"))
	}
	b.WriteString("\n")

	if f.mode == ModeSignUp {
		f.writeField(&b, "Name", "name", f.nameInput.View())
	}
	f.writeField(&b, "Email", "email", f.emailInput.View())
	f.writeField(&b, "Password", "password", f.passwordInput.View())
	if f.mode == ModeSignUp {
		f.writeField(&b, "Role", "role", f.roleRowView())
	}

	b.WriteString("\n")
	b.WriteString(f.submitButtonView())
	b.WriteString("\n")
	if f.formErr != "" {
		b.WriteString(styles.ErrorText.Render(f.formErr))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("────────  OR  ────────"))
	b.WriteString("\n")
	b.WriteString(styles.Key.Render("Ctrl+G") + styles.Label.Render("  Continue with Google"))
	b.WriteString("\n")
	if f.googleErr != "" {
		b.WriteString(styles.ErrorText.Render(f.googleErr))
		b.WriteString("\n")
	}

	help := "Ctrl+T sign up"
	if f.mode == ModeSignUp {
		help = "Ctrl+T sign in"
	}
	if f.mode == ModeSignIn {
		help += "  Ctrl+F forgot password"
	}
	help += "  Ctrl+C quit"
	b.WriteString(styles.Help.Render(help))

	return styles.ActivePanel.Render(b.String())
}

func (f *Form) writeField(b *strings.Builder, label, field, inputView string) {
	b.WriteString(styles.Label.Render(label))
	b.WriteString("\n")
	b.WriteString(inputView)
	b.WriteString("\n")
	if msg, ok := f.fieldErrs[field]; ok {
		b.WriteString(styles.FieldError.Render(msg))
		b.WriteString("\n")
	}
}

func (f *Form) roleRowView() string {
	display := "select a role"
	if f.role != "" {
		display = session.Role(f.role).Display()
	}
	row := "‹ " + display + " ›"
	if f.focusedField() == "role" {
		return styles.Value.Render(row) + styles.Label.Render("  (←/→ to change)")
	}
	return styles.Label.Render(row)
}

func (f *Form) submitButtonView() string {
	label := "Sign In"
	if f.mode == ModeSignUp {
		label = "Sign Up"
	}
	if f.submitting {
		if f.mode == ModeSignIn {
			label = "Signing in..."
		} else {
			label = "Creating account..."
		}
	}

	style := styles.Button
	if !f.canSubmit() {
		style = styles.ButtonDisabled
	}
	button := style.Render(label)
	if f.focusedField() == "submit" {
		return lipgloss.NewStyle().Bold(true).Render("> ") + button
	}
	return "  " + button
}

func (f *Form) viewGoogleModal() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Google Sign-In"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Paste the ID token from your browser's Google prompt"))
	b.WriteString("\n")
	b.WriteString(f.googleInput.View())
	b.WriteString("\n")
	b.WriteString(styles.Help.Render("Enter confirm  Esc cancel"))
	return styles.ActivePanel.Render(b.String())
}
