// ABOUTME: Client-side validation rules for the authentication forms
// ABOUTME: Format checks are pure functions; required-field checks use validator/v10

package validate

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// emailRe matches the local@domain.tld shape the backend accepts: a non-empty
// local part, "@", a non-empty domain, ".", a non-empty TLD.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// passwordSymbols is the fixed punctuation set a password may (and must, at
// least once) contain. Any character outside letters, digits, and this set
// makes the password invalid.
const passwordSymbols = "@$!%*?&"

// Inline messages shown under each input.
const (
	MsgInvalidEmail    = "Please enter a valid email address"
	MsgInvalidPassword = "Password must be at least 8 characters with one letter, one number, and one special character"
	MsgInvalidName     = "Please enter your name"
)

// requiredMessages are shown when a submit is attempted with blank fields,
// keyed by form field name.
var requiredMessages = map[string]string{
	"email":    "Email is required",
	"password": "Password is required",
	"name":     "Name is required",
	"role":     "Please select a role",
}

// Email reports whether s has the three-segment local/domain/tld shape.
func Email(s string) bool {
	return emailRe.MatchString(s)
}

// Password reports whether s is at least 8 characters and contains at least
// one letter, one digit, and one symbol from the fixed set.
func Password(s string) bool {
	if len(s) < 8 {
		return false
	}
	var hasLetter, hasDigit, hasSymbol bool
	for _, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			hasLetter = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		default:
			return false
		}
	}
	return hasLetter && hasDigit && hasSymbol
}

// Name reports whether s is non-empty after trimming whitespace.
func Name(s string) bool {
	return strings.TrimSpace(s) != ""
}

// Field returns the inline error for a field value, or "" when the value is
// valid. An empty value also returns "" - blanks are only flagged at submit
// time, never while the user is still typing.
func Field(name, value string) string {
	if value == "" {
		return ""
	}
	switch name {
	case "email":
		if !Email(value) {
			return MsgInvalidEmail
		}
	case "password":
		if !Password(value) {
			return MsgInvalidPassword
		}
	case "name":
		if !Name(value) {
			return MsgInvalidName
		}
	}
	return ""
}

// Credentials is the transient form state owned by the auth form. It is
// cleared whenever the form switches between sign-in and sign-up.
type Credentials struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

var v = newValidator()

func newValidator() *validator.Validate {
	vd := validator.New()
	// Report errors under the JSON field names the form tracks.
	vd.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return vd
}

// Required validates only the named struct fields (Go field names, e.g.
// "Email") and returns a message per missing one, keyed by form field name.
// Sign-in checks email and password; sign-up checks all four.
func Required(creds Credentials, fields ...string) map[string]string {
	err := v.StructPartial(creds, fields...)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(errs))
	for _, fe := range errs {
		out[fe.Field()] = requiredMessages[fe.Field()]
	}
	return out
}
