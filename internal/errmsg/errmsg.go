// ABOUTME: Translates backend error strings into user-facing messages
// ABOUTME: Unknown strings fall back to a single generic message

package errmsg

import (
	"errors"

	"github.com/markwhitaker/classroom-cli/internal/client"
)

// User-facing messages. The sign-in and sign-up failures that would reveal
// whether an email is registered share one message.
const (
	InvalidCredentials = "Invalid email or password."
	AlreadyRegistered  = "This email is already registered. Please sign in instead."
	UseGoogleSignIn    = "This account uses Google Sign-In. Please continue with Google."
	RateLimited        = "Too many attempts. Please wait a moment and try again."
	GoogleFailed       = "Google login failed. Please try again."
	Fallback           = "Something went wrong. Please try again."
)

// byBackendMessage maps exact backend error strings to their user-facing
// messages. The keys mirror what the auth service actually sends.
var byBackendMessage = map[string]string{
	"User not found":       InvalidCredentials,
	"Invalid credentials":  InvalidCredentials,
	"Email already exists": AlreadyRegistered,
	"User signed up with Google. Please use Google Sign-In.": UseGoogleSignIn,
	"Too many requests": RateLimited,
}

// Translate maps an exact backend message to its user-facing text. Unmapped
// strings (including transport errors) get the fallback.
func Translate(backendMessage string) string {
	if msg, ok := byBackendMessage[backendMessage]; ok {
		return msg
	}
	return Fallback
}

// FromError translates a gateway failure for display.
func FromError(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return Translate(apiErr.Message)
	}
	return Fallback
}
