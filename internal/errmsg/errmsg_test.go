// ABOUTME: Tests for backend error translation
// ABOUTME: Each known backend string maps to exactly one user-facing message

package errmsg

import (
	"errors"
	"testing"

	"github.com/markwhitaker/classroom-cli/internal/client"
)

func TestTranslate_KnownMessages(t *testing.T) {
	tests := []struct {
		backend string
		want    string
	}{
		{"User not found", InvalidCredentials},
		{"Invalid credentials", InvalidCredentials},
		{"Email already exists", AlreadyRegistered},
		{"User signed up with Google. Please use Google Sign-In.", UseGoogleSignIn},
		{"Too many requests", RateLimited},
	}
	for _, tt := range tests {
		if got := Translate(tt.backend); got != tt.want {
			t.Errorf("Translate(%q) = %q, want %q", tt.backend, got, tt.want)
		}
	}
}

func TestTranslate_CredentialFailuresShareOneMessage(t *testing.T) {
	// A failed sign-in must not reveal whether the email exists.
	if Translate("User not found") != Translate("Invalid credentials") {
		t.Error("expected both credential failures to map to the same message")
	}
}

func TestTranslate_UnknownFallsBack(t *testing.T) {
	for _, backend := range []string{"", "Internal server error", "user not found"} {
		if got := Translate(backend); got != Fallback {
			t.Errorf("Translate(%q) = %q, want fallback", backend, got)
		}
	}
}

func TestFromError_APIError(t *testing.T) {
	err := &client.APIError{StatusCode: 409, Message: "Email already exists"}
	if got := FromError(err); got != AlreadyRegistered {
		t.Errorf("FromError = %q, want %q", got, AlreadyRegistered)
	}
}

func TestFromError_TransportError(t *testing.T) {
	err := &client.APIError{Message: "dial tcp: connection refused"}
	if got := FromError(err); got != Fallback {
		t.Errorf("FromError = %q, want fallback", got)
	}
}

func TestFromError_PlainError(t *testing.T) {
	if got := FromError(errors.New("boom")); got != Fallback {
		t.Errorf("FromError = %q, want fallback", got)
	}
}
