// ABOUTME: Tests for root command configuration
// ABOUTME: Verifies flag, environment, and default precedence

package cmd

import (
	"strings"
	"testing"
)

func TestGetAPIURL_Default(t *testing.T) {
	apiURL = ""
	t.Setenv("CLASSROOM_API_URL", "")

	if got := GetAPIURL(); got != defaultAPIURL {
		t.Errorf("expected default %s, got %s", defaultAPIURL, got)
	}
}

func TestGetAPIURL_EnvOverridesDefault(t *testing.T) {
	apiURL = ""
	t.Setenv("CLASSROOM_API_URL", "http://env.example.com")

	if got := GetAPIURL(); got != "http://env.example.com" {
		t.Errorf("expected env URL, got %s", got)
	}
}

func TestGetAPIURL_FlagOverridesEnv(t *testing.T) {
	apiURL = "http://flag.example.com"
	defer func() { apiURL = "" }()
	t.Setenv("CLASSROOM_API_URL", "http://env.example.com")

	if got := GetAPIURL(); got != "http://flag.example.com" {
		t.Errorf("expected flag URL, got %s", got)
	}
}

func TestGetConfigDir_FlagWins(t *testing.T) {
	configDir = "/tmp/custom"
	defer func() { configDir = "" }()

	if got := GetConfigDir(); got != "/tmp/custom" {
		t.Errorf("expected flag dir, got %s", got)
	}
}

func TestGetConfigDir_DefaultIsClassroomScoped(t *testing.T) {
	configDir = ""
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	got := GetConfigDir()
	if !strings.HasSuffix(got, "classroom") {
		t.Errorf("expected a classroom-scoped dir, got %s", got)
	}
}

func TestIsJSONOutput(t *testing.T) {
	jsonOutput = false
	if IsJSONOutput() {
		t.Error("expected JSON output to be off by default")
	}
	jsonOutput = true
	defer func() { jsonOutput = false }()
	if !IsJSONOutput() {
		t.Error("expected JSON output to be on")
	}
}
