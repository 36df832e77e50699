// ABOUTME: Root command for the classroom CLI
// ABOUTME: Handles global flags, configuration, and launching the TUI

package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/markwhitaker/classroom-cli/internal/client"
	"github.com/markwhitaker/classroom-cli/internal/session"
	"github.com/markwhitaker/classroom-cli/internal/tui"
	"github.com/markwhitaker/classroom-cli/internal/tui/debuglog"
)

var (
	apiURL     string
	configDir  string
	jsonOutput bool
	debugLogs  bool
)

const defaultAPIURL = "http://localhost:8080"

// rootCmd is the base command. Run bare, it opens the interactive sign-in.
var rootCmd = &cobra.Command{
	Use:   "classroom",
	Short: "Terminal client for the Classroom platform",
	Long: `classroom is a terminal client for the Classroom platform.

Run it without a subcommand to open the interactive sign-in / sign-up screen.
Subcommands cover the scriptable pieces: login, logout, whoami, reset-password.

Environment Variables:
  CLASSROOM_API_URL  Backend API URL (default: http://localhost:8080)`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debugLogs {
			debuglog.Error("init debug log", debuglog.Init(GetConfigDir()))
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store := session.NewFileStore(GetConfigDir())
		return tui.Run(client.New(GetAPIURL()), store)
	},
}

// Execute runs the root command
func Execute() error {
	// A .env in the working directory can supply CLASSROOM_API_URL.
	_ = godotenv.Load()
	defer debuglog.Close()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend API URL (overrides CLASSROOM_API_URL)")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Directory for the stored session (default: XDG config dir)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
	rootCmd.PersistentFlags().BoolVar(&debugLogs, "debug", false, "Write a debug log to the config directory")
}

// GetAPIURL returns the API URL from flag, env, or default (in priority order)
func GetAPIURL() string {
	if apiURL != "" {
		return apiURL
	}
	if envURL := os.Getenv("CLASSROOM_API_URL"); envURL != "" {
		return envURL
	}
	return defaultAPIURL
}

// GetConfigDir returns the config directory from flag or the XDG default
func GetConfigDir() string {
	if configDir != "" {
		return configDir
	}
	return session.DefaultConfigDir()
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}
