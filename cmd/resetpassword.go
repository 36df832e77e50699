// ABOUTME: Reset-password command for the classroom CLI
// ABOUTME: Opens the reset screen with the token parsed from an emailed link

package cmd

import (
	"net/url"
	"path"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/markwhitaker/classroom-cli/internal/client"
	"github.com/markwhitaker/classroom-cli/internal/tui/resetpw"
)

var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password [link-or-token]",
	Short: "Reset your password using an emailed reset link",
	Long: `Reset your password using the link from a password-reset email.

Accepts either the full link or just its token. Without a valid token the
screen only explains how to get one; it cannot mint tokens itself.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		token := ""
		if len(args) == 1 {
			token = tokenFromArg(args[0])
		}

		m := resetpw.New(client.New(GetAPIURL()), token)
		p := tea.NewProgram(m, tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(resetPasswordCmd)
}

// tokenFromArg extracts the reset token from a full link (?token=... or a
// trailing path segment) or passes a bare token through.
func tokenFromArg(arg string) string {
	arg = strings.TrimSpace(arg)
	u, err := url.Parse(arg)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return arg
	}
	if t := u.Query().Get("token"); t != "" {
		return t
	}
	if seg := path.Base(strings.TrimRight(u.Path, "/")); seg != "" && seg != "reset-password" && seg != "." && seg != "/" {
		return seg
	}
	return ""
}
