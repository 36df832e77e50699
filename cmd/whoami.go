// ABOUTME: Whoami command for the classroom CLI
// ABOUTME: Shows the stored session and the dashboard it maps to

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/markwhitaker/classroom-cli/internal/session"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	Run: func(cmd *cobra.Command, args []string) {
		exitCode := runWhoami(os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

// runWhoami prints the stored session and returns an exit code
func runWhoami(w io.Writer) int {
	store := session.NewFileStore(GetConfigDir())
	sess, err := store.Get()
	if err != nil {
		fmt.Fprintf(w, "Error: could not read session: %v\n", err)
		return 2
	}
	if sess == nil {
		fmt.Fprintln(w, "Not signed in.")
		return 1
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(sess, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintf(w, `User:      %s
Role:      %s
Dashboard: %s
`, sess.UserID, sess.Role.Display(), sess.Role.DashboardRoute())
	return 0
}
