// ABOUTME: Logout command for the classroom CLI
// ABOUTME: Clears the stored session; a no-op when nobody is signed in

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/markwhitaker/classroom-cli/internal/session"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the stored session",
	Run: func(cmd *cobra.Command, args []string) {
		exitCode := runLogout(os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

// runLogout clears the stored session and returns an exit code
func runLogout(w io.Writer) int {
	store := session.NewFileStore(GetConfigDir())
	if err := store.Clear(); err != nil {
		fmt.Fprintf(w, "Error: could not clear session: %v\n", err)
		return 2
	}
	fmt.Fprintln(w, "Signed out.")
	return 0
}
