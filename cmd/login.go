// ABOUTME: Login command for the classroom CLI
// ABOUTME: Scriptable email/password sign-in that stores the session

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/markwhitaker/classroom-cli/internal/client"
	"github.com/markwhitaker/classroom-cli/internal/errmsg"
	"github.com/markwhitaker/classroom-cli/internal/session"
	"github.com/markwhitaker/classroom-cli/internal/validate"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with email and password",
	Long: `Sign in without the interactive interface and store the session locally.

Meant for scripts; run the bare "classroom" command for the interactive form.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runLogin(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password")
	rootCmd.AddCommand(loginCmd)
}

// runLogin signs in and stores the session, returning an exit code
func runLogin(ctx context.Context, w io.Writer) int {
	email := strings.TrimSpace(loginEmail)
	if email == "" || loginPassword == "" {
		fmt.Fprintln(w, "Error: --email and --password are required")
		return 2
	}
	if !validate.Email(email) {
		fmt.Fprintln(w, "Error: "+validate.MsgInvalidEmail)
		return 2
	}

	c := client.New(GetAPIURL())
	resp, err := c.Login(ctx, email, loginPassword)
	if err != nil {
		fmt.Fprintf(w, "Error: %s\n", errmsg.FromError(err))
		return 2
	}

	sess := session.Session{UserID: resp.UserID, Role: session.Role(resp.Role)}
	store := session.NewFileStore(GetConfigDir())
	if err := store.Put(sess); err != nil {
		fmt.Fprintf(w, "Error: could not store session: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(sess, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintf(w, "Signed in as %s (%s)\n", sess.UserID, sess.Role.Display())
	}
	return 0
}
