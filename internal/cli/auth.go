package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// newLoginCommand creates the login command.
func newLoginCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Username string
		Password string
		Google   bool
	}

	cmd := &cobra.Command{
		Use:     "login",
		Short:   "Sign in to the task service",
		GroupID: groupAuth,
		Long: `Sign in and store the session credential for subsequent commands.

Examples:
  # Interactive password prompt
  taskdeck login --username alice

  # Sign in with a Google account
  taskdeck login --google`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.Google {
				uc := c.GoogleLoginUseCase()
				out, err := uc.Execute(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", out.Username)
				return nil
			}

			username := opts.Username
			if username == "" {
				var err error
				username, err = promptLine(cmd, "Username: ")
				if err != nil {
					return err
				}
			}
			password := opts.Password
			if password == "" {
				var err error
				password, err = promptPassword(cmd, "Password: ")
				if err != nil {
					return err
				}
			}

			uc := c.LoginUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.LoginInput{Username: username, Password: password})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", out.Username)
			if !out.ExpiresAt.IsZero() {
				fmt.Fprintf(cmd.OutOrStdout(), "Session expires %s\n", out.ExpiresAt.Local().Format("2006-01-02 15:04"))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Username, "username", "u", "", "Account username")
	cmd.Flags().StringVarP(&opts.Password, "password", "p", "", "Account password (prompted if omitted)")
	cmd.Flags().BoolVar(&opts.Google, "google", false, "Sign in with a Google account")
	return cmd
}

// newRegisterCommand creates the register command.
func newRegisterCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Username string
		Email    string
		Password string
	}

	cmd := &cobra.Command{
		Use:     "register",
		Short:   "Create a new account",
		GroupID: groupAuth,
		RunE: func(cmd *cobra.Command, _ []string) error {
			username := opts.Username
			if username == "" {
				var err error
				username, err = promptLine(cmd, "Username: ")
				if err != nil {
					return err
				}
			}
			email := opts.Email
			if email == "" {
				var err error
				email, err = promptLine(cmd, "Email: ")
				if err != nil {
					return err
				}
			}
			password := opts.Password
			if password == "" {
				var err error
				password, err = promptPassword(cmd, "Password: ")
				if err != nil {
					return err
				}
			}

			uc := c.RegisterUseCase()
			if _, err := uc.Execute(cmd.Context(), usecase.RegisterInput{
				Registration: domain.Registration{
					Username: username,
					Email:    email,
					Password: password,
				},
			}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Account created. Run 'taskdeck login' to sign in.\n")
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Username, "username", "u", "", "Account username")
	cmd.Flags().StringVarP(&opts.Email, "email", "e", "", "Account email")
	cmd.Flags().StringVarP(&opts.Password, "password", "p", "", "Account password (prompted if omitted)")
	return cmd
}

// newLogoutCommand creates the logout command.
func newLogoutCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "logout",
		Short:   "Sign out and discard the stored credential",
		GroupID: groupAuth,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.LogoutUseCase()
			if _, err := uc.Execute(cmd.Context()); err != nil {
				return err
			}
			c.DisposeSession()
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

// promptLine reads one line of input.
func promptLine(cmd *cobra.Command, prompt string) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptPassword reads a password without echoing when stdin is a
// terminal, falling back to a plain line read otherwise (tests, pipes).
func promptPassword(cmd *cobra.Command, prompt string) (string, error) {
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.OutOrStdout(), prompt)
		raw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
	return promptLine(cmd, prompt)
}
