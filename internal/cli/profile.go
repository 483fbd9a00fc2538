package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// newProfileCommand creates the profile command group.
func newProfileCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "profile",
		Short:   "View and edit your profile",
		GroupID: groupAccount,
	}
	cmd.AddCommand(
		newProfileShowCommand(c),
		newProfileUpdateCommand(c),
		newProfileAvatarCommand(c),
	)
	return cmd
}

func newProfileShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show your profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := requireSession(c)
			if err != nil {
				return err
			}
			out, err := c.ShowProfileUseCase(sess).Execute(cmd.Context())
			if err != nil {
				return err
			}
			printProfile(cmd, &out.Profile)
			return nil
		},
	}
}

func printProfile(cmd *cobra.Command, p *domain.Profile) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Username:\t%s\n", p.Username)
	fmt.Fprintf(w, "Email:\t%s\n", p.Email)
	if p.FullName != "" {
		fmt.Fprintf(w, "Full name:\t%s\n", p.FullName)
	}
	if p.Bio != "" {
		fmt.Fprintf(w, "Bio:\t%s\n", p.Bio)
	}
	if p.Phone != "" {
		fmt.Fprintf(w, "Phone:\t%s\n", p.Phone)
	}
	if p.AvatarURL != "" {
		fmt.Fprintf(w, "Avatar:\t%s\n", p.AvatarURL)
	}
	if !p.CreatedAt.IsZero() {
		fmt.Fprintf(w, "Member since:\t%s\n", p.CreatedAt.Format("2006-01-02"))
	}
	w.Flush()
}

func newProfileUpdateCommand(c *app.Container) *cobra.Command {
	var opts struct {
		FullName string
		Bio      string
		Phone    string
	}

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update profile fields",
		Long: `Update profile fields. Only the flags you pass are changed.

Examples:
  taskdeck profile update --full-name "Alice A" --bio "Plans everything"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := requireSession(c)
			if err != nil {
				return err
			}

			var update domain.ProfileUpdate
			if cmd.Flags().Changed("full-name") {
				update.FullName = &opts.FullName
			}
			if cmd.Flags().Changed("bio") {
				update.Bio = &opts.Bio
			}
			if cmd.Flags().Changed("phone") {
				update.Phone = &opts.Phone
			}

			out, err := c.UpdateProfileUseCase(sess).Execute(cmd.Context(), usecase.UpdateProfileInput{Update: update})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile updated")
			printProfile(cmd, &out.Profile)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.FullName, "full-name", "", "Display name")
	cmd.Flags().StringVar(&opts.Bio, "bio", "", "Short bio")
	cmd.Flags().StringVar(&opts.Phone, "phone", "", "Phone number")
	return cmd
}

func newProfileAvatarCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "avatar <file>",
		Short: "Upload a profile image (JPEG, PNG or WebP, max 5MB)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := requireSession(c)
			if err != nil {
				return err
			}
			out, err := c.UploadAvatarUseCase(sess).Execute(cmd.Context(), usecase.UploadAvatarInput{Path: args[0]})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Avatar updated: %s\n", out.Profile.AvatarURL)
			return nil
		},
	}
}
