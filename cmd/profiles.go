package cmd

import (
	"github.com/spf13/cobra"

	networkview "github.com/bnema/rememble/internal/adapters/render/network"
	"github.com/bnema/rememble/internal/application"
	"github.com/bnema/rememble/internal/domain"
)

func newProfilesCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "Browse the profile catalog",
	}

	cmd.AddCommand(
		newProfilesListCmd(app),
		newProfilesShowCmd(app),
	)

	return cmd
}

func newProfilesListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog profiles and whether they were invited",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profiles, err := app.store.Profiles(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				views := make([]application.ProfileView, 0, len(profiles))
				for _, profile := range profiles {
					views = append(views, application.NewProfileView(profile, app.store.IsInvitationSent(profile.ID)))
				}
				return writeJSON(cmd, views)
			}

			rendered, err := networkview.RenderProfiles(profiles, app.store.IsInvitationSent)
			return writeRendered(cmd, rendered, err)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON output")

	return cmd
}

func newProfilesShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <profile-id>",
		Short: "Show a catalog profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := app.store.GetProfileToInvite(cmd.Context(), domain.ProfileID(args[0]))
			if err != nil {
				return err
			}

			invited := app.store.IsInvitationSent(profile.ID)
			if asJSON {
				return writeJSON(cmd, application.NewProfileView(profile, invited))
			}

			rendered, err := networkview.RenderProfile(profile, invited)
			return writeRendered(cmd, rendered, err)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON output")

	return cmd
}
