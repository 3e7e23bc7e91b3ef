package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	networkview "github.com/bnema/rememble/internal/adapters/render/network"
	"github.com/bnema/rememble/internal/application"
	"github.com/bnema/rememble/internal/domain"
)

func newInvitationsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invitations",
		Short: "Review invitations waiting for you",
	}

	cmd.AddCommand(
		newInvitationsListCmd(app),
		newInvitationsAcceptCmd(app),
	)

	return cmd
}

func newInvitationsListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pending invitations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			invitations, err := app.store.PendingInvitations(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				views := make([]application.InvitationView, 0, len(invitations))
				for _, invitation := range invitations {
					views = append(views, application.NewInvitationView(invitation))
				}
				return writeJSON(cmd, views)
			}

			rendered, err := networkview.RenderInvitations(invitations)
			return writeRendered(cmd, rendered, err)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON output")

	return cmd
}

func newInvitationsAcceptCmd(app *app) *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   "accept <profile-id>",
		Short: "Accept a pending invitation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := app.store.AcceptInvitation(cmd.Context(), domain.ProfileID(args[0]), note)
			if err != nil {
				return err
			}
			app.warnIfNotPersisted(cmd.ErrOrStderr())

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Connected with %s (%s)\n", conn.Profile.Name, conn.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&note, "note", "", "Private note (defaults to \"Accepted connection with <name>.\")")

	return cmd
}
