package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/rememble/internal/application"
	"github.com/bnema/rememble/internal/domain"
)

func newInviteCmd(app *app) *cobra.Command {
	var note string
	var message string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "invite <profile-id>",
		Short: "Connect to a catalog profile and keep a private note about them",
		Long:  "invite connects to a catalog profile. When the profile is already connected only its private note is replaced, and only when --note is given.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			invite := application.InviteCommand{
				ProfileID:       domain.ProfileID(args[0]),
				StandardMessage: message,
			}
			if cmd.Flags().Changed("note") {
				invite.PrivateNote = &note
			}

			result, err := app.store.Invite(cmd.Context(), invite)
			if err != nil {
				return err
			}
			app.warnIfNotPersisted(cmd.ErrOrStderr())

			if asJSON {
				return writeJSON(cmd, application.NewConnectionView(result.Connection))
			}
			if result.NoteUpdated {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Already connected to %s, private note updated (%s)\n", result.Connection.Profile.Name, result.Connection.ID)
				return err
			}
			if result.AlreadyConnected {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Already connected to %s, private note kept (%s)\n", result.Connection.Profile.Name, result.Connection.ID)
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Invitation sent to %s (%s)\n", result.Connection.Profile.Name, result.Connection.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&note, "note", "", "Private note kept with the connection")
	cmd.Flags().StringVar(&message, "message", "", "Message sent with the invitation")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON output")

	return cmd
}
