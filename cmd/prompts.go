package cmd

import (
	"context"

	"github.com/spf13/cobra"

	networkview "github.com/bnema/rememble/internal/adapters/render/network"
	"github.com/bnema/rememble/internal/domain"
)

type promptsOutput struct {
	ProfileID string   `json:"profile_id"`
	Prompts   []string `json:"prompts"`
	Generated bool     `json:"generated"`
}

func newPromptsCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "prompts <profile-id>",
		Short: "Suggest three prompts for a note to a catalog profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := app.store.GetProfileToInvite(cmd.Context(), domain.ProfileID(args[0]))
			if err != nil {
				return err
			}

			var prompts []string
			err = withAssistant(cmd.Context(), app, cmd.ErrOrStderr(), asJSON, "Asking for note prompts...", func(ctx context.Context) error {
				prompts = app.notes.GenerateNotePrompts(ctx, profile)
				return nil
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, promptsOutput{
					ProfileID: string(profile.ID),
					Prompts:   prompts,
					Generated: app.notes.Enabled(),
				})
			}

			rendered, err := networkview.RenderPrompts(profile, prompts, app.notes.Enabled())
			return writeRendered(cmd, rendered, err)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON output")

	return cmd
}
