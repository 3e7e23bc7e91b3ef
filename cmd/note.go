package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	networkview "github.com/bnema/rememble/internal/adapters/render/network"
)

const noteWidth = 80

func newNoteCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Read and edit the private note kept with a connection",
	}

	cmd.AddCommand(
		newNoteShowCmd(app),
		newNoteSetCmd(app),
		newNoteDeleteCmd(app),
		newNoteDraftCmd(app),
	)

	return cmd
}

func newNoteShowCmd(app *app) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "show <connection-id|profile-id>",
		Short: "Show the private note of a connection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := resolveConnection(app, args[0])
			if err != nil {
				return err
			}
			if !conn.HasNote() {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "No private note for %s.\n", conn.Profile.Name)
				return err
			}
			if raw {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), conn.PrivateNote)
				return err
			}

			rendered, err := networkview.RenderNote("Note about "+conn.Profile.Name, conn.PrivateNote, noteWidth)
			return writeRendered(cmd, rendered, err)
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print the note without markdown rendering")

	return cmd
}

func newNoteSetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <connection-id|profile-id> <note>",
		Short: "Replace the private note of a connection",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := resolveConnection(app, args[0])
			if err != nil {
				return err
			}

			if err := app.store.UpdateConnectionNote(cmd.Context(), conn.ID, args[1]); err != nil {
				return err
			}
			app.warnIfNotPersisted(cmd.ErrOrStderr())

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Note saved for %s\n", conn.Profile.Name)
			return err
		},
	}
}

func newNoteDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <connection-id|profile-id>",
		Short: "Clear the private note of a connection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := resolveConnection(app, args[0])
			if err != nil {
				return err
			}

			if err := app.store.DeleteConnectionNote(cmd.Context(), conn.ID); err != nil {
				return err
			}
			app.warnIfNotPersisted(cmd.ErrOrStderr())

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Note deleted for %s\n", conn.Profile.Name)
			return err
		},
	}
}

func newNoteDraftCmd(app *app) *cobra.Command {
	var history string
	var save bool

	cmd := &cobra.Command{
		Use:   "draft <connection-id|profile-id>",
		Short: "Draft a private note from the profile and your interaction history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := resolveConnection(app, args[0])
			if err != nil {
				return err
			}

			var draft string
			err = withAssistant(cmd.Context(), app, cmd.ErrOrStderr(), false, "Drafting note...", func(ctx context.Context) error {
				draft = app.notes.DraftPrivateNote(ctx, conn, history)
				return nil
			})
			if err != nil {
				return err
			}

			if _, err := fmt.Fprintln(cmd.OutOrStdout(), draft); err != nil {
				return err
			}
			if !save {
				return nil
			}

			if err := app.store.UpdateConnectionNote(cmd.Context(), conn.ID, draft); err != nil {
				return err
			}
			app.warnIfNotPersisted(cmd.ErrOrStderr())

			_, err = fmt.Fprintf(cmd.ErrOrStderr(), "Draft saved as the note for %s\n", conn.Profile.Name)
			return err
		},
	}

	cmd.Flags().StringVar(&history, "history", "", "Interaction history to summarize (defaults to the current note)")
	cmd.Flags().BoolVar(&save, "save", false, "Save the draft as the private note")

	return cmd
}
