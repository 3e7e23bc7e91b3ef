package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	networkview "github.com/bnema/rememble/internal/adapters/render/network"
	"github.com/bnema/rememble/internal/application"
)

func newNetworkCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "network",
		Short: "Browse and prune your connections",
	}

	cmd.AddCommand(
		newNetworkListCmd(app),
		newNetworkShowCmd(app),
		newNetworkRemoveCmd(app),
	)

	return cmd
}

func newNetworkListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List connections, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			network := app.store.Network()
			if asJSON {
				return writeJSON(cmd, application.NewNetworkView(network))
			}

			rendered, err := networkview.RenderNetwork(
				application.RecentFirst(network.Connections),
				network.SentInvitations,
				app.renderOptions(),
			)
			return writeRendered(cmd, rendered, err)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON output")

	return cmd
}

func newNetworkShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <connection-id|profile-id>",
		Short: "Show one connection with its profile and private note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := resolveConnection(app, args[0])
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, application.NewConnectionView(conn))
			}

			rendered, err := networkview.RenderConnection(conn, app.renderOptions())
			return writeRendered(cmd, rendered, err)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON output")

	return cmd
}

func newNetworkRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <connection-id|profile-id>",
		Aliases: []string{"rm"},
		Short:   "Remove a connection and forget the invitation sent to it",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := resolveConnection(app, args[0])
			if err != nil {
				return err
			}

			if err := app.store.DeleteConnection(cmd.Context(), conn.ID); err != nil {
				return err
			}
			app.warnIfNotPersisted(cmd.ErrOrStderr())

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Removed %s (%s)\n", conn.Profile.Name, conn.ID)
			return err
		},
	}
}
