package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bnema/rememble/internal/adapters/legacy"
)

func newImportCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <export.json>",
		Short: "Merge a browser localStorage export into the network",
		Long:  "import reads a JSON object holding the " + legacy.ConnectionsKey + " and " + legacy.SentInvitationsKey + " entries of a browser export and merges them. Profiles already connected are skipped.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			network, decoded, err := legacy.ReadFile(args[0])
			if err != nil {
				return err
			}
			app.logger.Debug("legacy export decoded",
				zap.Int("connections", len(network.Connections)),
				zap.Int("dropped", decoded.Dropped),
				zap.Int("duplicates", decoded.Duplicates))

			report, err := app.store.Import(cmd.Context(), network)
			if err != nil {
				app.warnPersistFailure(cmd.ErrOrStderr(), err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %d connections, skipped %d, dropped %d invalid records, %d new sent invitations\n",
				report.Added, report.Skipped+decoded.Duplicates, decoded.Dropped, report.Invitations)
			return err
		},
	}
}
