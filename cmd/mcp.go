package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	mcpadapter "github.com/bnema/rememble/internal/adapters/mcp"
	"github.com/bnema/rememble/internal/version"
)

func newMCPCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the network to MCP clients over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.logger.Info("mcp server starting", zap.Strings("tools", mcpadapter.ToolNames()))
			return mcpadapter.Run(mcpadapter.NewHandlers(app.store, app.notes, app.logger), version.Version)
		},
	}
}
