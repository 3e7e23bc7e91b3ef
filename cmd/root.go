package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type rootOptions struct {
	configFile string
	verbose    bool
	ephemeral  bool
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "rememble",
		Short:         "rememble: remember the people you connect with",
		Long:          "rememble keeps your connections, the private notes you wrote about them and the invitations you sent, and can ask Gemini for help writing those notes.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if skipWiring(cmd) {
				return nil
			}

			return app.wire(cmd.Context(), *opts, cmd.ErrOrStderr())
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			app.close()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "Config file (default ~/.rememble/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&opts.ephemeral, "ephemeral", false, "Keep the network in memory only for this run")

	rootCmd.AddCommand(
		newVersionCmd(),
		newNetworkCmd(app),
		newProfilesCmd(app),
		newInviteCmd(app),
		newInvitationsCmd(app),
		newNoteCmd(app),
		newPromptsCmd(app),
		newAuthCmd(app),
		newImportCmd(app),
		newMCPCmd(app),
	)

	return rootCmd
}

const skipWiringAnnotation = "rememble/skip-wiring"

func skipWiring(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if _, skip := c.Annotations[skipWiringAnnotation]; skip {
			return true
		}
		if c.Name() == "help" || c.Name() == "completion" {
			return true
		}
	}

	return false
}

func newLogger(level string, verbose bool, output io.Writer) (*zap.Logger, error) {
	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	if verbose {
		atomicLevel = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(zapcore.AddSync(output)),
		atomicLevel,
	)

	return zap.New(core), nil
}
