package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	genaiassistant "github.com/bnema/rememble/internal/adapters/assistant/genai"
	"github.com/bnema/rememble/internal/config"
)

func newAuthCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the note assistant API key",
	}

	cmd.AddCommand(newAuthSetKeyCmd(app), newAuthRemoveKeyCmd(app), newAuthStatusCmd(app))

	return cmd
}

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

func newAuthSetKeyCmd(app *app) *cobra.Command {
	var value string

	cmd := &cobra.Command{
		Use:   "set-key",
		Short: "Store the Gemini API key in the secret store",
		Long:  "set-key stores the Gemini API key. Without --value the key is read from the terminal without echo, or from the first line of stdin.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if value == "" {
				var err error
				value, err = readAPIKey(cmd)
				if err != nil {
					return err
				}
			}

			value = strings.TrimSpace(value)
			if value == "" {
				return errors.New("API key must not be empty")
			}
			if err := app.secretStore.Put(cmd.Context(), genaiassistant.APIKeySecret, value); err != nil {
				return fmt.Errorf("store API key: %w", err)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "API key stored as %s\n", genaiassistant.APIKeySecret)
			return err
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "Gemini API key (prompted for when omitted)")

	return cmd
}

func readAPIKey(cmd *cobra.Command) (string, error) {
	if in, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(in.Fd())) {
		if _, err := fmt.Fprint(cmd.ErrOrStderr(), "Gemini API key: "); err != nil {
			return "", err
		}
		key, err := readPassword(int(in.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("read API key: %w", err)
		}
		return string(key), nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read API key: %w", err)
	}

	return line, nil
}

func newAuthRemoveKeyCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-key",
		Short: "Remove the Gemini API key from the secret store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.secretStore.Delete(cmd.Context(), genaiassistant.APIKeySecret); err != nil {
				return fmt.Errorf("remove API key: %w", err)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "API key removed")
			return err
		},
	}
}

func newAuthStatusCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether the note assistant is enabled",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !app.notes.Enabled() {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "assistant: disabled (set %s or run `rememble auth set-key`); fallback prompts are used\n", genaiassistant.APIKeyEnv)
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "assistant: enabled\nmodel: %s\nkey source: %s\n", app.cfg.GetString(config.KeyAssistantModel), app.keySource)
			return err
		},
	}
}
