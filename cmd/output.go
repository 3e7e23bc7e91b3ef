package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	networkview "github.com/bnema/rememble/internal/adapters/render/network"
	"github.com/bnema/rememble/internal/domain"
)

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeRendered(cmd *cobra.Command, rendered string, err error) error {
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func (a *app) renderOptions() networkview.RenderOptions {
	return networkview.RenderOptions{
		Now:           a.now(),
		MaxNoteLength: a.store.MaxNoteLength(),
	}
}

// resolveConnection accepts a connection id or the profile id of a connection.
func resolveConnection(app *app, ref string) (domain.Connection, error) {
	ref = strings.TrimSpace(ref)
	conn, err := app.store.GetConnectionByID(domain.ConnectionID(ref))
	if err == nil {
		return conn, nil
	}
	if !errors.Is(err, domain.ErrConnectionNotFound) {
		return domain.Connection{}, err
	}

	if conn, ok := app.store.ConnectionForProfile(domain.ProfileID(ref)); ok {
		return conn, nil
	}

	return domain.Connection{}, fmt.Errorf("%w: %s", domain.ErrConnectionNotFound, ref)
}
