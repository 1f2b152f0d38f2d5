// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/gclookup/gclookup/internal/config"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `lookup config` command tree.
func newConfigCommand(app *App, globals *globalFlags) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect lookup configuration",
		Long: `Inspect lookup configuration.

Credentials are stored in ~/.gclookup/.env. CLIENT_ID, CLIENT_SECRET,
GENESYS_CLOUD_REGION, LOOKUP_REQUEST_DELAY and LOOKUP_HTTP_TIMEOUT set in
the environment take precedence over the file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			err := showConfig(cmd.Context(), cmd.OutOrStdout(), app.Config, globals.loadOptions())
			return reportError(cmd.ErrOrStderr(), err, globals.verbose)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show credentials file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			path, err := globals.loadOptions().EnvFile()
			if err != nil {
				return reportError(cmd.ErrOrStderr(), err, globals.verbose)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	return cfgCmd
}

func showConfig(ctx context.Context, w io.Writer, provider config.Provider, opts config.LoadOptions) error {
	cfg, err := provider.Load(ctx, opts)
	if err != nil {
		return err
	}
	path, err := opts.EnvFile()
	if err != nil {
		return err
	}

	keyStyle := KeyStyle
	valueStyle := SuccessStyle
	unset := SubtitleStyle.Render("(not set)")

	value := func(s string) string {
		if s == "" {
			return unset
		}
		return valueStyle.Render(s)
	}

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)
	if fileExists(path) {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), path)
	} else {
		fmt.Fprintf(w, "%s: %s %s\n", keyStyle.Render("Config file"), path, SubtitleStyle.Render("(not found)"))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render(config.KeyClientID), value(cfg.ClientID))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render(config.KeyClientSecret), value(cfg.MaskedSecret()))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render(config.KeyRegion), value(cfg.Region.String()))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render(config.KeyRequestDelay), value(cfg.RequestDelay.String()))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render(config.KeyHTTPTimeout), value(cfg.HTTPTimeout.String()))
	return nil
}
