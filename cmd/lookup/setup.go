// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/gclookup/gclookup/internal/config"

	"github.com/spf13/cobra"
)

type setupParams struct {
	stdout   io.Writer
	prompter config.Prompter
	envFile  string
	force    bool
}

// newSetupCommand creates the `lookup setup` command.
func newSetupCommand(app *App, globals *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Store Genesys Cloud credentials",
		Long: `Store Genesys Cloud credentials.

Prompts for the region, CLIENT_ID and CLIENT_SECRET of an OAuth client
using the Client Credentials grant and writes them to
~/.gclookup/.env (mode 0600). An existing file is kept unless --force
is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			force, _ := cmd.Flags().GetBool("force")
			envFile, err := globals.loadOptions().EnvFile()
			if err != nil {
				return reportError(cmd.ErrOrStderr(), err, globals.verbose)
			}

			p := setupParams{
				stdout:   cmd.OutOrStdout(),
				prompter: app.Prompts,
				envFile:  envFile,
				force:    force,
			}
			return reportError(cmd.ErrOrStderr(), runSetup(cmd.Context(), p), globals.verbose)
		},
	}

	cmd.Flags().BoolP("force", "f", false, "replace existing credentials")

	return cmd
}

// runSetup prompts for credentials and reports where they went.
func runSetup(ctx context.Context, p setupParams) error {
	written, err := config.Setup(ctx, config.SetupOptions{
		EnvFilePath: p.envFile,
		Force:       p.force,
		Prompter:    p.prompter,
		Stdout:      p.stdout,
	})
	if err != nil {
		return err
	}

	if written {
		fmt.Fprintln(p.stdout, SuccessStyle.Render("Saved credentials to "+p.envFile))
		return nil
	}
	fmt.Fprintf(p.stdout, "Credentials already exist at %s; use --force to replace them.\n", p.envFile)
	return nil
}
