// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/gclookup/gclookup/internal/install"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// installParams bundles the dependencies and flags for the install command,
// so runInstall can be tested against a temporary home directory.
type installParams struct {
	stdout    io.Writer
	logger    *log.Logger
	home      string
	source    string
	shell     string
	shellPath string
}

// newInstallCommand creates the `lookup install` command.
func newInstallCommand(app *App, globals *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install lookup into ~/bin and add ~/bin to your PATH",
		Long: `Install lookup into ~/bin and add ~/bin to your PATH.

The installer creates ~/bin when needed, copies ./lookup over
~/bin/lookup and appends the line

  export PATH="$HOME/bin:$PATH"

to ~/.zshrc unless it is already there. Every step is safe to repeat.`,
		Example: `  # Install the binary in the current directory
  ./lookup install

  # Install a binary from elsewhere and register it in ~/.bashrc
  lookup install --source ./dist/lookup --shell bash`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			source, _ := cmd.Flags().GetString("source")
			home, _ := cmd.Flags().GetString("home")
			shell, _ := cmd.Flags().GetString("shell")

			p := installParams{
				stdout:    cmd.OutOrStdout(),
				logger:    app.Logger,
				home:      home,
				source:    source,
				shell:     shell,
				shellPath: os.Getenv("SHELL"),
			}
			return reportError(cmd.ErrOrStderr(), runInstall(cmd.Context(), p), globals.verbose)
		},
	}

	cmd.Flags().String("source", install.ArtifactName, "binary to install")
	cmd.Flags().String("home", "", "home directory (default is $HOME)")
	cmd.Flags().String("shell", string(install.ShellZsh), "profile to update: zsh, bash or auto")

	return cmd
}

// runInstall is the core install logic, separated from Cobra for testability.
func runInstall(ctx context.Context, p installParams) error {
	shell, err := install.ParseShell(p.shell)
	if err != nil {
		return err
	}

	in, err := install.New(install.Options{
		Home:      p.home,
		Source:    p.source,
		Shell:     shell,
		ShellPath: p.shellPath,
		Stdout:    p.stdout,
		Logger:    p.logger,
	})
	if err != nil {
		return err
	}

	res, err := in.Run(ctx)
	if err != nil {
		return err
	}
	p.logger.Debug("installed", "target", res.Target, "profile", res.Profile, "path_added", res.PathAdded)
	return nil
}
