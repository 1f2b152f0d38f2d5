// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gclookup/gclookup/internal/config"
	"github.com/gclookup/gclookup/internal/lookup"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	verbose bool
	cfgFile string
}

func (g *globalFlags) loadOptions() config.LoadOptions {
	return config.LoadOptions{EnvFilePath: g.cfgFile}
}

// NewRootCommand builds the full command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	var (
		globals globalFlags
		lf      lookupFlags
	)

	rootCmd := &cobra.Command{
		Use:   "lookup",
		Short: "Look up Genesys Cloud users, queues and interactions",
		Long: TitleStyle.Render("lookup") + SubtitleStyle.Render(" - Genesys Cloud lookups from your terminal") + `

lookup resolves user and queue GUIDs to names, finds users and queues by
name, and prints the participants of an interaction. Without flags it asks
what to look up.

Credentials are read from ~/.gclookup/.env (see 'lookup setup').

` + SubtitleStyle.Render("Examples:") + `
  lookup -u 6f4a1c2e-0d3b-4a5e-9f8a-1b2c3d4e5f60   Resolve a user id
  lookup -u id1,id2 -q queue-id                    Several ids at once
  lookup -n "Jane"                                 Find users by name
  lookup -Q support                                Find queues by name
  lookup -i conversation-id                        Show an interaction
  lookup install                                   Install into ~/bin`,
		Args: cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if globals.verbose {
				app.Logger.SetLevel(log.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			p := lookupParams{
				stdout:   cmd.OutOrStdout(),
				stderr:   cmd.ErrOrStderr(),
				app:      app,
				loadOpts: globals.loadOptions(),
				query: lookup.Query{
					UserIDs:     lf.userIDs,
					UserName:    lf.userName,
					QueueIDs:    lf.queueIDs,
					QueueName:   lf.queueName,
					Interaction: lf.interaction,
				},
				copy: lf.copyMode(),
			}
			return reportError(p.stderr, runLookup(cmd.Context(), p), globals.verbose)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&globals.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&globals.cfgFile, "config", "", "credentials file (default is $HOME/.gclookup/.env)")

	lf.register(rootCmd)

	rootCmd.AddCommand(newInstallCommand(app, &globals))
	rootCmd.AddCommand(newSetupCommand(app, &globals))
	rootCmd.AddCommand(newConfigCommand(app, &globals))
	rootCmd.AddCommand(newCompletionCommand())

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI. This is called by main.main().
func Execute() {
	rootCmd := NewRootCommand(NewApp(Dependencies{}))

	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(handleError),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(exitUser)
	}
}

// handleError lets fang render usage and flag errors. ExitErrors were
// already reported by the command.
func handleError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}
