// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"

	"github.com/spf13/cobra"
)

var completionGenerators = map[string]func(root *cobra.Command, w io.Writer) error{
	"zsh":        (*cobra.Command).GenZshCompletion,
	"bash":       (*cobra.Command).GenBashCompletion,
	"fish":       func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	"powershell": (*cobra.Command).GenPowerShellCompletionWithDesc,
}

// newCompletionCommand creates the `lookup completion` command.
func newCompletionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion zsh|bash|fish|powershell",
		Short: "Print a shell completion script",
		Long: `Print a shell completion script for lookup.

` + SubtitleStyle.Render("Zsh (next to the PATH line 'lookup install' added):") + `
  echo 'eval "$(lookup completion zsh)"' >> ~/.zshrc

` + SubtitleStyle.Render("Bash:") + `
  echo 'eval "$(lookup completion bash)"' >> ~/.bashrc

` + SubtitleStyle.Render("Fish:") + `
  lookup completion fish > ~/.config/fish/completions/lookup.fish
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"zsh", "bash", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return completionGenerators[args[0]](cmd.Root(), cmd.OutOrStdout())
		},
	}
}
