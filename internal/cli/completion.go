package cli

import (
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

// completionGen writes the completion script of one shell.
type completionGen func(root *cobra.Command, w io.Writer, descriptions bool) error

var completionShells = map[string]completionGen{
	"bash": func(root *cobra.Command, w io.Writer, desc bool) error {
		return root.GenBashCompletionV2(w, desc)
	},
	"zsh": func(root *cobra.Command, w io.Writer, desc bool) error {
		if desc {
			return root.GenZshCompletion(w)
		}
		return root.GenZshCompletionNoDesc(w)
	},
	"fish": func(root *cobra.Command, w io.Writer, desc bool) error {
		return root.GenFishCompletion(w, desc)
	},
	"powershell": func(root *cobra.Command, w io.Writer, desc bool) error {
		if desc {
			return root.GenPowerShellCompletionWithDesc(w)
		}
		return root.GenPowerShellCompletion(w)
	},
}

// completionCommand prints a shell completion script to stdout.
func (c *CLI) completionCommand() *cobra.Command {
	var noDesc bool
	shells := slices.Sorted(maps.Keys(completionShells))

	cmd := &cobra.Command{
		Use:   "completion {" + strings.Join(shells, "|") + "}",
		Short: "Generate shell completion scripts",
		Long: `Print a completion script for the given shell.

  source <(bundlecheck completion bash)
  bundlecheck completion zsh > "${fpath[1]}/_bundlecheck"
  bundlecheck completion fish > ~/.config/fish/completions/bundlecheck.fish
  bundlecheck completion powershell | Out-String | Invoke-Expression`,
		DisableFlagsInUseLine: true,
		ValidArgs:             shells,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return completionShells[args[0]](cmd.Root(), cmd.OutOrStdout(), !noDesc)
		},
	}
	cmd.Flags().BoolVar(&noDesc, "no-descriptions", false, "leave flag and command descriptions out of completions")

	return cmd
}
