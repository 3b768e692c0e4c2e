package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mockbok-dev/mockbok/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "mockbok",
		Short:   "Deterministic synthetic Swedish bookkeeping data",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newQueryCommand())

	return rootCmd
}
