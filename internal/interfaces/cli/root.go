// Package cli wires configuration, storage and the use cases into the
// serve, tui and version commands.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	backend    string
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "pokedex",
		Short:        "Pokedex record service",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default: ./config.toml, ./config/config.toml, /etc/pokedex/config.toml)")
	cmd.PersistentFlags().StringVarP(&opts.backend, "backend", "b", "", "storage backend: memory|sqlite|postgres|airtable|redis (overrides storage.backend)")

	cmd.AddCommand(
		serveCmd(opts),
		tuiCmd(opts),
		versionCmd(),
	)
	return cmd
}
