package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for versioncompare.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "versioncompare",
		Short: "Compare the software versions of two MediaWiki sites",
		Long: `versioncompare reads the siteinfo of two MediaWiki sites through their
api.php endpoints and compares MediaWiki, PHP, database and extension
versions side by side.

When only one URL is given, the other one defaults to the api.php of the
local wiki (see "server" and "scriptPath" in the configuration file).`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .versioncompare in current or home directory)")
	cmd.PersistentFlags().String("lang", "",
		"Language of the output (e.g. en, ja); defaults to the configuration or $LANG")

	cmd.AddCommand(NewCompareCmd())
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
