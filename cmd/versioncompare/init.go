package main

import (
	"embed"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nao1215/versioncompare/internal/config"
)

//go:embed templates/versioncompare.yaml
var configTemplate embed.FS

// configFileName is the default configuration file name.
const configFileName = config.DefaultConfigFile

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new versioncompare configuration file",
		Long: `Initialize creates a new .versioncompare configuration file in the current directory.

The generated file documents every setting:
- The local wiki used when only one URL is given
- Timeouts, proxy and User-Agent of outgoing requests
- Default comparison flags and output format

Examples:
  # Create .versioncompare in current directory
  versioncompare init

  # Create config file at a specific path
  versioncompare init -o ~/.config/versioncompare/config.yaml

  # Force overwrite existing file
  versioncompare init -f

  # Print the template
  versioncompare init --stdout`,
		Args: cobra.NoArgs,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", configFileName,
		"Output file path for the configuration")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing configuration file")
	cmd.Flags().Bool("stdout", false,
		"Print the configuration template instead of writing a file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	content, err := configTemplate.ReadFile("templates/versioncompare.yaml")
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	toStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}
	if toStdout {
		_, err := cmd.OutOrStdout().Write(content)
		return err
	}

	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}
	if err := writeConfigFile(outputPath, content, force); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created configuration file: %s\n", outputPath)
	fmt.Fprintln(out, "\nEdit this file to configure:")
	fmt.Fprintln(out, "  - The local wiki (server and scriptPath)")
	fmt.Fprintln(out, "  - Proxy and timeouts for siteinfo requests")
	fmt.Fprintln(out, "  - Default comparison flags")
	return nil
}

// writeConfigFile writes content to path with owner-only permissions,
// creating parent directories. An existing file is only replaced when
// force is set.
func writeConfigFile(path string, content []byte, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", path)
		}
	}

	return writeFile(path, content)
}
