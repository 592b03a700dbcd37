package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/versioncompare/internal/config"
	"github.com/nao1215/versioncompare/internal/i18n"
	"github.com/nao1215/versioncompare/internal/log"
	"github.com/nao1215/versioncompare/internal/pipeline"
	"github.com/nao1215/versioncompare/internal/report"
	"github.com/nao1215/versioncompare/internal/siteinfo"
)

// errNoURL is returned when both URLs are blank.
var errNoURL = errors.New("no wiki URL given (specify at least one api.php URL)")

// NewCompareCmd creates the compare command.
func NewCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <url1> [url2]",
		Short: "Compare the versions of two MediaWiki sites",
		Long: `Compare fetches the siteinfo of both wikis, first url1 and then url2,
and prints MediaWiki, PHP, database and extension versions side by side.

Each URL is a wiki's api.php endpoint or a base URL that already points
at it. If url2 is omitted, the local wiki from the configuration is used.

Examples:
  # Compare two wikis
  versioncompare compare https://en.wikipedia.org/w/api.php https://www.mediawiki.org/w/api.php

  # Only show extensions whose versions differ, as Markdown
  versioncompare compare -s -F markdown https://a.example/w/api.php https://b.example/w/api.php

  # Show a character-level diff of every differing row
  versioncompare compare --diff https://a.example/w/api.php`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runCompareCmd,
	}

	cmd.Flags().BoolP("hide-diff", "d", false,
		"Hide extensions whose versions differ")
	cmd.Flags().BoolP("hide-match", "s", false,
		"Hide extensions whose versions match")
	cmd.Flags().BoolP("ignore-version", "i", false,
		"Treat extensions installed on both wikis as matching, whatever their version")
	cmd.Flags().StringP("format", "F", "",
		"Output format: text, markdown, json or html (default: text)")
	cmd.Flags().StringP("output", "o", "",
		"Write the comparison to the specified file path (creates directories if needed)")
	cmd.Flags().Bool("diff", false,
		"Add a character-level diff line under each differing row (text format only)")

	return cmd
}

// runCompareCmd executes the compare command.
func runCompareCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	var url2 string
	if len(args) > 1 {
		url2 = args[1]
	}
	url1, url2, ok := cfg.ResolveURLs(args[0], url2)
	if !ok {
		return errNoURL
	}

	inlineDiff, err := cmd.Flags().GetBool("diff")
	if err != nil {
		return err
	}

	logger := log.NewSecureLogger(cmd.ErrOrStderr(), cfg.Verbose)
	tr := i18n.New(i18n.Match(cfg.Language))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var buf bytes.Buffer
	if err := runCompare(ctx, cfg, url1, url2, &buf, tr, inlineDiff, logger); err != nil {
		return err
	}
	return writeOutput(cmd.OutOrStdout(), cfg.OutputFile, buf.Bytes())
}

// runCompare fetches both wikis and renders the comparison into w.
// Nothing is written when a fetch fails.
func runCompare(ctx context.Context, cfg *config.Config, url1, url2 string, w io.Writer, tr *i18n.Translator, inlineDiff bool, logger *slog.Logger) error {
	fetcher, err := siteinfo.NewFetcherFromConfig(cfg, logger)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	writer, err := newReportWriter(cfg.Format, w, tr, inlineDiff)
	if err != nil {
		return err
	}

	logger.Info("starting comparison", "url1", url1, "url2", url2, "format", cfg.Format)

	job := pipeline.NewJob(url1, url2, cfg.Options)
	p := pipeline.DefaultPipeline(fetcher, writer, pipeline.WithLogger(logger))

	var fetchErr *siteinfo.FetchError
	switch err := p.Execute(ctx, job); {
	case err == nil:
		return nil
	case errors.As(err, &fetchErr):
		return fmt.Errorf("%s: %w", tr.T(i18n.MsgFetchFailed, fetchErr.URL), fetchErr.Err)
	default:
		return err
	}
}

// newReportWriter returns the writer for the named format. The inline
// diff only exists for the text format.
func newReportWriter(name string, w io.Writer, tr *i18n.Translator, inlineDiff bool) (report.Writer, error) {
	format, err := report.ParseFormat(name)
	if err != nil {
		return nil, err
	}
	if format == report.FormatText {
		return report.NewSimpleWriter(w, tr, report.WithInlineDiff(inlineDiff)), nil
	}
	return report.NewWriter(format, w, tr)
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}
	return writeFile(path, data)
}

// writeFile creates the parent directories of path and writes data with
// owner-only permissions, replacing any existing file.
func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return false
	}
	return verbose
}

// getStringFlag retrieves a string flag that may be missing when a
// subcommand runs without the root command.
func getStringFlag(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return v
}

// buildConfig loads the configuration file and environment, then applies
// the command line flags on top.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(getStringFlag(cmd, "config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	cfg.Verbose = getVerboseFlag(cmd)
	if lang := getStringFlag(cmd, "lang"); lang != "" {
		cfg.Language = lang
	}

	flags := cmd.Flags()
	if flags.Changed("hide-diff") {
		if cfg.Options.HideDiff, err = flags.GetBool("hide-diff"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("hide-match") {
		if cfg.Options.HideMatch, err = flags.GetBool("hide-match"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("ignore-version") {
		if cfg.Options.IgnoreVersion, err = flags.GetBool("ignore-version"); err != nil {
			return nil, err
		}
	}
	if format := getStringFlag(cmd, "format"); format != "" {
		cfg.Format = format
	}
	cfg.OutputFile = getStringFlag(cmd, "output")
	if listen := getStringFlag(cmd, "listen"); listen != "" {
		cfg.ListenAddr = listen
	}

	return cfg, nil
}
