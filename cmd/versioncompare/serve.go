package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nao1215/versioncompare/internal/config"
	"github.com/nao1215/versioncompare/internal/log"
	"github.com/nao1215/versioncompare/internal/server"
)

// shutdownTimeout bounds how long in-flight comparisons may run after a
// shutdown signal.
const shutdownTimeout = 10 * time.Second

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the version comparison page over HTTP",
		Long: `Serve starts an HTTP server with the Special:VersionCompare page.

The page is available at "/" and "/Special:VersionCompare" and accepts
the query parameters url1, url2, hidediff, hidematch, ignoreversion and
uselang. A blank URL defaults to the local wiki from the configuration.

Examples:
  # Listen on the default address
  versioncompare serve

  # Listen on all interfaces with JSON request logs
  versioncompare serve -l :8080 --json-log -v`,
		Args: cobra.NoArgs,
		RunE: runServeCmd,
	}

	cmd.Flags().StringP("listen", "l", "",
		fmt.Sprintf("Address to listen on (default: %s)", config.DefaultListenAddr))
	cmd.Flags().Bool("json-log", false,
		"Write logs as JSON lines instead of text")

	return cmd
}

// runServeCmd executes the serve command.
func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	jsonLog, err := cmd.Flags().GetBool("json-log")
	if err != nil {
		return err
	}
	logger := log.NewSecureLogger(cmd.ErrOrStderr(), cfg.Verbose)
	if jsonLog {
		logger = log.NewSecureJSONLogger(cmd.ErrOrStderr(), cfg.Verbose)
	}
	slog.SetDefault(logger)

	ln, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.ListenAddr, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "Listening on http://%s\n", ln.Addr())
	return serve(ctx, cfg, ln, logger)
}

// serve runs the comparison server on ln until ctx is cancelled, then
// shuts it down gracefully.
func serve(ctx context.Context, cfg *config.Config, ln net.Listener, logger *slog.Logger) error {
	s, err := server.New(cfg, server.WithLogger(logger))
	if err != nil {
		_ = ln.Close()
		return err
	}
	httpServer := s.HTTPServer()

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server", "addr", ln.Addr().String())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
