package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/nao1215/versioncompare/internal/config"
)

func TestNewServeCmd(t *testing.T) {
	t.Parallel()

	cmd := NewServeCmd()
	if cmd.Use != "serve" {
		t.Errorf("unexpected Use: got %q", cmd.Use)
	}
	if cmd.Flags().Lookup("json-log") == nil {
		t.Error("expected json-log flag")
	}
	flag := cmd.Flags().Lookup("listen")
	if flag == nil {
		t.Fatal("expected listen flag")
	}
	if flag.Shorthand != "l" {
		t.Errorf("expected shorthand 'l', got %q", flag.Shorthand)
	}
}

func TestServe(t *testing.T) {
	t.Parallel()

	a, b := newTestWiki(t, siteinfoA), newTestWiki(t, siteinfoB)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}

	cfg := config.NewConfig()
	cfg.Timeout = 5 * time.Second
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, cfg, ln, logger)
	}()

	q := url.Values{}
	q.Set("url1", a.apiURL())
	q.Set("url2", b.apiURL())
	resp, err := http.Get("http://" + ln.Addr().String() + "/Special:VersionCompare?" + q.Encode())
	if err != nil {
		cancel()
		t.Fatalf("request failed: %v", err)
	}
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if !strings.Contains(string(body), "version-compare-table") {
		t.Errorf("expected comparison table in page, got:\n%s", body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("serve() error = %v", err)
		}
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRunServeCmdInvalidConfig(t *testing.T) {
	t.Parallel()

	cfgPath := writeTestConfig(t, "ftp://wiki.example")
	_, err := runRoot(t, "serve", "-c", cfgPath, "-l", "127.0.0.1:0")
	if !errors.Is(err, config.ErrInvalidServer) {
		t.Errorf("expected ErrInvalidServer, got %v", err)
	}
}
