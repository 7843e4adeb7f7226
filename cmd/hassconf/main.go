// cmd/hassconf/main.go
//
// hassconf – resolves and prints the Home Assistant connection config.
//
// Life-cycle
// ----------
//
//  1. Load env vars (-env-file → host-wide file → .env fallback).
//
//  2. Start the logger (daily rotating file under -log-dir, or stderr).
//
//  3. Resolve the configuration once (config.Get), which also reconciles
//     HASS_HOST and HASS_BASE_URL in the process environment.
//
//  4. Optionally validate it (-check), then print it to stdout as
//     KEY=value lines or JSON (-json).
//
//  5. With -metrics-addr, keep serving Prometheus /metrics until SIGINT or
//     SIGTERM.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/don4of4/homeassistant-mcp/internal/config"
	"github.com/don4of4/homeassistant-mcp/internal/logger"
	"github.com/don4of4/homeassistant-mcp/internal/server"
)

const serverEnvPath = "/usr/local/etc/homeassistant-mcp/hass.env"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "hassconf: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("hassconf", flag.ContinueOnError)
	envFile := fs.String("env-file", "", "env file to load before resolving (default: host-wide file, then ./.env)")
	logDir := fs.String("log-dir", "", "write JSON logs under <dir>/logs instead of stderr only")
	debug := fs.Bool("debug", false, "enable debug logging")
	check := fs.Bool("check", false, "validate the resolved config and exit non-zero on failure")
	asJSON := fs.Bool("json", false, "print the config as JSON")
	metricsAddr := fs.String("metrics-addr", "", "serve Prometheus /metrics on this address after printing")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := loadEnv(*envFile); err != nil {
		return err
	}

	var log *zap.SugaredLogger
	if *logDir != "" {
		var err error
		if log, err = logger.New(*logDir, runningInTTY(), *debug); err != nil {
			return fmt.Errorf("start logger: %w", err)
		}
	} else {
		log = logger.Console(*debug)
	}
	defer func() { _ = log.Sync() }()

	cfg := config.Get()

	if *check {
		if err := cfg.Validate(); err != nil {
			log.Errorw("config invalid", "err", err)
			return fmt.Errorf("invalid config: %w", err)
		}
		log.Infow("config valid")
	}

	if err := render(stdout, cfg, *asJSON); err != nil {
		return fmt.Errorf("print config: %w", err)
	}

	if *metricsAddr == "" {
		return nil
	}
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return serveMetrics(ctx, *metricsAddr, log)
}

// loadEnv loads an explicit env file, which must exist.  Without one it
// prefers the host-wide file and falls back to ./.env; both are optional.
// Variables already present in the environment are never overridden.
func loadEnv(path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load env file %s: %w", path, err)
		}
		return nil
	}
	if _, err := os.Stat(serverEnvPath); err == nil {
		_ = godotenv.Load(serverEnvPath)
		return nil
	}
	_ = godotenv.Load()
	return nil
}

// render prints cfg in a fixed key order, or as indented JSON.
func render(w io.Writer, cfg config.Config, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	}
	_, err := fmt.Fprintf(w, "BASE_URL=%s\nTOKEN=%s\nSOCKET_URL=%s\nSOCKET_TOKEN=%s\n",
		cfg.BaseURL, cfg.Token, cfg.SocketURL, cfg.SocketToken)
	return err
}

func serveMetrics(ctx context.Context, addr string, log *zap.SugaredLogger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return server.Run(ctx, server.New(addr, mux), log)
}

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
