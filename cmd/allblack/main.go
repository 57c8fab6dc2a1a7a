package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/claude/allblack/internal/config"
	"github.com/claude/allblack/internal/dashboard"
	"github.com/claude/allblack/internal/kv"
	"github.com/claude/allblack/internal/logging"
	"github.com/claude/allblack/internal/mcp"
	"github.com/claude/allblack/internal/metrics"
	"github.com/claude/allblack/internal/prefs"
	"github.com/claude/allblack/internal/records"
	"github.com/claude/allblack/internal/server"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"tailscale.com/tsnet"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "", "path to config file (defaults apply when empty)")
	migrateOnly := flag.Bool("migrate-only", false, "run postgres migrations and exit")
	flag.Parse()

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, logCloser := logging.Setup(logging.Params{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		JSON:       cfg.Log.JSON,
	})
	defer logCloser.Close()
	log.Info("All Black starting", "version", Version, "storage", cfg.Storage.Backend)

	if *migrateOnly {
		if cfg.Storage.Backend != kv.BackendPostgres {
			log.Error("migrate-only needs the postgres backend", "backend", cfg.Storage.Backend)
			os.Exit(1)
		}
		if err := kv.RunMigrations(cfg.Database.DSN(), cfg.Database.Migrations); err != nil {
			log.Error("migration failed", "error", err)
			os.Exit(1)
		}
		log.Info("migrate-only: exiting")
		return
	}

	// Open preference storage
	ctx := context.Background()
	store, err := kv.Open(ctx, cfg.KVOptions())
	if err != nil {
		log.Error("failed to open storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	log.Info("storage ready", "backend", cfg.Storage.Backend)

	reg := metrics.NewRegistry()
	m := metrics.NewManager(reg)

	p := prefs.New(store, prefs.WithLogger(log), prefs.WithMetrics(m))
	p.Load(ctx)
	defer p.Close()

	tests := records.NewStore()
	if cfg.Seed {
		if err := tests.Seed(); err != nil {
			log.Error("seeding tests failed", "error", err)
			os.Exit(1)
		}
	}

	dash := dashboard.New(tests, p, m)

	// Create server
	srv := server.New(dash, m, log)
	srv.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv.Handle("/mcp", mcpserver.NewStreamableHTTPServer(mcp.New(dash, Version, log, m)))

	// Start server: tsnet or plain HTTP
	var listener net.Listener

	if cfg.Tailscale.Enabled {
		tsServer := &tsnet.Server{
			Hostname: cfg.Tailscale.Hostname,
			Dir:      cfg.Tailscale.StateDir,
		}
		if err := tsServer.Start(); err != nil {
			log.Error("tsnet start failed", "error", err)
			os.Exit(1)
		}
		defer tsServer.Close()

		listener, err = tsServer.Listen("tcp", ":80")
		if err != nil {
			log.Error("tsnet listen failed", "error", err)
			os.Exit(1)
		}
		log.Info("tsnet server starting", "hostname", cfg.Tailscale.Hostname)
	} else {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		listener, err = net.Listen("tcp", addr)
		if err != nil {
			log.Error("listen failed", "addr", addr, "error", err)
			os.Exit(1)
		}
		log.Info("server starting", "addr", addr, "mode", "plain http")
	}

	httpSrv := &http.Server{Handler: srv}

	go func() {
		if err := httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutting down", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}
	if err := p.Flush(shutdownCtx); err != nil {
		log.Error("flushing preferences", "error", err)
	}
	log.Info("server stopped")
}
