package main

import (
	"context"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/net/netutil"

	"github.com/nutricheck/labelscan/internal/api"
	"github.com/nutricheck/labelscan/pkg/labelscan"
	"github.com/nutricheck/labelscan/pkg/labelscan/config"
	"github.com/nutricheck/labelscan/pkg/labelscan/store"
	"github.com/nutricheck/labelscan/pkg/labelscan/store/sqlite"
	"github.com/nutricheck/labelscan/pkg/labelscan/taxonomy"
	"github.com/nutricheck/labelscan/pkg/labelscan/textextract"
	"github.com/nutricheck/labelscan/pkg/labelscan/textextract/tesseract"
)

func main() {
	configPath := flag.String("config", "labelscan.yaml", "Config file path")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("config error", "err", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.ParseLevel(cfg.Server.LogLevel),
	})))

	ctx := context.Background()

	tax := loadTaxonomy(cfg)
	st := openStore(ctx, cfg, tax)

	var extractor textextract.Extractor
	switch cfg.Extractor.Engine {
	case "tesseract":
		extractor = tesseract.New(cfg.Extractor.Languages...)
	default:
		extractor = textextract.NewCanned()
	}

	scanner := labelscan.New(labelscan.Options{
		Store:      st,
		Extractor:  extractor,
		Taxonomy:   tax,
		Confidence: cfg.Confidence,
	})
	defer scanner.Close()

	handler := api.New(scanner, cfg.Server.MaxUploadBytes)

	mux := http.NewServeMux()
	handler.Register(mux)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ln, err := net.Listen("tcp", cfg.Server.Addr)
	if err != nil {
		slog.Error("listen error", "addr", cfg.Server.Addr, "err", err)
		os.Exit(1)
	}
	if cfg.Server.MaxConns > 0 {
		ln = netutil.LimitListener(ln, cfg.Server.MaxConns)
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)

		shutCtx, shutCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutCancel()

		if err := srv.Shutdown(shutCtx); err != nil {
			slog.Error("shutdown error", "err", err)
		}
	}()

	slog.Info("starting label scan server",
		"addr", cfg.Server.Addr,
		"extractor", extractor.Name(),
		"persistence", st != nil,
		"taxonomy_entries", tax.Len(),
	)
	if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "err", err)
		os.Exit(1)
	}
}

// loadTaxonomy builds the in-process reference set: the built-in entries
// plus any overlay file, appended after so built-in entries win ties.
func loadTaxonomy(cfg config.Config) *taxonomy.Taxonomy {
	entries := taxonomy.Default().Entries()
	if cfg.TaxonomyPath != "" {
		overlay, err := config.LoadTaxonomyOverlay(cfg.TaxonomyPath)
		if err != nil {
			slog.Warn("taxonomy overlay skipped", "path", cfg.TaxonomyPath, "err", err)
		} else {
			entries = append(entries, overlay...)
		}
	}
	return taxonomy.New(entries)
}

// openStore opens the configured SQLite store and seeds the reference set.
// Store trouble is never fatal: the pipeline runs on the in-process taxonomy
// without persistence.
func openStore(ctx context.Context, cfg config.Config, tax *taxonomy.Taxonomy) store.Store {
	if cfg.StorePath == "" {
		return nil
	}

	st, err := sqlite.Open(ctx, cfg.StorePath)
	if err != nil {
		slog.Warn("store unavailable, continuing without persistence", "path", cfg.StorePath, "err", err)
		return nil
	}

	if err := st.UpsertIngredients(ctx, tax.Entries()); err != nil {
		slog.Warn("reference ingredient seeding failed", "err", err)
	}
	return st
}
