package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/mrwick1/sketchflow/internal/board"
	"github.com/mrwick1/sketchflow/internal/config"
	"github.com/mrwick1/sketchflow/internal/document"
	"github.com/mrwick1/sketchflow/internal/engine"
	"github.com/mrwick1/sketchflow/internal/export"
	"github.com/mrwick1/sketchflow/internal/fonts"
	"github.com/mrwick1/sketchflow/internal/live"
	mw "github.com/mrwick1/sketchflow/internal/middleware"
	"github.com/mrwick1/sketchflow/internal/store"
	"github.com/mrwick1/sketchflow/internal/stroke"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	level, _ := cfg.Level()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))
	logger := slog.Default()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, closeStore, err := openStore(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("open store", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	newFactory := func() *document.Factory {
		f := document.NewFactory()
		f.Measurer = fonts.Measurer{}
		f.FontSize = cfg.FontSize
		return f
	}
	outline := stroke.Outline{Size: cfg.StrokeSize}
	hits := engine.DefaultHitTester
	hits.HandleTolerance = cfg.HandleTolerance

	boardService := board.NewService(st, newFactory(), logger)
	boardHandler := board.NewHandler(boardService)

	if cfg.SeedSample {
		b, err := boardService.CreateSample(ctx, "Sample")
		if err != nil {
			slog.Error("seed sample board", "error", err)
			os.Exit(1)
		}
		slog.Info("sample board seeded", "board", b.ID)
	}

	exportOpts := export.DefaultOptions()
	exportOpts.Padding = cfg.ExportPadding
	exportOpts.Outline = outline
	exportHandler := export.NewHandler(boardService, exportOpts, func(err error) bool {
		return errors.Is(err, board.ErrNotFound)
	})

	origins := mw.SplitOrigins(cfg.AllowedOrigins)
	hub := live.NewHub(logger)
	liveHandler := live.NewHandler(hub, boardService, func() *engine.Engine {
		return engine.New(
			engine.WithFactory(newFactory()),
			engine.WithOutline(outline),
			engine.WithHitTester(hits),
			engine.WithLogger(logger),
		)
	}, mw.HostPatterns(origins), cfg.SaveTimeout, logger)

	r := mux.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.Logger)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	boardHandler.Register(api)
	exportHandler.Register(api)

	liveHandler.Register(r)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      mw.CORS(origins)(r), // outside the router so preflights reach it
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		// Save open sessions before connections drop.
		hub.Stop(shutdownCtx)
		srv.Shutdown(shutdownCtx)
	}()

	slog.Info("server starting", "addr", addr, "store", storeKind(cfg.DatabaseURL))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

// openStore picks Postgres when a database URL is configured and memory
// otherwise.
func openStore(ctx context.Context, databaseURL string) (store.Store, func(), error) {
	if databaseURL == "" {
		return store.NewMemory(), func() {}, nil
	}
	pool, err := store.NewPool(ctx, databaseURL)
	if err != nil {
		return nil, nil, err
	}
	pg := store.NewPostgres(pool)
	if err := pg.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}
	return pg, pool.Close, nil
}

func storeKind(databaseURL string) string {
	if databaseURL == "" {
		return "memory"
	}
	return "postgres"
}
