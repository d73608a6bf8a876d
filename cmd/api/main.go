package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eduradarbackend/internal/chart"
	"eduradarbackend/internal/config"
	"eduradarbackend/internal/render"
	"eduradarbackend/internal/store"
	"eduradarbackend/internal/tabular"
	transporthttp "eduradarbackend/internal/transport/http"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	staticSource, err := chart.NewStaticFileSource("sample", cfg.StaticDataPath)
	if err != nil {
		log.Fatalf("init static source: %v", err)
	}

	ingestSource := chart.NewIngestSource("ingest")

	sources, err := chart.NewSourceRegistry(staticSource, ingestSource)
	if err != nil {
		log.Fatalf("init source registry: %v", err)
	}

	if cfg.TabularAPIKey != "" {
		client := tabular.NewClient(cfg.TabularAPIKey,
			tabular.WithBaseURL(cfg.TabularBaseURL),
			tabular.WithRetry(cfg.FetchMaxRetries, 500*time.Millisecond),
		)
		remote, err := chart.NewRemoteSource("remote", client, cfg.TabularTable)
		if err != nil {
			log.Fatalf("init remote source: %v", err)
		}

		var upstream chart.Source = remote
		if cfg.SnapshotDBPath != "" {
			snapshots, err := store.Open(cfg.SnapshotDBPath)
			if err != nil {
				log.Fatalf("init snapshot store: %v", err)
			}
			cached, err := store.NewCachedSource(remote, snapshots)
			if err != nil {
				log.Fatalf("init cached source: %v", err)
			}
			upstream = cached
		}
		sources.Add(upstream)
		log.Printf("remote tabular source enabled for table %s", cfg.TabularTable)
	}

	theme, err := render.LoadTheme(cfg.ThemePath)
	if err != nil {
		log.Fatalf("load theme: %v", err)
	}

	engine := chart.NewEngine(theme.Width/2, theme.Height/2, chart.OuterRingRadius())

	pipeline, err := chart.NewPipeline(sources, engine)
	if err != nil {
		log.Fatalf("init pipeline: %v", err)
	}

	server := transporthttp.NewServer(pipeline, render.NewRenderer(theme), ingestSource)

	httpServer := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      withLogging(withCORS(server.Routes())),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("signals radar API listening on %s", cfg.ListenAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Printf("signal received: %s, shutting down", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		duration := time.Since(start)

		if r.Method == http.MethodOptions {
			log.Printf("[CORS preflight] %s %s %s", r.Method, r.URL.Path, duration)
		} else {
			log.Printf("%s %s %s", r.Method, r.URL.Path, duration)
		}
	})
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
