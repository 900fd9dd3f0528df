package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AbdulNafisa/adobe-hackathon/internal/api"
	"github.com/AbdulNafisa/adobe-hackathon/internal/collection"
	"github.com/AbdulNafisa/adobe-hackathon/internal/config"
	"github.com/AbdulNafisa/adobe-hackathon/internal/lexicon"
	"github.com/AbdulNafisa/adobe-hackathon/internal/outline"
	"github.com/AbdulNafisa/adobe-hackathon/internal/pipeline"
	"github.com/AbdulNafisa/adobe-hackathon/internal/relevance"
	"github.com/AbdulNafisa/adobe-hackathon/internal/section"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	lex := lexicon.Default()
	if cfg.LexiconPath != "" {
		var err error
		lex, err = lexicon.Load(cfg.LexiconPath)
		if err != nil {
			log.Error("invalid lexicon", "path", cfg.LexiconPath, "error", err)
			os.Exit(1)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Wire the extraction and ranking cores.
	builder := outline.NewBuilder(outline.NewClassifier(lex.StructuralKeywords))
	ranker := collection.NewRanker(
		section.NewSegmenter(lex.HeaderIndicators),
		relevance.NewScorer(lex),
		log,
	)
	ranker.TopN = cfg.TopSectionsPerDoc

	// Initialize pipeline.
	orch := pipeline.NewOrchestrator(cfg, builder, log)
	orch.Start(ctx)

	// Initialize HTTP server.
	srv := api.NewServer(orch, ranker, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		orch.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting docsift server", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
