// Package app wires the FAQ bot's components from configuration. It is shared
// by the API server and the operator CLI.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"

	"faqbot/internal/config"
	"faqbot/internal/matcher"
	"faqbot/internal/service"
	"faqbot/internal/storage"
	"faqbot/internal/vectorstore"
)

// App holds the wired components.
type App struct {
	DB       *sql.DB
	Repo     *storage.FAQRepo
	Manager  *matcher.Manager
	Engine   *matcher.Engine
	Chat     service.ChatService
	FAQs     service.FAQService
	Distance matcher.Distance

	// VectorStore is nil unless QDRANT_URL is set.
	VectorStore vectorstore.IndexStore
	Exporter    *vectorstore.Exporter

	closers []io.Closer
}

// NewLogger builds the process logger from the configured level and format.
func NewLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// New opens the database and wires storage, matcher and services.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	a := &App{DB: db, closers: []io.Closer{db}}

	if err := storage.Migrate(db); err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	slog.InfoContext(ctx, "Database initialized", "path", cfg.DBPath)

	distance, ok := matcher.SelectDistance(cfg.FuzzyBackend)
	if !ok {
		slog.WarnContext(ctx, "Unknown fuzzy backend, using degraded length distance",
			"requested", cfg.FuzzyBackend,
			"backend", distance.Name(),
		)
	}
	a.Distance = distance

	a.Repo = storage.NewFAQRepo(db)
	a.Manager = matcher.NewManager(a.Repo)
	a.Engine = matcher.NewEngine(a.Manager, a.Repo,
		matcher.WithTopK(cfg.MatchTopK),
		matcher.WithDistance(distance),
		matcher.WithCacheSize(cfg.ResponseCacheSize),
	)

	if cfg.QdrantURL != "" {
		store, err := vectorstore.NewQdrantStore(cfg.QdrantURL)
		if err != nil {
			_ = a.Close()
			return nil, fmt.Errorf("failed to create Qdrant client: %w", err)
		}
		a.closers = append(a.closers, store)
		a.VectorStore = store
		a.Exporter = vectorstore.NewExporter(store, cfg.QdrantCollection)
		// closed before the store so pending exports can finish
		a.closers = append(a.closers, a.Exporter)
		a.Manager.OnRebuild(a.Exporter.Hook())
		slog.InfoContext(ctx, "Index export enabled", "url", cfg.QdrantURL, "collection", cfg.QdrantCollection)
	}

	a.Chat = service.NewChatService(a.Engine)
	a.FAQs = service.NewFAQService(a.Repo, a.Manager)

	slog.InfoContext(ctx, "Matcher initialized",
		"top_k", a.Engine.TopK(),
		"fuzzy_backend", distance.Name(),
		"response_cache", cfg.ResponseCacheSize,
	)
	return a, nil
}

// Close releases the database and any vector store connection.
func (a *App) Close() error {
	var firstErr error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
