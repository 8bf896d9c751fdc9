package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/deepsoc/deepsoc/pkg/bus"
	"github.com/deepsoc/deepsoc/pkg/config"
	"github.com/deepsoc/deepsoc/pkg/database"
	"github.com/deepsoc/deepsoc/pkg/messaging"
	"github.com/deepsoc/deepsoc/pkg/propagation"
)

// bootstrap holds the process dependencies every command starts from:
// configuration, the database with migrations applied, the notification
// publisher, and the status propagation engine.
type bootstrap struct {
	cfg       *config.Config
	db        *database.Client
	publisher bus.Publisher
	notifier  *messaging.Notifier
	engine    *propagation.Engine
}

// connect loads configuration and opens the shared clients. A broker
// that cannot be reached downgrades to a no-op publisher: the messages
// table is the canonical record, the bus only feeds live sessions.
func connect(ctx context.Context) (*bootstrap, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	dbCfg, err := database.LoadConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("loading database configuration: %w", err)
	}
	db, err := database.NewClient(ctx, dbCfg)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	slog.Info("Connected to PostgreSQL", "database", dbCfg.Database)

	var publisher bus.Publisher
	publisher, err = bus.NewPublisher(cfg.Broker)
	if err != nil {
		slog.Warn("Broker unreachable, notifications stay database-only", "error", err)
		publisher = bus.NopPublisher{}
	}

	return &bootstrap{
		cfg:       cfg,
		db:        db,
		publisher: publisher,
		notifier:  messaging.NewNotifier(db.Client, publisher),
		engine:    propagation.NewEngine(db.Client),
	}, nil
}

// close releases everything connect opened.
func (b *bootstrap) close() {
	if err := b.publisher.Close(); err != nil {
		slog.Error("Error closing publisher", "error", err)
	}
	if err := b.db.Close(); err != nil {
		slog.Error("Error closing database client", "error", err)
	}
}
