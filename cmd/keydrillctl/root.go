package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"github.com/vytor/keydrill/internal/config"
	"github.com/vytor/keydrill/internal/db"
	"github.com/vytor/keydrill/internal/logger"
	"github.com/vytor/keydrill/internal/repository/sqlite"
	"github.com/vytor/keydrill/internal/services"
)

var rootCmd = &cobra.Command{
	Use:           "keydrillctl",
	Short:         "Administer a keydrill review database",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides DB_PATH env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (overrides LOG_LEVEL env var)")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

// app holds the services a command needs, wired to one database.
type app struct {
	database *db.DB
	catalog  services.CatalogService
	due      services.DueService
	stats    services.StatsService
	items    services.ReviewItemService
}

// openApp resolves the database path from --db, then DB_PATH, then the
// config default, and wires the services to it.
func openApp(cmd *cobra.Command) (*app, context.Context, error) {
	cfg := config.Load()
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if l, _ := cmd.Flags().GetString("log-level"); l != "" {
		cfg.LogLevel = l
	}

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithOutput(cmd.ErrOrStderr()),
	)
	logger.SetDefault(log)

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}

	items := sqlite.NewReviewItemRepository(database.DB)
	catalogRepo := sqlite.NewCatalogRepository(database.DB)
	clock := services.Clock(func() time.Time { return time.Now().UTC() })

	a := &app{
		database: database,
		catalog:  services.NewCatalogService(catalogRepo, items, clock),
		due:      services.NewDueService(items, catalogRepo, clock),
		stats:    services.NewStatsService(items, clock),
		items:    services.NewReviewItemService(items, clock),
	}
	return a, logger.NewContext(cmd.Context(), log), nil
}

func (a *app) Close() error {
	return a.database.Close()
}
