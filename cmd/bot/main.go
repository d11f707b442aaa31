package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"

	"slotbot/internal/adapters/discord"
	"slotbot/internal/config"
	"slotbot/internal/domain/entities"
	"slotbot/internal/infrastructure/database"
	"slotbot/internal/infrastructure/i18n"
	"slotbot/internal/infrastructure/memstore"
	"slotbot/internal/infrastructure/rowstore"
	"slotbot/internal/infrastructure/sheets"
	"slotbot/internal/ports/output"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration invalide: %v", err)
	}

	stdr.SetVerbosity(cfg.LogVerbosity)
	logger := stdr.New(log.New(os.Stderr, "", log.LstdFlags))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("❌ Erreur lors de l'initialisation du registre: %v", err)
	}
	defer closeStore()

	store = rowstore.WithTimeout(store, cfg.StoreTimeout)
	if wrote, err := rowstore.EnsureHeader(ctx, store); err != nil {
		logger.Error(err, "⚠️ Vérification de l'en-tête du registre impossible")
	} else if wrote {
		logger.Info("✅ En-tête du registre créé")
	}

	translator := i18n.NewTranslator(cfg.DefaultLocale, logger)
	bot, err := discord.NewBot(cfg, store, translator, logger)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	if err := bot.Run(ctx); err != nil {
		logger.Error(err, "❌ Erreur lors du démarrage du bot")
		os.Exit(1)
	}
}

// openStore builds the row store selected by STORE_BACKEND.
func openStore(ctx context.Context, cfg *config.Config, logger logr.Logger) (output.RowStore, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendSheets:
		id := cfg.SheetID
		if id == "" {
			var err error
			if id, err = sheets.SpreadsheetIDFromURL(cfg.SheetURL); err != nil {
				return nil, nil, err
			}
		}
		store, err := sheets.New(ctx, sheets.Config{
			SpreadsheetID:   id,
			SheetName:       cfg.SheetName,
			CredentialsJSON: cfg.Credentials,
			Width:           entities.ColumnCount,
		}, logger)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("✅ Google Sheets connecté", "sheet", cfg.SheetName)
		return store, func() {}, nil

	case config.BackendPostgres:
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			return nil, nil, err
		}
		pool, err := database.NewPool(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return nil, nil, err
		}
		return database.NewRowStore(pool), pool.Close, nil

	case config.BackendMemory:
		logger.Info("⚠️ Registre en mémoire : les inscriptions seront perdues à l'arrêt")
		return memstore.New(), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
}
