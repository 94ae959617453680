package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/viper"

	"github.com/micetf/classifieur-numerique/internal/classification"
	"github.com/micetf/classifieur-numerique/internal/common"
	"github.com/micetf/classifieur-numerique/internal/config"
	"github.com/micetf/classifieur-numerique/internal/document"
	"github.com/micetf/classifieur-numerique/internal/engine"
	"github.com/micetf/classifieur-numerique/internal/hierarchy"
	"github.com/micetf/classifieur-numerique/internal/llm"
	"github.com/micetf/classifieur-numerique/internal/pattern"
	"github.com/micetf/classifieur-numerique/internal/service"
	"github.com/micetf/classifieur-numerique/internal/storage"
	"github.com/micetf/classifieur-numerique/internal/taxonomy"
)

var _ service.HierarchyLoader = (*hierarchy.Loader)(nil)

// app bundles the services shared by the commands.
type app struct {
	loader    *hierarchy.Loader
	engine    *engine.Engine
	extractor *document.Extractor
	cfg       config.Config
}

func loadConfig() (config.Config, error) {
	return config.Load(viper.GetViper())
}

func newApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger := slog.Default()

	loader, err := hierarchy.NewLoader(cfg.LoaderConfig(), logger)
	if err != nil {
		return nil, err
	}

	dict, err := loadDictionary(cfg.Classification.PatternsFile)
	if err != nil {
		return nil, err
	}

	strategy, err := llm.NewStrategy(cfg.StrategyConfig(), nil, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create AI strategy: %w", err)
	}

	return &app{
		cfg:       cfg,
		loader:    loader,
		engine:    engine.New(classification.NewRuleClassifier(dict, taxonomy.Default()), strategy, logger),
		extractor: document.NewExtractor(document.DefaultMaxSize),
	}, nil
}

// loadDictionary reads a replacement keyword dictionary. An empty path
// keeps the built-in one.
func loadDictionary(path string) (pattern.Dictionary, error) {
	if path == "" {
		return pattern.Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, common.NewUserError("impossible d'ouvrir le fichier de motifs", err)
	}
	defer func() { _ = f.Close() }()

	dict, err := pattern.LoadYAML(f)
	if err != nil {
		return nil, common.NewUserError("fichier de motifs invalide", err)
	}

	slog.Debug("Loaded keyword dictionary", "path", path, "categories", len(dict), "patterns", dict.Size())
	return dict, nil
}

// tree loads the hierarchy selected by --type or the configuration.
func (a *app) tree(ctx context.Context) (*hierarchy.Branch, error) {
	return a.loader.Load(ctx, a.cfg.Hierarchy.Type)
}

// useAI resolves the --ai flag against the configuration and warns when no
// key is available.
func (a *app) useAI(flag bool) bool {
	use := flag || a.cfg.Classification.UseAI
	if use && a.cfg.LLM.APIKey == "" {
		slog.Warn("AI classification requested but no API key configured, using keyword rules",
			"provider", a.cfg.LLM.Provider)
	}
	return use
}

func openStore(ctx context.Context, cfg config.Config) (*storage.SQLiteStorage, error) {
	store, err := storage.NewSQLiteStorage(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}
