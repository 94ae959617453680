package hierarchy

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/micetf/classifieur-numerique/internal/common"
)

// maxHierarchyBytes bounds the size of a fetched hierarchy document.
const maxHierarchyBytes = 4 << 20

// LoaderConfig configures where hierarchies are read from.
type LoaderConfig struct {
	// URLs maps each type to a remote JSON document.
	URLs map[Type]string
	// Files maps each type to a local file that takes precedence over URLs.
	Files      map[Type]string
	HTTPClient *http.Client
	Timeout    time.Duration
	CacheSize  int
}

// Loader fetches hierarchies and keeps the successfully loaded ones in an
// LRU cache. Built-in defaults are returned when loading fails.
type Loader struct {
	client *http.Client
	cache  *lru.Cache[Type, *Branch]
	logger *slog.Logger
	cfg    LoaderConfig
}

// NewLoader creates a hierarchy loader.
func NewLoader(cfg LoaderConfig, logger *slog.Logger) (*Loader, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.URLs == nil {
		cfg.URLs = DefaultURLs()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 8
	}

	cache, err := lru.New[Type, *Branch](cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create hierarchy cache: %w", err)
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	return &Loader{
		cfg:    cfg,
		client: client,
		cache:  cache,
		logger: logger,
	}, nil
}

// Load returns the hierarchy of the given type. Fetch and decode failures are
// logged and answered with Defaults(t); only an unknown type is an error.
func (l *Loader) Load(ctx context.Context, t Type) (*Branch, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownHierarchy, t)
	}

	if tree, ok := l.cache.Get(t); ok {
		return tree, nil
	}

	tree, err := l.fetch(ctx, t)
	if err != nil {
		l.logger.Warn("Failed to load hierarchy, using built-in default",
			"type", t,
			"error", err)
		return Defaults(t), nil
	}

	l.cache.Add(t, tree)
	l.logger.Debug("Hierarchy loaded", "type", t, "folders", len(FlattenToPaths(tree)))
	return tree, nil
}

// Invalidate drops a cached hierarchy so the next Load fetches it again.
func (l *Loader) Invalidate(t Type) {
	l.cache.Remove(t)
}

func (l *Loader) fetch(ctx context.Context, t Type) (*Branch, error) {
	if file := l.cfg.Files[t]; file != "" {
		return DecodeFile(file)
	}

	url := l.cfg.URLs[t]
	if url == "" {
		return nil, fmt.Errorf("%w: no source for hierarchy %q", common.ErrMissingConfig, t)
	}

	ctx, cancel := context.WithTimeout(ctx, l.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected HTTP status %d", resp.StatusCode)
	}

	return DecodeJSON(io.LimitReader(resp.Body, maxHierarchyBytes))
}
