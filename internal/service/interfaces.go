// Package service defines the interfaces shared by the command layer.
package service

import (
	"context"

	"github.com/micetf/classifieur-numerique/internal/hierarchy"
	"github.com/micetf/classifieur-numerique/internal/model"
)

// HistoryStore defines the contract for the filing history persistence layer.
type HistoryStore interface {
	SaveHistory(ctx context.Context, entry *model.HistoryEntry) (string, error)
	GetHistory(ctx context.Context, id string) (*model.HistoryEntry, error)
	ListHistory(ctx context.Context) ([]model.HistoryEntry, error)
	SearchHistory(ctx context.Context, term string) ([]model.HistoryEntry, error)
	DeleteHistory(ctx context.Context, id string) error
	ClearHistory(ctx context.Context) (int64, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// HierarchyLoader resolves a hierarchy type to its folder tree.
type HierarchyLoader interface {
	Load(ctx context.Context, kind hierarchy.Type) (*hierarchy.Branch, error)
	// Invalidate forgets a cached tree so the next Load fetches it again.
	Invalidate(kind hierarchy.Type)
}

// Classifier produces ranked suggestions for a piece of content.
type Classifier interface {
	ClassifyContent(ctx context.Context, content string, tree *hierarchy.Branch, useAlternate bool, apiKey string) model.Result
}

// SuggestionPicker lets the user choose one of the suggestions of a result.
type SuggestionPicker interface {
	PickSuggestion(ctx context.Context, result model.Result) (model.Match, error)
}
