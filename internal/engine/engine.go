// Package engine chooses between the rule-based and the model-based
// classifiers for each document.
package engine

import (
	"context"
	"log/slog"

	"github.com/micetf/classifieur-numerique/internal/hierarchy"
	"github.com/micetf/classifieur-numerique/internal/model"
)

// Engine is the classification entry point. It holds no state between calls
// and is safe for concurrent use.
type Engine struct {
	rules     Rules
	alternate Alternate
	logger    *slog.Logger
}

// New creates an engine. alternate may be nil, in which case every call uses
// the rules.
func New(rules Rules, alternate Alternate, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		rules:     rules,
		alternate: alternate,
		logger:    logger,
	}
}

// ClassifyContent suggests destination folders in tree for content.
//
// When useAlternate is set and apiKey is not empty, the alternate classifier
// is tried first and its result returned as is. Its failures are logged and
// the rules answer instead, so the caller always gets a result; only the
// AIGenerated flags tell the two apart.
func (e *Engine) ClassifyContent(ctx context.Context, content string, tree *hierarchy.Branch, useAlternate bool, apiKey string) model.Result {
	if content == "" || tree == nil {
		return model.EmptyResult(content)
	}

	if useAlternate && apiKey != "" && e.alternate != nil {
		result, err := e.alternate.Classify(ctx, content, hierarchy.FlattenToPaths(tree), apiKey)
		if err == nil {
			return result
		}
		e.logger.Warn("model classification failed, using rules",
			"error", err)
	}

	return e.rules.Classify(content, tree)
}
