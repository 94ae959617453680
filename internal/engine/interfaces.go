package engine

import (
	"context"

	"github.com/micetf/classifieur-numerique/internal/hierarchy"
	"github.com/micetf/classifieur-numerique/internal/model"
)

// Rules is the deterministic classifier every call can fall back to.
type Rules interface {
	Classify(content string, tree *hierarchy.Branch) model.Result
}

// Alternate is an optional classifier backed by an external service. It
// returns an error for any failure, including an unusable answer.
type Alternate interface {
	Classify(ctx context.Context, content string, paths []string, apiKey string) (model.Result, error)
}
