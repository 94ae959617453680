package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/micetf/classifieur-numerique/internal/model"
)

// Validation errors.
var (
	ErrNilContext          = errors.New("context cannot be nil")
	ErrEmptyString         = errors.New("string parameter cannot be empty")
	ErrNilParameter        = errors.New("parameter cannot be nil")
	ErrInvalidHistoryEntry = errors.New("invalid history entry")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

func validateHistoryEntry(entry *model.HistoryEntry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry", ErrNilParameter)
	}
	if strings.TrimSpace(entry.SourceName) == "" {
		return fmt.Errorf("%w: missing source name", ErrInvalidHistoryEntry)
	}
	if strings.TrimSpace(entry.TargetPath) == "" {
		return fmt.Errorf("%w: missing target path", ErrInvalidHistoryEntry)
	}
	if strings.TrimSpace(entry.Command) == "" {
		return fmt.Errorf("%w: missing command", ErrInvalidHistoryEntry)
	}
	switch entry.SourceType {
	case model.SourceFile, model.SourceDescription:
	default:
		return fmt.Errorf("%w: unknown source type %q", ErrInvalidHistoryEntry, entry.SourceType)
	}
	return nil
}
