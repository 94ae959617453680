package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/micetf/classifieur-numerique/internal/common"
	"github.com/micetf/classifieur-numerique/internal/model"
)

const historyColumns = `id, date, source_type, source_name, target_path, target_name,
	command, arborescence_type, ai_assisted`

// SaveHistory records a filing operation and returns its ID.
// A missing ID or date is filled in on the entry.
func (s *SQLiteStorage) SaveHistory(ctx context.Context, entry *model.HistoryEntry) (string, error) {
	if err := validateContext(ctx); err != nil {
		return "", err
	}
	if err := validateHistoryEntry(entry); err != nil {
		return "", err
	}

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Date.IsZero() {
		entry.Date = time.Now()
	}
	entry.Date = entry.Date.UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO history (`+historyColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.Date, string(entry.SourceType), entry.SourceName, entry.TargetPath,
		entry.TargetName, entry.Command, entry.ArborescenceType, entry.AIAssisted)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return "", fmt.Errorf("%w: history entry %s", common.ErrDuplicateEntry, entry.ID)
		}
		return "", fmt.Errorf("failed to save history entry: %w", err)
	}

	return entry.ID, nil
}

// GetHistory retrieves a single entry by ID.
func (s *SQLiteStorage) GetHistory(ctx context.Context, id string) (*model.HistoryEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	entries, err := s.queryHistory(ctx, s.db, `SELECT `+historyColumns+` FROM history WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("history entry %s: %w", id, common.ErrNotFound)
	}
	return &entries[0], nil
}

// ListHistory returns every entry, most recent first.
func (s *SQLiteStorage) ListHistory(ctx context.Context) ([]model.HistoryEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	return s.queryHistory(ctx, s.db, `
		SELECT `+historyColumns+`
		FROM history
		ORDER BY date DESC, created_at DESC
	`)
}

// SearchHistory returns the entries whose source name, target path or
// target name contains term, ignoring case. An empty term matches everything.
func (s *SQLiteStorage) SearchHistory(ctx context.Context, term string) ([]model.HistoryEntry, error) {
	entries, err := s.ListHistory(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return entries, nil
	}

	// SQLite's LOWER only folds ASCII, so accented names are matched here.
	matches := make([]model.HistoryEntry, 0, len(entries))
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.SourceName), needle) ||
			strings.Contains(strings.ToLower(entry.TargetPath), needle) ||
			strings.Contains(strings.ToLower(entry.TargetName), needle) {
			matches = append(matches, entry)
		}
	}
	return matches, nil
}

// DeleteHistory removes one entry.
func (s *SQLiteStorage) DeleteHistory(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM history WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete history entry: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("history entry %s: %w", id, common.ErrNotFound)
	}
	return nil
}

// ClearHistory removes every entry and reports how many were deleted.
func (s *SQLiteStorage) ClearHistory(ctx context.Context) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM history`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear history: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows, nil
}

func (s *SQLiteStorage) queryHistory(ctx context.Context, q queryable, query string, args ...any) ([]model.HistoryEntry, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	entries := make([]model.HistoryEntry, 0)
	for rows.Next() {
		var (
			entry      model.HistoryEntry
			sourceType string
		)
		if err := rows.Scan(
			&entry.ID,
			&entry.Date,
			&sourceType,
			&entry.SourceName,
			&entry.TargetPath,
			&entry.TargetName,
			&entry.Command,
			&entry.ArborescenceType,
			&entry.AIAssisted,
		); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entry.SourceType = model.SourceType(sourceType)
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating history: %w", err)
	}
	return entries, nil
}
