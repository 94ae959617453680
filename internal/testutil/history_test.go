package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/micetf/classifieur-numerique/internal/model"
)

func TestHistoryBuilder(t *testing.T) {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	entries := NewHistoryBuilder(start).
		WithFile("thymio.pdf", "Applications/Robotique").
		ForType("perso").
		WithDescription("Outils/Tableur").
		WithAIFile("scratch.md", "Applications/Programmation").
		Build()

	require.Len(t, entries, 3)

	assert.Equal(t, model.SourceFile, entries[0].SourceType)
	assert.Equal(t, "2025-03-01_thymio_v1.pdf", entries[0].TargetName)
	assert.Equal(t, "cpc", entries[0].ArborescenceType)
	assert.Contains(t, entries[0].Command, `mkdir -p "Applications/Robotique"`)

	assert.Equal(t, model.SourceDescription, entries[1].SourceType)
	assert.Equal(t, "Description textuelle", entries[1].SourceName)
	assert.Equal(t, "2025-03-01_document_description_v1.txt", entries[1].TargetName)
	assert.Equal(t, "perso", entries[1].ArborescenceType)
	assert.Equal(t, start.Add(time.Minute), entries[1].Date)

	assert.True(t, entries[2].AIAssisted)
	assert.Equal(t, "Applications/Programmation/2025-03-01_scratch_v1.md", Destination(entries[2]))
}

func TestSetupTestDB(t *testing.T) {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	db := SetupTestDB(t, NewHistoryBuilder(start).
		WithFile("thymio.pdf", "Applications/Robotique").
		WithFile("scratch.md", "Applications/Programmation").
		Build()...)

	require.Len(t, db.Entries, 2)
	for _, e := range db.Entries {
		assert.NotEmpty(t, e.ID)
	}

	got := db.MustGet("scratch.md")
	assert.Equal(t, "Applications/Programmation", got.TargetPath)
	assert.True(t, got.Date.Equal(start.Add(time.Minute)))

	list, err := db.Storage.ListHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "scratch.md", list[0].SourceName)
}
