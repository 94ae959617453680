package testutil

import (
	"path"
	"strings"
	"time"

	"github.com/micetf/classifieur-numerique/internal/command"
	"github.com/micetf/classifieur-numerique/internal/model"
)

// HistoryBuilder builds history entries one minute apart, oldest first.
type HistoryBuilder struct {
	next    time.Time
	kind    string
	entries []model.HistoryEntry
}

// NewHistoryBuilder starts a builder whose first entry is dated start.
func NewHistoryBuilder(start time.Time) *HistoryBuilder {
	return &HistoryBuilder{next: start, kind: "cpc"}
}

// ForType sets the hierarchy type recorded on the following entries.
func (b *HistoryBuilder) ForType(kind string) *HistoryBuilder {
	b.kind = kind
	return b
}

// WithFile adds an uploaded file filed under targetPath.
func (b *HistoryBuilder) WithFile(sourceName, targetPath string) *HistoryBuilder {
	return b.add(model.SourceFile, sourceName, targetPath, false)
}

// WithAIFile adds an uploaded file filed from an AI suggestion.
func (b *HistoryBuilder) WithAIFile(sourceName, targetPath string) *HistoryBuilder {
	return b.add(model.SourceFile, sourceName, targetPath, true)
}

// WithDescription adds a text description filed under targetPath.
func (b *HistoryBuilder) WithDescription(targetPath string) *HistoryBuilder {
	return b.add(model.SourceDescription, "Description textuelle", targetPath, false)
}

// Build returns the entries added so far.
func (b *HistoryBuilder) Build() []model.HistoryEntry {
	return append([]model.HistoryEntry(nil), b.entries...)
}

func (b *HistoryBuilder) add(source model.SourceType, sourceName, targetPath string, ai bool) *HistoryBuilder {
	fileName := sourceName
	if source == model.SourceDescription {
		fileName = "document_description.txt"
	}
	targetName := command.DatedName(fileName, b.next)

	b.entries = append(b.entries, model.HistoryEntry{
		Date:             b.next,
		SourceType:       source,
		SourceName:       sourceName,
		TargetPath:       strings.Trim(targetPath, "/"),
		TargetName:       targetName,
		Command:          command.Generate(targetPath, fileName, targetName, b.next),
		ArborescenceType: b.kind,
		AIAssisted:       ai,
	})
	b.next = b.next.Add(time.Minute)
	return b
}

// Destination returns the full destination path of an entry.
func Destination(e model.HistoryEntry) string {
	return path.Join(e.TargetPath, e.TargetName)
}
