package model

import "time"

// SourceType describes where the classified content came from.
type SourceType string

// Source type constants.
const (
	SourceFile        SourceType = "file"
	SourceDescription SourceType = "description"
)

// HistoryEntry records one filing operation chosen by the user.
type HistoryEntry struct {
	Date             time.Time  `json:"date"`
	ID               string     `json:"id"`
	SourceType       SourceType `json:"sourceType"`
	SourceName       string     `json:"sourceName"`
	TargetPath       string     `json:"targetPath"`
	TargetName       string     `json:"targetName"`
	Command          string     `json:"command"`
	ArborescenceType string     `json:"arborescenceType"`
	AIAssisted       bool       `json:"aiAssisted"`
}
