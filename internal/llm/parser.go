package llm

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/micetf/classifieur-numerique/internal/model"
)

type suggestionPayload struct {
	CRCNDomain  *model.CRCNDomain `json:"crcnDomain"`
	Path        string            `json:"path"`
	Explanation string            `json:"explanation"`
	Confidence  float64           `json:"confidence"`
}

type responsePayload struct {
	Suggestions []suggestionPayload `json:"suggestions"`
}

// extractJSON returns the text between the first '{' and the last '}',
// which drops markdown fences and chatter around the object.
func extractJSON(text string) (string, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return "", &ErrInvalidResponse{Content: text, Err: fmt.Errorf("no JSON object in response")}
	}
	return text[start : end+1], nil
}

// parseSuggestions turns the model's reply into matches. Suggestions whose
// path is not one of paths are dropped.
func parseSuggestions(text string, paths []string) ([]model.Match, error) {
	raw, err := extractJSON(text)
	if err != nil {
		return nil, err
	}

	if err := validateResponse(raw); err != nil {
		return nil, err
	}

	var payload responsePayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("failed to parse JSON response: %w", err)}
	}

	known := make(map[string]bool, len(paths))
	for _, p := range paths {
		known[p] = true
	}

	matches := make([]model.Match, 0, len(payload.Suggestions))
	seen := make(map[string]bool, len(payload.Suggestions))
	for _, s := range payload.Suggestions {
		path := strings.Trim(strings.TrimSpace(s.Path), "/")
		if !known[path] || seen[path] {
			continue
		}
		seen[path] = true

		domain := s.CRCNDomain
		if domain != nil && domain.ID == "" {
			domain = nil
		}

		matches = append(matches, model.Match{
			Path:        path,
			Confidence:  clampConfidence(s.Confidence),
			Explanation: s.Explanation,
			CRCNDomain:  domain,
			AIGenerated: true,
		})
	}

	if len(matches) == 0 {
		return nil, &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("no suggestion matches a known path")}
	}

	// The first mention of a path wins; ties keep the model's order.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})

	return matches, nil
}

func clampConfidence(c float64) int {
	if math.IsNaN(c) {
		return 0
	}
	return int(math.Max(0, math.Min(100, math.Round(c))))
}
