// Package classification ranks folder paths for a document using the keyword
// dictionary and the CRCN taxonomy.
package classification

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Score weights.
const (
	occurrenceWeight = 30
	positionWeight   = 0.4
	lengthWeight     = 0.3

	// Patterns of this many characters or more get the full length score.
	specificLength = 10
)

// Score rates how strongly pattern signals the topic of lowerContent, from 0
// to 100. lowerContent must already be lowercased; pattern is lowercased here
// and counted as literal text. Positions and lengths are in characters.
func Score(lowerContent, pattern string) int {
	needle := strings.ToLower(pattern)
	if needle == "" || lowerContent == "" {
		return 0
	}

	occurrences := strings.Count(lowerContent, needle)

	var positionScore float64
	if idx := strings.Index(lowerContent, needle); idx >= 0 {
		pos := float64(utf8.RuneCountInString(lowerContent[:idx]))
		total := float64(utf8.RuneCountInString(lowerContent))
		positionScore = math.Max(0, 100-(pos/total)*100)
	}

	lengthScore := math.Min(100, float64(utf8.RuneCountInString(pattern))/specificLength*100)

	raw := float64(occurrences)*occurrenceWeight + positionScore*positionWeight + lengthScore*lengthWeight
	return int(math.Min(100, roundHalfUp(raw)))
}

// roundHalfUp rounds .5 towards positive infinity.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
