package classification

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/micetf/classifieur-numerique/internal/pattern"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name    string
		content string
		pattern string
		want    int
	}{
		{
			name:    "single hit at start of 100 characters",
			content: "robot" + strings.Repeat("x", 95),
			pattern: "robot",
			want:    85,
		},
		{
			name:    "hit halfway",
			content: "aaaa robot",
			pattern: "robot",
			want:    65,
		},
		{
			name:    "positions count characters not bytes",
			content: "élève robot",
			pattern: "robot",
			want:    63,
		},
		{
			name:    "long pattern gets full length score",
			content: "mathématiques",
			pattern: "mathématiques",
			want:    100,
		},
		{
			name:    "four occurrences clamp to 100",
			content: "robot robot robot robot",
			pattern: "robot",
			want:    100,
		},
		{
			name:    "pattern is lowercased",
			content: "aaaa robot",
			pattern: "ROBOT",
			want:    65,
		},
		{
			name:    "absent pattern keeps length score only",
			content: "une sortie scolaire",
			pattern: "robot",
			want:    15,
		},
		{
			name:    "empty pattern",
			content: "robot",
			pattern: "",
			want:    0,
		},
		{
			name:    "empty content",
			content: "",
			pattern: "robot",
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.content, tt.pattern))
		})
	}
}

func TestScore_OccurrencesAreNotOverlapping(t *testing.T) {
	// "aaa" holds a single non-overlapping "aa": 30 + 40 + 6.
	assert.Equal(t, 76, Score("aaa", "aa"))
}

func TestScore_AlwaysInRange(t *testing.T) {
	contents := []string{
		"Séquence de programmation avec Scratch et le robot Thymio en cycle 3.",
		"Formation RGPD : protection des données personnelles des élèves, consentement et CNIL.",
		"tablette tablette tablette tablette tablette",
		"x",
	}

	for _, content := range contents {
		lower := strings.ToLower(content)
		for _, hit := range pattern.Default().Match(lower) {
			score := Score(lower, hit.Pattern)
			assert.GreaterOrEqual(t, score, 0, hit.Pattern)
			assert.LessOrEqual(t, score, 100, hit.Pattern)
		}
	}
}
