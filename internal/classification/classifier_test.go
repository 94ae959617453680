package classification

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/micetf/classifieur-numerique/internal/hierarchy"
	"github.com/micetf/classifieur-numerique/internal/model"
	"github.com/micetf/classifieur-numerique/internal/pattern"
	"github.com/micetf/classifieur-numerique/internal/taxonomy"
)

func mustTree(t *testing.T, doc string) *hierarchy.Branch {
	t.Helper()
	tree, err := hierarchy.DecodeJSON(strings.NewReader(doc))
	require.NoError(t, err)
	return tree
}

func paths(matches []model.Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Path
	}
	return out
}

func TestRuleClassifier_ScratchAndRobot(t *testing.T) {
	tree := mustTree(t, `{"00_Ressources": {"ApplicationsEducatives": {"Robotique": {}, "Programmation": {}}}}`)
	c := NewRuleClassifier(nil, nil)

	result := c.Classify("Atelier Scratch avec un robot", tree)

	require.Len(t, result.AllMatches, 2)
	assert.Equal(t, []string{
		"00_Ressources/ApplicationsEducatives/Programmation",
		"00_Ressources/ApplicationsEducatives/Robotique",
	}, paths(result.AllMatches))

	first, second := result.AllMatches[0], result.AllMatches[1]
	assert.Equal(t, "programmation", first.Category)
	assert.Equal(t, "scratch", first.Pattern)
	assert.Equal(t, 80, first.Confidence)
	assert.Equal(t, "robotique", second.Category)
	assert.Equal(t, 52, second.Confidence)

	require.NotNil(t, second.CRCNDomain)
	assert.Equal(t, "3.4", second.CRCNDomain.ID)
	assert.Equal(t,
		`Le classement est suggéré car le document mentionne "robot" qui est associé à la catégorie "robotique" (CRCN Domaine 3.4: Programmer)`,
		second.Explanation)
	assert.False(t, second.AIGenerated)

	assert.Equal(t, result.AllMatches, result.Suggestions)
	assert.Equal(t, "Atelier Scratch avec un robot", result.OriginalContent)
	assert.False(t, result.AIGenerated)
}

func TestRuleClassifier_Ranking(t *testing.T) {
	dict := pattern.Dictionary{
		{Name: "robotique", Patterns: []string{"robot"}},
		{Name: "programmation", Patterns: []string{"scratch"}},
	}
	tree := mustTree(t, `{"Robotique": {}, "Programmation": {}}`)
	c := NewRuleClassifier(dict, taxonomy.Default())

	result := c.Classify("scratch scratch robot", tree)

	assert.Equal(t, []string{"Programmation", "Robotique"}, paths(result.AllMatches))
	assert.Equal(t, 100, result.AllMatches[0].Confidence)
	assert.Equal(t, 55, result.AllMatches[1].Confidence)
}

func TestRuleClassifier_DedupeKeepsBestMatch(t *testing.T) {
	dict := pattern.Dictionary{
		{Name: "robotique", Patterns: []string{"robot"}},
		{Name: "robot", Patterns: []string{"thymio"}},
	}
	tree := mustTree(t, `{"Robotique": {}}`)
	c := NewRuleClassifier(dict, taxonomy.Default())

	result := c.Classify("thymio et robot", tree)

	require.Len(t, result.AllMatches, 1)
	assert.Equal(t, "Robotique", result.AllMatches[0].Path)
	assert.Equal(t, "thymio", result.AllMatches[0].Pattern)
	assert.Equal(t, "robot", result.AllMatches[0].Category)
	assert.Equal(t, 88, result.AllMatches[0].Confidence)
}

func TestRuleClassifier_TiesKeepDiscoveryOrder(t *testing.T) {
	dict := pattern.Dictionary{
		{Name: "robotique", Patterns: []string{"robot"}},
		{Name: "ressources", Patterns: []string{"robot"}},
	}
	tree := mustTree(t, `{"Ressources": {"Robotique": {}}}`)
	c := NewRuleClassifier(dict, taxonomy.Default())

	result := c.Classify("robot", tree)

	assert.Equal(t, []string{"Ressources/Robotique", "Ressources"}, paths(result.AllMatches))
	assert.Equal(t, result.AllMatches[0].Confidence, result.AllMatches[1].Confidence)
}

func TestRuleClassifier_SuggestionsArePrefix(t *testing.T) {
	dict := pattern.Dictionary{{Name: "robotique", Patterns: []string{"robot"}}}

	var entries []string
	for i := 1; i <= 5; i++ {
		entries = append(entries, fmt.Sprintf(`"Robotique%d": {}`, i))
	}
	tree := mustTree(t, "{"+strings.Join(entries, ",")+"}")
	c := NewRuleClassifier(dict, taxonomy.Default())

	result := c.Classify("un robot", tree)

	require.Len(t, result.AllMatches, 5)
	require.Len(t, result.Suggestions, model.MaxSuggestions)
	assert.Equal(t, result.AllMatches[:3], result.Suggestions)
	assert.Equal(t, []string{"Robotique1", "Robotique2", "Robotique3", "Robotique4", "Robotique5"}, paths(result.AllMatches))
}

func TestRuleClassifier_EmptyResults(t *testing.T) {
	tree := mustTree(t, `{"Robotique": {}}`)
	c := NewRuleClassifier(nil, nil)

	tests := []struct {
		tree    *hierarchy.Branch
		name    string
		content string
	}{
		{name: "empty content", content: "", tree: tree},
		{name: "nil tree", content: "un robot", tree: nil},
		{name: "no pattern found", content: "xyz", tree: tree},
		{name: "pattern without folder", content: "scratch", tree: tree},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.Classify(tt.content, tt.tree)
			assert.Equal(t, model.EmptyResult(tt.content), result)
			assert.NotNil(t, result.Suggestions)
			assert.NotNil(t, result.AllMatches)
		})
	}
}

func TestRuleClassifier_Idempotent(t *testing.T) {
	tree := hierarchy.Defaults(hierarchy.TypeCPC)
	c := NewRuleClassifier(nil, nil)
	content := "Formation RGPD pour les enseignants : protection des données personnelles, tablettes et ENT."

	first, err := json.Marshal(c.Classify(content, tree))
	require.NoError(t, err)
	second, err := json.Marshal(c.Classify(content, tree))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestRuleClassifier_Invariants(t *testing.T) {
	c := NewRuleClassifier(nil, nil)
	contents := []string{
		"Séquence de programmation avec Scratch et le robot Thymio en cycle 3.",
		"Formation RGPD : protection des données personnelles des élèves, consentement et CNIL.",
		"Utilisation du TBI et des tablettes en maternelle.",
		"Évaluation de mathématiques, calcul mental et géométrie.",
	}

	for _, typ := range hierarchy.Types() {
		tree := hierarchy.Defaults(typ)
		for _, content := range contents {
			result := c.Classify(content, tree)

			assert.LessOrEqual(t, len(result.Suggestions), model.MaxSuggestions)
			top := min(len(result.AllMatches), model.MaxSuggestions)
			assert.Equal(t, result.AllMatches[:top], result.Suggestions)

			seen := map[string]bool{}
			for i, m := range result.AllMatches {
				assert.False(t, seen[m.Path], "duplicate path %s", m.Path)
				seen[m.Path] = true
				assert.GreaterOrEqual(t, m.Confidence, 0)
				assert.LessOrEqual(t, m.Confidence, 100)
				if i > 0 {
					assert.LessOrEqual(t, m.Confidence, result.AllMatches[i-1].Confidence)
				}
			}
		}
	}
}
