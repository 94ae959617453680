package pattern

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDictionary_Match(t *testing.T) {
	dict := Dictionary{
		{Name: "robotique", Patterns: []string{"robot", "thymio"}},
		{Name: "RGPD", Patterns: []string{"CNIL"}},
		{Name: "programmation", Patterns: []string{"scratch"}},
	}

	tests := []struct {
		name    string
		content string
		want    []Hit
	}{
		{
			name:    "patterns in dictionary order",
			content: "scratch pilote un robot thymio",
			want: []Hit{
				{Category: "robotique", Pattern: "robot"},
				{Category: "robotique", Pattern: "thymio"},
				{Category: "programmation", Pattern: "scratch"},
			},
		},
		{
			name:    "uppercase pattern matches lowercased content",
			content: "déclaration à la cnil",
			want:    []Hit{{Category: "RGPD", Pattern: "CNIL"}},
		},
		{
			name:    "substring match inside a word",
			content: "les robots éducatifs",
			want:    []Hit{{Category: "robotique", Pattern: "robot"}},
		},
		{
			name:    "no match",
			content: "une sortie scolaire",
			want:    nil,
		},
		{
			name:    "empty content",
			content: "",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dict.Match(strings.ToLower(tt.content)))
		})
	}
}

func TestDefault(t *testing.T) {
	dict := Default()

	assert.NoError(t, Validate(dict))
	assert.Equal(t, "robotique", dict[0].Name)
	assert.Equal(t, "eps", dict[len(dict)-1].Name)
	assert.Len(t, dict, 21)

	assert.Equal(t, "programmation", dict[2].Name)
	assert.Contains(t, dict[2].Patterns, "scratch")

	assert.Greater(t, dict.Size(), 150)
}

func TestDetectRGPD(t *testing.T) {
	found := DetectRGPD("Merci d'indiquer la DATE DE NAISSANCE et le numéro de téléphone des parents.")
	assert.Equal(t, []string{"date de naissance", "numéro de téléphone"}, found)

	assert.Empty(t, DetectRGPD("Séquence de mathématiques sur la numération."))
	assert.NotNil(t, DetectRGPD(""))
}
