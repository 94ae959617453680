package hierarchy

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	t.Run("keeps order and turns empty objects into leaves", func(t *testing.T) {
		tree := mustDecode(t, `{"b": {"y": {}, "x": {}}, "a": {}}`)

		require.Equal(t, 2, tree.Len())
		assert.Equal(t, "b", tree.Entries[0].Name)
		assert.Equal(t, "a", tree.Entries[1].Name)
		assert.Equal(t, Leaf{}, tree.Entries[1].Node)
		assert.Equal(t, []string{"b", "b/y", "b/x", "a"}, FlattenToPaths(tree))
	})

	t.Run("duplicate key keeps first position and last value", func(t *testing.T) {
		tree := mustDecode(t, `{"a": {}, "b": {}, "a": {"c": {}}}`)
		assert.Equal(t, []string{"a", "a/c", "b"}, FlattenToPaths(tree))
	})

	t.Run("non object root", func(t *testing.T) {
		_, err := DecodeJSON(strings.NewReader(`["a"]`))
		require.ErrorIs(t, err, ErrInvalidHierarchy)
	})

	t.Run("truncated document", func(t *testing.T) {
		_, err := DecodeJSON(strings.NewReader(`{"a": {`))
		require.Error(t, err)
	})
}

func TestBranchJSONRoundTrip(t *testing.T) {
	doc := `{"z":{"b":{},"a":{"c":{}}},"y":{}}`
	tree := mustDecode(t, doc)

	data, err := json.Marshal(tree)
	require.NoError(t, err)
	assert.JSONEq(t, doc, string(data))
	assert.Equal(t, doc, string(data))

	var decoded Branch
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, FlattenToPaths(tree), FlattenToPaths(&decoded))
}

func TestDecodeYAML(t *testing.T) {
	doc := `
Projets:
  Robotique:
    Thymio: {}
  Formation:
Ressources: {}
`
	tree, err := DecodeYAML(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Projets",
		"Projets/Robotique",
		"Projets/Robotique/Thymio",
		"Projets/Formation",
		"Ressources",
	}, FlattenToPaths(tree))

	_, err = DecodeYAML(strings.NewReader("- a\n- b\n"))
	require.ErrorIs(t, err, ErrInvalidHierarchy)
}

func TestParseMarkdown(t *testing.T) {
	outline := strings.Join([]string{
		"01_Ressources",
		"  Tutoriels",
		"    Robotique",
		"  - Modèles",
		"",
		"02_Projets",
		"  EnCours",
	}, "\n")

	tree := ParseMarkdown(outline)
	assert.Equal(t, []string{
		"01_Ressources",
		"01_Ressources/Tutoriels",
		"01_Ressources/Tutoriels/Robotique",
		"01_Ressources/Modèles",
		"02_Projets",
		"02_Projets/EnCours",
	}, FlattenToPaths(tree))

	node, ok := tree.Child("02_Projets")
	require.True(t, ok)
	projets := asBranch(node)
	require.NotNil(t, projets)
	assert.Equal(t, Leaf{}, projets.Entries[0].Node)

	assert.Equal(t, 0, ParseMarkdown("").Len())
}

func TestDecodeFile(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "tree.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"A": {"B": {}}}`), 0o600))
	tree, err := DecodeFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "A/B"}, FlattenToPaths(tree))

	mdPath := filepath.Join(dir, "tree.md")
	require.NoError(t, os.WriteFile(mdPath, []byte("A\n  B\n"), 0o600))
	tree, err = DecodeFile(mdPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "A/B"}, FlattenToPaths(tree))

	_, err = DecodeFile(filepath.Join(dir, "tree.xml"))
	require.Error(t, err)
}
