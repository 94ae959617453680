package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/micetf/classifieur-numerique/internal/command"
	"github.com/micetf/classifieur-numerique/internal/engine"
	"github.com/micetf/classifieur-numerique/internal/model"
)

func TestRenderResult(t *testing.T) {
	t.Run("suggestions", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, RenderResult(&out, sampleResult()))

		s := out.String()
		assert.Contains(t, s, "Suggestions de classement")
		assert.Contains(t, s, "[1]")
		assert.Contains(t, s, "80%")
		assert.Contains(t, s, "ApplicationsEducatives/Programmation")
		assert.Contains(t, s, "CRCN 3.4 · Programmer")
		assert.Contains(t, s, "[2]")
		assert.NotContains(t, s, RobotIcon)
	})

	t.Run("ai result", func(t *testing.T) {
		result := model.NewResult("x", []model.Match{{Path: "A", Confidence: 90, AIGenerated: true}}, true)

		var out bytes.Buffer
		require.NoError(t, RenderResult(&out, result))
		assert.Contains(t, out.String(), "(IA)")
		assert.Contains(t, out.String(), RobotIcon)
	})

	t.Run("more matches than suggestions", func(t *testing.T) {
		matches := []model.Match{{Path: "A"}, {Path: "B"}, {Path: "C"}, {Path: "D"}, {Path: "E"}}
		var out bytes.Buffer
		require.NoError(t, RenderResult(&out, model.NewResult("x", matches, false)))
		assert.Contains(t, out.String(), "2 autre(s) dossier(s)")
	})

	t.Run("empty", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, RenderResult(&out, model.EmptyResult("")))
		assert.Contains(t, out.String(), "Aucune suggestion")
	})
}

func TestRenderCommand(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("valid", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, RenderCommand(&out, command.GenerateAndValidate("Robotique", "robot.pdf", "", now)))
		assert.Contains(t, out.String(), `mkdir -p "Robotique"`)
		assert.Contains(t, out.String(), "Commande vérifiée")
	})

	t.Run("rejected", func(t *testing.T) {
		generated := command.Generated{
			Command:    "sudo rm -rf /",
			Validation: command.Validate("sudo rm -rf /"),
		}
		var out bytes.Buffer
		require.NoError(t, RenderCommand(&out, generated))
		assert.Contains(t, out.String(), "Commande refusée")
		for _, e := range generated.Validation.Errors {
			assert.Contains(t, out.String(), e)
		}
	})
}

func TestRenderHistory(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, RenderHistory(&out, nil))
	assert.Contains(t, out.String(), "Historique vide")

	out.Reset()
	entries := []model.HistoryEntry{{
		ID:         "abc",
		Date:       time.Date(2025, 3, 1, 9, 30, 0, 0, time.Local),
		SourceName: "robot.pdf",
		TargetPath: "Robotique",
		TargetName: "2025-03-01_robot_v1.pdf",
		AIAssisted: true,
	}}
	require.NoError(t, RenderHistory(&out, entries))
	assert.Contains(t, out.String(), "abc")
	assert.Contains(t, out.String(), "2025-03-01 09:30")
	assert.Contains(t, out.String(), "robot.pdf → Robotique/2025-03-01_robot_v1.pdf")
	assert.Contains(t, out.String(), RobotIcon)
}

func TestRenderRGPD(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, RenderRGPD(&out, []string{}))
	assert.Contains(t, out.String(), "Aucune donnée personnelle")

	out.Reset()
	require.NoError(t, RenderRGPD(&out, []string{"date de naissance"}))
	assert.Contains(t, out.String(), "Vigilance RGPD")
	assert.Contains(t, out.String(), "date de naissance")
}

func TestRenderPaths(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, RenderPaths(&out, []string{"A", "A/B"}))
	assert.Equal(t, "A\nA/B\n", out.String())
}

func TestRenderBatch(t *testing.T) {
	results := []engine.BatchResult{
		{Name: "robot.txt", Index: 0, Result: model.NewResult("robot", []model.Match{{Path: "Robotique", Confidence: 52}}, false)},
		{Name: "vide.txt", Index: 1, Result: model.EmptyResult("rien")},
	}
	summary := engine.BatchSummary{Total: 2, Classified: 1, Unclassified: 1}

	var out bytes.Buffer
	require.NoError(t, RenderBatch(&out, results, summary))

	s := out.String()
	assert.Contains(t, s, "robot.txt → Robotique")
	assert.Contains(t, s, "vide.txt")
	assert.Contains(t, s, "Documents : 2")
	assert.Contains(t, s, "Classés : 1 (50.0%)")
	assert.Contains(t, s, "Sans suggestion : 1")
}

func TestFormatConfidence(t *testing.T) {
	for _, c := range []int{0, 39, 40, 69, 70, 100} {
		assert.Contains(t, FormatConfidence(c), "%")
	}
}
