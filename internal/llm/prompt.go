package llm

import (
	"fmt"
	"strings"
)

// MaxContentLength is the number of characters of a document sent to the
// model.
const MaxContentLength = 8000

// buildPrompt asks for three destination paths among paths, in French.
func buildPrompt(content string, paths []string) string {
	return fmt.Sprintf(`Je vais te donner le contenu d'un document et les chemins d'une arborescence de fichiers.
Suggère 3 chemins où ce document pédagogique serait le mieux classé, avec un niveau de confiance (1-100)
et une brève explication pour chaque suggestion.
N'utilise que des chemins de la liste fournie.

Document: "%s"

Arborescence (chemins disponibles):
%s

Réponds avec un format JSON comme ceci:
{
  "suggestions": [
    {
      "path": "chemin/complet",
      "confidence": 85,
      "explanation": "Raison de ce classement",
      "crcnDomain": {"id": "1.2", "name": "Nom du domaine CRCN"},
      "aiGenerated": true
    }
  ]
}`, content, strings.Join(paths, "\n"))
}
