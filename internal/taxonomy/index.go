// Package taxonomy annotates patterns with CRCN competency domains.
package taxonomy

import (
	"strings"

	"github.com/micetf/classifieur-numerique/internal/model"
)

// Domain is a CRCN competency with the keywords that identify it.
type Domain struct {
	ID       string
	Name     string
	Keywords []string
}

// Index is an ordered list of domains. The first matching domain wins.
type Index []Domain

// FindDomain returns the first domain with a keyword contained in pattern,
// case-insensitively. The keyword must appear inside the pattern, not the
// other way round. It returns nil when no domain matches.
func (idx Index) FindDomain(pattern string) *model.CRCNDomain {
	lower := strings.ToLower(pattern)
	if lower == "" {
		return nil
	}

	for _, d := range idx {
		for _, keyword := range d.Keywords {
			if strings.Contains(lower, strings.ToLower(keyword)) {
				return &model.CRCNDomain{ID: d.ID, Name: d.Name}
			}
		}
	}
	return nil
}

// Default returns the CRCN framework: five areas, sixteen competencies.
func Default() Index {
	return Index{
		{ID: "1.1", Name: "Mener une recherche et une veille d'information", Keywords: []string{
			"recherche", "veille", "moteur de recherche", "information",
		}},
		{ID: "1.2", Name: "Gérer des données", Keywords: []string{
			"stockage", "cloud", "fichiers", "arborescence",
		}},
		{ID: "1.3", Name: "Traiter des données", Keywords: []string{
			"tableur", "traitement des données", "statistiques",
		}},
		{ID: "2.1", Name: "Interagir", Keywords: []string{
			"messagerie", "courriel", "visioconférence", "webinaire",
		}},
		{ID: "2.2", Name: "Partager et publier", Keywords: []string{
			"partage", "publication", "blog",
		}},
		{ID: "2.3", Name: "Collaborer", Keywords: []string{
			"collaboratif", "travail collaboratif", "espace collaboratif",
		}},
		{ID: "2.4", Name: "S'insérer dans le monde numérique", Keywords: []string{
			"citoyenneté", "identité numérique", "e-réputation",
		}},
		{ID: "3.1", Name: "Développer des documents textuels", Keywords: []string{
			"traitement de texte", "suite bureautique", "libre office", "microsoft office",
		}},
		{ID: "3.2", Name: "Développer des documents multimédia", Keywords: []string{
			"multimédia", "vidéo", "podcast", "image",
		}},
		{ID: "3.3", Name: "Adapter les documents à leur finalité", Keywords: []string{
			"accessibilité", "adaptation",
		}},
		{ID: "3.4", Name: "Programmer", Keywords: []string{
			"programmation", "algorithme", "scratch", "python", "code", "codage",
			"coding", "robot", "arduino", "thymio", "mbot",
		}},
		{ID: "4.1", Name: "Sécuriser l'environnement numérique", Keywords: []string{
			"sécurité", "mot de passe", "antivirus",
		}},
		{ID: "4.2", Name: "Protéger les données personnelles et la vie privée", Keywords: []string{
			"données personnelles", "protection des données", "rgpd", "cnil",
			"consentement", "confidentialité", "droit à l'oubli",
		}},
		{ID: "4.3", Name: "Protéger la santé, le bien-être et l'environnement", Keywords: []string{
			"santé", "écrans", "bien-être", "développement durable",
		}},
		{ID: "5.1", Name: "Résoudre des problèmes techniques", Keywords: []string{
			"dépannage", "problème technique", "maintenance",
		}},
		{ID: "5.2", Name: "Évoluer dans un environnement numérique", Keywords: []string{
			"environnement numérique", "espace numérique", "tablette", "ipad",
			"tableau interactif", "tableau numérique", "écran interactif",
			"mobilité numérique", "classe mobile", "outils numériques",
		}},
	}
}
