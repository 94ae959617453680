package pattern

import "strings"

// RGPDKeywords lists terms that suggest a document holds personal data.
var RGPDKeywords = []string{
	"données personnelles",
	"date de naissance",
	"adresse postale",
	"numéro de téléphone",
	"adresse électronique",
	"courriel",
	"numéro de sécurité sociale",
	"dossier médical",
	"santé",
	"handicap",
	"religion",
	"origine ethnique",
	"situation familiale",
	"photographie",
	"droit à l'image",
	"mot de passe",
	"identifiant",
	"bulletin scolaire",
	"notes des élèves",
	"liste des élèves",
}

// DetectRGPD returns the keywords found in content, case-insensitively, in
// keyword order.
func DetectRGPD(content string) []string {
	found := []string{}
	if content == "" {
		return found
	}

	lower := strings.ToLower(content)
	for _, keyword := range RGPDKeywords {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			found = append(found, keyword)
		}
	}
	return found
}
