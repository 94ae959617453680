package classification

import (
	"fmt"
	"strings"

	"github.com/micetf/classifieur-numerique/internal/model"
)

// Explain builds the French sentence shown to the user next to a suggestion.
func Explain(pattern, category string, domain *model.CRCNDomain) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Le classement est suggéré car le document mentionne \"%s\"", pattern)

	if category != "" {
		fmt.Fprintf(&b, " qui est associé à la catégorie \"%s\"", category)
	}

	if domain != nil {
		fmt.Fprintf(&b, " (CRCN Domaine %s: %s)", domain.ID, domain.Name)
	}

	return b.String()
}
