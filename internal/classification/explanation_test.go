package classification

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/micetf/classifieur-numerique/internal/model"
)

func TestExplain(t *testing.T) {
	tests := []struct {
		domain   *model.CRCNDomain
		name     string
		pattern  string
		category string
		want     string
	}{
		{
			name:     "pattern category and domain",
			pattern:  "robot",
			category: "robotique",
			domain:   &model.CRCNDomain{ID: "3.4", Name: "Programmer"},
			want:     `Le classement est suggéré car le document mentionne "robot" qui est associé à la catégorie "robotique" (CRCN Domaine 3.4: Programmer)`,
		},
		{
			name:     "no domain",
			pattern:  "maternelle",
			category: "maternelle",
			want:     `Le classement est suggéré car le document mentionne "maternelle" qui est associé à la catégorie "maternelle"`,
		},
		{
			name:    "no category",
			pattern: "cnil",
			domain:  &model.CRCNDomain{ID: "4.2", Name: "Protéger les données personnelles et la vie privée"},
			want:    `Le classement est suggéré car le document mentionne "cnil" (CRCN Domaine 4.2: Protéger les données personnelles et la vie privée)`,
		},
		{
			name:    "pattern only",
			pattern: "droit à l'oubli",
			want:    `Le classement est suggéré car le document mentionne "droit à l'oubli"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Explain(tt.pattern, tt.category, tt.domain))
		})
	}
}
