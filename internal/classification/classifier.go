package classification

import (
	"sort"
	"strings"

	"github.com/micetf/classifieur-numerique/internal/hierarchy"
	"github.com/micetf/classifieur-numerique/internal/model"
	"github.com/micetf/classifieur-numerique/internal/pattern"
	"github.com/micetf/classifieur-numerique/internal/taxonomy"
)

// RuleClassifier suggests folders by matching the keyword dictionary against
// document content. It holds no state between calls and is safe for
// concurrent use.
type RuleClassifier struct {
	dict     pattern.Dictionary
	taxonomy taxonomy.Index
}

// NewRuleClassifier creates a classifier. A nil dictionary or index selects
// the built-in one.
func NewRuleClassifier(dict pattern.Dictionary, idx taxonomy.Index) *RuleClassifier {
	if dict == nil {
		dict = pattern.Default()
	}
	if idx == nil {
		idx = taxonomy.Default()
	}
	return &RuleClassifier{dict: dict, taxonomy: idx}
}

// Classify ranks the folders of tree for content. Empty content or a nil tree
// yields an empty result.
func (c *RuleClassifier) Classify(content string, tree *hierarchy.Branch) model.Result {
	if content == "" || tree == nil {
		return model.EmptyResult(content)
	}

	lower := strings.ToLower(content)
	matches := []model.Match{}

	for _, hit := range c.dict.Match(lower) {
		paths := hierarchy.FindPathsForCategory(tree, hit.Category)
		if len(paths) == 0 {
			continue
		}

		domain := c.taxonomy.FindDomain(hit.Pattern)
		confidence := Score(lower, hit.Pattern)
		explanation := Explain(hit.Pattern, hit.Category, domain)

		for _, path := range paths {
			matches = append(matches, model.Match{
				Path:        path,
				Pattern:     hit.Pattern,
				Category:    hit.Category,
				Confidence:  confidence,
				Explanation: explanation,
				CRCNDomain:  copyDomain(domain),
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})

	return model.NewResult(content, dedupeByPath(matches), false)
}

// dedupeByPath keeps the first match for every path.
func dedupeByPath(matches []model.Match) []model.Match {
	seen := make(map[string]bool, len(matches))
	unique := make([]model.Match, 0, len(matches))

	for _, m := range matches {
		if seen[m.Path] {
			continue
		}
		seen[m.Path] = true
		unique = append(unique, m)
	}
	return unique
}

func copyDomain(d *model.CRCNDomain) *model.CRCNDomain {
	if d == nil {
		return nil
	}
	cp := *d
	return &cp
}
