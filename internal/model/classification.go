// Package model defines the core domain models used throughout the application.
package model

// MaxSuggestions is the number of leading matches surfaced as suggestions.
const MaxSuggestions = 3

// CRCNDomain identifies a domain of the CRCN competency framework.
type CRCNDomain struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Match is one candidate destination for a document.
type Match struct {
	CRCNDomain  *CRCNDomain `json:"crcnDomain"`
	Path        string      `json:"path"`
	Pattern     string      `json:"pattern,omitempty"`
	Category    string      `json:"category,omitempty"`
	Explanation string      `json:"explanation"`
	Confidence  int         `json:"confidence"`
	AIGenerated bool        `json:"aiGenerated"`
}

// Result is the ranked outcome of one classification call.
// Suggestions is always a prefix of AllMatches.
type Result struct {
	Suggestions     []Match `json:"suggestions"`
	AllMatches      []Match `json:"allMatches"`
	OriginalContent string  `json:"originalContent"`
	AIGenerated     bool    `json:"aiGenerated,omitempty"`
}

// EmptyResult returns the canonical "nothing to classify" result.
func EmptyResult(content string) Result {
	return Result{
		Suggestions:     []Match{},
		AllMatches:      []Match{},
		OriginalContent: content,
	}
}

// NewResult builds a result from an already ranked, deduplicated match list.
func NewResult(content string, ranked []Match, aiGenerated bool) Result {
	if ranked == nil {
		ranked = []Match{}
	}

	top := len(ranked)
	if top > MaxSuggestions {
		top = MaxSuggestions
	}

	return Result{
		Suggestions:     ranked[:top:top],
		AllMatches:      ranked,
		OriginalContent: content,
		AIGenerated:     aiGenerated,
	}
}

// Top returns the best suggestion, or nil when there is none.
func (r Result) Top() *Match {
	if len(r.Suggestions) == 0 {
		return nil
	}
	m := r.Suggestions[0]
	return &m
}
