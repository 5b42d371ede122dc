package render

import (
	"strings"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
)

// CaseSet is the reading-mode case filter. An empty set means every case.
type CaseSet map[domain.GrammaticalCase]bool

// Any reports whether at least one case is selected.
func (c CaseSet) Any() bool {
	for _, on := range c {
		if on {
			return true
		}
	}
	return false
}

// ParseCaseSet builds a set from raw values; unknown values are ignored.
func ParseCaseSet(values []string) CaseSet {
	set := CaseSet{}
	for _, v := range values {
		if c := domain.ParseGrammaticalCase(v); c != "" {
			set[c] = true
		}
	}
	return set
}

// Filter holds reading-mode options. Filters never hide a word; they only
// decide which words are visually emphasized.
type Filter struct {
	PartOfSpeech   domain.PartOfSpeech
	Cases          CaseSet
	ColorByArticle bool
}

// Emphasis is the visual treatment of one word under a filter.
type Emphasis struct {
	CaseClass    string `json:"caseClass,omitempty"`
	ArticleClass string `json:"articleClass,omitempty"`
	Highlighted  bool   `json:"highlighted"`
}

var articleBuckets = map[string]bool{"der": true, "die": true, "das": true}

// Emphasis applies the three filters to s. They compose by AND.
func (f Filter) Emphasis(s domain.InteractiveWordSpan) Emphasis {
	matchesTip := f.PartOfSpeech == "" || s.PartOfSpeech == f.PartOfSpeech
	someCase := f.Cases.Any()
	matchesCase := !someCase || (s.Case != "" && f.Cases[s.Case])

	var e Emphasis
	if someCase && matchesCase && matchesTip {
		e.CaseClass = "sw-case--" + string(s.Case)
	}
	if f.ColorByArticle && matchesTip && matchesCase {
		if a := strings.ToLower(strings.TrimSpace(s.Article)); articleBuckets[a] {
			e.ArticleClass = "sw-article--" + a
		}
	}
	e.Highlighted = e.CaseClass != ""
	return e
}
