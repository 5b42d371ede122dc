package markup

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
)

// Sanitizer removes dangerous HTML from authored markup while keeping the
// interactive word attributes. Safe for concurrent use.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer builds a UGC policy extended with the annotation vocabulary.
func NewSanitizer() *Sanitizer {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs(
		AttrMarker, AttrGerman, AttrPrevod, AttrTip, AttrPadez,
		AttrClan, AttrGlagol, AttrNote, AttrSlug, AttrExample,
		legacyAttrSerbian, legacyAttrArticle, legacyAttrPartOfSpeech, legacyAttrInfo,
	).OnElements("span")
	policy.AllowAttrs("class").Matching(regexp.MustCompile(`^sw-iw( sw-iw--[a-z]+)?$`)).OnElements("span")
	return &Sanitizer{policy: policy}
}

// Sanitize returns safe markup.
func (s *Sanitizer) Sanitize(markup string) string {
	return s.policy.Sanitize(markup)
}

// Block upgrades legacy text items of a block and sanitizes every markup
// string, so writers only ever persist the canonical shape.
func (s *Sanitizer) Block(b domain.Block) domain.Block {
	if !b.Type.HasTextContent() {
		return b
	}
	items := UpgradeAll(b.Content)
	for i := range items {
		switch items[i].Type {
		case domain.ContentItemText:
			items[i].Text.Markup = s.Sanitize(items[i].Text.Markup)
		case domain.ContentItemHedgehog:
			items[i].Hedgehog = s.policy.Sanitize(items[i].Hedgehog)
		}
	}
	b.Content = items
	return b
}
