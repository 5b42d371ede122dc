// Package markup defines how an interactive word is embedded in lesson
// rich text and how it is read back.
//
// An annotated span is an inline element:
//
//	<span data-interactive-word="true" data-german="Hund" data-prevod="pas"
//	      data-tip="imenica" data-padez="nominativ" data-clan="der"
//	      data-glagol="false" data-note="" data-slug="hund"
//	      class="sw-iw sw-iw--imenica">Hund</span>
//
// A non-empty example sentence is carried in data-example.
//
// The attribute names and the marker value are an interchange contract:
// importers and exporters of lesson content must use exactly these names.
package markup

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
)

// Attribute vocabulary.
const (
	AttrMarker  = "data-interactive-word"
	AttrGerman  = "data-german"
	AttrPrevod  = "data-prevod"
	AttrTip     = "data-tip"
	AttrPadez   = "data-padez"
	AttrClan    = "data-clan"
	AttrGlagol  = "data-glagol"
	AttrNote    = "data-note"
	AttrSlug    = "data-slug"
	AttrExample = "data-example"
	MarkerValue = "true"

	ClassHook = "sw-iw"
)

// Older content used these names; they are read but never written.
const (
	legacyAttrSerbian      = "data-serbian"
	legacyAttrArticle      = "data-article"
	legacyAttrPartOfSpeech = "data-part-of-speech"
	legacyAttrInfo         = "data-info"
)

// Shorthand authoring syntax. The input rule fires on text that ends at the
// caret; the paste rule scans a whole pasted run.
var (
	InputRulePattern = regexp.MustCompile(`\[\[([^\]]+)\]\]$`)
	PasteRulePattern = regexp.MustCompile(`\[\[([^\]]+)\]\]`)
)

// ClassFor returns the styling hook of a span.
func ClassFor(s domain.InteractiveWordSpan) string {
	if s.PartOfSpeech == "" {
		return ClassHook
	}
	return ClassHook + " " + ClassHook + "--" + string(s.PartOfSpeech)
}

// Attributes returns the full attribute set of an encoded span in a fixed
// order. The slug is always derived from German.
func Attributes(s domain.InteractiveWordSpan) []html.Attribute {
	attrs := []html.Attribute{
		{Key: AttrMarker, Val: MarkerValue},
		{Key: AttrGerman, Val: s.German},
		{Key: AttrPrevod, Val: s.Translation},
		{Key: AttrTip, Val: string(s.PartOfSpeech)},
		{Key: AttrPadez, Val: string(s.Case)},
		{Key: AttrClan, Val: s.Article},
		{Key: AttrGlagol, Val: strconv.FormatBool(s.IsVerb)},
		{Key: AttrNote, Val: s.Note},
		{Key: AttrSlug, Val: domain.Slugify(s.German)},
	}
	if s.Example != "" {
		attrs = append(attrs, html.Attribute{Key: AttrExample, Val: s.Example})
	}
	return append(attrs, html.Attribute{Key: "class", Val: ClassFor(s)})
}

// Element returns an empty span element carrying the encoded attributes.
func Element(s domain.InteractiveWordSpan) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     atom.Span.String(),
		DataAtom: atom.Span,
		Attr:     Attributes(s),
	}
}

// Encode returns the span element with German as its text.
func Encode(s domain.InteractiveWordSpan) *html.Node {
	n := Element(s)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: s.German})
	return n
}

// EncodeString renders Encode(s) as markup.
func EncodeString(s domain.InteractiveWordSpan) string {
	var b strings.Builder
	_ = html.Render(&b, Encode(s))
	return b.String()
}

// IsInteractiveWord reports whether n carries the marker attribute set to "true".
func IsInteractiveWord(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	v, ok := attr(n, AttrMarker)
	return ok && v == MarkerValue
}

// Decode reads a span back from an element. ok is false when the element is
// not an interactive word. Unknown part of speech or case values decode as
// unclassified; an empty German falls back to the element text.
func Decode(n *html.Node) (domain.InteractiveWordSpan, bool) {
	if !IsInteractiveWord(n) {
		return domain.InteractiveWordSpan{}, false
	}

	s := domain.InteractiveWordSpan{
		German:       attrOr(n, AttrGerman),
		Translation:  attrOr(n, AttrPrevod, legacyAttrSerbian),
		PartOfSpeech: domain.ParsePartOfSpeech(attrOr(n, AttrTip, legacyAttrPartOfSpeech)),
		Case:         domain.ParseGrammaticalCase(attrOr(n, AttrPadez)),
		Article:      attrOr(n, AttrClan, legacyAttrArticle),
		IsVerb:       attrOr(n, AttrGlagol) == "true",
		Note:         attrOr(n, AttrNote, legacyAttrInfo),
		Example:      attrOr(n, AttrExample),
	}
	if strings.TrimSpace(s.German) == "" {
		s.German = domain.CollapseSpaces(InnerText(n))
	}
	s.Slug = domain.Slugify(s.German)
	return s, true
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// attrOr returns the first non-empty value among keys.
func attrOr(n *html.Node, keys ...string) string {
	for _, k := range keys {
		if v, ok := attr(n, k); ok && v != "" {
			return v
		}
	}
	return ""
}
