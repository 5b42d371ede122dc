// Package render turns stored lesson markup into the reading view: every
// interactive word becomes a clickable element bound to its attributes and
// the reading filters decide its emphasis.
package render

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
	"github.com/nenadmarinkovic/sprachenwald/internal/markup"
)

// Placeholder is shown when a word has neither German nor inner text.
const Placeholder = "…"

// Word is one clickable word of the rendered output. Index matches the
// data-word-index attribute of its element.
type Word struct {
	Index int                        `json:"index"`
	Span  domain.InteractiveWordSpan `json:"span"`
	Emphasis
}

// Result is rendered markup plus the popover data of its words.
type Result struct {
	HTML  string `json:"html"`
	Words []Word `json:"words"`
}

// Render parses markup and replaces every interactive word element. All
// other nodes pass through unchanged.
func Render(content string, f Filter) (Result, error) {
	r := renderer{filter: f}
	return r.render(content)
}

type renderer struct {
	filter Filter
	next   int
}

func (r *renderer) render(content string) (Result, error) {
	nodes, err := markup.ParseFragment(content)
	if err != nil {
		return Result{}, err
	}

	var words []Word
	for i, n := range nodes {
		if span, ok := markup.Decode(n); ok {
			w := r.word(span)
			nodes[i] = r.element(w)
			words = append(words, w)
			continue
		}
		r.replace(n, &words)
	}

	out, err := markup.RenderNodes(nodes)
	if err != nil {
		return Result{}, err
	}
	return Result{HTML: out, Words: words}, nil
}

func (r *renderer) replace(n *html.Node, words *[]Word) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if span, ok := markup.Decode(c); ok {
			w := r.word(span)
			n.InsertBefore(r.element(w), c)
			n.RemoveChild(c)
			*words = append(*words, w)
		} else {
			r.replace(c, words)
		}
		c = next
	}
}

func (r *renderer) word(span domain.InteractiveWordSpan) Word {
	if strings.TrimSpace(span.German) == "" {
		span.German = Placeholder
	}
	w := Word{Index: r.next, Span: span, Emphasis: r.filter.Emphasis(span)}
	r.next++
	return w
}

func (r *renderer) element(w Word) *html.Node {
	classes := []string{"sw-word"}
	if w.CaseClass != "" {
		classes = append(classes, w.CaseClass)
	}
	if w.ArticleClass != "" {
		classes = append(classes, w.ArticleClass)
	}
	if w.Highlighted {
		classes = append(classes, "sw-word--highlighted")
	}
	if w.Span.PartOfSpeech != "" {
		classes = append(classes, "sw-word--"+string(w.Span.PartOfSpeech))
	}

	attrs := []html.Attribute{
		{Key: "class", Val: strings.Join(classes, " ")},
		{Key: "role", Val: "button"},
		{Key: "tabindex", Val: "0"},
		{Key: "data-word-index", Val: strconv.Itoa(w.Index)},
	}
	for _, a := range markup.Attributes(w.Span) {
		if a.Key == markup.AttrMarker || a.Key == "class" {
			continue
		}
		attrs = append(attrs, a)
	}

	n := &html.Node{Type: html.ElementNode, Data: atom.Span.String(), DataAtom: atom.Span, Attr: attrs}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: w.Span.German})
	return n
}
