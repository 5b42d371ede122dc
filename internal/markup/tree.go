package markup

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
)

// ParseFragment parses markup as the content of a <body> element.
func ParseFragment(markup string) ([]*html.Node, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: atom.Body.String(), DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}
	return nodes, nil
}

// RenderNodes serializes a node list back to markup.
func RenderNodes(nodes []*html.Node) (string, error) {
	var b strings.Builder
	for _, n := range nodes {
		if err := html.Render(&b, n); err != nil {
			return "", fmt.Errorf("render markup: %w", err)
		}
	}
	return b.String(), nil
}

// InnerText concatenates every text node below n.
func InnerText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
			return
		}
		for ch := c.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	walk(n)
	return b.String()
}

// Walk visits nodes in document order. Children of a node are skipped when
// fn returns false for it.
func Walk(nodes []*html.Node, fn func(*html.Node) bool) {
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if !fn(n) {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	for _, n := range nodes {
		visit(n)
	}
}

// Spans decodes every interactive word in document order. Markers nested
// inside another interactive word are not visited.
func Spans(nodes []*html.Node) []domain.InteractiveWordSpan {
	var out []domain.InteractiveWordSpan
	Walk(nodes, func(n *html.Node) bool {
		if s, ok := Decode(n); ok {
			out = append(out, s)
			return false
		}
		return true
	})
	return out
}

// SpansOf parses markup and returns its interactive words. Unparseable
// markup yields no words.
func SpansOf(markup string) []domain.InteractiveWordSpan {
	nodes, err := ParseFragment(markup)
	if err != nil {
		return nil
	}
	return Spans(nodes)
}
