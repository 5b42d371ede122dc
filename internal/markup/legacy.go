package markup

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
)

// LegacyToMarkup converts a structured word array into one paragraph of
// encoded spans separated by spaces. Words without German are dropped.
func LegacyToMarkup(words []domain.InteractiveWordSpan) string {
	p := &html.Node{Type: html.ElementNode, Data: atom.P.String(), DataAtom: atom.P}
	first := true
	for _, w := range words {
		if !w.Valid() {
			continue
		}
		if !first {
			p.AppendChild(&html.Node{Type: html.TextNode, Data: " "})
		}
		p.AppendChild(Encode(w))
		first = false
	}
	if first {
		return ""
	}

	var b strings.Builder
	_ = html.Render(&b, p)
	return b.String()
}

// Upgrade returns item in the markup shape. Hedgehog items and items already
// in markup shape are returned unchanged.
func Upgrade(item domain.ContentItem) domain.ContentItem {
	if item.Type != domain.ContentItemText || !item.Text.IsLegacy() {
		return item
	}
	item.Text = domain.TextContent{
		Markup:  LegacyToMarkup(item.Text.Legacy),
		Serbian: item.Text.Serbian,
	}
	return item
}

// UpgradeAll upgrades a copy of items.
func UpgradeAll(items []domain.ContentItem) []domain.ContentItem {
	out := make([]domain.ContentItem, len(items))
	for i, it := range items {
		out[i] = Upgrade(it)
	}
	return out
}
