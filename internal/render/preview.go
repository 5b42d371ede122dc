package render

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
	"github.com/nenadmarinkovic/sprachenwald/internal/markup"
)

// DefaultPreviewChars is the per-item text budget of admin previews.
const DefaultPreviewChars = 450

const (
	previewTextItems = 2
	previewWords     = 5
	previewQuizzes   = 3
)

// Preview is the compact admin list view of a block.
type Preview struct {
	Type     domain.BlockType `json:"type"`
	Items    []PreviewItem    `json:"items,omitempty"`
	VideoURL string           `json:"videoUrl,omitempty"`
	Lines    []string         `json:"lines,omitempty"`
	More     int              `json:"more,omitempty"`
}

// PreviewItem is one truncated text item.
type PreviewItem struct {
	GermanHTML string `json:"germanHtml"`
	Serbian    string `json:"serbian,omitempty"`
}

// BuildPreview summarizes a block. Text blocks show their first two text
// items with media removed, annotated words as highlighted chips and at most
// limit characters of text each.
func BuildPreview(b domain.Block, limit int) (Preview, error) {
	if limit <= 0 {
		limit = DefaultPreviewChars
	}
	p := Preview{Type: b.Type}

	switch b.Type {
	case domain.BlockTypeText, domain.BlockTypeGrammar:
		for _, it := range b.Content {
			if it.Type != domain.ContentItemText {
				continue
			}
			if len(p.Items) == previewTextItems {
				break
			}
			it = markup.Upgrade(it)
			out, err := previewHTML(it.Text.Markup, limit)
			if err != nil {
				return Preview{}, err
			}
			p.Items = append(p.Items, PreviewItem{GermanHTML: out, Serbian: it.Text.Serbian})
		}
	case domain.BlockTypeVideo:
		p.VideoURL = b.VideoURL
	case domain.BlockTypeVocabulary:
		for i, w := range b.Words {
			if i == previewWords {
				p.More = len(b.Words) - previewWords
				break
			}
			line := strings.TrimSpace(w.Article + " " + w.German)
			if w.Serbian != "" {
				line += ": " + w.Serbian
			}
			p.Lines = append(p.Lines, line)
		}
	case domain.BlockTypeQuiz:
		for i, q := range b.Quizzes {
			if i == previewQuizzes {
				p.More = len(b.Quizzes) - previewQuizzes
				break
			}
			p.Lines = append(p.Lines, q.Question)
		}
	}
	return p, nil
}

func previewHTML(content string, limit int) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("parse preview: %w", err)
	}
	body := doc.Find("body")

	body.Find("script, style, iframe, img, video, audio").Remove()

	body.Find("span").Each(func(_ int, s *goquery.Selection) {
		n := s.Get(0)
		if !markup.IsInteractiveWord(n) {
			return
		}
		n.Data, n.DataAtom = atom.Mark.String(), atom.Mark
		n.Attr = []html.Attribute{{Key: "class", Val: "sw-preview-word"}}
	})

	if len(body.Nodes) > 0 {
		truncateText(body.Nodes[0], limit)
	}
	return body.Html()
}

// truncateText keeps the first limit runes of text in document order and
// marks the cut with an ellipsis.
func truncateText(root *html.Node, limit int) {
	remaining := limit
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			rs := []rune(n.Data)
			switch {
			case remaining <= 0:
				n.Data = ""
			case len(rs) > remaining:
				n.Data = string(rs[:remaining]) + Placeholder
				remaining = 0
			default:
				remaining -= len(rs)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
}
