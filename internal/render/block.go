package render

import (
	"fmt"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
	"github.com/nenadmarinkovic/sprachenwald/internal/markup"
)

// Item is one rendered content item of a text or grammar block.
type Item struct {
	Type    domain.ContentItemType `json:"type"`
	HTML    string                 `json:"html"`
	Serbian string                 `json:"serbian,omitempty"`
	Words   []Word                 `json:"words,omitempty"`
}

// Block is the reading view of a block. Which fields are set follows Type.
type Block struct {
	Type        domain.BlockType         `json:"type"`
	Title       string                   `json:"title"`
	Slug        string                   `json:"slug"`
	Items       []Item                   `json:"items,omitempty"`
	EmbedURL    string                   `json:"embedUrl,omitempty"`
	Description string                   `json:"description,omitempty"`
	Quizzes     []domain.PublicQuiz      `json:"quizzes,omitempty"`
	Words       []domain.VocabularyEntry `json:"words,omitempty"`
}

// RenderContent renders one content item after upgrading legacy content.
func RenderContent(item domain.ContentItem, f Filter) (Item, error) {
	r := renderer{filter: f}
	return r.item(item)
}

func (r *renderer) item(item domain.ContentItem) (Item, error) {
	item = markup.Upgrade(item)
	switch item.Type {
	case domain.ContentItemText:
		res, err := r.render(item.Text.Markup)
		if err != nil {
			return Item{}, fmt.Errorf("render text item: %w", err)
		}
		return Item{Type: item.Type, HTML: res.HTML, Serbian: item.Text.Serbian, Words: res.Words}, nil
	case domain.ContentItemHedgehog:
		return Item{Type: item.Type, HTML: item.Hedgehog}, nil
	}
	return Item{Type: item.Type}, nil
}

// RenderBlock renders a block according to its tag. Word indexes are unique
// across all items of the block.
func RenderBlock(b domain.Block, f Filter) (Block, error) {
	out := Block{Type: b.Type, Title: b.Title, Slug: b.Slug}

	switch b.Type {
	case domain.BlockTypeText, domain.BlockTypeGrammar:
		r := renderer{filter: f}
		for _, it := range b.Content {
			item, err := r.item(it)
			if err != nil {
				return Block{}, err
			}
			out.Items = append(out.Items, item)
		}
	case domain.BlockTypeVideo:
		out.EmbedURL = b.EmbedURL()
		out.Description = b.Description
	case domain.BlockTypeQuiz:
		for _, q := range b.Quizzes {
			out.Quizzes = append(out.Quizzes, q.Public())
		}
	case domain.BlockTypeVocabulary:
		out.Words = b.Words
	}
	return out, nil
}
