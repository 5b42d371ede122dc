package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Lesson is an ordered container of blocks.
type Lesson struct {
	ID        uuid.UUID
	Title     string
	Slug      string
	Order     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Block is one typed sub-unit of a lesson. Type is the variant tag and
// decides which of the payload fields are meaningful:
//   - text, grammar: Content
//   - video: VideoURL, Description
//   - quiz: Quizzes
//   - vocabulary: Words
type Block struct {
	ID          uuid.UUID
	LessonID    uuid.UUID
	Type        BlockType
	Title       string
	Slug        string
	Order       int
	Content     []ContentItem
	VideoURL    string
	Description string
	Quizzes     []Quiz
	Words       []VocabularyEntry
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BlockSlug derives the slug of the block of type t inside a lesson.
func BlockSlug(lessonSlug string, t BlockType) string {
	return Slugify(lessonSlug + "-" + string(t))
}

// EmbedURL converts a watch link into its embeddable form.
func (b Block) EmbedURL() string {
	return strings.Replace(b.VideoURL, "watch?v=", "embed/", 1)
}

// Validate checks the payload against the block tag.
func (b Block) Validate() error {
	var errs []FieldError

	if !b.Type.IsValid() {
		errs = append(errs, FieldError{Field: "type", Message: "unknown block type"})
	}
	if len(b.Title) > 300 {
		errs = append(errs, FieldError{Field: "title", Message: "too long"})
	}

	switch b.Type {
	case BlockTypeText, BlockTypeGrammar:
		for i, item := range b.Content {
			if !item.Type.IsValid() {
				errs = append(errs, FieldError{Field: fmt.Sprintf("content[%d].type", i), Message: "unknown content item type"})
			}
		}
	case BlockTypeVideo:
		if b.VideoURL != "" && !strings.HasPrefix(b.VideoURL, "http://") && !strings.HasPrefix(b.VideoURL, "https://") {
			errs = append(errs, FieldError{Field: "videoUrl", Message: "must be an http(s) URL"})
		}
	case BlockTypeQuiz:
		for i, q := range b.Quizzes {
			for _, fe := range q.Validate() {
				fe.Field = fmt.Sprintf("quizzes[%d].%s", i, fe.Field)
				errs = append(errs, fe)
			}
		}
	case BlockTypeVocabulary:
		for i, w := range b.Words {
			if strings.TrimSpace(w.German) == "" {
				errs = append(errs, FieldError{Field: fmt.Sprintf("words[%d].german", i), Message: "required"})
			}
		}
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// ContentItem is one entry of a text or grammar block: either running text
// or a hedgehog helper message.
type ContentItem struct {
	Type     ContentItemType
	Text     TextContent
	Hedgehog string
}

// TextContent is running text in one of two coexisting shapes. Markup is the
// canonical shape; Legacy holds the older structured word array. After the
// load-time upgrade only Markup is populated.
type TextContent struct {
	Markup  string
	Legacy  []InteractiveWordSpan
	Serbian string
}

// IsLegacy reports whether the content still uses the structured array shape.
func (t TextContent) IsLegacy() bool {
	return t.Markup == "" && len(t.Legacy) > 0
}

// NewTextItem builds a text item in the markup shape.
func NewTextItem(markup, serbian string) ContentItem {
	return ContentItem{Type: ContentItemText, Text: TextContent{Markup: markup, Serbian: serbian}}
}

// NewHedgehogItem builds a hedgehog helper message.
func NewHedgehogItem(text string) ContentItem {
	return ContentItem{Type: ContentItemHedgehog, Hedgehog: text}
}

type contentItemJSON struct {
	Type    ContentItemType `json:"type"`
	German  json.RawMessage `json:"german,omitempty"`
	Serbian string          `json:"serbian,omitempty"`
	Text    string          `json:"text,omitempty"`
}

func (c ContentItem) MarshalJSON() ([]byte, error) {
	out := contentItemJSON{Type: c.Type}
	switch c.Type {
	case ContentItemHedgehog:
		out.Text = c.Hedgehog
	default:
		var (
			german []byte
			err    error
		)
		if c.Text.IsLegacy() {
			german, err = json.Marshal(c.Text.Legacy)
		} else {
			german, err = json.Marshal(c.Text.Markup)
		}
		if err != nil {
			return nil, err
		}
		out.German = german
		out.Serbian = c.Text.Serbian
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts both the markup shape (german is a string) and the
// legacy shape (german is an array of words). Any other german value is
// treated as empty content.
func (c *ContentItem) UnmarshalJSON(data []byte) error {
	var in contentItemJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	*c = ContentItem{Type: in.Type}
	if in.Type == ContentItemHedgehog {
		c.Hedgehog = in.Text
		return nil
	}

	c.Text.Serbian = in.Serbian
	raw := bytes.TrimSpace(in.German)
	if len(raw) == 0 {
		return nil
	}
	switch raw[0] {
	case '"':
		return json.Unmarshal(raw, &c.Text.Markup)
	case '[':
		var words []InteractiveWordSpan
		if err := json.Unmarshal(raw, &words); err != nil {
			return nil
		}
		for i := range words {
			words[i].PartOfSpeech = ParsePartOfSpeech(string(words[i].PartOfSpeech))
			words[i].Case = ParseGrammaticalCase(string(words[i].Case))
		}
		c.Text.Legacy = words
	}
	return nil
}
