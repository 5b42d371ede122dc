// Package lessonimport loads lesson packs written in YAML or JSON into the
// course. Packs are checked against an embedded JSON Schema, and plain text
// items are converted with the editor paste rule so that [[wort]] shorthand
// becomes the same interactive-word markup an author would produce.
package lessonimport

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
	"github.com/nenadmarinkovic/sprachenwald/internal/editor"
)

//go:embed schema.json
var schemaJSON []byte

var schema = gojsonschema.NewBytesLoader(schemaJSON)

// Pack is a parsed lesson pack.
type Pack struct {
	Lessons []PackLesson `json:"lessons"`
}

// PackLesson is one lesson of a pack.
type PackLesson struct {
	Title  string      `json:"title"`
	Blocks []PackBlock `json:"blocks"`
}

// PackBlock holds the payload of one block; which fields apply follows Type.
type PackBlock struct {
	Type        domain.BlockType         `json:"type"`
	Title       string                   `json:"title"`
	Content     []PackItem               `json:"content"`
	VideoURL    string                   `json:"videoUrl"`
	Description string                   `json:"description"`
	Quizzes     []domain.Quiz            `json:"quizzes"`
	Words       []domain.VocabularyEntry `json:"words"`
}

// PackItem is a content item. German is plain text with optional [[wort]]
// shorthand; Markup is stored interactive-word HTML taken as is.
type PackItem struct {
	German   string `json:"german"`
	Markup   string `json:"markup"`
	Serbian  string `json:"serbian"`
	Hedgehog string `json:"hedgehog"`
}

// SchemaError lists every schema violation of a pack.
type SchemaError struct {
	Problems []string
}

func (e *SchemaError) Error() string {
	return "lesson pack does not match schema: " + strings.Join(e.Problems, "; ")
}

// Parse decodes a pack. name selects the format by extension: .yaml and .yml
// are YAML, anything else JSON.
func Parse(name string, data []byte) (Pack, error) {
	var doc any
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Pack{}, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return Pack{}, fmt.Errorf("decode json: %w", err)
		}
	}

	res, err := gojsonschema.Validate(schema, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return Pack{}, fmt.Errorf("validate pack: %w", err)
	}
	if !res.Valid() {
		problems := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			problems = append(problems, e.String())
		}
		return Pack{}, &SchemaError{Problems: problems}
	}

	// Round-trip through JSON so quizzes and words reuse their domain tags.
	raw, err := json.Marshal(doc)
	if err != nil {
		return Pack{}, fmt.Errorf("encode pack: %w", err)
	}
	var p Pack
	if err := json.Unmarshal(raw, &p); err != nil {
		return Pack{}, fmt.Errorf("decode pack: %w", err)
	}
	return p, nil
}

// ContentItems converts pack items into stored content items.
func (b PackBlock) ContentItems() ([]domain.ContentItem, error) {
	items := make([]domain.ContentItem, 0, len(b.Content))
	for i, it := range b.Content {
		switch {
		case it.Hedgehog != "":
			items = append(items, domain.NewHedgehogItem(it.Hedgehog))
		case it.Markup != "":
			items = append(items, domain.NewTextItem(it.Markup, it.Serbian))
		default:
			markup, err := Expand(it.German)
			if err != nil {
				return nil, fmt.Errorf("content[%d]: %w", i, err)
			}
			items = append(items, domain.NewTextItem(markup, it.Serbian))
		}
	}
	return items, nil
}

// Expand turns plain text with [[wort]] shorthand into interactive-word
// markup by pasting it into an empty editor.
func Expand(text string) (string, error) {
	ed, err := editor.New(editor.Config{InteractiveWord: editor.NewInteractiveWordExtension()})
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return ed.HTML(), nil
	}
	ed.Paste(strings.TrimSpace(text))
	return ed.HTML(), nil
}
