package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// InteractiveWordSpan is one annotated run of German text with its gloss
// and grammar metadata. JSON names follow the legacy structured content shape.
type InteractiveWordSpan struct {
	German       string          `json:"german"`
	Translation  string          `json:"serbian,omitempty"`
	PartOfSpeech PartOfSpeech    `json:"partOfSpeech,omitempty"`
	Case         GrammaticalCase `json:"case,omitempty"`
	Article      string          `json:"article,omitempty"`
	IsVerb       bool            `json:"isVerb,omitempty"`
	Note         string          `json:"info,omitempty"`
	Example      string          `json:"example,omitempty"`
	Slug         string          `json:"slug,omitempty"`
}

// Valid reports whether the span may exist: German must carry non-space text.
func (s InteractiveWordSpan) Valid() bool {
	return strings.TrimSpace(s.German) != ""
}

// WithSlug returns a copy whose Slug is derived from German.
func (s InteractiveWordSpan) WithSlug() InteractiveWordSpan {
	s.Slug = Slugify(s.German)
	return s
}

// Entry converts the span into the shape offered by the "add to vocabulary" flow.
func (s InteractiveWordSpan) Entry() VocabularyEntry {
	return VocabularyEntry{
		German:       s.German,
		Serbian:      s.Translation,
		Article:      s.Article,
		PartOfSpeech: s.PartOfSpeech,
		Info:         s.Note,
	}
}

// VocabularyEntry is a word candidate for the personal vocabulary, and the
// element type of curated vocabulary blocks.
type VocabularyEntry struct {
	German       string       `json:"german"`
	Serbian      string       `json:"serbian"`
	Article      string       `json:"article,omitempty"`
	PartOfSpeech PartOfSpeech `json:"partOfSpeech,omitempty"`
	Info         string       `json:"info,omitempty"`
}

// VocabularyWord is a persisted entry of a user's Sprachgarten.
// LessonID is a lookup reference only; deleting the lesson keeps the word.
type VocabularyWord struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	LessonID     uuid.UUID
	German       string
	Serbian      string
	Article      string
	PartOfSpeech PartOfSpeech
	Info         string
	Type         PartOfSpeech
	AddedAt      time.Time
}

// Tab returns the Sprachgarten tab the word is listed under.
func (w VocabularyWord) Tab() VocabularyTab {
	return TabFor(w.Type)
}
