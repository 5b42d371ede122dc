// Package vocab extracts the words a learner can add to the personal
// vocabulary from a lesson block.
package vocab

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
	"github.com/nenadmarinkovic/sprachenwald/internal/markup"
)

// Extract returns the vocabulary candidates of a block in reading order.
// Curated vocabulary blocks return their list as is. Text and grammar blocks
// yield one entry per distinct German form; the first occurrence wins.
// Other block types have no candidates.
func Extract(b domain.Block) []domain.VocabularyEntry {
	switch b.Type {
	case domain.BlockTypeVocabulary:
		return slices.Clone(b.Words)
	case domain.BlockTypeText, domain.BlockTypeGrammar:
		return fromContent(b.Content)
	}
	return []domain.VocabularyEntry{}
}

func fromContent(items []domain.ContentItem) []domain.VocabularyEntry {
	out := []domain.VocabularyEntry{}
	seen := make(map[string]struct{})
	for _, it := range items {
		it = markup.Upgrade(it)
		if it.Type != domain.ContentItemText {
			continue
		}
		for _, s := range markup.SpansOf(it.Text.Markup) {
			if !s.Valid() {
				continue
			}
			if _, dup := seen[s.German]; dup {
				continue
			}
			seen[s.German] = struct{}{}
			out = append(out, s.Entry())
		}
	}
	return out
}

// Select returns the candidates whose German is in germans, in candidate
// order and at most once per German.
func Select(candidates []domain.VocabularyEntry, germans []string) []domain.VocabularyEntry {
	want := make(map[string]bool, len(germans))
	for _, g := range germans {
		want[g] = true
	}
	var out []domain.VocabularyEntry
	for _, c := range candidates {
		if want[c.German] {
			out = append(out, c)
			want[c.German] = false
		}
	}
	return out
}

// ToVocabularyWord builds the record stored for one selected entry.
func ToVocabularyWord(e domain.VocabularyEntry, userID, lessonID uuid.UUID, addedAt time.Time) domain.VocabularyWord {
	typ := e.PartOfSpeech
	if !typ.IsValid() {
		typ = domain.PartOfSpeechOther
	}
	return domain.VocabularyWord{
		UserID:       userID,
		LessonID:     lessonID,
		German:       e.German,
		Serbian:      e.Serbian,
		Article:      e.Article,
		PartOfSpeech: e.PartOfSpeech,
		Info:         e.Info,
		Type:         typ,
		AddedAt:      addedAt,
	}
}
