package vocabulary

import (
	"context"
	"log/slog"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
	"github.com/nenadmarinkovic/sprachenwald/internal/vocab"
	"github.com/nenadmarinkovic/sprachenwald/pkg/ctxutil"
)

// AddSelected stores the chosen candidates of a block in the caller's
// vocabulary, one record per word in display order. Words already stored
// stay stored when a later one fails; the failure is a *PartialAddError.
func (s *Service) AddSelected(ctx context.Context, input AddSelectedInput) ([]domain.VocabularyWord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(s.content.MaxSelection); err != nil {
		return nil, err
	}

	b, err := s.blocks.BySlug(ctx, input.BlockSlug)
	if err != nil {
		return nil, err
	}

	selected := vocab.Select(vocab.Extract(b), input.Germans)
	if len(selected) == 0 {
		return nil, domain.NewValidationError("words", "none of the selected words belong to this block")
	}

	added := make([]domain.VocabularyWord, 0, len(selected))
	for _, e := range selected {
		w, err := s.words.Add(ctx, vocab.ToVocabularyWord(e, userID, b.LessonID, s.now()))
		if err != nil {
			names := make([]string, len(added))
			for i, a := range added {
				names[i] = a.German
			}
			s.log.ErrorContext(ctx, "vocabulary add stopped",
				slog.String("user_id", userID.String()),
				slog.String("failed", e.German),
				slog.Int("added", len(added)),
				slog.String("error", err.Error()),
			)
			return added, &PartialAddError{Added: names, Failed: e.German, Err: err}
		}
		added = append(added, w)
	}

	s.log.InfoContext(ctx, "vocabulary words added",
		slog.String("user_id", userID.String()),
		slog.String("block", b.Slug),
		slog.Int("count", len(added)),
	)
	return added, nil
}
