package vocabulary

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
	"github.com/nenadmarinkovic/sprachenwald/internal/export"
	"github.com/nenadmarinkovic/sprachenwald/pkg/ctxutil"
)

// TabGroup is one Sprachgarten tab with its words, newest first.
type TabGroup struct {
	Tab   domain.VocabularyTab
	Words []domain.VocabularyWord
}

// List returns the caller's words grouped into tabs in display order. A
// non-empty tab narrows the result to that tab.
func (s *Service) List(ctx context.Context, tab domain.VocabularyTab) ([]TabGroup, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	tabs := domain.AllTabs
	if tab != "" {
		if !slices.Contains(domain.AllTabs, tab) {
			return nil, domain.NewValidationError("type", "unknown vocabulary tab")
		}
		tabs = []domain.VocabularyTab{tab}
	}

	words, err := s.words.ListByUser(ctx, userID, ListLimit)
	if err != nil {
		return nil, err
	}

	groups := make([]TabGroup, len(tabs))
	index := make(map[domain.VocabularyTab]int, len(tabs))
	for i, t := range tabs {
		groups[i] = TabGroup{Tab: t, Words: []domain.VocabularyWord{}}
		index[t] = i
	}
	for _, w := range words {
		if i, ok := index[w.Tab()]; ok {
			groups[i].Words = append(groups[i].Words, w)
		}
	}
	return groups, nil
}

// Delete removes one of the caller's words. Words of other users are
// reported as not found.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	if err := s.words.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete vocabulary word: %w", err)
	}

	s.log.InfoContext(ctx, "vocabulary word deleted",
		slog.String("user_id", userID.String()),
		slog.String("word_id", id.String()),
	)
	return nil
}

// Export writes the caller's vocabulary as an XLSX workbook.
func (s *Service) Export(ctx context.Context, w io.Writer) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	words, err := s.words.ListByUser(ctx, userID, s.cfg.ExportMaxWords)
	if err != nil {
		return err
	}
	if err := export.VocabularyXLSX(w, words); err != nil {
		return fmt.Errorf("export vocabulary: %w", err)
	}
	return nil
}
