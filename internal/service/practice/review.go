package practice

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
	"github.com/nenadmarinkovic/sprachenwald/pkg/ctxutil"
)

// Review grades one of the caller's words, stores its new schedule and
// appends the answer to the review log. Words of other users are reported
// as not found.
func (s *Service) Review(ctx context.Context, in ReviewInput) (Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return Card{}, domain.ErrUnauthorized
	}
	if err := in.Validate(); err != nil {
		return Card{}, err
	}

	w, err := s.words.GetByID(ctx, in.WordID)
	if err != nil {
		return Card{}, err
	}
	if w.UserID != userID {
		return Card{}, fmt.Errorf("vocabulary_word %s: %w", in.WordID, domain.ErrNotFound)
	}

	now := s.now()
	current := domain.NewPracticeCard(w, s.cfg.DefaultEaseFactor, now)
	stored, err := s.cards.ByWordIDs(ctx, userID, []uuid.UUID{w.ID})
	if err != nil {
		return Card{}, fmt.Errorf("load practice card: %w", err)
	}
	if len(stored) > 0 {
		current = stored[0]
	}

	next := schedule(current, in.Grade, now, s.cfg)

	var saved domain.PracticeCard
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var txErr error
		saved, txErr = s.cards.Upsert(ctx, next)
		if txErr != nil {
			return fmt.Errorf("save practice card: %w", txErr)
		}
		_, txErr = s.reviews.Create(ctx, domain.PracticeReview{
			ID:           uuid.New(),
			WordID:       w.ID,
			UserID:       userID,
			Grade:        in.Grade,
			PrevStatus:   current.Status,
			PrevInterval: current.IntervalDays,
			DurationMs:   in.DurationMs,
			ReviewedAt:   now,
		})
		if txErr != nil {
			return fmt.Errorf("log review: %w", txErr)
		}
		return nil
	})
	if err != nil {
		return Card{}, fmt.Errorf("review word: %w", err)
	}

	s.log.InfoContext(ctx, "word reviewed",
		slog.String("user_id", userID.String()),
		slog.String("word_id", w.ID.String()),
		slog.String("grade", in.Grade.String()),
		slog.String("status", saved.Status.String()),
		slog.Int("interval_days", saved.IntervalDays),
	)
	return Card{Word: w, Schedule: saved}, nil
}
