package resolver

import (
	"context"

	"github.com/google/uuid"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
	"github.com/nenadmarinkovic/sprachenwald/internal/service/practice"
	"github.com/nenadmarinkovic/sprachenwald/internal/service/vocabulary"
	"github.com/nenadmarinkovic/sprachenwald/internal/transport/graphql/model"
)

func (r *mutationResolver) AddVocabulary(ctx context.Context, blockSlug string, germans []string) ([]model.VocabularyWord, error) {
	words, err := r.vocabulary.AddSelected(ctx, vocabulary.AddSelectedInput{BlockSlug: blockSlug, Germans: germans})
	if err != nil {
		return nil, err
	}
	return model.NewVocabularyWords(words), nil
}

func (r *mutationResolver) DeleteVocabulary(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := r.vocabulary.Delete(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

func (r *mutationResolver) ReviewWord(ctx context.Context, wordID uuid.UUID, grade domain.ReviewGrade, durationMs *int) (model.PracticeCard, error) {
	card, err := r.practice.Review(ctx, practice.ReviewInput{WordID: wordID, Grade: grade, DurationMs: durationMs})
	if err != nil {
		return model.PracticeCard{}, err
	}
	return model.NewDeckCard(card), nil
}
