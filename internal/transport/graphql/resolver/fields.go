package resolver

import (
	"context"

	"github.com/nenadmarinkovic/sprachenwald/internal/transport/graphql/dataloader"
	"github.com/nenadmarinkovic/sprachenwald/internal/transport/graphql/model"
)

// Blocks uses the blocks loaded with the lesson when present and batches
// the lookup across lessons otherwise.
func (r *lessonResolver) Blocks(ctx context.Context, obj model.Lesson) ([]model.BlockLink, error) {
	if obj.Blocks != nil {
		return obj.Blocks, nil
	}
	blocks, err := dataloader.FromContext(ctx).BlocksByLessonID.Load(ctx, obj.ID)()
	if err != nil {
		return nil, err
	}
	return model.NewBlockLinks(blocks), nil
}

func (r *vocabularyWordResolver) Practice(ctx context.Context, obj model.VocabularyWord) (*model.PracticeCard, error) {
	card, err := dataloader.FromContext(ctx).CardByWordID.Load(ctx, obj.ID)()
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, nil
	}
	c := model.NewPracticeCard(obj, *card)
	return &c, nil
}

func (r *practiceCardResolver) History(ctx context.Context, obj model.PracticeCard) ([]model.PracticeReview, error) {
	reviews, err := dataloader.FromContext(ctx).ReviewsByWordID.Load(ctx, obj.Word.ID)()
	if err != nil {
		return nil, err
	}
	return model.NewPracticeReviews(reviews), nil
}
