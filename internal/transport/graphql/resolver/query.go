package resolver

import (
	"context"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
	"github.com/nenadmarinkovic/sprachenwald/internal/render"
	"github.com/nenadmarinkovic/sprachenwald/internal/service/practice"
	"github.com/nenadmarinkovic/sprachenwald/internal/transport/graphql/model"
)

func (r *queryResolver) Lessons(ctx context.Context) ([]model.Lesson, error) {
	lessons, err := r.lesson.ListLessons(ctx)
	if err != nil {
		return nil, err
	}
	return model.NewLessons(lessons), nil
}

func (r *queryResolver) Lesson(ctx context.Context, slug string) (model.Lesson, error) {
	l, err := r.lesson.GetLesson(ctx, slug)
	if err != nil {
		return model.Lesson{}, err
	}
	return model.NewLessonWithBlocks(l.Lesson, l.Blocks), nil
}

// Block renders a block under the reading filters. Unknown parts of speech
// and cases are ignored, as in the reader's query string.
func (r *queryResolver) Block(ctx context.Context, slug string, partOfSpeech *string, cases []string, colorByArticle bool) (model.BlockView, error) {
	f := render.Filter{
		Cases:          render.ParseCaseSet(cases),
		ColorByArticle: colorByArticle,
	}
	if partOfSpeech != nil {
		f.PartOfSpeech = domain.ParsePartOfSpeech(*partOfSpeech)
	}

	view, err := r.block.GetBlock(ctx, slug, f)
	if err != nil {
		return model.BlockView{}, err
	}
	return model.NewBlockView(view), nil
}

func (r *queryResolver) Me(ctx context.Context) (model.User, error) {
	u, err := r.user.Me(ctx)
	if err != nil {
		return model.User{}, err
	}
	return model.NewUser(u), nil
}

func (r *queryResolver) Vocabulary(ctx context.Context, tab *string) ([]model.VocabularyTab, error) {
	var t domain.VocabularyTab
	if tab != nil {
		t = domain.VocabularyTab(*tab)
	}
	groups, err := r.vocabulary.List(ctx, t)
	if err != nil {
		return nil, err
	}
	return model.NewVocabularyTabs(groups), nil
}

func (r *queryResolver) PracticeDeck(ctx context.Context, tab *string, size *int) (model.PracticeDeck, error) {
	var in practice.DeckInput
	if tab != nil {
		in.Tab = domain.VocabularyTab(*tab)
	}
	if size != nil {
		in.Size = *size
	}
	deck, err := r.practice.Deck(ctx, in)
	if err != nil {
		return model.PracticeDeck{}, err
	}
	return model.NewPracticeDeck(deck), nil
}
