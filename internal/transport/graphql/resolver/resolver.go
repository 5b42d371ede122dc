package resolver

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
	"github.com/nenadmarinkovic/sprachenwald/internal/render"
	"github.com/nenadmarinkovic/sprachenwald/internal/service/block"
	"github.com/nenadmarinkovic/sprachenwald/internal/service/lesson"
	"github.com/nenadmarinkovic/sprachenwald/internal/service/practice"
	"github.com/nenadmarinkovic/sprachenwald/internal/service/vocabulary"
	"github.com/nenadmarinkovic/sprachenwald/internal/transport/graphql/model"
	"github.com/nenadmarinkovic/sprachenwald/internal/transport/graphql/schema"
)

// lessonService defines what resolver needs from the Lesson service.
type lessonService interface {
	ListLessons(ctx context.Context) ([]domain.Lesson, error)
	GetLesson(ctx context.Context, slug string) (lesson.LessonWithBlocks, error)
}

// blockService defines what resolver needs from the Block service.
type blockService interface {
	GetBlock(ctx context.Context, slug string, f render.Filter) (block.View, error)
}

// userService defines what resolver needs from the User service.
type userService interface {
	Me(ctx context.Context) (domain.User, error)
}

// vocabularyService defines what resolver needs from the Vocabulary service.
type vocabularyService interface {
	AddSelected(ctx context.Context, input vocabulary.AddSelectedInput) ([]domain.VocabularyWord, error)
	List(ctx context.Context, tab domain.VocabularyTab) ([]vocabulary.TabGroup, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// practiceService defines what resolver needs from the Practice service.
type practiceService interface {
	Deck(ctx context.Context, in practice.DeckInput) (practice.Deck, error)
	Review(ctx context.Context, in practice.ReviewInput) (practice.Card, error)
}

// Resolver is the root resolver containing all service dependencies.
type Resolver struct {
	lesson     lessonService
	block      blockService
	user       userService
	vocabulary vocabularyService
	practice   practiceService
	log        *slog.Logger
}

// NewResolver creates a new Resolver with all service dependencies.
func NewResolver(
	log *slog.Logger,
	lesson lessonService,
	block blockService,
	user userService,
	vocabulary vocabularyService,
	practice practiceService,
) *Resolver {
	return &Resolver{
		lesson:     lesson,
		block:      block,
		user:       user,
		vocabulary: vocabulary,
		practice:   practice,
		log:        log.With("component", "graphql"),
	}
}

type queryResolver struct{ *Resolver }

type mutationResolver struct{ *Resolver }

type lessonResolver struct{ *Resolver }

type vocabularyWordResolver struct{ *Resolver }

type practiceCardResolver struct{ *Resolver }

// Fields binds the typed resolvers to the schema's field table.
func (r *Resolver) Fields() schema.Resolvers {
	q := &queryResolver{r}
	m := &mutationResolver{r}
	l := &lessonResolver{r}
	w := &vocabularyWordResolver{r}
	c := &practiceCardResolver{r}

	return schema.Resolvers{
		"Query": {
			"lessons": func(ctx context.Context, _ any, _ map[string]any) (any, error) {
				return q.Lessons(ctx)
			},
			"lesson": func(ctx context.Context, _ any, args map[string]any) (any, error) {
				return q.Lesson(ctx, stringArg(args, "slug"))
			},
			"block": func(ctx context.Context, _ any, args map[string]any) (any, error) {
				cases, err := stringsArg(args, "cases")
				if err != nil {
					return nil, err
				}
				return q.Block(ctx, stringArg(args, "slug"), optionalStringArg(args, "partOfSpeech"), cases, boolArg(args, "colorByArticle"))
			},
			"me": func(ctx context.Context, _ any, _ map[string]any) (any, error) {
				return q.Me(ctx)
			},
			"vocabulary": func(ctx context.Context, _ any, args map[string]any) (any, error) {
				return q.Vocabulary(ctx, optionalStringArg(args, "tab"))
			},
			"practiceDeck": func(ctx context.Context, _ any, args map[string]any) (any, error) {
				size, err := intArg(args, "size")
				if err != nil {
					return nil, err
				}
				return q.PracticeDeck(ctx, optionalStringArg(args, "tab"), size)
			},
		},
		"Mutation": {
			"addVocabulary": func(ctx context.Context, _ any, args map[string]any) (any, error) {
				germans, err := stringsArg(args, "germans")
				if err != nil {
					return nil, err
				}
				return m.AddVocabulary(ctx, stringArg(args, "blockSlug"), germans)
			},
			"deleteVocabulary": func(ctx context.Context, _ any, args map[string]any) (any, error) {
				id, err := uuidArg(args, "id")
				if err != nil {
					return nil, err
				}
				return m.DeleteVocabulary(ctx, id)
			},
			"reviewWord": func(ctx context.Context, _ any, args map[string]any) (any, error) {
				wordID, err := uuidArg(args, "wordId")
				if err != nil {
					return nil, err
				}
				duration, err := intArg(args, "durationMs")
				if err != nil {
					return nil, err
				}
				return m.ReviewWord(ctx, wordID, domain.ReviewGrade(stringArg(args, "grade")), duration)
			},
		},
		"Lesson": {
			"blocks": func(ctx context.Context, obj any, _ map[string]any) (any, error) {
				p, err := parent[model.Lesson](obj)
				if err != nil {
					return nil, err
				}
				return l.Blocks(ctx, p)
			},
		},
		"VocabularyWord": {
			"practice": func(ctx context.Context, obj any, _ map[string]any) (any, error) {
				p, err := parent[model.VocabularyWord](obj)
				if err != nil {
					return nil, err
				}
				return w.Practice(ctx, p)
			},
		},
		"PracticeCard": {
			"history": func(ctx context.Context, obj any, _ map[string]any) (any, error) {
				p, err := parent[model.PracticeCard](obj)
				if err != nil {
					return nil, err
				}
				return c.History(ctx, p)
			},
		},
	}
}
