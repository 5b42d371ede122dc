package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with the given role.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	u := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		Name:      "Test User " + suffix,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		u.ID, u.Email, u.Name, string(u.Role), u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return u
}

// SeedLesson inserts a lesson with a unique title at the given order.
func SeedLesson(t *testing.T, pool *pgxpool.Pool, order int) domain.Lesson {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	title := "Lekcija " + uniqueSuffix()
	l := domain.Lesson{
		ID:        uuid.New(),
		Title:     title,
		Slug:      domain.Slugify(title),
		Order:     order,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO lessons (id, title, slug, sort_order, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		l.ID, l.Title, l.Slug, l.Order, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLesson: %v", err)
	}
	return l
}

// SeedBlock inserts a block of type typ into lesson with the given content.
func SeedBlock(t *testing.T, pool *pgxpool.Pool, lesson domain.Lesson, typ domain.BlockType, order int, content []domain.ContentItem) domain.Block {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	b := domain.Block{
		ID:        uuid.New(),
		LessonID:  lesson.ID,
		Type:      typ,
		Title:     string(typ),
		Slug:      domain.BlockSlug(lesson.Slug, typ),
		Order:     order,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if b.Content == nil {
		b.Content = []domain.ContentItem{}
	}

	raw, err := json.Marshal(b.Content)
	if err != nil {
		t.Fatalf("testhelper: SeedBlock marshal: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO blocks (id, lesson_id, type, title, slug, sort_order, content, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		b.ID, b.LessonID, string(b.Type), b.Title, b.Slug, b.Order, raw, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBlock: %v", err)
	}
	return b
}

// SeedWord inserts a vocabulary word of userID.
func SeedWord(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, german string) domain.VocabularyWord {
	t.Helper()

	w := domain.VocabularyWord{
		ID:           uuid.New(),
		UserID:       userID,
		LessonID:     uuid.New(),
		German:       german,
		Serbian:      "prevod " + uniqueSuffix(),
		PartOfSpeech: domain.PartOfSpeechNoun,
		Type:         domain.PartOfSpeechNoun,
		AddedAt:      time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO user_vocabulary (id, user_id, lesson_id, german, serbian, part_of_speech, type, added_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		w.ID, w.UserID, w.LessonID, w.German, w.Serbian, string(w.PartOfSpeech), string(w.Type), w.AddedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord: %v", err)
	}
	return w
}
