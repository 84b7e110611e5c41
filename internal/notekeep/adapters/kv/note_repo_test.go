package kv_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeep/internal/notekeep/domain/entities"
)

func makeNote(id, owner string, shared ...string) *entities.Note {
	if shared == nil {
		shared = []string{}
	}
	return &entities.Note{
		ID:         id,
		Title:      "title " + id,
		Content:    "content " + id,
		Tag:        "tag",
		Owner:      owner,
		CreatedAt:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		SharedWith: shared,
	}
}

func TestNoteRepositoryCreateAndGet(t *testing.T) {
	factory, _ := newTestFactory(t)
	noteRepo := factory.NoteRepository()
	ctx := context.Background()

	note := makeNote("1", "alice@example.com")
	require.NoError(t, noteRepo.Create(ctx, note))

	got, err := noteRepo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, note.Title, got.Title)
	assert.Equal(t, note.Owner, got.Owner)

	_, err = noteRepo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, entities.ErrNoteNotFound)
}

func TestNoteRepositoryListVisible(t *testing.T) {
	factory, _ := newTestFactory(t)
	noteRepo := factory.NoteRepository()
	ctx := context.Background()

	require.NoError(t, noteRepo.Create(ctx, makeNote("1", "alice@example.com")))
	require.NoError(t, noteRepo.Create(ctx, makeNote("2", "bob@example.com", "alice@example.com")))
	require.NoError(t, noteRepo.Create(ctx, makeNote("3", "bob@example.com")))

	visible, err := noteRepo.ListVisible(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Len(t, visible, 2)
	// Порядок коллекции сохраняется.
	assert.Equal(t, "1", visible[0].ID)
	assert.Equal(t, "2", visible[1].ID)
}

func TestNoteRepositoryUpdate(t *testing.T) {
	factory, _ := newTestFactory(t)
	noteRepo := factory.NoteRepository()
	ctx := context.Background()

	note := makeNote("1", "alice@example.com")
	require.NoError(t, noteRepo.Create(ctx, note))

	note.Title = "renamed"
	require.NoError(t, noteRepo.Update(ctx, note))

	got, err := noteRepo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Title)

	err = noteRepo.Update(ctx, makeNote("missing", "alice@example.com"))
	assert.ErrorIs(t, err, entities.ErrNoteNotFound)
}

func TestNoteRepositoryDelete(t *testing.T) {
	factory, _ := newTestFactory(t)
	noteRepo := factory.NoteRepository()
	ctx := context.Background()

	require.NoError(t, noteRepo.Create(ctx, makeNote("1", "alice@example.com")))
	require.NoError(t, noteRepo.Create(ctx, makeNote("2", "alice@example.com")))

	require.NoError(t, noteRepo.Delete(ctx, "1"))

	_, err := noteRepo.GetByID(ctx, "1")
	assert.ErrorIs(t, err, entities.ErrNoteNotFound)

	got, err := noteRepo.GetByID(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "2", got.ID)

	err = noteRepo.Delete(ctx, "1")
	assert.ErrorIs(t, err, entities.ErrNoteNotFound)
}
