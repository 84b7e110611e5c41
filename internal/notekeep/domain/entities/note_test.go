package entities_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"notekeep/internal/notekeep/domain/entities"
)

func TestNoteVisibility(t *testing.T) {
	note := &entities.Note{
		ID:         "1",
		Owner:      "alice@example.com",
		SharedWith: []string{"bob@example.com"},
	}

	assert.True(t, note.IsOwner("alice@example.com"))
	assert.False(t, note.IsOwner("bob@example.com"))

	assert.True(t, note.IsSharedWith("bob@example.com"))
	assert.False(t, note.IsSharedWith("alice@example.com"))

	assert.True(t, note.VisibleTo("alice@example.com"))
	assert.True(t, note.VisibleTo("bob@example.com"))
	assert.False(t, note.VisibleTo("eve@example.com"))

	assert.True(t, note.CanEdit("bob@example.com"))
	assert.False(t, note.CanEdit("eve@example.com"))
}

func TestRemoveSharedUser(t *testing.T) {
	note := &entities.Note{
		SharedWith: []string{"bob@example.com", "carol@example.com"},
	}

	note.RemoveSharedUser("bob@example.com")
	assert.Equal(t, []string{"carol@example.com"}, note.SharedWith)

	// Удаление отсутствующего email ничего не меняет.
	note.RemoveSharedUser("ghost@example.com")
	assert.Equal(t, []string{"carol@example.com"}, note.SharedWith)
}

func TestNewNoteID(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 42, time.UTC)
	id := entities.NewNoteID(now)

	assert.NotEmpty(t, id)
	assert.NotEqual(t, id, entities.NewNoteID(now.Add(time.Nanosecond)))
}
