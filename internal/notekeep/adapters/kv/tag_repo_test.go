package kv_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeep/internal/notekeep/domain/entities"
)

const tagOwner = "alice@example.com"

func TestTagRepositoryAddAndList(t *testing.T) {
	factory, _ := newTestFactory(t)
	tagRepo := factory.TagRepository()
	ctx := context.Background()

	first := &entities.Tag{ID: "a", Name: "Work", Color: "bg-red-500"}
	second := &entities.Tag{ID: "b", Name: "", Color: "bg-sky-500"}

	require.NoError(t, tagRepo.Add(ctx, tagOwner, first))
	require.NoError(t, tagRepo.Add(ctx, tagOwner, second))

	tags, err := tagRepo.List(ctx, tagOwner)
	require.NoError(t, err)
	require.Len(t, tags, 2)
	// Порядок вставки сохраняется.
	assert.Equal(t, "a", tags[0].ID)
	assert.Equal(t, "b", tags[1].ID)
}

func TestTagRepositoryListEmptyOwner(t *testing.T) {
	factory, _ := newTestFactory(t)
	tagRepo := factory.TagRepository()

	tags, err := tagRepo.List(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestTagRepositoryListRepairsColors(t *testing.T) {
	factory, mr := newTestFactory(t)
	tagRepo := factory.TagRepository()
	ctx := context.Background()

	stored := []*entities.Tag{
		{ID: "a", Name: "Work", Color: "bg-red-500"},
		{ID: "b", Name: "Legacy", Color: "magenta"},
		{ID: "c", Name: "Broken", Color: ""},
	}
	raw, err := json.Marshal(stored)
	require.NoError(t, err)
	require.NoError(t, mr.Set("tags_"+tagOwner, string(raw)))

	tags, err := tagRepo.List(ctx, tagOwner)
	require.NoError(t, err)
	require.Len(t, tags, 3)

	for i, tag := range tags {
		assert.Equal(t, stored[i].ID, tag.ID, "id must survive repair")
		assert.Equal(t, stored[i].Name, tag.Name, "name must survive repair")
		assert.True(t, entities.IsPaletteColor(tag.Color))
	}
	assert.Equal(t, "bg-red-500", tags[0].Color)

	// Починка сохраняется: повторное чтение возвращает те же цвета.
	again, err := tagRepo.List(ctx, tagOwner)
	require.NoError(t, err)
	for i := range tags {
		assert.Equal(t, tags[i].Color, again[i].Color)
	}
}

func TestTagRepositoryRename(t *testing.T) {
	factory, _ := newTestFactory(t)
	tagRepo := factory.TagRepository()
	ctx := context.Background()

	require.NoError(t, tagRepo.Add(ctx, tagOwner, &entities.Tag{ID: "a", Color: "bg-red-500"}))

	require.NoError(t, tagRepo.Rename(ctx, tagOwner, "a", "Work"))

	tags, err := tagRepo.List(ctx, tagOwner)
	require.NoError(t, err)
	assert.Equal(t, "Work", tags[0].Name)

	err = tagRepo.Rename(ctx, tagOwner, "missing", "Name")
	assert.ErrorIs(t, err, entities.ErrTagNotFound)
}

func TestTagRepositoryRemove(t *testing.T) {
	factory, _ := newTestFactory(t)
	tagRepo := factory.TagRepository()
	ctx := context.Background()

	require.NoError(t, tagRepo.Add(ctx, tagOwner, &entities.Tag{ID: "a", Color: "bg-red-500"}))
	require.NoError(t, tagRepo.Add(ctx, tagOwner, &entities.Tag{ID: "b", Color: "bg-sky-500"}))

	require.NoError(t, tagRepo.Remove(ctx, tagOwner, "a"))

	tags, err := tagRepo.List(ctx, tagOwner)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "b", tags[0].ID)

	err = tagRepo.Remove(ctx, tagOwner, "a")
	assert.ErrorIs(t, err, entities.ErrTagNotFound)
}
