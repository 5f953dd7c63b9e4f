package repo

import (
	"MatchFun/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepo_AddPreservesOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	m := newMatch("Arsenal", "Chelsea", time.Now())
	require.NoError(t, s.Matches.Add(ctx, m))

	photos := [][]byte{{0x01}, {0x02}, {0x03}}
	tags := []string{"derby", "away"}
	loc := "Emirates Stadium"

	mem, err := s.Memories.Add(ctx, &m.ID, "what a night", tags, &loc, photos)
	require.NoError(t, err)

	memories, err := s.Memories.List(ctx)
	require.NoError(t, err)
	require.Len(t, memories, 1)

	got := memories[0]
	assert.Equal(t, mem.ID, got.ID)
	require.Len(t, got.Photos, 3)
	for i, p := range got.Photos {
		assert.Equal(t, photos[i], p.PhotoData)
		assert.Equal(t, i, p.Position)
	}
	require.Len(t, got.Tags, 2)
	assert.Equal(t, "derby", got.Tags[0].Value)
	assert.Equal(t, "away", got.Tags[1].Value)
	require.NotNil(t, got.Match)
	assert.Equal(t, "Arsenal", got.Match.HomeTeam)
}

func TestMemoryRepo_ListOrderedByCreatedAtDesc(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, desc := range []string{"first", "second", "third"} {
		_, err := s.Memories.Add(ctx, nil, desc, nil, nil, [][]byte{{0x01}})
		require.NoError(t, err)
		time.Sleep(20 * time.Millisecond) // разные createdAt
	}

	memories, err := s.Memories.List(ctx)
	require.NoError(t, err)
	require.Len(t, memories, 3)
	assert.Equal(t, "third", memories[0].MemoryDescription)
	assert.Equal(t, "first", memories[2].MemoryDescription)
}

func TestMemoryRepo_DeleteCascadesPhotosAndTags(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	mem, err := s.Memories.Add(ctx, nil, "to be deleted", []string{"x"}, nil,
		[][]byte{{0x01}, {0x02}, {0x03}})
	require.NoError(t, err)

	require.NoError(t, s.Memories.Delete(ctx, mem.ID))

	memories, err := s.Memories.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, memories)

	// от вложенных фото и тегов не должно остаться следа
	var photoCount, tagCount int64
	require.NoError(t, s.db.Model(&model.Photo{}).Count(&photoCount).Error)
	require.NoError(t, s.db.Model(&model.MemoryTag{}).Count(&tagCount).Error)
	assert.Zero(t, photoCount)
	assert.Zero(t, tagCount)
}

func TestMemoryRepo_DeleteMissingIsNoop(t *testing.T) {
	s := newTestStore(t)
	assert.NoError(t, s.Memories.Delete(context.Background(), "no-such-id"))
}
