package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/speller/core"
	"github.com/poiesic/speller/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStems(t *testing.T) storage.StemRepository {
	t.Helper()
	stems, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() { stems.Close(); backend.Close() })
	return stems
}

func TestStemRepository_AddAndGet(t *testing.T) {
	repo := newTestStems(t)
	ctx := context.Background()

	added, err := repo.AddStems(ctx,
		&core.Stem{Word: "create", Flags: "ADGS"},
		&core.Stem{Word: "box", Flags: "S"},
		&core.Stem{Word: "the"},
	)
	require.NoError(t, err)
	require.Len(t, added, 3)

	got, err := repo.GetStem(ctx, "create")
	require.NoError(t, err)
	assert.Equal(t, &core.Stem{Word: "create", Flags: "ADGS"}, got)

	got, err = repo.GetStem(ctx, "the")
	require.NoError(t, err)
	assert.Equal(t, "", got.Flags)

	_, err = repo.GetStem(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStemRepository_AddMergesFlags(t *testing.T) {
	repo := newTestStems(t)
	ctx := context.Background()

	_, err := repo.AddStems(ctx, &core.Stem{Word: "play", Flags: "DS"})
	require.NoError(t, err)

	added, err := repo.AddStems(ctx, &core.Stem{Word: "play", Flags: "SG"})
	require.NoError(t, err)
	require.Len(t, added, 1)
	assert.Equal(t, "DSG", added[0].Flags)

	got, err := repo.GetStem(ctx, "play")
	require.NoError(t, err)
	assert.Equal(t, "DSG", got.Flags)
}

func TestStemRepository_AddMergesWithinBatch(t *testing.T) {
	repo := newTestStems(t)
	ctx := context.Background()

	added, err := repo.AddStems(ctx,
		&core.Stem{Word: "walk", Flags: "D"},
		&core.Stem{Word: "walk", Flags: "G"},
	)
	require.NoError(t, err)
	require.Len(t, added, 1)
	assert.Equal(t, "DG", added[0].Flags)

	count, err := repo.CountStems(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)
}

func TestStemRepository_AddRejectsInvalid(t *testing.T) {
	repo := newTestStems(t)
	ctx := context.Background()

	_, err := repo.AddStems(ctx,
		&core.Stem{Word: "good", Flags: "S"},
		&core.Stem{Word: "bad", Flags: "SS"},
	)
	assert.ErrorIs(t, err, core.ErrDuplicateFlag)

	count, err := repo.CountStems(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "nothing from an invalid batch is stored")
}

func TestStemRepository_HasStem(t *testing.T) {
	repo := newTestStems(t)
	ctx := context.Background()

	_, err := repo.AddStems(ctx, &core.Stem{Word: "try", Flags: "DS"})
	require.NoError(t, err)

	tests := []struct {
		word string
		flag byte
		want bool
	}{
		{"try", 'D', true},
		{"try", 'S', true},
		{"try", 'G', false},
		{"tr", 'D', false},
		{"tryx", 'D', false},
	}

	for _, tt := range tests {
		got, err := repo.HasStem(ctx, tt.word, tt.flag)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "HasStem(%q, %q)", tt.word, tt.flag)
	}
}

func TestStemRepository_Delete(t *testing.T) {
	repo := newTestStems(t)
	ctx := context.Background()

	_, err := repo.AddStems(ctx,
		&core.Stem{Word: "a", Flags: "S"},
		&core.Stem{Word: "b", Flags: "S"},
	)
	require.NoError(t, err)

	err = repo.DeleteStems(ctx, "a", "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = repo.GetStem(ctx, "a")
	assert.NoError(t, err, "a failed delete removes nothing")

	require.NoError(t, repo.DeleteStems(ctx, "a"))
	_, err = repo.GetStem(ctx, "a")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	count, err := repo.CountStems(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)
}

func TestStemRepository_ForEachStem(t *testing.T) {
	repo := newTestStems(t)
	ctx := context.Background()

	_, err := repo.AddStems(ctx,
		&core.Stem{Word: "walk", Flags: "DG"},
		&core.Stem{Word: "box", Flags: "S"},
		&core.Stem{Word: "create", Flags: "ADGS"},
	)
	require.NoError(t, err)

	t.Run("visits stems in word order", func(t *testing.T) {
		var words []string
		err := repo.ForEachStem(ctx, func(stem *core.Stem) error {
			words = append(words, stem.Word)
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"box", "create", "walk"}, words)
	})

	t.Run("stops on callback error", func(t *testing.T) {
		stop := errors.New("stop")
		var words []string
		err := repo.ForEachStem(ctx, func(stem *core.Stem) error {
			words = append(words, stem.Word)
			if len(words) == 2 {
				return stop
			}
			return nil
		})
		assert.ErrorIs(t, err, stop)
		assert.Equal(t, []string{"box", "create"}, words)
	})

	t.Run("honors cancellation", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		err := repo.ForEachStem(cctx, func(stem *core.Stem) error { return nil })
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestStemRepository_Persistence(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	stems, _, backend, err := NewRepositories(dir)
	require.NoError(t, err)
	_, err = stems.AddStems(ctx, &core.Stem{Word: "direct", Flags: "IDG"})
	require.NoError(t, err)
	require.NoError(t, backend.Close())

	stems, _, backend, err = NewRepositories(dir)
	require.NoError(t, err)
	defer backend.Close()

	got, err := stems.GetStem(ctx, "direct")
	require.NoError(t, err)
	assert.Equal(t, "IDG", got.Flags)
}

func TestNewStemRepository_NilBackend(t *testing.T) {
	repo, err := NewStemRepository(nil)
	assert.Nil(t, repo)
	assert.ErrorIs(t, err, storage.ErrRepositoryRequired)
}

func TestStemRepository_ServesAffixLookups(t *testing.T) {
	repo := newTestStems(t)
	ctx := context.Background()

	_, err := repo.AddStems(ctx, &core.Stem{Word: "cat", Flags: "A"})
	require.NoError(t, err)

	lookup := storage.NewStemLookup(ctx, repo, nil)
	assert.True(t, lookup.HasStem("cat", 'A'))
	assert.False(t, lookup.HasStem("cat", 'B'))
	assert.False(t, lookup.HasStem("dog", 'A'))
}
