package badger

import (
	"context"
	"testing"

	"github.com/poiesic/speller/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfoRepository(t *testing.T) {
	stems, info, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { stems.Close(); backend.Close() }()

	ctx := context.Background()

	loaded, err := info.LoadInfo(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded, "no info before the first save")

	first := &core.DictionaryInfo{AffixFingerprint: core.IDFromContent("a"), Encoding: "UTF-8", StemCount: 3}
	require.NoError(t, info.SaveInfo(ctx, first))

	second := &core.DictionaryInfo{AffixFingerprint: core.IDFromContent("b"), Encoding: "ISO8859-1", StemCount: 7}
	require.NoError(t, info.SaveInfo(ctx, second))

	loaded, err = info.LoadInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, loaded)

	count, err := stems.CountStems(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "the info record is not a stem")
}
