package check

import (
	"context"
	"strings"
	"testing"

	"github.com/poiesic/speller/affix"
	"github.com/poiesic/speller/core"
	"github.com/poiesic/speller/filter"
	"github.com/poiesic/speller/storage"
	"github.com/poiesic/speller/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAffixes = `SET ISO8859-1

PFX A Y 1
PFX A 0 re .

SFX S Y 2
SFX S 0 es [sxzh]
SFX S 0 s [^sxzhy]

SFX D Y 2
SFX D 0 d e
SFX D 0 ed [^ey]
`

func setupChecker(t *testing.T, opts ...Option) *Checker {
	t.Helper()

	manager, err := affix.Load(strings.NewReader(testAffixes), "test.aff")
	require.NoError(t, err)

	stems, _, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() { stems.Close(); backend.Close() })

	_, err = stems.AddStems(context.Background(),
		&core.Stem{Word: "walk", Flags: "SD"},
		&core.Stem{Word: "box", Flags: "S"},
		&core.Stem{Word: "create", Flags: "AD"},
		&core.Stem{Word: "the"},
		&core.Stem{Word: "to"},
		&core.Stem{Word: "don't"},
		&core.Stem{Word: "they"},
	)
	require.NoError(t, err)

	c, err := NewChecker(manager, stems, opts...)
	require.NoError(t, err)
	return c
}

func TestNewChecker(t *testing.T) {
	manager, err := affix.Load(strings.NewReader(testAffixes), "test.aff")
	require.NoError(t, err)
	stems, _, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		stems.Close()
		backend.Close()
	}()

	t.Run("valid configuration", func(t *testing.T) {
		c, err := NewChecker(manager, stems, WithLogger(nil), WithMinWordLength(2))
		require.NoError(t, err)
		assert.Equal(t, 2, c.minWordLength)
		assert.NotNil(t, c.logger)
	})

	t.Run("nil manager", func(t *testing.T) {
		_, err := NewChecker(nil, stems)
		assert.Equal(t, ErrManagerRequired, err)
	})

	t.Run("nil stem repository", func(t *testing.T) {
		_, err := NewChecker(manager, nil)
		assert.Equal(t, ErrStemRepositoryRequired, err)
	})

	t.Run("bad minimum word length", func(t *testing.T) {
		_, err := NewChecker(manager, stems, WithMinWordLength(0))
		assert.Error(t, err)
	})
}

func TestCheckWord(t *testing.T) {
	c := setupChecker(t)
	ctx := context.Background()

	tests := []struct {
		word       string
		correct    bool
		stem       string
		wantPrefix string
		wantSuffix string
	}{
		{word: "walk", correct: true, stem: "walk"},
		{word: "walks", correct: true, stem: "walk", wantSuffix: "s"},
		{word: "walked", correct: true, stem: "walk", wantSuffix: "ed"},
		{word: "boxes", correct: true, stem: "box", wantSuffix: "es"},
		{word: "recreated", correct: true, stem: "create", wantPrefix: "re", wantSuffix: "d"},
		{word: "Walked", correct: true, stem: "walk", wantSuffix: "ed"},
		{word: "WALKS", correct: true, stem: "walk", wantSuffix: "s"},
		{word: "The", correct: true, stem: "the"},
		{word: "walkz"},
		{word: "boxs"},
		{word: "rewalk"},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			result, err := c.CheckWord(ctx, tt.word)
			require.NoError(t, err)
			require.NotNil(t, result)

			assert.Equal(t, tt.word, result.Word, "result keeps the word as given")
			assert.Equal(t, tt.correct, result.Correct)
			assert.Equal(t, tt.stem, result.Stem)

			if tt.wantPrefix == "" {
				assert.Nil(t, result.Prefix)
			} else if assert.NotNil(t, result.Prefix) {
				assert.Equal(t, tt.wantPrefix, result.Prefix.Append())
			}
			if tt.wantSuffix == "" {
				assert.Nil(t, result.Suffix)
			} else if assert.NotNil(t, result.Suffix) {
				assert.Equal(t, tt.wantSuffix, result.Suffix.Append())
			}
		})
	}
}

func TestCheckWord_Errors(t *testing.T) {
	c := setupChecker(t)

	_, err := c.CheckWord(context.Background(), "")
	assert.ErrorIs(t, err, core.ErrEmptyWord)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.CheckWord(ctx, "walks")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCheckText(t *testing.T) {
	c := setupChecker(t)

	got, err := c.CheckText(context.Background(), "The boxes walkd to Pariss, don't they?", nil)
	require.NoError(t, err)
	assert.Equal(t, []Misspelling{
		{Word: "walkd", Offset: 10},
		{Word: "Pariss", Offset: 19},
	}, got)
}

func TestCheckText_NoMisspellings(t *testing.T) {
	c := setupChecker(t)

	got, err := c.CheckText(context.Background(), "Walks to the boxes.", nil)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCheckText_MinWordLength(t *testing.T) {
	c := setupChecker(t, WithMinWordLength(3))

	got, err := c.CheckText(context.Background(), "xq walkd", nil)
	require.NoError(t, err)
	assert.Equal(t, []Misspelling{{Word: "walkd", Offset: 3}}, got)
}

func TestCheckText_Filters(t *testing.T) {
	tex, err := filter.New("tex")
	require.NoError(t, err)
	c := setupChecker(t, WithFilters(filter.NewChain(tex)))

	text := `\emph{wlk} \cite{zzz} walks`
	for range 2 {
		got, err := c.CheckText(context.Background(), text, nil)
		require.NoError(t, err)
		assert.Equal(t, []Misspelling{{Word: "wlk", Offset: 6}}, got)
	}

	t.Run("unterminated markup does not leak into the next call", func(t *testing.T) {
		_, err := c.CheckText(context.Background(), `\cite{zzz`, nil)
		require.NoError(t, err)

		got, err := c.CheckText(context.Background(), "wlk", nil)
		require.NoError(t, err)
		assert.Equal(t, []Misspelling{{Word: "wlk", Offset: 0}}, got)
	})
}

type recordingMonitor struct {
	length   int
	events   []string
	finished []Misspelling
}

func (m *recordingMonitor) Start(length int)        { m.length = length }
func (m *recordingMonitor) ExactHit(word string)    { m.events = append(m.events, "exact "+word) }
func (m *recordingMonitor) Miss(mis Misspelling)    { m.events = append(m.events, "miss "+mis.Word) }
func (m *recordingMonitor) Finish(ms []Misspelling) { m.finished = ms }
func (m *recordingMonitor) AffixHit(word string, match *affix.Match) {
	m.events = append(m.events, "affix "+word+" "+match.Stem)
}

func TestCheckText_Monitor(t *testing.T) {
	c := setupChecker(t)
	monitor := &recordingMonitor{}

	got, err := c.CheckText(context.Background(), "walk walks wlk", monitor)
	require.NoError(t, err)

	assert.Equal(t, 14, monitor.length)
	assert.Equal(t, []string{"exact walk", "affix walks walk", "miss wlk"}, monitor.events)
	assert.Equal(t, got, monitor.finished)
	assert.Equal(t, []Misspelling{{Word: "wlk", Offset: 11}}, got)
}

func TestCheckText_StorageClosed(t *testing.T) {
	manager, err := affix.Load(strings.NewReader(testAffixes), "test.aff")
	require.NoError(t, err)
	stems, _, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	c, err := NewChecker(manager, stems)
	require.NoError(t, err)

	require.NoError(t, backend.Close())
	_, err = c.CheckText(context.Background(), "walk", nil)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
