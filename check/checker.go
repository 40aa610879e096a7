package check

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/poiesic/speller/affix"
	"github.com/poiesic/speller/core"
	"github.com/poiesic/speller/filter"
	"github.com/poiesic/speller/storage"
)

// Result is the outcome of checking one word.
type Result struct {
	Word    string
	Correct bool
	// Stem is the stored root the word resolved to, if any. It differs
	// from Word when affixes were removed or the word was lowered.
	Stem   string
	Prefix *affix.Rule
	Suffix *affix.Rule
}

// Misspelling is a word CheckText could not resolve. Offset is the byte
// offset of the word in the checked text.
type Misspelling struct {
	Word   string
	Offset int
}

// Checker checks words against a stem dictionary.
type Checker struct {
	manager       *affix.Manager
	stems         storage.StemReader
	filters       *filter.Chain
	minWordLength int
	logger        *slog.Logger
}

// Option configures a Checker.
type Option func(*Checker) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Checker) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// WithFilters sets the filter chain CheckText runs before tokenizing.
// Default is no filtering.
func WithFilters(chain *filter.Chain) Option {
	return func(c *Checker) error {
		c.filters = chain
		return nil
	}
}

// WithMinWordLength makes CheckText skip words shorter than n bytes.
// Default is 1.
func WithMinWordLength(n int) Option {
	return func(c *Checker) error {
		if n < 1 {
			return fmt.Errorf("minimum word length must be at least 1, got %d", n)
		}
		c.minWordLength = n
		return nil
	}
}

// NewChecker creates a new checker.
func NewChecker(manager *affix.Manager, stems storage.StemReader, opts ...Option) (*Checker, error) {
	if manager == nil {
		return nil, ErrManagerRequired
	}
	if stems == nil {
		return nil, ErrStemRepositoryRequired
	}

	c := &Checker{
		manager:       manager,
		stems:         stems,
		minWordLength: 1,
		logger:        slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// CheckWord reports whether word is spelled correctly.
func (c *Checker) CheckWord(ctx context.Context, word string) (*Result, error) {
	if word == "" {
		return nil, core.ErrEmptyWord
	}

	result, err := c.resolve(ctx, word)
	if err != nil || result.Correct {
		return result, err
	}

	if lower, ok := lowerInitial(word); ok {
		retry, err := c.resolve(ctx, lower)
		if err != nil {
			return nil, err
		}
		if retry.Correct {
			retry.Word = word
			return retry, nil
		}
	}
	return result, nil
}

// resolve tries word as a stored stem, then as an affixed form.
func (c *Checker) resolve(ctx context.Context, word string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	_, err := c.stems.GetStem(ctx, word)
	if err == nil {
		return &Result{Word: word, Correct: true, Stem: word}, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		c.logger.Error("error looking up stem", "word", word, "err", err)
		return nil, err
	}

	lookup := storage.NewStemLookup(ctx, c.stems, c.logger)
	if match, ok := c.manager.AffixCheck(word, lookup); ok {
		return &Result{
			Word:    word,
			Correct: true,
			Stem:    match.Stem,
			Prefix:  match.Prefix,
			Suffix:  match.Suffix,
		}, nil
	}
	return &Result{Word: word}, nil
}

// CheckText checks every word of text and returns the misspelled ones in
// the order they appear. The filter chain is reset first, so each call
// starts a new document.
func (c *Checker) CheckText(ctx context.Context, text string, monitor Monitor) ([]Misspelling, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	monitor.Start(len(text))

	buf := []byte(text)
	c.filters.Reset()
	c.filters.Process(buf)

	misspellings := make([]Misspelling, 0)
	for offset, word := range words(buf) {
		if len(word) < c.minWordLength {
			continue
		}

		result, err := c.CheckWord(ctx, word)
		if err != nil {
			return nil, err
		}
		switch {
		case !result.Correct:
			m := Misspelling{Word: word, Offset: offset}
			misspellings = append(misspellings, m)
			monitor.Miss(m)
		case result.Prefix == nil && result.Suffix == nil:
			monitor.ExactHit(word)
		default:
			monitor.AffixHit(word, &affix.Match{Stem: result.Stem, Prefix: result.Prefix, Suffix: result.Suffix})
		}
	}

	c.logger.Debug("checked text", "bytes", len(text), "misspellings", len(misspellings))
	monitor.Finish(misspellings)
	return misspellings, nil
}
