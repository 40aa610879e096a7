package storage

import (
	"context"
	"log/slog"

	"github.com/poiesic/speller/affix"
)

// stemLookup answers affix engine queries from a StemReader.
type stemLookup struct {
	ctx    context.Context
	repo   StemReader
	logger *slog.Logger
}

// NewStemLookup adapts repo to affix.StemLookup. The engine has no error
// path, so storage errors are logged and reported as a missing stem.
// ctx bounds every query made through the returned lookup.
func NewStemLookup(ctx context.Context, repo StemReader, logger *slog.Logger) affix.StemLookup {
	if logger == nil {
		logger = slog.Default()
	}
	return &stemLookup{ctx: ctx, repo: repo, logger: logger}
}

func (l *stemLookup) HasStem(word string, flag byte) bool {
	ok, err := l.repo.HasStem(l.ctx, word, flag)
	if err != nil {
		l.logger.Warn("stem lookup failed", "word", word, "flag", string(flag), "err", err)
		return false
	}
	return ok
}
