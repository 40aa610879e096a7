package storage

import (
	"context"

	"github.com/poiesic/speller/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// StemReader is the read side of a StemRepository.
type StemReader interface {
	// GetStem retrieves a stem by its word.
	// Returns ErrNotFound if the word is not stored.
	GetStem(ctx context.Context, word string) (*core.Stem, error)

	// HasStem reports whether word is stored and carries flag.
	HasStem(ctx context.Context, word string, flag byte) (bool, error)
}

// StemRepository stores dictionary roots and their affix flags.
type StemRepository interface {
	Repository
	StemReader

	// AddStems validates and stores stems. A word that is already stored
	// keeps its flags and gains the new ones.
	// Returns the stored stems with merged flags.
	AddStems(ctx context.Context, stems ...*core.Stem) ([]*core.Stem, error)

	// DeleteStems removes stems by word.
	// Returns ErrNotFound if any word is not stored; nothing is removed then.
	DeleteStems(ctx context.Context, words ...string) error

	// CountStems returns the number of stored stems.
	CountStems(ctx context.Context) (uint64, error)

	// ForEachStem calls fn for every stored stem in byte order of the word.
	// Iteration stops at the first error fn returns, which is passed back.
	ForEachStem(ctx context.Context, fn func(stem *core.Stem) error) error
}

// InfoRepository persists the DictionaryInfo describing a stored dictionary.
type InfoRepository interface {
	// SaveInfo replaces the stored dictionary info.
	SaveInfo(ctx context.Context, info *core.DictionaryInfo) error

	// LoadInfo returns the stored dictionary info.
	// Returns nil, nil if none was saved yet.
	LoadInfo(ctx context.Context) (*core.DictionaryInfo, error)
}
