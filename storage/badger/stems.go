package badger

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/speller/core"
	"github.com/poiesic/speller/storage"
)

// StemRepository implements storage.StemRepository for BadgerDB.
type StemRepository struct {
	backend *Backend
}

var _ storage.StemRepository = (*StemRepository)(nil)

// NewStemRepository creates a new StemRepository.
func NewStemRepository(backend *Backend) (*StemRepository, error) {
	if backend == nil {
		return nil, fmt.Errorf("%w: backend is nil", storage.ErrRepositoryRequired)
	}
	return &StemRepository{
		backend: backend,
	}, nil
}

// Close releases resources. StemRepository has no resources to release.
func (r *StemRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *StemRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddStems validates and stores stems, merging flags into words that are
// already stored. The whole batch is written in one transaction.
func (r *StemRepository) AddStems(ctx context.Context, stems ...*core.Stem) ([]*core.Stem, error) {
	for _, stem := range stems {
		if err := core.ValidateStem(stem); err != nil {
			return nil, err
		}
	}

	stored := make([]*core.Stem, 0, len(stems))
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// a batch may name the same word twice
		pending := make(map[string]*core.Stem, len(stems))
		for _, stem := range stems {
			if err := ctx.Err(); err != nil {
				return err
			}

			merged, ok := pending[stem.Word]
			if !ok {
				existing, err := readStem(tx, makeStemKey(stem.Word))
				if err != nil {
					return err
				}
				if existing != nil {
					merged = existing
				} else {
					merged = &core.Stem{Word: stem.Word}
				}
				pending[stem.Word] = merged
				stored = append(stored, merged)
			}
			merged.MergeFlags(stem.Flags)
		}

		for _, stem := range stored {
			if err := tx.Set(makeStemKey(stem.Word), storage.MarshalStem(stem)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}

	return stored, nil
}

// GetStem retrieves a single stem by word.
func (r *StemRepository) GetStem(ctx context.Context, word string) (*core.Stem, error) {
	var result *core.Stem
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readStem(tx, makeStemKey(word))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// HasStem reports whether word is stored with flag.
func (r *StemRepository) HasStem(ctx context.Context, word string, flag byte) (bool, error) {
	stem, err := r.GetStem(ctx, word)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return stem.HasFlag(flag), nil
}

// DeleteStems removes stems by word.
func (r *StemRepository) DeleteStems(ctx context.Context, words ...string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, word := range words {
			key := makeStemKey(word)
			if _, err := tx.Get(key); err != nil {
				if err == badger.ErrKeyNotFound {
					return fmt.Errorf("%w: stem %q", storage.ErrNotFound, word)
				}
				return err
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// CountStems returns the number of stored stems.
func (r *StemRepository) CountStems(ctx context.Context) (uint64, error) {
	var count uint64
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(stemPrefix)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// ForEachStem calls fn for every stored stem in word order.
// The iteration runs against a single snapshot of the database.
func (r *StemRepository) ForEachStem(ctx context.Context, fn func(stem *core.Stem) error) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(stemPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			var stem *core.Stem
			err := iter.Item().Value(func(val []byte) error {
				var err error
				stem, err = storage.UnmarshalStem(val)
				return err
			})
			if err != nil {
				return err
			}

			if err := fn(stem); err != nil {
				return err
			}
		}
		return nil
	}, false)
}

// readStem reads a stem from the transaction.
// Returns nil, nil if the key doesn't exist.
func readStem(tx *badger.Txn, key []byte) (*core.Stem, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var stem *core.Stem
	err = item.Value(func(val []byte) error {
		var err error
		stem, err = storage.UnmarshalStem(val)
		return err
	})
	return stem, err
}
