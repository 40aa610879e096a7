// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/speller/core"
	"github.com/poiesic/speller/storage"
)

// InfoRepository implements storage.InfoRepository for BadgerDB.
type InfoRepository struct {
	backend *Backend
}

var _ storage.InfoRepository = (*InfoRepository)(nil)

// NewInfoRepository creates a new InfoRepository.
func NewInfoRepository(backend *Backend) *InfoRepository {
	return &InfoRepository{
		backend: backend,
	}
}

// SaveInfo persists the dictionary info, replacing any previous record.
func (r *InfoRepository) SaveInfo(ctx context.Context, info *core.DictionaryInfo) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeInfoKey(), storage.MarshalDictionaryInfo(info)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// LoadInfo retrieves the dictionary info.
// Returns nil, nil if no info was saved.
func (r *InfoRepository) LoadInfo(ctx context.Context) (*core.DictionaryInfo, error) {
	var info *core.DictionaryInfo
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeInfoKey())
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return err
		}

		return item.Value(func(val []byte) error {
			var unmarshalErr error
			info, unmarshalErr = storage.UnmarshalDictionaryInfo(val)
			return unmarshalErr
		})
	}, false)

	return info, err
}
