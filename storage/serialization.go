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


package storage

import (
	"fmt"

	"github.com/poiesic/speller/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	if err != nil {
		return 0, fmt.Errorf("%w: id: %w", ErrSerializationFailed, err)
	}
	return id, nil
}

// MarshalStem serializes a Stem to bytes.
func MarshalStem(stem *core.Stem) []byte {
	buf := make([]byte, core.StemMUS.Size(*stem))
	core.StemMUS.Marshal(*stem, buf)
	return buf
}

// UnmarshalStem deserializes a Stem from bytes.
func UnmarshalStem(data []byte) (*core.Stem, error) {
	stem, _, err := core.StemMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: stem: %w", ErrSerializationFailed, err)
	}
	return &stem, nil
}

// MarshalDictionaryInfo serializes a DictionaryInfo to bytes.
func MarshalDictionaryInfo(info *core.DictionaryInfo) []byte {
	buf := make([]byte, core.DictionaryInfoMUS.Size(*info))
	core.DictionaryInfoMUS.Marshal(*info, buf)
	return buf
}

// UnmarshalDictionaryInfo deserializes a DictionaryInfo from bytes.
func UnmarshalDictionaryInfo(data []byte) (*core.DictionaryInfo, error) {
	info, _, err := core.DictionaryInfoMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: dictionary info: %w", ErrSerializationFailed, err)
	}
	return &info, nil
}
