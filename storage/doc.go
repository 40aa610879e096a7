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


// Package storage provides the storage abstraction layer for the stem dictionary.
//
// This package defines repository interfaces that decouple the dictionary
// store from the affix engine and the checker. The affix engine never talks
// to a repository directly: it asks an affix.StemLookup, and NewStemLookup
// adapts a StemRepository to that interface.
//
// # Constructor Return Type Pattern
//
// Public constructors of storage backends return the interfaces defined here:
//
//	stems, info, backend, err := badger.NewRepositories(path)
//
// Internal constructors may return concrete types since they're only used
// within the implementation package.
//
// # Architecture
//
//   - Repository: operations shared by every repository
//   - StemRepository: dictionary roots and their affix flags
//   - InfoRepository: the single DictionaryInfo record
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines. The checker and the
// ingestion pipeline both read stems from many goroutines at once.
//
// # Context Support
//
// All repository methods accept context.Context for cancellation.
// Pass context.Background() for operations without specific timeout
// requirements.
package storage
