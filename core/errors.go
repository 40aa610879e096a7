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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidStem indicates a Stem failed validation.
	ErrInvalidStem = errors.New("invalid stem")

	// ErrEmptyWord indicates the Word field is empty.
	ErrEmptyWord = errors.New("word cannot be empty")

	// ErrInvalidWord indicates the Word field contains whitespace or control bytes.
	ErrInvalidWord = errors.New("word contains whitespace or control characters")

	// ErrInvalidFlag indicates a flag byte outside printable ASCII.
	ErrInvalidFlag = errors.New("invalid flag")

	// ErrDuplicateFlag indicates the same flag appears twice.
	ErrDuplicateFlag = errors.New("duplicate flag")
)
