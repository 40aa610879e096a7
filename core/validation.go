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

import (
	"fmt"
)

// ValidateStem validates a Stem according to domain rules.
//
// Validation rules:
//   - Word must not be empty
//   - Word must not contain whitespace or control bytes
//   - every flag must be printable ASCII and appear once
//
// An empty flag set is valid: the stem is then only matched exactly.
func ValidateStem(stem *Stem) error {
	if stem == nil {
		return fmt.Errorf("%w: stem is nil", ErrInvalidStem)
	}

	if stem.Word == "" {
		return fmt.Errorf("%w: %w", ErrInvalidStem, ErrEmptyWord)
	}

	for i := 0; i < len(stem.Word); i++ {
		if c := stem.Word[i]; c <= ' ' || c == 0x7f {
			return fmt.Errorf("%w: %w: %q", ErrInvalidStem, ErrInvalidWord, stem.Word)
		}
	}

	if err := ValidateFlags(stem.Flags); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidStem, err)
	}

	return nil
}

// ValidateFlags checks that flags is a set of printable ASCII bytes.
func ValidateFlags(flags string) error {
	var seen [128]bool
	for i := 0; i < len(flags); i++ {
		f := flags[i]
		if !IsValidFlag(f) {
			return fmt.Errorf("%w: byte 0x%02x", ErrInvalidFlag, f)
		}
		if seen[f] {
			return fmt.Errorf("%w: %q", ErrDuplicateFlag, f)
		}
		seen[f] = true
	}
	return nil
}

// IsValidFlag reports whether f can be used as an affix flag.
func IsValidFlag(f byte) bool {
	return f > ' ' && f < 0x7f
}
