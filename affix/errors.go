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


package affix

import (
	"errors"
	"fmt"
)

// Load errors. Every error returned by Setup or Load wraps one of these
// inside a *LoadError.
var (
	// ErrFileOpen indicates the affix file is missing or unreadable.
	ErrFileOpen = errors.New("cannot open affix file")

	// ErrHeaderFieldCount indicates a rule group header without exactly
	// a flag, a cross product marker and an entry count.
	ErrHeaderFieldCount = errors.New("affix group header must have 3 fields")

	// ErrEntryFieldCount indicates a rule entry without exactly four fields,
	// or a group that ends before its declared entry count.
	ErrEntryFieldCount = errors.New("affix entry must have 4 fields")

	// ErrFlagMismatch indicates an entry whose flag or kind differs from its group.
	ErrFlagMismatch = errors.New("affix entry does not belong to its group")

	// ErrMalformedCondition indicates a condition string that cannot be compiled.
	ErrMalformedCondition = errors.New("malformed affix condition")

	// ErrBadHeaderValue indicates a header line with an unusable value.
	ErrBadHeaderValue = errors.New("bad header value")
)

// LoadError reports where loading an affix file failed.
// Line is 0 when no line applies (for example when the file cannot be opened).
type LoadError struct {
	File string
	Line int
	Err  error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
