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


// Package check spell checks words and documents against a stem
// dictionary and an affix manager.
//
// A word is correct when it is stored as a stem, or when the affix
// manager can derive it from a stored stem by removing a prefix, a suffix
// or both. Capitalized words that fail are retried in lower case.
//
// CheckText runs the text through an optional filter.Chain first, so
// markup and other uncheckable regions are skipped while reported offsets
// still point into the original text.
package check
