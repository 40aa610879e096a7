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


// Package affix implements prefix and suffix analysis for spell checking.
//
// An affix file declares groups of prefix (PFX) and suffix (SFX) rules:
//
//	SET ISO8859-1
//	PFX A Y 1
//	PFX A   0     re         .
//	SFX D Y 2
//	SFX D   0     ed         [^y]
//	SFX D   y     ied        y
//
// Each rule strips some text from a root, appends its affix and is only
// allowed when the characters at the boundary satisfy its condition.
//
// # Checking
//
// Manager.AffixCheck decides whether an unknown word is a stored stem with
// affixes applied. The stem dictionary itself lives elsewhere and is
// reached through the StemLookup callback:
//
//	m, err := affix.Setup("en_US.aff")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	match, ok := m.AffixCheck("cats", lookup)
//
// Rules are indexed per kind in 256 buckets keyed by the first byte of the
// affix (reversed for suffixes). Inside a bucket the rules are sorted and
// linked so a lookup only visits rules whose affix is compatible with the
// word, skipping whole runs of longer affixes once a shorter one fails.
//
// # Expansion
//
// Manager.Expand goes the other way and lists every surface form of a root
// and its flags, bounded by a caller-supplied maximum.
//
// # Thread Safety
//
// A Manager is immutable once Setup or Load returns and can be shared by
// any number of goroutines.
package affix
