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

package filter

import (
	"bytes"
	"fmt"

	"github.com/coregx/ahocorasick"
)

// ContextFilter checks only the text between delimiter pairs, such as the
// string literals and comments of source code. A delimiter preceded by an
// odd number of backslashes is escaped and does not count. The delimiters
// themselves are hidden.
//
// With VisibleFirst the pairs are swapped: text outside them is checked and
// the delimited text is hidden.
type ContextFilter struct {
	pairs        []Delimiter
	visibleFirst bool
	openers      *ahocorasick.Automaton // nil when no pair has an opening delimiter
	byOpen       map[string]int

	visible bool
	// pair is the delimiter pair that started the current context, or -1.
	pair int
}

var _ Filter = (*ContextFilter)(nil)

// NewContextFilter creates a context filter. Without WithDelimiters the
// DefaultDelimiters are used.
func NewContextFilter(opts ...Option) (*ContextFilter, error) {
	o := applyOptions(opts)

	pairs := make([]Delimiter, 0, len(o.delimiters))
	for _, d := range o.delimiters {
		if d.Open == "" {
			return nil, fmt.Errorf("%w: empty opening delimiter (closing %q)", ErrBadDelimiter, d.Close)
		}
		if o.visibleFirst {
			d.Open, d.Close = d.Close, d.Open
		}
		pairs = append(pairs, d)
	}

	f := &ContextFilter{
		pairs:        pairs,
		visibleFirst: o.visibleFirst,
		byOpen:       make(map[string]int, len(pairs)),
	}

	builder := ahocorasick.NewBuilder()
	for i, d := range pairs {
		if d.Open == "" {
			continue
		}
		if _, dup := f.byOpen[d.Open]; dup {
			continue
		}
		f.byOpen[d.Open] = i
		builder.AddPattern([]byte(d.Open))
	}
	if len(f.byOpen) > 0 {
		automaton, err := builder.Build()
		if err != nil {
			return nil, fmt.Errorf("building delimiter automaton: %w", err)
		}
		f.openers = automaton
	}

	f.Reset()
	return f, nil
}

func (f *ContextFilter) Name() string { return "context" }

func (f *ContextFilter) Order() float64 { return 0.5 }

// Reset starts a new document outside any context.
func (f *ContextFilter) Reset() {
	f.visible = f.visibleFirst
	f.pair = -1
}

// Process blanks everything outside the current contexts.
func (f *ContextFilter) Process(buf []byte) {
	hideFrom := -1
	if !f.visible {
		hideFrom = 0
	}

	i := 0
	for i < len(buf) {
		if !f.visible {
			end, ok := f.nextOpening(buf, i)
			if !ok {
				break
			}
			blank(buf[hideFrom:end])
			hideFrom = -1
			f.visible = true
			i = end
			continue
		}

		if buf[i] == '\\' {
			i = skipEscape(buf, i)
			continue
		}
		if n, pair, ok := f.closingAt(buf, i); ok {
			f.visible = false
			f.pair = -1
			if f.pairs[pair].Open == "" {
				f.pair = pair
			}
			hideFrom = i
			i += n
			continue
		}
		i++
	}

	if hideFrom >= 0 {
		blank(buf[hideFrom:])
	}
}

// nextOpening finds the first unescaped opening delimiter at or after i,
// records its pair and returns the offset just past it. A hidden stretch
// entered through a pair with an empty opening delimiter, which only
// VisibleFirst produces, ends at the next newline instead.
func (f *ContextFilter) nextOpening(buf []byte, i int) (int, bool) {
	if f.pair >= 0 && f.pairs[f.pair].Open == "" {
		nl := bytes.IndexByte(buf[i:], '\n')
		if nl < 0 {
			return 0, false
		}
		f.pair = -1
		return i + nl, true
	}

	if f.openers == nil {
		return 0, false
	}
	for i < len(buf) {
		m := f.openers.Find(buf, i)
		if m == nil {
			return 0, false
		}
		if escaped(buf, m.Start) {
			i = m.Start + 1
			continue
		}
		f.pair = f.byOpen[string(buf[m.Start:m.End])]
		return m.End, true
	}
	return 0, false
}

// closingAt reports whether a closing delimiter of the current context
// starts at i, how long it is and which pair it belongs to. Outside a known
// pair any closing delimiter counts.
func (f *ContextFilter) closingAt(buf []byte, i int) (int, int, bool) {
	if f.pair < 0 {
		for p, d := range f.pairs {
			if d.Close != "" && bytes.HasPrefix(buf[i:], []byte(d.Close)) {
				return len(d.Close), p, true
			}
		}
		return 0, 0, false
	}

	closing := f.pairs[f.pair].Close
	if closing == "" {
		return 0, f.pair, buf[i] == '\n'
	}
	if bytes.HasPrefix(buf[i:], []byte(closing)) {
		return len(closing), f.pair, true
	}
	return 0, 0, false
}

// escaped reports whether buf[pos] follows an odd run of backslashes.
func escaped(buf []byte, pos int) bool {
	n := 0
	for j := pos - 1; j >= 0 && buf[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}

// skipEscape steps over a run of backslashes starting at i and over the
// byte an odd run escapes.
func skipEscape(buf []byte, i int) int {
	j := i
	for j < len(buf) && buf[j] == '\\' {
		j++
	}
	if (j-i)%2 == 1 && j < len(buf) {
		j++
	}
	return j
}
