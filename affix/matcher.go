package affix

// StemLookup reports whether word is a stored stem carrying flag.
// Implementations must be safe for concurrent use and must not depend on
// being called in any particular order.
type StemLookup interface {
	HasStem(word string, flag byte) bool
}

// StemLookupFunc adapts a function to StemLookup.
type StemLookupFunc func(word string, flag byte) bool

// HasStem calls f(word, flag).
func (f StemLookupFunc) HasStem(word string, flag byte) bool {
	return f(word, flag)
}

// Match describes how a word derives from a stored stem. Prefix and
// Suffix are nil when that kind of affix was not involved.
type Match struct {
	Stem   string
	Prefix *Rule
	Suffix *Rule
}

// AffixCheck reports whether word is a known stem with a prefix or a
// suffix (or both, as a cross product) applied.
func (m *Manager) AffixCheck(word string, lookup StemLookup) (*Match, bool) {
	if match, ok := m.PrefixCheck(word, lookup); ok {
		return match, true
	}
	return m.SuffixCheck(word, nil, lookup)
}

// PrefixCheck looks for a prefix rule that derives word from a stored stem.
// Cross-product prefixes also try every suffix on the remaining stem.
func (m *Manager) PrefixCheck(word string, lookup StemLookup) (*Match, bool) {
	var found *Match
	m.prefixes.walk(word, func(r *Rule) bool {
		stem, ok := r.remainder(word)
		if !ok {
			return false
		}
		if lookup.HasStem(stem, r.flag) {
			found = &Match{Stem: stem, Prefix: r}
			return true
		}
		if r.cross {
			if match, ok := m.SuffixCheck(stem, r, lookup); ok {
				found = match
				return true
			}
		}
		return false
	})
	return found, found != nil
}

// SuffixCheck looks for a suffix rule that derives word from a stored stem.
// When prefix is not nil, word is what remained after removing that prefix:
// only cross-product suffixes are tried and the stem must carry both flags.
func (m *Manager) SuffixCheck(word string, prefix *Rule, lookup StemLookup) (*Match, bool) {
	if prefix != nil && !prefix.cross {
		return nil, false
	}

	var found *Match
	m.suffixes.walk(reverse(word), func(r *Rule) bool {
		if prefix != nil && !r.cross {
			return false
		}
		stem, ok := r.remainder(word)
		if !ok || !lookup.HasStem(stem, r.flag) {
			return false
		}
		if prefix != nil && !lookup.HasStem(stem, prefix.flag) {
			return false
		}
		found = &Match{Stem: stem, Prefix: prefix, Suffix: r}
		return true
	})
	return found, found != nil
}
