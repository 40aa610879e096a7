package affix

// Expansion is one surface form produced from a root.
type Expansion struct {
	Word string
	// Cross reports whether the form may still take an affix of the other kind.
	Cross bool
}

// Expand generates the surface forms of root allowed by flags, at most limit
// of them. The order is fixed: the root itself, suffixed forms, prefixed
// forms of the cross-allowed suffixed forms, then prefixed forms of the
// root. Within a flag, rules keep their order in the affix file.
func (m *Manager) Expand(root string, flags string, limit int) []Expansion {
	if limit <= 0 {
		return nil
	}

	out := make([]Expansion, 0, min(limit, 16))
	out = append(out, Expansion{Word: root})
	emit := func(word string, cross bool) {
		if len(out) < limit {
			out = append(out, Expansion{Word: word, Cross: cross})
		}
	}

	for i := 0; i < len(flags); i++ {
		for _, idx := range m.suffixes.flagged(flags[i]) {
			r := &m.suffixes.rules[idx]
			if word, ok := r.applyTo(root); ok {
				emit(word, r.cross)
			}
		}
	}

	suffixed := len(out)
	for j := 1; j < suffixed; j++ {
		if !out[j].Cross {
			continue
		}
		base := out[j].Word
		for i := 0; i < len(flags); i++ {
			for _, idx := range m.prefixes.flagged(flags[i]) {
				r := &m.prefixes.rules[idx]
				if !r.cross {
					continue
				}
				if word, ok := r.applyTo(base); ok {
					emit(word, r.cross)
				}
			}
		}
	}

	for i := 0; i < len(flags); i++ {
		for _, idx := range m.prefixes.flagged(flags[i]) {
			r := &m.prefixes.rules[idx]
			if word, ok := r.applyTo(root); ok {
				emit(word, r.cross)
			}
		}
	}
	return out
}
