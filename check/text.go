package check

import "iter"

// isWordByte reports whether c can be part of a word. Bytes above ASCII
// are letters of the dictionary's 8-bit encoding.
func isWordByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= 0x80
}

// words yields the offset and text of every word in buf. A word is a run
// of letters; an apostrophe between two letters belongs to the word.
func words(buf []byte) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		for i < len(buf) {
			if !isWordByte(buf[i]) {
				i++
				continue
			}
			start := i
			for i < len(buf) {
				if isWordByte(buf[i]) {
					i++
					continue
				}
				if buf[i] == '\'' && i+1 < len(buf) && isWordByte(buf[i+1]) {
					i += 2
					continue
				}
				break
			}
			if !yield(start, string(buf[start:i])) {
				return
			}
		}
	}
}

// lowerInitial returns word with a leading ASCII capital lowered, and
// whether anything changed. An all-capital word is lowered entirely.
func lowerInitial(word string) (string, bool) {
	if word == "" || word[0] < 'A' || word[0] > 'Z' {
		return word, false
	}
	upper := true
	for i := 1; i < len(word); i++ {
		if word[i] >= 'a' && word[i] <= 'z' {
			upper = false
			break
		}
	}
	b := []byte(word)
	if upper {
		for i, c := range b {
			if c >= 'A' && c <= 'Z' {
				b[i] = c + ('a' - 'A')
			}
		}
	} else {
		b[0] += 'a' - 'A'
	}
	return string(b), true
}
