package affix

import "fmt"

// MaxConditions is the largest number of boundary positions a single
// condition can constrain.
const MaxConditions = 64

// Condition is a compiled affix condition. For every byte value the table
// holds a bitmask whose bit i is set when that byte satisfies atom i.
type Condition struct {
	n     int
	table [256]uint64
}

// ParseCondition compiles a condition string made of `.` wildcards,
// literal bytes and bracketed classes (`[abc]`, `[^abc]`).
// A lone "." compiles to an empty condition that always holds.
func ParseCondition(s string) (Condition, error) {
	var c Condition
	if s == "." {
		return c, nil
	}

	for i := 0; i < len(s); {
		if c.n == MaxConditions {
			return Condition{}, fmt.Errorf("%w: %q has more than %d atoms", ErrMalformedCondition, s, MaxConditions)
		}
		bit := uint64(1) << c.n

		switch ch := s[i]; ch {
		case '[':
			end := i + 1
			for end < len(s) && s[end] != ']' {
				end++
			}
			if end == len(s) {
				return Condition{}, fmt.Errorf("%w: unterminated class in %q", ErrMalformedCondition, s)
			}
			members := s[i+1 : end]
			negate := len(members) > 0 && members[0] == '^'
			if negate {
				members = members[1:]
			}
			if len(members) == 0 {
				return Condition{}, fmt.Errorf("%w: empty class in %q", ErrMalformedCondition, s)
			}
			for j := 0; j < len(members); j++ {
				if members[j] >= 0x80 || members[j] == '[' {
					return Condition{}, fmt.Errorf("%w: invalid byte %q in class of %q", ErrMalformedCondition, members[j], s)
				}
			}
			if negate {
				for b := range c.table {
					c.table[b] |= bit
				}
				for j := 0; j < len(members); j++ {
					c.table[members[j]] &^= bit
				}
			} else {
				for j := 0; j < len(members); j++ {
					c.table[members[j]] |= bit
				}
			}
			i = end + 1
		case ']':
			return Condition{}, fmt.Errorf("%w: unexpected ']' in %q", ErrMalformedCondition, s)
		case '.':
			for b := range c.table {
				c.table[b] |= bit
			}
			i++
		default:
			if ch >= 0x80 {
				return Condition{}, fmt.Errorf("%w: invalid byte %q in %q", ErrMalformedCondition, ch, s)
			}
			c.table[ch] |= bit
			i++
		}
		c.n++
	}
	return c, nil
}

// Len returns the number of boundary positions the condition checks.
func (c *Condition) Len() int {
	return c.n
}

// Allows reports whether byte b satisfies atom i.
func (c *Condition) Allows(i int, b byte) bool {
	return i >= 0 && i < c.n && c.table[b]&(uint64(1)<<i) != 0
}

// matchLeading tests the atoms against the first bytes of s.
// The caller guarantees len(s) >= c.n.
func (c *Condition) matchLeading(s string) bool {
	for i := 0; i < c.n; i++ {
		if c.table[s[i]]&(uint64(1)<<i) == 0 {
			return false
		}
	}
	return true
}

// matchTrailing tests the atoms against the last bytes of s, atom n-1
// against the final byte. The caller guarantees len(s) >= c.n.
func (c *Condition) matchTrailing(s string) bool {
	off := len(s) - c.n
	for i := c.n - 1; i >= 0; i-- {
		if c.table[s[off+i]]&(uint64(1)<<i) == 0 {
			return false
		}
	}
	return true
}
