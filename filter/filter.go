package filter

import (
	"slices"
)

// Filter hides the parts of a text that should not be spell checked.
// Process overwrites hidden bytes with spaces in place, so byte offsets in
// the filtered text match the original. Filters keep state between calls
// to Process; Reset returns them to the state at the start of a document.
type Filter interface {
	Name() string
	// Order positions the filter in a Chain; lower runs first.
	Order() float64
	Reset()
	Process(buf []byte)
}

// Chain runs filters in ascending Order. Filters with equal Order run in
// the order they were added.
type Chain struct {
	filters []Filter
}

// NewChain creates a chain holding filters.
func NewChain(filters ...Filter) *Chain {
	c := &Chain{}
	for _, f := range filters {
		c.Add(f)
	}
	return c
}

// Add inserts f after every filter whose Order is not greater than its own.
func (c *Chain) Add(f Filter) {
	i, _ := slices.BinarySearchFunc(c.filters, f.Order(), func(e Filter, order float64) int {
		if e.Order() <= order {
			return -1
		}
		return 1
	})
	c.filters = slices.Insert(c.filters, i, f)
}

// Process runs every filter over buf.
func (c *Chain) Process(buf []byte) {
	if c == nil {
		return
	}
	for _, f := range c.filters {
		f.Process(buf)
	}
}

// Reset resets every filter.
func (c *Chain) Reset() {
	if c == nil {
		return
	}
	for _, f := range c.filters {
		f.Reset()
	}
}

// Len returns the number of filters in the chain.
func (c *Chain) Len() int {
	if c == nil {
		return 0
	}
	return len(c.filters)
}

// Names returns the filter names in the order they run.
func (c *Chain) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, len(c.filters))
	for i, f := range c.filters {
		names[i] = f.Name()
	}
	return names
}

// blank overwrites buf with spaces, leaving line structure intact.
func blank(buf []byte) {
	for i, c := range buf {
		if c != '\t' && c != '\n' && c != '\r' {
			buf[i] = ' '
		}
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
