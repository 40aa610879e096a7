package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// ID is a content-derived identifier.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Stem is a dictionary root together with the affix flags it accepts.
type Stem struct {
	Word  string
	Flags string // one byte per flag, in the order they were declared
}

// HasFlag reports whether the stem carries flag.
func (s *Stem) HasFlag(flag byte) bool {
	return strings.IndexByte(s.Flags, flag) >= 0
}

// MergeFlags appends the flags s does not carry yet, keeping the existing
// order.
func (s *Stem) MergeFlags(flags string) {
	for i := 0; i < len(flags); i++ {
		if !s.HasFlag(flags[i]) {
			s.Flags += flags[i : i+1]
		}
	}
}

// DictionaryInfo describes a stored dictionary and the affix file it was
// loaded against.
type DictionaryInfo struct {
	AffixFingerprint ID     // IDFromContent of the affix file
	Encoding         string // SET value of the affix file
	StemCount        uint64
}
