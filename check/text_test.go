package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type token struct {
	offset int
	word   string
}

func collect(text string) []token {
	var got []token
	for offset, word := range words([]byte(text)) {
		got = append(got, token{offset, word})
	}
	return got
}

func TestWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []token
	}{
		{"plain", "hello world", []token{{0, "hello"}, {6, "world"}}},
		{"inner apostrophes", "don't 'quoted' it's", []token{{0, "don't"}, {7, "quoted"}, {15, "it's"}}},
		{"several apostrophes", "rock'n'roll", []token{{0, "rock'n'roll"}}},
		{"trailing apostrophe", "ends'", []token{{0, "ends"}}},
		{"digits split words", "abc123def", []token{{0, "abc"}, {6, "def"}}},
		{"high bytes are letters", "caf\xe9 ok", []token{{0, "caf\xe9"}, {5, "ok"}}},
		{"empty", "", nil},
		{"no letters", "12 -- 34", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, collect(tt.text))
		})
	}
}

func TestWords_StopsEarly(t *testing.T) {
	var seen []string
	for _, word := range words([]byte("one two three")) {
		seen = append(seen, word)
		if word == "two" {
			break
		}
	}
	assert.Equal(t, []string{"one", "two"}, seen)
}

func TestLowerInitial(t *testing.T) {
	tests := []struct {
		word    string
		want    string
		changed bool
	}{
		{"Walk", "walk", true},
		{"WALK", "walk", true},
		{"McDonald", "mcDonald", true},
		{"A", "a", true},
		{"walk", "walk", false},
		{"", "", false},
		{"\xc9cole", "\xc9cole", false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got, changed := lowerInitial(tt.word)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.changed, changed)
		})
	}
}
