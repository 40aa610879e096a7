package ingestion

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/poiesic/speller/core"
)

// ParseWordList reads word[/FLAGS] entries, one per line.
// Any invalid entry fails the whole list with ErrInvalidWordList.
func ParseWordList(r io.Reader) ([]*core.Stem, error) {
	var stems []*core.Stem

	scanner := bufio.NewScanner(r)
	lineNum := 0
	first := true
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if first {
			first = false
			if isCount(line) {
				continue
			}
		}

		word, flags, _ := strings.Cut(line, "/")
		stem := &core.Stem{Word: word, Flags: flags}
		if err := core.ValidateStem(stem); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrInvalidWordList, lineNum, err)
		}
		stems = append(stems, stem)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWordList, err)
	}

	return stems, nil
}

func isCount(line string) bool {
	for i := 0; i < len(line); i++ {
		if line[i] < '0' || line[i] > '9' {
			return false
		}
	}
	return true
}
