package affix

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const maxLineLength = 1 << 20

// parser reads the line-oriented affix file grammar into a Manager.
type parser struct {
	name string
	sc   *bufio.Scanner
	line int
	m    *Manager
}

func newParser(name string, r io.Reader, m *Manager) *parser {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineLength)
	return &parser{name: name, sc: sc, m: m}
}

// next returns the key and data fields of the next non-blank,
// non-comment line.
func (p *parser) next() (string, []string, bool) {
	for p.sc.Scan() {
		p.line++
		fields := strings.Fields(p.sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		return fields[0], fields[1:], true
	}
	return "", nil, false
}

func (p *parser) fail(err error) error {
	return &LoadError{File: p.name, Line: p.line, Err: err}
}

func (p *parser) parse() error {
	for {
		key, data, ok := p.next()
		if !ok {
			break
		}

		var err error
		switch key {
		case "SET":
			p.m.encoding = strings.Join(data, " ")
		case "COMPOUNDFLAG":
			p.m.compoundFlag = strings.Join(data, " ")
		case "COMPOUNDMIN":
			err = p.parseCompoundMin(data)
		case "TRY":
			p.m.try = strings.Join(data, " ")
		case "REP":
			// consumed by suggestion logic elsewhere
		case "PFX":
			err = p.parseGroup(Prefix, p.m.prefixes, data)
		case "SFX":
			err = p.parseGroup(Suffix, p.m.suffixes, data)
		}
		if err != nil {
			return err
		}
	}

	if err := p.sc.Err(); err != nil {
		return p.fail(fmt.Errorf("%w: %w", ErrFileOpen, err))
	}
	return nil
}

func (p *parser) parseCompoundMin(data []string) error {
	if len(data) != 1 {
		return p.fail(fmt.Errorf("%w: COMPOUNDMIN needs one value", ErrBadHeaderValue))
	}
	n, err := strconv.Atoi(data[0])
	if err != nil || n < 0 {
		return p.fail(fmt.Errorf("%w: COMPOUNDMIN %q", ErrBadHeaderValue, data[0]))
	}
	p.m.compoundMin = n
	return nil
}

// parseGroup reads a group header and its entries. Entries are inserted
// into t only after the whole group parsed.
func (p *parser) parseGroup(kind Kind, t *table, header []string) error {
	if len(header) != 3 {
		return p.fail(fmt.Errorf("%w: %s header has %d", ErrHeaderFieldCount, kind, len(header)))
	}
	if len(header[0]) != 1 {
		return p.fail(fmt.Errorf("%w: %s flag %q is not a single character", ErrBadHeaderValue, kind, header[0]))
	}
	flag := header[0][0]

	var cross bool
	switch header[1] {
	case "Y":
		cross = true
	case "N":
	default:
		return p.fail(fmt.Errorf("%w: %s %c cross product marker %q is not Y or N", ErrBadHeaderValue, kind, flag, header[1]))
	}

	count, err := strconv.Atoi(header[2])
	if err != nil || count < 0 {
		return p.fail(fmt.Errorf("%w: %s %c entry count %q", ErrBadHeaderValue, kind, flag, header[2]))
	}

	rules := make([]Rule, 0, count)
	for i := 0; i < count; i++ {
		key, data, ok := p.next()
		if !ok {
			return p.fail(fmt.Errorf("%w: %s %c declares %d entries, found %d before end of file",
				ErrEntryFieldCount, kind, flag, count, i))
		}
		if key != kind.String() {
			return p.fail(fmt.Errorf("%w: %s line inside %s %c group, possible incorrect count",
				ErrFlagMismatch, key, kind, flag))
		}
		if len(data) > 0 && data[0] != string(flag) {
			return p.fail(fmt.Errorf("%w: entry flag %q inside %s %c group, possible incorrect count",
				ErrFlagMismatch, data[0], kind, flag))
		}
		if len(data) != 4 {
			return p.fail(fmt.Errorf("%w: %s %c entry has %d", ErrEntryFieldCount, kind, flag, len(data)))
		}

		cond, err := ParseCondition(data[3])
		if err != nil {
			return p.fail(err)
		}
		rules = append(rules, newRule(kind, flag, cross, zeroAsEmpty(data[1]), zeroAsEmpty(data[2]), cond))
	}

	for _, r := range rules {
		t.insert(r)
	}
	return nil
}

// zeroAsEmpty maps the affix file's "0" placeholder to the empty string.
func zeroAsEmpty(s string) string {
	if s == "0" {
		return ""
	}
	return s
}
