package filter

import (
	"fmt"
	"maps"
)

// texState is what the TeX filter is currently reading.
type texState uint8

const (
	texName texState = iota
	texOpt
	texParm
	texOther
	texSwallow
)

// texCommand is a command being read. signature holds the parameters still
// to come.
type texCommand struct {
	state     texState
	name      []byte
	signature string
}

// defaultTexCommands maps LaTeX commands to their parameter signatures.
// Each byte describes one parameter: p and o are a parameter and an
// optional parameter that are not checked, P and O ones that are.
var defaultTexCommands = map[string]string{
	// counters
	"addtocounter":   "pp",
	"addtolength":    "pp",
	"alpha":          "p",
	"arabic":         "p",
	"fnsymbol":       "p",
	"roman":          "p",
	"stepcounter":    "p",
	"setcounter":     "pp",
	"usecounter":     "p",
	"value":          "p",
	"newcounter":     "po",
	"refstepcounter": "p",
	// cross references
	"label":   "p",
	"pageref": "p",
	"ref":     "p",
	// definitions
	"newcommand":       "poOP",
	"renewcommand":     "poOP",
	"newenvironment":   "poOPP",
	"renewenvironment": "poOPP",
	"newtheorem":       "poPo",
	"newfont":          "pp",
	// document classes
	"documentclass": "op",
	"usepackage":    "op",
	// environments
	"begin": "po",
	"end":   "p",
	// lengths
	"setlength":   "pp",
	"settowidth":  "pp",
	"settodepth":  "pp",
	"settoheight": "pp",
	// line and page breaking
	"enlargethispage": "p",
	"hyphenation":     "p",
	// page styles
	"pagenumbering": "p",
	"pagestyle":     "p",
	// spaces and boxes
	"addvspace": "p",
	"framebox":  "ooP",
	"hspace":    "p",
	"vspace":    "p",
	"makebox":   "ooP",
	"parbox":    "ooopP",
	"raisebox":  "pooP",
	"rule":      "opp",
	"sbox":      "pO",
	"savebox":   "pooP",
	"usebox":    "p",
	// splitting the input
	"include":     "p",
	"includeonly": "p",
	"input":       "p",
	// table of contents
	"addcontentsline": "ppP",
	"addtocontents":   "pP",
	// typefaces
	"fontencoding": "p",
	"fontfamily":   "p",
	"fontseries":   "p",
	"fontshape":    "p",
	"fontsize":     "pp",
	"usefont":      "pppp",
	// misc
	"documentstyle":   "op",
	"cite":            "p",
	"nocite":          "p",
	"psfig":           "p",
	"selectlanguage":  "p",
	"includegraphics": "op",
	"bibitem":         "op",
	"geometry":        "p",
}

// TexFilter hides TeX and LaTeX markup: command names, the parameters
// their signature marks as unchecked, and % comments.
type TexFilter struct {
	name          string
	commands      map[string]string
	checkComments bool

	inComment     bool
	prevBackslash bool
	stack         []texCommand
}

var _ Filter = (*TexFilter)(nil)

// NewTexFilter creates a TeX filter with the default command table.
func NewTexFilter(opts ...Option) (*TexFilter, error) {
	o := applyOptions(opts)

	f := &TexFilter{
		name:          "tex",
		commands:      maps.Clone(defaultTexCommands),
		checkComments: o.checkComments,
	}
	for name, signature := range o.addCommands {
		if err := f.AddCommand(name, signature); err != nil {
			return nil, err
		}
	}
	for _, name := range o.dropCommands {
		f.RemoveCommand(name)
	}

	f.Reset()
	return f, nil
}

func (f *TexFilter) Name() string { return f.name }

func (f *TexFilter) Order() float64 { return 0.35 }

// AddCommand adds or replaces the signature of a command.
func (f *TexFilter) AddCommand(name, signature string) error {
	if name == "" {
		return fmt.Errorf("%w: empty command name", ErrBadSignature)
	}
	for i := 0; i < len(signature); i++ {
		switch signature[i] {
		case 'o', 'O', 'p', 'P':
		default:
			return fmt.Errorf("%w: %q for %s: want a string of o, O, p or P", ErrBadSignature, signature, name)
		}
	}
	f.commands[name] = signature
	return nil
}

// RemoveCommand drops a command from the table. Its parameters are then
// checked like ordinary text.
func (f *TexFilter) RemoveCommand(name string) {
	delete(f.commands, name)
}

// Reset returns the filter to the top level of a document.
func (f *TexFilter) Reset() {
	f.inComment = false
	f.prevBackslash = false
	f.stack = f.stack[:0]
	f.push(texParm)
}

// Process blanks every byte of buf that is markup.
func (f *TexFilter) Process(buf []byte) {
	for i, c := range buf {
		if f.hide(c) {
			buf[i] = ' '
		}
	}
}

func (f *TexFilter) push(state texState) {
	f.stack = append(f.stack, texCommand{state: state, signature: "P"})
}

func (f *TexFilter) pop() {
	f.stack = f.stack[:len(f.stack)-1]
	if len(f.stack) == 0 {
		f.push(texParm)
	}
}

func (f *TexFilter) top() *texCommand {
	return &f.stack[len(f.stack)-1]
}

func (f *TexFilter) lookup(name []byte) string {
	return f.commands[string(name)]
}

// hide advances the state machine by one byte and reports whether the
// byte is hidden.
func (f *TexFilter) hide(c byte) bool {
	escaped := f.prevBackslash
	f.prevBackslash = c == '\\' && !escaped

	if c == '%' && !escaped {
		f.inComment = true
	}
	if f.inComment && c == '\n' {
		f.inComment = false
	}
	if f.inComment {
		return !f.checkComments
	}

	top := f.top()
	switch top.state {
	case texName:
		if isAlpha(c) || (len(top.name) == 0 && c == '@') {
			top.name = append(top.name, c)
			return true
		}

		top.state = texOther
		if len(top.name) == 0 {
			// a control symbol such as \\ or \%
			top.name = append(top.name, c)
			top.signature = f.lookup(top.name)
			return !isSpace(c)
		}

		top.signature = f.lookup(top.name)
		if isSpace(c) {
			top.state = texSwallow
			return true
		}
		if c == '*' {
			return true
		}
	case texSwallow:
		if isSpace(c) {
			return true
		}
		top.state = texOther
	}

	if c == '{' {
		for len(top.signature) > 0 && (top.signature[0] == 'o' || top.signature[0] == 'O') {
			top.signature = top.signature[1:]
		}
	}
	if len(top.signature) == 0 {
		f.pop()
		top = f.top()
	}

	if c == '{' {
		if top.state == texParm || top.state == texOpt {
			f.push(texParm)
			top = f.top()
		}
		top.state = texParm
		return true
	}

	if top.state == texOther {
		switch {
		case c == '[':
			top.state = texOpt
			return true
		case isSpace(c):
			return true
		default:
			f.pop()
			top = f.top()
		}
	}

	if c == '\\' {
		f.push(texName)
		return true
	}

	switch top.state {
	case texParm:
		if c == '}' {
			return f.endOption(top, 'P', 'p')
		}
		return next(top.signature) == 'p'
	case texOpt:
		if c == ']' {
			return f.endOption(top, 'O', 'o')
		}
		return next(top.signature) == 'o'
	}
	return false
}

func (f *TexFilter) endOption(top *texCommand, upper, lower byte) bool {
	top.state = texOther
	if s := next(top.signature); s == upper || s == lower {
		top.signature = top.signature[1:]
	}
	return true
}

// next returns the next signature byte, or 0 when none is left.
func next(signature string) byte {
	if len(signature) == 0 {
		return 0
	}
	return signature[0]
}
