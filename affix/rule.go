package affix

import "strings"

// Kind distinguishes prefix rules from suffix rules.
type Kind uint8

const (
	// Prefix rules are applied to the start of a root.
	Prefix Kind = iota + 1
	// Suffix rules are applied to the end of a root.
	Suffix
)

func (k Kind) String() string {
	switch k {
	case Prefix:
		return "PFX"
	case Suffix:
		return "SFX"
	default:
		return "unknown"
	}
}

// noRule marks an absent link.
const noRule int32 = -1

// Rule is one affix variant from an affix file. Rules are owned by a
// Manager and never change once it is built.
type Rule struct {
	kind  Kind
	flag  byte
	cross bool
	strip string
	appnd string
	cond  Condition
	key   string

	// links into the owning table's arena
	nextSubset int32
	nextSkip   int32
}

func newRule(kind Kind, flag byte, cross bool, strip, appnd string, cond Condition) Rule {
	r := Rule{
		kind:       kind,
		flag:       flag,
		cross:      cross,
		strip:      strip,
		appnd:      appnd,
		cond:       cond,
		key:        appnd,
		nextSubset: noRule,
		nextSkip:   noRule,
	}
	if kind == Suffix {
		r.key = reverse(appnd)
	}
	return r
}

// Kind reports whether the rule is a prefix or a suffix.
func (r *Rule) Kind() Kind { return r.kind }

// Flag returns the flag a stem must carry for the rule to apply.
func (r *Rule) Flag() byte { return r.flag }

// Cross reports whether the rule may combine with a rule of the other kind.
func (r *Rule) Cross() bool { return r.cross }

// Strip returns the text removed from the root.
func (r *Rule) Strip() string { return r.strip }

// Append returns the text added to the root.
func (r *Rule) Append() string { return r.appnd }

// Condition returns the compiled boundary condition.
func (r *Rule) Condition() *Condition { return &r.cond }

// Key returns the string the rule is indexed by: the appended text for a
// prefix, the appended text reversed for a suffix.
func (r *Rule) Key() string {
	return r.key
}

// applyTo produces the surface form of root with the rule applied, or
// false when the strip text or the condition does not fit root.
func (r *Rule) applyTo(root string) (string, bool) {
	if len(root) <= len(r.strip) || len(root) < r.cond.Len() {
		return "", false
	}
	if r.kind == Prefix {
		if !r.cond.matchLeading(root) || !strings.HasPrefix(root, r.strip) {
			return "", false
		}
		return r.appnd + root[len(r.strip):], true
	}
	if !r.cond.matchTrailing(root) || !strings.HasSuffix(root, r.strip) {
		return "", false
	}
	return root[:len(root)-len(r.strip)] + r.appnd, true
}

// remainder undoes the rule on word and returns the candidate stem, or
// false when word cannot have been produced by this rule.
func (r *Rule) remainder(word string) (string, bool) {
	rest := len(word) - len(r.appnd)
	if rest <= 0 || rest+len(r.strip) < r.cond.Len() {
		return "", false
	}
	if r.kind == Prefix {
		if !strings.HasPrefix(word, r.appnd) {
			return "", false
		}
		stem := r.strip + word[len(r.appnd):]
		if !r.cond.matchLeading(stem) {
			return "", false
		}
		return stem, true
	}
	if !strings.HasSuffix(word, r.appnd) {
		return "", false
	}
	stem := word[:rest] + r.strip
	if !r.cond.matchTrailing(stem) {
		return "", false
	}
	return stem, true
}

func reverse(s string) string {
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		b[len(s)-1-i] = s[i]
	}
	return string(b)
}
