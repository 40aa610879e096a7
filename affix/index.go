package affix

import (
	"slices"
	"sort"
	"strings"
)

// table is the rule arena and subset index for one kind of affix.
//
// Rules live in a single arena and are referenced by int32 index. Each
// bucket lists the rules whose key starts with that byte, ordered by key;
// bucket 0 holds the rules with an empty key. byFlag lists the rules
// carrying each flag in parse order.
type table struct {
	kind    Kind
	rules   []Rule
	buckets [256][]int32
	byFlag  [256][]int32
}

func newTable(kind Kind) *table {
	return &table{kind: kind}
}

// insert adds r to the arena, the flag list and, in key order, its bucket.
// Equal keys keep insertion order.
func (t *table) insert(r Rule) {
	idx := int32(len(t.rules))
	t.rules = append(t.rules, r)
	t.byFlag[r.flag] = append(t.byFlag[r.flag], idx)

	b := bucketOf(r.key)
	bucket := t.buckets[b]
	pos := sort.Search(len(bucket), func(i int) bool {
		return t.rules[bucket[i]].key > r.key
	})
	t.buckets[b] = slices.Insert(bucket, pos, idx)
}

// finalize computes the subset and skip links of every bucketed rule.
// It runs once after all rules are inserted.
func (t *table) finalize() {
	for b := 1; b < len(t.buckets); b++ {
		bucket := t.buckets[b]

		for i, idx := range bucket {
			r := &t.rules[idx]
			end := t.runEnd(bucket, i)
			r.nextSkip = linkAt(bucket, end)
			r.nextSubset = noRule
			if end > i+1 {
				r.nextSubset = bucket[i+1]
			}
		}

		// The last rule extending an enclosing key can only be reached once
		// the enclosing key matched, so nothing after it can match either.
		for i := range bucket {
			if end := t.runEnd(bucket, i); end > i+1 {
				t.rules[bucket[end-1]].nextSkip = noRule
			}
		}
	}
}

// runEnd returns the position after the maximal run of rules following
// position i whose keys extend the key at i.
func (t *table) runEnd(bucket []int32, i int) int {
	key := t.rules[bucket[i]].key
	j := i + 1
	for j < len(bucket) && isSubset(key, t.rules[bucket[j]].key) {
		j++
	}
	return j
}

// walk calls fn for every rule whose key is a prefix of probe: first all
// empty-key rules, then the matching rules of probe's bucket in key order.
// The walk stops as soon as fn returns true.
func (t *table) walk(probe string, fn func(r *Rule) bool) bool {
	for _, idx := range t.buckets[0] {
		if fn(&t.rules[idx]) {
			return true
		}
	}
	if len(probe) == 0 {
		return false
	}

	bucket := t.buckets[probe[0]]
	if len(bucket) == 0 {
		return false
	}
	for cur := bucket[0]; cur != noRule; {
		r := &t.rules[cur]
		if isSubset(r.key, probe) {
			if fn(r) {
				return true
			}
			cur = r.nextSubset
		} else {
			cur = r.nextSkip
		}
	}
	return false
}

// flagged returns the rules carrying flag, in parse order.
func (t *table) flagged(flag byte) []int32 {
	return t.byFlag[flag]
}

func (t *table) len() int {
	return len(t.rules)
}

func bucketOf(key string) byte {
	if key == "" {
		return 0
	}
	return key[0]
}

func linkAt(bucket []int32, pos int) int32 {
	if pos < len(bucket) {
		return bucket[pos]
	}
	return noRule
}

// isSubset reports whether a is a leading subset (string prefix) of b.
func isSubset(a, b string) bool {
	return strings.HasPrefix(b, a)
}
