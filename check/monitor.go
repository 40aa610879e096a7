package check

import "github.com/poiesic/speller/affix"

// Monitor provides hooks to observe CheckText.
// Implement this interface to track how each word was resolved.
type Monitor interface {
	Start(length int)
	ExactHit(word string)
	AffixHit(word string, match *affix.Match)
	Miss(misspelling Misspelling)
	Finish(misspellings []Misspelling)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ int)                       {}
func (n *noopMonitor) ExactHit(_ string)                 {}
func (n *noopMonitor) AffixHit(_ string, _ *affix.Match) {}
func (n *noopMonitor) Miss(_ Misspelling)                {}
func (n *noopMonitor) Finish(_ []Misspelling)            {}
