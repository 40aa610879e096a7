package filter

import (
	"fmt"
	"slices"
	"strings"
)

// constructors maps filter names to their constructors. latex is an alias
// for tex.
var constructors = map[string]func(opts ...Option) (Filter, error){
	"tex":     newTex,
	"latex":   newTex,
	"context": newContext,
}

func newTex(opts ...Option) (Filter, error) {
	f, err := NewTexFilter(opts...)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func newContext(opts ...Option) (Filter, error) {
	f, err := NewContextFilter(opts...)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// New creates the filter registered under name.
func New(name string, opts ...Option) (Filter, error) {
	ctor, ok := constructors[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownFilter, name, strings.Join(Names(), ", "))
	}
	return ctor(opts...)
}

// Names lists the registered filter names in sorted order.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
