// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package affix

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/poiesic/speller/core"
)

const defaultCompoundMin = 3

// Manager holds the affix rules of one language. It is built once by
// Setup or Load and is safe for concurrent use afterwards.
type Manager struct {
	name         string
	encoding     string
	compoundFlag string
	compoundMin  int
	try          string
	fingerprint  core.ID

	prefixes *table
	suffixes *table
}

// Option configures how an affix file is loaded.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used while loading.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = slog.Default()
		}
		o.logger = logger
	}
}

// Setup loads the affix file at path.
func Setup(path string, opts ...Option) (*Manager, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{File: path, Err: fmt.Errorf("%w: %w", ErrFileOpen, err)}
	}
	defer f.Close()
	return Load(f, path, opts...)
}

// Load reads affix rules from r. name identifies the source in errors.
// Either the whole input is accepted or an error is returned; no partially
// built Manager is ever handed out.
func Load(r io.Reader, name string, opts ...Option) (*Manager, error) {
	o := &options{logger: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{File: name, Err: fmt.Errorf("%w: %w", ErrFileOpen, err)}
	}

	m := &Manager{
		name:        name,
		compoundMin: defaultCompoundMin,
		fingerprint: core.IDFromContent(string(data)),
		prefixes:    newTable(Prefix),
		suffixes:    newTable(Suffix),
	}

	p := newParser(name, bytes.NewReader(data), m)
	if err := p.parse(); err != nil {
		return nil, err
	}

	m.prefixes.finalize()
	m.suffixes.finalize()

	o.logger.Debug("loaded affix file",
		"file", name,
		"prefixes", m.prefixes.len(),
		"suffixes", m.suffixes.len())
	return m, nil
}

// Name returns the name the rules were loaded from.
func (m *Manager) Name() string {
	return m.name
}

// Encoding returns the SET value of the affix file.
func (m *Manager) Encoding() string {
	return m.encoding
}

// CompoundFlag returns the COMPOUNDFLAG value of the affix file.
func (m *Manager) CompoundFlag() string {
	return m.compoundFlag
}

// CompoundMin returns the COMPOUNDMIN value, 3 when the file sets none.
func (m *Manager) CompoundMin() int {
	return m.compoundMin
}

// TryChars returns the TRY value used by suggestion logic.
func (m *Manager) TryChars() string {
	return m.try
}

// Fingerprint identifies the exact content the rules were loaded from.
func (m *Manager) Fingerprint() core.ID {
	return m.fingerprint
}

// Rules returns the rules of the given kind in parse order.
func (m *Manager) Rules(kind Kind) []*Rule {
	t := m.table(kind)
	if t == nil {
		return nil
	}
	out := make([]*Rule, len(t.rules))
	for i := range t.rules {
		out[i] = &t.rules[i]
	}
	return out
}

func (m *Manager) table(kind Kind) *table {
	switch kind {
	case Prefix:
		return m.prefixes
	case Suffix:
		return m.suffixes
	default:
		return nil
	}
}
