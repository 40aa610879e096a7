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


package speller

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/poiesic/speller/filter"
)

// FilterNone disables filtering; every word of a checked text is checked.
const FilterNone = "none"

// Config holds the settings of a Dictionary.
type Config struct {
	// AffixPath is the aspell affix file the dictionary is built against.
	// Example: "/usr/share/aspell/en_affix.dat"
	AffixPath string

	// MaxExpansions caps the number of forms generated for a single stem.
	// Default: 1000
	MaxExpansions int

	// PoolSize is the number of workers used to expand stems.
	// Default: runtime.NumCPU() / 2, at least 1
	PoolSize int

	// BatchSize is the number of stems written or expanded per batch.
	// Default: 1000
	BatchSize int

	// FilterMode names the filter applied by checkers: "none", or a name
	// known to filter.New such as "tex" or "context".
	// Default: "none"
	FilterMode string

	// MinWordLength is the length below which checkers skip a word.
	// Default: 1
	MinWordLength int
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithAffixPath sets the affix file path.
func WithAffixPath(path string) ConfigOption {
	return func(c *Config) {
		c.AffixPath = path
	}
}

// WithMaxExpansions sets the per-stem expansion limit.
func WithMaxExpansions(limit int) ConfigOption {
	return func(c *Config) {
		c.MaxExpansions = limit
	}
}

// WithPoolSize sets the expansion worker count.
func WithPoolSize(size int) ConfigOption {
	return func(c *Config) {
		c.PoolSize = size
	}
}

// WithBatchSize sets the ingestion batch size.
func WithBatchSize(size int) ConfigOption {
	return func(c *Config) {
		c.BatchSize = size
	}
}

// WithFilterMode sets the filter applied by checkers.
func WithFilterMode(mode string) ConfigOption {
	return func(c *Config) {
		c.FilterMode = mode
	}
}

// WithMinWordLength sets the shortest word checkers look at.
func WithMinWordLength(n int) ConfigOption {
	return func(c *Config) {
		c.MinWordLength = n
	}
}

// DefaultConfig returns a Config with every default set. AffixPath has no
// default and must be provided.
func DefaultConfig() *Config {
	return &Config{
		MaxExpansions: 1000,
		PoolSize:      max(1, runtime.NumCPU()/2),
		BatchSize:     1000,
		FilterMode:    FilterNone,
		MinWordLength: 1,
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
//
// Example:
//
//	cfg := NewConfig(
//	    WithAffixPath("en_affix.dat"),
//	    WithFilterMode("tex"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize lowercases FilterMode and maps an empty mode to FilterNone.
func (c *Config) Normalize() {
	c.FilterMode = strings.ToLower(strings.TrimSpace(c.FilterMode))
	if c.FilterMode == "" {
		c.FilterMode = FilterNone
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.AffixPath == "" {
		return errors.New("speller config: AffixPath is required")
	}
	if c.MaxExpansions < 1 {
		return errors.New("speller config: MaxExpansions must be at least 1")
	}
	if c.PoolSize < 1 {
		return errors.New("speller config: PoolSize must be at least 1")
	}
	if c.BatchSize < 1 {
		return errors.New("speller config: BatchSize must be at least 1")
	}
	if c.MinWordLength < 1 {
		return errors.New("speller config: MinWordLength must be at least 1")
	}
	if _, err := c.FilterChain(); err != nil {
		return fmt.Errorf("speller config: %w", err)
	}
	return nil
}

// FilterChain builds the filter chain FilterMode names. It returns a nil
// chain, which filters nothing, for FilterNone.
func (c *Config) FilterChain() (*filter.Chain, error) {
	mode := strings.ToLower(c.FilterMode)
	if mode == "" || mode == FilterNone {
		return nil, nil
	}
	f, err := filter.New(mode)
	if err != nil {
		return nil, err
	}
	return filter.NewChain(f), nil
}
