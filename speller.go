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
	"context"
	"log/slog"

	"github.com/poiesic/speller/affix"
	"github.com/poiesic/speller/check"
	"github.com/poiesic/speller/ingestion"
	"github.com/poiesic/speller/storage"
	"github.com/poiesic/speller/storage/badger"
)

// Dictionary is a stored stem dictionary together with the affix rules it
// was built against.
type Dictionary struct {
	config   *Config
	manager  *affix.Manager
	backend  *badger.Backend
	stemRepo storage.StemRepository
	infoRepo storage.InfoRepository
	logger   *slog.Logger
}

// Option configures a Dictionary.
type Option func(*options)

type options struct {
	config *Config
	logger *slog.Logger
}

// WithConfig sets the dictionary configuration.
func WithConfig(cfg *Config) Option {
	return func(o *options) {
		o.config = cfg
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = slog.Default()
		}
		o.logger = logger
	}
}

// Open loads the configured affix file and opens the dictionary database
// at dbPath, creating it if needed.
func Open(dbPath string, opts ...Option) (*Dictionary, error) {
	options := &options{
		config: DefaultConfig(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}
	if err := options.config.Validate(); err != nil {
		return nil, err
	}

	manager, err := affix.Setup(options.config.AffixPath, affix.WithLogger(options.logger))
	if err != nil {
		return nil, err
	}

	backend, err := badger.OpenBackend(dbPath, false)
	if err != nil {
		return nil, err
	}

	stemRepo, err := badger.NewStemRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}
	infoRepo := badger.NewInfoRepository(backend)

	db := &Dictionary{
		config:   options.config,
		manager:  manager,
		backend:  backend,
		stemRepo: stemRepo,
		infoRepo: infoRepo,
		logger:   options.logger,
	}
	if err := db.checkFingerprint(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// checkFingerprint warns when the stored stems were loaded against a
// different affix file than the one now in use.
func (db *Dictionary) checkFingerprint(ctx context.Context) error {
	info, err := db.infoRepo.LoadInfo(ctx)
	if err != nil {
		return err
	}
	if info != nil && info.AffixFingerprint != db.manager.Fingerprint() {
		db.logger.Warn("affix file differs from the one the dictionary was loaded with",
			"affix", db.manager.Name(),
			"stored", info.AffixFingerprint,
			"current", db.manager.Fingerprint())
	}
	return nil
}

func (db *Dictionary) Close() error {
	if err := db.stemRepo.Close(); err != nil {
		db.logger.Error("error closing stem repository", "err", err)
		return err
	}

	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Dictionary) Config() *Config {
	return db.config
}

func (db *Dictionary) Manager() *affix.Manager {
	return db.manager
}

func (db *Dictionary) Stems() storage.StemRepository {
	return db.stemRepo
}

func (db *Dictionary) Info() storage.InfoRepository {
	return db.infoRepo
}

// NewIngestionPipeline creates a pipeline using the configured pool size,
// batch size and expansion limit. opts are applied after those.
func (db *Dictionary) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	base := []ingestion.Option{
		ingestion.WithPoolSize(db.config.PoolSize),
		ingestion.WithBatchSize(db.config.BatchSize),
		ingestion.WithMaxExpansions(db.config.MaxExpansions),
		ingestion.WithLogger(db.logger),
	}
	return ingestion.NewPipeline(db.manager, db.stemRepo, db.infoRepo, append(base, opts...)...)
}

// NewChecker creates a checker using the configured filter mode and
// minimum word length. opts are applied after those.
func (db *Dictionary) NewChecker(opts ...check.Option) (*check.Checker, error) {
	chain, err := db.config.FilterChain()
	if err != nil {
		return nil, err
	}
	base := []check.Option{
		check.WithFilters(chain),
		check.WithMinWordLength(db.config.MinWordLength),
		check.WithLogger(db.logger),
	}
	return check.NewChecker(db.manager, db.stemRepo, append(base, opts...)...)
}
