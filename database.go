// Copyright 2026 zoomETFs Project
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package zoometf assembles the catalog store, ingestion pipeline, and
// semantic searcher behind a single Database facade.
package zoometf

import (
	"log/slog"

	"github.com/MOMOGSDIOP/zoomETFsProject/ai"
	"github.com/MOMOGSDIOP/zoomETFsProject/ai/openai"
	"github.com/MOMOGSDIOP/zoomETFsProject/catalog"
	"github.com/MOMOGSDIOP/zoomETFsProject/search"
	"github.com/MOMOGSDIOP/zoomETFsProject/storage"
	"github.com/MOMOGSDIOP/zoomETFsProject/storage/badger"
)

type Database struct {
	backend     *badger.Backend
	catalogRepo storage.CatalogRepository
	provider    ai.AIProvider
	logger      *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig *ai.Config
	provider ai.AIProvider
}

// WithAIConfig sets the connection settings for the criteria
// extraction service.
func WithAIConfig(config *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		o.aiConfig = config
	}
}

// WithAIProvider injects a pre-built AI provider, bypassing the
// configured connection. Used mainly by tests.
func WithAIProvider(provider ai.AIProvider) DatabaseOption {
	return func(o *databaseOptions) {
		o.provider = provider
	}
}

func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	options := &databaseOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}

	catalogRepo, err := badger.NewCatalogRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			catalogRepo.Close()
			backend.Close()
			return nil, err
		}
	}

	return &Database{
		backend:     backend,
		catalogRepo: catalogRepo,
		provider:    provider,
		logger:      slog.Default(),
	}, nil
}

func (db *Database) Close() error {
	if err := db.provider.Close(); err != nil {
		db.logger.Error("error closing AI provider", "err", err)
	}

	if err := db.catalogRepo.Close(); err != nil {
		db.logger.Error("error closing catalog repository", "err", err)
		return err
	}

	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) CatalogRepository() storage.CatalogRepository {
	return db.catalogRepo
}

func (db *Database) NewPipeline(opts ...catalog.Option) (*catalog.Pipeline, error) {
	return catalog.NewPipeline(db.catalogRepo, opts...)
}

func (db *Database) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(db.catalogRepo, db.provider, opts...)
}
