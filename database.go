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


package newsrank

import (
	"context"
	"log/slog"

	"github.com/poiesic/newsrank/ai"
	"github.com/poiesic/newsrank/ai/openai"
	"github.com/poiesic/newsrank/core"
	"github.com/poiesic/newsrank/search"
	"github.com/poiesic/newsrank/storage"
	"github.com/poiesic/newsrank/storage/badger"
)

// Database bundles the article store with the ranking pipeline and an
// optional AI provider. Without a provider the pipeline runs in
// keyword-only mode.
type Database struct {
	backend     *badger.Backend
	articleRepo storage.ArticleRepository
	provider    ai.AIProvider
	logger      *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig  *ai.Config
	disableAI bool
	inMemory  bool
}

// WithAIConfig sets the AI provider configuration.
func WithAIConfig(config *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithoutAI disables the AI provider entirely. Searches degrade to
// keyword ranking.
func WithoutAI() DatabaseOption {
	return func(o *databaseOptions) {
		o.disableAI = true
	}
}

// WithInMemoryStorage keeps all data in memory. Intended for tests.
func WithInMemoryStorage() DatabaseOption {
	return func(o *databaseOptions) {
		o.inMemory = true
	}
}

func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	// Apply options
	options := &databaseOptions{
		aiConfig: ai.DefaultConfig(), // Default if not provided
	}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend
	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	// Create article repository
	articleRepo, err := badger.NewArticleRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	db := &Database{
		backend:     backend,
		articleRepo: articleRepo,
		logger:      slog.Default(),
	}

	if !options.disableAI {
		provider, err := openai.NewProvider(options.aiConfig)
		if err != nil {
			articleRepo.Close()
			backend.Close()
			return nil, err
		}
		db.provider = provider
	}

	return db, nil
}

func (db *Database) Close() error {
	// Close AI provider first
	if db.provider != nil {
		if err := db.provider.Close(); err != nil {
			db.logger.Error("error closing AI provider", "err", err)
		}
	}

	if err := db.articleRepo.Close(); err != nil {
		db.logger.Error("error closing article repository", "err", err)
		return err
	}

	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) ArticleRepository() storage.ArticleRepository {
	return db.articleRepo
}

// AddArticles stores articles, upserting by link.
func (db *Database) AddArticles(ctx context.Context, articles ...*core.Article) ([]*core.Article, error) {
	return db.articleRepo.AddArticles(ctx, articles...)
}

// NewSearcher creates a searcher over this database's AI provider.
// The caller owns the searcher and must Release it.
func (db *Database) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(db.provider, opts...)
}

// Search is a convenience that ranks the whole stored population against
// the query with a one-shot searcher.
func (db *Database) Search(ctx context.Context, query string, opts ...search.Option) (*core.SearchResult, error) {
	articles, err := db.articleRepo.ListArticles(ctx)
	if err != nil {
		return nil, err
	}

	searcher, err := search.NewSearcher(db.provider, opts...)
	if err != nil {
		return nil, err
	}
	defer searcher.Release()

	return searcher.Search(ctx, query, articles), nil
}
