package storage

import (
	"context"

	"github.com/poiesic/newsrank/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// ArticleRepository provides operations for managing aggregated articles.
// Articles are keyed by their link; storing an article with a link that is
// already present replaces the stored copy.
type ArticleRepository interface {
	Repository

	// AddArticles upserts one or more articles into storage.
	// IDs are derived from links (core.IDFromLink), so re-adding a link
	// replaces the previous version. Articles with empty links are rejected.
	// Returns the stored articles.
	AddArticles(ctx context.Context, articles ...*core.Article) ([]*core.Article, error)

	// GetArticle retrieves a single article by ID.
	// Returns ErrNotFound if the article doesn't exist.
	GetArticle(ctx context.Context, id core.ID) (*core.Article, error)

	// GetArticleByLink retrieves a single article by its link.
	// Returns ErrNotFound if the article doesn't exist.
	GetArticleByLink(ctx context.Context, link string) (*core.Article, error)

	// DeleteArticles removes articles by their IDs.
	// Also removes associated indices.
	// Returns ErrNotFound if any article doesn't exist.
	DeleteArticles(ctx context.Context, ids ...core.ID) error

	// ListArticles retrieves the full candidate population in storage order.
	ListArticles(ctx context.Context) ([]*core.Article, error)

	// GetRecentArticles retrieves the N most recently published articles,
	// newest first. Articles without a published date sort last.
	GetRecentArticles(ctx context.Context, limit int) ([]*core.Article, error)

	// CountArticles returns the number of stored articles.
	CountArticles(ctx context.Context) (int, error)
}
