package badger

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/newsrank/core"
	"github.com/poiesic/newsrank/storage"
)

// ArticleRepository implements storage.ArticleRepository for BadgerDB.
type ArticleRepository struct {
	backend *Backend
}

var _ storage.ArticleRepository = (*ArticleRepository)(nil)

// NewArticleRepository creates a new ArticleRepository.
func NewArticleRepository(backend *Backend) (storage.ArticleRepository, error) {
	if backend == nil {
		return nil, errors.New("backend required")
	}
	return &ArticleRepository{backend: backend}, nil
}

// Close is a no-op; the repository holds no resources beyond the backend.
func (r *ArticleRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *ArticleRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddArticles upserts one or more articles into storage.
// IDs are derived from links, so re-adding a link replaces the stored copy.
func (r *ArticleRepository) AddArticles(ctx context.Context, articles ...*core.Article) ([]*core.Article, error) {
	for _, article := range articles {
		if err := core.ValidateStorableArticle(article); err != nil {
			return nil, err
		}
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, article := range articles {
			id := core.IDFromLink(article.Link)
			key := makeArticleKey(id)

			// Drop a stale date index entry when replacing an article
			// whose published date changed.
			old, err := r.readArticle(tx, key)
			if err != nil {
				return err
			}
			if old != nil && old.PublishedDate != article.PublishedDate {
				oldTime, _ := old.PublishedTime()
				if err := tx.Delete(makeArticleDateKey(oldTime, id)); err != nil {
					return err
				}
			}

			value := storage.MarshalArticle(article)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			published, _ := article.PublishedTime()
			dateKey := makeArticleDateKey(published, id)
			if err := tx.Set(dateKey, storage.MarshalID(id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return articles, err
}

// GetArticle retrieves a single article by ID.
func (r *ArticleRepository) GetArticle(ctx context.Context, id core.ID) (*core.Article, error) {
	var article *core.Article
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		article, err = r.readArticle(tx, makeArticleKey(id))
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, storage.ErrNotFound
	}
	return article, nil
}

// GetArticleByLink retrieves a single article by its link.
func (r *ArticleRepository) GetArticleByLink(ctx context.Context, link string) (*core.Article, error) {
	return r.GetArticle(ctx, core.IDFromLink(link))
}

// DeleteArticles removes articles and their index entries by ID.
func (r *ArticleRepository) DeleteArticles(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeArticleKey(id)
			article, err := r.readArticle(tx, key)
			if err != nil {
				return err
			}
			if article == nil {
				return storage.ErrNotFound
			}

			published, _ := article.PublishedTime()
			if err := tx.Delete(makeArticleDateKey(published, id)); err != nil {
				return err
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// ListArticles retrieves the full candidate population in storage order.
func (r *ArticleRepository) ListArticles(ctx context.Context) ([]*core.Article, error) {
	var results []*core.Article
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(articlePrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var article *core.Article
			err := iter.Item().Value(func(val []byte) error {
				var err error
				article, err = storage.UnmarshalArticle(val)
				return err
			})
			if err != nil {
				return err
			}
			if article != nil {
				results = append(results, article)
			}
		}
		return nil
	}, false)

	return results, err
}

// GetRecentArticles retrieves the N most recently published articles, newest first.
func (r *ArticleRepository) GetRecentArticles(ctx context.Context, limit int) ([]*core.Article, error) {
	var results []*core.Article
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Use reverse iterator to get the newest entries first
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true

		iter := tx.NewIterator(opts)
		defer iter.Close()

		// Seek to the last possible key in the date index
		startKey := makePartialArticleDateKey(time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC))

		prefix := []byte(articleDatePrefix + ":")

		count := 0
		for iter.Seek(startKey); iter.Valid() && count < limit; iter.Next() {
			key := iter.Item().Key()

			// Check if we're still in the date index
			if len(key) < len(prefix) || slices.Compare(key[:len(prefix)], prefix) != 0 {
				break
			}

			// Read the ID from the index
			var articleID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				articleID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			// Look up the full article
			article, err := r.readArticle(tx, makeArticleKey(articleID))
			if err != nil {
				return err
			}
			if article != nil {
				results = append(results, article)
				count++
			}
		}
		return nil
	}, false)

	return results, err
}

// CountArticles returns the number of stored articles.
func (r *ArticleRepository) CountArticles(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(articlePrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)

	return count, err
}

// readArticle reads and deserializes an article; nil when the key is absent.
func (r *ArticleRepository) readArticle(tx *badger.Txn, key []byte) (*core.Article, error) {
	item, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var article *core.Article
	err = item.Value(func(val []byte) error {
		var err error
		article, err = storage.UnmarshalArticle(val)
		return err
	})
	return article, err
}
