package newsrank

import (
	"context"
	"testing"

	"github.com/poiesic/newsrank/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDatabase(t *testing.T) *Database {
	t.Helper()
	db, err := NewDatabase("", WithInMemoryStorage(), WithoutAI())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestDatabaseLifecycle(t *testing.T) {
	db := newTestDatabase(t)
	assert.NotNil(t, db.ArticleRepository())
}

func TestDatabaseAddAndSearch(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()

	added, err := db.AddArticles(ctx,
		&core.Article{Title: "GPT-4 launches", Summary: "OpenAI ships a new model", Link: "https://example.com/gpt4", PublishedDate: "2025-08-01"},
		&core.Article{Title: "Gardening weekly", Summary: "Tomatoes", Link: "https://example.com/garden", PublishedDate: "2025-08-02"},
	)
	require.NoError(t, err)
	assert.Len(t, added, 2)

	result, err := db.Search(ctx, "GPT")
	require.NoError(t, err)
	assert.Equal(t, core.SearchTypeKeyword, result.SearchType)
	require.Len(t, result.Articles, 1)
	assert.Equal(t, "GPT-4 launches", result.Articles[0].Title)
}

func TestDatabaseSearchWithoutAIFallsBack(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()

	_, err := db.AddArticles(ctx,
		&core.Article{Title: "Agents shipping code", Summary: "Autonomy benchmarks", Link: "https://example.com/agents", PublishedDate: "2025-08-03"},
	)
	require.NoError(t, err)

	// Complex query with no AI provider configured: the pipeline must
	// degrade instead of erroring.
	result, err := db.Search(ctx, "what is new with coding agents")
	require.NoError(t, err)
	assert.Equal(t, core.SearchTypeKeywordFallback, result.SearchType)
	require.NotEmpty(t, result.Articles)
}

func TestDatabaseNewSearcher(t *testing.T) {
	db := newTestDatabase(t)

	searcher, err := db.NewSearcher()
	require.NoError(t, err)
	defer searcher.Release()

	result := searcher.Search(context.Background(), "anything", nil)
	assert.Equal(t, core.SearchTypeNone, result.SearchType)
}
