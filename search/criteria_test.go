package search

import (
	"testing"
	"time"

	"github.com/poiesic/newsrank/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreByCriteria(t *testing.T) {
	now := time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)

	t.Run("nil criteria yields nothing", func(t *testing.T) {
		articles := []*core.Article{{Title: "anything", Link: "https://example.com/a"}}
		assert.Empty(t, ScoreByCriteria(nil, articles, now))
	})

	t.Run("keyword field weights", func(t *testing.T) {
		criteria := &core.SearchCriteria{Keywords: []string{"benchmark"}}
		articles := []*core.Article{
			{Title: "New benchmark released", Summary: "A benchmark for agents", Source: "benchmark weekly", Link: "https://example.com/b"},
		}
		results := ScoreByCriteria(criteria, articles, now)
		require.Len(t, results, 1)
		// title 10 + summary 5 + source 2
		assert.Equal(t, 17.0, results[0].RelevanceScore)
	})

	t.Run("category membership bonus", func(t *testing.T) {
		criteria := &core.SearchCriteria{Categories: []string{"Research & Papers"}}
		articles := []*core.Article{
			{Title: "unmatched words", Category: "research & papers", Link: "https://example.com/c"},
			{Title: "unmatched words", Category: "Tools", Link: "https://example.com/d"},
		}
		results := ScoreByCriteria(criteria, articles, now)
		require.Len(t, results, 1)
		assert.Equal(t, 15.0, results[0].RelevanceScore)
	})

	t.Run("date bonuses by recency window", func(t *testing.T) {
		articles := []*core.Article{
			{Title: "x", PublishedDate: "2025-08-18", Link: "https://example.com/recent"},
			{Title: "x", PublishedDate: "2025-08-01", Link: "https://example.com/month"},
			{Title: "x", PublishedDate: "2025-01-01", Link: "https://example.com/old"},
			{Title: "x", PublishedDate: "not-a-date", Link: "https://example.com/bad"},
		}

		recent := ScoreByCriteria(&core.SearchCriteria{DateFilter: core.DateFilterRecent}, articles, now)
		require.Len(t, recent, 1)
		assert.Equal(t, "https://example.com/recent", recent[0].Link)
		assert.Equal(t, 8.0, recent[0].RelevanceScore)

		month := ScoreByCriteria(&core.SearchCriteria{DateFilter: core.DateFilterThisMonth}, articles, now)
		require.Len(t, month, 2)
		assert.Equal(t, 5.0, month[0].RelevanceScore)
	})

	t.Run("content type bonus applies once", func(t *testing.T) {
		criteria := &core.SearchCriteria{ContentType: core.ContentTypeResearch}
		articles := []*core.Article{
			{Title: "A research paper on arxiv", Summary: "study results", Link: "https://example.com/r"},
		}
		results := ScoreByCriteria(criteria, articles, now)
		require.Len(t, results, 1)
		// Several markers match but the bonus is granted once.
		assert.Equal(t, 3.0, results[0].RelevanceScore)
	})

	t.Run("articles matching nothing are excluded", func(t *testing.T) {
		criteria := &core.SearchCriteria{
			Keywords:    []string{"quantum"},
			DateFilter:  core.DateFilterAny,
			ContentType: core.ContentTypeAny,
		}
		articles := []*core.Article{{Title: "classical computing", Link: "https://example.com/e"}}
		assert.Empty(t, ScoreByCriteria(criteria, articles, now))
	})
}
