package search

import (
	"fmt"
	"testing"

	"github.com/poiesic/newsrank/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNarrowCandidates_Bound(t *testing.T) {
	cfg := DefaultConfig()

	// Large population where every article matches the query lexically and
	// carries a date, so both selection paths are saturated.
	articles := make([]*core.Article, 1000)
	for i := range articles {
		articles[i] = &core.Article{
			Title:         fmt.Sprintf("robotics update %d", i),
			Link:          fmt.Sprintf("https://example.com/%d", i),
			PublishedDate: fmt.Sprintf("2025-%02d-%02d", 1+i%12, 1+i%28),
		}
	}

	narrowed := NarrowCandidates("robotics progress this year", articles, cfg)
	assert.LessOrEqual(t, len(narrowed), cfg.KeywordNarrowLimit+cfg.RecentNarrowLimit)
	assert.NotEmpty(t, narrowed)
}

func TestNarrowCandidates_UnionDedupesByLink(t *testing.T) {
	cfg := DefaultConfig()

	// One article is both the best keyword match and the most recent; it must
	// appear once.
	articles := []*core.Article{
		{Title: "serverless costs", Link: "https://example.com/hot", PublishedDate: "2025-08-25"},
		{Title: "unrelated", Link: "https://example.com/cold", PublishedDate: "2025-08-24"},
	}

	narrowed := NarrowCandidates("serverless costs breakdown", articles, cfg)
	seen := map[string]int{}
	for _, a := range narrowed {
		seen[a.Link]++
	}
	assert.Equal(t, 1, seen["https://example.com/hot"])
}

func TestNarrowCandidates_EmptyLinksStayDistinct(t *testing.T) {
	cfg := DefaultConfig()

	articles := []*core.Article{
		{Title: "kernel scheduling notes", Link: "", PublishedDate: "2025-08-01"},
		{Title: "kernel memory notes", Link: "", PublishedDate: "2025-08-02"},
	}

	narrowed := NarrowCandidates("kernel notes roundup please", articles, cfg)
	assert.Len(t, narrowed, 2)
}

func TestNarrowCandidates_FallbackToRecent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FallbackNarrowLimit = 3

	articles := make([]*core.Article, 10)
	for i := range articles {
		articles[i] = &core.Article{
			Title:         fmt.Sprintf("entry %d", i),
			Link:          fmt.Sprintf("https://example.com/%d", i),
			PublishedDate: fmt.Sprintf("2025-08-%02d", i+1),
		}
	}

	// No lexical match anywhere: the fallback slice of recents is used.
	narrowed := NarrowCandidates("zzz qqq xxx www", articles, cfg)
	require.Len(t, narrowed, 3)
	assert.Equal(t, "entry 9", narrowed[0].Title)
	assert.Equal(t, "entry 8", narrowed[1].Title)
	assert.Equal(t, "entry 7", narrowed[2].Title)
}

func TestNarrowCandidates_EmptyPopulation(t *testing.T) {
	assert.Empty(t, NarrowCandidates("anything at all here", nil, DefaultConfig()))
}
