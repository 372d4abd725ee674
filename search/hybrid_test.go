package search

import (
	"testing"

	"github.com/poiesic/newsrank/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineScores_WeightIdentity(t *testing.T) {
	semantic := []*core.ScoredArticle{
		{Article: core.Article{Title: "both", Link: "https://example.com/both"}, RelevanceScore: 80, SemanticScore: 80, SearchMethod: core.SearchMethodSemantic},
	}
	keyword := []*core.ScoredArticle{
		{Article: core.Article{Title: "both", Link: "https://example.com/both"}, RelevanceScore: 40, KeywordScore: 40, SearchMethod: core.SearchMethodKeyword},
	}

	combined := CombineScores(semantic, keyword)
	require.Len(t, combined, 1)
	assert.InDelta(t, 0.7*80+0.3*40, combined[0].RelevanceScore, 1e-9)
	assert.Equal(t, core.SearchMethodHybrid, combined[0].SearchMethod)
	assert.Equal(t, 80.0, combined[0].SemanticScore)
	assert.Equal(t, 40.0, combined[0].KeywordScore)
}

func TestCombineScores_SingleSidedEntries(t *testing.T) {
	semantic := []*core.ScoredArticle{
		{Article: core.Article{Title: "sem only", Link: "https://example.com/sem"}, SemanticScore: 90},
	}
	keyword := []*core.ScoredArticle{
		{Article: core.Article{Title: "kw only", Link: "https://example.com/kw"}, KeywordScore: 30},
	}

	combined := CombineScores(semantic, keyword)
	require.Len(t, combined, 2)

	byLink := map[string]*core.ScoredArticle{}
	for _, entry := range combined {
		byLink[entry.Link] = entry
	}
	assert.InDelta(t, 0.7*90, byLink["https://example.com/sem"].RelevanceScore, 1e-9)
	assert.InDelta(t, 0.3*30, byLink["https://example.com/kw"].RelevanceScore, 1e-9)
}

func TestCombineScores_EmptyLinksNeverMerge(t *testing.T) {
	semantic := []*core.ScoredArticle{
		{Article: core.Article{Title: "malformed one", Link: ""}, SemanticScore: 75},
	}
	keyword := []*core.ScoredArticle{
		{Article: core.Article{Title: "malformed two", Link: ""}, KeywordScore: 20},
	}

	combined := CombineScores(semantic, keyword)
	require.Len(t, combined, 2)
	assert.NotEqual(t, combined[0].Title, combined[1].Title)
}

func TestCombineScores_OrderedDescending(t *testing.T) {
	semantic := []*core.ScoredArticle{
		{Article: core.Article{Link: "https://example.com/low"}, SemanticScore: 71},
		{Article: core.Article{Link: "https://example.com/high"}, SemanticScore: 95},
	}

	combined := CombineScores(semantic, nil)
	require.Len(t, combined, 2)
	assert.Equal(t, "https://example.com/high", combined[0].Link)
	assert.Equal(t, "https://example.com/low", combined[1].Link)
}

func TestCombineScores_Empty(t *testing.T) {
	assert.Empty(t, CombineScores(nil, nil))
}
