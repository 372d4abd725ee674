package search

import (
	"testing"

	"github.com/poiesic/newsrank/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  QueryClass
	}{
		{"empty", "", QueryClassSimple},
		{"whitespace only", "   ", QueryClassSimple},
		{"one word", "transformers", QueryClassSimple},
		{"three words", "new llm releases", QueryClassSimple},
		{"four words", "what happened with agents", QueryClassComplex},
		{"long question", "which papers advanced retrieval augmented generation this month", QueryClassComplex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyQuery(tt.query, 3))
		})
	}
}

func TestScoreByKeywords_SingleToken(t *testing.T) {
	articles := []*core.Article{
		{Title: "GPT-4 launches", Summary: "OpenAI ships a new model", Link: "https://example.com/a"},
		{Title: "Llama gets smaller", Summary: "Quantization round-up", Link: "https://example.com/b"},
	}

	results := ScoreByKeywords("GPT", articles)
	require.Len(t, results, 1)
	assert.Equal(t, "GPT-4 launches", results[0].Title)
	// Title token match only; single-word queries get no phrase bonus.
	assert.Equal(t, 10.0, results[0].RelevanceScore)
	assert.Equal(t, core.SearchMethodKeyword, results[0].SearchMethod)
}

func TestScoreByKeywords_PhraseBonuses(t *testing.T) {
	t.Run("title phrase outranks summary phrase", func(t *testing.T) {
		articles := []*core.Article{
			{Title: "Notes", Summary: "A deep dive into vector databases", Link: "https://example.com/s"},
			{Title: "Vector databases explained", Summary: "An overview", Link: "https://example.com/t"},
		}
		results := ScoreByKeywords("vector databases", articles)
		require.Len(t, results, 2)
		assert.Equal(t, "Vector databases explained", results[0].Title)
		// phrase-in-title 25 + both tokens in title 20
		assert.Equal(t, 45.0, results[0].RelevanceScore)
		// phrase-in-summary 15 + both tokens in summary 10
		assert.Equal(t, 25.0, results[1].RelevanceScore)
	})

	t.Run("phrase bonuses are mutually exclusive", func(t *testing.T) {
		articles := []*core.Article{
			{Title: "Vector databases explained", Summary: "All about vector databases", Link: "https://example.com/u"},
		}
		results := ScoreByKeywords("vector databases", articles)
		require.Len(t, results, 1)
		// Title phrase 25 only, not 25+15; tokens hit title (20) and summary (10).
		assert.Equal(t, 55.0, results[0].RelevanceScore)
	})
}

func TestScoreByKeywords_FieldWeights(t *testing.T) {
	articles := []*core.Article{
		{Title: "Weekly digest", Source: "anthropic blog", Link: "https://example.com/src"},
		{Title: "Weekly digest", Category: "Anthropic News", Link: "https://example.com/cat"},
	}

	results := ScoreByKeywords("anthropic", articles)
	require.Len(t, results, 2)
	// Category (+8) outweighs source (+2).
	assert.Equal(t, "Anthropic News", results[0].Category)
	assert.Equal(t, 8.0, results[0].RelevanceScore)
	assert.Equal(t, 2.0, results[1].RelevanceScore)
}

func TestScoreByKeywords_ExcludesZeroScores(t *testing.T) {
	articles := []*core.Article{
		{Title: "Robotics update", Link: "https://example.com/r"},
		{Title: "Totally unrelated", Link: "https://example.com/x"},
	}

	results := ScoreByKeywords("robotics", articles)
	require.Len(t, results, 1)
	for _, r := range results {
		assert.Greater(t, r.RelevanceScore, 0.0)
	}
}

func TestScoreByKeywords_StableTies(t *testing.T) {
	articles := []*core.Article{
		{Title: "agents first", Link: "https://example.com/1"},
		{Title: "agents second", Link: "https://example.com/2"},
		{Title: "agents third", Link: "https://example.com/3"},
	}

	results := ScoreByKeywords("agents", articles)
	require.Len(t, results, 3)
	assert.Equal(t, "agents first", results[0].Title)
	assert.Equal(t, "agents second", results[1].Title)
	assert.Equal(t, "agents third", results[2].Title)
}

func TestScoreByKeywords_EmptyQuery(t *testing.T) {
	articles := []*core.Article{{Title: "anything", Link: "https://example.com/a"}}
	assert.Empty(t, ScoreByKeywords("", articles))
	assert.Empty(t, ScoreByKeywords("   ", articles))
}
