package search

import (
	"slices"
	"strings"

	"github.com/poiesic/newsrank/core"
)

// ScoreByKeywords scores candidates lexically against the raw query.
// Articles that match nothing are excluded entirely; a zero score means
// "no match", not "low relevance". Results are sorted descending by score
// with ties kept in input order.
func ScoreByKeywords(query string, articles []*core.Article) []*core.ScoredArticle {
	phrase := normalizedPhrase(query)
	tokens := queryTokens(query)
	if len(tokens) == 0 {
		return nil
	}

	results := make([]*core.ScoredArticle, 0, len(articles))
	for _, article := range articles {
		score := keywordScore(phrase, tokens, article)
		if score <= 0 {
			continue
		}
		results = append(results, &core.ScoredArticle{
			Article:        *article,
			RelevanceScore: score,
			SearchMethod:   core.SearchMethodKeyword,
			KeywordScore:   score,
		})
	}

	sortByScore(results)
	return results
}

// keywordScore computes the additive lexical score for one article.
// The phrase bonus only applies to multi-word queries; for a single word
// the phrase and the token are the same match.
func keywordScore(phrase string, tokens []string, article *core.Article) float64 {
	title := strings.ToLower(article.Title)
	summary := strings.ToLower(article.Summary)
	source := strings.ToLower(article.Source)
	category := strings.ToLower(article.Category)

	score := 0.0

	if len(tokens) > 1 && phrase != "" {
		// Phrase bonuses are mutually exclusive, title takes priority.
		if strings.Contains(title, phrase) {
			score += phraseTitleBonus
		} else if strings.Contains(summary, phrase) {
			score += phraseSummaryBonus
		}
	}

	for _, token := range tokens {
		if strings.Contains(title, token) {
			score += tokenTitleWeight
		}
		if strings.Contains(summary, token) {
			score += tokenSummaryWeight
		}
		if strings.Contains(source, token) {
			score += tokenSourceWeight
		}
		if category != "" && strings.Contains(category, token) {
			score += tokenCategoryWeight
		}
	}

	return score
}

// sortByScore sorts descending by relevance score.
// The sort is stable so equal scores keep their original candidate order.
func sortByScore(results []*core.ScoredArticle) {
	slices.SortStableFunc(results, func(a, b *core.ScoredArticle) int {
		if a.RelevanceScore > b.RelevanceScore {
			return -1
		}
		if a.RelevanceScore < b.RelevanceScore {
			return 1
		}
		return 0
	})
}
