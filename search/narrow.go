package search

import (
	"slices"
	"time"

	"github.com/poiesic/newsrank/core"
)

// NarrowCandidates reduces the candidate population before semantic scoring.
// The narrowed set is the union of the top keyword matches and the most
// recently published candidates, deduplicated by link. When the query matches
// nothing lexically, the fallback takes a larger slice of recent candidates
// so semantic scoring still has material to work with.
//
// Candidates with an empty link are kept distinct from each other; only
// non-empty links deduplicate.
func NarrowCandidates(query string, articles []*core.Article, cfg *Config) []*core.Article {
	if len(articles) == 0 {
		return nil
	}

	keywordIdx := keywordTopIndices(query, articles, cfg.KeywordNarrowLimit)

	recentLimit := cfg.RecentNarrowLimit
	if len(keywordIdx) == 0 {
		recentLimit = cfg.FallbackNarrowLimit
	}
	recentIdx := recentIndices(articles, recentLimit)

	narrowed := make([]*core.Article, 0, len(keywordIdx)+len(recentIdx))
	seenIndex := make(map[int]bool)
	seenLink := make(map[string]bool)

	add := func(i int) {
		if seenIndex[i] {
			return
		}
		link := articles[i].Link
		if link != "" {
			if seenLink[link] {
				return
			}
			seenLink[link] = true
		}
		seenIndex[i] = true
		narrowed = append(narrowed, articles[i])
	}

	for _, i := range keywordIdx {
		add(i)
	}
	for _, i := range recentIdx {
		add(i)
	}

	bound := cfg.KeywordNarrowLimit + cfg.RecentNarrowLimit
	if len(narrowed) > bound {
		narrowed = narrowed[:bound]
	}
	return narrowed
}

// keywordTopIndices returns the indices of the highest-scoring lexical
// matches, score descending with ties in input order.
func keywordTopIndices(query string, articles []*core.Article, limit int) []int {
	phrase := normalizedPhrase(query)
	tokens := queryTokens(query)
	if len(tokens) == 0 {
		return nil
	}

	type indexScore struct {
		index int
		score float64
	}
	matches := make([]indexScore, 0, len(articles))
	for i, article := range articles {
		score := keywordScore(phrase, tokens, article)
		if score > 0 {
			matches = append(matches, indexScore{index: i, score: score})
		}
	}

	slices.SortStableFunc(matches, func(a, b indexScore) int {
		if a.score > b.score {
			return -1
		}
		if a.score < b.score {
			return 1
		}
		return 0
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	indices := make([]int, len(matches))
	for i, m := range matches {
		indices[i] = m.index
	}
	return indices
}

// recentIndices returns the indices of the most recently published
// candidates, newest first. Undated candidates sort last in input order.
func recentIndices(articles []*core.Article, limit int) []int {
	type indexTime struct {
		index     int
		published time.Time
		dated     bool
	}
	entries := make([]indexTime, len(articles))
	for i, article := range articles {
		published, ok := article.PublishedTime()
		entries[i] = indexTime{index: i, published: published, dated: ok}
	}

	slices.SortStableFunc(entries, func(a, b indexTime) int {
		if a.dated != b.dated {
			if a.dated {
				return -1
			}
			return 1
		}
		if a.published.After(b.published) {
			return -1
		}
		if a.published.Before(b.published) {
			return 1
		}
		return 0
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	indices := make([]int, len(entries))
	for i, e := range entries {
		indices[i] = e.index
	}
	return indices
}
