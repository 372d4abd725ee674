package search

import "github.com/poiesic/newsrank/core"

// CombineScores merges semantic and keyword results for the same candidate
// population into a single hybrid ranking. Entries are matched by link;
// entries with an empty link are never merged and pass through individually.
// The combined score weights semantic similarity over lexical overlap, with
// an absent side contributing zero. Entries whose combined score is zero are
// dropped. Results are sorted descending with ties stable.
func CombineScores(semantic, keyword []*core.ScoredArticle) []*core.ScoredArticle {
	combined := make([]*core.ScoredArticle, 0, len(semantic)+len(keyword))
	byLink := make(map[string]*core.ScoredArticle)

	for _, sem := range semantic {
		entry := &core.ScoredArticle{
			Article:       sem.Article,
			SearchMethod:  core.SearchMethodHybrid,
			SemanticScore: sem.SemanticScore,
		}
		combined = append(combined, entry)
		if entry.Link != "" {
			byLink[entry.Link] = entry
		}
	}

	for _, kw := range keyword {
		if kw.Link != "" {
			if entry, ok := byLink[kw.Link]; ok {
				entry.KeywordScore = kw.KeywordScore
				continue
			}
		}
		entry := &core.ScoredArticle{
			Article:      kw.Article,
			SearchMethod: core.SearchMethodHybrid,
			KeywordScore: kw.KeywordScore,
		}
		combined = append(combined, entry)
		if entry.Link != "" {
			byLink[entry.Link] = entry
		}
	}

	kept := combined[:0]
	for _, entry := range combined {
		entry.RelevanceScore = semanticWeight*entry.SemanticScore + keywordWeight*entry.KeywordScore
		if entry.RelevanceScore > 0 {
			kept = append(kept, entry)
		}
	}

	sortByScore(kept)
	return kept
}
