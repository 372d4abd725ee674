package search

import (
	"context"
	"strings"
	"sync"

	"github.com/poiesic/newsrank/core"
)

// scoreBySimilarity scores candidates by embedding similarity to the query.
// Candidate embeddings are computed concurrently on the searcher's worker
// pool; each result lands in its own slot so output order never depends on
// scheduling. A failed candidate embedding excludes only that candidate.
// Returns an error only when the query itself cannot be embedded or the
// context is cancelled.
func (s *Searcher) scoreBySimilarity(ctx context.Context, query string, articles []*core.Article, monitor SearchMonitor) ([]*core.ScoredArticle, error) {
	queryVector, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		return nil, err
	}

	slots := make([]*core.ScoredArticle, len(articles))
	var wg sync.WaitGroup

	for i, article := range articles {
		wg.Add(1)
		submitErr := s.pool.Submit(func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			scored, embedErr := s.scoreCandidate(ctx, queryVector, article)
			if embedErr != nil {
				s.logger.Warn("error embedding candidate, excluding from results",
					"link", article.Link, "err", embedErr)
				monitor.EmbeddingFailed(article, embedErr)
				return
			}
			slots[i] = scored
		})
		if submitErr != nil {
			wg.Done()
			s.logger.Warn("error submitting embedding task", "err", submitErr)
			monitor.EmbeddingFailed(article, submitErr)
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := make([]*core.ScoredArticle, 0, len(articles))
	for _, scored := range slots {
		if scored != nil {
			results = append(results, scored)
		}
	}
	sortByScore(results)
	return results, nil
}

// scoreCandidate embeds one candidate and converts its similarity to a score.
// Returns nil without an error when the candidate falls below the
// similarity threshold.
func (s *Searcher) scoreCandidate(ctx context.Context, queryVector []float32, article *core.Article) (*core.ScoredArticle, error) {
	vector, err := s.embedder.EmbedText(ctx, candidateText(article, s.config.SummaryEmbedChars))
	if err != nil {
		return nil, err
	}

	cos, ok := cosineSimilarity(queryVector, vector)
	if !ok {
		return nil, nil
	}

	// Remap cosine from [-1,1] to [0,1] so the threshold and the 0-100
	// display scale share one interpretation.
	similarity := (cos + 1) / 2
	if similarity < s.config.SimilarityThreshold {
		return nil, nil
	}

	score := similarity * 100
	return &core.ScoredArticle{
		Article:        *article,
		RelevanceScore: score,
		SearchMethod:   core.SearchMethodSemantic,
		SemanticScore:  score,
	}, nil
}

// candidateText builds the text embedded for a candidate. The title is
// repeated to outweigh the summary, and the summary is truncated so one
// long article cannot dominate embedding latency.
func candidateText(article *core.Article, summaryChars int) string {
	parts := []string{article.Title, article.Title}
	if article.Summary != "" {
		parts = append(parts, truncateRunes(article.Summary, summaryChars))
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
