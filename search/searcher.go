package search

import (
	"context"
	"log/slog"
	"runtime"
	"strings"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/newsrank/ai"
	"github.com/poiesic/newsrank/core"
)

// Searcher ranks syndicated articles against a query using keyword,
// semantic and hybrid strategies. The strategy is chosen per query; a
// searcher without an embedder degrades to keyword-only ranking rather
// than failing.
type Searcher struct {
	embedder    ai.Embedder
	interpreter ai.CriteriaInterpreter
	pool        *ants.Pool
	config      *Config
	logger      *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithConfig replaces the pipeline configuration.
// A nil config restores the defaults.
func WithConfig(cfg *Config) Option {
	return func(s *Searcher) error {
		if cfg == nil {
			cfg = DefaultConfig()
		}
		s.config = cfg
		return nil
	}
}

// WithPoolSize sets the worker pool size for concurrent candidate embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(s *Searcher) error {
		if size < 1 {
			size = 1
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		if s.pool != nil {
			s.pool.Release()
		}
		s.pool = pool
		return nil
	}
}

// NewSearcher creates a new searcher.
// The provider may be nil, in which case complex queries fall back to
// keyword ranking instead of semantic scoring.
func NewSearcher(provider ai.AIProvider, opts ...Option) (*Searcher, error) {
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	s := &Searcher{
		pool:   pool,
		config: DefaultConfig(),
		logger: slog.Default(),
	}
	if provider != nil {
		s.embedder = provider.Embedder()
		s.interpreter = provider.CriteriaInterpreter()
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			s.pool.Release()
			return nil, err
		}
	}

	return s, nil
}

// Search ranks the candidate articles against the query.
// It always returns a well-formed result: degraded modes and per-candidate
// failures downgrade the strategy instead of failing the request.
func (s *Searcher) Search(ctx context.Context, query string, articles []*core.Article) *core.SearchResult {
	return s.SearchWithMonitor(ctx, query, articles, nil)
}

// SearchWithMonitor ranks candidates with per-stage monitoring callbacks.
func (s *Searcher) SearchWithMonitor(ctx context.Context, query string, articles []*core.Article, monitor SearchMonitor) *core.SearchResult {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	monitor.Start(query)

	result := s.search(ctx, query, articles, monitor)
	result.Query = query
	result.TotalResults = len(result.Articles)
	monitor.Finish(result)

	s.logger.Debug("search completed",
		"query", query,
		"searchType", result.SearchType,
		"results", result.TotalResults)
	return result
}

func (s *Searcher) search(ctx context.Context, query string, articles []*core.Article, monitor SearchMonitor) *core.SearchResult {
	if strings.TrimSpace(query) == "" || len(articles) == 0 {
		return &core.SearchResult{
			SearchType: core.SearchTypeNone,
			Articles:   []*core.ScoredArticle{},
		}
	}

	class := ClassifyQuery(query, s.config.SimpleQueryThreshold)
	monitor.QueryClassified(query, class)

	if class == QueryClassSimple {
		scored := ScoreByKeywords(query, articles)
		monitor.AfterKeywordScoring(scored)
		return &core.SearchResult{
			SearchType: core.SearchTypeKeyword,
			Articles:   capResults(scored, s.config.MaxResults),
		}
	}

	if s.embedder == nil {
		return s.fallbackSearch(ctx, query, articles, monitor)
	}
	if s.config.HybridEnabled {
		return s.hybridSearch(ctx, query, articles, monitor)
	}
	return s.semanticSearch(ctx, query, articles, monitor)
}

// hybridSearch narrows the population, scores it both ways and merges.
func (s *Searcher) hybridSearch(ctx context.Context, query string, articles []*core.Article, monitor SearchMonitor) *core.SearchResult {
	narrowed := NarrowCandidates(query, articles, s.config)
	monitor.CandidatesNarrowed(len(articles), len(narrowed))

	keywordScored := ScoreByKeywords(query, narrowed)
	monitor.AfterKeywordScoring(keywordScored)

	semanticScored, err := s.scoreBySimilarity(ctx, query, narrowed, monitor)
	if err != nil {
		s.logger.Warn("error generating embedding for query, falling back to keyword search",
			"query", query, "err", err)
		return s.fallbackSearch(ctx, query, articles, monitor)
	}
	monitor.AfterSemanticScoring(semanticScored)

	combined := CombineScores(semanticScored, keywordScored)
	return &core.SearchResult{
		SearchType: core.SearchTypeHybrid,
		Articles:   FilterByRelevance(combined, s.config),
	}
}

// semanticSearch scores by embedding similarity alone.
func (s *Searcher) semanticSearch(ctx context.Context, query string, articles []*core.Article, monitor SearchMonitor) *core.SearchResult {
	population := articles
	if s.config.NarrowSemantic {
		population = NarrowCandidates(query, articles, s.config)
		monitor.CandidatesNarrowed(len(articles), len(population))
	}

	semanticScored, err := s.scoreBySimilarity(ctx, query, population, monitor)
	if err != nil {
		s.logger.Warn("error generating embedding for query, falling back to keyword search",
			"query", query, "err", err)
		return s.fallbackSearch(ctx, query, articles, monitor)
	}
	monitor.AfterSemanticScoring(semanticScored)

	return &core.SearchResult{
		SearchType: core.SearchTypeSemantic,
		Articles:   FilterByRelevance(semanticScored, s.config),
	}
}

// fallbackSearch handles complex queries when semantic scoring is
// unavailable. If an interpreter is configured it tries criteria-based
// scoring first; interpretation failure or empty criteria degrade further
// to plain keyword scoring. Never fails.
func (s *Searcher) fallbackSearch(ctx context.Context, query string, articles []*core.Article, monitor SearchMonitor) *core.SearchResult {
	if s.interpreter != nil {
		criteria, err := s.interpreter.InterpretQuery(ctx, query)
		switch {
		case err != nil:
			s.logger.Warn("error interpreting query, using plain keyword scoring",
				"query", query, "err", err)
		case criteria != nil:
			monitor.CriteriaExtracted(criteria)
			scored := ScoreByCriteria(criteria, articles, time.Now())
			monitor.AfterKeywordScoring(scored)
			return &core.SearchResult{
				SearchType:        core.SearchTypeKeywordFallback,
				Articles:          capResults(scored, s.config.MaxResults),
				ExtractedCriteria: criteria,
			}
		}
	}

	scored := ScoreByKeywords(query, articles)
	monitor.AfterKeywordScoring(scored)
	return &core.SearchResult{
		SearchType: core.SearchTypeKeywordFallback,
		Articles:   capResults(scored, s.config.MaxResults),
	}
}

// Release releases the embedding worker pool.
// The searcher should not be used after calling Release.
func (s *Searcher) Release() {
	if s.pool != nil {
		s.pool.Release()
	}
}

func capResults(results []*core.ScoredArticle, max int) []*core.ScoredArticle {
	if max > 0 && len(results) > max {
		return results[:max]
	}
	return results
}
