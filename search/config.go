package search

// Scoring weights for the lexical scorer. Phrase bonuses are mutually
// exclusive with each other; title takes priority.
const (
	phraseTitleBonus   = 25.0
	phraseSummaryBonus = 15.0

	tokenTitleWeight    = 10.0
	tokenSummaryWeight  = 5.0
	tokenSourceWeight   = 2.0
	tokenCategoryWeight = 8.0
)

// Criteria scorer weights (natural-language-extraction variant).
const (
	criteriaCategoryBonus    = 15.0
	criteriaRecentDateBonus  = 8.0
	criteriaMonthDateBonus   = 5.0
	criteriaContentTypeBonus = 3.0
)

// Hybrid combination weights. A side that produced no score contributes zero.
const (
	semanticWeight = 0.7
	keywordWeight  = 0.3
)

// Config holds tunables for the ranking pipeline.
type Config struct {
	// SimpleQueryThreshold is the word count at or below which a query is
	// classified simple and handled by the keyword scorer alone.
	// Default: 3
	SimpleQueryThreshold int

	// MaxResults caps result lists that bypass the relevance filter
	// (simple keyword searches and fallback searches).
	// Default: 50
	MaxResults int

	// DisplayLimit caps the filtered, user-facing result list.
	// Default: 6
	DisplayLimit int

	// DisplayThreshold is the minimum relevance percentage (0-100) an
	// article needs to survive the relevance filter.
	// Default: 75
	DisplayThreshold float64

	// SimilarityThreshold is the minimum remapped cosine similarity (0-1)
	// for a candidate to count as a semantic match.
	// Default: 0.70
	SimilarityThreshold float64

	// KeywordNarrowLimit is how many top keyword matches feed the
	// semantic scorer. Default: 30
	KeywordNarrowLimit int

	// RecentNarrowLimit is how many most-recent candidates feed the
	// semantic scorer alongside keyword matches. Default: 20
	RecentNarrowLimit int

	// FallbackNarrowLimit is how many most-recent candidates feed the
	// semantic scorer when the keyword pre-pass finds nothing. Default: 40
	FallbackNarrowLimit int

	// SummaryEmbedChars bounds the summary portion of the text embedded
	// per candidate. Default: 500
	SummaryEmbedChars int

	// HybridEnabled selects hybrid combination for complex queries when
	// an embedder is available; when false, semantic scoring runs alone.
	// Default: true
	HybridEnabled bool

	// NarrowSemantic applies candidate narrowing on the semantic-only
	// path. When false, semantic scoring sees the full population.
	// Default: true
	NarrowSemantic bool
}

// DefaultConfig returns the pipeline defaults.
func DefaultConfig() *Config {
	return &Config{
		SimpleQueryThreshold: 3,
		MaxResults:           50,
		DisplayLimit:         6,
		DisplayThreshold:     75,
		SimilarityThreshold:  0.70,
		KeywordNarrowLimit:   30,
		RecentNarrowLimit:    20,
		FallbackNarrowLimit:  40,
		SummaryEmbedChars:    500,
		HybridEnabled:        true,
		NarrowSemantic:       true,
	}
}
