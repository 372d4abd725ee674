package search

import "github.com/poiesic/newsrank/core"

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	QueryClassified(query string, class QueryClass)
	CriteriaExtracted(criteria *core.SearchCriteria)
	CandidatesNarrowed(population, narrowed int)
	AfterKeywordScoring(results []*core.ScoredArticle)
	AfterSemanticScoring(results []*core.ScoredArticle)
	EmbeddingFailed(article *core.Article, err error)
	Finish(result *core.SearchResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                               {}
func (n *noopMonitor) QueryClassified(_ string, _ QueryClass)       {}
func (n *noopMonitor) CriteriaExtracted(_ *core.SearchCriteria)     {}
func (n *noopMonitor) CandidatesNarrowed(_, _ int)                  {}
func (n *noopMonitor) AfterKeywordScoring(_ []*core.ScoredArticle)  {}
func (n *noopMonitor) AfterSemanticScoring(_ []*core.ScoredArticle) {}
func (n *noopMonitor) EmbeddingFailed(_ *core.Article, _ error)     {}
func (n *noopMonitor) Finish(_ *core.SearchResult)                  {}
