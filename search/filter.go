package search

import (
	"math"

	"github.com/poiesic/newsrank/core"
)

// FilterByRelevance reduces an already-ranked result list to the entries
// worth displaying. Semantic and hybrid scores live on an absolute 0-100
// scale and are compared to the threshold directly; raw keyword scores are
// unbounded, so they are normalized against the best score in the batch.
// The input order is preserved, never re-sorted, and applying the filter to
// its own output changes nothing.
func FilterByRelevance(results []*core.ScoredArticle, cfg *Config) []*core.ScoredArticle {
	if len(results) == 0 {
		return nil
	}

	maxKeyword := 0.0
	for _, r := range results {
		if r.SearchMethod == core.SearchMethodKeyword && r.RelevanceScore > maxKeyword {
			maxKeyword = r.RelevanceScore
		}
	}

	filtered := make([]*core.ScoredArticle, 0, cfg.DisplayLimit)
	for _, r := range results {
		switch r.SearchMethod {
		case core.SearchMethodSemantic, core.SearchMethodHybrid:
			// Absolute scale: the raw score meets the threshold, the
			// percentage is rounded for display only.
			if r.RelevanceScore < cfg.DisplayThreshold {
				continue
			}
			pct := int(math.Round(r.RelevanceScore))
			if pct > 100 {
				pct = 100
			}
			r.RelevancePercentage = pct
		default:
			if maxKeyword <= 0 {
				continue
			}
			pct := int(math.Round(r.RelevanceScore / maxKeyword * 100))
			if float64(pct) < cfg.DisplayThreshold {
				continue
			}
			r.RelevancePercentage = pct
		}

		filtered = append(filtered, r)
		if len(filtered) == cfg.DisplayLimit {
			break
		}
	}
	return filtered
}
