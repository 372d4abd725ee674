package search

import (
	"strings"
	"time"

	"github.com/poiesic/newsrank/core"
)

// contentTypeKeywords maps each content type to the markers that identify it
// in article text. The first marker found wins the bonus.
var contentTypeKeywords = map[core.ContentType][]string{
	core.ContentTypeResearch: {"research", "paper", "arxiv", "study"},
	core.ContentTypeTool:     {"tool", "platform", "app", "service"},
	core.ContentTypeProject:  {"project", "open source", "github", "library"},
	core.ContentTypeNews:     {"announce", "launch", "release", "news"},
}

// ScoreByCriteria scores candidates against interpreter-extracted criteria.
// The criteria are untrusted: any field may be empty, and empty fields simply
// contribute nothing. Articles that match nothing are excluded. Results are
// sorted descending by score with ties kept in input order.
func ScoreByCriteria(criteria *core.SearchCriteria, articles []*core.Article, now time.Time) []*core.ScoredArticle {
	if criteria == nil {
		return nil
	}

	results := make([]*core.ScoredArticle, 0, len(articles))
	for _, article := range articles {
		score := criteriaScore(criteria, article, now)
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

func criteriaScore(criteria *core.SearchCriteria, article *core.Article, now time.Time) float64 {
	title := strings.ToLower(article.Title)
	summary := strings.ToLower(article.Summary)
	source := strings.ToLower(article.Source)

	score := 0.0

	for _, keyword := range criteria.Keywords {
		keyword = strings.ToLower(keyword)
		if keyword == "" {
			continue
		}
		if strings.Contains(title, keyword) {
			score += tokenTitleWeight
		}
		if strings.Contains(summary, keyword) {
			score += tokenSummaryWeight
		}
		if strings.Contains(source, keyword) {
			score += tokenSourceWeight
		}
	}

	if article.Category != "" {
		for _, category := range criteria.Categories {
			if strings.EqualFold(category, article.Category) {
				score += criteriaCategoryBonus
				break
			}
		}
	}

	score += dateBonus(criteria.DateFilter, article, now)
	score += contentTypeBonus(criteria.ContentType, title, summary)

	return score
}

// dateBonus rewards articles inside the requested recency window.
// Articles with an absent or unparseable date get no bonus.
func dateBonus(filter core.DateFilter, article *core.Article, now time.Time) float64 {
	if filter == core.DateFilterAny || filter == "" {
		return 0
	}
	published, ok := article.PublishedTime()
	if !ok {
		return 0
	}
	age := now.Sub(published)

	switch filter {
	case core.DateFilterRecent, core.DateFilterThisWeek:
		if age <= 7*24*time.Hour {
			return criteriaRecentDateBonus
		}
	case core.DateFilterThisMonth:
		if age <= 30*24*time.Hour {
			return criteriaMonthDateBonus
		}
	}
	return 0
}

func contentTypeBonus(contentType core.ContentType, title, summary string) float64 {
	markers, ok := contentTypeKeywords[contentType]
	if !ok {
		return 0
	}
	for _, marker := range markers {
		if strings.Contains(title, marker) || strings.Contains(summary, marker) {
			return criteriaContentTypeBonus
		}
	}
	return 0
}
