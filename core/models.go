package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for stored articles.
// It is derived from the article link using content-based hashing.
type ID uint64

// IDFromLink generates a deterministic ID from an article link using BLAKE2b hashing.
// Identical links always produce identical IDs, which makes link-based upserts cheap.
func IDFromLink(link string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(link))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// PublishedDateLayout is the calendar date format carried by syndicated feeds.
const PublishedDateLayout = "2006-01-02"

// Article is a single syndicated article as produced by the upstream aggregator.
// The ranking pipeline treats articles as read-only and annotates copies,
// never the shared source collection.
type Article struct {
	Title         string
	Summary       string
	Source        string
	Category      string // assigned upstream, may be empty
	Link          string // unique identity, may be empty for malformed feed items
	PublishedDate string // ISO YYYY-MM-DD, may be empty
}

// PublishedTime parses the article's published date.
// Returns false if the date is absent or not a valid calendar date.
func (a *Article) PublishedTime() (time.Time, bool) {
	if a.PublishedDate == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(PublishedDateLayout, a.PublishedDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// SearchMethod identifies which scoring strategy produced a score.
type SearchMethod string

const (
	// SearchMethodKeyword indicates lexical scoring over article text fields.
	SearchMethodKeyword SearchMethod = "keyword"
	// SearchMethodSemantic indicates embedding-based similarity scoring.
	SearchMethodSemantic SearchMethod = "semantic"
	// SearchMethodHybrid indicates a weighted combination of both.
	SearchMethodHybrid SearchMethod = "hybrid"
)

// ScoredArticle is an article annotated with a relevance score.
// The score scale depends on the method: raw keyword scores are unbounded,
// semantic and hybrid scores live on a 0-100 scale.
type ScoredArticle struct {
	Article

	RelevanceScore float64
	SearchMethod   SearchMethod

	// Constituent sub-scores, populated for hybrid results.
	// A side that produced no score for the article is zero.
	SemanticScore float64
	KeywordScore  float64

	// RelevancePercentage is the normalized 0-100 display score.
	// Populated by the relevance filter.
	RelevancePercentage int
}

// SearchType describes which strategy actually ran for a query.
type SearchType string

const (
	SearchTypeKeyword         SearchType = "keyword"
	SearchTypeKeywordFallback SearchType = "keyword_fallback"
	SearchTypeSemantic        SearchType = "semantic"
	SearchTypeHybrid          SearchType = "hybrid"
	SearchTypeNone            SearchType = "none"
)

// DateFilter narrows criteria-based scoring by article recency.
type DateFilter string

const (
	DateFilterRecent    DateFilter = "recent"
	DateFilterThisWeek  DateFilter = "this_week"
	DateFilterThisMonth DateFilter = "this_month"
	DateFilterAny       DateFilter = "any"
)

// ContentType narrows criteria-based scoring by the kind of content.
type ContentType string

const (
	ContentTypeResearch ContentType = "research"
	ContentTypeTool     ContentType = "tool"
	ContentTypeProject  ContentType = "project"
	ContentTypeNews     ContentType = "news"
	ContentTypeAny      ContentType = "any"
)

// SearchCriteria is structured search intent extracted from a natural
// language query by an external interpreter. It is untrusted input:
// any field may be missing, empty, or carry an unknown value.
type SearchCriteria struct {
	Keywords    []string
	Categories  []string
	DateFilter  DateFilter
	ContentType ContentType
}

// Normalize brings untrusted criteria into canonical form.
// Unknown or empty enum values collapse to "any"; blank keywords and
// categories are dropped.
func (c *SearchCriteria) Normalize() {
	switch c.DateFilter {
	case DateFilterRecent, DateFilterThisWeek, DateFilterThisMonth, DateFilterAny:
	default:
		c.DateFilter = DateFilterAny
	}
	switch c.ContentType {
	case ContentTypeResearch, ContentTypeTool, ContentTypeProject, ContentTypeNews, ContentTypeAny:
	default:
		c.ContentType = ContentTypeAny
	}
	c.Keywords = dropBlank(c.Keywords)
	c.Categories = dropBlank(c.Categories)
}

func dropBlank(values []string) []string {
	kept := values[:0]
	for _, v := range values {
		if v != "" {
			kept = append(kept, v)
		}
	}
	return kept
}

// SearchResult is the complete outcome of one search request.
// Articles are ordered descending by relevance score.
type SearchResult struct {
	Query             string
	SearchType        SearchType
	TotalResults      int
	Articles          []*ScoredArticle
	ExtractedCriteria *SearchCriteria // set only for interpreter-assisted searches
}
