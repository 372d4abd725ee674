package search

// QueryClass is the outcome of query classification.
type QueryClass int

const (
	// QueryClassSimple marks short queries handled by keyword scoring alone.
	QueryClassSimple QueryClass = iota
	// QueryClassComplex marks longer natural-language queries eligible for
	// interpretation and semantic scoring.
	QueryClassComplex
)

// String returns the class name for logging.
func (c QueryClass) String() string {
	if c == QueryClassSimple {
		return "simple"
	}
	return "complex"
}

// ClassifyQuery classifies a query by word count.
// Queries at or below simpleThreshold words are simple; short queries are
// lexically unambiguous and never worth the latency of semantic scoring.
// An empty query has zero words and classifies simple.
func ClassifyQuery(query string, simpleThreshold int) QueryClass {
	if wordCount(query) <= simpleThreshold {
		return QueryClassSimple
	}
	return QueryClassComplex
}
