package search

import "strings"

// normalizedPhrase lower-cases and trims a query for whole-phrase matching.
func normalizedPhrase(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// queryTokens splits a query on whitespace and lower-cases each token.
func queryTokens(query string) []string {
	tokens := strings.Fields(strings.ToLower(query))
	return tokens
}

// wordCount counts whitespace-separated words in a query.
func wordCount(query string) int {
	return len(strings.Fields(query))
}

// truncateRunes bounds text to max runes without splitting a character.
func truncateRunes(s string, max int) string {
	if max < 1 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
