package ai

import (
	"context"

	"github.com/poiesic/newsrank/core"
)

// Embedder generates vector embeddings from text for semantic similarity scoring.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// CriteriaInterpreter extracts structured search criteria from a natural
// language query. Implementations must be thread-safe for concurrent use.
type CriteriaInterpreter interface {
	// InterpretQuery analyzes a query and extracts keywords, target
	// categories, a date filter and a content type.
	// Returns nil criteria (without an error) when the query yields no
	// usable structure; callers fall back to plain keyword search.
	// Returns an error if the interpretation call itself fails.
	InterpretQuery(ctx context.Context, query string) (*core.SearchCriteria, error)
}

// AIProvider aggregates AI services for convenient initialization and lifecycle management.
// A provider creates and manages Embedder and CriteriaInterpreter instances,
// ensuring they share configuration and resources appropriately.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// CriteriaInterpreter returns the query interpretation service.
	// The returned CriteriaInterpreter is safe for concurrent use.
	CriteriaInterpreter() CriteriaInterpreter

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
