// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/poiesic/newsrank/ai"
	"github.com/poiesic/newsrank/core"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// CriteriaInterpreter implements ai.CriteriaInterpreter using OpenAI-compatible chat APIs.
type CriteriaInterpreter struct {
	client llms.Model
	logger *slog.Logger
}

// interpretation is the wrapper structure for the LLM's JSON response.
type interpretation struct {
	Keywords    []string `json:"keywords"`
	Categories  []string `json:"categories"`
	DateFilter  string   `json:"date_filter"`
	ContentType string   `json:"content_type"`
}

// newCriteriaInterpreter is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newCriteriaInterpreter(config *ai.Config) (*CriteriaInterpreter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Create OpenAI client configured for chat/interpretation
	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.InterpreterHost),
		openai.WithToken("none"),
		openai.WithModel(config.InterpreterModel),
	)
	if err != nil {
		return nil, err
	}

	return &CriteriaInterpreter{
		client: client,
		logger: slog.Default().With("component", "openai-interpreter"),
	}, nil
}

// NewCriteriaInterpreter creates a new query interpreter using the provided configuration.
//
// Returns ai.CriteriaInterpreter interface to enforce abstraction.
func NewCriteriaInterpreter(config *ai.Config) (ai.CriteriaInterpreter, error) {
	return newCriteriaInterpreter(config)
}

// InterpretQuery extracts structured search criteria from a natural language query.
// Returns nil criteria without an error when the model produces no usable structure.
func (e *CriteriaInterpreter) InterpretQuery(ctx context.Context, query string) (*core.SearchCriteria, error) {
	// Scrub input text
	query = scrubString(query)

	// Build the system and user prompts
	systemPrompt := buildSystemPrompt()
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart("Query: " + query),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var result interpretation
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := e.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			e.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return nil, err
		}

		if len(response.Choices) < 1 {
			e.logger.Debug("no choices returned from model")
			return nil, nil
		}

		choice := response.Choices[0]

		// Strip markdown code fences if present
		responseText := strings.TrimSpace(choice.Content)
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)

		// Try to repair common JSON issues
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), &result); err != nil {
			lastErr = err
			e.logger.Warn("error parsing interpreter response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		// Success
		lastErr = nil
		break
	}

	if lastErr != nil {
		e.logger.Error("failed to parse interpreter response after retries", "err", lastErr)
		return nil, lastErr
	}

	criteria := &core.SearchCriteria{
		Keywords:    result.Keywords,
		Categories:  result.Categories,
		DateFilter:  core.DateFilter(result.DateFilter),
		ContentType: core.ContentType(result.ContentType),
	}
	criteria.Normalize()

	// A response with neither keywords nor categories carries no usable intent.
	if len(criteria.Keywords) == 0 && len(criteria.Categories) == 0 {
		e.logger.Debug("interpreter returned empty criteria", "query", query)
		return nil, nil
	}

	e.logger.Debug("interpreted query",
		"keywords", len(criteria.Keywords),
		"categories", len(criteria.Categories),
		"dateFilter", criteria.DateFilter,
		"contentType", criteria.ContentType)
	return criteria, nil
}
