package openai

import (
	"fmt"
	"strings"

	"github.com/poiesic/newsrank/ai"
)

const interpretationResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "keywords": {
      "type": "array",
      "items": {"type": "string"}
    },
    "categories": {
      "type": "array",
      "items": {"type": "string"}
    },
    "date_filter": {
      "type": "string",
      "enum": ["recent", "this_week", "this_month", "any"]
    },
    "content_type": {
      "type": "string",
      "enum": ["research", "tool", "project", "news", "any"]
    }
  },
  "required": ["keywords", "categories", "date_filter", "content_type"],
  "additionalProperties": false
}`

const interpretationPromptTemplate = `You are a search query analyzer for an AI news aggregator.
Extract structured search criteria from natural language queries and return them as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- Keywords are the main search terms, in the order they matter.
- Categories must be chosen from this list only: %s.
- date_filter reflects how time-sensitive the query is; use "any" when unsure.
- content_type reflects the kind of content asked for; use "any" when unsure.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Query: "recent research papers on multimodal AI agents with code examples"
Output:
{
  "keywords": ["multimodal", "agents", "code", "research", "papers"],
  "categories": ["Multimodal AI", "AI Agents & Automation", "AI Research & Papers"],
  "date_filter": "recent",
  "content_type": "research"
}

Example:
Query: "GPT-4 and Claude performance comparison"
Output:
{
  "keywords": ["GPT-4", "Claude", "performance", "comparison"],
  "categories": ["LLMs & Foundation Models"],
  "date_filter": "any",
  "content_type": "any"
}`

// buildSystemPrompt creates the system prompt with the category list embedded.
func buildSystemPrompt() string {
	return fmt.Sprintf(interpretationPromptTemplate,
		interpretationResponseSchema,
		strings.Join(ai.Categories, ", "))
}
