package llm

import (
	"context"
	"strings"
)

// Enricher is the text-enrichment surface the agents consume. Calls are pure
// input-text to output-text; no conversation state is kept between them.
// Failures are not swallowed here: callers decide how loud to fail.
type Enricher interface {
	Summarize(ctx context.Context, text string) (string, error)
	ExtractEntities(ctx context.Context, text string) (string, error)
	Analyze(ctx context.Context, text string) (string, error)
}

// Transcriber turns a local audio file into text.
type Transcriber interface {
	Transcribe(ctx context.Context, path string) (string, error)
}

const summarizerPrompt = "You are an assistant that summarizes texts concisely."

const entityPrompt = "You are an assistant specialized in entity extraction (places, dates, organizations)."

const analystPrompt = "You are an analyst that extracts insights and summarizes texts."

const entityUserPrompt = "Extract the entities from the following text:\n\n"

// Summaries use low non-zero temperature with a bounded length; entity
// extraction is deterministic; analysis keeps the model defaults.
const (
	summaryTemperature = 0.3
	summaryMaxTokens   = 150
	entityTemperature  = 0.0
)

func cleanResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
