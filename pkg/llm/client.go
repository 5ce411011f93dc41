package llm

import (
	"context"
	"strings"
)

type Summarizer interface {
	Summarize(ctx context.Context, symbol string, text string) (string, error)
}

// cleanResponse strips code fences and wrapping quotes that models
// occasionally add around plain-text output.
func cleanResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```text")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	if len(content) >= 2 && strings.HasPrefix(content, `"`) && strings.HasSuffix(content, `"`) {
		content = strings.TrimSpace(content[1 : len(content)-1])
	}
	return content
}
