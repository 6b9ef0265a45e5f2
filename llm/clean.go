package llm

import (
	"regexp"
	"strings"
)

var (
	labelPrefix = regexp.MustCompile(`(?i)^(question|answer)\s*:\s*`)
	codeFence   = regexp.MustCompile("(?s)^```(?:json)?\\s*(.*?)\\s*```$")
)

// CleanText normalizes a free-form LLM reply: trims whitespace, strips one
// layer of wrapping quotes, and drops a leading "Question:" or "Answer:"
// label if the model echoed one.
func CleanText(s string) string {
	s = strings.TrimSpace(s)
	s = labelPrefix.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)

	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			s = strings.TrimSpace(s[1 : len(s)-1])
			// the label can sit inside the quotes too
			s = strings.TrimSpace(labelPrefix.ReplaceAllString(s, ""))
		}
	}
	return s
}

// StripCodeFence unwraps a markdown code fence some models insist on adding
// around JSON payloads.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if m := codeFence.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return s
}
