package router

import "strings"

// Keyword sets for backend selection. Matching is case-insensitive
// substring search over the prompt; coding wins when both sets match.
var codingKeywords = []string{
	"code", "coding", "debug", "function", "algorithm", "compile",
	"python", "golang", "javascript", "sql", "regex", "stack trace",
	"math", "calculate", "equation", "derivative", "integral", "prove",
}

var ethicsKeywords = []string{
	"ethic", "moral", "should i", "is it right", "is it wrong", "fair",
	"professional", "formal letter", "cover letter", "essay", "report",
	"policy", "proposal", "memo",
}

// Classify picks the backend for a prompt. No keyword hit means the
// default conversational backend.
func Classify(prompt string) Kind {
	lower := strings.ToLower(prompt)

	for _, kw := range codingKeywords {
		if strings.Contains(lower, kw) {
			return KindCoding
		}
	}
	for _, kw := range ethicsKeywords {
		if strings.Contains(lower, kw) {
			return KindEthics
		}
	}
	return KindChat
}
