package router

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ayra-my/ayra/internal/models"
)

// Kind is the closed set of backend variants the classifier can pick.
type Kind int

const (
	KindChat Kind = iota
	KindCoding
	KindEthics
)

// Display labels, also used as the persisted backend tag on each turn.
const (
	LabelGemini   = "Gemini (Ayra)"
	LabelDeepSeek = "DeepSeek (Jiji)"
	LabelClaude   = "Claude (Fikri)"
)

func (k Kind) Label() string {
	switch k {
	case KindCoding:
		return LabelDeepSeek
	case KindEthics:
		return LabelClaude
	default:
		return LabelGemini
	}
}

// Request is one generation call: the new prompt plus the trailing
// conversation window and the optional profile for personalization.
type Request struct {
	Prompt  string
	History []models.ChatMessage
	Profile map[string]string
}

// Backend generates a reply for a request. Adapters own prompt assembly
// for their provider; the router owns selection, timeouts and fallbacks.
type Backend interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// historyWindow is the max prior messages included in a prompt.
const historyWindow = 6

func trimHistory(history []models.ChatMessage) []models.ChatMessage {
	if len(history) > historyWindow {
		return history[len(history)-historyWindow:]
	}
	return history
}

// profileBlock renders the profile key/values deterministically for
// inclusion in a system prompt; empty when no profile is set.
func profileBlock(profile map[string]string) string {
	if len(profile) == 0 {
		return ""
	}

	keys := make([]string, 0, len(profile))
	for k, v := range profile {
		if v != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("\n\nUser profile:")
	for _, k := range keys {
		fmt.Fprintf(&b, "\n- %s: %s", k, profile[k])
	}
	return b.String()
}
