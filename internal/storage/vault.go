package storage

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// Vault is the long-term memory collaborator. Whether it is a no-op, a
// keyword index or a real vector store is a deployment decision; the
// pipeline calls it uniformly after every generated turn.
type Vault interface {
	SaveConversation(ctx context.Context, userText, replyText string, mood float64, backend string, important bool) error
	Search(ctx context.Context, query string, n int) ([]VaultMemory, error)
	Stats() VaultStats
}

type VaultMemory struct {
	Content   string
	Timestamp time.Time
	Mood      float64
	Backend   string
	Important bool
	Relevance float64
}

type VaultStats struct {
	TotalMemories  int
	ImportantCount int
}

// Indicator phrases that mark a message worth keeping long-term.
var importanceIndicators = []string{
	"suka", "minat", "gemar", "nama", "birthday", "hari jadi",
	"teh tarik", "kopi", "janji", "akan", "nanti",
	"pertama kali", "first time", "rindu", "sayang",
}

// IsImportant reports whether text mentions any long-term importance
// indicator.
func IsImportant(text string) bool {
	lower := strings.ToLower(text)
	for _, indicator := range importanceIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}

// KeywordVault is an in-process vault that scores memories by token
// overlap with the query. It keeps the original's contract without a
// vector index behind it.
type KeywordVault struct {
	mu       sync.RWMutex
	memories []VaultMemory
}

func NewKeywordVault() *KeywordVault {
	return &KeywordVault{}
}

func (v *KeywordVault) SaveConversation(ctx context.Context, userText, replyText string, mood float64, backend string, important bool) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.memories = append(v.memories, VaultMemory{
		Content:   "User: " + userText + "\nAYRA: " + replyText,
		Timestamp: time.Now(),
		Mood:      mood,
		Backend:   backend,
		Important: important || IsImportant(userText),
	})
	return nil
}

func (v *KeywordVault) Search(ctx context.Context, query string, n int) ([]VaultMemory, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	queryTokens := tokenize(query)
	if len(queryTokens) == 0 {
		return nil, nil
	}

	var scored []VaultMemory
	for _, mem := range v.memories {
		overlap := 0
		memTokens := tokenize(mem.Content)
		for tok := range queryTokens {
			if _, ok := memTokens[tok]; ok {
				overlap++
			}
		}
		if overlap == 0 {
			continue
		}
		mem.Relevance = float64(overlap) / float64(len(queryTokens))
		scored = append(scored, mem)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Relevance > scored[j].Relevance
	})

	if len(scored) > n {
		scored = scored[:n]
	}
	return scored, nil
}

func (v *KeywordVault) Stats() VaultStats {
	v.mu.RLock()
	defer v.mu.RUnlock()

	stats := VaultStats{TotalMemories: len(v.memories)}
	for _, mem := range v.memories {
		if mem.Important {
			stats.ImportantCount++
		}
	}
	return stats
}

func tokenize(text string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, field := range strings.Fields(strings.ToLower(text)) {
		tok := strings.Trim(field, ".,!?:;\"'()")
		if tok != "" {
			tokens[tok] = struct{}{}
		}
	}
	return tokens
}

// NoopVault satisfies Vault without storing anything, matching the
// original's simple-vault deployment.
type NoopVault struct{}

func (NoopVault) SaveConversation(ctx context.Context, userText, replyText string, mood float64, backend string, important bool) error {
	return nil
}

func (NoopVault) Search(ctx context.Context, query string, n int) ([]VaultMemory, error) {
	return nil, nil
}

func (NoopVault) Stats() VaultStats {
	return VaultStats{}
}
