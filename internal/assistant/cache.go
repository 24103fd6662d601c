package assistant

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// AnswerCache holds an LRU cache of assistant answers keyed by normalized
// prompt. Rules questions tend to repeat, and a cache hit avoids a paid
// completion call.
type AnswerCache struct {
	*lru.Cache[string, string]
}

// NewAnswerCache creates a new AnswerCache with the given size.
func NewAnswerCache(size int) (*AnswerCache, error) {
	lruCache, err := lru.New[string, string](size)
	if err != nil {
		return nil, err
	}

	return &AnswerCache{
		Cache: lruCache,
	}, nil
}

// normalizeKey folds case and surrounding whitespace so trivially restated
// questions hit the same entry.
func normalizeKey(prompt string) string {
	return strings.ToLower(strings.TrimSpace(prompt))
}

// Lookup returns the cached answer for a prompt.
func (ac *AnswerCache) Lookup(prompt string) (string, bool) {
	return ac.Cache.Get(normalizeKey(prompt))
}

// Store caches an answer under the normalized prompt.
func (ac *AnswerCache) Store(prompt, answer string) {
	ac.Cache.Add(normalizeKey(prompt), answer)
}
