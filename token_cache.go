package argsert

import (
	"slices"
	"sync"
)

// TokenCache memoises the expansion of assertion maps. Assertion maps
// are usually string literals at call sites, so the same handful of
// keys is seen over and over.
//
// It is safe for concurrent use.
type TokenCache struct {
	cache sync.Map // map[string][]string
}

// NewTokenCache creates an empty cache.
func NewTokenCache() *TokenCache {
	return &TokenCache{}
}

// GetOrCreate returns the expansion of mapStr, calling factory on a
// miss. Callers receive a copy and may modify it freely.
func (tc *TokenCache) GetOrCreate(mapStr string, factory func(string) []string) []string {
	if v, ok := tc.cache.Load(mapStr); ok {
		return slices.Clone(v.([]string))
	}

	tokens := factory(mapStr)

	actual, _ := tc.cache.LoadOrStore(mapStr, slices.Clone(tokens))
	return slices.Clone(actual.([]string))
}

// Get retrieves the cached expansion of mapStr if present.
func (tc *TokenCache) Get(mapStr string) ([]string, bool) {
	if v, ok := tc.cache.Load(mapStr); ok {
		return slices.Clone(v.([]string)), true
	}
	return nil, false
}

// Clear removes all entries.
func (tc *TokenCache) Clear() {
	tc.cache.Clear()
}
