package llm

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/micetf/classifieur-numerique/internal/model"
)

// resultCache keeps recent model answers so reclassifying the same document
// against the same hierarchy does not call the provider again.
type resultCache struct {
	entries *expirable.LRU[string, []model.Match]
}

// newResultCache creates a cache holding size entries for ttl.
func newResultCache(size int, ttl time.Duration) *resultCache {
	if size <= 0 {
		size = 128
	}
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	return &resultCache{
		entries: expirable.NewLRU[string, []model.Match](size, nil, ttl),
	}
}

// get returns a copy of the cached matches for key.
func (c *resultCache) get(key string) ([]model.Match, bool) {
	matches, ok := c.entries.Get(key)
	if !ok {
		return nil, false
	}
	return append([]model.Match(nil), matches...), true
}

func (c *resultCache) set(key string, matches []model.Match) {
	c.entries.Add(key, append([]model.Match(nil), matches...))
}

// cacheKey identifies a request by model, content and candidate paths.
func cacheKey(modelID, content string, paths []string) string {
	h := sha256.New()
	h.Write([]byte(modelID))
	h.Write([]byte{0})
	h.Write([]byte(content))
	h.Write([]byte{0})
	h.Write([]byte(strings.Join(paths, "\n")))
	return hex.EncodeToString(h.Sum(nil))
}
