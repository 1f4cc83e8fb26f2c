package geocode

import "go.uber.org/zap"

// Cache memoizes geocode outcomes for one pipeline run, keyed by the
// normalized address text. Failed outcomes are cached too: a failure is
// final for that address within the run. The pipeline owns the cache and
// hands it to the client per call; the run is strictly sequential, so no
// locking is needed.
type Cache struct {
	entries map[string]Outcome
	hits    int
}

// NewCache creates an empty per-run cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]Outcome)}
}

// Get returns the cached outcome for an address, if any.
func (c *Cache) Get(address string) (Outcome, bool) {
	out, ok := c.entries[address]
	if ok {
		c.hits++
		zap.L().Debug("geocode cache hit",
			zap.String("address", address),
			zap.Bool("resolved", out.Resolved),
		)
	}
	return out, ok
}

// Put stores the outcome for an address, overwriting any previous entry.
func (c *Cache) Put(address string, out Outcome) {
	c.entries[address] = out
}

// Len returns the number of distinct addresses cached.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Hits returns the number of cache hits served so far.
func (c *Cache) Hits() int {
	return c.hits
}
