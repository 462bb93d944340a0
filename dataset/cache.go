package dataset

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/apriori/basket"
)

// Cache memoizes parsed CSV files. An entry is reused as long as the
// file's modification time and size are unchanged; a touched file is
// re-parsed on the next access. Safe for concurrent use.
//
// Mining results are never cached here — thresholds change far more
// often than the data, and the core recomputes from scratch by design.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	logger  *logrus.Entry
}

type cacheEntry struct {
	modTime time.Time
	size    int64
	orders  []Order
	txs     []basket.Transaction
}

// NewCache returns an empty cache. A nil logger falls back to a
// component-tagged default.
func NewCache(logger *logrus.Entry) *Cache {
	if logger == nil {
		logger = logrus.WithField("component", "dataset_cache")
	}

	return &Cache{entries: make(map[string]cacheEntry), logger: logger}
}

// Load returns the transactions for path, parsing the file only when it
// changed since the previous call.
func (c *Cache) Load(path string) ([]basket.Transaction, error) {
	entry, err := c.entry(path)
	if err != nil {
		return nil, err
	}

	return entry.txs, nil
}

// Orders returns the raw order records for path under the same
// memoization policy as Load.
func (c *Cache) Orders(path string) ([]Order, error) {
	entry, err := c.entry(path)
	if err != nil {
		return nil, err
	}

	return entry.orders, nil
}

// Invalidate drops the cached entry for path, if any.
func (c *Cache) Invalidate(path string) {
	c.mu.Lock()
	delete(c.entries, path)
	c.mu.Unlock()
}

// entry returns the cached entry for path, re-parsing when the file's
// modification time or size changed.
func (c *Cache) entry(path string) (cacheEntry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return cacheEntry{}, fmt.Errorf("dataset: stat %s: %w", path, err)
	}

	c.mu.Lock()
	cached, ok := c.entries[path]
	c.mu.Unlock()

	if ok && cached.modTime.Equal(info.ModTime()) && cached.size == info.Size() {
		c.logger.WithField("path", path).Debug("dataset cache hit")

		return cached, nil
	}

	orders, err := Read(path)
	if err != nil {
		return cacheEntry{}, err
	}
	fresh := cacheEntry{
		modTime: info.ModTime(),
		size:    info.Size(),
		orders:  orders,
		txs:     Transactions(orders),
	}
	c.logger.WithFields(logrus.Fields{
		"path":         path,
		"orders":       len(orders),
		"transactions": len(fresh.txs),
	}).Info("dataset parsed")

	c.mu.Lock()
	c.entries[path] = fresh
	c.mu.Unlock()

	return fresh, nil
}
