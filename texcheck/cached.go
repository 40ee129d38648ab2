package texcheck

import (
	"context"
	"sync"
)

// CachedChecker implements Checker by memoizing classifications of an
// external checker binary, keyed by the verbatim formula source.
//
// One mutex guards the cache for the whole lookup-or-populate sequence,
// including the external invocation. A miss therefore blocks concurrent
// callers until the checker returns; in exchange each distinct formula is
// checked at most once. The checker path is guarded by the same mutex, so
// replacing it is immediately visible to in-flight callers queued on the
// lock. Replacing the path does not invalidate cached results: entries
// are keyed by formula text only.
type CachedChecker struct {
	runner Runner

	mu      sync.Mutex
	path    string
	maxSize int
	cache   map[string]Result
}

// New creates a CachedChecker that launches the checker binary at path.
// maxSize is a capacity hint, not a hard cap: the cache may transiently
// hold one entry more before an eviction pass trims it. No I/O happens
// until the first Check.
func New(path string, maxSize int) *CachedChecker {
	return NewWithRunner(path, maxSize, NewExecRunner(nil))
}

// NewWithRunner creates a CachedChecker with a custom process runner.
func NewWithRunner(path string, maxSize int, runner Runner) *CachedChecker {
	return &CachedChecker{
		runner:  runner,
		path:    path,
		maxSize: maxSize,
		cache:   make(map[string]Result, maxSize),
	}
}

// SetPath replaces the checker binary path. Cached results are kept.
func (c *CachedChecker) SetPath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.path = path
}

// Path returns the current checker binary path.
func (c *CachedChecker) Path() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.path
}

// Len returns the number of cached classifications.
func (c *CachedChecker) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cache)
}

// Check classifies source, invoking the external checker on a cache miss.
// Every classification, including UnknownError, is cached and returned
// without re-invocation on later identical queries. An error is returned
// only when the checker cannot be launched or emits corrupt output;
// nothing is cached in that case.
func (c *CachedChecker) Check(ctx context.Context, source string) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if result, ok := c.cache[source]; ok {
		return result, nil
	}

	output, err := c.runner.Run(ctx, c.path, source)
	if err != nil {
		return Result{}, err
	}
	result, err := classify(output)
	if err != nil {
		return Result{}, err
	}

	c.cache[source] = result
	if len(c.cache) > c.maxSize {
		c.evict()
	}
	return result, nil
}

// evict drops every tenth entry in map enumeration order. Crude, but a
// single O(n) pass with no recency bookkeeping; the size bound is soft.
func (c *CachedChecker) evict() {
	i := 0
	for key := range c.cache {
		if i%10 == 0 {
			delete(c.cache, key)
		}
		i++
	}
}
