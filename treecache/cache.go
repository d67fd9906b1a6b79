// SPDX-License-Identifier: MIT
// File: cache.go
// Role: LRU cache of recon.Tree values.

package treecache

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/hashicorp/golang-lru/v2/simplelru"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/rotgraph/recon"
	"github.com/katalvlaran/rotgraph/sequence"
)

// DefaultCapacity is the number of trees kept when none is configured.
const DefaultCapacity = 8

// Sentinel errors for the tree cache.
var (
	// ErrBadCapacity is returned by New for a capacity below 1.
	ErrBadCapacity = errors.New("treecache: capacity must be > 0")

	// ErrNilCreate is returned by New when no CreateFunc is supplied.
	ErrNilCreate = errors.New("treecache: create func is nil")

	// ErrBadTime is returned by Get for a NaN or infinite time.
	ErrBadTime = errors.New("treecache: time is NaN or Inf")
)

// Key identifies a cached tree.
type Key struct {
	Time   float64
	Anchor recon.PlateID
}

// CreateFunc builds the tree for one key.
type CreateFunc func(reconstructionTime float64, anchor recon.PlateID) (*recon.Tree, error)

// Option configures a Cache.
type Option func(*Cache)

// WithLogger sets the logger used for eviction messages. A nil logger is ignored.
func WithLogger(l *logrus.Logger) Option {
	return func(c *Cache) {
		if l != nil {
			c.logger = l
		}
	}
}

// Cache is a fixed-capacity LRU cache of reconstruction trees.
//
// The LRU itself is not goroutine-safe; mu also makes Get build each
// missing tree once.
type Cache struct {
	mu     sync.Mutex
	create CreateFunc
	logger *logrus.Logger
	lru    *simplelru.LRU[Key, *recon.Tree]

	hits, misses uint64
}

// New returns an empty cache holding at most capacity trees.
func New(capacity int, create CreateFunc, opts ...Option) (*Cache, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w (%d)", ErrBadCapacity, capacity)
	}
	if create == nil {
		return nil, ErrNilCreate
	}
	c := &Cache{
		create: create,
		logger: logrus.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	lru, err := simplelru.NewLRU[Key, *recon.Tree](capacity, c.onEvict)
	if err != nil {
		return nil, fmt.Errorf("treecache: %w", err)
	}
	c.lru = lru

	return c, nil
}

// Get returns the tree for (reconstructionTime, anchor), building it on a
// miss. A failed build is not cached.
func (c *Cache) Get(reconstructionTime float64, anchor recon.PlateID) (*recon.Tree, error) {
	if math.IsNaN(reconstructionTime) || math.IsInf(reconstructionTime, 0) {
		return nil, ErrBadTime
	}
	key := Key{Time: reconstructionTime, Anchor: anchor}

	c.mu.Lock()
	defer c.mu.Unlock()

	if tree, ok := c.lru.Get(key); ok {
		c.hits++

		return tree, nil
	}

	c.misses++
	tree, err := c.create(reconstructionTime, anchor)
	if err != nil {
		return nil, fmt.Errorf("treecache: build tree at %g Ma, anchor %d: %w", reconstructionTime, anchor, err)
	}
	c.lru.Add(key, tree)

	return tree, nil
}

// onEvict runs under mu, from Add or Purge.
func (c *Cache) onEvict(key Key, _ *recon.Tree) {
	c.logger.WithFields(logrus.Fields{
		"time":   key.Time,
		"anchor": key.Anchor,
	}).Debug("treecache: evicted reconstruction tree")
}

// Contains reports whether key is cached, without touching recency.
func (c *Cache) Contains(reconstructionTime float64, anchor recon.PlateID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lru.Contains(Key{Time: reconstructionTime, Anchor: anchor})
}

// Len returns the number of cached trees.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lru.Len()
}

// Stats returns the hit and miss counts since creation.
func (c *Cache) Stats() (hits, misses uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.hits, c.misses
}

// Purge drops every cached tree.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Purge()
}

// FromSequences returns a CreateFunc that builds trees from seqs with
// sequence.BuildTree.
func FromSequences(seqs []*sequence.Sequence, opts ...sequence.Option) CreateFunc {
	return func(reconstructionTime float64, anchor recon.PlateID) (*recon.Tree, error) {
		tree, _, err := sequence.BuildTree(seqs, reconstructionTime, anchor, opts...)

		return tree, err
	}
}
