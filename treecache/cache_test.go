// SPDX-License-Identifier: MIT
package treecache_test

import (
	"errors"
	"io"
	"math"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rotgraph/recon"
	"github.com/katalvlaran/rotgraph/rotation"
	"github.com/katalvlaran/rotgraph/sequence"
	"github.com/katalvlaran/rotgraph/treecache"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

// countingCreate builds empty trees and counts calls.
type countingCreate struct {
	mu    sync.Mutex
	calls int
}

func (c *countingCreate) create(t float64, anchor recon.PlateID) (*recon.Tree, error) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()

	return recon.NewGraph(t, recon.WithLogger(quietLogger())).BuildTree(anchor, t, nil)
}

func TestNew_Errors(t *testing.T) {
	cc := &countingCreate{}
	_, err := treecache.New(0, cc.create)
	assert.ErrorIs(t, err, treecache.ErrBadCapacity)
	_, err = treecache.New(1, nil)
	assert.ErrorIs(t, err, treecache.ErrNilCreate)
}

func TestGet_HitSharesTree(t *testing.T) {
	cc := &countingCreate{}
	c, err := treecache.New(2, cc.create, treecache.WithLogger(quietLogger()))
	require.NoError(t, err)

	a, err := c.Get(10, 0)
	require.NoError(t, err)
	b, err := c.Get(10, 0)
	require.NoError(t, err)
	assert.Same(t, a, b)
	assert.Equal(t, 1, cc.calls)

	hits, misses := c.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)

	// Same time, different anchor is a different tree.
	other, err := c.Get(10, 701)
	require.NoError(t, err)
	assert.NotSame(t, a, other)
	assert.Equal(t, recon.PlateID(701), other.RootPlateID())
}

func TestGet_EvictsLeastRecentlyUsed(t *testing.T) {
	cc := &countingCreate{}
	c, err := treecache.New(2, cc.create, treecache.WithLogger(quietLogger()))
	require.NoError(t, err)

	_, _ = c.Get(0, 0)
	_, _ = c.Get(10, 0)
	_, _ = c.Get(0, 0) // 0 Ma becomes most recent
	_, _ = c.Get(20, 0)

	assert.Equal(t, 2, c.Len())
	assert.True(t, c.Contains(0, 0))
	assert.False(t, c.Contains(10, 0))
	assert.True(t, c.Contains(20, 0))

	c.Purge()
	assert.Equal(t, 0, c.Len())
}

func TestGet_EvictionIsLogged(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	cc := &countingCreate{}
	c, err := treecache.New(1, cc.create, treecache.WithLogger(logger))
	require.NoError(t, err)

	_, _ = c.Get(0, 0)
	_, _ = c.Get(10, 701)
	require.Len(t, hook.AllEntries(), 1)
	evicted := hook.LastEntry()
	assert.Equal(t, logrus.DebugLevel, evicted.Level)
	assert.Equal(t, 0.0, evicted.Data["time"])
	assert.Equal(t, recon.PlateID(0), evicted.Data["anchor"])

	// A hit does not evict.
	_, _ = c.Get(10, 701)
	assert.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, 2, cc.calls)
}

func TestGet_ErrorsNotCached(t *testing.T) {
	boom := errors.New("boom")
	c, err := treecache.New(1, func(float64, recon.PlateID) (*recon.Tree, error) { return nil, boom })
	require.NoError(t, err)

	_, err = c.Get(5, 0)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, c.Len())

	_, err = c.Get(0, 0)
	assert.ErrorIs(t, err, boom)
}

func TestGet_BadTime(t *testing.T) {
	cc := &countingCreate{}
	c, err := treecache.New(1, cc.create)
	require.NoError(t, err)
	_, err = c.Get(math.NaN(), 0)
	assert.ErrorIs(t, err, treecache.ErrBadTime)
	assert.Equal(t, 0, cc.calls)
}

func TestFromSequences(t *testing.T) {
	r, err := rotation.FromPole(90, 0, 10)
	require.NoError(t, err)
	s, err := sequence.New("trs", 0, 1,
		sequence.TimeSample{Time: 0, Rotation: rotation.Identity()},
		sequence.TimeSample{Time: 10, Rotation: r},
	)
	require.NoError(t, err)

	c, err := treecache.New(treecache.DefaultCapacity,
		treecache.FromSequences([]*sequence.Sequence{s}, sequence.WithLogger(quietLogger())))
	require.NoError(t, err)

	tree, err := c.Get(10, 0)
	require.NoError(t, err)
	got, circ := tree.GetComposedAbsoluteRotation(1)
	assert.Equal(t, recon.ExactlyOnePlateIDMatchFound, circ)
	assert.True(t, rotation.ApproxEqual(r, got, 1e-9))
}

func TestGet_Concurrent(t *testing.T) {
	cc := &countingCreate{}
	c, err := treecache.New(4, cc.create, treecache.WithLogger(quietLogger()))
	require.NoError(t, err)

	var wg sync.WaitGroup
	trees := make([]*recon.Tree, 32)
	for i := range trees {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			trees[i], _ = c.Get(1, 0)
		}(i)
	}
	wg.Wait()

	for _, tr := range trees {
		assert.Same(t, trees[0], tr)
	}
	assert.Equal(t, 1, cc.calls)
}
