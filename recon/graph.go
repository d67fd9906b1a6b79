// SPDX-License-Identifier: MIT
// File: graph.go
// Role: Graph, the pole store for one reconstruction time.
//
// Storage:
//   - edges:   flat arena; original and reversed edges are appended in pairs.
//   - byFixed: fixed plate id → arena indices, in insertion order.
//
// Concurrency:
//   - Not safe for concurrent use. Populate and build from one goroutine.

package recon

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/rotgraph/rotation"
)

// Graph accumulates total reconstruction poles for one reconstruction time.
type Graph struct {
	reconstructionTime float64
	opts               Options

	edges    []*Edge
	byFixed  map[PlateID][]int
	consumed bool
}

// NewGraph returns an empty graph for reconstructionTime (Ma).
func NewGraph(reconstructionTime float64, opts ...Option) *Graph {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Graph{
		reconstructionTime: reconstructionTime,
		opts:               o,
		byFixed:            make(map[PlateID][]int),
	}
}

// ReconstructionTime returns the time the graph was created for.
func (g *Graph) ReconstructionTime() float64 { return g.reconstructionTime }

// Consumed reports whether BuildTree has drained the graph.
func (g *Graph) Consumed() bool { return g.consumed }

// EdgeCount returns the number of stored edges (two per accepted pole).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// InsertTotalReconstructionPole stores pole as the rotation of moving
// relative to fixed, together with its reverse. The result is NotInserted
// whenever err is non-nil.
//
// Steps:
//  1. Reject fixed == moving (ErrSelfReferentialPole) and invalid poles
//     (ErrInvalidRotation).
//  2. Reject a pair already stored in either orientation (RejectedDuplicate).
//  3. Append the original and reversed edges and index both.
//
// The graph is only modified after every check has passed.
//
// Complexity: O(k) amortized, k = edges whose fixed plate is fixed.
func (g *Graph) InsertTotalReconstructionPole(
	fixed, moving PlateID,
	pole rotation.FiniteRotation,
	interpolated bool,
) (InsertResult, error) {
	if g == nil {
		return NotInserted, ErrGraphNil
	}
	if g.consumed {
		return NotInserted, ErrGraphConsumed
	}
	if fixed == moving {
		return NotInserted, fmt.Errorf("%w: plate %d", ErrSelfReferentialPole, fixed)
	}
	if !pole.IsValid() {
		return NotInserted, fmt.Errorf("%w: %d->%d", ErrInvalidRotation, fixed, moving)
	}

	if existing := g.findPair(fixed, moving); existing != nil {
		g.reportDuplicate(Duplicate{
			Fixed:              fixed,
			Moving:             moving,
			ReconstructionTime: g.reconstructionTime,
			Existing:           existing,
		})

		return RejectedDuplicate, nil
	}

	// The flag travels with the rotation so composition ORs it along paths.
	interpolated = interpolated || pole.Interpolated()
	pole = pole.WithInterpolated(interpolated)

	oi := len(g.edges)
	ri := oi + 1
	original := &Edge{
		fixed:        fixed,
		moving:       moving,
		relative:     pole,
		poleType:     Original,
		interpolated: interpolated,
		index:        oi,
		twin:         ri,
	}
	reversed := &Edge{
		fixed:        moving,
		moving:       fixed,
		relative:     rotation.Inverse(pole),
		poleType:     Reversed,
		interpolated: interpolated,
		index:        ri,
		twin:         oi,
	}
	g.edges = append(g.edges, original, reversed)
	g.byFixed[fixed] = append(g.byFixed[fixed], oi)
	g.byFixed[moving] = append(g.byFixed[moving], ri)

	return Inserted, nil
}

// FindEdgesWhoseFixedPlateIDMatch returns every edge, original or reversed,
// whose fixed plate is plate. The slice is fresh; the edges are read-only.
func (g *Graph) FindEdgesWhoseFixedPlateIDMatch(plate PlateID) []*Edge {
	if g == nil {
		return nil
	}

	return collect(g.edges, g.byFixed[plate])
}

// BuildTree resolves the graph into a tree rooted at root and drains the
// graph: afterwards it holds no edges and rejects further use with
// ErrGraphConsumed.
func (g *Graph) BuildTree(root PlateID, reconstructionTime float64, features []FeatureID) (*Tree, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.consumed {
		return nil, ErrGraphConsumed
	}

	return newTree(g, root, reconstructionTime, features), nil
}

// drain hands the arena and index to the caller and resets g.
func (g *Graph) drain() ([]*Edge, map[PlateID][]int) {
	edges, byFixed := g.edges, g.byFixed
	g.edges = nil
	g.byFixed = make(map[PlateID][]int)
	g.consumed = true

	return edges, byFixed
}

// findPair returns an edge already connecting fixed and moving in either
// orientation, or nil. Every pole is stored with its reverse, so scanning
// the fixed plate's edges covers both orientations.
func (g *Graph) findPair(fixed, moving PlateID) *Edge {
	for _, i := range g.byFixed[fixed] {
		if g.edges[i].moving == moving {
			return g.edges[i]
		}
	}

	return nil
}

func (g *Graph) reportDuplicate(d Duplicate) {
	g.opts.Logger.WithFields(logrus.Fields{
		"fixed":    d.Fixed,
		"moving":   d.Moving,
		"time":     d.ReconstructionTime,
		"existing": d.Existing.String(),
	}).Warn("recon: duplicate total reconstruction pole rejected")
	if g.opts.OnDuplicate != nil {
		g.opts.OnDuplicate(d)
	}
}

// collect maps arena indices to edges.
func collect(edges []*Edge, idx []int) []*Edge {
	if len(idx) == 0 {
		return nil
	}
	out := make([]*Edge, len(idx))
	for k, i := range idx {
		out[k] = edges[i]
	}

	return out
}
