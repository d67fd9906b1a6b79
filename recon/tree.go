// SPDX-License-Identifier: MIT
// File: tree.go
// Role: Tree construction (breadth-first resolution from the anchor) and
//       plate-id queries.
//
// Determinism:
//   - Resolution order is breadth-first; ties are broken by pole insertion order.
//   - Edges() and PlateIDs() are sorted by moving plate id.
//
// Concurrency:
//   - A built Tree is never mutated; concurrent readers are safe.

package recon

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/rotgraph/rotation"
)

// Tree is a Graph resolved for one anchor plate at one reconstruction time.
type Tree struct {
	rootPlateID        PlateID
	reconstructionTime float64
	features           []FeatureID
	opts               Options

	edges     []*Edge           // arena moved out of the Graph
	byFixed   map[PlateID][]int // the Graph's index, moved with the arena
	byMoving  map[PlateID][]int // tree edges first, then conflicts
	rootmost  []int
	anomalies []Anomaly
}

// treeBuilder holds the mutable state of one breadth-first resolution.
type treeBuilder struct {
	t        *Tree
	resolved map[PlateID]int // plate → parent edge index; anchor → -1
	queue    []int
}

// newTree drains g and resolves it from root.
//
// Steps:
//  1. Every edge whose fixed plate is root becomes a rootmost edge with
//     composed = relative.
//  2. Dequeue an edge P; for each edge C leaving P.moving (except P's own
//     twin) set C.composed = Compose(P.composed, C.relative).
//  3. A plate is expanded only the first time it is reached; later edges
//     reaching it are recorded as anomalies.
func newTree(g *Graph, root PlateID, reconstructionTime float64, features []FeatureID) *Tree {
	edges, byFixed := g.drain()
	t := &Tree{
		rootPlateID:        root,
		reconstructionTime: reconstructionTime,
		features:           append([]FeatureID(nil), features...),
		opts:               g.opts,
		edges:              edges,
		byFixed:            byFixed,
		byMoving:           make(map[PlateID][]int, len(edges)/2),
	}

	b := &treeBuilder{
		t:        t,
		resolved: make(map[PlateID]int, len(edges)/2+1),
		queue:    make([]int, 0, len(edges)/2),
	}
	b.run()

	return t
}

func (b *treeBuilder) run() {
	t := b.t
	b.resolved[t.rootPlateID] = -1

	for _, i := range t.byFixed[t.rootPlateID] {
		b.attach(-1, i, t.edges[i].relative)
	}

	for len(b.queue) > 0 {
		pi := b.queue[0]
		b.queue = b.queue[1:]
		parent := t.edges[pi]
		for _, ci := range t.byFixed[parent.moving] {
			// Walking straight back to the parent plate is not a second path.
			if ci == parent.twin {
				continue
			}
			b.attach(pi, ci, rotation.Compose(parent.composed, t.edges[ci].relative))
		}
	}
}

// attach links edge i below parent (-1 for the anchor) with its composed rotation.
func (b *treeBuilder) attach(parent, i int, composed rotation.FiniteRotation) {
	t := b.t
	e := t.edges[i]
	e.composed = composed

	if first, seen := b.resolved[e.moving]; seen {
		// The anchor is only reachable through a rootmost edge's twin, which
		// run skips, so first is always a real edge here.
		e.state = edgeConflict
		t.byMoving[e.moving] = append(t.byMoving[e.moving], i)
		t.reportAnomaly(Anomaly{Edge: e, First: t.edges[first]})

		return
	}

	e.state = edgeInTree
	b.resolved[e.moving] = i
	t.byMoving[e.moving] = append(t.byMoving[e.moving], i)
	if parent < 0 {
		t.rootmost = append(t.rootmost, i)
	} else {
		t.edges[parent].children = append(t.edges[parent].children, i)
	}
	b.queue = append(b.queue, i)
}

func (t *Tree) reportAnomaly(a Anomaly) {
	t.opts.Logger.WithFields(logrus.Fields{
		"edge":   a.Edge.String(),
		"first":  a.First.String(),
		"anchor": t.rootPlateID,
		"time":   t.reconstructionTime,
	}).Warn("recon: plate reached along more than one path")
	t.anomalies = append(t.anomalies, a)
	if t.opts.OnAnomaly != nil {
		t.opts.OnAnomaly(a)
	}
}

// RootPlateID returns the anchor plate.
func (t *Tree) RootPlateID() PlateID { return t.rootPlateID }

// ReconstructionTime returns the time the tree was built for.
func (t *Tree) ReconstructionTime() float64 { return t.reconstructionTime }

// Features returns a copy of the source feature ids.
func (t *Tree) Features() []FeatureID {
	return append([]FeatureID(nil), t.features...)
}

// Anomalies returns a copy of the anomalies found during resolution.
func (t *Tree) Anomalies() []Anomaly {
	return append([]Anomaly(nil), t.anomalies...)
}

// GetComposedAbsoluteRotation returns the rotation of plate relative to
// the anchor plate.
//
//   - anchor:            (identity, ExactlyOnePlateIDMatchFound)
//   - one parent edge:   (its composed rotation, ExactlyOnePlateIDMatchFound)
//   - unreachable plate: (identity, NoPlateIDMatchesFound)
//   - several edges:     (first edge's rotation, MultiplePlateIDMatchesFound)
//
// Complexity: O(1) average.
func (t *Tree) GetComposedAbsoluteRotation(plate PlateID) (rotation.FiniteRotation, Circumstance) {
	if plate == t.rootPlateID {
		return rotation.Identity(), ExactlyOnePlateIDMatchFound
	}
	idx := t.byMoving[plate]
	switch len(idx) {
	case 0:
		return rotation.Identity(), NoPlateIDMatchesFound
	case 1:
		return t.edges[idx[0]].composed, ExactlyOnePlateIDMatchFound
	default:
		return t.edges[idx[0]].composed, MultiplePlateIDMatchesFound
	}
}

// RelativeRotation returns the rotation of moving relative to fixed, both
// taken through the anchor: Inverse(abs(fixed)) ∘ abs(moving). The
// circumstance is the worse of the two lookups.
func (t *Tree) RelativeRotation(moving, fixed PlateID) (rotation.FiniteRotation, Circumstance) {
	absMoving, cm := t.GetComposedAbsoluteRotation(moving)
	absFixed, cf := t.GetComposedAbsoluteRotation(fixed)

	return rotation.Compose(rotation.Inverse(absFixed), absMoving), worse(cm, cf)
}

// FindEdgesWhoseMovingPlateIDMatch returns the tree edge for plate followed
// by any conflicting edges. The slice is fresh.
func (t *Tree) FindEdgesWhoseMovingPlateIDMatch(plate PlateID) []*Edge {
	return collect(t.edges, t.byMoving[plate])
}

// FindEdgesWhoseFixedPlateIDMatch queries the graph index the tree took
// over, including edges that were never resolved.
func (t *Tree) FindEdgesWhoseFixedPlateIDMatch(plate PlateID) []*Edge {
	return collect(t.edges, t.byFixed[plate])
}

// RootmostEdges returns the tree edges whose fixed plate is the anchor.
func (t *Tree) RootmostEdges() []*Edge {
	return collect(t.edges, t.rootmost)
}

// Children returns the tree edges hanging below e.
func (t *Tree) Children(e *Edge) []*Edge {
	if e == nil {
		return nil
	}

	return collect(t.edges, e.children)
}

// Edges returns every tree edge (one per resolved plate), sorted by moving plate id.
func (t *Tree) Edges() []*Edge {
	out := make([]*Edge, 0, len(t.byMoving))
	for _, idx := range t.byMoving {
		out = append(out, t.edges[idx[0]])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].moving < out[j].moving })

	return out
}

// PlateIDs returns every plate resolved by the tree, excluding the anchor,
// in ascending order.
func (t *Tree) PlateIDs() []PlateID {
	out := make([]PlateID, 0, len(t.byMoving))
	for id := range t.byMoving {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// worse ranks NoPlateIDMatchesFound > MultiplePlateIDMatchesFound > ExactlyOnePlateIDMatchFound.
func worse(a, b Circumstance) Circumstance {
	if a == NoPlateIDMatchesFound || b == NoPlateIDMatchesFound {
		return NoPlateIDMatchesFound
	}
	if a == MultiplePlateIDMatchesFound || b == MultiplePlateIDMatchesFound {
		return MultiplePlateIDMatchesFound
	}

	return ExactlyOnePlateIDMatchFound
}
