// SPDX-License-Identifier: MIT
// File: edge.go
// Role: Edge, one directed total reconstruction pole.

package recon

import (
	"fmt"

	"github.com/katalvlaran/rotgraph/rotation"
)

// edgeState tracks an edge's role after tree resolution.
type edgeState uint8

const (
	edgeUnresolved edgeState = iota // not reached from the anchor
	edgeInTree                      // parent edge of its moving plate
	edgeConflict                    // reached an already resolved plate
)

// Edge is one directed pole: the rotation of Moving relative to Fixed.
//
// Edges are created in pairs by Graph.InsertTotalReconstructionPole and
// owned by the Graph's arena until BuildTree moves them into a Tree. Callers
// only ever read them.
type Edge struct {
	fixed        PlateID
	moving       PlateID
	relative     rotation.FiniteRotation
	poleType     PoleType
	interpolated bool

	index int // position in the owning arena
	twin  int // arena index of the reverse edge

	// Set once by BuildTree.
	composed rotation.FiniteRotation
	state    edgeState
	children []int
}

// FixedPlate returns the plate the rotation is relative to.
func (e *Edge) FixedPlate() PlateID { return e.fixed }

// MovingPlate returns the plate being rotated.
func (e *Edge) MovingPlate() PlateID { return e.moving }

// RelativeRotation returns the pole of Moving relative to Fixed.
func (e *Edge) RelativeRotation() rotation.FiniteRotation { return e.relative }

// PoleType reports whether this edge is the original pole or its reverse.
func (e *Edge) PoleType() PoleType { return e.poleType }

// Interpolated reports whether the pole was interpolated between time samples.
func (e *Edge) Interpolated() bool { return e.interpolated }

// ComposedAbsoluteRotation returns the rotation of Moving relative to the
// tree's anchor plate. It is the identity for edges not resolved by a tree.
func (e *Edge) ComposedAbsoluteRotation() rotation.FiniteRotation {
	if e.state == edgeUnresolved {
		return rotation.Identity()
	}

	return e.composed
}

// InTree reports whether the edge was chosen as its moving plate's parent.
func (e *Edge) InTree() bool { return e.state == edgeInTree }

// String renders the edge as "fixed->moving [type] pole".
func (e *Edge) String() string {
	return fmt.Sprintf("%d->%d [%s] %s", e.fixed, e.moving, e.poleType, e.relative)
}
