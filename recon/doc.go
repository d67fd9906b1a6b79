// SPDX-License-Identifier: MIT
// Package recon stores time-dependent plate-rotation hierarchies and
// resolves them into reconstruction trees.
//
// What:
//
//   - Graph: every total reconstruction pole known at one reconstruction
//     time, stored as a pair of edges (the original pole and its reverse)
//     and indexed by fixed plate id.
//   - Tree: a rooted orientation of a Graph for one anchor plate. Each
//     reachable plate gets exactly one parent edge and a composed absolute
//     rotation relative to the anchor.
//   - Edge: one directed pole; inside a Tree it also carries its composed
//     absolute rotation and its child edges.
//
// Lifecycle:
//
//	g := recon.NewGraph(10.0)
//	g.InsertTotalReconstructionPole(0, 701, pole, false) // many times
//	tree, err := g.BuildTree(0, 10.0, features)           // drains g
//	rot, circ := tree.GetComposedAbsoluteRotation(801)
//
// A Graph is single-use: BuildTree moves its edges into the Tree and marks
// the Graph consumed. A Tree is immutable once built and may be shared
// between goroutines for reading.
//
// Anomalies:
//
//   - Duplicate poles (same unordered plate pair) are rejected with
//     RejectedDuplicate, logged, and passed to the OnDuplicate hook.
//   - A plate reachable from the anchor along two different paths keeps the
//     breadth-first first edge as its parent. The later edge is indexed as a
//     conflict, so GetComposedAbsoluteRotation reports
//     MultiplePlateIDMatchesFound, and it is logged and passed to OnAnomaly.
//   - A plate unreachable from the anchor yields the identity rotation with
//     NoPlateIDMatchesFound.
//
// Complexity:
//
//   - InsertTotalReconstructionPole: O(k) amortized, k = edges leaving the fixed plate.
//   - BuildTree:                     O(E).
//   - GetComposedAbsoluteRotation:   O(1) average.
//
// Errors:
//
//   - ErrGraphNil              nil *Graph receiver.
//   - ErrSelfReferentialPole   fixed plate id equals moving plate id.
//   - ErrInvalidRotation       pole is not a unit quaternion (e.g. zero value).
//   - ErrGraphConsumed         graph already drained by BuildTree.
package recon
