// SPDX-License-Identifier: MIT
// Package rotgraph reconstructs tectonic plate motions from total
// reconstruction poles.
//
// The module is organised as:
//
//	rotation/  finite rotations (unit quaternions): compose, invert, slerp
//	recon/     reconstruction graph of poles and the tree built from it
//	sequence/  time-sampled pole sequences and graph population
//	treecache/ LRU cache of trees keyed by (time, anchor)
//	config/    YAML configuration and logger setup
//	dataset/   YAML rotation dataset loader
//	cmd/       rotgraph CLI
//
// A typical flow loads sequences, builds a tree for an anchor plate at a
// reconstruction time, then queries composed rotations:
//
//	seqs, _ := dataset.Load("rotations.yaml")
//	tree, _, _ := sequence.BuildTree(seqs, 52, 0)
//	rot, circ := tree.GetComposedAbsoluteRotation(801)
package rotgraph
