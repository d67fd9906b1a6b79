// SPDX-License-Identifier: MIT
// File: types.go
// Role: plate ids, status enums, anomaly records, sentinel errors and options.

package recon

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for graph and tree operations.
var (
	// ErrGraphNil is returned when a nil *Graph is used.
	ErrGraphNil = errors.New("recon: graph is nil")

	// ErrSelfReferentialPole is returned when a pole's fixed and moving
	// plate ids are equal.
	ErrSelfReferentialPole = errors.New("recon: fixed plate id equals moving plate id")

	// ErrGraphConsumed is returned when a graph is used after BuildTree.
	ErrGraphConsumed = errors.New("recon: graph already consumed by BuildTree")

	// ErrInvalidRotation is returned for a pole that is not a valid
	// rotation, such as the zero FiniteRotation.
	ErrInvalidRotation = errors.New("recon: pole is not a valid rotation")
)

// PlateID identifies a rigid plate. Only equality and ordering matter.
type PlateID uint32

// FeatureID identifies a source feature (typically a total reconstruction
// sequence) that contributed poles to a tree.
type FeatureID string

// PoleType tells whether an edge holds the pole as supplied or its reverse.
type PoleType uint8

const (
	// Original edges hold the pole exactly as inserted.
	Original PoleType = iota
	// Reversed edges hold the inverse pole, moving→fixed.
	Reversed
)

// String returns "original" or "reversed".
func (p PoleType) String() string {
	if p == Reversed {
		return "reversed"
	}

	return "original"
}

// Circumstance reports how a plate id lookup in a Tree was resolved.
type Circumstance uint8

const (
	// ExactlyOnePlateIDMatchFound means the plate has a single parent edge.
	ExactlyOnePlateIDMatchFound Circumstance = iota
	// NoPlateIDMatchesFound means the plate is not reachable from the anchor.
	NoPlateIDMatchesFound
	// MultiplePlateIDMatchesFound means malformed data gave the plate more
	// than one parent edge; the first one was used.
	MultiplePlateIDMatchesFound
)

// String returns a short name for c.
func (c Circumstance) String() string {
	switch c {
	case ExactlyOnePlateIDMatchFound:
		return "exactly-one-match"
	case NoPlateIDMatchesFound:
		return "no-match"
	case MultiplePlateIDMatchesFound:
		return "multiple-matches"
	default:
		return fmt.Sprintf("circumstance(%d)", uint8(c))
	}
}

// InsertResult reports the outcome of InsertTotalReconstructionPole.
type InsertResult uint8

const (
	// NotInserted accompanies a non-nil error; the graph is unchanged.
	NotInserted InsertResult = iota
	// Inserted means the pole and its reverse were added.
	Inserted
	// RejectedDuplicate means an edge for the same unordered plate pair
	// already existed; the graph is unchanged.
	RejectedDuplicate
)

// String returns "not-inserted", "inserted" or "rejected-duplicate".
func (r InsertResult) String() string {
	switch r {
	case Inserted:
		return "inserted"
	case RejectedDuplicate:
		return "rejected-duplicate"
	default:
		return "not-inserted"
	}
}

// Duplicate describes a rejected pole insertion.
type Duplicate struct {
	Fixed, Moving      PlateID
	ReconstructionTime float64
	Existing           *Edge // edge already connecting the pair
}

// Anomaly records an edge that reached a plate already resolved along an
// earlier (breadth-first) path.
type Anomaly struct {
	Edge  *Edge // the conflicting edge
	First *Edge // edge already chosen as the plate's parent
}

// Option configures a Graph and the Tree built from it.
type Option func(*Options)

// Options holds diagnostics settings shared by Graph and Tree.
type Options struct {
	// Logger receives warnings for duplicates and anomalies.
	// Defaults to logrus.New().
	Logger *logrus.Logger

	// OnDuplicate, if non-nil, is called for every rejected duplicate pole.
	OnDuplicate func(Duplicate)

	// OnAnomaly, if non-nil, is called for every anomaly found by BuildTree.
	OnAnomaly func(Anomaly)
}

// DefaultOptions returns Options with a fresh logrus logger and no hooks.
func DefaultOptions() Options {
	return Options{Logger: logrus.New()}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *logrus.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnDuplicate installs a hook for rejected duplicate poles.
func WithOnDuplicate(fn func(Duplicate)) Option {
	return func(o *Options) { o.OnDuplicate = fn }
}

// WithOnAnomaly installs a hook for tree-resolution anomalies.
func WithOnAnomaly(fn func(Anomaly)) Option {
	return func(o *Options) { o.OnAnomaly = fn }
}
