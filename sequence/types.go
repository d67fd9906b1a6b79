// SPDX-License-Identifier: MIT
// File: types.go
// Role: Sequence and TimeSample types, sentinel errors, options.

package sequence

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/rotgraph/recon"
	"github.com/katalvlaran/rotgraph/rotation"
)

// TimeEpsilon is the tolerance, in Ma, for matching a time to a sample.
const TimeEpsilon = 1e-9

// Sentinel errors for sequence construction and interpolation.
var (
	// ErrNoSamples indicates a sequence built without any time samples.
	ErrNoSamples = errors.New("sequence: no time samples")

	// ErrBadTime indicates a NaN or infinite time.
	ErrBadTime = errors.New("sequence: time is NaN or Inf")

	// ErrDuplicateTime indicates two samples at the same time.
	ErrDuplicateTime = errors.New("sequence: duplicate sample time")

	// ErrBadRotation indicates a sample whose rotation is not valid, such as
	// the zero FiniteRotation.
	ErrBadRotation = errors.New("sequence: sample rotation is not valid")

	// ErrTimeOutOfRange indicates the sequence is not defined at the requested time.
	ErrTimeOutOfRange = errors.New("sequence: time outside sampled range")
)

// TimeSample is one finite rotation at one time.
type TimeSample struct {
	Time     float64
	Rotation rotation.FiniteRotation
	Disabled bool
}

// Sequence is the motion of Moving relative to Fixed through time.
type Sequence struct {
	feature recon.FeatureID
	fixed   recon.PlateID
	moving  recon.PlateID
	samples []TimeSample // ascending by Time
	enabled []TimeSample // samples without Disabled, ascending
}

// Option configures Populate and BuildTree.
type Option func(*Options)

// Options holds Populate and BuildTree settings.
type Options struct {
	// Logger receives populate summaries and skipped-pole warnings.
	Logger *logrus.Logger

	// GraphOptions are passed to recon.NewGraph by BuildTree.
	GraphOptions []recon.Option
}

// DefaultOptions returns Options with a fresh logrus logger.
func DefaultOptions() Options {
	return Options{Logger: logrus.New()}
}

// WithLogger sets the logger; BuildTree also hands it to the graph.
// A nil logger is ignored.
func WithLogger(l *logrus.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithGraphOptions appends options for the graph built by BuildTree.
func WithGraphOptions(opts ...recon.Option) Option {
	return func(o *Options) { o.GraphOptions = append(o.GraphOptions, opts...) }
}

// Stats summarizes one Populate call.
type Stats struct {
	Inserted        int               // poles accepted by the graph
	Duplicates      int               // poles rejected as duplicates
	Undefined       int               // sequences not defined at the graph's time
	SelfReferential int               // sequences with fixed == moving
	Features        []recon.FeatureID // features whose pole was inserted
}
