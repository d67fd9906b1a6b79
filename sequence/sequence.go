// SPDX-License-Identifier: MIT
// File: sequence.go
// Role: Sequence construction and time interpolation.

package sequence

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/rotgraph/recon"
	"github.com/katalvlaran/rotgraph/rotation"
)

// New builds a sequence for feature from samples, sorted by time.
// samples must be non-empty with finite, distinct times and valid rotations.
func New(feature recon.FeatureID, fixed, moving recon.PlateID, samples ...TimeSample) (*Sequence, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: feature %q", ErrNoSamples, feature)
	}
	sorted := append([]TimeSample(nil), samples...)
	for _, s := range sorted {
		if math.IsNaN(s.Time) || math.IsInf(s.Time, 0) {
			return nil, fmt.Errorf("%w: feature %q", ErrBadTime, feature)
		}
		if !s.Rotation.IsValid() {
			return nil, fmt.Errorf("%w: feature %q at %g Ma", ErrBadRotation, feature, s.Time)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Time < sorted[j].Time })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Time-sorted[i-1].Time <= TimeEpsilon {
			return nil, fmt.Errorf("%w: feature %q at %g Ma", ErrDuplicateTime, feature, sorted[i].Time)
		}
	}

	enabled := make([]TimeSample, 0, len(sorted))
	for _, s := range sorted {
		if !s.Disabled {
			enabled = append(enabled, s)
		}
	}

	return &Sequence{
		feature: feature,
		fixed:   fixed,
		moving:  moving,
		samples: sorted,
		enabled: enabled,
	}, nil
}

// Feature returns the source feature id.
func (s *Sequence) Feature() recon.FeatureID { return s.feature }

// FixedPlate returns the reference plate.
func (s *Sequence) FixedPlate() recon.PlateID { return s.fixed }

// MovingPlate returns the plate whose motion is described.
func (s *Sequence) MovingPlate() recon.PlateID { return s.moving }

// Samples returns a copy of all samples, including disabled ones, by ascending time.
func (s *Sequence) Samples() []TimeSample {
	return append([]TimeSample(nil), s.samples...)
}

// TimeRange returns the span covered by enabled samples. ok is false when
// every sample is disabled.
func (s *Sequence) TimeRange() (begin, end float64, ok bool) {
	if len(s.enabled) == 0 {
		return 0, 0, false
	}

	return s.enabled[0].Time, s.enabled[len(s.enabled)-1].Time, true
}

// Interpolate returns the rotation at time t and whether it was interpolated.
//
// Steps:
//  1. Binary-search the first enabled sample at or after t.
//  2. Exact hit → that sample.
//  3. Between two samples → Slerp with fraction (t-lo)/(hi-lo).
//  4. Otherwise → ErrTimeOutOfRange.
//
// Complexity: O(log n).
func (s *Sequence) Interpolate(t float64) (rotation.FiniteRotation, bool, error) {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return rotation.FiniteRotation{}, false, ErrBadTime
	}
	en := s.enabled
	i := sort.Search(len(en), func(k int) bool { return en[k].Time >= t-TimeEpsilon })

	if i < len(en) && math.Abs(en[i].Time-t) <= TimeEpsilon {
		return en[i].Rotation, false, nil
	}
	if i == 0 || i == len(en) {
		return rotation.FiniteRotation{}, false, fmt.Errorf("%w: feature %q at %g Ma", ErrTimeOutOfRange, s.feature, t)
	}

	lo, hi := en[i-1], en[i]
	frac := (t - lo.Time) / (hi.Time - lo.Time)

	return rotation.Slerp(lo.Rotation, hi.Rotation, frac), true, nil
}
