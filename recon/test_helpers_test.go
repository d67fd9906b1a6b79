// SPDX-License-Identifier: MIT
// Package recon_test contains shared fixtures for recon tests.

package recon_test

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rotgraph/recon"
	"github.com/katalvlaran/rotgraph/rotation"
)

// Common plate ids used across recon tests.
const (
	PlateAnchor recon.PlateID = 0
	PlateA      recon.PlateID = 1
	PlateB      recon.PlateID = 2
	PlateC      recon.PlateID = 3
	PlateLost   recon.PlateID = 99
)

// Tol is the quaternion component tolerance.
const Tol = 1e-9

// ReconTime is the reconstruction time used by fixtures (Ma).
const ReconTime = 10.0

// quietLogger discards log output so anomaly tests stay readable.
func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

// newGraph returns an empty graph at ReconTime with a silent logger.
func newGraph(opts ...recon.Option) *recon.Graph {
	return recon.NewGraph(ReconTime, append([]recon.Option{recon.WithLogger(quietLogger())}, opts...)...)
}

// pole builds a rotation from (lat, lon, angle) in degrees.
func pole(t *testing.T, lat, lon, angle float64) rotation.FiniteRotation {
	t.Helper()
	r, err := rotation.FromPole(lat, lon, angle)
	require.NoError(t, err)

	return r
}

// mustInsert inserts a pole and requires it to be accepted.
func mustInsert(t *testing.T, g *recon.Graph, fixed, moving recon.PlateID, r rotation.FiniteRotation) {
	t.Helper()
	res, err := g.InsertTotalReconstructionPole(fixed, moving, r, false)
	require.NoError(t, err)
	require.Equal(t, recon.Inserted, res)
}
