// SPDX-License-Identifier: MIT
package rotation_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rotgraph/rotation"
)

const tol = 1e-9

// northPole builds a rotation about the north pole by deg degrees.
func northPole(t *testing.T, deg float64) rotation.FiniteRotation {
	t.Helper()
	r, err := rotation.FromPole(90, 0, deg)
	require.NoError(t, err)

	return r
}

func TestIdentity_AxisIndeterminate(t *testing.T) {
	id := rotation.Identity()
	_, _, ok := id.AxisAngle()
	assert.False(t, ok)
	assert.True(t, id.IsIdentity(tol))
	assert.Equal(t, "identity", id.String())
	assert.False(t, id.Interpolated())
}

func TestFromAxisAngle_Errors(t *testing.T) {
	_, err := rotation.FromAxisAngle(rotation.Vector{}, 1)
	assert.ErrorIs(t, err, rotation.ErrZeroVector)

	_, err = rotation.FromAxisAngle(rotation.NorthPole, math.NaN())
	assert.ErrorIs(t, err, rotation.ErrBadAngle)

	_, err = rotation.FromPole(91, 0, 10)
	assert.ErrorIs(t, err, rotation.ErrBadLatitude)
}

func TestCompose_InverseIsIdentity(t *testing.T) {
	r, err := rotation.FromPole(35.2, -120.5, 47.3)
	require.NoError(t, err)

	assert.True(t, rotation.ApproxEqual(rotation.Compose(r, rotation.Inverse(r)), rotation.Identity(), tol))
	assert.True(t, rotation.ApproxEqual(rotation.Compose(rotation.Inverse(r), r), rotation.Identity(), tol))
}

func TestCompose_SameAxisIsAdditive(t *testing.T) {
	got := rotation.Compose(northPole(t, 10), northPole(t, 5))
	assert.True(t, rotation.ApproxEqual(got, northPole(t, 15), tol), "got %v", got)

	lat, _, angle, ok := got.Pole()
	require.True(t, ok)
	assert.InDelta(t, 90, lat, 1e-9)
	assert.InDelta(t, 15, angle, 1e-9)
}

func TestCompose_OrderMatters(t *testing.T) {
	a, err := rotation.FromPole(0, 0, 90)
	require.NoError(t, err)
	b, err := rotation.FromPole(0, 90, 90)
	require.NoError(t, err)

	ab := rotation.Compose(a, b)
	ba := rotation.Compose(b, a)
	assert.False(t, rotation.ApproxEqual(ab, ba, 1e-6))

	// "apply b, then a"
	p := rotation.Vector{X: 0, Y: 0, Z: 1}
	want := a.Rotate(b.Rotate(p))
	got := ab.Rotate(p)
	assert.InDelta(t, want.X, got.X, tol)
	assert.InDelta(t, want.Y, got.Y, tol)
	assert.InDelta(t, want.Z, got.Z, tol)
}

func TestRotate_QuarterTurnAboutNorthPole(t *testing.T) {
	got := northPole(t, 90).Rotate(rotation.Vector{X: 1})
	assert.InDelta(t, 0, got.X, tol)
	assert.InDelta(t, 1, got.Y, tol)
	assert.InDelta(t, 0, got.Z, tol)
}

func TestApproxEqual_NegatedQuaternion(t *testing.T) {
	r := northPole(t, 30)
	q := r.Quaternion()
	q.Real, q.Imag, q.Jmag, q.Kmag = -q.Real, -q.Imag, -q.Jmag, -q.Kmag
	neg, err := rotation.FromQuaternion(q)
	require.NoError(t, err)
	assert.True(t, rotation.ApproxEqual(r, neg, tol))
}

func TestSlerp_Midpoint(t *testing.T) {
	mid := rotation.Slerp(northPole(t, 10), northPole(t, 30), 0.5)
	assert.True(t, mid.Interpolated())
	assert.True(t, rotation.ApproxEqual(mid, northPole(t, 20), tol), "got %v", mid)
}

func TestSlerp_Endpoints(t *testing.T) {
	a, err := rotation.FromPole(10, 20, 30)
	require.NoError(t, err)
	b, err := rotation.FromPole(-40, 100, 12)
	require.NoError(t, err)

	assert.True(t, rotation.ApproxEqual(rotation.Slerp(a, b, 0), a, tol))
	assert.True(t, rotation.ApproxEqual(rotation.Slerp(a, b, 1), b, tol))
}

func TestSlerp_NearlyEqualFallsBackToLinear(t *testing.T) {
	a := northPole(t, 10)
	got := rotation.Slerp(a, a, 0.3)
	assert.True(t, rotation.ApproxEqual(got, a, tol))
}

func TestFromLatLon_RoundTrip(t *testing.T) {
	v, err := rotation.FromLatLon(-33.87, 151.21)
	require.NoError(t, err)
	assert.InDelta(t, 1, v.Norm(), tol)
	lat, lon := v.LatLon()
	assert.InDelta(t, -33.87, lat, 1e-9)
	assert.InDelta(t, 151.21, lon, 1e-9)
}

func TestIsValid(t *testing.T) {
	assert.True(t, rotation.Identity().IsValid())
	assert.True(t, northPole(t, 33).IsValid())
	assert.False(t, rotation.FiniteRotation{}.IsValid(), "zero value")
}

func TestWithInterpolated_PropagatesThroughCompose(t *testing.T) {
	r := northPole(t, 10)
	assert.False(t, r.Interpolated())

	marked := r.WithInterpolated(true)
	assert.True(t, marked.Interpolated())
	assert.False(t, r.Interpolated(), "receiver is unchanged")
	assert.True(t, rotation.ApproxEqual(r, marked, tol))

	assert.True(t, rotation.Compose(rotation.Identity(), marked).Interpolated())
	assert.True(t, rotation.Inverse(marked).Interpolated())
	assert.False(t, marked.WithInterpolated(false).Interpolated())
}
