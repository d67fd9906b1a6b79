// SPDX-License-Identifier: MIT
// File: types.go
// Role: Vector and FiniteRotation value types, sentinel errors, constructors.

package rotation

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Sentinel errors for rotation construction.
var (
	// ErrZeroVector indicates an axis or quaternion of zero length.
	ErrZeroVector = errors.New("rotation: zero-length vector")

	// ErrBadLatitude indicates a latitude outside [-90, 90] degrees.
	ErrBadLatitude = errors.New("rotation: latitude out of range")

	// ErrBadAngle indicates a NaN or infinite angle or coordinate.
	ErrBadAngle = errors.New("rotation: angle is NaN or Inf")
)

// Vector is a 3D cartesian vector. Points on the sphere are unit Vectors.
type Vector struct {
	X, Y, Z float64
}

// NorthPole is the unit vector through the geographic north pole.
var NorthPole = Vector{X: 0, Y: 0, Z: 1}

// Norm returns the euclidean length of v.
func (v Vector) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Dot returns the dot product of v and o.
func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Unit returns v scaled to unit length.
func (v Vector) Unit() (Vector, error) {
	n := v.Norm()
	if n == 0 {
		return Vector{}, ErrZeroVector
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return Vector{}, ErrBadAngle
	}

	return Vector{X: v.X / n, Y: v.Y / n, Z: v.Z / n}, nil
}

// LatLon converts v to geographic latitude and longitude in degrees.
// v need not be normalized.
func (v Vector) LatLon() (lat, lon float64) {
	h := math.Hypot(v.X, v.Y)
	lat = math.Atan2(v.Z, h) * 180 / math.Pi
	lon = math.Atan2(v.Y, v.X) * 180 / math.Pi

	return lat, lon
}

// FromLatLon returns the unit vector for the given latitude and longitude in degrees.
func FromLatLon(latDeg, lonDeg float64) (Vector, error) {
	if math.IsNaN(latDeg) || math.IsNaN(lonDeg) || math.IsInf(latDeg, 0) || math.IsInf(lonDeg, 0) {
		return Vector{}, ErrBadAngle
	}
	if latDeg < -90 || latDeg > 90 {
		return Vector{}, ErrBadLatitude
	}
	lat := latDeg * math.Pi / 180
	lon := lonDeg * math.Pi / 180
	cl := math.Cos(lat)

	return Vector{X: cl * math.Cos(lon), Y: cl * math.Sin(lon), Z: math.Sin(lat)}, nil
}

// FiniteRotation is an immutable rotation of the sphere.
//
// The zero value is not a valid rotation; use Identity or one of the
// constructors.
type FiniteRotation struct {
	q            quat.Number // unit quaternion
	interpolated bool        // produced by Slerp
}

// Identity returns the identity rotation.
func Identity() FiniteRotation {
	return FiniteRotation{q: quat.Number{Real: 1}}
}

// FromAxisAngle returns the rotation of angle radians about axis
// (right-hand rule). axis need not be normalized.
func FromAxisAngle(axis Vector, angle float64) (FiniteRotation, error) {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return FiniteRotation{}, ErrBadAngle
	}
	u, err := axis.Unit()
	if err != nil {
		return FiniteRotation{}, err
	}
	s, c := math.Sincos(angle / 2)

	return FiniteRotation{q: quat.Number{Real: c, Imag: s * u.X, Jmag: s * u.Y, Kmag: s * u.Z}}, nil
}

// FromPole returns the rotation about the pole at (latDeg, lonDeg) by
// angleDeg degrees, the form in which total reconstruction poles are
// usually tabulated.
func FromPole(latDeg, lonDeg, angleDeg float64) (FiniteRotation, error) {
	axis, err := FromLatLon(latDeg, lonDeg)
	if err != nil {
		return FiniteRotation{}, err
	}

	return FromAxisAngle(axis, angleDeg*math.Pi/180)
}

// FromQuaternion returns the rotation described by q, normalized to unit length.
func FromQuaternion(q quat.Number) (FiniteRotation, error) {
	n := quat.Abs(q)
	if n == 0 {
		return FiniteRotation{}, ErrZeroVector
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return FiniteRotation{}, ErrBadAngle
	}

	return FiniteRotation{q: quat.Scale(1/n, q)}, nil
}
