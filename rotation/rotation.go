// SPDX-License-Identifier: MIT
// File: rotation.go
// Role: FiniteRotation algebra: Compose, Inverse, Slerp, Rotate, accessors.

package rotation

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/num/quat"
)

// slerpLinearThreshold is the quaternion dot product above which Slerp
// falls back to normalized linear interpolation.
const slerpLinearThreshold = 1 - 1e-12

// unitTolerance bounds how far a valid rotation's quaternion norm may drift from 1.
const unitTolerance = 1e-6

// axisEpsilon is the vector-part length below which a rotation is treated
// as the identity and its axis as indeterminate.
const axisEpsilon = 1e-15

// Compose returns the rotation "apply b, then a".
// The result is marked interpolated if either operand was.
func Compose(a, b FiniteRotation) FiniteRotation {
	return FiniteRotation{
		q:            normalize(quat.Mul(a.q, b.q)),
		interpolated: a.interpolated || b.interpolated,
	}
}

// Inverse returns the rotation that undoes r.
func Inverse(r FiniteRotation) FiniteRotation {
	return FiniteRotation{q: quat.Conj(r.q), interpolated: r.interpolated}
}

// Slerp interpolates along the shortest great-circle arc between a (t=0)
// and b (t=1). The result is marked interpolated.
func Slerp(a, b FiniteRotation, t float64) FiniteRotation {
	qa, qb := a.q, b.q
	dot := qa.Real*qb.Real + qa.Imag*qb.Imag + qa.Jmag*qb.Jmag + qa.Kmag*qb.Kmag
	// q and -q are the same rotation; take the short way round.
	if dot < 0 {
		qb = quat.Scale(-1, qb)
		dot = -dot
	}

	var q quat.Number
	if dot > slerpLinearThreshold {
		q = quat.Add(quat.Scale(1-t, qa), quat.Scale(t, qb))
	} else {
		theta := math.Acos(dot)
		s := math.Sin(theta)
		q = quat.Add(
			quat.Scale(math.Sin((1-t)*theta)/s, qa),
			quat.Scale(math.Sin(t*theta)/s, qb),
		)
	}

	return FiniteRotation{q: normalize(q), interpolated: true}
}

// Rotate applies r to v.
func (r FiniteRotation) Rotate(v Vector) Vector {
	p := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	pp := quat.Mul(quat.Mul(r.q, p), quat.Conj(r.q))

	return Vector{X: pp.Imag, Y: pp.Jmag, Z: pp.Kmag}
}

// Quaternion returns the underlying unit quaternion.
func (r FiniteRotation) Quaternion() quat.Number { return r.q }

// Interpolated reports whether r was produced by interpolation.
func (r FiniteRotation) Interpolated() bool { return r.interpolated }

// WithInterpolated returns a copy of r with its interpolated flag set to v.
func (r FiniteRotation) WithInterpolated(v bool) FiniteRotation {
	r.interpolated = v

	return r
}

// IsValid reports whether r is a finite unit quaternion. The zero
// FiniteRotation is not valid.
func (r FiniteRotation) IsValid() bool {
	n := quat.Abs(r.q)
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return false
	}

	return math.Abs(n-1) <= unitTolerance
}

// IsIdentity reports whether r is the identity within tol on the vector part.
func (r FiniteRotation) IsIdentity(tol float64) bool {
	return math.Sqrt(r.q.Imag*r.q.Imag+r.q.Jmag*r.q.Jmag+r.q.Kmag*r.q.Kmag) <= tol
}

// AxisAngle returns the rotation axis (unit) and angle in radians, with the
// angle in [0, π]. ok is false for the identity, whose axis is indeterminate.
func (r FiniteRotation) AxisAngle() (axis Vector, angle float64, ok bool) {
	q := r.q
	if q.Real < 0 {
		q = quat.Scale(-1, q)
	}
	v := Vector{X: q.Imag, Y: q.Jmag, Z: q.Kmag}
	n := v.Norm()
	if n < axisEpsilon {
		return Vector{}, 0, false
	}
	angle = 2 * math.Atan2(n, q.Real)

	return Vector{X: v.X / n, Y: v.Y / n, Z: v.Z / n}, angle, true
}

// Pole returns the pole latitude, longitude and angle in degrees.
// ok is false for the identity.
func (r FiniteRotation) Pole() (latDeg, lonDeg, angleDeg float64, ok bool) {
	axis, angle, ok := r.AxisAngle()
	if !ok {
		return 0, 0, 0, false
	}
	latDeg, lonDeg = axis.LatLon()

	return latDeg, lonDeg, angle * 180 / math.Pi, true
}

// String renders r as a pole, or "identity".
func (r FiniteRotation) String() string {
	lat, lon, angle, ok := r.Pole()
	if !ok {
		return "identity"
	}

	return fmt.Sprintf("pole(lat=%.4f, lon=%.4f, angle=%.4f)", tidy(lat), tidy(lon), tidy(angle))
}

// tidy rounds x for display and folds -0 into 0.
func tidy(x float64) float64 {
	return scalar.Round(x, 4) + 0
}

// ApproxEqual reports whether a and b describe the same rotation, comparing
// quaternion components within tol. q and -q compare equal.
func ApproxEqual(a, b FiniteRotation, tol float64) bool {
	same := scalar.EqualWithinAbs(a.q.Real, b.q.Real, tol) &&
		scalar.EqualWithinAbs(a.q.Imag, b.q.Imag, tol) &&
		scalar.EqualWithinAbs(a.q.Jmag, b.q.Jmag, tol) &&
		scalar.EqualWithinAbs(a.q.Kmag, b.q.Kmag, tol)
	if same {
		return true
	}

	return scalar.EqualWithinAbs(a.q.Real, -b.q.Real, tol) &&
		scalar.EqualWithinAbs(a.q.Imag, -b.q.Imag, tol) &&
		scalar.EqualWithinAbs(a.q.Jmag, -b.q.Jmag, tol) &&
		scalar.EqualWithinAbs(a.q.Kmag, -b.q.Kmag, tol)
}

// normalize rescales q to unit length to stop drift accumulating along
// long composition chains.
func normalize(q quat.Number) quat.Number {
	n := quat.Abs(q)
	if n == 0 {
		return quat.Number{Real: 1}
	}

	return quat.Scale(1/n, q)
}
