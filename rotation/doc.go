// SPDX-License-Identifier: MIT
// Package rotation implements FiniteRotation, an immutable rotation of the
// unit sphere stored as a unit quaternion.
//
// What:
//
//   - FiniteRotation: a rotation with composition, inversion and spherical
//     linear interpolation. It also records whether it was produced by
//     interpolation between two time samples.
//   - Vector: a 3D vector with helpers for (latitude, longitude) conversion,
//     used for rotation axes and for rotating points on the sphere.
//
// Conventions:
//
//   - Compose(a, b) means "apply b, then a". It is not commutative.
//   - Angles passed to FromAxisAngle are radians; FromPole takes the
//     geoscience convention of pole latitude, pole longitude and angle, all
//     in degrees.
//   - q and -q describe the same rotation; ApproxEqual treats them as equal.
//   - The identity rotation has an indeterminate axis: AxisAngle and Pole
//     report ok == false for it.
//
// Complexity:
//
//   - Every operation is O(1).
//
// Errors:
//
//   - ErrZeroVector       axis or quaternion has zero length.
//   - ErrBadLatitude      latitude outside [-90, 90].
//   - ErrBadAngle         NaN or ±Inf angle or coordinate.
package rotation
