// SPDX-License-Identifier: MIT
// Package sequence resolves total reconstruction sequences (irregularly
// time-sampled finite rotations of one plate relative to another) into
// poles at a single reconstruction time, and feeds them into a recon.Graph.
//
// Interpolation contract:
//
//   - t on a sample (within TimeEpsilon): that sample's rotation, unmodified,
//     interpolated = false.
//   - t strictly between two samples: spherical linear interpolation
//     between them, interpolated = true.
//   - t outside the sampled range: ErrTimeOutOfRange. Populate treats this
//     as "sequence not defined now" and inserts nothing for it.
//   - Disabled samples are ignored as if absent.
//
// Times are geological ages in Ma; larger is further in the past.
package sequence
