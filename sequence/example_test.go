// SPDX-License-Identifier: MIT
package sequence_test

import (
	"fmt"

	"github.com/katalvlaran/rotgraph/rotation"
	"github.com/katalvlaran/rotgraph/sequence"
)

// ExampleSequence_Interpolate shows the three outcomes of resolving a
// sequence sampled at 0 and 20 Ma.
func ExampleSequence_Interpolate() {
	r20, _ := rotation.FromPole(90, 0, 20)
	s, _ := sequence.New("trs-701", 0, 701,
		sequence.TimeSample{Time: 0, Rotation: rotation.Identity()},
		sequence.TimeSample{Time: 20, Rotation: r20},
	)

	for _, t := range []float64{20, 5, 30} {
		rot, interpolated, err := s.Interpolate(t)
		if err != nil {
			fmt.Printf("%g Ma: not defined\n", t)
			continue
		}
		_, _, angle, _ := rot.Pole()
		fmt.Printf("%g Ma: %.1f° interpolated=%v\n", t, angle, interpolated)
	}
	// Output:
	// 20 Ma: 20.0° interpolated=false
	// 5 Ma: 5.0° interpolated=true
	// 30 Ma: not defined
}
