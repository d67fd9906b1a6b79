// SPDX-License-Identifier: MIT
// Package dataset reads rotation sequences from a small YAML fixture
// format used by the rotgraph command:
//
//	sequences:
//	  - feature: trs-701
//	    fixed: 0
//	    moving: 701
//	    samples:
//	      - {time: 0, lat: 90, lon: 0, angle: 0}
//	      - {time: 10, lat: 5.4, lon: -20.1, angle: 3.2}
//	      - {time: 20, lat: 6.0, lon: -19.7, angle: 7.9, disabled: true}
//
// Poles are given as latitude, longitude and angle in degrees.
package dataset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/rotgraph/recon"
	"github.com/katalvlaran/rotgraph/rotation"
	"github.com/katalvlaran/rotgraph/sequence"
)

type sampleDoc struct {
	Time     float64 `yaml:"time"`
	Lat      float64 `yaml:"lat"`
	Lon      float64 `yaml:"lon"`
	Angle    float64 `yaml:"angle"`
	Disabled bool    `yaml:"disabled"`
}

type sequenceDoc struct {
	Feature string      `yaml:"feature"`
	Fixed   uint32      `yaml:"fixed"`
	Moving  uint32      `yaml:"moving"`
	Samples []sampleDoc `yaml:"samples"`
}

type document struct {
	Sequences []sequenceDoc `yaml:"sequences"`
}

// Load reads the fixture file at path.
func Load(path string) ([]*sequence.Sequence, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a fixture document into sequences, in document order.
// A sequence without a feature name is named "seq-<index>".
func Parse(data []byte) ([]*sequence.Sequence, error) {
	var doc document
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, fmt.Errorf("dataset: decode: %w", err)
	}

	out := make([]*sequence.Sequence, 0, len(doc.Sequences))
	for i, sd := range doc.Sequences {
		name := sd.Feature
		if name == "" {
			name = fmt.Sprintf("seq-%d", i)
		}
		samples := make([]sequence.TimeSample, 0, len(sd.Samples))
		for j, smp := range sd.Samples {
			r, err := rotation.FromPole(smp.Lat, smp.Lon, smp.Angle)
			if err != nil {
				return nil, fmt.Errorf("dataset: %s sample %d: %w", name, j, err)
			}
			samples = append(samples, sequence.TimeSample{Time: smp.Time, Rotation: r, Disabled: smp.Disabled})
		}
		s, err := sequence.New(recon.FeatureID(name), recon.PlateID(sd.Fixed), recon.PlateID(sd.Moving), samples...)
		if err != nil {
			return nil, fmt.Errorf("dataset: %s: %w", name, err)
		}
		out = append(out, s)
	}

	return out, nil
}
