// SPDX-License-Identifier: MIT
package dataset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rotgraph/dataset"
	"github.com/katalvlaran/rotgraph/recon"
	"github.com/katalvlaran/rotgraph/rotation"
	"github.com/katalvlaran/rotgraph/sequence"
)

const fixture = `
sequences:
  - feature: trs-701
    fixed: 0
    moving: 701
    samples:
      - {time: 0, lat: 90, lon: 0, angle: 0}
      - {time: 10, lat: 90, lon: 0, angle: 10}
  - fixed: 701
    moving: 801
    samples:
      - {time: 10, lat: 90, lon: 0, angle: 5}
      - {time: 20, lat: 0, lon: 0, angle: 1, disabled: true}
`

func TestParse(t *testing.T) {
	seqs, err := dataset.Parse([]byte(fixture))
	require.NoError(t, err)
	require.Len(t, seqs, 2)

	assert.Equal(t, recon.FeatureID("trs-701"), seqs[0].Feature())
	assert.Equal(t, recon.PlateID(701), seqs[0].MovingPlate())
	assert.Equal(t, recon.FeatureID("seq-1"), seqs[1].Feature())
	assert.True(t, seqs[1].Samples()[1].Disabled)

	rot, interpolated, err := seqs[0].Interpolate(5)
	require.NoError(t, err)
	assert.True(t, interpolated)
	want, err := rotation.FromPole(90, 0, 5)
	require.NoError(t, err)
	assert.True(t, rotation.ApproxEqual(want, rot, 1e-9))
}

func TestParse_Errors(t *testing.T) {
	_, err := dataset.Parse([]byte("sequences:\n  - fixed: 0\n    moving: 1\n    samples: []\n"))
	assert.ErrorIs(t, err, sequence.ErrNoSamples)

	_, err = dataset.Parse([]byte("sequences:\n  - samples:\n      - {time: 0, lat: 95, lon: 0, angle: 1}\n"))
	assert.ErrorIs(t, err, rotation.ErrBadLatitude)

	_, err = dataset.Parse([]byte("poles: []\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o600))
	seqs, err := dataset.Load(path)
	require.NoError(t, err)
	assert.Len(t, seqs, 2)
}
