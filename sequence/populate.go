// SPDX-License-Identifier: MIT
// File: populate.go
// Role: ingestion of sequences into a recon.Graph, and the one-call
//       sequences → tree pipeline.

package sequence

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/rotgraph/recon"
)

// Populate inserts, for every sequence defined at g's reconstruction time,
// one pole into g. Sequences that are undefined at that time or
// self-referential are skipped and counted; duplicates are counted. Any
// other error aborts and is returned with the stats so far.
func Populate(g *recon.Graph, seqs []*Sequence, opts ...Option) (Stats, error) {
	var st Stats
	if g == nil {
		return st, recon.ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	t := g.ReconstructionTime()

	for _, s := range seqs {
		if s == nil {
			continue
		}
		rot, interpolated, err := s.Interpolate(t)
		if errors.Is(err, ErrTimeOutOfRange) {
			st.Undefined++
			continue
		}
		if err != nil {
			return st, fmt.Errorf("sequence: populate %q: %w", s.feature, err)
		}

		res, err := g.InsertTotalReconstructionPole(s.fixed, s.moving, rot, interpolated)
		switch {
		case errors.Is(err, recon.ErrSelfReferentialPole):
			st.SelfReferential++
			o.Logger.WithFields(logrus.Fields{
				"feature": s.feature,
				"plate":   s.fixed,
			}).Warn("sequence: skipping self-referential sequence")
			continue
		case err != nil:
			return st, fmt.Errorf("sequence: populate %q: %w", s.feature, err)
		}

		if res == recon.RejectedDuplicate {
			st.Duplicates++
			continue
		}
		st.Inserted++
		st.Features = append(st.Features, s.feature)
	}

	o.Logger.WithFields(logrus.Fields{
		"time":            t,
		"inserted":        st.Inserted,
		"duplicates":      st.Duplicates,
		"undefined":       st.Undefined,
		"selfReferential": st.SelfReferential,
	}).Debug("sequence: populated graph")

	return st, nil
}

// BuildTree creates a graph at reconstructionTime, populates it from seqs,
// and resolves it for anchor. The tree's features are those that
// contributed a pole.
func BuildTree(seqs []*Sequence, reconstructionTime float64, anchor recon.PlateID, opts ...Option) (*recon.Tree, Stats, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	graphOpts := append([]recon.Option{recon.WithLogger(o.Logger)}, o.GraphOptions...)
	g := recon.NewGraph(reconstructionTime, graphOpts...)

	st, err := Populate(g, seqs, WithLogger(o.Logger))
	if err != nil {
		return nil, st, err
	}
	tree, err := g.BuildTree(anchor, reconstructionTime, st.Features)
	if err != nil {
		return nil, st, fmt.Errorf("sequence: build tree: %w", err)
	}

	return tree, st, nil
}
