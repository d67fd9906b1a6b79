// SPDX-License-Identifier: MIT
// File: walk.go
// Role: depth-first traversal of a built Tree and a text dump for debugging.

package recon

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrBadDepth is returned by Walk when WithMaxDepth is given a negative limit.
var ErrBadDepth = errors.New("recon: max depth cannot be negative")

// WalkOption configures Walk.
type WalkOption func(*walkOptions)

type walkOptions struct {
	maxDepth int // -1 = unlimited
	err      error
}

// WithMaxDepth stops Walk below depth limit; rootmost edges are depth 0.
func WithMaxDepth(limit int) WalkOption {
	return func(o *walkOptions) {
		if limit < 0 {
			o.err = fmt.Errorf("%w (%d)", ErrBadDepth, limit)
			return
		}
		o.maxDepth = limit
	}
}

// Walk visits tree edges depth-first in pre-order, starting from each
// rootmost edge in turn. An error from fn aborts the walk and is returned
// wrapped.
func (t *Tree) Walk(fn func(e *Edge, depth int) error, opts ...WalkOption) error {
	o := walkOptions{maxDepth: -1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}

	var visit func(i, depth int) error
	visit = func(i, depth int) error {
		if o.maxDepth >= 0 && depth > o.maxDepth {
			return nil
		}
		e := t.edges[i]
		if err := fn(e, depth); err != nil {
			return fmt.Errorf("recon: walk at %d->%d: %w", e.fixed, e.moving, err)
		}
		for _, c := range e.children {
			if err := visit(c, depth+1); err != nil {
				return err
			}
		}

		return nil
	}

	for _, i := range t.rootmost {
		if err := visit(i, 0); err != nil {
			return err
		}
	}

	return nil
}

// Fprint writes an indented dump of the tree to w, one edge per line:
//
//	anchor 0 at 10.00 Ma
//	  0->701 [original] rel=pole(...) abs=pole(...)
func (t *Tree) Fprint(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "anchor %d at %.2f Ma\n", t.rootPlateID, t.reconstructionTime); err != nil {
		return err
	}

	return t.Walk(func(e *Edge, depth int) error {
		flag := ""
		if e.interpolated {
			flag = " interpolated"
		}
		_, err := fmt.Fprintf(w, "%s%d->%d [%s%s] rel=%s abs=%s\n",
			strings.Repeat("  ", depth+1), e.fixed, e.moving, e.poleType, flag,
			e.relative, e.composed)

		return err
	})
}
