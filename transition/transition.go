// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transition animates the scene changes that result from a
// keyed join.
package transition

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/aclements/go-roundchart/reconcile"
	"github.com/aclements/go-roundchart/scene"
)

// DefaultDuration is the duration of chart transitions.
const DefaultDuration = time.Second

// ErrInvalidGeometry is returned when a geometry function produces a
// non-finite attribute value.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Apply updates the elements of sel to match partition p, in three
// steps:
//
//  1. Each entering element is inserted and set to baseline, without
//     animation. If an element with an entering key is still in sel
//     (because it has not finished exiting), it is reused from its
//     current state instead.
//  2. Each entering and updating element is bound to its new datum
//     and animated from its current attributes to geometry(datum).
//  3. Each exiting element is animated to baseline and then removed.
//
// All animations take d. An element that is still transitioning
// from an earlier Apply starts from its current interpolated
// attributes. Apply returns without waiting for any animation.
//
// If geometry returns a non-finite value for an element, that element
// is not animated and keeps its last good geometry. Apply continues
// with the remaining elements and returns an error wrapping
// ErrInvalidGeometry.
func Apply[T any](sel scene.Container, p reconcile.Partition[T], geometry func(T) scene.Attrs, baseline scene.Attrs, d time.Duration) error {
	enter := make([]scene.Element, len(p.Enter))
	for i, e := range p.Enter {
		if el, ok := sel.Element(e.Key); ok {
			enter[i] = el
			continue
		}
		el := sel.Insert(e.Key)
		el.Set(copyAttrs(baseline))
		enter[i] = el
	}

	var errs []error
	animate := func(el scene.Element, e reconcile.Entry[T]) {
		attrs := geometry(e.Next)
		if bad := nonFinite(attrs); bad != nil {
			errs = append(errs, fmt.Errorf("%w: element %q: %s", ErrInvalidGeometry, e.Key, bad))
			return
		}
		el.Bind(e.Next)
		el.Animate(attrs, d, nil)
	}
	for i, e := range p.Enter {
		animate(enter[i], e)
	}
	for _, e := range p.Update {
		el, ok := sel.Element(e.Key)
		if !ok {
			// Something else removed it. Bring it back.
			el = sel.Insert(e.Key)
			el.Set(copyAttrs(baseline))
		}
		animate(el, e)
	}

	for _, e := range p.Exit {
		el, ok := sel.Element(e.Key)
		if !ok {
			continue
		}
		el.Animate(copyAttrs(baseline), d, el.Remove)
	}

	return errors.Join(errs...)
}

func copyAttrs(a scene.Attrs) scene.Attrs {
	c := make(scene.Attrs, len(a))
	for k, v := range a {
		c[k] = v
	}
	return c
}

// nonFinite returns a description of the non-finite attributes in a,
// or nil if they are all finite.
func nonFinite(a scene.Attrs) error {
	var bad []string
	for k, v := range a {
		if v == nil || !v.Finite() {
			bad = append(bad, k)
		}
	}
	if bad == nil {
		return nil
	}
	sort.Strings(bad)
	return fmt.Errorf("non-finite %v", bad)
}
