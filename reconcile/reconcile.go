// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reconcile performs keyed joins between the previous and
// next snapshots of a data set.
//
// Elements are matched by a string key derived from each element, not
// by identity, so snapshots may be rebuilt from scratch on every
// redraw and still be recognized as the same logical elements.
// Reconcile applies this join at two levels: groups (such as series)
// and the points within each group.
package reconcile

// An Entry is one keyed element of a join.
//
// For entering elements, Prev is the zero value. For exiting
// elements, Next is the zero value.
type Entry[T any] struct {
	Key        string
	Prev, Next T
}

// A Partition classifies the elements of a join.
//
// Enter and Update are in the order of the next snapshot. Exit is in
// the order of the previous snapshot.
type Partition[T any] struct {
	Enter  []Entry[T]
	Update []Entry[T]
	Exit   []Entry[T]
}

// Keyed joins prev and next by key.
//
// If a key occurs more than once in a snapshot, only its first
// occurrence takes part in the join.
func Keyed[T any](prev, next []T, key func(T) string) Partition[T] {
	var p Partition[T]

	prevByKey := make(map[string]T, len(prev))
	prevKeys := make([]string, 0, len(prev))
	for _, v := range prev {
		k := key(v)
		if _, ok := prevByKey[k]; ok {
			continue
		}
		prevByKey[k] = v
		prevKeys = append(prevKeys, k)
	}

	seen := make(map[string]bool, len(next))
	for _, v := range next {
		k := key(v)
		if seen[k] {
			continue
		}
		seen[k] = true
		if old, ok := prevByKey[k]; ok {
			p.Update = append(p.Update, Entry[T]{k, old, v})
		} else {
			var zero T
			p.Enter = append(p.Enter, Entry[T]{k, zero, v})
		}
	}

	for _, k := range prevKeys {
		if !seen[k] {
			var zero T
			p.Exit = append(p.Exit, Entry[T]{k, prevByKey[k], zero})
		}
	}
	return p
}

// Len returns the total number of entries in p.
func (p Partition[T]) Len() int {
	return len(p.Enter) + len(p.Update) + len(p.Exit)
}

// Nested is the result of a two-level join.
type Nested[G, P any] struct {
	// Outer partitions the groups.
	Outer Partition[G]

	// inner holds the partition of points for each entering or
	// updating group, by group key.
	inner map[string]Partition[P]
}

// Inner returns the partition of points within the group with key k.
// Entering groups have only entering points. Exiting groups, and keys
// not in the join, have an empty partition.
func (n Nested[G, P]) Inner(k string) Partition[P] {
	return n.inner[k]
}

// Reconcile joins the groups of prev and next by outerKey and, for
// each group present in next, joins its points by innerKey.
func Reconcile[G, P any](prev, next []G, outerKey func(G) string, points func(G) []P, innerKey func(P) string) Nested[G, P] {
	n := Nested[G, P]{
		Outer: Keyed(prev, next, outerKey),
		inner: make(map[string]Partition[P]),
	}
	for _, e := range n.Outer.Enter {
		n.inner[e.Key] = Keyed(nil, points(e.Next), innerKey)
	}
	for _, e := range n.Outer.Update {
		n.inner[e.Key] = Keyed(points(e.Prev), points(e.Next), innerKey)
	}
	return n
}
