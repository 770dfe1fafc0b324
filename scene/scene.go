// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene is a retained 2D vector scene graph with animated
// attribute transitions.
//
// A Scene is a tree of Nodes. Each node has a kind (such as "g",
// "rect", or "path"), an optional key that identifies it among its
// siblings of the same kind, a set of attributes, and an optional
// bound datum.
//
// Attributes change either immediately, with Set, or over time, with
// Animate. Transitions are evaluated lazily against the scene's
// Clock: Get always returns the current interpolated value, and Tick
// finishes any transitions whose time has elapsed. Starting a new
// transition on a node supersedes any transition still running on
// it, starting from the node's current interpolated attributes.
//
// A Scene is not safe for concurrent use.
package scene

import (
	"sync"
	"time"
)

// A Clock reports the current time to a Scene.
type Clock interface {
	Now() time.Time
}

// SystemClock is a Clock that reads the system time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock is a Clock that only moves when advanced. It is useful
// for rendering frames at fixed times and for tests.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewManualClock returns a ManualClock set to t.
func NewManualClock(t time.Time) *ManualClock {
	return &ManualClock{now: t}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves c forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// A Scene is a tree of nodes rooted at an "svg" node.
type Scene struct {
	clock Clock
	root  *Node

	// active is the set of nodes with running transitions, in
	// the order the transitions started.
	active []*Node
}

// New returns a Scene whose root is an "svg" node of the given size.
// If clock is nil, the scene uses SystemClock.
func New(width, height int, clock Clock) *Scene {
	if clock == nil {
		clock = SystemClock{}
	}
	s := &Scene{clock: clock}
	s.root = &Node{Kind: "svg", scene: s, attrs: Attrs{
		"width":  Num(width),
		"height": Num(height),
	}}
	return s
}

// Root returns the root node of s.
func (s *Scene) Root() *Node {
	return s.root
}

// Now returns the current time of s's clock.
func (s *Scene) Now() time.Time {
	return s.clock.Now()
}

// Find returns the first node in s whose "id" attribute is id, or
// nil if there is none.
func (s *Scene) Find(id string) *Node {
	var found *Node
	s.root.walk(func(n *Node) bool {
		if v, ok := n.attrs["id"].(Str); ok && string(v) == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// Active returns the number of running transitions.
func (s *Scene) Active() int {
	return len(s.active)
}

// Tick finishes every transition whose end time has passed: it sets
// the transition's final attribute values and then calls its
// completion function, if any. Tick returns the number of
// transitions still running.
func (s *Scene) Tick() int {
	type finished struct {
		n  *Node
		tr *transition
	}
	now := s.clock.Now()
	var done []finished
	keep := s.active[:0]
	for _, n := range s.active {
		if n.tr == nil {
			continue
		}
		if !now.Before(n.tr.end()) {
			done = append(done, finished{n, n.tr})
			continue
		}
		keep = append(keep, n)
	}
	for i := len(keep); i < len(s.active); i++ {
		s.active[i] = nil
	}
	s.active = keep

	for _, f := range done {
		n, tr := f.n, f.tr
		if n.tr != tr {
			// Superseded by an earlier completion function.
			continue
		}
		n.tr = nil
		for k, v := range tr.to {
			n.attrs[k] = v
		}
		if tr.then != nil {
			tr.then()
		}
	}
	return len(s.active)
}

// Settle advances clock until every transition in s has finished.
func (s *Scene) Settle(clock *ManualClock) {
	for s.Tick() > 0 {
		var last time.Time
		for _, n := range s.active {
			if n.tr == nil {
				continue
			}
			if e := n.tr.end(); e.After(last) {
				last = e
			}
		}
		if d := last.Sub(clock.Now()); d > 0 {
			clock.Advance(d)
		}
	}
}

func (s *Scene) start(n *Node) {
	for _, m := range s.active {
		if m == n {
			return
		}
	}
	s.active = append(s.active, n)
}
