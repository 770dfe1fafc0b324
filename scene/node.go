// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"sort"
	"time"
)

// A Node is an element of a Scene.
type Node struct {
	// Kind is the type of the node, such as "g", "rect", or
	// "path". It determines how the node is drawn.
	Kind string

	// Key identifies the node among its siblings of the same
	// Kind. It may be empty for unkeyed nodes.
	Key string

	scene    *Scene
	parent   *Node
	children []*Node
	removed  bool

	attrs Attrs
	datum interface{}
	tr    *transition
}

type transition struct {
	start    time.Time
	dur      time.Duration
	from, to Attrs
	then     func()
}

func (tr *transition) end() time.Time {
	return tr.start.Add(tr.dur)
}

// at returns the eased progress of tr at now.
func (tr *transition) at(now time.Time) float64 {
	t := float64(now.Sub(tr.start)) / float64(tr.dur)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return easeCubicInOut(t)
}

func easeCubicInOut(t float64) float64 {
	t *= 2
	if t <= 1 {
		return t * t * t / 2
	}
	t -= 2
	return (t*t*t + 2) / 2
}

// An Element is a node that a data join can update.
type Element interface {
	// Bind sets the datum bound to the element.
	Bind(datum interface{})

	// Set sets attributes immediately.
	Set(attrs Attrs)

	// Animate transitions attributes to attrs over d and calls
	// then, if non-nil, when the transition completes. It
	// supersedes any running transition, whose completion
	// function is never called.
	Animate(attrs Attrs, d time.Duration, then func())

	// Remove removes the element from the scene.
	Remove()
}

// A Container holds keyed elements of a single kind.
type Container interface {
	// Insert adds a new element with the given key.
	Insert(key string) Element

	// Element returns the element with the given key, if any.
	Element(key string) (Element, bool)
}

// Append adds a new child node to n and returns it.
func (n *Node) Append(kind, key string) *Node {
	c := &Node{Kind: kind, Key: key, scene: n.scene, parent: n, attrs: Attrs{}}
	n.children = append(n.children, c)
	return c
}

// Child returns the child of n with the given kind and key, or nil.
func (n *Node) Child(kind, key string) *Node {
	for _, c := range n.children {
		if c.Kind == kind && c.Key == key {
			return c
		}
	}
	return nil
}

// Children returns the children of n in drawing order.
func (n *Node) Children() []*Node {
	return append([]*Node(nil), n.children...)
}

// Parent returns the parent of n, or nil for the root or a removed
// node.
func (n *Node) Parent() *Node {
	return n.parent
}

// Removed reports whether n has been removed from its scene.
func (n *Node) Removed() bool {
	return n.removed
}

// Scene returns the scene n belongs to.
func (n *Node) Scene() *Scene {
	return n.scene
}

// Bind sets the datum bound to n.
func (n *Node) Bind(datum interface{}) {
	n.datum = datum
}

// Datum returns the datum bound to n.
func (n *Node) Datum() interface{} {
	return n.datum
}

// Get returns the current value of attribute name, or nil if n does
// not have that attribute. If the attribute is transitioning, Get
// returns its interpolated value.
func (n *Node) Get(name string) Value {
	if tr := n.tr; tr != nil {
		if to, ok := tr.to[name]; ok {
			return tr.from[name].Lerp(to, tr.at(n.scene.Now()))
		}
	}
	return n.attrs[name]
}

// Attrs returns the current values of all of n's attributes.
func (n *Node) Attrs() Attrs {
	a := make(Attrs, len(n.attrs))
	for k := range n.attrs {
		a[k] = n.Get(k)
	}
	return a
}

// Names returns the names of n's attributes in sorted order.
func (n *Node) Names() []string {
	names := make([]string, 0, len(n.attrs))
	for k := range n.attrs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Set sets attributes of n immediately. Any running transition of
// those attributes stops; other attributes keep transitioning.
func (n *Node) Set(attrs Attrs) {
	for k, v := range attrs {
		if n.tr != nil {
			delete(n.tr.from, k)
			delete(n.tr.to, k)
		}
		n.attrs[k] = v
	}
}

// Animate transitions attributes of n to attrs over d.
//
// The transition starts from the current values of the attributes,
// including values interpolated by a transition that this one
// supersedes. Attributes n does not have yet take their target
// value immediately. If d <= 0, the attributes take their target
// values and then is called before Animate returns.
func (n *Node) Animate(attrs Attrs, d time.Duration, then func()) {
	if n.removed {
		return
	}
	n.Interrupt()
	if d <= 0 {
		for k, v := range attrs {
			n.attrs[k] = v
		}
		if then != nil {
			then()
		}
		return
	}

	tr := &transition{
		start: n.scene.Now(),
		dur:   d,
		from:  make(Attrs, len(attrs)),
		to:    make(Attrs, len(attrs)),
		then:  then,
	}
	for k, v := range attrs {
		cur, ok := n.attrs[k]
		if !ok {
			cur = v
			n.attrs[k] = v
		}
		tr.from[k] = cur
		tr.to[k] = v
	}
	n.tr = tr
	n.scene.start(n)
}

// Animating reports whether n has a running transition.
func (n *Node) Animating() bool {
	return n.tr != nil
}

// Interrupt stops n's running transition, if any, leaving its
// attributes at their current interpolated values. The transition's
// completion function is not called.
func (n *Node) Interrupt() {
	tr := n.tr
	if tr == nil {
		return
	}
	t := tr.at(n.scene.Now())
	for k, to := range tr.to {
		n.attrs[k] = tr.from[k].Lerp(to, t)
	}
	n.tr = nil
}

// Remove detaches n from its parent and stops its transition.
func (n *Node) Remove() {
	if n.removed {
		return
	}
	n.removed = true
	n.tr = nil
	if p := n.parent; p != nil {
		for i, c := range p.children {
			if c == n {
				p.children = append(p.children[:i:i], p.children[i+1:]...)
				break
			}
		}
		n.parent = nil
	}
}

// Select returns the descendants of n for which pred returns true,
// in document order.
func (n *Node) Select(pred func(*Node) bool) []*Node {
	var out []*Node
	for _, c := range n.children {
		c.walk(func(m *Node) bool {
			if pred(m) {
				out = append(out, m)
			}
			return true
		})
	}
	return out
}

// walk calls f on n and its descendants in document order until f
// returns false. It reports whether the walk ran to completion.
func (n *Node) walk(f func(*Node) bool) bool {
	if !f(n) {
		return false
	}
	for _, c := range n.children {
		if !c.walk(f) {
			return false
		}
	}
	return true
}

// SelectAll returns the keyed children of n of the given kind as a
// Container.
func (n *Node) SelectAll(kind string) Selection {
	return Selection{n, kind}
}

// A Selection is the set of children of a node that have a given
// kind. It implements Container.
type Selection struct {
	Parent *Node
	Kind   string
}

// Insert appends a new child with key k.
func (s Selection) Insert(k string) Element {
	return s.Parent.Append(s.Kind, k)
}

// Element returns the child with key k.
func (s Selection) Element(k string) (Element, bool) {
	c := s.Parent.Child(s.Kind, k)
	if c == nil {
		return nil, false
	}
	return c, true
}

// Nodes returns the nodes in s in drawing order.
func (s Selection) Nodes() []*Node {
	var out []*Node
	for _, c := range s.Parent.children {
		if c.Kind == s.Kind {
			out = append(out, c)
		}
	}
	return out
}
