// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"time"

	"github.com/aclements/go-roundchart/reconcile"
	"github.com/aclements/go-roundchart/scale"
	"github.com/aclements/go-roundchart/scene"
	"github.com/aclements/go-roundchart/transition"
)

const (
	tickSize    = 3
	tickPadding = 6
)

// An axis draws the ticks of a scale into a group. Ticks are keyed by
// value, so ticks that survive a rescale slide to their new positions
// while the rest fade in or out.
type axis struct {
	g      *scene.Node
	orient string // "bottom" or "left"
	max    int
	last   []scale.Tick
}

func newAxis(parent *scene.Node, class, orient string, max int, transform scene.Str) *axis {
	g := parent.Append("g", class)
	g.Set(scene.Attrs{
		"class":     scene.Str(class + " axis"),
		"transform": transform,
		"orient":    scene.Str(orient),
		"size":      scene.Num(tickSize),
		"padding":   scene.Num(tickPadding),
	})
	return &axis{g: g, orient: orient, max: max}
}

var tickBaseline = scene.Attrs{"opacity": scene.Num(0)}

func tickKey(t scale.Tick) string {
	return fmt.Sprint(t.Value)
}

func (a *axis) render(s scale.Scale, format func(interface{}) string, d time.Duration) error {
	lo, hi := s.Range()
	domain := a.g.Child("line", "domain")
	if domain == nil {
		domain = a.g.Append("line", "domain")
	}
	if a.orient == "left" {
		domain.Set(scene.Attrs{"x1": scene.Num(0), "y1": scene.Num(lo), "x2": scene.Num(0), "y2": scene.Num(hi)})
	} else {
		domain.Set(scene.Attrs{"x1": scene.Num(lo), "y1": scene.Num(0), "x2": scene.Num(hi), "y2": scene.Num(0)})
	}
	domain.Set(scene.Attrs{"stroke": scene.Str("#000")})

	ticks := s.Ticks(a.max, format)
	err := transition.Apply(a.g.SelectAll("tick"), reconcile.Keyed(a.last, ticks, tickKey), a.geometry, tickBaseline, d)
	a.last = ticks
	return err
}

func (a *axis) geometry(t scale.Tick) scene.Attrs {
	attrs := scene.Attrs{
		"opacity": scene.Num(1),
		"label":   scene.Str(t.Label),
	}
	if a.orient == "left" {
		attrs["x"], attrs["y"] = scene.Num(0), scene.Num(t.Pos)
	} else {
		attrs["x"], attrs["y"] = scene.Num(t.Pos), scene.Num(0)
	}
	return attrs
}

// labels returns the labels of the axis' current ticks.
func (a *axis) labels() []string {
	var out []string
	for _, t := range a.last {
		out = append(out, t.Label)
	}
	return out
}
