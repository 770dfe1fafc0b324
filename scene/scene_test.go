// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"bytes"
	"image/color"
	"math"
	"strings"
	"testing"
	"time"
)

func newTestScene() (*Scene, *ManualClock) {
	clock := NewManualClock(time.Unix(0, 0))
	return New(400, 300, clock), clock
}

func getNum(t *testing.T, n *Node, name string) float64 {
	t.Helper()
	v, ok := n.Get(name).(Num)
	if !ok {
		t.Fatalf("attribute %s = %v, want a Num", name, n.Get(name))
	}
	return float64(v)
}

func TestAnimate(t *testing.T) {
	s, clock := newTestScene()
	n := s.Root().Append("rect", "a")
	n.Set(Attrs{"height": Num(0)})
	n.Animate(Attrs{"height": Num(100), "x": Num(5)}, time.Second, nil)

	if got := getNum(t, n, "x"); got != 5 {
		t.Errorf("new attribute x = %v, want 5 immediately", got)
	}
	clock.Advance(500 * time.Millisecond)
	if got := getNum(t, n, "height"); got != 50 {
		t.Errorf("height at midpoint = %v, want 50", got)
	}
	clock.Advance(250 * time.Millisecond)
	if got := getNum(t, n, "height"); !(got > 50 && got < 100) {
		t.Errorf("height at 3/4 = %v, want between 50 and 100", got)
	}
	if s.Tick() != 1 {
		t.Errorf("transition finished early")
	}
	clock.Advance(250 * time.Millisecond)
	if s.Tick() != 0 {
		t.Errorf("transition still running after its duration")
	}
	if got := getNum(t, n, "height"); got != 100 {
		t.Errorf("final height = %v, want 100", got)
	}
}

func TestAnimateInterrupt(t *testing.T) {
	s, clock := newTestScene()
	n := s.Root().Append("rect", "a")
	n.Set(Attrs{"height": Num(0)})
	called := false
	n.Animate(Attrs{"height": Num(100)}, time.Second, func() { called = true })
	clock.Advance(500 * time.Millisecond)

	// Supersede from the interpolated value, not the stale target.
	n.Animate(Attrs{"height": Num(0)}, time.Second, nil)
	if got := getNum(t, n, "height"); got != 50 {
		t.Errorf("height after interrupt = %v, want 50", got)
	}
	clock.Advance(500 * time.Millisecond)
	if got := getNum(t, n, "height"); got != 25 {
		t.Errorf("height halfway back = %v, want 25", got)
	}
	clock.Advance(time.Second)
	s.Tick()
	if called {
		t.Errorf("superseded completion function was called")
	}
	if got := getNum(t, n, "height"); got != 0 {
		t.Errorf("final height = %v, want 0", got)
	}
}

func TestAnimateZeroDuration(t *testing.T) {
	s, _ := newTestScene()
	n := s.Root().Append("rect", "a")
	n.Animate(Attrs{"opacity": Num(0)}, 0, n.Remove)
	if !n.Removed() {
		t.Errorf("zero-duration transition did not complete synchronously")
	}
	if len(s.Root().Children()) != 0 {
		t.Errorf("removed node still in scene")
	}
	if s.Active() != 0 {
		t.Errorf("zero-duration transition left %d active", s.Active())
	}
}

func TestRemoveAfterTransition(t *testing.T) {
	s, clock := newTestScene()
	g := s.Root().Append("g", "")
	n := g.Append("rect", "a")
	if n.Parent() != g {
		t.Fatalf("Parent() = %v, want the group", n.Parent())
	}
	n.Animate(Attrs{"height": Num(0)}, time.Second, n.Remove)
	clock.Advance(999 * time.Millisecond)
	s.Tick()
	if n.Removed() || !n.Animating() {
		t.Fatalf("node removed before its transition finished")
	}
	s.Settle(clock)
	if !n.Removed() || g.Child("rect", "a") != nil {
		t.Errorf("node not removed after its transition")
	}
	if n.Animating() || n.Parent() != nil {
		t.Errorf("removed node still animating or attached")
	}
}

func TestSetStopsAttribute(t *testing.T) {
	s, clock := newTestScene()
	n := s.Root().Append("rect", "a")
	n.Set(Attrs{"x": Num(0), "y": Num(0)})
	n.Animate(Attrs{"x": Num(10), "y": Num(10)}, time.Second, nil)
	n.Set(Attrs{"x": Num(3)})
	clock.Advance(500 * time.Millisecond)
	if got := getNum(t, n, "x"); got != 3 {
		t.Errorf("x = %v, want 3 after Set", got)
	}
	if got := getNum(t, n, "y"); got != 5 {
		t.Errorf("y = %v, want 5 still transitioning", got)
	}
}

func TestLerp(t *testing.T) {
	p := Points{{0, 0}, {10, 10}}.Lerp(Points{{10, 0}, {20, 20}, {30, 30}}, 0.5).(Points)
	want := Points{{5, 0}, {15, 15}, {30, 30}}
	if len(p) != len(want) {
		t.Fatalf("got %v, want %v", p, want)
	}
	for i := range p {
		if p[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, p[i], want[i])
		}
	}
	if got := Str("a").Lerp(Str("b"), 0.1); got != Str("b") {
		t.Errorf("string lerp = %v, want b", got)
	}
	if got := Num(1).Lerp(Str("b"), 0); got != Num(1) {
		t.Errorf("mismatched lerp at 0 = %v, want 1", got)
	}

	red, blue := Color{255, 0, 0, 255}, Color{0, 0, 255, 255}
	if got := red.Lerp(blue, 1); got != blue {
		t.Errorf("color lerp at 1 = %v, want %v", got, blue)
	}
	mid := red.Lerp(blue, 0.5).(Color)
	if mid.R == 0 || mid.B == 0 || mid == red || mid == blue {
		t.Errorf("color lerp at 0.5 = %v, want a blend", mid)
	}
}

func TestFinite(t *testing.T) {
	for _, test := range []struct {
		v    Value
		want bool
	}{
		{Num(1), true},
		{Num(math.NaN()), false},
		{Num(math.Inf(-1)), false},
		{Points{{1, 2}}, true},
		{Points{{1, math.NaN()}}, false},
		{Str("x"), true},
	} {
		if got := test.v.Finite(); got != test.want {
			t.Errorf("%v.Finite() = %v, want %v", test.v, got, test.want)
		}
	}
}

func TestParseColor(t *testing.T) {
	for _, test := range []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#1f77b4", color.RGBA{0x1f, 0x77, 0xb4, 0xff}, true},
		{"#fff", color.RGBA{0xff, 0xff, 0xff, 0xff}, true},
		{"SteelBlue", color.RGBA{0x46, 0x82, 0xb4, 0xff}, true},
		{"#12345", color.RGBA{}, false},
		{"#gggggg", color.RGBA{}, false},
		{"nocolor", color.RGBA{}, false},
	} {
		got, err := ParseColor(test.in)
		if (err == nil) != test.ok || got != test.want {
			t.Errorf("ParseColor(%q) = %v, %v; want %v, ok=%v", test.in, got, err, test.want, test.ok)
		}
	}
}

func TestFindAndSelect(t *testing.T) {
	s, _ := newTestScene()
	chart := s.Root().Append("svg", "")
	chart.Set(Attrs{"id": Str("chart")})
	g := chart.Append("g", "1")
	g.Append("rect", "r1")
	g.Append("rect", "r2")
	if s.Find("chart") != chart {
		t.Errorf("Find did not return the chart node")
	}
	if s.Find("missing") != nil {
		t.Errorf("Find of missing id returned a node")
	}
	rects := chart.Select(func(n *Node) bool { return n.Kind == "rect" })
	if len(rects) != 2 || rects[0].Key != "r1" || rects[1].Key != "r2" {
		t.Errorf("Select rects = %v", rects)
	}
	sel := g.SelectAll("rect")
	if _, ok := sel.Element("r2"); !ok {
		t.Errorf("selection missing r2")
	}
	if _, ok := sel.Element("r3"); ok {
		t.Errorf("selection has r3")
	}
	sel.Insert("r3")
	if got := len(sel.Nodes()); got != 3 {
		t.Errorf("selection has %d nodes after insert, want 3", got)
	}
}

func TestWriteSVG(t *testing.T) {
	s, _ := newTestScene()
	g := s.Root().Append("g", "")
	g.Set(Attrs{"class": Str("chart-canvas"), "transform": Str("translate(60,10)")})
	r := g.Append("rect", "a")
	r.Set(Attrs{"x": Num(1), "y": Num(2), "width": Num(3), "height": Num(4), "fill": Color{0x1f, 0x77, 0xb4, 0xff}})
	p := g.Append("path", "b")
	p.Set(Attrs{"d": Points{{0, 0}, {10, 5}}, "stroke": Color{255, 0, 0, 255}, "fill": Str("none")})
	axis := s.Root().Append("g", "")
	axis.Set(Attrs{"orient": Str("left")})
	tick := axis.Append("tick", "0")
	tick.Set(Attrs{"x": Num(0), "y": Num(20), "label": Str("a<b")})

	var buf bytes.Buffer
	if err := s.WriteSVG(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		`<svg`,
		`width="400"`,
		`class="chart-canvas"`,
		`transform="translate(60,10)"`,
		`M1 2h3v4h-3z`,
		`fill:#1f77b4`,
		`M0 0L10 5`,
		`stroke:#ff0000`,
		`a&lt;b`,
		`</svg>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG output missing %q:\n%s", want, out)
		}
	}
}
