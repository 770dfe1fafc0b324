// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// WriteSVG writes the current state of s to w as an SVG document.
// Transitioning attributes are written at their interpolated values.
//
// Node kinds are drawn as follows:
//
//	g     a group; its attributes are written as SVG attributes
//	rect  a rectangle from x, y, width, height, fill, opacity
//	path  a polyline from d (Points), stroke, stroke-width, fill, opacity
//	tick  an axis tick at x, y with a label; the parent's orient,
//	      size, and padding attributes control its layout
//	line  a line from x1, y1 to x2, y2 with stroke
//
// Nodes of other kinds are skipped along with their children.
func (s *Scene) WriteSVG(w io.Writer) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	width, height := num(s.root.Get("width")), num(s.root.Get("height"))
	canvas.Start(int(width), int(height), `font-size="10px" font-family="sans-serif"`)
	for _, c := range s.root.children {
		writeNode(canvas, c)
	}
	canvas.End()
	return ew.err
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

func num(v Value) float64 {
	if n, ok := v.(Num); ok {
		return float64(n)
	}
	return 0
}

func str(v Value) string {
	switch v := v.(type) {
	case Str:
		return string(v)
	case Num:
		return fmt.Sprintf("%.6g", float64(v))
	case Color:
		return v.Hex()
	}
	return ""
}

func style(n *Node, names ...string) string {
	var parts []string
	for _, name := range names {
		if v := n.Get(name); v != nil {
			parts = append(parts, name+":"+str(v))
		}
	}
	return strings.Join(parts, ";")
}

func writeNode(canvas *svg.SVG, n *Node) {
	switch n.Kind {
	case "g":
		var attrs []string
		for _, name := range n.Names() {
			if v := str(n.Get(name)); v != "" {
				attrs = append(attrs, fmt.Sprintf(`%s="%s"`, name, v))
			}
		}
		if len(attrs) > 0 {
			canvas.Group(strings.Join(attrs, " "))
		} else {
			canvas.Group()
		}
		for _, c := range n.children {
			writeNode(canvas, c)
		}
		canvas.Gend()

	case "rect":
		x, y := num(n.Get("x")), num(n.Get("y"))
		w, h := num(n.Get("width")), num(n.Get("height"))
		canvas.Path(fmt.Sprintf("M%.6g %.6gh%.6gv%.6gh%.6gz", x, y, w, h, -w), style(n, "fill", "opacity"))

	case "path":
		pts, _ := n.Get("d").(Points)
		if len(pts) == 0 {
			return
		}
		var d strings.Builder
		for i, p := range pts {
			cmd := "L"
			if i == 0 {
				cmd = "M"
			}
			fmt.Fprintf(&d, "%s%.6g %.6g", cmd, p.X, p.Y)
		}
		canvas.Path(d.String(), style(n, "fill", "stroke", "stroke-width", "opacity"))

	case "line":
		canvas.Line(iround(num(n.Get("x1"))), iround(num(n.Get("y1"))), iround(num(n.Get("x2"))), iround(num(n.Get("y2"))), style(n, "stroke"))

	case "tick":
		writeTick(canvas, n)
	}
}

func writeTick(canvas *svg.SVG, n *Node) {
	var orient string
	size, padding := 6.0, 3.0
	if p := n.parent; p != nil {
		orient = str(p.Get("orient"))
		if v, ok := p.Get("size").(Num); ok {
			size = float64(v)
		}
		if v, ok := p.Get("padding").(Num); ok {
			padding = float64(v)
		}
	}
	x, y := num(n.Get("x")), num(n.Get("y"))
	opacity := 1.0
	if v, ok := n.Get("opacity").(Num); ok {
		opacity = float64(v)
	}
	label := str(n.Get("label"))

	canvas.Group(fmt.Sprintf(`transform="translate(%.6g,%.6g)" opacity="%.6g"`, x, y, opacity))
	s, p := iround(size), iround(size+padding)
	if orient == "left" {
		canvas.Line(-s, 0, 0, 0, "stroke:#000")
		canvas.Text(-p, 0, label, "text-anchor:end;dominant-baseline:middle")
	} else {
		canvas.Line(0, 0, 0, s, "stroke:#000")
		canvas.Text(0, p, label, "text-anchor:middle;dominant-baseline:hanging")
	}
	canvas.Gend()
}

func iround(x float64) int {
	return int(math.Floor(x + 0.5))
}
