// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/palette"
	"golang.org/x/image/colornames"
)

// A Value is the value of a node attribute.
type Value interface {
	// Lerp returns the value a fraction t of the way from v to
	// to. t is in [0, 1]. If to is not the same kind of value as
	// v, Lerp returns to for any t > 0.
	Lerp(to Value, t float64) Value

	// Finite reports whether v contains only finite numbers.
	Finite() bool
}

// Attrs is a set of attribute values by name.
type Attrs map[string]Value

// Num is a numeric attribute, such as a coordinate or an opacity.
type Num float64

func (v Num) Lerp(to Value, t float64) Value {
	w, ok := to.(Num)
	if !ok {
		return step(v, to, t)
	}
	return v + Num(t)*(w-v)
}

func (v Num) Finite() bool {
	return !math.IsNaN(float64(v)) && !math.IsInf(float64(v), 0)
}

// Str is a string attribute. Strings do not interpolate; they take
// their target value as soon as a transition starts.
type Str string

func (v Str) Lerp(to Value, t float64) Value {
	return step(v, to, t)
}

func (v Str) Finite() bool { return true }

func step(from, to Value, t float64) Value {
	if t > 0 {
		return to
	}
	return from
}

// A Point is a position in user space.
type Point struct {
	X, Y float64
}

// Points is a polyline, such as the vertices of a path.
type Points []Point

// Lerp interpolates points pairwise. If to has a different number of
// points, the common prefix is interpolated and the remaining points
// come from to.
func (v Points) Lerp(to Value, t float64) Value {
	w, ok := to.(Points)
	if !ok {
		return step(v, to, t)
	}
	out := make(Points, len(w))
	for i, q := range w {
		if i < len(v) {
			p := v[i]
			q = Point{p.X + t*(q.X-p.X), p.Y + t*(q.Y-p.Y)}
		}
		out[i] = q
	}
	return out
}

func (v Points) Finite() bool {
	for _, p := range v {
		if !Num(p.X).Finite() || !Num(p.Y).Finite() {
			return false
		}
	}
	return true
}

// Color is a color attribute. Colors interpolate in sRGB.
type Color color.RGBA

func (v Color) Lerp(to Value, t float64) Value {
	w, ok := to.(Color)
	if !ok {
		return step(v, to, t)
	}
	if v == w || t <= 0 {
		return v
	} else if t >= 1 {
		return w
	}
	// RGBGradient does not blend below its second color, so lead
	// with a copy of v and map t onto the upper half.
	g := palette.RGBGradient{Colors: []color.RGBA{color.RGBA(v), color.RGBA(v), color.RGBA(w)}}
	return Color(color.RGBAModel.Convert(g.Map((1 + t) / 2)).(color.RGBA))
}

func (v Color) Finite() bool { return true }

// Hex returns v in #rrggbb form.
func (v Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", v.R, v.G, v.B)
}

// ParseColor parses an SVG color: a name such as "steelblue", or a
// hex color in #rgb or #rrggbb form.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[strings.ToLower(s)]
		if !ok {
			return color.RGBA{}, fmt.Errorf("unknown color %q", s)
		}
		return c, nil
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("bad hex color %q", s)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad hex color %q", s)
	}
	return color.RGBA{uint8(n >> 16), uint8(n >> 8), uint8(n), 0xff}, nil
}
