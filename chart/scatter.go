// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"errors"
	"fmt"

	"github.com/aclements/go-roundchart/bus"
	"github.com/aclements/go-roundchart/reconcile"
	"github.com/aclements/go-roundchart/scale"
	"github.com/aclements/go-roundchart/scene"
	"github.com/aclements/go-roundchart/transition"
)

// scatterTicks is the number of ticks on each scatter axis.
const scatterTicks = 5

// Paths have no degenerate shape to grow from, so they fade instead.
var scatterBaseline = scene.Attrs{"opacity": scene.Num(0)}

// Scatter renders each series as a line connecting its (percentage,
// value) points, one path per stake.
//
// The percentage axis runs from high to low, since a stake's
// percentage shrinks as rounds are added.
type Scatter struct {
	*frame
	canvas       *scene.Node
	xAxis, yAxis *axis
	state        RenderState
	subs         []*bus.Subscription
}

// NewScatter returns a scatter chart drawn on surface. If b is
// non-nil, the chart subscribes to TopicScatter on b until it is
// closed.
func NewScatter(b *bus.Bus, surface *scene.Node, opts Options) (*Scatter, error) {
	f, err := newFrame(surface, opts)
	if err != nil {
		return nil, err
	}
	root := surface.Append("g", "")
	root.Set(scene.Attrs{"transform": f.translate(f.margin.Left, f.margin.Top)})

	c := &Scatter{
		frame: f,
		xAxis: newAxis(root, "x", "bottom", scatterTicks, f.translate(0, f.area.Height)),
		yAxis: newAxis(root, "y", "left", scatterTicks, f.translate(0, 0)),
		state: RenderState{Colors: NewColorMap(nil)},
	}
	c.canvas = root.Append("g", "chart-canvas")
	c.canvas.Set(scene.Attrs{"class": scene.Str("chart-canvas")})

	if b != nil {
		c.subs = append(c.subs, b.Subscribe(TopicScatter, func(p interface{}) error {
			switch d := p.(type) {
			case *ScatterData:
				return c.HandleData(d)
			case ScatterData:
				return c.HandleData(&d)
			}
			return c.report(fmt.Errorf("%s: unexpected payload %T", TopicScatter, p))
		}))
	}
	return c, nil
}

// Close unsubscribes c from its bus.
func (c *Scatter) Close() {
	for _, s := range c.subs {
		s.Unsubscribe()
	}
	c.subs = nil
}

// State returns c's render state.
func (c *Scatter) State() *RenderState {
	return &c.state
}

// Canvas returns the group that holds c's paths.
func (c *Scatter) Canvas() *scene.Node {
	return c.canvas
}

// HandleData rescales both axes and redraws c from d.
func (c *Scatter) HandleData(d *ScatterData) error {
	return c.report(c.handleData(d))
}

func (c *Scatter) handleData(d *ScatterData) error {
	if d == nil {
		return fmt.Errorf("no scatter data")
	}

	xdom, err := d.Axes.Percentage.linearDomain()
	if err != nil {
		return fmt.Errorf("percentage axis: %w", err)
	}
	x, err := scale.NewLinear([2]float64{xdom[1], xdom[0]}, [2]float64{0, c.area.Width}, 0)
	if err != nil {
		return fmt.Errorf("percentage axis: %w", err)
	}
	x.Nice(scatterTicks)

	ydom, err := d.Axes.Value.linearDomain()
	if err != nil {
		return fmt.Errorf("value axis: %w", err)
	}
	y, err := scale.NewLinear(ydom, [2]float64{c.area.Height, 0}, 0)
	if err != nil {
		return fmt.Errorf("value axis: %w", err)
	}
	y.Nice(scatterTicks)

	c.state.X = scale.Pair{Logical: x, Output: x}
	c.state.Y = scale.Pair{Logical: y, Output: y}
	errs := []error{
		c.xAxis.render(x, d.Axes.Percentage.Formatter, c.dur),
		c.yAxis.render(y, d.Axes.Value.Formatter, c.dur),
	}

	series := make([]Series, len(d.Series))
	for i, s := range d.Series {
		series[i] = s.series()
	}
	p := reconcile.Keyed(c.state.Series, series, seriesKey)
	c.state.Series = series
	errs = append(errs, transition.Apply(c.canvas.SelectAll("path"), p, c.pathGeometry, scatterBaseline, c.dur))
	return errors.Join(errs...)
}

// pathGeometry returns the target geometry of s's path. It is called
// with the latest data of s on every redraw.
func (c *Scatter) pathGeometry(s Series) scene.Attrs {
	stroke := s.Color
	if stroke.A == 0 {
		stroke = c.state.Colors.Color(s.ID)
	}
	return scene.Attrs{
		"d":            c.pathPoints(s),
		"stroke":       scene.Color(stroke),
		"stroke-width": scene.Num(2),
		"fill":         scene.Str("none"),
		"opacity":      scene.Num(1),
		"data-stake":   scene.Str(s.Name),
	}
}

// pathPoints maps the points of s to the plot area. Points missing
// either coordinate break the line rather than being interpolated
// through, so they are left out.
func (c *Scatter) pathPoints(s Series) scene.Points {
	xs, ys := c.state.X.Logical, c.state.Y.Logical
	pts := scene.Points{}
	for _, p := range s.Data {
		if p.Percentage == nil || p.Value == nil {
			continue
		}
		pts = append(pts, scene.Point{X: xs.Map(*p.Percentage), Y: ys.Map(*p.Value)})
	}
	return pts
}
