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

const (
	// barPadding is the fraction of each round's band left
	// between bars.
	barPadding = 0.08

	// barWidth is the width of a bar as a fraction of its band.
	barWidth = 0.8
)

// barBaseline is the geometry bars grow from and shrink to.
var barBaseline = scene.Attrs{"y": scene.Num(0), "height": scene.Num(0)}

// Bar renders a stacked bar chart of series values across rounds.
//
// Each series is a group of bars, one per round, keyed by the point's
// Key. The plot area is flipped vertically so that bars grow up from
// the x axis; the y axis is labeled with a reversed scale so it still
// reads bottom to top.
type Bar struct {
	*frame
	canvas       *scene.Node
	xAxis, yAxis *axis
	state        RenderState
	subs         []*bus.Subscription
}

// NewBar returns a bar chart drawn on surface. If b is non-nil, the
// chart subscribes to TopicRoundTimeline and TopicSelectMeasure on b
// until it is closed.
func NewBar(b *bus.Bus, surface *scene.Node, opts Options) (*Bar, error) {
	f, err := newFrame(surface, opts)
	if err != nil {
		return nil, err
	}
	m, h := f.margin, f.area.Height
	c := &Bar{
		frame: f,
		xAxis: newAxis(surface, "x", "bottom", 0, f.translate(m.Left, m.Top+h)),
		yAxis: newAxis(surface, "y", "left", 10, f.translate(m.Left, m.Top)),
		state: RenderState{Colors: NewColorMap(nil)},
	}
	c.canvas = surface.Append("g", "chart-canvas")
	c.canvas.Set(scene.Attrs{
		"class":     scene.Str("chart-canvas"),
		"transform": f.translate(m.Left, m.Top+h) + " scale(1,-1)",
	})

	if b != nil {
		c.subs = append(c.subs,
			b.Subscribe(TopicRoundTimeline, func(p interface{}) error {
				switch d := p.(type) {
				case *TimelineData:
					return c.HandleTimeline(d)
				case TimelineData:
					return c.HandleTimeline(&d)
				}
				return c.report(fmt.Errorf("%s: unexpected payload %T", TopicRoundTimeline, p))
			}),
			b.Subscribe(TopicSelectMeasure, func(p interface{}) error {
				get, ok := p.(MeasureFunc)
				if !ok {
					get, ok = p.(func(Datasets) Measure)
				}
				if !ok {
					return c.report(fmt.Errorf("%s: unexpected payload %T", TopicSelectMeasure, p))
				}
				return c.HandleSelectMeasure(get)
			}),
		)
	}
	return c, nil
}

// Close unsubscribes c from its bus.
func (c *Bar) Close() {
	for _, s := range c.subs {
		s.Unsubscribe()
	}
	c.subs = nil
}

// State returns c's render state.
func (c *Bar) State() *RenderState {
	return &c.state
}

// Canvas returns the group that holds c's bars.
func (c *Bar) Canvas() *scene.Node {
	return c.canvas
}

// HandleTimeline redraws c from a new timeline: it rescales and
// redraws the x axis, then draws the measure selected by
// d.GetMeasure.
func (c *Bar) HandleTimeline(d *TimelineData) error {
	return c.report(c.timeline(d))
}

// HandleSelectMeasure redraws c with a different measure of the last
// timeline.
func (c *Bar) HandleSelectMeasure(get MeasureFunc) error {
	return c.report(c.selectMeasure(get))
}

func (c *Bar) timeline(d *TimelineData) error {
	if d == nil {
		return errNoTimeline
	}
	x, err := scale.NewOrdinalPair(d.XAxis.Domain, d.XAxis.Range, [2]float64{0, c.area.Width}, barPadding)
	if err != nil {
		return fmt.Errorf("x axis: %w", err)
	}
	m, y, err := c.measure(d, d.GetMeasure)
	if err != nil {
		return err
	}

	// Both scales are good; commit.
	c.state.X = x
	c.state.Timeline = d
	if ds := d.Datasets[PercentagesDataset]; ds != nil {
		for _, s := range ds.Series {
			c.state.Colors.Color(s.ID)
		}
	}
	err = c.xAxis.render(x.Output, d.XAxis.Formatter, 0)
	return errors.Join(err, c.draw(m, y))
}

func (c *Bar) selectMeasure(get MeasureFunc) error {
	if c.state.Timeline == nil {
		return errNoTimeline
	}
	m, y, err := c.measure(c.state.Timeline, get)
	if err != nil {
		return err
	}
	return c.draw(m, y)
}

// measure selects a measure of d and computes its y scales without
// changing c.
func (c *Bar) measure(d *TimelineData, get MeasureFunc) (Measure, scale.Pair, error) {
	if get == nil {
		return Measure{}, scale.Pair{}, fmt.Errorf("no measure selected")
	}
	m := get(d.Datasets)
	dom, err := m.YAxis.linearDomain()
	if err != nil {
		return Measure{}, scale.Pair{}, fmt.Errorf("y axis: %w", err)
	}
	y, err := scale.NewLinearPair(dom, [2]float64{0, c.area.Height}, 0, true)
	if err != nil {
		return Measure{}, scale.Pair{}, fmt.Errorf("y axis: %w", err)
	}
	return m, y, nil
}

// draw commits y and redraws the y axis and bars of m.
func (c *Bar) draw(m Measure, y scale.Pair) error {
	c.state.Y = y
	err := c.yAxis.render(y.Output, m.YAxis.Formatter, c.dur)
	return errors.Join(err, c.renderData(m.Series))
}

func (c *Bar) renderData(series []Series) error {
	n := reconcile.Reconcile(c.state.Series, series, seriesKey, seriesPoints, pointKey)
	c.state.Series = series

	errs := []error{transition.Apply(c.canvas.SelectAll("g"), n.Outer, seriesGeometry, nil, c.dur)}
	for _, part := range [][]reconcile.Entry[Series]{n.Outer.Enter, n.Outer.Update} {
		for _, e := range part {
			g := c.canvas.Child("g", e.Key)
			err := transition.Apply(g.SelectAll("rect"), n.Inner(e.Key), c.barGeometry(e.Next), barBaseline, c.dur)
			errs = append(errs, err)
		}
	}
	// Shrink the bars of removed series before their group goes.
	for _, e := range n.Outer.Exit {
		g := c.canvas.Child("g", e.Key)
		if g == nil {
			continue
		}
		exit := reconcile.Keyed(e.Prev.Data, nil, pointKey)
		errs = append(errs, transition.Apply(g.SelectAll("rect"), exit, c.barGeometry(e.Prev), barBaseline, c.dur))
	}
	return errors.Join(errs...)
}

func seriesGeometry(s Series) scene.Attrs {
	return scene.Attrs{
		"class":       scene.Str("series"),
		"data-series": scene.Str(s.ID),
	}
}

// barGeometry returns the geometry function for the bars of s.
//
// A point with no magnitude, or a zero magnitude, is a zero-height
// bar so it still takes part in the join.
func (c *Bar) barGeometry(s Series) func(Point) scene.Attrs {
	xs := c.state.X.Logical.(*scale.Ordinal)
	ys := c.state.Y.Logical
	band := xs.Bandwidth()
	w := band * barWidth
	fill := scene.Color(c.state.Colors.Color(s.ID))
	return func(p Point) scene.Attrs {
		h := 0.0
		if p.Y != nil && *p.Y != 0 {
			h = ys.Map(*p.Y)
		}
		return scene.Attrs{
			"x":      scene.Num(xs.Map(p.X) + band/2 - w/2),
			"width":  scene.Num(w),
			"y":      scene.Num(ys.Map(p.Y0)),
			"height": scene.Num(h),
			"fill":   fill,
		}
	}
}
