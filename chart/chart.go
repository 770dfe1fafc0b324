// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart renders round timelines and percentage/value scatter
// plots into a scene, animating between successive data sets.
//
// A renderer subscribes to a bus when it is constructed. Each event
// it receives recomputes its scales, joins the new data against the
// data it last drew, and starts transitions that move the scene from
// the old geometry to the new. Bar charts key series by ID and bars
// by round; scatter charts key each series' line by stake.
//
// Errors in one event are logged and returned to the bus. The
// renderer keeps the scales it last computed successfully, so the next
// good event draws normally.
package chart

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/aclements/go-roundchart/scale"
	"github.com/aclements/go-roundchart/scene"
	"github.com/aclements/go-roundchart/transition"
)

// Bus topics that renderers subscribe to.
const (
	TopicRoundTimeline = "roundTimelineData"
	TopicSelectMeasure = "selectMeasure"
	TopicScatter       = "percentValueScatterData"
)

var (
	// ErrInvalidSurface is returned when a renderer's surface
	// does not exist.
	ErrInvalidSurface = errors.New("invalid surface")

	// ErrInvalidSurfaceDimensions is returned when a surface's
	// width or height is not a positive integer, or the margins
	// leave no room for the chart.
	ErrInvalidSurfaceDimensions = errors.New("invalid surface dimensions")

	errNoTimeline = errors.New("no timeline data")
)

// Margin is the space around a chart's plot area, in pixels.
type Margin struct {
	Left, Right, Top, Bottom float64
}

// DefaultMargin leaves room for axis labels on the left and bottom.
var DefaultMargin = Margin{Left: 60, Right: 10, Top: 10, Bottom: 20}

// Area is the size of a plot area, in pixels.
type Area struct {
	Width, Height float64
}

// Margins overrides some sides of DefaultMargin. A nil side takes its
// default, so an explicit zero margin is F(0).
type Margins struct {
	Left, Right, Top, Bottom *float64
}

func (m Margins) resolve() Margin {
	out := DefaultMargin
	for _, side := range []struct {
		v   *float64
		dst *float64
	}{{m.Left, &out.Left}, {m.Right, &out.Right}, {m.Top, &out.Top}, {m.Bottom, &out.Bottom}} {
		if side.v != nil {
			*side.dst = *side.v
		}
	}
	return out
}

// Options configure a renderer.
type Options struct {
	// Margin is the space around the plot area. Sides left nil
	// take their value from DefaultMargin.
	Margin Margins

	// ChartArea is the size of the plot area. A zero Width or
	// Height, or a nil ChartArea, is filled in from the surface
	// size minus the margins.
	ChartArea *Area

	// Duration is the length of each transition. If zero, it
	// defaults to transition.DefaultDuration. If negative,
	// changes are not animated.
	Duration time.Duration

	// Logger reports errors from event handlers. If nil, errors
	// are logged to standard error.
	Logger *log.Logger
}

// RenderState is the state a renderer carries from one redraw to the
// next. It belongs to a single renderer.
type RenderState struct {
	// Timeline is the last timeline payload. Measure selection
	// events reuse its datasets.
	Timeline *TimelineData

	// Series is the data of the last redraw, which the next
	// redraw is joined against.
	Series []Series

	// X and Y are the last successfully computed scales.
	X, Y scale.Pair

	// Colors assigns series colors for the life of the renderer.
	Colors *ColorMap
}

// frame is the validated layout of a renderer on its surface.
type frame struct {
	surface *scene.Node
	margin  Margin
	area    Area
	dur     time.Duration
	logger  *log.Logger
}

func newFrame(surface *scene.Node, opts Options) (*frame, error) {
	if surface == nil || surface.Removed() {
		return nil, ErrInvalidSurface
	}
	w, err := dimension(surface, "width")
	if err != nil {
		return nil, err
	}
	h, err := dimension(surface, "height")
	if err != nil {
		return nil, err
	}

	f := &frame{
		surface: surface,
		margin:  opts.Margin.resolve(),
		dur:     opts.Duration,
		logger:  opts.Logger,
	}
	if opts.ChartArea != nil {
		f.area = *opts.ChartArea
	}
	if f.area.Width == 0 {
		f.area.Width = float64(w) - f.margin.Left - f.margin.Right
	}
	if f.area.Height == 0 {
		f.area.Height = float64(h) - f.margin.Top - f.margin.Bottom
	}
	if !(f.area.Width > 0 && f.area.Height > 0) {
		return nil, fmt.Errorf("%w: chart area %gx%g", ErrInvalidSurfaceDimensions, f.area.Width, f.area.Height)
	}
	if f.dur == 0 {
		f.dur = transition.DefaultDuration
	} else if f.dur < 0 {
		f.dur = 0
	}
	if f.logger == nil {
		f.logger = log.New(os.Stderr, "chart: ", 0)
	}
	return f, nil
}

// dimension returns the named attribute of surface as a positive
// integer. Like parseInt, it truncates any fractional part.
func dimension(surface *scene.Node, name string) (int, error) {
	var v float64
	switch a := surface.Get(name).(type) {
	case scene.Num:
		v = float64(a)
	case scene.Str:
		f, err := strconv.ParseFloat(string(a), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s %q", ErrInvalidSurfaceDimensions, name, string(a))
		}
		v = f
	case nil:
		return 0, fmt.Errorf("%w: no %s", ErrInvalidSurfaceDimensions, name)
	default:
		return 0, fmt.Errorf("%w: %s is %v", ErrInvalidSurfaceDimensions, name, a)
	}
	if !(v >= 1) || v > 1<<30 {
		return 0, fmt.Errorf("%w: %s %v", ErrInvalidSurfaceDimensions, name, v)
	}
	return int(v), nil
}

func (f *frame) translate(x, y float64) scene.Str {
	return scene.Str(fmt.Sprintf("translate(%.6g,%.6g)", x, y))
}

// report logs err, if any, and returns it.
func (f *frame) report(err error) error {
	if err != nil {
		f.logger.Print(err)
	}
	return err
}
