// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"image/color"

	"github.com/aclements/go-roundchart/scale"
)

// AxisConfig describes the domain of an axis.
type AxisConfig struct {
	// Domain is the sequence of categories of an ordinal axis, or
	// the [min, max] interval of a linear axis. It must not be
	// empty, and the categories of an ordinal axis must be
	// unique.
	Domain []interface{}

	// Range optionally relabels the categories of an ordinal
	// axis for display. If non-nil, it must be the same length
	// as Domain.
	Range []string

	// Formatter, if non-nil, formats tick values for display.
	Formatter func(interface{}) string
}

// linearDomain returns the interval of a linear axis: its first and
// last domain values.
func (a AxisConfig) linearDomain() ([2]float64, error) {
	if len(a.Domain) == 0 {
		return [2]float64{}, fmt.Errorf("%w: empty linear domain", scale.ErrInvalidConfig)
	}
	var d [2]float64
	for i, v := range []interface{}{a.Domain[0], a.Domain[len(a.Domain)-1]} {
		f, ok := scale.Float(v)
		if !ok {
			return [2]float64{}, fmt.Errorf("%w: non-numeric linear domain value %v", scale.ErrInvalidConfig, v)
		}
		d[i] = f
	}
	return d, nil
}

// A Point is one value of a series.
//
// Nil fields are missing values. A point with missing values stays in
// its series' keyed set, but is drawn as a zero-height bar or left out
// of a path.
type Point struct {
	// Key identifies the point within its series, such as the ID
	// of an investment round.
	Key string

	// X is the category of the point on an ordinal axis.
	X interface{}

	// Y0 is the baseline of a stacked bar and Y is its height.
	Y0 float64
	Y  *float64

	// Percentage and Value are the coordinates of a scatter
	// point.
	Percentage *float64
	Value      *float64
}

// F returns a pointer to v, for filling in the optional fields of a
// Point.
func F(v float64) *float64 {
	return &v
}

// A Series is a named, colored sequence of points for one entity.
type Series struct {
	ID    string
	Name  string
	Color color.RGBA
	Data  []Point
}

// A Dataset is a named collection of series.
type Dataset struct {
	Name   string
	Series []Series
}

// Datasets are the datasets of a timeline, by name.
type Datasets map[string]*Dataset

// PercentagesDataset is the name of the dataset whose series
// determine color assignment.
const PercentagesDataset = "percentages"

// A Measure is the data for the y axis of a timeline chart.
type Measure struct {
	YAxis  AxisConfig
	Series []Series
}

// A MeasureFunc selects a Measure from a timeline's datasets.
type MeasureFunc func(Datasets) Measure

// TimelineData is the payload of a TopicRoundTimeline event.
type TimelineData struct {
	XAxis      AxisConfig
	Datasets   Datasets
	GetMeasure MeasureFunc
}

// A Stake identifies the holder whose stake a scatter series tracks.
type Stake struct {
	ID   string
	Name string
}

// A ScatterSeries is one connected line of a scatter chart.
type ScatterSeries struct {
	Stake Stake
	Color color.RGBA
	Data  []Point
}

func (s ScatterSeries) series() Series {
	return Series{ID: s.Stake.ID, Name: s.Stake.Name, Color: s.Color, Data: s.Data}
}

// ScatterAxes configures the axes of a scatter chart.
type ScatterAxes struct {
	Percentage AxisConfig
	Value      AxisConfig
}

// ScatterData is the payload of a TopicScatter event.
type ScatterData struct {
	Axes   ScatterAxes
	Series []ScatterSeries
}

func seriesKey(s Series) string     { return s.ID }
func seriesPoints(s Series) []Point { return s.Data }
func pointKey(p Point) string       { return p.Key }
