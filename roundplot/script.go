// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-roundchart/chart"
	"github.com/aclements/go-roundchart/scene"
	"gopkg.in/yaml.v3"
)

// A Script is a sequence of chart events to replay.
type Script struct {
	Width    int           `yaml:"width"`
	Height   int           `yaml:"height"`
	Chart    string        `yaml:"chart"` // "bar" or "scatter"
	Duration time.Duration `yaml:"duration"`
	Margin   chart.Margins `yaml:"margin"`
	Events   []Event       `yaml:"events"`
}

// An Event is one bus event. Type selects which of the other fields
// apply.
type Event struct {
	Type string `yaml:"type"` // "timeline", "selectMeasure", or "scatter"

	// Timeline events.
	Rounds   []string                  `yaml:"rounds"`
	Labels   []string                  `yaml:"labels"`
	Datasets map[string][]ScriptSeries `yaml:"datasets"`
	Domains  map[string][]float64      `yaml:"domains"`

	// Timeline and selectMeasure events. Measure names the
	// dataset to plot; it defaults to "percentages".
	Measure string `yaml:"measure"`

	// Scatter events.
	PercentageDomain []float64      `yaml:"percentage_domain"`
	ValueDomain      []float64      `yaml:"value_domain"`
	Series           []ScriptSeries `yaml:"series"`
}

// A ScriptSeries is one series of a timeline dataset or scatter chart.
type ScriptSeries struct {
	ID     string        `yaml:"id"`
	Name   string        `yaml:"name"`
	Color  string        `yaml:"color"`
	Points []ScriptPoint `yaml:"points"`
}

// A ScriptPoint is one point of a series. Round keys the point. Missing
// fields are left nil, except that a missing Y0 is stacked on the
// series before it.
type ScriptPoint struct {
	Round      string   `yaml:"round"`
	Y0         *float64 `yaml:"y0"`
	Y          *float64 `yaml:"y"`
	Percentage *float64 `yaml:"percentage"`
	Value      *float64 `yaml:"value"`
}

// ReadScript decodes a YAML or JSON script from r.
func ReadScript(r io.Reader) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding script: %w", err)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("script size %dx%d must be positive", s.Width, s.Height)
	}
	switch s.Chart {
	case "", "bar", "scatter":
	default:
		return nil, fmt.Errorf("unknown chart kind %q", s.Chart)
	}
	for i, e := range s.Events {
		switch e.Type {
		case "timeline", "selectMeasure", "scatter":
		default:
			return nil, fmt.Errorf("event %d: unknown type %q", i, e.Type)
		}
	}
	return &s, nil
}

func (e *Event) measure() string {
	if e.Measure == "" {
		return chart.PercentagesDataset
	}
	return e.Measure
}

// Timeline returns the payload of a timeline event.
func (e *Event) Timeline() (*chart.TimelineData, error) {
	d := &chart.TimelineData{
		XAxis:    chart.AxisConfig{Domain: make([]interface{}, len(e.Rounds)), Range: e.Labels},
		Datasets: make(chart.Datasets),
	}
	for i, r := range e.Rounds {
		d.XAxis.Domain[i] = r
	}
	for name, defs := range e.Datasets {
		series, err := convertSeries(defs, true)
		if err != nil {
			return nil, fmt.Errorf("dataset %s: %w", name, err)
		}
		d.Datasets[name] = &chart.Dataset{Name: name, Series: series}
	}
	d.GetMeasure = e.MeasureFunc(e.Domains)
	return d, nil
}

// MeasureFunc returns a function that selects e's measure. The y
// domain of the measure comes from domains, or from the bounds of the
// stacked data if domains does not name it.
func (e *Event) MeasureFunc(domains map[string][]float64) chart.MeasureFunc {
	name := e.measure()
	return func(ds chart.Datasets) chart.Measure {
		var m chart.Measure
		if d := ds[name]; d != nil {
			m.Series = d.Series
		}
		if dom, ok := domains[name]; ok {
			m.YAxis.Domain = floats(dom)
		} else {
			m.YAxis.Domain = floats(stackBounds(m.Series))
		}
		return m
	}
}

// Scatter returns the payload of a scatter event.
func (e *Event) Scatter() (*chart.ScatterData, error) {
	series, err := convertSeries(e.Series, false)
	if err != nil {
		return nil, err
	}
	d := &chart.ScatterData{
		Axes: chart.ScatterAxes{
			Percentage: chart.AxisConfig{Domain: floats(e.PercentageDomain)},
			Value:      chart.AxisConfig{Domain: floats(e.ValueDomain)},
		},
	}
	if e.PercentageDomain == nil {
		d.Axes.Percentage.Domain = []interface{}{0.0, 100.0}
	}
	var values []float64
	for _, s := range series {
		for _, p := range s.Data {
			if p.Value != nil {
				values = append(values, *p.Value)
			}
		}
		d.Series = append(d.Series, chart.ScatterSeries{
			Stake: chart.Stake{ID: s.ID, Name: s.Name},
			Color: s.Color,
			Data:  s.Data,
		})
	}
	if e.ValueDomain == nil {
		lo, hi := stats.Bounds(values)
		d.Axes.Value.Domain = floats(zeroBased(lo, hi))
	}
	return d, nil
}

// convertSeries converts series defs into chart series. If stack is
// true, points with no y0 are stacked on the points of the same round
// in earlier series.
func convertSeries(defs []ScriptSeries, stack bool) ([]chart.Series, error) {
	top := make(map[string]float64)
	var out []chart.Series
	for _, def := range defs {
		s := chart.Series{ID: def.ID, Name: def.Name}
		if s.Name == "" {
			s.Name = s.ID
		}
		if def.Color != "" {
			c, err := scene.ParseColor(def.Color)
			if err != nil {
				return nil, fmt.Errorf("series %s: %w", def.ID, err)
			}
			s.Color = c
		}
		for _, ps := range def.Points {
			p := chart.Point{
				Key:        ps.Round,
				X:          ps.Round,
				Y:          ps.Y,
				Percentage: ps.Percentage,
				Value:      ps.Value,
			}
			if ps.Y0 != nil {
				p.Y0 = *ps.Y0
			} else if stack {
				p.Y0 = top[ps.Round]
			}
			if stack && ps.Y != nil {
				top[ps.Round] = p.Y0 + *ps.Y
			}
			s.Data = append(s.Data, p)
		}
		out = append(out, s)
	}
	return out, nil
}

// stackBounds returns a y domain that covers every bar in series and
// includes zero.
func stackBounds(series []chart.Series) []float64 {
	var ys []float64
	for _, s := range series {
		for _, p := range s.Data {
			ys = append(ys, p.Y0)
			if p.Y != nil {
				ys = append(ys, p.Y0+*p.Y)
			}
		}
	}
	return zeroBased(stats.Bounds(ys))
}

func zeroBased(lo, hi float64) []float64 {
	if math.IsNaN(lo) {
		return []float64{0, 1}
	}
	lo, hi = math.Min(lo, 0), math.Max(hi, 0)
	if lo == hi {
		hi = lo + 1
	}
	return []float64{lo, hi}
}

func floats(xs []float64) []interface{} {
	if xs == nil {
		return nil
	}
	out := make([]interface{}, len(xs))
	for i, x := range xs {
		out[i] = x
	}
	return out
}
