// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/aclements/go-roundchart/chart"
	"github.com/aclements/go-roundchart/scene"
)

const barScript = `
width: 470
height: 230
chart: bar
duration: 500ms
events:
- type: timeline
  rounds: [seed, a]
  labels: [Seed, Series A]
  domains: {percentages: [0, 100]}
  datasets:
    percentages:
    - id: founders
      color: steelblue
      points: [{round: seed, y: 80}, {round: a, y: 60}]
    - id: investors
      points: [{round: seed, y: 20}, {round: a, y: 40}]
    values:
    - id: founders
      points: [{round: seed, y: 800}, {round: a, y: 1200}]
- type: selectMeasure
  measure: values
`

func TestReadScript(t *testing.T) {
	s, err := ReadScript(strings.NewReader(barScript))
	if err != nil {
		t.Fatal(err)
	}
	if s.Width != 470 || s.Chart != "bar" || s.Duration != 500*time.Millisecond || len(s.Events) != 2 {
		t.Fatalf("got %+v", s)
	}

	d, err := s.Events[0].Timeline()
	if err != nil {
		t.Fatal(err)
	}
	if got := d.XAxis.Domain; len(got) != 2 || got[0] != "seed" {
		t.Errorf("got rounds %v, want [seed a]", got)
	}
	pct := d.Datasets["percentages"].Series
	if len(pct) != 2 {
		t.Fatalf("got %d series, want 2", len(pct))
	}
	if want, _ := scene.ParseColor("steelblue"); pct[0].Color != want {
		t.Errorf("got color %v, want steelblue", pct[0].Color)
	}
	if pct[1].Name != "investors" {
		t.Errorf("got name %q, want id", pct[1].Name)
	}
	// Investors stack on founders.
	for i, want := range []float64{80, 60} {
		if got := pct[1].Data[i].Y0; got != want {
			t.Errorf("round %d: got y0 %v, want %v", i, got, want)
		}
	}

	m := d.GetMeasure(d.Datasets)
	if got := m.YAxis.Domain; len(got) != 2 || got[0] != 0.0 || got[1] != 100.0 {
		t.Errorf("got y domain %v, want [0 100]", got)
	}
	m = s.Events[1].MeasureFunc(nil)(d.Datasets)
	if got := m.YAxis.Domain; len(got) != 2 || got[0] != 0.0 || got[1] != 1200.0 {
		t.Errorf("got fitted y domain %v, want [0 1200]", got)
	}
}

func TestReadScriptErrors(t *testing.T) {
	for _, test := range []struct{ name, script string }{
		{"size", "width: 0\nheight: 10\n"},
		{"chart", "width: 10\nheight: 10\nchart: pie\n"},
		{"event", "width: 10\nheight: 10\nevents: [{type: explode}]\n"},
		{"field", "width: 10\nheight: 10\ncolour: red\n"},
		{"syntax", "width: [10\n"},
	} {
		if _, err := ReadScript(strings.NewReader(test.script)); err == nil {
			t.Errorf("%s: got no error", test.name)
		}
	}

	e := Event{Type: "timeline", Datasets: map[string][]ScriptSeries{
		"percentages": {{ID: "x", Color: "not-a-color"}},
	}}
	if _, err := e.Timeline(); err == nil {
		t.Errorf("bad color accepted")
	}
}

func TestScatterEvent(t *testing.T) {
	e := Event{Type: "scatter", Series: []ScriptSeries{
		{ID: "a", Name: "Alice", Points: []ScriptPoint{
			{Round: "seed", Percentage: chart.F(50), Value: chart.F(-10)},
			{Round: "a", Percentage: chart.F(25), Value: chart.F(300)},
		}},
	}}
	d, err := e.Scatter()
	if err != nil {
		t.Fatal(err)
	}
	if got := d.Axes.Value.Domain; got[0] != -10.0 || got[1] != 300.0 {
		t.Errorf("got value domain %v, want [-10 300]", got)
	}
	if got := d.Axes.Percentage.Domain; got[0] != 0.0 || got[1] != 100.0 {
		t.Errorf("got percentage domain %v, want [0 100]", got)
	}
	if s := d.Series[0]; s.Stake.ID != "a" || s.Stake.Name != "Alice" || len(s.Data) != 2 {
		t.Errorf("got series %+v", s)
	}
	if d.Series[0].Data[0].Y0 != 0 {
		t.Errorf("scatter points were stacked")
	}
}

func TestPlay(t *testing.T) {
	s, err := ReadScript(strings.NewReader(barScript))
	if err != nil {
		t.Fatal(err)
	}
	var frames []string
	emit := func(sc *scene.Scene) error {
		var buf bytes.Buffer
		if err := sc.WriteSVG(&buf); err != nil {
			return err
		}
		frames = append(frames, buf.String())
		return nil
	}
	var logBuf bytes.Buffer
	p, closeChart, err := newPlayer(s, 4, log.New(&logBuf, "", 0), emit)
	if err != nil {
		t.Fatal(err)
	}
	defer closeChart()
	if err := p.play(s); err != nil {
		t.Fatalf("play: %v\n%s", err, logBuf.String())
	}
	if len(frames) != 8 {
		t.Fatalf("got %d frames, want 8", len(frames))
	}
	last := frames[len(frames)-1]
	if !strings.Contains(last, "<svg") || !strings.Contains(last, "Series A") {
		t.Errorf("final frame missing chart:\n%s", last)
	}
	if frames[0] == frames[3] {
		t.Errorf("frames did not change during the transition")
	}
}

func TestPlayBadEvent(t *testing.T) {
	s, err := ReadScript(strings.NewReader(`
width: 470
height: 230
duration: -1s
events:
- type: selectMeasure
- type: timeline
  rounds: [seed]
  datasets:
    percentages:
    - id: x
      points: [{round: seed, y: 1}]
`))
	if err != nil {
		t.Fatal(err)
	}
	n := 0
	p, closeChart, err := newPlayer(s, 3, log.New(io.Discard, "", 0), func(*scene.Scene) error {
		n++
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	defer closeChart()
	if err := p.play(s); err == nil {
		t.Errorf("selectMeasure before timeline succeeded")
	}
	// Without animation, each event is a single frame.
	if n != 2 {
		t.Errorf("got %d frames, want 2", n)
	}
}

func TestScriptMargin(t *testing.T) {
	s, err := ReadScript(strings.NewReader("width: 100\nheight: 100\nmargin: {left: 0, top: 5}\n"))
	if err != nil {
		t.Fatal(err)
	}
	m := s.Margin
	if m.Left == nil || *m.Left != 0 || m.Top == nil || *m.Top != 5 {
		t.Errorf("got margin left %v top %v, want 0 and 5", m.Left, m.Top)
	}
	if m.Right != nil || m.Bottom != nil {
		t.Errorf("unset sides decoded as %v, %v, want nil", m.Right, m.Bottom)
	}
	if _, _, err := newPlayer(s, 1, log.New(io.Discard, "", 0), func(*scene.Scene) error { return nil }); err != nil {
		t.Errorf("newPlayer: %v", err)
	}
}
