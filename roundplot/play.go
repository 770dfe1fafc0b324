// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/aclements/go-roundchart/bus"
	"github.com/aclements/go-roundchart/chart"
	"github.com/aclements/go-roundchart/scene"
	"github.com/aclements/go-roundchart/transition"
)

// A player replays a script against a chart on a manually clocked
// scene, emitting frames as transitions progress.
type player struct {
	scene  *scene.Scene
	clock  *scene.ManualClock
	bus    *bus.Bus
	dur    time.Duration
	frames int
	logger *log.Logger

	// emit is called with the scene for each frame.
	emit func(*scene.Scene) error
}

var epoch = time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC)

func newPlayer(s *Script, frames int, logger *log.Logger, emit func(*scene.Scene) error) (*player, func(), error) {
	p := &player{
		clock:  scene.NewManualClock(epoch),
		bus:    bus.New(),
		dur:    s.Duration,
		frames: frames,
		logger: logger,
		emit:   emit,
	}
	if p.dur == 0 {
		p.dur = transition.DefaultDuration
	}
	p.scene = scene.New(s.Width, s.Height, p.clock)

	opts := chart.Options{Margin: s.Margin, Duration: s.Duration, Logger: logger}
	var closeChart func()
	switch s.Chart {
	case "", "bar":
		c, err := chart.NewBar(p.bus, p.scene.Root(), opts)
		if err != nil {
			return nil, nil, err
		}
		closeChart = c.Close
	case "scatter":
		c, err := chart.NewScatter(p.bus, p.scene.Root(), opts)
		if err != nil {
			return nil, nil, err
		}
		closeChart = c.Close
	default:
		return nil, nil, fmt.Errorf("unknown chart kind %q", s.Chart)
	}
	return p, closeChart, nil
}

// play publishes each event of s in turn and emits the frames of the
// resulting transitions. Errors from individual events are logged and
// don't stop the script; play returns them all. An error from emit
// stops the script.
func (p *player) play(s *Script) error {
	var errs []error
	var domains map[string][]float64
	for i := range s.Events {
		e := &s.Events[i]
		if err := p.publish(e, &domains); err != nil {
			errs = append(errs, fmt.Errorf("event %d (%s): %w", i, e.Type, err))
		}
		if err := p.run(); err != nil {
			return errors.Join(append(errs, err)...)
		}
	}
	return errors.Join(errs...)
}

func (p *player) publish(e *Event, domains *map[string][]float64) error {
	switch e.Type {
	case "timeline":
		d, err := e.Timeline()
		if err != nil {
			p.logger.Print(err)
			return err
		}
		*domains = e.Domains
		return p.bus.Publish(chart.TopicRoundTimeline, d)
	case "selectMeasure":
		doms := e.Domains
		if doms == nil {
			doms = *domains
		}
		return p.bus.Publish(chart.TopicSelectMeasure, e.MeasureFunc(doms))
	case "scatter":
		d, err := e.Scatter()
		if err != nil {
			p.logger.Print(err)
			return err
		}
		return p.bus.Publish(chart.TopicScatter, d)
	}
	return fmt.Errorf("unknown event type %q", e.Type)
}

// run steps the clock through the running transitions, emitting
// p.frames evenly spaced frames, and then emits the settled scene.
func (p *player) run() error {
	if p.frames > 0 && p.dur > 0 && p.scene.Active() > 0 {
		step := p.dur / time.Duration(p.frames)
		for i := 0; i < p.frames-1; i++ {
			p.clock.Advance(step)
			p.scene.Tick()
			if err := p.emit(p.scene); err != nil {
				return err
			}
		}
	}
	p.scene.Settle(p.clock)
	return p.emit(p.scene)
}
