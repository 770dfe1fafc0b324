// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command roundplot replays a script of chart events and writes the
// animation as a sequence of SVG frames.
//
// The script is YAML (or JSON) describing the surface, the kind of
// chart, and a list of events. For example,
//
//	width: 600
//	height: 300
//	chart: bar
//	events:
//	- type: timeline
//	  rounds: [seed, a]
//	  labels: [Seed, Series A]
//	  domains: {percentages: [0, 100]}
//	  datasets:
//	    percentages:
//	    - id: founders
//	      color: steelblue
//	      points: [{round: seed, y: 80}, {round: a, y: 60}]
//	    - id: investors
//	      points: [{round: seed, y: 20}, {round: a, y: 40}]
//	- type: selectMeasure
//	  measure: values
//
// Timeline events publish round timeline data, selectMeasure events
// switch a bar chart to another dataset of the last timeline, and
// scatter events publish percentage/value data. Bars with no y0 are
// stacked on the bars of earlier series in the same round. Axes with
// no domain are fit to the data.
//
// roundplot writes -frames frames per event, the last of which shows
// the settled chart, to files named by the -o prefix followed by the
// frame number.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/aclements/go-roundchart/scene"
)

func main() {
	log.SetPrefix("roundplot: ")
	log.SetFlags(0)

	var (
		flagCPUProfile = flag.String("cpuprofile", "", "write CPU profile to `file`")
		flagOut        = flag.String("o", "frame-", "write frames to files starting with `prefix`")
		flagFrames     = flag.Int("frames", 10, "write `n` frames per event")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [script]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 1 || *flagFrames < 1 {
		flag.Usage()
		os.Exit(2)
	}

	if *flagCPUProfile != "" {
		f, err := os.Create(*flagCPUProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	f := os.Stdin
	if flag.NArg() == 1 && flag.Arg(0) != "-" {
		var err error
		f, err = os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}
	script, err := ReadScript(f)
	if err != nil {
		log.Fatal(err)
	}

	n := 0
	emit := func(s *scene.Scene) error {
		name := fmt.Sprintf("%s%03d.svg", *flagOut, n)
		n++
		if err := writeFrame(name, s); err != nil {
			log.Fatal(err)
		}
		return nil
	}
	p, closeChart, err := newPlayer(script, *flagFrames, log.Default(), emit)
	if err != nil {
		log.Fatal(err)
	}
	defer closeChart()

	if err := p.play(script); err != nil {
		// Each failed event has already been logged.
		closeChart()
		pprof.StopCPUProfile()
		os.Exit(1)
	}
}

func writeFrame(name string, s *scene.Scene) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := s.WriteSVG(w); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
