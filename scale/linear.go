// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"
	"math"

	"github.com/aclements/go-gg/gg"
	mscale "github.com/aclements/go-moremath/scale"
)

// Linear maps a continuous numeric interval onto an output range.
//
// The domain may be given in either order. A domain given high to
// low maps its first value to the start of the output range, so the
// scale reads in reverse.
type Linear struct {
	// s always has s.Min <= s.Max.
	s        mscale.Linear
	reversed bool

	lo, hi float64
	r      gg.ContinuousRanger
}

// NewLinear returns a linear scale from domain to rng.
//
// The width of rng is |rng[1]-rng[0]|, which must be non-zero and
// finite. A range given high to low, such as [height, 0] for a y
// axis, is allowed.
//
// If niceStep is non-zero, the domain is rounded outward to the
// nearest multiples of niceStep so axis ticks land on round numbers.
func NewLinear(domain [2]float64, rng [2]float64, niceStep float64) (*Linear, error) {
	for _, d := range domain {
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return nil, invalidf("domain [%g, %g] is not finite", domain[0], domain[1])
		}
	}
	if err := checkRange(rng); err != nil {
		return nil, err
	}
	if !(niceStep >= 0) || math.IsInf(niceStep, 0) {
		return nil, invalidf("bad nice step %g", niceStep)
	}

	min, max, reversed := domain[0], domain[1], false
	if min > max {
		min, max, reversed = max, min, true
	}
	if niceStep > 0 {
		min = math.Floor(min/niceStep) * niceStep
		max = math.Ceil(max/niceStep) * niceStep
	}
	return &Linear{
		s:        mscale.Linear{Min: min, Max: max},
		reversed: reversed,
		lo:       rng[0],
		hi:       rng[1],
		r:        gg.NewFloatRanger(rng[0], rng[1]),
	}, nil
}

// Map returns the position of the number v, or NaN if v is not a
// number.
func (s *Linear) Map(v interface{}) float64 {
	x, ok := Float(v)
	if !ok {
		return math.NaN()
	}
	return s.MapFloat(x)
}

// MapFloat returns the position of x. Values outside the domain
// extrapolate beyond the output range.
func (s *Linear) MapFloat(x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}
	var f float64
	if s.s.Min != s.s.Max {
		f = s.s.Map(x)
	}
	if s.reversed {
		f = 1 - f
	}
	return s.r.Map(f).(float64)
}

// Invert maps a position in the output range back to the domain.
func (s *Linear) Invert(pos float64) float64 {
	f, ok := s.r.Unmap(pos)
	if !ok {
		return math.NaN()
	}
	if s.reversed {
		f = 1 - f
	}
	return s.s.Min + f*(s.s.Max-s.s.Min)
}

// Domain returns the domain of s in the order it maps to the output
// range.
func (s *Linear) Domain() (d0, d1 float64) {
	if s.reversed {
		return s.s.Max, s.s.Min
	}
	return s.s.Min, s.s.Max
}

func (s *Linear) Range() (lo, hi float64) {
	return s.lo, s.hi
}

// Nice expands the domain of s outward to round values such that
// there are at most maxTicks major ticks.
func (s *Linear) Nice(maxTicks int) {
	if s.s.Min == s.s.Max || maxTicks < 1 {
		return
	}
	s.s.Nice(mscale.TickOptions{Max: maxTicks})
}

// Reversed returns a copy of s with its domain order reversed and
// the same output range.
func (s *Linear) Reversed() *Linear {
	s2 := *s
	s2.reversed = !s.reversed
	return &s2
}

// Ticks returns at most max ticks in increasing domain order. If
// format is nil, values are formatted with %.6g.
func (s *Linear) Ticks(max int, format func(interface{}) string) []Tick {
	var major []float64
	if s.s.Min == s.s.Max {
		major = []float64{s.s.Min}
	} else {
		major, _ = s.s.Ticks(mscale.TickOptions{Max: max})
	}
	ticks := make([]Tick, 0, len(major))
	for _, x := range major {
		label := fmt.Sprintf("%.6g", x)
		if format != nil {
			label = format(x)
		}
		ticks = append(ticks, Tick{x, s.MapFloat(x), label})
	}
	return ticks
}

// NewLinearPair returns a Pair of linear scales from domain to rng.
//
// If flipped is true, the output scale has the domain reversed. Use
// this for charts drawn in a group whose vertical axis is flipped:
// shapes placed with the logical scale grow up from the baseline,
// while labels drawn outside the flipped group with the output scale
// still read in increasing data order.
func NewLinearPair(domain [2]float64, rng [2]float64, niceStep float64, flipped bool) (Pair, error) {
	logical, err := NewLinear(domain, rng, niceStep)
	if err != nil {
		return Pair{}, err
	}
	if !flipped {
		return Pair{logical, logical}, nil
	}
	return Pair{logical, logical.Reversed()}, nil
}
