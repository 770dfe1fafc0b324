// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"
	"math"

	"github.com/aclements/go-gg/gg"
)

// Ordinal is a band scale. It divides its output range into
// len(domain) equal bands and maps each category to the start of
// its band.
//
// Padding is the fraction of each step left as a gap between bands.
// The same gap is left before the first band and after the last.
type Ordinal struct {
	domain  []interface{}
	index   map[string]int
	lo, hi  float64
	padding float64
	r       gg.ContinuousRanger

	step, band float64
}

// NewOrdinal returns a band scale over domain spanning rng. padding
// must be in [0, 1).
//
// The width of rng is |rng[1]-rng[0]|, which must be non-zero and
// finite. rng may run high to low, in which case the bands do too.
//
// Categories are identified by their fmt.Sprint form, so 1 and "1"
// are the same category.
func NewOrdinal(domain []interface{}, rng [2]float64, padding float64) (*Ordinal, error) {
	if len(domain) == 0 {
		return nil, invalidf("empty ordinal domain")
	}
	if err := checkRange(rng); err != nil {
		return nil, err
	}
	if !(padding >= 0 && padding < 1) {
		return nil, invalidf("padding %g not in [0, 1)", padding)
	}
	s := &Ordinal{
		domain:  append([]interface{}(nil), domain...),
		index:   make(map[string]int, len(domain)),
		lo:      rng[0],
		hi:      rng[1],
		padding: padding,
		r:       gg.NewFloatRanger(rng[0], rng[1]),
	}
	for i, v := range domain {
		k := fmt.Sprint(v)
		if _, ok := s.index[k]; ok {
			return nil, invalidf("duplicate ordinal category %q", k)
		}
		s.index[k] = i
	}

	// Step and band are fractions of the range. They depend only
	// on the number of categories and the padding.
	n := float64(len(domain))
	s.step = 1 / (n - padding + 2*padding)
	s.band = s.step * (1 - padding)
	return s, nil
}

// Map returns the start of v's band, or NaN if v is not a category
// of s.
func (s *Ordinal) Map(v interface{}) float64 {
	i, ok := s.index[fmt.Sprint(v)]
	if !ok {
		return math.NaN()
	}
	return s.r.Map(s.step*s.padding + s.step*float64(i)).(float64)
}

// Bandwidth returns the width of each band in output units.
func (s *Ordinal) Bandwidth() float64 {
	return s.band * math.Abs(s.hi-s.lo)
}

// Step returns the distance between the starts of consecutive bands.
func (s *Ordinal) Step() float64 {
	return s.step * math.Abs(s.hi-s.lo)
}

func (s *Ordinal) Range() (lo, hi float64) {
	return s.lo, s.hi
}

// Domain returns the categories of s in order.
func (s *Ordinal) Domain() []interface{} {
	return s.domain
}

// Ticks returns one tick per category, positioned at the center of
// its band.
func (s *Ordinal) Ticks(max int, format func(interface{}) string) []Tick {
	ticks := make([]Tick, len(s.domain))
	half := s.Bandwidth() / 2
	if s.hi < s.lo {
		half = -half
	}
	for i, v := range s.domain {
		label := fmt.Sprint(v)
		if format != nil {
			label = format(v)
		}
		ticks[i] = Tick{v, s.Map(v) + half, label}
	}
	return ticks
}

// NewOrdinalPair returns a Pair of band scales over rng. The logical
// scale is over domain; the output scale is over labels, which
// relabel the categories for display. If labels is nil, the output
// scale is the logical scale. Otherwise labels must have the same
// length as domain.
func NewOrdinalPair(domain []interface{}, labels []string, rng [2]float64, padding float64) (Pair, error) {
	logical, err := NewOrdinal(domain, rng, padding)
	if err != nil {
		return Pair{}, err
	}
	if labels == nil {
		return Pair{logical, logical}, nil
	}
	if len(labels) != len(domain) {
		return Pair{}, invalidf("%d labels for %d categories", len(labels), len(domain))
	}
	ldomain := make([]interface{}, len(labels))
	for i, l := range labels {
		ldomain[i] = l
	}
	output, err := NewOrdinal(ldomain, rng, padding)
	if err != nil {
		return Pair{}, err
	}
	return Pair{logical, output}, nil
}

// checkRange checks that rng has a non-zero, finite width
// |rng[1]-rng[0]|. Reversed ranges are allowed.
func checkRange(rng [2]float64) error {
	w := rng[1] - rng[0]
	if math.IsNaN(w) || math.IsInf(w, 0) || w == 0 {
		return invalidf("range [%g, %g] has no width", rng[0], rng[1])
	}
	return nil
}
