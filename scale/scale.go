// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale computes the scales that map abstract data domains
// to visual coordinates.
//
// There are two kinds of scale. An Ordinal scale divides an output
// range into equal bands, one per category. A Linear scale maps a
// numeric interval onto an output range.
//
// Charts usually need scales in pairs. A Pair holds a logical scale,
// which places geometry, and an output scale, which labels the axis.
// Both share the same output range, but the output scale may relabel
// or reverse the domain. This is how a chart drawn in a y-flipped
// group still gets axis labels that read in increasing data order.
package scale

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a scale cannot be constructed
// from its domain and range.
var ErrInvalidConfig = errors.New("invalid scale config")

// A Scale maps values in its domain to positions in its output
// range.
type Scale interface {
	// Map returns the position of v in the output range, or NaN
	// if v is not in (or cannot be converted to) the domain.
	Map(v interface{}) float64

	// Range returns the output range, in the order it was
	// given.
	Range() (lo, hi float64)

	// Ticks returns at most max ticks for labeling an axis
	// drawn with this scale. Ordinal scales ignore max and
	// return one tick per category.
	Ticks(max int, format func(interface{}) string) []Tick
}

// A Tick is a labeled position on an axis.
type Tick struct {
	Value interface{}
	Pos   float64
	Label string
}

// Pair is a logical scale and the output scale used to label it.
// Geometry is placed with Logical; axes read Output. The two always
// share the same output range and are recomputed together.
type Pair struct {
	Logical Scale
	Output  Scale
}

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Float converts a numeric domain value to float64. It reports false
// if v is not a number.
func Float(v interface{}) (float64, bool) {
	switch v := v.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	return 0, false
}
