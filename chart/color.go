// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import "image/color"

// Category10 is a ten-color qualitative palette.
var Category10 = []color.RGBA{
	{0x1f, 0x77, 0xb4, 0xff},
	{0xff, 0x7f, 0x0e, 0xff},
	{0x2c, 0xa0, 0x2c, 0xff},
	{0xd6, 0x27, 0x28, 0xff},
	{0x94, 0x67, 0xbd, 0xff},
	{0x8c, 0x56, 0x4b, 0xff},
	{0xe3, 0x77, 0xc2, 0xff},
	{0x7f, 0x7f, 0x7f, 0xff},
	{0xbc, 0xbd, 0x22, 0xff},
	{0x17, 0xbe, 0xcf, 0xff},
}

// A ColorMap assigns palette colors to series IDs.
//
// An ID keeps its color for the lifetime of the map, even if its
// series is absent from some redraws. New IDs take the next palette
// color in the order they are first seen, cycling through the
// palette.
type ColorMap struct {
	palette []color.RGBA
	byID    map[string]color.RGBA
}

// NewColorMap returns a ColorMap over palette. If palette is empty,
// it uses Category10.
func NewColorMap(palette []color.RGBA) *ColorMap {
	if len(palette) == 0 {
		palette = Category10
	}
	return &ColorMap{palette: palette, byID: make(map[string]color.RGBA)}
}

// Color returns the color of id, assigning one if needed.
func (m *ColorMap) Color(id string) color.RGBA {
	c, ok := m.byID[id]
	if !ok {
		c = m.palette[len(m.byID)%len(m.palette)]
		m.byID[id] = c
	}
	return c
}

// Lookup returns the color of id if it has been assigned.
func (m *ColorMap) Lookup(id string) (color.RGBA, bool) {
	c, ok := m.byID[id]
	return c, ok
}

// Len returns the number of assigned IDs.
func (m *ColorMap) Len() int {
	return len(m.byID)
}
