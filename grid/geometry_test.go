// Copyright (c) 2025, Zendar. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"image/color"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestLinePointsCountAndBounds(t *testing.T) {
	cases := []struct {
		size      float32
		divisions int
	}{
		{10, 1},
		{10, 10},
		{1, 3},
		{250, 100},
		{10, MaxDivisions},
	}
	for _, c := range cases {
		pts := LinePoints(c.size, c.divisions)
		assert.Len(t, pts, 4*(c.divisions+1), "size=%v divisions=%v", c.size, c.divisions)
		half := c.size / 2
		for _, p := range pts {
			assert.LessOrEqual(t, math32.Abs(p.X), half+1e-3)
			assert.LessOrEqual(t, math32.Abs(p.Y), half+1e-3)
			assert.Equal(t, float32(0), p.Z)
		}
	}
}

func TestLinePointsDeterministic(t *testing.T) {
	a := LinePoints(25, 17)
	b := LinePoints(25, 17)
	assert.Equal(t, a, b)
}

func TestLinePointsSpacing(t *testing.T) {
	pts := LinePoints(10, 10)
	// first line is at x = -5, both endpoints spanning y
	assert.Equal(t, math32.Vec3(-5, -5, 0), pts[0])
	assert.Equal(t, math32.Vec3(-5, 5, 0), pts[1])
	// second line steps by size/divisions = 1
	assert.Equal(t, math32.Vec3(-4, -5, 0), pts[2])
	// constant-Y lines follow after the 2*(D+1) constant-X points
	assert.Equal(t, math32.Vec3(-5, -5, 0), pts[22])
	assert.Equal(t, math32.Vec3(5, -5, 0), pts[23])
}

func TestRangeLabelsHiddenIsEmpty(t *testing.T) {
	s := NewLayerSettings("a")
	s.RangeMarkers.Visible = false
	assert.Empty(t, RangeLabels(s))
}

func TestRangeLabelsCount(t *testing.T) {
	for _, d := range []int{1, 4, 10, 100} {
		s := NewLayerSettings("a")
		s.Divisions = d
		s.RangeMarkers.Visible = true
		assert.Len(t, RangeLabels(s), 2*(d+1), "divisions=%v", d)
	}
}

func TestRangeLabelsTextAndAnchor(t *testing.T) {
	s := NewLayerSettings("a")
	s.Size = 10
	s.Divisions = 10
	s.RangeMarkers.Visible = true
	s.RangeMarkers.Position = [2]float32{7, -7}

	labels := RangeLabels(s)
	// first pair is for the outermost line at -5: distance 5
	assert.Equal(t, "5", labels[0].Text)
	assert.Equal(t, math32.Vec3(-5, -7, 0), labels[0].Position)
	assert.Equal(t, math32.Vec3(7, -5, 0), labels[1].Position)
	// the center line has distance 0
	assert.Equal(t, "0", labels[10].Text)
}

func TestRangeLabelsColorFallback(t *testing.T) {
	s := NewLayerSettings("a")
	s.RangeMarkers.Visible = true
	s.RangeMarkers.FontColor = "not-a-color"
	labels := RangeLabels(s)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, labels[0].Color)
}
