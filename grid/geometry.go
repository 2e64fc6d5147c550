// Copyright (c) 2025, Zendar. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"image/color"
	"strconv"

	"cogentcore.org/core/math32"
)

// LinePoints returns the grid line-list points for the given size and
// divisions: divisions+1 lines per axis, two axes, two endpoints per
// line, so exactly 4*(divisions+1) points, centered at the origin in
// the XY plane. Lines of constant X come first, then lines of
// constant Y, each axis in ascending coordinate order, so the point
// sequence is fully determined by the inputs.
// Divisions must be >= 1, which the settings clamp guarantees.
func LinePoints(size float32, divisions int) []math32.Vector3 {
	n := divisions + 1
	half := size / 2
	step := size / float32(divisions)
	pts := make([]math32.Vector3, 0, 4*n)
	for i := range n {
		x := -half + float32(i)*step
		pts = append(pts, math32.Vec3(x, -half, 0), math32.Vec3(x, half, 0))
	}
	for i := range n {
		y := -half + float32(i)*step
		pts = append(pts, math32.Vec3(-half, y, 0), math32.Vec3(half, y, 0))
	}
	return pts
}

// RangeLabel is one range marker: a text label at a position in the
// grid plane showing the distance of a grid line from the origin.
type RangeLabel struct {
	// Text is the rounded integer distance from the origin.
	Text string

	// Position is the label position in the grid's local frame.
	Position math32.Vector3

	// FontSize is the label font size in points.
	FontSize float32

	// Color is the label color.
	Color color.RGBA
}

// RangeLabels returns the range marker labels for the given settings:
// nothing when marker visibility is off, otherwise two labels per
// grid line (one per axis), 2*(divisions+1) in total. The marker
// anchor position in the settings places the labels: labels for lines
// of constant X sit at Y = anchor Y, and vice versa. Pure function of
// the settings; camera following is resolved by the caller before
// this is called, by rewriting the anchor position.
func RangeLabels(s LayerSettings) []RangeLabel {
	rm := s.RangeMarkers
	if !rm.Visible {
		return nil
	}
	n := s.Divisions + 1
	half := s.Size / 2
	step := s.Size / float32(s.Divisions)
	clr := parseColor(rm.FontColor)
	out := make([]RangeLabel, 0, 2*n)
	for i := range n {
		c := -half + float32(i)*step
		text := strconv.Itoa(int(math32.Round(math32.Abs(c))))
		out = append(out,
			RangeLabel{Text: text, Position: math32.Vec3(c, rm.Position[1], 0), FontSize: rm.FontSize, Color: clr},
			RangeLabel{Text: text, Position: math32.Vec3(rm.Position[0], c, 0), FontSize: rm.FontSize, Color: clr},
		)
	}
	return out
}
