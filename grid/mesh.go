// Copyright (c) 2025, Zendar. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"image/color"
	"slices"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
)

// linesMesh renders a list of line segments as flat quads of a given
// width in the XY plane, with per-vertex colors. Points come in
// pairs: start, end, start, end. Updating the points and re-setting
// the mesh on the scene replaces the geometry in place.
type linesMesh struct {
	xyz.MeshBase

	// points are the segment endpoints, in pairs.
	points []math32.Vector3

	// width is the quad width in world units.
	width float32

	// color is the uniform vertex color, normalized RGBA.
	color math32.Vector4
}

func newLinesMesh(name string) *linesMesh {
	lm := &linesMesh{}
	lm.Name = name
	lm.HasColor = true
	return lm
}

// setLines replaces the segment points, width, and color.
func (lm *linesMesh) setLines(points []math32.Vector3, width float32, clr color.RGBA) {
	lm.points = slices.Clone(points)
	lm.width = width
	lm.color = math32.Vec4(
		float32(clr.R)/255,
		float32(clr.G)/255,
		float32(clr.B)/255,
		float32(clr.A)/255,
	)
	lm.Transparent = clr.A < 255
}

func (lm *linesMesh) MeshSize() (numVertex, numIndex int, hasColor bool) {
	segs := len(lm.points) / 2
	lm.NumVertex = 4 * segs
	lm.NumIndex = 6 * segs
	lm.HasColor = true
	return lm.NumVertex, lm.NumIndex, true
}

func (lm *linesMesh) Set(vertex, normal, texcoord, clrs math32.ArrayF32, index math32.ArrayU32) {
	segs := len(lm.points) / 2
	hw := lm.width / 2
	up := math32.Vec3(0, 0, 1)
	bb := math32.Box3{}
	bb.SetEmpty()
	for si := range segs {
		p0 := lm.points[2*si]
		p1 := lm.points[2*si+1]
		dir := p1.Sub(p0).Normal()
		perp := math32.Vec3(-dir.Y, dir.X, 0).MulScalar(hw)
		corners := [4]math32.Vector3{
			p0.Sub(perp), p0.Add(perp), p1.Add(perp), p1.Sub(perp),
		}
		vi := si * 4
		for ci, pt := range corners {
			vertex.SetVector3((vi+ci)*3, pt)
			normal.SetVector3((vi+ci)*3, up)
			clrs.SetVector4((vi+ci)*4, lm.color)
			bb.ExpandByPoint(pt)
		}
		texcoord.Set(vi*2, 0, 0, 1, 0, 1, 1, 0, 1)
		v := uint32(vi)
		index.Set(si*6, v, v+1, v+2, v, v+2, v+3)
	}
	lm.BBox.SetBounds(bb.Min, bb.Max)
}
