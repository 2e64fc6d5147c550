// Copyright (c) 2025, Zendar. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"github.com/chewxy/math32"

	"github.com/zendar/zenviz/viewer"
)

// followBound returns the marker anchor position used while camera
// following is active: the component-wise maximum of the
// viewport-derived bound and the grid-derived bound, so that the
// markers sit outside both the visible viewport edge and the grid
// itself regardless of camera zoom.
//
// The viewport bound is the half-extent of the view frustum at the
// camera's target distance, plus the configured nudge:
//
//	vy = distance * tan(fov/2) + nudge[1]
//	vx = distance * tan(fov/2) * aspect + nudge[0]
//
// The grid bound is half the grid size plus half a cell, putting the
// markers one half-cell outside the outermost grid line.
func followBound(cam viewer.CameraState, nudge [2]float32, size float32, divisions int) [2]float32 {
	halfView := cam.Distance * math32.Tan(0.5*cam.FOV*math32.Pi/180)
	vx := halfView*cam.Aspect + nudge[0]
	vy := halfView + nudge[1]
	g := size/2 + size/(2*float32(divisions))
	return [2]float32{math32.Max(vx, g), math32.Max(vy, g)}
}
