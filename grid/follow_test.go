// Copyright (c) 2025, Zendar. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zendar/zenviz/viewer"
)

func TestFollowBoundViewportWins(t *testing.T) {
	cam := viewer.CameraState{Distance: 10, FOV: 90, Aspect: 1}
	got := followBound(cam, [2]float32{0, 0}, 10, 10)
	// viewport half extent: 10 * tan(45°) = 10; grid bound: 5 + 0.5
	assert.InDelta(t, 10, got[0], 1e-3)
	assert.InDelta(t, 10, got[1], 1e-3)
}

func TestFollowBoundGridWins(t *testing.T) {
	cam := viewer.CameraState{Distance: 1, FOV: 90, Aspect: 1}
	got := followBound(cam, [2]float32{0, 0}, 10, 10)
	// viewport bound is 1, grid bound 5.5 dominates on both axes
	assert.InDelta(t, 5.5, got[0], 1e-3)
	assert.InDelta(t, 5.5, got[1], 1e-3)
}

func TestFollowBoundComponentwise(t *testing.T) {
	// wide aspect: x bound from the viewport, y bound from the grid
	cam := viewer.CameraState{Distance: 4, FOV: 90, Aspect: 3}
	got := followBound(cam, [2]float32{0, 0}, 10, 10)
	assert.InDelta(t, 12, got[0], 1e-3)  // 4 * tan(45°) * 3
	assert.InDelta(t, 5.5, got[1], 1e-3) // max(4, 5.5)
}

func TestFollowBoundNudge(t *testing.T) {
	cam := viewer.CameraState{Distance: 10, FOV: 90, Aspect: 1}
	got := followBound(cam, [2]float32{2, -1}, 10, 10)
	assert.InDelta(t, 12, got[0], 1e-3)
	assert.InDelta(t, 9, got[1], 1e-3)
}
