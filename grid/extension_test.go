// Copyright (c) 2025, Zendar. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"path/filepath"
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"github.com/stretchr/testify/assert"

	"github.com/zendar/zenviz/config"
	"github.com/zendar/zenviz/fields"
	"github.com/zendar/zenviz/viewer"
)

// newTestExtension builds a store, context, and extension over a
// fresh scene, as the app does, but memory-only.
func newTestExtension() (*config.Store, *viewer.Context, *Extension) {
	st := config.NewStore("")
	vc := viewer.NewContext(xyz.NewScene(), st)
	ext := NewExtension(vc)
	return st, vc, ext
}

func addLayer(st *config.Store, id string, extra map[string]any) {
	patch := map[string]any{"layer": LayerType}
	for k, v := range extra {
		patch[k] = v
	}
	st.Update(id, patch)
}

func TestUnseenRecordCreatesRenderable(t *testing.T) {
	st, _, ext := newTestExtension()
	assert.Nil(t, ext.Renderable("abc"))

	addLayer(st, "abc", map[string]any{"size": 10, "divisions": 4})
	gr := ext.Renderable("abc")
	if assert.NotNil(t, gr, "store change must create the renderable synchronously") {
		assert.Equal(t, float32(10), gr.settings.Size)
		assert.Len(t, gr.mesh.points, 4*(4+1))
	}
}

func TestNonGridRecordsIgnored(t *testing.T) {
	st, _, ext := newTestExtension()
	st.Update("other", map[string]any{"layer": "pointcloud", "topic": "/points"})
	assert.Nil(t, ext.Renderable("other"))
}

func TestUpdateReplacesInPlace(t *testing.T) {
	st, _, ext := newTestExtension()
	addLayer(st, "abc", map[string]any{"divisions": 4})
	first := ext.Renderable("abc")

	addLayer(st, "abc", map[string]any{"divisions": 8})
	second := ext.Renderable("abc")
	assert.Same(t, first, second, "update must not reallocate the renderable")
	assert.Len(t, second.mesh.points, 4*(8+1))
}

func TestUpdateIdempotent(t *testing.T) {
	st, _, ext := newTestExtension()
	addLayer(st, "abc", map[string]any{"size": 20, "divisions": 6})
	gr := ext.Renderable("abc")
	pts := append([]math32.Vector3(nil), gr.mesh.points...)

	addLayer(st, "abc", map[string]any{"size": 20, "divisions": 6})
	assert.Equal(t, pts, gr.mesh.points, "identical settings must produce identical geometry")
	assert.Len(t, gr.mesh.points, 4*(6+1), "no accumulation across updates")
}

func TestDeleteUnknownIsNoop(t *testing.T) {
	st, _, ext := newTestExtension()
	addLayer(st, "abc", nil)
	ext.DeleteLayer("never-created")
	assert.NotNil(t, ext.Renderable("abc"))
	assert.Len(t, st.IDs(), 1)
}

func TestCreateThenDeleteDisposesOnce(t *testing.T) {
	st, _, ext := newTestExtension()
	addLayer(st, "abc", nil)
	gr := ext.Renderable("abc")
	assert.NotNil(t, gr)

	ext.DeleteLayer("abc")
	assert.Nil(t, ext.Renderable("abc"))
	_, ok := st.Get("abc")
	assert.False(t, ok)
	assert.Equal(t, 1, gr.meshReleases, "line mesh released exactly once")
	assert.Equal(t, 1, gr.labelReleases, "label collection released exactly once")
}

func TestDisposeIsIdempotent(t *testing.T) {
	_, vc, ext := newTestExtension()
	gr := newRenderable(vc.Scene, NewLayerSettings("x"), [2]float32{})
	gr.Dispose(vc.Scene)
	gr.Dispose(vc.Scene)
	assert.Equal(t, 1, gr.meshReleases)
	assert.Equal(t, 1, gr.labelReleases)
	_ = ext
}

func TestAddLayer(t *testing.T) {
	_, _, ext := newTestExtension()
	id := ext.AddLayer()
	assert.NotEmpty(t, id)
	assert.NotNil(t, ext.Renderable(id))
}

func TestExtensionDispose(t *testing.T) {
	st, vc, ext := newTestExtension()
	addLayer(st, "a", nil)
	addLayer(st, "b", nil)
	ext.Dispose()
	assert.Nil(t, ext.Renderable("a"))
	assert.Nil(t, ext.Renderable("b"))

	// handlers are gone: further store changes must not recreate
	addLayer(st, "c", nil)
	assert.Nil(t, ext.Renderable("c"))
	_ = vc
}

func TestStartFrameResolvesFrames(t *testing.T) {
	st, vc, ext := newTestExtension()
	addLayer(st, "fixed", map[string]any{"frameId": "base_link"})
	addLayer(st, "floating", nil)
	vc.SetDefaultFrameID("map")

	vc.StartFrame()
	assert.Equal(t, "base_link", ext.Renderable("fixed").FrameID)
	assert.Equal(t, "map", ext.Renderable("floating").FrameID)

	// default frame changes are picked up without a settings write
	vc.SetDefaultFrameID("odom")
	vc.StartFrame()
	assert.Equal(t, "odom", ext.Renderable("floating").FrameID)
	assert.Equal(t, "base_link", ext.Renderable("fixed").FrameID)
}

func TestCameraFollowRecomputesAnchor(t *testing.T) {
	st, vc, ext := newTestExtension()
	addLayer(st, "abc", map[string]any{
		"size": 10, "divisions": 10,
		"rangeMarkers": map[string]any{"visible": true, "followCamera": true},
	})
	gr := ext.Renderable("abc")
	assert.Len(t, gr.labels.Children, 2*(10+1))

	vc.SetCameraState(viewer.CameraState{Distance: 10, FOV: 90, Aspect: 1})
	// labels for constant-X lines sit at y = anchor.y = 10
	txt := gr.labels.Children[0].(*xyz.Text2D)
	assert.InDelta(t, 10, txt.Pose.Pos.Y, 1e-3)

	vc.SetCameraState(viewer.CameraState{Distance: 1, FOV: 90, Aspect: 1})
	txt = gr.labels.Children[0].(*xyz.Text2D)
	assert.InDelta(t, 5.5, txt.Pose.Pos.Y, 1e-3)
}

func TestHandleActionUpdatesSingleField(t *testing.T) {
	st, _, ext := newTestExtension()
	addLayer(st, "abc", map[string]any{"color": "red", "divisions": 7})
	before := ext.Renderable("abc").settings

	ext.HandleAction(fields.Update([]string{"layers", "abc", "gridSize"}, 20))

	after := ext.Renderable("abc").settings
	assert.Equal(t, float32(20), after.Size)
	// everything else is untouched
	after.Size = before.Size
	assert.Equal(t, before, after)
}

func TestHandleActionClampsPersistedValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")
	st := config.NewStore(path)
	vc := viewer.NewContext(xyz.NewScene(), st)
	ext := NewExtension(vc)
	addLayer(st, "abc", map[string]any{"divisions": 7})

	ext.HandleAction(fields.Update([]string{"layers", "abc", "divisions"}, 0))
	assert.Equal(t, DefaultDivisions, ext.Renderable("abc").settings.Divisions)

	// the persisted value must pass record validation on the next load
	st2 := config.NewStore(path)
	assert.NoError(t, st2.Load())
	_, ok := st2.Get("abc")
	assert.True(t, ok, "layer record must survive a reload")
}

func TestHandleActionDelete(t *testing.T) {
	st, _, ext := newTestExtension()
	addLayer(st, "abc", nil)
	ext.HandleAction(fields.NodeAct([]string{"layers", "abc"}, "delete"))
	assert.Nil(t, ext.Renderable("abc"))
	assert.Empty(t, st.IDs())
}

func TestHandleActionMalformedPathsIgnored(t *testing.T) {
	st, _, ext := newTestExtension()
	addLayer(st, "abc", nil)
	before := ext.Renderable("abc").settings

	ext.HandleAction(fields.Update([]string{"layers", "abc"}, 20))
	ext.HandleAction(fields.Update([]string{"layers", "abc", "size", "extra"}, 20))
	ext.HandleAction(fields.Update([]string{"panels", "abc", "size"}, 20))
	ext.HandleAction(fields.NodeAct([]string{"layers"}, "delete"))
	ext.HandleAction(fields.NodeAct([]string{"layers", "abc", "size"}, "delete"))

	assert.Equal(t, before, ext.Renderable("abc").settings)
	assert.Len(t, st.IDs(), 1)
}

func TestFieldAvailability(t *testing.T) {
	s := NewLayerSettings("a")
	s.RangeMarkers.FollowCamera = true
	dis := fieldAvailability(s)
	assert.True(t, dis[fieldMarkerPos])
	assert.False(t, dis[fieldFollowNudge])

	s.RangeMarkers.FollowCamera = false
	dis = fieldAvailability(s)
	assert.False(t, dis[fieldMarkerPos])
	assert.True(t, dis[fieldFollowNudge])
}

func TestSettingsTree(t *testing.T) {
	st, _, ext := newTestExtension()
	addLayer(st, "b", nil)
	addLayer(st, "a", map[string]any{"rangeMarkers": map[string]any{"followCamera": true}})

	root := ext.SettingsTree(TreeOptions{Frames: []string{"map", "base_link"}})
	assert.Equal(t, "layers", root.Key)
	if assert.Len(t, root.Children, 2) {
		assert.Equal(t, "a", root.Children[0].Key, "layers sorted by instance id")
		assert.Equal(t, "b", root.Children[1].Key)
	}

	a := root.Child("a")
	frame := a.Field(fieldFrameID)
	if assert.NotNil(t, frame) {
		assert.Len(t, frame.Options, 3, "default option plus supplied frames")
	}
	assert.True(t, a.Field(fieldMarkerPos).Disabled)
	assert.False(t, a.Field(fieldFollowNudge).Disabled)
	assert.Equal(t, []fields.NodeAction{{Name: "delete", Label: "Delete"}}, a.Actions)

	b := root.Child("b")
	assert.False(t, b.Field(fieldMarkerPos).Disabled)
	assert.True(t, b.Field(fieldFollowNudge).Disabled)
}
