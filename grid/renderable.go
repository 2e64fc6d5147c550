// Copyright (c) 2025, Zendar. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"fmt"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz"
)

// poseEpsilon is the tolerance for deciding whether a configured
// position or rotation actually changed; smaller deltas do not
// trigger a pose update.
const poseEpsilon = 1e-6

// Renderable is one grid layer in the scene: a group owning exactly
// one line-list solid and one group of range marker text labels.
// Both owned objects are created with the renderable and disposed
// together when it is removed.
type Renderable struct {
	xyz.Group

	// InstanceID is the layer instance this renderable belongs to.
	InstanceID string

	// FrameID is the resolved reference frame, set at the start of
	// every frame from the settings or the renderer default.
	FrameID string `set:"-"`

	// settings is the last applied settings snapshot, post-defaults.
	settings LayerSettings

	lines  *xyz.Solid
	labels *xyz.Group
	mesh   *linesMesh

	// dispose counters; each owned object is released exactly once.
	meshReleases, labelReleases int
}

// NewRenderable returns a new [Renderable] with the given optional parent:
// one grid layer in the scene.
func NewRenderable(parent ...tree.Node) *Renderable {
	return tree.New[Renderable](parent...)
}

// newRenderable constructs a renderable for the given layer settings
// and registers its mesh on the scene. The caller adds it to the
// scene graph.
func newRenderable(sc *xyz.Scene, s LayerSettings, anchor [2]float32) *Renderable {
	gr := NewRenderable()
	gr.SetName("grid-" + s.InstanceID)
	gr.InstanceID = s.InstanceID
	gr.mesh = newLinesMesh("grid-lines-" + s.InstanceID)
	sc.SetMesh(gr.mesh)
	gr.lines = xyz.NewSolid(gr).SetMesh(gr.mesh)
	gr.lines.SetName("lines")
	gr.labels = xyz.NewGroup(gr)
	gr.labels.SetName("labels")
	gr.apply(sc, s, anchor, true)
	return gr
}

// apply pushes settings into the owned objects, replacing geometry in
// place. anchor is the resolved marker anchor (the configured one, or
// the camera-derived bound while following). The pose is only touched
// when position or rotation moved beyond poseEpsilon, unless force.
func (gr *Renderable) apply(sc *xyz.Scene, s LayerSettings, anchor [2]float32, force bool) {
	prev := gr.settings
	gr.settings = s

	gr.mesh.setLines(LinePoints(s.Size, s.Divisions), s.LineWidth, parseColor(s.Color))
	sc.SetMesh(gr.mesh)

	ls := s
	ls.RangeMarkers.Position = anchor
	gr.applyLabels(RangeLabels(ls))

	if force || poseChanged(prev, s) {
		gr.Pose.Pos = math32.Vec3(s.Position[0], s.Position[1], s.Position[2])
		gr.SetEulerRotation(s.Rotation[0], s.Rotation[1], s.Rotation[2])
	}
	gr.Invisible = !s.Visible
}

// applyLabels reconciles the label children against the wanted list,
// reusing existing Text2D nodes in place and only adding or deleting
// at the tail.
func (gr *Renderable) applyLabels(labels []RangeLabel) {
	for len(gr.labels.Children) > len(labels) {
		last := gr.labels.Children[len(gr.labels.Children)-1]
		last.AsTree().Delete()
	}
	for i, l := range labels {
		var txt *xyz.Text2D
		if i < len(gr.labels.Children) {
			txt = gr.labels.Children[i].(*xyz.Text2D)
		} else {
			txt = xyz.NewText2D(gr.labels)
			txt.SetName(fmt.Sprintf("label-%d", i))
		}
		txt.SetText(l.Text)
		txt.Pose.Pos = l.Position
		txt.Styles.Font.Size.Pt(l.FontSize)
		txt.Styles.Color = colors.Uniform(l.Color)
	}
}

// Dispose releases the owned line mesh and label collection, exactly
// once each, and removes the renderable from the scene graph.
func (gr *Renderable) Dispose(sc *xyz.Scene) {
	if gr.mesh != nil {
		sc.Meshes.DeleteByKey(gr.mesh.Name)
		gr.mesh = nil
		gr.meshReleases++
	}
	if gr.labels != nil {
		for _, kid := range gr.labels.Children {
			if txt, ok := kid.(*xyz.Text2D); ok {
				if tx := txt.Material.Texture; tx != nil {
					sc.Textures.DeleteByKey(tx.AsTextureBase().Name)
				}
			}
		}
		gr.labels = nil
		gr.labelReleases++
	}
	gr.lines = nil
	if gr.Parent != nil {
		gr.AsTree().Delete()
	}
}

// poseChanged reports whether position or rotation differ beyond
// poseEpsilon between the two settings.
func poseChanged(a, b LayerSettings) bool {
	for i := range 3 {
		if math32.Abs(a.Position[i]-b.Position[i]) > poseEpsilon {
			return true
		}
		if math32.Abs(a.Rotation[i]-b.Rotation[i]) > poseEpsilon {
			return true
		}
	}
	return false
}
