// Copyright (c) 2025, Zendar. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Zenviz is a demo visualization app: a 3D scene with the grid layer
// extension, a panel toolbar, and a settings form for editing layers.
package main

import (
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz"
	"cogentcore.org/core/xyz/xyzcore"

	"github.com/zendar/zenviz/config"
	"github.com/zendar/zenviz/fields"
	"github.com/zendar/zenviz/grid"
	"github.com/zendar/zenviz/panel"
	"github.com/zendar/zenviz/viewer"
)

func main() {
	b := core.NewBody("Zenviz")

	st := config.NewStore(filepath.Join(core.TheApp.AppDataDir(), "layout.json"))
	errors.Log(st.Load())
	// watcher reloads run on the UI event loop, not the watcher goroutine
	st.SetAsync(func(fn func()) {
		b.AsyncLock()
		fn()
		b.AsyncUnlock()
	})
	errors.Log(st.Watch())
	defer func() { errors.Log(st.Close()) }()

	sp := core.NewSplits(b)
	sp.SetSplits(0.75, 0.25)

	view := core.NewFrame(sp)
	view.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Grow.Set(1, 1)
	})

	tb := tree.New[panel.Toolbar](view)
	tb.Title = "3D Scene"
	tb.HelpURL = "https://zendar.io/docs/zenviz"

	se := xyzcore.NewSceneEditor(view)
	se.Styler(func(s *styles.Style) {
		s.Grow.Set(1, 1)
	})
	sc := se.SceneXYZ()

	xyz.NewAmbient(sc, "ambient", 0.3, xyz.DirectSun)
	xyz.NewDirectional(sc, "directional", 1, xyz.DirectSun)
	sc.Camera.Pose.Pos.Set(0, -20, 10)
	sc.Camera.LookAt(math32.Vector3{}, math32.Vec3(0, 0, 1))

	vc := viewer.NewContext(sc, st)
	vc.SetFrames([]string{"map", "base_link", "radar"})
	vc.SetCameraState(viewer.CameraState{
		Distance: sc.Camera.Pose.Pos.Length(),
		FOV:      sc.Camera.FOV,
		Aspect:   sc.Camera.Aspect,
	})

	ext := grid.NewExtension(vc)
	if len(st.IDs()) == 0 {
		ext.AddLayer()
	}

	side := core.NewFrame(sp)
	side.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Grow.Set(1, 1)
	})
	tree.New[panel.Logo](side)
	form := tree.New[panel.Form](side)
	form.Tree = func() fields.Node {
		return ext.SettingsTree(grid.TreeOptions{Frames: vc.Frames()})
	}
	form.Action = func(a fields.Action) {
		ext.HandleAction(a)
		form.Update()
	}
	st.OnChange("app", func() {
		form.Update()
	})

	vc.StartFrame()

	b.RunMainWindow()
	vc.Dispose()
}
