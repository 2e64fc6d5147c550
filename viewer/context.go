// Copyright (c) 2025, Zendar. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewer provides the shared context that scene extensions
// plug into: the 3D scene, camera state, the reference frame list,
// the configuration store, and a typed event bus. All dispatch is
// synchronous within one event turn; nothing here blocks.
package viewer

import (
	"slices"

	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz"
	"github.com/zendar/zenviz/config"
)

// CameraState is the subset of camera parameters extensions need for
// view-dependent layout, such as camera-following range markers.
type CameraState struct {
	// Distance is the distance from the camera to its target.
	Distance float32

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Aspect is the viewport width / height ratio.
	Aspect float32
}

// Extension is a scene extension registered on a [Context]. The
// context calls StartFrame once per rendered frame and Dispose when
// the extension is removed or the context shuts down.
type Extension interface {
	// Name is a stable identifier, used e.g. as the listener owner key.
	Name() string

	// StartFrame is called once at the start of every rendered frame.
	StartFrame()

	// Dispose releases all scene resources held by the extension.
	Dispose()
}

// Context ties a 3D scene, the configuration store, and the event bus
// together for scene extensions. It never owns the per-layer
// configuration records; it reads the store and forwards its change
// notifications as [ConfigChanged] events.
type Context struct {
	// Scene is the 3D scene extensions render into.
	Scene *xyz.Scene

	// Events is the typed event bus.
	Events Listeners

	// Store is the configuration store.
	Store *config.Store

	camera     CameraState
	frames     []string
	defFrameID string
	extensions []Extension
}

// NewContext returns a context for the given scene and store,
// forwarding store changes as [ConfigChanged] events.
func NewContext(sc *xyz.Scene, st *config.Store) *Context {
	vc := &Context{Scene: sc, Store: st}
	vc.camera = CameraState{Distance: 10, FOV: 45, Aspect: 1}
	if st != nil {
		st.OnChange("viewer", func() {
			vc.Events.Call(ConfigChanged)
		})
	}
	return vc
}

// AddExtension registers the given scene extension.
func (vc *Context) AddExtension(ext Extension) {
	vc.extensions = append(vc.extensions, ext)
}

// AddRenderable adds the given renderable node to the scene graph.
func (vc *Context) AddRenderable(n tree.Node) {
	vc.Scene.AddChild(n)
}

// RemoveRenderable removes the given renderable from the scene graph.
func (vc *Context) RemoveRenderable(n tree.Node) {
	n.AsTree().Delete()
}

// Camera returns the current camera state.
func (vc *Context) Camera() CameraState {
	return vc.camera
}

// SetCameraState replaces the camera state and fires
// [CameraStateChanged].
func (vc *Context) SetCameraState(cs CameraState) {
	vc.camera = cs
	vc.Events.Call(CameraStateChanged)
}

// Frames returns the known reference frame identifiers.
func (vc *Context) Frames() []string {
	return vc.frames
}

// SetFrames replaces the known reference frames and fires
// [TransformTreeUpdated]. If no default frame is set, the first
// frame becomes the default.
func (vc *Context) SetFrames(frames []string) {
	vc.frames = slices.Clone(frames)
	if vc.defFrameID == "" && len(vc.frames) > 0 {
		vc.defFrameID = vc.frames[0]
	}
	vc.Events.Call(TransformTreeUpdated)
}

// DefaultFrameID returns the current default reference frame id,
// which may be empty if none is known.
func (vc *Context) DefaultFrameID() string {
	return vc.defFrameID
}

// SetDefaultFrameID sets the default reference frame and fires
// [TransformTreeUpdated].
func (vc *Context) SetDefaultFrameID(id string) {
	vc.defFrameID = id
	vc.Events.Call(TransformTreeUpdated)
}

// StartFrame runs every extension's frame-start hook. The embedding
// widget calls this once per displayed frame, before the scene
// updates its node world matrices.
func (vc *Context) StartFrame() {
	for _, ext := range vc.extensions {
		ext.StartFrame()
	}
}

// Dispose disposes all extensions and clears the bus.
func (vc *Context) Dispose() {
	for _, ext := range vc.extensions {
		ext.Dispose()
	}
	vc.extensions = nil
	if vc.Store != nil {
		vc.Store.DeleteOwner("viewer")
	}
}
