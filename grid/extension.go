// Copyright (c) 2025, Zendar. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grid is a scene extension rendering ground-plane grids with
// optional range marker labels into a 3D scene. Each grid layer is
// configured by a [LayerSettings] record in the configuration store
// and rendered by a [Renderable] owned by the [Extension].
package grid

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/zendar/zenviz/viewer"
)

// LayerType tags configuration records that belong to this extension.
const LayerType = "grid"

// extensionName is the extension and event listener owner name.
const extensionName = "grid"

// Extension manages the set of grid renderables, one per configured
// layer instance. It reconciles against the configuration store on
// every change and updates geometry on transform, camera, and range
// marker events. All updates happen synchronously in the event turn
// that triggered them.
type Extension struct {
	vc          *viewer.Context
	renderables map[string]*Renderable
}

// NewExtension returns a grid extension registered on the given
// context, with renderables built for any layers already in the
// store.
func NewExtension(vc *viewer.Context) *Extension {
	ext := &Extension{vc: vc, renderables: map[string]*Renderable{}}
	vc.Events.Add(viewer.ConfigChanged, extensionName, ext.sync)
	vc.Events.Add(viewer.TransformTreeUpdated, extensionName, ext.updateAll)
	vc.Events.Add(viewer.CameraStateChanged, extensionName, ext.updateAll)
	vc.Events.Add(viewer.RangeMarkersConfigChanged, extensionName, ext.updateAll)
	vc.AddExtension(ext)
	ext.sync()
	return ext
}

func (ext *Extension) Name() string { return extensionName }

// AddLayer creates a new grid layer with default settings and returns
// its instance identifier. The renderable is built synchronously by
// the resulting store change.
func (ext *Extension) AddLayer() string {
	id := uuid.NewString()
	ext.vc.Store.Update(id, map[string]any{"layer": LayerType, "visible": true})
	return id
}

// DeleteLayer removes the given layer from the store and tears down
// its renderable. Deleting an unknown identifier is a no-op.
func (ext *Extension) DeleteLayer(id string) {
	ext.vc.Store.Delete(id)
	// store delete of a known id notifies and sync removes the
	// renderable; a renderable without a record (already gone from
	// the store) still needs explicit teardown
	if gr, ok := ext.renderables[id]; ok {
		gr.Dispose(ext.vc.Scene)
		delete(ext.renderables, id)
	}
}

// Renderable returns the renderable for the given layer instance,
// or nil if absent.
func (ext *Extension) Renderable(id string) *Renderable {
	return ext.renderables[id]
}

// StartFrame resolves every renderable's reference frame: the
// configured frame id, or the renderer's current default when unset.
// Run once per rendered frame, so a renderable tracks the default
// frame dynamically without a settings write.
func (ext *Extension) StartFrame() {
	def := ext.vc.DefaultFrameID()
	for _, gr := range ext.renderables {
		if gr.settings.FrameID != "" {
			gr.FrameID = gr.settings.FrameID
		} else {
			gr.FrameID = def
		}
	}
}

// Dispose tears down every renderable and deregisters all event
// handlers.
func (ext *Extension) Dispose() {
	for id, gr := range ext.renderables {
		gr.Dispose(ext.vc.Scene)
		delete(ext.renderables, id)
	}
	ext.vc.Events.DeleteOwner(extensionName)
}

// sync reconciles renderables against the configuration store:
// unseen grid records create renderables, existing ones update in
// place, and renderables whose record disappeared are disposed.
func (ext *Extension) sync() {
	seen := map[string]bool{}
	for id, raw := range ext.vc.Store.All() {
		var probe struct {
			Layer string `json:"layer"`
		}
		if err := json.Unmarshal(raw, &probe); err != nil || probe.Layer != LayerType {
			continue
		}
		seen[id] = true
		ext.applyLayer(SettingsFromRaw(id, raw))
	}
	for id, gr := range ext.renderables {
		if !seen[id] {
			gr.Dispose(ext.vc.Scene)
			delete(ext.renderables, id)
		}
	}
}

// applyLayer creates or updates the renderable for the given
// settings, never reallocating an existing renderable.
func (ext *Extension) applyLayer(s LayerSettings) {
	anchor := ext.resolveAnchor(s)
	if gr, ok := ext.renderables[s.InstanceID]; ok {
		gr.apply(ext.vc.Scene, s, anchor, false)
		return
	}
	gr := newRenderable(ext.vc.Scene, s, anchor)
	ext.vc.AddRenderable(gr)
	ext.renderables[s.InstanceID] = gr
}

// updateAll recomputes geometry and marker anchors for every
// renderable, for events that change derived state without touching
// the settings records.
func (ext *Extension) updateAll() {
	for _, gr := range ext.renderables {
		s := gr.settings
		gr.apply(ext.vc.Scene, s, ext.resolveAnchor(s), false)
	}
}

// resolveAnchor returns the effective marker anchor: the camera
// derived bound while following, else the configured position.
func (ext *Extension) resolveAnchor(s LayerSettings) [2]float32 {
	if s.RangeMarkers.FollowCamera {
		return followBound(ext.vc.Camera(), s.RangeMarkers.FollowNudge, s.Size, s.Divisions)
	}
	return s.RangeMarkers.Position
}
