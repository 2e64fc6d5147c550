// Copyright (c) 2025, Zendar. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"slices"

	"github.com/zendar/zenviz/fields"
)

// Field keys used in the settings tree. Nested range marker fields
// use a dotted key so all field paths stay three segments:
// ["layers", instanceId, fieldName].
const (
	fieldVisible      = "visible"
	fieldFrameID      = "frameId"
	fieldSize         = "gridSize"
	fieldDivisions    = "divisions"
	fieldLineWidth    = "lineWidth"
	fieldColor        = "color"
	fieldPosition     = "position"
	fieldRotation     = "rotation"
	fieldMarkers      = "rangeMarkers.visible"
	fieldFollowCamera = "rangeMarkers.followCamera"
	fieldFollowNudge  = "rangeMarkers.followNudge"
	fieldMarkerPos    = "rangeMarkers.position"
	fieldFontSize     = "rangeMarkers.fontSize"
	fieldFontColor    = "rangeMarkers.fontColor"
)

// TreeOptions carries externally supplied option lists for the
// settings tree, such as the available reference frames.
type TreeOptions struct {
	// Frames are the known reference frame identifiers.
	Frames []string
}

// SettingsTree builds the declarative settings tree for all current
// grid layers: one child node per layer, sorted by instance id, with
// a delete action and typed fields for every layer setting.
func (ext *Extension) SettingsTree(opts TreeOptions) fields.Node {
	root := fields.Node{Key: "layers", Label: "Grid Layers"}
	ids := make([]string, 0, len(ext.renderables))
	for id := range ext.renderables {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		root.Children = append(root.Children, ext.layerNode(ext.renderables[id].settings, opts))
	}
	return root
}

func (ext *Extension) layerNode(s LayerSettings, opts TreeOptions) fields.Node {
	disabled := fieldAvailability(s)
	frameOpts := []fields.Option{{Label: "(render frame)", Value: ""}}
	for _, f := range opts.Frames {
		frameOpts = append(frameOpts, fields.Option{Label: f, Value: f})
	}
	rm := s.RangeMarkers
	return fields.Node{
		Key:     s.InstanceID,
		Label:   "Grid",
		Actions: []fields.NodeAction{{Name: "delete", Label: "Delete"}},
		Fields: []fields.Field{
			{Key: fieldVisible, Type: fields.Toggle, Label: "Visible", Value: s.Visible},
			{Key: fieldFrameID, Type: fields.Select, Label: "Frame", Value: s.FrameID,
				Options: frameOpts, Placeholder: ext.vc.DefaultFrameID()},
			{Key: fieldSize, Type: fields.Number, Label: "Size", Value: s.Size,
				Min: 0.1, Max: 1e6, Step: 1, Precision: 1},
			{Key: fieldDivisions, Type: fields.Number, Label: "Divisions", Value: float32(s.Divisions),
				Min: 1, Max: MaxDivisions, Step: 1},
			{Key: fieldLineWidth, Type: fields.Number, Label: "Line width", Value: s.LineWidth,
				Min: 0.001, Max: 10, Step: 0.01, Precision: 3},
			{Key: fieldColor, Type: fields.RGBA, Label: "Color", Value: s.Color},
			{Key: fieldPosition, Type: fields.Vec3, Label: "Position", Value: s.Position},
			{Key: fieldRotation, Type: fields.Vec3, Label: "Rotation", Value: s.Rotation},
			{Key: fieldMarkers, Type: fields.Toggle, Label: "Range markers", Value: rm.Visible},
			{Key: fieldFollowCamera, Type: fields.Toggle, Label: "Follow camera", Value: rm.FollowCamera},
			{Key: fieldFollowNudge, Type: fields.Vec2, Label: "Follow nudge", Value: rm.FollowNudge,
				Disabled: disabled[fieldFollowNudge]},
			{Key: fieldMarkerPos, Type: fields.Vec2, Label: "Marker position", Value: rm.Position,
				Disabled: disabled[fieldMarkerPos]},
			{Key: fieldFontSize, Type: fields.Number, Label: "Font size", Value: rm.FontSize,
				Min: 1, Max: 200, Step: 1},
			{Key: fieldFontColor, Type: fields.RGBA, Label: "Font color", Value: rm.FontColor},
		},
	}
}

// fieldAvailability returns the set of fields rendered disabled for
// the given settings: the fixed marker position is meaningless while
// the camera is being followed, and the follow nudge is meaningless
// while it is not. A UI affordance only, not a data constraint.
func fieldAvailability(s LayerSettings) map[string]bool {
	return map[string]bool{
		fieldMarkerPos:   s.RangeMarkers.FollowCamera,
		fieldFollowNudge: !s.RangeMarkers.FollowCamera,
	}
}

// HandleAction routes a settings UI action: a three-segment update
// path merges one field into that layer's record and recomputes
// geometry synchronously; a two-segment delete action tears the layer
// down. Malformed paths are silently ignored.
func (ext *Extension) HandleAction(act fields.Action) {
	switch act.Kind {
	case fields.UpdateAction:
		if len(act.Path) != 3 || act.Path[0] != "layers" {
			return
		}
		id := act.Path[1]
		raw, _ := ext.vc.Store.Get(id)
		s := SettingsFromRaw(id, raw)
		if !applyField(&s, act.Path[2], act.Value) {
			return
		}
		// out-of-range edits are clamped before persisting; the record
		// schema rejects unclamped values on the next load
		s.Defaults()
		patch := patchFor(act.Path[2], s)
		patch["layer"] = LayerType
		ext.vc.Store.Update(id, patch)
	case fields.NodeActionKind:
		if act.Name != "delete" || len(act.Path) != 2 || act.Path[0] != "layers" {
			return
		}
		ext.DeleteLayer(act.Path[1])
	}
}

// applyField sets one settings field from a UI value, reporting
// whether the field key was recognized and the value usable.
func applyField(s *LayerSettings, key string, value any) bool {
	switch key {
	case fieldVisible:
		return toBool(value, &s.Visible)
	case fieldFrameID:
		return toString(value, &s.FrameID)
	case fieldSize:
		return toFloat(value, &s.Size)
	case fieldDivisions:
		var f float32
		if !toFloat(value, &f) {
			return false
		}
		s.Divisions = int(f)
		return true
	case fieldLineWidth:
		return toFloat(value, &s.LineWidth)
	case fieldColor:
		return toString(value, &s.Color)
	case fieldPosition:
		return toVec3(value, &s.Position)
	case fieldRotation:
		return toVec3(value, &s.Rotation)
	case fieldMarkers:
		return toBool(value, &s.RangeMarkers.Visible)
	case fieldFollowCamera:
		return toBool(value, &s.RangeMarkers.FollowCamera)
	case fieldFollowNudge:
		return toVec2(value, &s.RangeMarkers.FollowNudge)
	case fieldMarkerPos:
		return toVec2(value, &s.RangeMarkers.Position)
	case fieldFontSize:
		return toFloat(value, &s.RangeMarkers.FontSize)
	case fieldFontColor:
		return toString(value, &s.RangeMarkers.FontColor)
	}
	return false
}

// patchFor returns the single-field record patch for the given field
// key. Dotted marker keys write the whole rangeMarkers sub-record.
func patchFor(key string, s LayerSettings) map[string]any {
	switch key {
	case fieldVisible:
		return map[string]any{"visible": s.Visible}
	case fieldFrameID:
		return map[string]any{"frameId": s.FrameID}
	case fieldSize:
		return map[string]any{"size": s.Size}
	case fieldDivisions:
		return map[string]any{"divisions": s.Divisions}
	case fieldLineWidth:
		return map[string]any{"lineWidth": s.LineWidth}
	case fieldColor:
		return map[string]any{"color": s.Color}
	case fieldPosition:
		return map[string]any{"position": s.Position}
	case fieldRotation:
		return map[string]any{"rotation": s.Rotation}
	default:
		return map[string]any{"rangeMarkers": s.RangeMarkers}
	}
}

func toBool(v any, dst *bool) bool {
	b, ok := v.(bool)
	if ok {
		*dst = b
	}
	return ok
}

func toString(v any, dst *string) bool {
	s, ok := v.(string)
	if ok {
		*dst = s
	}
	return ok
}

func toFloat(v any, dst *float32) bool {
	switch f := v.(type) {
	case float32:
		*dst = f
	case float64:
		*dst = float32(f)
	case int:
		*dst = float32(f)
	default:
		return false
	}
	return true
}

func toVec2(v any, dst *[2]float32) bool {
	switch a := v.(type) {
	case [2]float32:
		*dst = a
	case []float32:
		if len(a) != 2 {
			return false
		}
		copy(dst[:], a)
	case []float64:
		if len(a) != 2 {
			return false
		}
		dst[0], dst[1] = float32(a[0]), float32(a[1])
	default:
		return false
	}
	return true
}

func toVec3(v any, dst *[3]float32) bool {
	switch a := v.(type) {
	case [3]float32:
		*dst = a
	case []float32:
		if len(a) != 3 {
			return false
		}
		copy(dst[:], a)
	case []float64:
		if len(a) != 3 {
			return false
		}
		dst[0], dst[1], dst[2] = float32(a[0]), float32(a[1]), float32(a[2])
	default:
		return false
	}
	return true
}
