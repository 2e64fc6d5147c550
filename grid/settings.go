// Copyright (c) 2025, Zendar. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"encoding/json"
	"image/color"

	"cogentcore.org/core/colors"
)

// Default values for layer settings; absent or invalid fields fall
// back to these when a record is read.
const (
	// DefaultSize is the default grid extent in world units.
	DefaultSize float32 = 10

	// DefaultDivisions is the default number of grid cells per axis.
	DefaultDivisions = 10

	// MaxDivisions bounds the division count so the generated vertex
	// count stays within geometry buffer limits.
	MaxDivisions = 4096

	// DefaultLineWidth is the default line width in world units.
	DefaultLineWidth float32 = 0.05

	// DefaultColor is the default grid stroke color.
	DefaultColor = "#248eff"

	// DefaultFontSize is the default range marker font size in points.
	DefaultFontSize float32 = 24

	// DefaultFontColor is the default range marker text color.
	DefaultFontColor = "#ffffff"
)

// RangeMarkerSettings configures the distance labels drawn along the
// grid lines.
type RangeMarkerSettings struct {
	// Visible shows or hides the range markers.
	Visible bool `json:"visible"`

	// FollowCamera keeps the markers just outside the visible
	// viewport (or the grid edge, whichever is farther) as the
	// camera moves, instead of using the fixed Position anchor.
	FollowCamera bool `json:"followCamera"`

	// FollowNudge offsets the camera-derived marker position,
	// in world units per axis. Only used when FollowCamera is set.
	FollowNudge [2]float32 `json:"followNudge"`

	// Position is the fixed marker anchor position in the grid
	// plane. Ignored while FollowCamera is set.
	Position [2]float32 `json:"position"`

	// FontSize is the label font size in points.
	FontSize float32 `json:"fontSize"`

	// FontColor is the label color as a named or hex color string.
	FontColor string `json:"fontColor"`
}

// LayerSettings is the full configuration of one grid layer instance.
// Fields absent from the persisted record keep their defaults; see
// [SettingsFromRaw].
type LayerSettings struct {
	// InstanceID is the opaque identifier of this layer instance.
	// It is the record key, not part of the record itself.
	InstanceID string `json:"-"`

	// Visible shows or hides the whole layer.
	Visible bool `json:"visible"`

	// FrameID is the reference frame the grid is drawn in. When
	// empty, the renderer's current default frame is used, resolved
	// anew at the start of every frame.
	FrameID string `json:"frameId"`

	// Size is the grid extent in world units; must be > 0.
	Size float32 `json:"size"`

	// Divisions is the number of grid cells per axis,
	// clamped to [1, MaxDivisions].
	Divisions int `json:"divisions"`

	// LineWidth is the line width in world units.
	LineWidth float32 `json:"lineWidth"`

	// Color is the stroke color as a named or hex color string.
	Color string `json:"color"`

	// Position offsets the grid center from the frame origin.
	Position [3]float32 `json:"position"`

	// Rotation rotates the grid, as Euler angles in degrees.
	Rotation [3]float32 `json:"rotation"`

	// RangeMarkers configures the distance labels.
	RangeMarkers RangeMarkerSettings `json:"rangeMarkers"`
}

// NewLayerSettings returns settings with all defaults applied for the
// given instance identifier.
func NewLayerSettings(id string) LayerSettings {
	s := LayerSettings{InstanceID: id, Visible: true}
	s.Defaults()
	return s
}

// Defaults fills zero-valued fields with their default constants and
// clamps Divisions to [1, MaxDivisions]. Position and Rotation keep
// the origin as their zero value.
func (s *LayerSettings) Defaults() {
	if s.Size <= 0 {
		s.Size = DefaultSize
	}
	if s.Divisions == 0 {
		s.Divisions = DefaultDivisions
	}
	if s.Divisions < 1 {
		s.Divisions = 1
	}
	if s.Divisions > MaxDivisions {
		s.Divisions = MaxDivisions
	}
	if s.LineWidth <= 0 {
		s.LineWidth = DefaultLineWidth
	}
	if s.Color == "" {
		s.Color = DefaultColor
	}
	if s.RangeMarkers.FontSize <= 0 {
		s.RangeMarkers.FontSize = DefaultFontSize
	}
	if s.RangeMarkers.FontColor == "" {
		s.RangeMarkers.FontColor = DefaultFontColor
	}
}

// SettingsFromRaw decodes a configuration record into layer settings,
// merging the record over the defaults: fields present in the record
// win, absent fields keep their default values. Unreadable records
// yield pure defaults.
func SettingsFromRaw(id string, raw json.RawMessage) LayerSettings {
	s := NewLayerSettings(id)
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &s)
	}
	s.Defaults()
	return s
}

// parseColor parses a named or hex color string, returning opaque
// white when the string does not parse.
func parseColor(str string) color.RGBA {
	c, err := colors.FromString(str)
	if err != nil {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return c
}
