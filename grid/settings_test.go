// Copyright (c) 2025, Zendar. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"encoding/json"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLayerSettingsDefaults(t *testing.T) {
	s := NewLayerSettings("abc")
	assert.Equal(t, "abc", s.InstanceID)
	assert.True(t, s.Visible)
	assert.Equal(t, DefaultSize, s.Size)
	assert.Equal(t, DefaultDivisions, s.Divisions)
	assert.Equal(t, DefaultLineWidth, s.LineWidth)
	assert.Equal(t, DefaultColor, s.Color)
	assert.Equal(t, [3]float32{}, s.Position)
	assert.Equal(t, [3]float32{}, s.Rotation)
	assert.Equal(t, DefaultFontSize, s.RangeMarkers.FontSize)
	assert.Equal(t, DefaultFontColor, s.RangeMarkers.FontColor)
}

func TestSettingsFromRawMergesOverDefaults(t *testing.T) {
	raw := json.RawMessage(`{"size": 25, "visible": false}`)
	s := SettingsFromRaw("abc", raw)
	assert.Equal(t, float32(25), s.Size)
	assert.False(t, s.Visible)
	// absent fields keep their defaults
	assert.Equal(t, DefaultDivisions, s.Divisions)
	assert.Equal(t, DefaultColor, s.Color)
}

func TestSettingsFromRawUnreadable(t *testing.T) {
	s := SettingsFromRaw("abc", json.RawMessage(`{]`))
	assert.Equal(t, DefaultSize, s.Size)
	assert.True(t, s.Visible)
}

func TestDivisionsClamp(t *testing.T) {
	cases := []struct {
		in   json.RawMessage
		want int
	}{
		{json.RawMessage(`{"divisions": 5000}`), MaxDivisions},
		{json.RawMessage(`{"divisions": -3}`), 1},
		{json.RawMessage(`{"divisions": 1}`), 1},
		{json.RawMessage(`{"divisions": 4096}`), 4096},
		{json.RawMessage(`{}`), DefaultDivisions},
	}
	for _, c := range cases {
		s := SettingsFromRaw("abc", c.in)
		assert.Equal(t, c.want, s.Divisions, "raw=%s", c.in)
	}
}

func TestParseColor(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 255, A: 255}, parseColor("red"))
	assert.Equal(t, color.RGBA{R: 0x24, G: 0x8e, B: 0xff, A: 255}, parseColor("#248eff"))
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, parseColor("nonsense"))
}
