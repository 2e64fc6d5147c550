// Copyright (c) 2025, Zendar. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListenersCallOrder(t *testing.T) {
	var ls Listeners
	var got []string
	ls.Add(CameraStateChanged, "a", func() { got = append(got, "first") })
	ls.Add(CameraStateChanged, "b", func() { got = append(got, "second") })
	ls.Call(CameraStateChanged)
	assert.Equal(t, []string{"first", "second"}, got)
}

func TestListenersDeleteOwner(t *testing.T) {
	var ls Listeners
	a, b := 0, 0
	ls.Add(TransformTreeUpdated, "a", func() { a++ })
	ls.Add(ConfigChanged, "a", func() { a++ })
	ls.Add(TransformTreeUpdated, "b", func() { b++ })

	ls.Call(TransformTreeUpdated)
	ls.Call(ConfigChanged)
	assert.Equal(t, 2, a)
	assert.Equal(t, 1, b)

	ls.DeleteOwner("a")
	ls.Call(TransformTreeUpdated)
	ls.Call(ConfigChanged)
	assert.Equal(t, 2, a, "owner a must not fire after removal")
	assert.Equal(t, 2, b)
}

func TestCallUnknownTypeIsNoop(t *testing.T) {
	var ls Listeners
	ls.Call(RangeMarkersConfigChanged) // no handlers, no panic
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "transform-tree-updated", TransformTreeUpdated.String())
	assert.Equal(t, "config-changed", ConfigChanged.String())
	assert.Equal(t, "invalid", EventType(99).String())
}
