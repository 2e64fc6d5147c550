// Copyright (c) 2025, Zendar. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewer

// EventType is the set of named external events a [Context] dispatches
// to scene extensions and panels.
type EventType int32

const (
	// TransformTreeUpdated fires when the set of known reference
	// frames, or the default frame, changes.
	TransformTreeUpdated EventType = iota

	// CameraStateChanged fires when the camera state is replaced.
	CameraStateChanged

	// RangeMarkersConfigChanged fires when the app-level range marker
	// configuration changes.
	RangeMarkersConfigChanged

	// ConfigChanged fires after any mutation or reload of the
	// configuration store.
	ConfigChanged
)

var eventTypeNames = []string{
	"transform-tree-updated",
	"camera-state-changed",
	"range-markers-config-changed",
	"config-changed",
}

func (et EventType) String() string {
	if et < 0 || int(et) >= len(eventTypeNames) {
		return "invalid"
	}
	return eventTypeNames[et]
}

// listener is one registered handler. The owner key ties handler
// lifetime to the registering component: subscribe on construct,
// [Listeners.DeleteOwner] on dispose.
type listener struct {
	owner string
	fun   func()
}

// Listeners registers lists of event handler functions per event type.
// Handlers are closures with all context captured, registered by
// specific owners.
type Listeners map[EventType][]listener

// Init ensures that the map is constructed.
func (ls *Listeners) Init() {
	if *ls != nil {
		return
	}
	*ls = make(map[EventType][]listener)
}

// Add adds a handler for the given event type under the given owner.
func (ls *Listeners) Add(typ EventType, owner string, fun func()) {
	ls.Init()
	(*ls)[typ] = append((*ls)[typ], listener{owner: owner, fun: fun})
}

// Call calls all handlers for the given event type, synchronously,
// in registration order.
func (ls *Listeners) Call(typ EventType) {
	for _, l := range (*ls)[typ] {
		l.fun()
	}
}

// DeleteOwner removes every handler registered under the given owner,
// across all event types.
func (ls *Listeners) DeleteOwner(owner string) {
	for typ, ll := range *ls {
		kept := ll[:0]
		for _, l := range ll {
			if l.owner != owner {
				kept = append(kept, l)
			}
		}
		if len(kept) == 0 {
			delete(*ls, typ)
		} else {
			(*ls)[typ] = kept
		}
	}
}
