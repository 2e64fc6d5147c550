// Copyright (c) 2025, Zendar. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds persisted per-panel and per-layer configuration
// records, keyed by an opaque instance identifier. The store owns the
// records; viewers and scene extensions only read them and request
// mutations. Every mutation publishes a fresh snapshot map, so a map
// obtained from [Store.All] is never modified after being handed out.
package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"maps"
	"os"
	"slices"
	"sync"
)

// changeListener is one registered change callback; the owner key
// supports removal when the owning component is disposed.
type changeListener struct {
	owner string
	fun   func()
}

// Store is a mapping from instance identifier to a JSON configuration
// record, persisted to a single JSON file. A Store with an empty path
// is memory-only, which is useful in tests and throwaway sessions.
type Store struct {
	mu        sync.Mutex
	path      string
	records   map[string]json.RawMessage
	listeners []changeListener
	watcher   *watcher
	async     func(fn func())
	lastSaved []byte
}

// NewStore returns a store persisted at the given file path.
// An empty path makes the store memory-only.
func NewStore(path string) *Store {
	return &Store{path: path, records: map[string]json.RawMessage{}}
}

// Load reads the store file, replacing the current records.
// A missing file leaves the store empty and is not an error.
// Records that fail schema validation are dropped with a warning;
// loading never fails on bad content, only on unreadable files.
func (st *Store) Load() error {
	if st.path == "" {
		return nil
	}
	data, err := os.ReadFile(st.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		slog.Warn("config: store file is not a JSON object; ignoring", "path", st.path, "err", err)
		return nil
	}
	recs := make(map[string]json.RawMessage, len(raw))
	for id, rec := range raw {
		if err := validateRecord(rec); err != nil {
			slog.Warn("config: dropping invalid record", "id", id, "err", err)
			continue
		}
		recs[id] = rec
	}
	st.mu.Lock()
	st.records = recs
	st.mu.Unlock()
	return nil
}

// Save writes the current records to the store file.
func (st *Store) Save() error {
	if st.path == "" {
		return nil
	}
	st.mu.Lock()
	recs := st.records
	st.mu.Unlock()
	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return err
	}
	st.mu.Lock()
	st.lastSaved = data
	st.mu.Unlock()
	return os.WriteFile(st.path, data, 0666)
}

// SetAsync sets the function the file watcher uses to deliver
// reloads: it must run fn on the event loop that owns the store's
// listeners, e.g. under the UI async lock. When unset, reloads run
// directly on the watcher goroutine, which is only safe when no
// listener touches shared state.
func (st *Store) SetAsync(run func(fn func())) {
	st.mu.Lock()
	st.async = run
	st.mu.Unlock()
}

// isSelfWrite reports whether the given file content is the store's
// own last save, so the watcher can skip the echo of a [Store.Save].
func (st *Store) isSelfWrite(data []byte) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.lastSaved != nil && bytes.Equal(data, st.lastSaved)
}

// All returns the current snapshot of records. The returned map is
// never mutated by the store; callers must treat it as read-only.
func (st *Store) All() map[string]json.RawMessage {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.records
}

// IDs returns the instance identifiers in sorted order.
func (st *Store) IDs() []string {
	st.mu.Lock()
	ids := slices.Collect(maps.Keys(st.records))
	st.mu.Unlock()
	slices.Sort(ids)
	return ids
}

// Get returns the record for the given identifier.
func (st *Store) Get(id string) (json.RawMessage, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	rec, ok := st.records[id]
	return rec, ok
}

// Update merges the given field patch into the record for the given
// identifier, creating the record if it does not exist, and returns
// the new snapshot. The previous snapshot is left untouched. The
// store is saved and change listeners are called synchronously,
// in registration order, before Update returns.
func (st *Store) Update(id string, patch map[string]any) map[string]json.RawMessage {
	st.mu.Lock()
	merged := map[string]any{}
	if rec, ok := st.records[id]; ok {
		if err := json.Unmarshal(rec, &merged); err != nil {
			slog.Warn("config: replacing unreadable record", "id", id, "err", err)
			merged = map[string]any{}
		}
	}
	for k, v := range patch {
		merged[k] = v
	}
	rec, err := json.Marshal(merged)
	if err != nil {
		slog.Warn("config: patch not marshalable; record unchanged", "id", id, "err", err)
		st.mu.Unlock()
		return st.All()
	}
	next := maps.Clone(st.records)
	next[id] = rec
	st.records = next
	st.mu.Unlock()

	if err := st.Save(); err != nil {
		slog.Warn("config: save failed", "path", st.path, "err", err)
	}
	st.notify()
	return next
}

// Delete removes the record for the given identifier and returns the
// new snapshot. Deleting an unknown identifier is a no-op: no save,
// no notification, and the snapshot is unchanged.
func (st *Store) Delete(id string) map[string]json.RawMessage {
	st.mu.Lock()
	if _, ok := st.records[id]; !ok {
		recs := st.records
		st.mu.Unlock()
		return recs
	}
	next := maps.Clone(st.records)
	delete(next, id)
	st.records = next
	st.mu.Unlock()

	if err := st.Save(); err != nil {
		slog.Warn("config: save failed", "path", st.path, "err", err)
	}
	st.notify()
	return next
}

// OnChange registers a callback invoked synchronously after every
// record mutation or reload, keyed by owner for later removal.
func (st *Store) OnChange(owner string, fun func()) {
	st.mu.Lock()
	st.listeners = append(st.listeners, changeListener{owner: owner, fun: fun})
	st.mu.Unlock()
}

// DeleteOwner removes all callbacks registered with the given owner.
func (st *Store) DeleteOwner(owner string) {
	st.mu.Lock()
	st.listeners = slices.DeleteFunc(st.listeners, func(cl changeListener) bool {
		return cl.owner == owner
	})
	st.mu.Unlock()
}

func (st *Store) notify() {
	st.mu.Lock()
	ls := slices.Clone(st.listeners)
	st.mu.Unlock()
	for _, cl := range ls {
		cl.fun()
	}
}
