// Copyright (c) 2025, Zendar. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"maps"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watcher reloads the store when its file is edited externally,
// e.g. by another app instance or by hand.
type watcher struct {
	fsw  *fsnotify.Watcher
	done chan struct{}
}

// Watch starts watching the store file for external edits. On each
// write the store reloads and change listeners fire, through the
// [Store.SetAsync] hook when one is set. The store's own saves are
// recognized and skipped. Watching a memory-only store is a no-op.
func (st *Store) Watch() error {
	if st.path == "" || st.watcher != nil {
		return nil
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	// watch the directory: editors typically rename-replace the file,
	// which drops a watch registered on the file itself
	if err := fsw.Add(filepath.Dir(st.path)); err != nil {
		fsw.Close()
		return err
	}
	w := &watcher{fsw: fsw, done: make(chan struct{})}
	st.watcher = w
	go st.watchLoop(w)
	return nil
}

// Close stops the file watcher if one is running.
func (st *Store) Close() error {
	if st.watcher == nil {
		return nil
	}
	w := st.watcher
	st.watcher = nil
	close(w.done)
	return w.fsw.Close()
}

func (st *Store) watchLoop(w *watcher) {
	abs, _ := filepath.Abs(st.path)
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			evAbs, _ := filepath.Abs(ev.Name)
			if evAbs != abs {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			if data, err := os.ReadFile(st.path); err == nil && st.isSelfWrite(data) {
				continue
			}
			st.reload()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			slog.Warn("config: watch error", "path", st.path, "err", err)
		}
	}
}

// reload reruns Load and notifies listeners, marshaled through the
// async hook when one is set so listeners only ever run on their
// owning event loop. See [Store.SetAsync].
func (st *Store) reload() {
	st.mu.Lock()
	run := st.async
	st.mu.Unlock()
	fn := func() {
		before := st.All()
		if err := st.Load(); err != nil {
			slog.Warn("config: reload failed", "path", st.path, "err", err)
			return
		}
		// a reload that changed nothing, such as the echo of our own
		// save, does not renotify
		if maps.EqualFunc(before, st.All(), func(a, b json.RawMessage) bool {
			return bytes.Equal(a, b)
		}) {
			return
		}
		st.notify()
	}
	if run != nil {
		run(fn)
		return
	}
	fn()
}
