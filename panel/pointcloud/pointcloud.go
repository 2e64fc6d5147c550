// Copyright (c) 2025, Zendar. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pointcloud is a minimal example panel: a settings tree with
// one visibility toggle per point-cloud topic, persisted through the
// shared panel configuration store.
package pointcloud

import (
	"encoding/json"

	"cogentcore.org/core/core"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/tree"

	"github.com/zendar/zenviz/config"
	"github.com/zendar/zenviz/fields"
	"github.com/zendar/zenviz/panel"
)

// Datatype is the message datatype this panel filters on.
const Datatype = "sensor_msgs/PointCloud2"

// recordID keys this panel's record in the configuration store.
const recordID = "pointcloud"

// Topic is one data stream offered by the connected source.
type Topic struct {
	// Name is the topic name, e.g. "/radar/points".
	Name string `json:"name"`

	// Datatype is the message datatype of the topic.
	Datatype string `json:"datatype"`
}

// PointCloudTopics returns the topics whose datatype matches
// [Datatype], preserving order.
func PointCloudTopics(topics []Topic) []Topic {
	var out []Topic
	for _, tp := range topics {
		if tp.Datatype == Datatype {
			out = append(out, tp)
		}
	}
	return out
}

// Panel is the point-cloud filter panel. Topics and Store must be set
// before the first update; [NewPanel] does both.
type Panel struct {
	core.Frame

	// Store persists the enabled-topic set.
	Store *config.Store

	// Topics are the available topics; only point-cloud topics are
	// shown.
	Topics []Topic
}

// NewPanel builds the panel under parent and keeps it in sync with
// the store.
func NewPanel(parent tree.Node, st *config.Store, topics []Topic) *Panel {
	pl := tree.New[Panel](parent)
	pl.Store = st
	pl.Topics = topics
	st.OnChange(recordID, func() {
		pl.Update()
	})
	return pl
}

func (pl *Panel) Init() {
	pl.Frame.Init()
	pl.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Grow.Set(1, 1)
	})
	pl.Maker(func(p *tree.Plan) {
		tree.AddAt(p, "toolbar", func(w *panel.Toolbar) {
			w.Title = "Point Clouds"
		})
		tree.AddAt(p, "form", func(w *panel.Form) {
			w.Tree = pl.SettingsTree
			w.Action = pl.HandleAction
		})
	})
}

// record is the shape of this panel's store record.
type record struct {
	EnabledTopics map[string]bool `json:"enabledTopics"`
}

// enabled returns the persisted enabled-topic map. Topics without an
// entry are enabled.
func (pl *Panel) enabled() map[string]bool {
	out := map[string]bool{}
	if pl.Store == nil {
		return out
	}
	raw, ok := pl.Store.Get(recordID)
	if !ok {
		return out
	}
	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return out
	}
	for k, v := range rec.EnabledTopics {
		out[k] = v
	}
	return out
}

// topicEnabled reports whether a topic is shown; the default for an
// unconfigured topic is enabled.
func (pl *Panel) topicEnabled(name string) bool {
	en := pl.enabled()
	v, ok := en[name]
	if !ok {
		return true
	}
	return v
}

// SettingsTree builds the settings tree: one child node per
// point-cloud topic, each with a single visibility toggle.
func (pl *Panel) SettingsTree() fields.Node {
	root := fields.Node{Key: "topics", Label: "Point Cloud Topics"}
	for _, tp := range PointCloudTopics(pl.Topics) {
		root.Children = append(root.Children, fields.Node{
			Key:   tp.Name,
			Label: tp.Name,
			Fields: []fields.Field{
				{Key: "visible", Type: fields.Toggle, Label: "Visible",
					Value: pl.topicEnabled(tp.Name)},
			},
		})
	}
	return root
}

// HandleAction applies a settings-tree action: update actions of the
// form ["topics", <name>, "visible"] persist the toggle; anything
// else is ignored.
func (pl *Panel) HandleAction(act fields.Action) {
	if act.Kind != fields.UpdateAction {
		return
	}
	if len(act.Path) != 3 || act.Path[0] != "topics" || act.Path[2] != "visible" {
		return
	}
	on, ok := act.Value.(bool)
	if !ok {
		return
	}
	en := pl.enabled()
	en[act.Path[1]] = on
	pl.Store.Update(recordID, map[string]any{
		"layer":         "pointcloud",
		"enabledTopics": en,
	})
}
