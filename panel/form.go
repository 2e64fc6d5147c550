// Copyright (c) 2025, Zendar. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package panel

import (
	"slices"

	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/states"
	"cogentcore.org/core/tree"

	"github.com/zendar/zenviz/fields"
)

// Form renders a settings tree as editor widgets and routes every
// edit and node action through a single handler. The tree is re-read
// on every Update, so the owner refreshes the form by calling Update
// after the underlying configuration changes.
type Form struct {
	core.Frame

	// Tree returns the current settings tree.
	Tree func() fields.Node

	// Action receives user edits and node actions.
	Action func(act fields.Action)

	root fields.Node
}

func (fm *Form) Init() {
	fm.Frame.Init()
	fm.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Grow.Set(1, 0)
	})
	fm.Updater(func() {
		if fm.Tree != nil {
			fm.root = fm.Tree()
		}
	})
	fm.Maker(func(p *tree.Plan) {
		fm.makeNode(p, []string{fm.root.Key})
	})
}

// act forwards an action to the handler, if one is set.
func (fm *Form) act(a fields.Action) {
	if fm.Action != nil {
		fm.Action(a)
	}
}

// nodeAt resolves a node path against the current tree.
func (fm *Form) nodeAt(path []string) *fields.Node {
	if len(path) == 0 || path[0] != fm.root.Key {
		return nil
	}
	n := &fm.root
	for _, key := range path[1:] {
		n = n.Child(key)
		if n == nil {
			return nil
		}
	}
	return n
}

// fieldAt resolves a field path (node path plus field key) against
// the current tree.
func (fm *Form) fieldAt(path []string) *fields.Field {
	n := fm.nodeAt(path[:len(path)-1])
	if n == nil {
		return nil
	}
	return n.Field(path[len(path)-1])
}

func (fm *Form) makeNode(p *tree.Plan, path []string) {
	n := fm.nodeAt(path)
	if n == nil {
		return
	}
	if n.Label != "" {
		tree.AddAt(p, "label", func(w *core.Text) {
			w.SetType(core.TextTitleMedium)
			npath := slices.Clone(path)
			w.Updater(func() {
				if nd := fm.nodeAt(npath); nd != nil {
					w.SetText(nd.Label)
				}
			})
		})
	}
	if n.Error != "" {
		tree.AddAt(p, "error", func(w *core.Text) {
			npath := slices.Clone(path)
			w.Updater(func() {
				if nd := fm.nodeAt(npath); nd != nil {
					w.SetText(nd.Error)
				}
			})
		})
	}
	for _, f := range n.Fields {
		fm.makeField(p, path, f)
	}
	for _, a := range n.Actions {
		a := a
		apath := slices.Clone(path)
		tree.AddAt(p, "action-"+a.Name, func(w *core.Button) {
			w.SetType(core.ButtonOutlined).SetText(a.Label)
			w.OnClick(func(e events.Event) {
				fm.act(fields.NodeAct(apath, a.Name))
			})
		})
	}
	for _, c := range n.Children {
		cpath := append(slices.Clone(path), c.Key)
		tree.AddAt(p, "node-"+c.Key, func(w *core.Frame) {
			w.Styler(func(s *styles.Style) {
				s.Direction = styles.Column
				s.Grow.Set(1, 0)
				s.Padding.Left.Dp(8)
			})
			w.Maker(func(p *tree.Plan) {
				fm.makeNode(p, cpath)
			})
		})
	}
}

// makeField adds the editor row for one field. The field's type is
// fixed for a given key; only its value, options, and availability
// are re-read on update.
func (fm *Form) makeField(p *tree.Plan, npath []string, f fields.Field) {
	fpath := append(slices.Clone(npath), f.Key)
	tree.AddAt(p, "field-"+f.Key, func(w *core.Frame) {
		w.Styler(func(s *styles.Style) {
			s.Align.Items = styles.Center
			s.Gap.X.Dp(8)
			s.Grow.Set(1, 0)
		})
		if f.Type != fields.Toggle {
			lbl := core.NewText(w)
			lbl.SetText(f.Label)
			lbl.Styler(func(s *styles.Style) {
				s.Min.X.Dp(110)
			})
		}
		fm.makeEditor(w, fpath, f)
	})
}

func (fm *Form) makeEditor(parent core.Widget, fpath []string, f fields.Field) {
	switch f.Type {
	case fields.Toggle:
		w := core.NewSwitch(parent)
		w.SetText(f.Label)
		fm.bindField(&w.WidgetBase, fpath, func(cur *fields.Field) {
			w.SetChecked(asBool(cur.Value))
		})
		w.OnChange(func(e events.Event) {
			fm.act(fields.Update(fpath, w.IsChecked()))
		})
	case fields.Number:
		w := core.NewSpinner(parent)
		if f.Min != 0 || f.Max != 0 {
			w.SetMin(f.Min).SetMax(f.Max)
		}
		if f.Step != 0 {
			w.SetStep(f.Step)
		}
		fm.bindField(&w.WidgetBase, fpath, func(cur *fields.Field) {
			w.SetValue(asFloat(cur.Value))
		})
		w.OnChange(func(e events.Event) {
			fm.act(fields.Update(fpath, w.Value))
		})
	case fields.String, fields.RGBA:
		w := core.NewTextField(parent)
		if f.Placeholder != "" {
			w.SetPlaceholder(f.Placeholder)
		}
		fm.bindField(&w.WidgetBase, fpath, func(cur *fields.Field) {
			w.SetText(asString(cur.Value))
		})
		w.OnChange(func(e events.Event) {
			fm.act(fields.Update(fpath, w.Text()))
		})
	case fields.Select:
		w := core.NewChooser(parent)
		items := make([]core.ChooserItem, len(f.Options))
		for i, o := range f.Options {
			items[i] = core.ChooserItem{Value: o.Value, Text: o.Label}
		}
		w.SetItems(items...)
		fm.bindField(&w.WidgetBase, fpath, func(cur *fields.Field) {
			w.SetCurrentValue(asString(cur.Value))
		})
		w.OnChange(func(e events.Event) {
			if v, ok := w.CurrentItem.Value.(string); ok {
				fm.act(fields.Update(fpath, v))
			}
		})
	case fields.Vec2:
		fm.makeVecEditor(parent, fpath, 2)
	case fields.Vec3:
		fm.makeVecEditor(parent, fpath, 3)
	}
}

// makeVecEditor adds one spinner per component; any component change
// sends the whole vector.
func (fm *Form) makeVecEditor(parent core.Widget, fpath []string, dim int) {
	sps := make([]*core.Spinner, dim)
	for i := range sps {
		i := i
		w := core.NewSpinner(parent)
		fm.bindField(&w.WidgetBase, fpath, func(cur *fields.Field) {
			w.SetValue(asVec(cur.Value)[i])
		})
		sps[i] = w
	}
	send := func(e events.Event) {
		if dim == 2 {
			fm.act(fields.Update(fpath, [2]float32{sps[0].Value, sps[1].Value}))
		} else {
			fm.act(fields.Update(fpath, [3]float32{sps[0].Value, sps[1].Value, sps[2].Value}))
		}
	}
	for _, sp := range sps {
		sp.OnChange(send)
	}
}

// bindField installs the updater shared by all editors: re-read the
// field from the current tree, apply availability, then the
// editor-specific value set.
func (fm *Form) bindField(wb *core.WidgetBase, fpath []string, set func(cur *fields.Field)) {
	path := slices.Clone(fpath)
	wb.Updater(func() {
		cur := fm.fieldAt(path)
		if cur == nil {
			return
		}
		wb.SetState(cur.Disabled, states.Disabled)
		set(cur)
	})
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asFloat(v any) float32 {
	switch n := v.(type) {
	case float32:
		return n
	case float64:
		return float32(n)
	case int:
		return float32(n)
	}
	return 0
}

func asVec(v any) [3]float32 {
	var out [3]float32
	switch a := v.(type) {
	case [2]float32:
		out[0], out[1] = a[0], a[1]
	case [3]float32:
		out = a
	}
	return out
}
