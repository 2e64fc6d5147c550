// Copyright (c) 2025, Zendar. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package panel has the widgets shared by every visualization panel:
// the toolbar across the top and the Zendar logo.
package panel

import (
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/icons"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/abilities"
	"cogentcore.org/core/styles/states"
	"cogentcore.org/core/styles/units"
	"cogentcore.org/core/tree"
)

// titleMinWidthDp is the minimum toolbar width, in dp, at which the
// panel title is shown. Narrower panels show only the buttons.
const titleMinWidthDp = 360

// Toolbar is the action bar across the top of a panel: the panel
// title, a help button if a help URL is set, a fullscreen toggle, and
// any extra buttons the panel adds. In fixed mode it is a normal row
// that reserves its height. In floating mode it reserves no space and
// is meant to be stacked over the panel content (put both in a
// [styles.Stacked] frame); it is fully transparent until hovered.
type Toolbar struct {
	core.Frame

	// Floating overlays the toolbar on the top-right of the panel
	// content instead of reserving a row for it.
	Floating bool

	// Title is the panel title, shown only when the toolbar is wide
	// enough for it.
	Title string

	// HelpURL, if non-empty, adds a help button that opens it.
	HelpURL string

	// Extra adds panel-specific widgets after the built-in buttons.
	Extra core.BarFuncs
}

func (tb *Toolbar) Init() {
	tb.Frame.Init()
	tb.Styler(func(s *styles.Style) {
		s.Direction = styles.Row
		s.Align.Items = styles.Center
		s.Gap.X.Dp(4)
		s.Padding.Set(units.Dp(4))
		if tb.Floating {
			s.SetAbilities(true, abilities.Hoverable)
			s.Grow.Set(0, 0)
			s.Justify.Self = styles.End
			s.Align.Self = styles.Start
			if !tb.StateIs(states.Hovered) {
				s.Opacity = 0
			}
		} else {
			s.Grow.Set(1, 0)
		}
	})
	tb.On(events.MouseEnter, func(e events.Event) {
		tb.NeedsRender()
	})
	tb.On(events.MouseLeave, func(e events.Event) {
		tb.NeedsRender()
	})
	tb.Maker(func(p *tree.Plan) {
		if !tb.Floating {
			tree.AddAt(p, "title", func(w *core.Text) {
				w.Styler(func(s *styles.Style) {
					s.SetTextWrap(false)
				})
				w.Updater(func() {
					w.SetText(tb.Title)
					w.SetState(!tb.titleFits(), states.Invisible)
				})
			})
			tree.Add(p, func(w *core.Stretch) {})
		}
		if len(tb.Extra) > 0 {
			tree.AddAt(p, "extra", func(w *core.Frame) {
				w.Styler(func(s *styles.Style) {
					s.Gap.X.Dp(4)
				})
				for _, f := range tb.Extra {
					f(w)
				}
			})
		}
		if tb.HelpURL != "" {
			tree.AddAt(p, "help", func(w *core.Button) {
				w.SetType(core.ButtonAction).SetIcon(icons.Help).
					SetTooltip("Open the documentation for this panel")
				w.OnClick(func(e events.Event) {
					core.TheApp.OpenURL(tb.HelpURL)
				})
			})
		}
		tree.AddAt(p, "fullscreen", func(w *core.Button) {
			w.SetType(core.ButtonAction)
			w.Updater(func() {
				if tb.Scene != nil && tb.Scene.IsFullscreen() {
					w.SetIcon(icons.FullscreenExit).SetTooltip("Exit fullscreen")
				} else {
					w.SetIcon(icons.Fullscreen).SetTooltip("Fullscreen")
				}
			})
			w.OnClick(func(e events.Event) {
				sc := tb.Scene
				if sc == nil {
					return
				}
				sc.SetFullscreen(!sc.IsFullscreen())
				w.Update()
			})
		})
	})
}

// titleFits reports whether the toolbar is wide enough to show the
// panel title. An unsized toolbar counts as wide enough so the title
// is present for the first layout pass.
func (tb *Toolbar) titleFits() bool {
	w := tb.Geom.Size.Alloc.Total.X
	if w == 0 {
		return true
	}
	return w > tb.Styles.UnitContext.Dp(titleMinWidthDp)
}
