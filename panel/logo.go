// Copyright (c) 2025, Zendar. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package panel

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/units"
)

// logoSVG is the Zendar mark: a radar sweep over three range arcs.
const logoSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 64 64">
  <circle cx="32" cy="32" r="30" fill="none" stroke="#248eff" stroke-width="3"/>
  <path d="M 32 32 L 32 4 A 28 28 0 0 1 56 18 Z" fill="#248eff" fill-opacity="0.55"/>
  <circle cx="32" cy="32" r="20" fill="none" stroke="#248eff" stroke-width="1.5" opacity="0.6"/>
  <circle cx="32" cy="32" r="10" fill="none" stroke="#248eff" stroke-width="1.5" opacity="0.6"/>
  <circle cx="32" cy="32" r="3" fill="#248eff"/>
</svg>`

// Logo is the static Zendar logo widget.
type Logo struct {
	core.SVG
}

func (lg *Logo) Init() {
	lg.SVG.Init()
	lg.Styler(func(s *styles.Style) {
		s.Min.Set(units.Dp(24))
	})
	errors.Log(lg.ReadString(logoSVG))
}
