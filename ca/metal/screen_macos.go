// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build darwin && !ios

package metal

import "github.com/ebitengine/purego/objc"

const uiFrameworkPath = "/System/Library/Frameworks/AppKit.framework/AppKit"

func mainScreenScale() float64 {
	screen := objc.ID(objc.GetClass("NSScreen")).Send(selMainScreen)
	if screen == 0 {
		return 1
	}
	return objc.Send[float64](screen, selBackingScaleFactor)
}

// windowScale returns an NSWindow's backing scale factor.
func windowScale(window objc.ID) float64 {
	return objc.Send[float64](window, selBackingScaleFactor)
}
