// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build ios

package metal

import "github.com/ebitengine/purego/objc"

const uiFrameworkPath = "/System/Library/Frameworks/UIKit.framework/UIKit"

func mainScreenScale() float64 {
	screen := objc.ID(objc.GetClass("UIScreen")).Send(selMainScreen)
	if screen == 0 {
		return 1
	}
	return objc.Send[float64](screen, selNativeScale)
}

// windowScale returns the native scale of the screen a UIWindow is on.
func windowScale(window objc.ID) float64 {
	screen := window.Send(selScreen)
	if screen == 0 {
		return mainScreenScale()
	}
	return objc.Send[float64](screen, selNativeScale)
}
