// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package swapchain

import (
	"github.com/gogpu/swapchain/ca"
)

// Profile holds the platform-specific steps of surface setup. The set is
// closed: use TouchProfile or DesktopProfile.
type Profile interface {
	// Name returns "touch" or "desktop".
	Name() string

	// initLayer prepares a layer synthesized as a sublayer of the view's
	// own layer.
	initLayer(c ca.Compositor, view ca.View, parent ca.Layer, layer ca.SurfaceLayer)

	// tracksViewFrame reports whether Configure must resize the layer to
	// the view on every call. Views on such platforms may only be touched
	// from the goroutine that created the surface.
	tracksViewFrame() bool
}

var (
	// TouchProfile is the iOS behavior: the view takes the main screen's
	// native scale, and synthesized layers are resized to the view's bounds
	// on every Configure because the view never resizes its sublayers.
	TouchProfile Profile = touchProfile{}

	// DesktopProfile is the macOS behavior: both layers keep their contents
	// at the top-left corner, and the synthesized layer takes the window's
	// backing scale when the view already has a window.
	DesktopProfile Profile = desktopProfile{}
)

// DefaultProfile returns the profile for the platform being built for.
func DefaultProfile() Profile {
	return defaultProfile
}

type touchProfile struct{}

func (touchProfile) Name() string { return "touch" }

func (touchProfile) initLayer(c ca.Compositor, view ca.View, _ ca.Layer, _ ca.SurfaceLayer) {
	// The view may not have a window or screen yet when this runs during
	// application launch, so the main screen is queried instead.
	scale := c.MainScreenNativeScale()
	if scale <= 0 {
		scale = 1
	}
	view.SetContentScaleFactor(scale)
}

func (touchProfile) tracksViewFrame() bool { return true }

type desktopProfile struct{}

func (desktopProfile) Name() string { return "desktop" }

func (desktopProfile) initLayer(_ ca.Compositor, view ca.View, parent ca.Layer, layer ca.SurfaceLayer) {
	parent.SetContentsGravity(ca.GravityTopLeft)
	layer.SetContentsGravity(ca.GravityTopLeft)
	if w := view.Window(); w != nil {
		layer.SetContentsScale(w.BackingScaleFactor())
	}
}

func (desktopProfile) tracksViewFrame() bool { return false }
