// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ca describes the window-system objects a swapchain surface
// presents through: views, windows, compositor layers and the drawables
// they hand out.
//
// The swapchain package does not own any of these objects. It talks to
// them only through the interfaces declared here, so the same surface
// logic runs against CAMetalLayer on Apple platforms (package ca/metal)
// and against the in-memory compositor used by tests and headless tools
// (package ca/headless).
//
// # Capability checks
//
// Handles supplied by an application are opaque. Instead of inspecting
// their dynamic type, callers ask the Compositor whether a Layer can
// present drawables:
//
//	sl, ok := compositor.SurfaceLayer(view.Layer())
//	if !ok {
//	    sl = compositor.NewSurfaceLayer()
//	}
//
// # Autorelease regions
//
// Some compositors create transient objects on every drawable request.
// Compositor.PushPool opens a region that reclaims them when popped:
//
//	pool := compositor.PushPool()
//	defer pool.Pop()
//	drawable := layer.NextDrawable()
package ca
