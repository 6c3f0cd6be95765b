// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package swapchain binds a compositor layer (CAMetalLayer on Apple
// platforms) to a sequence of drawable textures a gogpu backend renders
// into and presents.
//
// # Lifecycle
//
// A Surface is created from a platform view or from an existing surface
// layer, configured against a device, and then asked for one texture per
// frame:
//
//	s := swapchain.FromView(comp, view, swapchain.NewLayerDelegate())
//	defer s.Dispose()
//
//	cfg := swapchain.NewConfiguration(provider, 1600, 1200)
//	if err := s.Configure(device, cfg); err != nil {
//	    return err
//	}
//
//	for running {
//	    acquired, err := s.AcquireTexture(0)
//	    if err != nil {
//	        return err
//	    }
//	    if acquired == nil {
//	        continue // no drawable this frame
//	    }
//	    render(acquired.Texture)
//	    acquired.Texture.Present()
//	}
//
// On resize or format change call Configure again; the same layer is
// reprogrammed. Unconfigure marks the surface unconfigured without touching
// the layer.
//
// # Threads
//
// Configure, Dimensions and AcquireTexture take the surface lock for their
// whole duration. AcquireTexture may block for several display refreshes
// while holding it. On touch platforms a surface created from a view must
// be configured from the goroutine that created it.
//
// # Window systems
//
// The layer, view and window objects are reached through package ca.
// Package ca/metal implements it for Apple platforms; package ca/headless
// is an in-memory compositor for tests and offscreen rendering.
package swapchain
